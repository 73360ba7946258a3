package log

import (
	"bytes"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/Alia5/vtouch/touch"
)

const stampFormat = "2006/01/02 15:04:05.000"

// lineWriter serialises whole lines onto w. A nil w discards everything.
type lineWriter struct {
	w   io.Writer
	mu  sync.Mutex
	now func() time.Time
}

func (l *lineWriter) enabled() bool { return l != nil && l.w != nil }

func (l *lineWriter) writeLine(format string, args ...any) {
	line := l.now().Format(stampFormat) + " " + fmt.Sprintf(format, args...) + "\n"
	l.mu.Lock()
	_, _ = io.WriteString(l.w, line)
	l.mu.Unlock()
}

// TouchTrace writes one line per pointer event.
type TouchTrace struct {
	lineWriter
}

// NewTouchTrace returns a trace writing to w. A nil w gives a no-op trace.
func NewTouchTrace(w io.Writer) *TouchTrace {
	return &TouchTrace{lineWriter{w: w, now: time.Now}}
}

func (t *TouchTrace) Trace(ev touch.PointerEvent) {
	if t == nil || !t.enabled() {
		return
	}
	t.writeLine("touch %s", ev)
}

// FrameDump hex-dumps stream frames. out=true means sent to the server.
type FrameDump struct {
	lineWriter
}

// NewFrameDump returns a dump writing to w. A nil w gives a no-op dump.
func NewFrameDump(w io.Writer) *FrameDump {
	return &FrameDump{lineWriter{w: w, now: time.Now}}
}

func (d *FrameDump) Log(out bool, data []byte) {
	if d == nil || !d.enabled() || len(data) == 0 {
		return
	}

	dir := "rx"
	if out {
		dir = "tx"
	}

	var hexbuf bytes.Buffer
	const hexdigits = "0123456789abcdef"
	for i, b := range data {
		if i > 0 {
			hexbuf.WriteByte(' ')
		}
		hexbuf.WriteByte(hexdigits[b>>4])
		hexbuf.WriteByte(hexdigits[b&0x0f])
	}
	d.writeLine("%s %d bytes: %s", dir, len(data), hexbuf.String())
}
