package viiperlink

import (
	"bufio"
	"encoding"
	"errors"
	"fmt"
	"io"
	"net"
	"sync"
	"sync/atomic"
	"time"
)

// ErrStreamClosed is returned by I/O on a closed Stream.
var ErrStreamClosed = errors.New("stream closed")

// Stream is the bidirectional device channel: input frames out, feedback
// frames in. Writes and reads may happen on different goroutines.
type Stream struct {
	conn   net.Conn
	r      *bufio.Reader
	closed atomic.Bool

	writeMu   sync.Mutex
	closeOnce sync.Once
	closeErr  error
}

// NewStream wraps an already negotiated stream connection.
func NewStream(conn net.Conn) *Stream {
	return &Stream{conn: conn, r: bufio.NewReader(conn)}
}

// WriteBinary marshals v and sends it as one frame.
func (s *Stream) WriteBinary(v encoding.BinaryMarshaler) error {
	if s.closed.Load() {
		return ErrStreamClosed
	}
	data, err := v.MarshalBinary()
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if _, err := s.conn.Write(data); err != nil {
		return s.wrap(err)
	}
	return nil
}

// ReadFrame reads exactly size bytes and decodes them into v.
func (s *Stream) ReadFrame(size int, v encoding.BinaryUnmarshaler) error {
	if s.closed.Load() {
		return ErrStreamClosed
	}
	buf := make([]byte, size)
	if _, err := io.ReadFull(s.r, buf); err != nil {
		return s.wrap(err)
	}
	return v.UnmarshalBinary(buf)
}

func (s *Stream) wrap(err error) error {
	if s.closed.Load() {
		return ErrStreamClosed
	}
	return err
}

func (s *Stream) SetWriteDeadline(t time.Time) error {
	return s.conn.SetWriteDeadline(t)
}

// Close closes the connection. Safe to call more than once.
func (s *Stream) Close() error {
	s.closeOnce.Do(func() {
		s.closed.Store(true)
		s.closeErr = s.conn.Close()
	})
	return s.closeErr
}
