// Package viiperlink forwards the emulated controller to a VIIPER server as
// a virtual DualShock 4 and turns its rumble feedback into haptic pulses.
package viiperlink

import (
	"bytes"
	"context"
	"log/slog"
	"time"

	"github.com/Alia5/vtouch/gamepad"
	"github.com/Alia5/vtouch/pad"
)

// DefaultInterval is the input frame period.
const DefaultInterval = 10 * time.Millisecond

// Source yields the current controller state. *pad.State satisfies it.
type Source interface {
	Snapshot() pad.InputState
}

// FrameLogger receives every frame that differs from the previous one in
// the same direction.
type FrameLogger interface {
	Log(out bool, data []byte)
}

// Link pumps frames between a Source and a Stream.
type Link struct {
	Stream   *Stream
	Source   Source
	Haptics  gamepad.HapticSink // may be nil
	Interval time.Duration      // DefaultInterval when zero
	Frames   FrameLogger        // may be nil
	Logger   *slog.Logger       // slog.Default when nil
}

func (l *Link) logger() *slog.Logger {
	if l.Logger != nil {
		return l.Logger
	}
	return slog.Default()
}

func (l *Link) logFrame(out bool, data []byte) {
	if l.Frames != nil {
		l.Frames.Log(out, data)
	}
}

// Run sends an input frame every Interval and handles feedback until ctx
// is cancelled or the stream fails. The stream is closed on return.
// Cancellation is not an error.
func (l *Link) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(ctx, func() { _ = l.Stream.Close() })
	defer stop()
	defer l.Stream.Close()

	readErr := make(chan error, 1)
	go func() { readErr <- l.readLoop() }()

	interval := l.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var last []byte
	for {
		frame := FromPad(l.Source.Snapshot())
		data, _ := frame.MarshalBinary()
		if !bytes.Equal(data, last) {
			l.logFrame(true, data)
			last = data
		}
		if err := l.Stream.WriteBinary(&frame); err != nil {
			return l.exitErr(ctx, err)
		}

		select {
		case <-ctx.Done():
			return nil
		case err := <-readErr:
			return l.exitErr(ctx, err)
		case <-ticker.C:
		}
	}
}

func (l *Link) exitErr(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return nil
	}
	return err
}

// readLoop consumes feedback frames. A rumble pulse fires when either motor
// starts; a frame that keeps it running does not fire again.
func (l *Link) readLoop() error {
	var prev OutputState
	for {
		var out OutputState
		if err := l.Stream.ReadFrame(OutputFrameSize, &out); err != nil {
			return err
		}
		data, _ := out.MarshalBinary()
		l.logFrame(false, data)

		if out.Rumbling() && !prev.Rumbling() {
			l.logger().Debug("rumble", "small", out.RumbleSmall, "large", out.RumbleLarge)
			if l.Haptics != nil {
				l.Haptics.Vibrate(gamepad.HapticRumble)
			}
		}
		prev = out
	}
}
