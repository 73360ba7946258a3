package viiperlink

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/Alia5/vtouch/pad"
)

// DeviceType is the VIIPER device type vtouch registers.
const DeviceType = "dualshock4"

const (
	InputFrameSize  = 31
	OutputFrameSize = 7
)

// DualShock 4 button bits as carried in InputState.Buttons.
const (
	DS4Square   uint16 = 0x0010
	DS4Cross    uint16 = 0x0020
	DS4Circle   uint16 = 0x0040
	DS4Triangle uint16 = 0x0080
	DS4L1       uint16 = 0x0100
	DS4R1       uint16 = 0x0200
	DS4L2       uint16 = 0x0400
	DS4R2       uint16 = 0x0800
	DS4Share    uint16 = 0x1000
	DS4Options  uint16 = 0x2000
)

// DualShock 4 dpad bits as carried in InputState.DPad.
const (
	DS4DPadUp    uint8 = 0x01
	DS4DPadDown  uint8 = 0x02
	DS4DPadLeft  uint8 = 0x04
	DS4DPadRight uint8 = 0x08
)

// Accelerometer reading of a controller lying flat (-9.81 m/s² at 512 counts per m/s²).
const restAccelZ int16 = -5023

// InputState is a DualShock 4 input frame.
//
// Wire format: fixed 31 bytes, little-endian.
// lx:i8 ly:i8 rx:i8 ry:i8 buttons:u16 dpad:u8 l2:u8 r2:u8
// touch1X:u16 touch1Y:u16 touch1Active:u8 touch2X:u16 touch2Y:u16 touch2Active:u8
// gyroX:i16 gyroY:i16 gyroZ:i16 accelX:i16 accelY:i16 accelZ:i16
type InputState struct {
	LX, LY  int8
	RX, RY  int8
	Buttons uint16
	DPad    uint8
	L2, R2  uint8

	Touch1X, Touch1Y uint16
	Touch1Active     bool
	Touch2X, Touch2Y uint16
	Touch2Active     bool

	GyroX, GyroY, GyroZ    int16
	AccelX, AccelY, AccelZ int16
}

func putBool(b []byte, v bool) {
	if v {
		b[0] = 1
	} else {
		b[0] = 0
	}
}

func (s *InputState) MarshalBinary() ([]byte, error) {
	b := make([]byte, InputFrameSize)
	b[0] = uint8(s.LX)
	b[1] = uint8(s.LY)
	b[2] = uint8(s.RX)
	b[3] = uint8(s.RY)
	binary.LittleEndian.PutUint16(b[4:6], s.Buttons)
	b[6] = s.DPad
	b[7] = s.L2
	b[8] = s.R2
	binary.LittleEndian.PutUint16(b[9:11], s.Touch1X)
	binary.LittleEndian.PutUint16(b[11:13], s.Touch1Y)
	putBool(b[13:14], s.Touch1Active)
	binary.LittleEndian.PutUint16(b[14:16], s.Touch2X)
	binary.LittleEndian.PutUint16(b[16:18], s.Touch2Y)
	putBool(b[18:19], s.Touch2Active)
	for i, v := range []int16{s.GyroX, s.GyroY, s.GyroZ, s.AccelX, s.AccelY, s.AccelZ} {
		off := 19 + i*2
		binary.LittleEndian.PutUint16(b[off:off+2], uint16(v))
	}
	return b, nil
}

func (s *InputState) UnmarshalBinary(data []byte) error {
	if len(data) < InputFrameSize {
		return io.ErrUnexpectedEOF
	}
	s.LX = int8(data[0])
	s.LY = int8(data[1])
	s.RX = int8(data[2])
	s.RY = int8(data[3])
	s.Buttons = binary.LittleEndian.Uint16(data[4:6])
	s.DPad = data[6]
	s.L2 = data[7]
	s.R2 = data[8]
	s.Touch1X = binary.LittleEndian.Uint16(data[9:11])
	s.Touch1Y = binary.LittleEndian.Uint16(data[11:13])
	s.Touch1Active = data[13] != 0
	s.Touch2X = binary.LittleEndian.Uint16(data[14:16])
	s.Touch2Y = binary.LittleEndian.Uint16(data[16:18])
	s.Touch2Active = data[18] != 0
	i16 := func(off int) int16 { return int16(binary.LittleEndian.Uint16(data[off : off+2])) }
	s.GyroX, s.GyroY, s.GyroZ = i16(19), i16(21), i16(23)
	s.AccelX, s.AccelY, s.AccelZ = i16(25), i16(27), i16(29)
	return nil
}

// OutputState is the 7-byte feedback frame the device sends back.
type OutputState struct {
	RumbleSmall uint8
	RumbleLarge uint8
	LedRed      uint8
	LedGreen    uint8
	LedBlue     uint8
	FlashOn     uint8 // units of 2.5ms
	FlashOff    uint8 // units of 2.5ms
}

// Rumbling reports whether either motor is running.
func (o OutputState) Rumbling() bool {
	return o.RumbleSmall != 0 || o.RumbleLarge != 0
}

func (o *OutputState) MarshalBinary() ([]byte, error) {
	return []byte{o.RumbleSmall, o.RumbleLarge, o.LedRed, o.LedGreen, o.LedBlue, o.FlashOn, o.FlashOff}, nil
}

func (o *OutputState) UnmarshalBinary(data []byte) error {
	if len(data) < OutputFrameSize {
		return io.ErrUnexpectedEOF
	}
	o.RumbleSmall = data[0]
	o.RumbleLarge = data[1]
	o.LedRed = data[2]
	o.LedGreen = data[3]
	o.LedBlue = data[4]
	o.FlashOn = data[5]
	o.FlashOff = data[6]
	return nil
}

var buttonMap = [...]struct {
	from pad.Button
	to   uint16
}{
	{pad.ButtonCross, DS4Cross},
	{pad.ButtonCircle, DS4Circle},
	{pad.ButtonSquare, DS4Square},
	{pad.ButtonTriangle, DS4Triangle},
	{pad.ButtonLTrigger, DS4L1},
	{pad.ButtonRTrigger, DS4R1},
	{pad.ButtonSelect, DS4Share},
	{pad.ButtonStart, DS4Options},
}

var dpadMap = [...]struct {
	from pad.Button
	to   uint8
}{
	{pad.ButtonUp, DS4DPadUp},
	{pad.ButtonDown, DS4DPadDown},
	{pad.ButtonLeft, DS4DPadLeft},
	{pad.ButtonRight, DS4DPadRight},
}

// axis maps [-1, 1] onto [-127, 127].
func axis(v float32) int8 {
	f := float64(v)
	if math.IsNaN(f) {
		return 0
	}
	return int8(math.Round(math.Max(-1, math.Min(1, f)) * 127))
}

// FromPad converts a pad snapshot into a DS4 frame. Stick Y is flipped back
// to the device convention where positive points down.
func FromPad(s pad.InputState) InputState {
	out := InputState{
		LX:     axis(s.LX),
		LY:     axis(-s.LY),
		RX:     axis(s.RX),
		RY:     axis(-s.RY),
		AccelZ: restAccelZ,
	}
	for _, m := range buttonMap {
		if s.Buttons&m.from != 0 {
			out.Buttons |= m.to
		}
	}
	for _, m := range dpadMap {
		if s.Buttons&m.from != 0 {
			out.DPad |= m.to
		}
	}
	return out
}
