package pad

import (
	"encoding/binary"
	"io"
	"math"
)

// InputState is a point-in-time copy of the controller state.
//
// Wire format: fixed 20 bytes, little-endian.
// buttons:u32 lx:f32 ly:f32 rx:f32 ry:f32
type InputState struct {
	Buttons Button
	LX, LY  float32
	RX, RY  float32
}

func (s InputState) MarshalBinary() ([]byte, error) {
	b := make([]byte, InputStateSize)
	binary.LittleEndian.PutUint32(b[0:4], uint32(s.Buttons))
	binary.LittleEndian.PutUint32(b[4:8], math.Float32bits(s.LX))
	binary.LittleEndian.PutUint32(b[8:12], math.Float32bits(s.LY))
	binary.LittleEndian.PutUint32(b[12:16], math.Float32bits(s.RX))
	binary.LittleEndian.PutUint32(b[16:20], math.Float32bits(s.RY))
	return b, nil
}

func (s *InputState) UnmarshalBinary(data []byte) error {
	if len(data) < InputStateSize {
		return io.ErrUnexpectedEOF
	}
	s.Buttons = Button(binary.LittleEndian.Uint32(data[0:4]))
	s.LX = math.Float32frombits(binary.LittleEndian.Uint32(data[4:8]))
	s.LY = math.Float32frombits(binary.LittleEndian.Uint32(data[8:12]))
	s.RX = math.Float32frombits(binary.LittleEndian.Uint32(data[12:16]))
	s.RY = math.Float32frombits(binary.LittleEndian.Uint32(data[16:20]))
	return nil
}
