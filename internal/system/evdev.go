package system

import "encoding/binary"

// Linux input-event-codes.h
const (
	EvKey = 0x01
	EvRel = 0x02

	RelX = 0x00
	RelY = 0x01

	BtnLeft   = 0x110
	BtnRight  = 0x111
	BtnMiddle = 0x112
)

// Key values of an EV_KEY record.
const (
	KeyReleased = 0
	KeyPressed  = 1
	KeyRepeated = 2
)

// InputEvent is one struct input_event with the timestamp dropped.
type InputEvent struct {
	Type  uint16
	Code  uint16
	Value int32
}

// ParseInputEvents decodes consecutive input_event records from buf.
// tvSize is the size of struct timeval on the running architecture; a
// trailing partial record is ignored.
func ParseInputEvents(buf []byte, tvSize int) []InputEvent {
	eventSize := tvSize + 2 + 2 + 4
	var out []InputEvent
	for off := 0; off+eventSize <= len(buf); off += eventSize {
		rec := buf[off : off+eventSize]
		out = append(out, InputEvent{
			Type:  binary.LittleEndian.Uint16(rec[tvSize : tvSize+2]),
			Code:  binary.LittleEndian.Uint16(rec[tvSize+2 : tvSize+4]),
			Value: int32(binary.LittleEndian.Uint32(rec[tvSize+4 : tvSize+8])),
		})
	}
	return out
}
