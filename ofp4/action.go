package ofp4

import (
	"encoding/binary"
)

func Align8(num int) int {
	return (num + 7) / 8 * 8
}

type ActionHeader []byte

func (self ActionHeader) Type() uint16 {
	return binary.BigEndian.Uint16(self)
}

/*
 * Length of action, including header and padding to make this 64-bit aligned.
 */
func (self ActionHeader) Len() int {
	return int(binary.BigEndian.Uint16(self[2:]))
}

// Iter splits a packed action list. It stops at the first record whose
// length is shorter than a header or runs past the buffer, so the caller can
// detect the trailing garbage by comparing the consumed length.
func (self ActionHeader) Iter() []ActionHeader {
	var seq []ActionHeader
	for cur := 0; cur+4 <= len(self); {
		a := ActionHeader(self[cur:])
		if a.Len() < 4 || a.Len() > len(a) {
			break
		}
		seq = append(seq, a[:a.Len()])
		cur += a.Len()
	}
	return seq
}

// ActionSetField is an ofp_action_set_field.
//
//	type(2) len(2) oxm_header(4) value(N) zero padding to 8
type ActionSetField []byte

func (self ActionSetField) OxmHeader() uint32 {
	return binary.BigEndian.Uint32(self[4:])
}

// Field returns the oxm TLV followed by the padding.
func (self ActionSetField) Field() []byte {
	return self[4:ActionHeader(self).Len()]
}

func MakeActionSetField(field []byte) ActionHeader {
	inner := 4 + len(field)
	length := Align8(inner)
	ret := make([]byte, length)
	binary.BigEndian.PutUint16(ret[0:], OFPAT_SET_FIELD)
	binary.BigEndian.PutUint16(ret[2:], uint16(length))
	copy(ret[4:], field)
	return ret
}
