package oxm

// Header is a 32 bit OXM (or NXM) type header.
//
//	class(16) | field(7) | hasmask(1) | length(8)
type Header uint32

func (self Header) Class() uint16 {
	return uint16(self >> 16)
}

func (self Header) Field() uint8 {
	return uint8(self>>9) & 0x7f
}

func (self Header) HasMask() bool {
	return self&0x100 != 0
}

// Length is the payload length in bytes, which covers both value and mask
// when HasMask is set.
func (self Header) Length() int {
	return int(self & 0xff)
}

// Type strips the mask bit and the length, leaving the field identity.
func (self Header) Type() uint32 {
	return uint32(self) &^ 0x1ff
}

func (self *Header) SetMask(mask bool) {
	if mask {
		*self |= 0x100
	} else {
		*self &^= 0x100
	}
}

func (self *Header) SetLength(length int) {
	*self = *self&^0xff | Header(length&0xff)
}
