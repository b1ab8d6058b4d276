package oxm

import (
	"encoding/binary"
)

// Oxm is a single OXM TLV: a 4 byte header followed by the payload.
type Oxm []byte

func (self Oxm) Ok() bool {
	return len(self) >= 4 && len(self) >= 4+self.Header().Length()
}

func (self Oxm) Header() Header {
	return Header(binary.BigEndian.Uint32(self))
}

func (self Oxm) Value() []byte {
	hdr := self.Header()
	length := hdr.Length()
	if hdr.HasMask() {
		return self[4 : 4+length/2]
	} else {
		return self[4 : 4+length]
	}
}

func (self Oxm) Mask() []byte {
	hdr := self.Header()
	if hdr.HasMask() {
		length := hdr.Length()
		return self[4+length/2 : 4+length]
	} else {
		return nil
	}
}

func MakeOxm(hdr Header, value []byte) Oxm {
	hdr.SetMask(false)
	hdr.SetLength(len(value))
	self := make([]byte, 4+len(value))
	binary.BigEndian.PutUint32(self, uint32(hdr))
	copy(self[4:], value)
	return self
}
