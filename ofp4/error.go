package ofp4

import (
	"encoding/binary"
	"fmt"
)

// Error is the body of an OFPT_ERROR message.
type Error struct {
	Type uint16
	Code uint16
	Data []byte
}

func (obj Error) MarshalBinary() (data []byte, err error) {
	data = append(make([]byte, 4), obj.Data...)
	binary.BigEndian.PutUint16(data[0:2], obj.Type)
	binary.BigEndian.PutUint16(data[2:4], obj.Code)
	return
}

func (obj *Error) UnmarshalBinary(data []byte) (err error) {
	if len(data) < 4 {
		return fmt.Errorf("error body too short")
	}
	obj.Type = binary.BigEndian.Uint16(data[0:2])
	obj.Code = binary.BigEndian.Uint16(data[2:4])
	obj.Data = data[4:]
	return
}

func (obj Error) Error() string {
	return fmt.Sprintf("type=%d code=%d", obj.Type, obj.Code)
}
