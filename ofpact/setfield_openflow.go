package ofpact

import (
	"encoding/binary"

	"github.com/aagrwal5/openvswitch/ofp4"
	"github.com/aagrwal5/openvswitch/oxm"
)

// SetFieldFromOpenflow decodes an ofp_action_set_field and appends the
// result to acts. Nothing is appended when an error is returned.
func SetFieldFromOpenflow(reg *oxm.Registry, oasf ofp4.ActionSetField, acts *List) error {
	if len(oasf) < ofp4.OFP_ACTION_SET_FIELD_SIZE {
		return badArgument(Truncated, "%d bytes", len(oasf))
	}
	if t := ofp4.ActionHeader(oasf).Type(); t != ofp4.OFPAT_SET_FIELD {
		return badArgument(WrongType, "type %d", t)
	}
	length := ofp4.ActionHeader(oasf).Len()
	if length > len(oasf) {
		return badArgument(Truncated, "len %d with %d bytes", length, len(oasf))
	}
	hdr := oxm.Header(oasf.OxmHeader())
	oxmLength := hdr.Length()

	// ofp_action_set_field is zero padded to 64 bits
	end := ofp4.OFP_ACTION_SET_FIELD_SIZE + oxmLength
	if length != ofp4.Align8(end) {
		return badArgument(LengthMismatch, "len %d for oxm length %d", length, oxmLength)
	}
	for i := end; i < length; i++ {
		if oasf[i] != 0 {
			return badArgument(NonZeroPadding, "byte %d is 0x%02x", i, oasf[i])
		}
	}

	if hdr.HasMask() {
		return badArgument(MaskedField, "oxm header 0x%08x", uint32(hdr))
	}
	f := reg.ByHeader(hdr)
	if f == nil || f.OxmHeader == 0 {
		return badArgument(UnknownField, "oxm header 0x%08x", uint32(hdr))
	}
	if oxmLength < f.NBytes {
		return badArgument(LengthMismatch, "%s needs %d bytes, oxm has %d", f.Name, f.NBytes, oxmLength)
	}

	n := len(*acts)
	a := acts.PutSetField()
	InitSetField(a, f)
	copy(f.Bytes(&a.Value), oasf[ofp4.OFP_ACTION_SET_FIELD_SIZE:])
	if err := a.Dst.Check(); err != nil {
		acts.Truncate(n)
		return err
	}
	return nil
}

// SetFieldToOpenflow appends the wire form of a to openflow.
func SetFieldToOpenflow(a *SetField, openflow []byte) []byte {
	f := a.Dst.Field
	length := ofp4.OFP_ACTION_SET_FIELD_SIZE + f.NBytes
	// ofp_action_set_field is padded to align 8 bytes
	roundup := ofp4.Align8(length)

	hdr := f.OxmHeader
	hdr.SetMask(false)
	hdr.SetLength(f.NBytes)

	var prefix [ofp4.OFP_ACTION_SET_FIELD_SIZE]byte
	binary.BigEndian.PutUint16(prefix[0:], ofp4.OFPAT_SET_FIELD)
	binary.BigEndian.PutUint16(prefix[2:], uint16(roundup))
	binary.BigEndian.PutUint32(prefix[4:], uint32(hdr))

	openflow = append(openflow, prefix[:]...)
	openflow = append(openflow, f.Bytes(&a.Value)...)
	return append(openflow, make([]byte, roundup-length)...)
}

func (self *SetField) MarshalBinary() ([]byte, error) {
	return SetFieldToOpenflow(self, nil), nil
}

// DecodeActions decodes a packed list of set_field actions into acts and runs
// the check of every record. On error acts is left as it was.
func DecodeActions(reg *oxm.Registry, data []byte, acts *List) error {
	n := len(*acts)
	seq := ofp4.ActionHeader(data).Iter()
	consumed := 0
	for _, a := range seq {
		consumed += len(a)
	}
	if consumed != len(data) {
		return badArgument(Truncated, "%d trailing bytes", len(data)-consumed)
	}
	for _, a := range seq {
		if err := SetFieldFromOpenflow(reg, ofp4.ActionSetField(a), acts); err != nil {
			acts.Truncate(n)
			return err
		}
		if err := CheckSetField((*acts)[len(*acts)-1], nil); err != nil {
			acts.Truncate(n)
			return err
		}
	}
	return nil
}

// EncodeActions appends the wire form of every action in acts.
func EncodeActions(acts List, openflow []byte) []byte {
	for _, a := range acts {
		switch t := a.(type) {
		case *SetField:
			openflow = SetFieldToOpenflow(t, openflow)
		default:
			panic("unsupported action kind " + a.Kind().String())
		}
	}
	return openflow
}
