package ofpact

import (
	"bytes"
	"testing"

	"github.com/aagrwal5/openvswitch/ofp4"
	"github.com/aagrwal5/openvswitch/oxm"
	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"
	"github.com/op/go-logging"
)

func init() {
	logging.SetLevel(logging.WARNING, "ofpact")
}

var allowedIds = map[oxm.FieldId]bool{
	oxm.ETH_SRC: true, oxm.ETH_DST: true, oxm.ETH_TYPE: true,
	oxm.VLAN_VID: true, oxm.VLAN_PCP: true,
	oxm.IP_DSCP: true, oxm.IP_ECN: true, oxm.IP_PROTO: true,
	oxm.IPV4_SRC: true, oxm.IPV4_DST: true,
	oxm.TCP_SRC: true, oxm.TCP_DST: true, oxm.UDP_SRC: true, oxm.UDP_DST: true,
	oxm.ICMPV4_TYPE: true, oxm.ICMPV4_CODE: true,
	oxm.ARP_OP: true, oxm.ARP_SPA: true, oxm.ARP_TPA: true, oxm.ARP_SHA: true, oxm.ARP_THA: true,
	oxm.IPV6_SRC: true, oxm.IPV6_DST: true, oxm.IPV6_FLABEL: true,
	oxm.ICMPV6_TYPE: true, oxm.ICMPV6_CODE: true,
	oxm.ND_TARGET: true, oxm.ND_SLL: true, oxm.ND_TLL: true,
	oxm.MPLS_LABEL: true, oxm.MPLS_TC: true,
}

// sampleValue fills every bit the field declares.
func sampleValue(f *oxm.Field) oxm.Value {
	var v oxm.Value
	for i := 0; i < f.NBytes; i++ {
		v[i] = byte(0xa5 ^ i*0x11)
	}
	spare := f.NBytes*8 - f.NBits
	for i := 0; spare > 0; i++ {
		if spare >= 8 {
			v[i] = 0
			spare -= 8
		} else {
			v[i] &= 0xff >> uint(spare)
			spare = 0
		}
	}
	return v
}

func ipv4Record() []byte {
	return []byte{
		0x00, 0x19, 0x00, 0x10, // OFPAT_SET_FIELD, len=16
		0x80, 0x00, 0x18, 0x04, // OXM_OF_IPV4_DST
		10, 0, 0, 1,
		0, 0, 0, 0,
	}
}

func violation(t *testing.T, err error) Violation {
	t.Helper()
	if err == nil {
		return 0
	}
	ba, ok := err.(*BadArgument)
	if !ok {
		t.Fatalf("unexpected error type %T: %v", err, err)
	}
	return ba.Reason
}

func TestSetFieldAllowed(t *testing.T) {
	reg := oxm.NewBasicRegistry()
	for _, f := range reg.Fields() {
		if SetFieldAllowed(f) != allowedIds[f.Id] {
			t.Errorf("%s allowed=%v", f.Name, !allowedIds[f.Id])
		}
	}

	eth := *reg.ById(oxm.ETH_SRC)
	readonly := eth
	readonly.Writable = false
	nowire := eth
	nowire.OxmHeader = 0
	foreign := eth
	foreign.Id = oxm.NumFields + 3
	for _, f := range []*oxm.Field{nil, &readonly, &nowire, &foreign} {
		if SetFieldAllowed(f) {
			t.Errorf("allowed %s", spew.Sdump(f))
		}
	}
}

func TestInitSetField(t *testing.T) {
	reg := oxm.NewBasicRegistry()
	for _, f := range reg.Fields() {
		var a SetField
		a.Dst.Ofs = 3
		a.Value[0] = 0x77
		InitSetField(&a, f)
		if a.Dst.Field != f || a.Dst.Ofs != 0 || a.Dst.NBits != f.NBits {
			t.Errorf("%s: %+v", f.Name, a.Dst)
		}
		if a.Value[0] != 0x77 {
			t.Errorf("%s: value touched", f.Name)
		}
		if a.Kind() != KindSetField {
			t.Errorf("kind %v", a.Kind())
		}
	}
}

func TestCheckSetField(t *testing.T) {
	reg := oxm.NewBasicRegistry()
	build := func(id oxm.FieldId, value string) *SetField {
		f := reg.ById(id)
		a := new(SetField)
		InitSetField(a, f)
		v, err := f.ParseValue(value)
		if err != nil {
			t.Fatal(err)
		}
		a.Value = v
		return a
	}
	samples := []struct {
		Action Action
		Reason Violation
	}{
		{build(oxm.IPV4_DST, "10.0.0.1"), 0},
		{build(oxm.VLAN_PCP, "7"), 0},
		{build(oxm.MPLS_LABEL, "0xfffff"), 0},
		{build(oxm.VLAN_PCP, "8"), InvalidValue},
		{build(oxm.IP_DSCP, "0x40"), InvalidValue},
		{build(oxm.IPV6_FLABEL, "0x100000"), InvalidValue},
		{build(oxm.IN_PORT, "1"), DisallowedField},
		{build(oxm.REG0, "1"), DisallowedField},
		{build(oxm.VLAN_TCI, "0x1001"), DisallowedField},
		{build(oxm.IP_TTL, "64"), DisallowedField},
		{build(oxm.IP_FRAG, "1"), DisallowedField},
		{build(oxm.TUN_ID, "1"), DisallowedField},
		{build(oxm.TUNNEL_ID, "1"), DisallowedField},
		{build(oxm.MPLS_BOS, "1"), DisallowedField},
		{build(oxm.SCTP_SRC, "1"), DisallowedField},
		{&SetField{}, BadSubField},
		{nil, WrongKind},
		{(*SetField)(nil), WrongKind},
	}
	for i, s := range samples {
		if r := violation(t, CheckSetField(s.Action, &Flow{})); r != s.Reason {
			t.Errorf("sample %d: %v != %v", i, r, s.Reason)
		}
	}
}

func TestSetFieldFromOpenflow(t *testing.T) {
	reg := oxm.NewBasicRegistry()

	var acts List
	if err := SetFieldFromOpenflow(reg, ipv4Record(), &acts); err != nil {
		t.Fatal(err)
	}
	if len(acts) != 1 {
		t.Fatalf("%d actions", len(acts))
	}
	expected := &SetField{
		Dst:   SubField{Field: reg.ById(oxm.IPV4_DST), NBits: 32},
		Value: oxm.Value{10, 0, 0, 1},
	}
	if !cmp.Equal(acts[0], Action(expected)) {
		t.Errorf("unexpected action: %v", cmp.Diff(acts[0], Action(expected)))
	}

	mutate := func(f func(b []byte) []byte) []byte {
		return f(ipv4Record())
	}
	samples := []struct {
		Name   string
		Data   []byte
		Reason Violation
	}{
		{"unrounded length", mutate(func(b []byte) []byte { b[3] = 12; return b[:12] }), LengthMismatch},
		{"long length", mutate(func(b []byte) []byte { b[3] = 24; return append(b, make([]byte, 8)...) }), LengthMismatch},
		{"dirty padding", mutate(func(b []byte) []byte { b[15] = 1; return b }), NonZeroPadding},
		{"dirty first pad", mutate(func(b []byte) []byte { b[12] = 0x80; return b }), NonZeroPadding},
		{"masked", mutate(func(b []byte) []byte {
			b[6] |= 1
			b[7] = 8
			return append(b[:12], 255, 255, 255, 0, 0, 0, 0, 0)
		}), MaskedField},
		{"unknown", mutate(func(b []byte) []byte { b[6] = 0x50; return b }), UnknownField},
		{"nxm only", mutate(func(b []byte) []byte {
			copy(b[4:8], []byte{0x00, 0x00, 0x08, 0x04})
			return b
		}), UnknownField},
		{"short oxm", mutate(func(b []byte) []byte { b[7] = 2; b[10] = 0; b[11] = 0; return b }), LengthMismatch},
		{"short buffer", mutate(func(b []byte) []byte { return b[:10] }), Truncated},
		{"header only", mutate(func(b []byte) []byte { return b[:6] }), Truncated},
		{"wrong type", mutate(func(b []byte) []byte { b[1] = ofp4.OFPAT_GROUP; return b }), WrongType},
	}
	for _, s := range samples {
		acts := List{expected}
		if r := violation(t, SetFieldFromOpenflow(reg, s.Data, &acts)); r != s.Reason {
			t.Errorf("%s: %v != %v", s.Name, r, s.Reason)
		}
		if len(acts) != 1 {
			t.Errorf("%s: action list grew to %d", s.Name, len(acts))
		}
	}
}

func TestSetFieldFromOpenflowLongOxm(t *testing.T) {
	reg := oxm.NewBasicRegistry()
	// oxm length 6 on a 4 byte field: the extra bytes are not padding and
	// are not copied either.
	data := []byte{
		0x00, 0x19, 0x00, 0x10,
		0x80, 0x00, 0x18, 0x06,
		10, 0, 0, 1, 0xee, 0xee,
		0, 0,
	}
	var acts List
	if err := SetFieldFromOpenflow(reg, data, &acts); err != nil {
		t.Fatal(err)
	}
	a := acts[0].(*SetField)
	if a.Value != (oxm.Value{10, 0, 0, 1}) {
		t.Errorf("value %v", a.Value)
	}
}

func TestSetFieldToOpenflow(t *testing.T) {
	reg := oxm.NewBasicRegistry()
	a := new(SetField)
	InitSetField(a, reg.ById(oxm.ETH_SRC))
	copy(a.Value[:], []byte{0, 0x11, 0x22, 0x33, 0x44, 0x55})
	a.Value[6] = 0xff // beyond the field width

	prefix := []byte{1, 2, 3}
	out := SetFieldToOpenflow(a, prefix)
	expect := []byte{
		1, 2, 3,
		0x00, 0x19, 0x00, 0x10,
		0x80, 0x00, 0x08, 0x06,
		0, 0x11, 0x22, 0x33, 0x44, 0x55,
		0, 0,
	}
	if !bytes.Equal(out, expect) {
		t.Errorf("encode %v", out)
	}

	if data, err := a.MarshalBinary(); err != nil {
		t.Error(err)
	} else if !bytes.Equal(data, expect[3:]) {
		t.Errorf("marshal %v", data)
	}
}

func TestWireRoundTrip(t *testing.T) {
	reg := oxm.NewBasicRegistry()
	for _, f := range reg.Fields() {
		if !SetFieldAllowed(f) {
			continue
		}
		a := new(SetField)
		InitSetField(a, f)
		a.Value = sampleValue(f)
		if err := CheckSetField(a, nil); err != nil {
			t.Errorf("%s: %v", f.Name, err)
			continue
		}

		data := SetFieldToOpenflow(a, nil)
		if len(data)%8 != 0 || len(data) != ofp4.Align8(ofp4.OFP_ACTION_SET_FIELD_SIZE+f.NBytes) {
			t.Errorf("%s: encoded length %d", f.Name, len(data))
		}

		var acts List
		if err := SetFieldFromOpenflow(reg, data, &acts); err != nil {
			t.Errorf("%s: %v", f.Name, err)
		} else if !cmp.Equal(acts[0], Action(a)) {
			t.Errorf("%s: %v", f.Name, cmp.Diff(acts[0], Action(a)))
		}
	}
}

func TestDecodeActions(t *testing.T) {
	reg := oxm.NewBasicRegistry()

	var acts List
	for _, txt := range []string{"10.0.0.1->nw_dst", "3->vlan_pcp", "fe80::1->ipv6_src"} {
		if err := ParseSetField(reg, txt, &acts); err != nil {
			t.Fatal(err)
		}
	}
	data := EncodeActions(acts, nil)

	var back List
	if err := DecodeActions(reg, data, &back); err != nil {
		t.Fatal(err)
	}
	if !cmp.Equal(acts, back) {
		t.Errorf("decode mismatch: %v", cmp.Diff(acts, back))
	}

	// vlan_pcp 8 is well formed on the wire but not a legal value
	bad := append([]byte{}, data...)
	bad[16+8] = 8
	kept := List{acts[0]}
	if r := violation(t, DecodeActions(reg, bad, &kept)); r != InvalidValue {
		t.Errorf("%v != %v", r, InvalidValue)
	}
	if len(kept) != 1 {
		t.Errorf("list grew to %d", len(kept))
	}

	// in_port is decodable but refused by the check
	inPort := []byte{0x00, 0x19, 0x00, 0x10, 0x80, 0x00, 0x00, 0x04, 0, 0, 0, 1, 0, 0, 0, 0}
	if r := violation(t, DecodeActions(reg, inPort, &kept)); r != DisallowedField {
		t.Errorf("%v != %v", r, DisallowedField)
	}

	if r := violation(t, DecodeActions(reg, append(data, 0, 0), &kept)); r != Truncated {
		t.Errorf("%v != %v", r, Truncated)
	}

	group := []byte{0x00, 0x16, 0x00, 0x08, 0, 0, 0, 1}
	if r := violation(t, DecodeActions(reg, group, &kept)); r != WrongType {
		t.Errorf("%v != %v", r, WrongType)
	}
	if len(kept) != 1 {
		t.Errorf("list grew to %d", len(kept))
	}
}

func TestBadArgumentOfp(t *testing.T) {
	for v := LengthMismatch; v <= Truncated; v++ {
		e := (&BadArgument{Reason: v}).Ofp()
		if e.Type != ofp4.OFPET_BAD_ACTION {
			t.Errorf("%v: type %d", v, e.Type)
		}
		code := uint16(ofp4.OFPBAC_BAD_ARGUMENT)
		if v == WrongType {
			code = ofp4.OFPBAC_BAD_TYPE
		}
		if e.Code != code {
			t.Errorf("%v: code %d", v, e.Code)
		}
		if v.String() == "" || (&BadArgument{Reason: v}).Error() != v.String() {
			t.Errorf("%v: no name", int(v))
		}
	}
}

func TestSubFieldCheck(t *testing.T) {
	reg := oxm.NewBasicRegistry()
	f := reg.ById(oxm.VLAN_VID)
	samples := []struct {
		Sub SubField
		Ok  bool
	}{
		{SubField{f, 0, 13}, true},
		{SubField{f, 12, 1}, true},
		{SubField{f, 0, 14}, false},
		{SubField{f, 13, 1}, false},
		{SubField{f, -1, 2}, false},
		{SubField{f, 0, 0}, false},
		{SubField{nil, 0, 1}, false},
	}
	for _, s := range samples {
		if err := s.Sub.Check(); (err == nil) != s.Ok {
			t.Errorf("%+v: %v", s.Sub, err)
		}
	}
}
