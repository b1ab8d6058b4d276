package ofpact

import (
	"github.com/aagrwal5/openvswitch/oxm"
)

// SetFieldAllowed reports whether set_field may target f. Anything not
// listed here is refused.
func SetFieldAllowed(f *oxm.Field) bool {
	if f == nil || !f.Writable || f.OxmHeader == 0 {
		return false
	}
	switch f.Id {
	case oxm.ETH_SRC,
		oxm.ETH_DST,
		oxm.ETH_TYPE,
		oxm.VLAN_VID,
		oxm.VLAN_PCP,
		oxm.IP_DSCP,
		oxm.IP_ECN,
		oxm.IP_PROTO,
		oxm.IPV4_SRC,
		oxm.IPV4_DST,
		oxm.TCP_SRC,
		oxm.TCP_DST,
		oxm.UDP_SRC,
		oxm.UDP_DST,
		oxm.ICMPV4_TYPE,
		oxm.ICMPV4_CODE,
		oxm.ARP_OP,
		oxm.ARP_SPA,
		oxm.ARP_TPA,
		oxm.ARP_SHA,
		oxm.ARP_THA,
		oxm.IPV6_SRC,
		oxm.IPV6_DST,
		oxm.IPV6_FLABEL,
		oxm.ICMPV6_TYPE,
		oxm.ICMPV6_CODE,
		oxm.ND_TARGET,
		oxm.ND_SLL,
		oxm.ND_TLL,
		oxm.MPLS_LABEL,
		oxm.MPLS_TC:
		return true

	case oxm.TUN_ID,
		oxm.TUNNEL_ID,
		oxm.MPLS_BOS,
		oxm.IN_PORT,
		oxm.IN_PHY_PORT,
		oxm.REG0, oxm.REG1, oxm.REG2, oxm.REG3,
		oxm.REG4, oxm.REG5, oxm.REG6, oxm.REG7,
		oxm.VLAN_TCI,
		oxm.IP_TTL,
		oxm.IP_FRAG,
		oxm.NumFields:
		return false
	}
	return false
}

// InitSetField makes a write the whole of f. Value is left alone.
func InitSetField(a *SetField, f *oxm.Field) {
	a.Dst.Field = f
	a.Dst.Ofs = 0
	a.Dst.NBits = f.NBits
}

// CheckSetField is the gate every set_field action passes before it is
// handed to the flow table, whichever way it was built.
func CheckSetField(a Action, flow *Flow) error {
	sf, ok := a.(*SetField)
	if !ok || sf == nil {
		return badArgument(WrongKind, "%T is not set_field", a)
	}
	f := sf.Dst.Field
	if f == nil {
		return badArgument(BadSubField, "no field")
	}
	if !SetFieldAllowed(f) {
		return badArgument(DisallowedField, "%s", f.Name)
	}
	if !f.IsValueValid(sf.Value) {
		return badArgument(InvalidValue, "%s for %s", f.FormatValue(sf.Value), f.Name)
	}
	// TODO: check the field prerequisites against flow. A plain match test is
	// not enough: set_field on mpls_label is fine after a push_mpls earlier in
	// the same list even when the flow itself matches no MPLS ethertype.
	return nil
}
