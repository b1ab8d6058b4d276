package oxm

import (
	"net"
	"sort"
	"strconv"

	"github.com/pkg/errors"
)

// FieldId enumerates the catalogued packet header and pipeline fields.
type FieldId int

const (
	IN_PORT FieldId = iota
	IN_PHY_PORT
	METADATA
	TUN_ID
	REG0
	REG1
	REG2
	REG3
	REG4
	REG5
	REG6
	REG7
	ETH_SRC
	ETH_DST
	ETH_TYPE
	VLAN_TCI
	VLAN_VID
	VLAN_PCP
	MPLS_LABEL
	MPLS_TC
	MPLS_BOS
	PBB_ISID
	TUNNEL_ID
	IPV4_SRC
	IPV4_DST
	IPV6_SRC
	IPV6_DST
	IPV6_FLABEL
	IPV6_EXTHDR
	IP_PROTO
	IP_DSCP
	IP_ECN
	IP_TTL
	IP_FRAG
	ARP_OP
	ARP_SPA
	ARP_TPA
	ARP_SHA
	ARP_THA
	TCP_SRC
	TCP_DST
	UDP_SRC
	UDP_DST
	SCTP_SRC
	SCTP_DST
	ICMPV4_TYPE
	ICMPV4_CODE
	ICMPV6_TYPE
	ICMPV6_CODE
	ND_TARGET
	ND_SLL
	ND_TLL

	// NumFields is the catalog size. No valid FieldId is at or above it.
	NumFields
)

// Format selects the literal syntax of a field value.
type Format int

const (
	FormatDecimal Format = iota
	FormatHexadecimal
	FormatEthernet
	FormatIPv4
	FormatIPv6
)

// MaxBytes is the widest field value, an IPv6 address.
const MaxBytes = 16

// Value holds a field value in network byte order in its first NBytes bytes.
// The rest is never interpreted.
type Value [MaxBytes]byte

type Field struct {
	Id       FieldId
	Name     string
	Aliases  []string
	Writable bool

	// OxmHeader is zero for fields that have no OpenFlow basic class encoding.
	OxmHeader Header
	NxmHeader Header

	NBits  int
	NBytes int
	Format Format
}

func (self *Field) Bytes(v *Value) []byte {
	return v[:self.NBytes]
}

// IsValueValid reports whether v fits in the field's declared bit width.
// Bits above NBits within NBytes must be zero.
func (self *Field) IsValueValid(v Value) bool {
	spare := self.NBytes*8 - self.NBits
	for i := 0; spare > 0; i++ {
		if spare >= 8 {
			if v[i] != 0 {
				return false
			}
			spare -= 8
		} else {
			if v[i]>>uint(8-spare) != 0 {
				return false
			}
			spare = 0
		}
	}
	return true
}

func (self *Field) ParseValue(txt string) (Value, error) {
	var v Value
	switch self.Format {
	case FormatEthernet:
		hw, err := net.ParseMAC(txt)
		if err != nil || len(hw) != 6 {
			return v, errors.Errorf("%s: invalid Ethernet address", txt)
		}
		copy(v[:], hw)
	case FormatIPv4:
		ip := net.ParseIP(txt).To4()
		if ip == nil {
			return v, errors.Errorf("%s: invalid IP address", txt)
		}
		copy(v[:], ip)
	case FormatIPv6:
		ip := net.ParseIP(txt)
		if ip == nil {
			return v, errors.Errorf("%s: invalid IPv6 address", txt)
		}
		copy(v[:], ip.To16())
	default:
		if self.NBytes > 8 {
			return v, errors.Errorf("%s: integer syntax not supported for %s", txt, self.Name)
		}
		n, err := strconv.ParseUint(txt, 0, self.NBytes*8)
		if err != nil {
			return v, errors.Wrapf(err, "%s: invalid %s", txt, self.Name)
		}
		for i := self.NBytes - 1; i >= 0; i-- {
			v[i] = byte(n)
			n >>= 8
		}
	}
	return v, nil
}

func (self *Field) FormatValue(v Value) string {
	p := self.Bytes(&v)
	switch self.Format {
	case FormatEthernet:
		return net.HardwareAddr(p).String()
	case FormatIPv4, FormatIPv6:
		return net.IP(p).String()
	}
	var n uint64
	for _, c := range p {
		n = n<<8 | uint64(c)
	}
	if self.Format == FormatHexadecimal {
		return "0x" + strconv.FormatUint(n, 16)
	}
	return strconv.FormatUint(n, 10)
}

// Registry is an immutable field catalog. It is safe for concurrent use.
type Registry struct {
	ids     map[FieldId]*Field
	names   map[string]*Field
	headers map[uint32]*Field
}

func NewRegistry(fields ...Field) *Registry {
	self := &Registry{
		ids:     make(map[FieldId]*Field),
		names:   make(map[string]*Field),
		headers: make(map[uint32]*Field),
	}
	for i := range fields {
		f := &fields[i]
		self.ids[f.Id] = f
		self.names[f.Name] = f
		for _, alias := range f.Aliases {
			self.names[alias] = f
		}
		if f.OxmHeader != 0 {
			self.headers[f.OxmHeader.Type()] = f
		}
		if f.NxmHeader != 0 {
			self.headers[f.NxmHeader.Type()] = f
		}
	}
	return self
}

func (self *Registry) ById(id FieldId) *Field {
	return self.ids[id]
}

// ByName matches the canonical name or any alias exactly.
func (self *Registry) ByName(name string) *Field {
	return self.names[name]
}

// ByHeader ignores the mask bit and the length of hdr.
func (self *Registry) ByHeader(hdr Header) *Field {
	return self.headers[hdr.Type()]
}

// Fields returns the catalog ordered by Id.
func (self *Registry) Fields() []*Field {
	ret := make([]*Field, 0, len(self.ids))
	for _, f := range self.ids {
		ret = append(ret, f)
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i].Id < ret[j].Id })
	return ret
}
