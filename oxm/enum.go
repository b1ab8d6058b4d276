package oxm

const (
	OFPXMC_NXM_0          = 0x0000
	OFPXMC_NXM_1          = 0x0001
	OFPXMC_OPENFLOW_BASIC = 0x8000
	OFPXMC_EXPERIMENTER   = 0xffff
)

const (
	OFPXMT_OFB_IN_PORT = iota
	OFPXMT_OFB_IN_PHY_PORT
	OFPXMT_OFB_METADATA
	OFPXMT_OFB_ETH_DST
	OFPXMT_OFB_ETH_SRC
	OFPXMT_OFB_ETH_TYPE
	OFPXMT_OFB_VLAN_VID
	OFPXMT_OFB_VLAN_PCP
	OFPXMT_OFB_IP_DSCP
	OFPXMT_OFB_IP_ECN
	OFPXMT_OFB_IP_PROTO
	OFPXMT_OFB_IPV4_SRC
	OFPXMT_OFB_IPV4_DST
	OFPXMT_OFB_TCP_SRC
	OFPXMT_OFB_TCP_DST
	OFPXMT_OFB_UDP_SRC
	OFPXMT_OFB_UDP_DST
	OFPXMT_OFB_SCTP_SRC
	OFPXMT_OFB_SCTP_DST
	OFPXMT_OFB_ICMPV4_TYPE
	OFPXMT_OFB_ICMPV4_CODE
	OFPXMT_OFB_ARP_OP
	OFPXMT_OFB_ARP_SPA
	OFPXMT_OFB_ARP_TPA
	OFPXMT_OFB_ARP_SHA
	OFPXMT_OFB_ARP_THA
	OFPXMT_OFB_IPV6_SRC
	OFPXMT_OFB_IPV6_DST
	OFPXMT_OFB_IPV6_FLABEL
	OFPXMT_OFB_ICMPV6_TYPE
	OFPXMT_OFB_ICMPV6_CODE
	OFPXMT_OFB_IPV6_ND_TARGET
	OFPXMT_OFB_IPV6_ND_SLL
	OFPXMT_OFB_IPV6_ND_TLL
	OFPXMT_OFB_MPLS_LABEL
	OFPXMT_OFB_MPLS_TC
	OFPXMT_OFB_MPLS_BOS
	OFPXMT_OFB_PBB_ISID
	OFPXMT_OFB_TUNNEL_ID
	OFPXMT_OFB_IPV6_EXTHDR
)

func basic(field uint32, length int) Header {
	return Header(OFPXMC_OPENFLOW_BASIC<<16 | field<<9 | uint32(length))
}

func nxm(class, field uint32, length int) Header {
	return Header(class<<16 | field<<9 | uint32(length))
}

var (
	OXM_OF_IN_PORT        = basic(OFPXMT_OFB_IN_PORT, 4)
	OXM_OF_IN_PHY_PORT    = basic(OFPXMT_OFB_IN_PHY_PORT, 4)
	OXM_OF_METADATA       = basic(OFPXMT_OFB_METADATA, 8)
	OXM_OF_ETH_DST        = basic(OFPXMT_OFB_ETH_DST, 6)
	OXM_OF_ETH_SRC        = basic(OFPXMT_OFB_ETH_SRC, 6)
	OXM_OF_ETH_TYPE       = basic(OFPXMT_OFB_ETH_TYPE, 2)
	OXM_OF_VLAN_VID       = basic(OFPXMT_OFB_VLAN_VID, 2)
	OXM_OF_VLAN_PCP       = basic(OFPXMT_OFB_VLAN_PCP, 1)
	OXM_OF_IP_DSCP        = basic(OFPXMT_OFB_IP_DSCP, 1)
	OXM_OF_IP_ECN         = basic(OFPXMT_OFB_IP_ECN, 1)
	OXM_OF_IP_PROTO       = basic(OFPXMT_OFB_IP_PROTO, 1)
	OXM_OF_IPV4_SRC       = basic(OFPXMT_OFB_IPV4_SRC, 4)
	OXM_OF_IPV4_DST       = basic(OFPXMT_OFB_IPV4_DST, 4)
	OXM_OF_TCP_SRC        = basic(OFPXMT_OFB_TCP_SRC, 2)
	OXM_OF_TCP_DST        = basic(OFPXMT_OFB_TCP_DST, 2)
	OXM_OF_UDP_SRC        = basic(OFPXMT_OFB_UDP_SRC, 2)
	OXM_OF_UDP_DST        = basic(OFPXMT_OFB_UDP_DST, 2)
	OXM_OF_SCTP_SRC       = basic(OFPXMT_OFB_SCTP_SRC, 2)
	OXM_OF_SCTP_DST       = basic(OFPXMT_OFB_SCTP_DST, 2)
	OXM_OF_ICMPV4_TYPE    = basic(OFPXMT_OFB_ICMPV4_TYPE, 1)
	OXM_OF_ICMPV4_CODE    = basic(OFPXMT_OFB_ICMPV4_CODE, 1)
	OXM_OF_ARP_OP         = basic(OFPXMT_OFB_ARP_OP, 2)
	OXM_OF_ARP_SPA        = basic(OFPXMT_OFB_ARP_SPA, 4)
	OXM_OF_ARP_TPA        = basic(OFPXMT_OFB_ARP_TPA, 4)
	OXM_OF_ARP_SHA        = basic(OFPXMT_OFB_ARP_SHA, 6)
	OXM_OF_ARP_THA        = basic(OFPXMT_OFB_ARP_THA, 6)
	OXM_OF_IPV6_SRC       = basic(OFPXMT_OFB_IPV6_SRC, 16)
	OXM_OF_IPV6_DST       = basic(OFPXMT_OFB_IPV6_DST, 16)
	OXM_OF_IPV6_FLABEL    = basic(OFPXMT_OFB_IPV6_FLABEL, 4)
	OXM_OF_ICMPV6_TYPE    = basic(OFPXMT_OFB_ICMPV6_TYPE, 1)
	OXM_OF_ICMPV6_CODE    = basic(OFPXMT_OFB_ICMPV6_CODE, 1)
	OXM_OF_IPV6_ND_TARGET = basic(OFPXMT_OFB_IPV6_ND_TARGET, 16)
	OXM_OF_IPV6_ND_SLL    = basic(OFPXMT_OFB_IPV6_ND_SLL, 6)
	OXM_OF_IPV6_ND_TLL    = basic(OFPXMT_OFB_IPV6_ND_TLL, 6)
	OXM_OF_MPLS_LABEL     = basic(OFPXMT_OFB_MPLS_LABEL, 4)
	OXM_OF_MPLS_TC        = basic(OFPXMT_OFB_MPLS_TC, 1)
	OXM_OF_MPLS_BOS       = basic(OFPXMT_OFB_MPLS_BOS, 1)
	OXM_OF_PBB_ISID       = basic(OFPXMT_OFB_PBB_ISID, 3)
	OXM_OF_TUNNEL_ID      = basic(OFPXMT_OFB_TUNNEL_ID, 8)
	OXM_OF_IPV6_EXTHDR    = basic(OFPXMT_OFB_IPV6_EXTHDR, 2)
)

// Nicira extensible match fields that have no OpenFlow basic class counterpart.
var (
	NXM_OF_VLAN_TCI = nxm(OFPXMC_NXM_0, 4, 2)
	NXM_NX_TUN_ID   = nxm(OFPXMC_NXM_1, 16, 8)
	NXM_NX_IP_FRAG  = nxm(OFPXMC_NXM_1, 26, 1)
	NXM_NX_IP_TTL   = nxm(OFPXMC_NXM_1, 29, 1)
)

func NXM_NX_REG(n int) Header {
	return nxm(OFPXMC_NXM_1, uint32(n), 4)
}

const (
	OFPVID_PRESENT = 0x1000
	OFPVID_NONE    = 0x0000
)

const (
	OFPIEH_NONEXT = 1 << iota
	OFPIEH_ESP
	OFPIEH_AUTH
	OFPIEH_DEST
	OFPIEH_FRAG
	OFPIEH_ROUTER
	OFPIEH_HOP
	OFPIEH_UNREP
	OFPIEH_UNSEQ
)
