package oxm

// NewBasicRegistry returns the OpenFlow 1.3 basic fields together with the
// Nicira fields that only have an NXM encoding.
func NewBasicRegistry() *Registry {
	return NewRegistry(basicFields()...)
}

func basicFields() []Field {
	return []Field{
		{Id: IN_PORT, Name: "in_port", Writable: true, OxmHeader: OXM_OF_IN_PORT, NBits: 32, NBytes: 4, Format: FormatDecimal},
		{Id: IN_PHY_PORT, Name: "in_phy_port", Writable: false, OxmHeader: OXM_OF_IN_PHY_PORT, NBits: 32, NBytes: 4, Format: FormatDecimal},
		{Id: METADATA, Name: "metadata", Writable: true, OxmHeader: OXM_OF_METADATA, NBits: 64, NBytes: 8, Format: FormatHexadecimal},
		{Id: TUN_ID, Name: "tun_id", Writable: true, NxmHeader: NXM_NX_TUN_ID, NBits: 64, NBytes: 8, Format: FormatHexadecimal},
		{Id: REG0, Name: "reg0", Writable: true, NxmHeader: NXM_NX_REG(0), NBits: 32, NBytes: 4, Format: FormatHexadecimal},
		{Id: REG1, Name: "reg1", Writable: true, NxmHeader: NXM_NX_REG(1), NBits: 32, NBytes: 4, Format: FormatHexadecimal},
		{Id: REG2, Name: "reg2", Writable: true, NxmHeader: NXM_NX_REG(2), NBits: 32, NBytes: 4, Format: FormatHexadecimal},
		{Id: REG3, Name: "reg3", Writable: true, NxmHeader: NXM_NX_REG(3), NBits: 32, NBytes: 4, Format: FormatHexadecimal},
		{Id: REG4, Name: "reg4", Writable: true, NxmHeader: NXM_NX_REG(4), NBits: 32, NBytes: 4, Format: FormatHexadecimal},
		{Id: REG5, Name: "reg5", Writable: true, NxmHeader: NXM_NX_REG(5), NBits: 32, NBytes: 4, Format: FormatHexadecimal},
		{Id: REG6, Name: "reg6", Writable: true, NxmHeader: NXM_NX_REG(6), NBits: 32, NBytes: 4, Format: FormatHexadecimal},
		{Id: REG7, Name: "reg7", Writable: true, NxmHeader: NXM_NX_REG(7), NBits: 32, NBytes: 4, Format: FormatHexadecimal},
		{Id: ETH_SRC, Name: "eth_src", Aliases: []string{"dl_src"}, Writable: true, OxmHeader: OXM_OF_ETH_SRC, NBits: 48, NBytes: 6, Format: FormatEthernet},
		{Id: ETH_DST, Name: "eth_dst", Aliases: []string{"dl_dst"}, Writable: true, OxmHeader: OXM_OF_ETH_DST, NBits: 48, NBytes: 6, Format: FormatEthernet},
		{Id: ETH_TYPE, Name: "eth_type", Aliases: []string{"dl_type"}, Writable: true, OxmHeader: OXM_OF_ETH_TYPE, NBits: 16, NBytes: 2, Format: FormatHexadecimal},
		{Id: VLAN_TCI, Name: "vlan_tci", Writable: true, NxmHeader: NXM_OF_VLAN_TCI, NBits: 16, NBytes: 2, Format: FormatHexadecimal},
		{Id: VLAN_VID, Name: "vlan_vid", Writable: true, OxmHeader: OXM_OF_VLAN_VID, NBits: 13, NBytes: 2, Format: FormatHexadecimal},
		{Id: VLAN_PCP, Name: "vlan_pcp", Aliases: []string{"dl_vlan_pcp"}, Writable: true, OxmHeader: OXM_OF_VLAN_PCP, NBits: 3, NBytes: 1, Format: FormatDecimal},
		{Id: MPLS_LABEL, Name: "mpls_label", Writable: true, OxmHeader: OXM_OF_MPLS_LABEL, NBits: 20, NBytes: 4, Format: FormatHexadecimal},
		{Id: MPLS_TC, Name: "mpls_tc", Writable: true, OxmHeader: OXM_OF_MPLS_TC, NBits: 3, NBytes: 1, Format: FormatDecimal},
		{Id: MPLS_BOS, Name: "mpls_bos", Writable: false, OxmHeader: OXM_OF_MPLS_BOS, NBits: 1, NBytes: 1, Format: FormatDecimal},
		{Id: PBB_ISID, Name: "pbb_isid", Writable: true, OxmHeader: OXM_OF_PBB_ISID, NBits: 24, NBytes: 3, Format: FormatHexadecimal},
		{Id: TUNNEL_ID, Name: "tunnel_id", Writable: true, OxmHeader: OXM_OF_TUNNEL_ID, NBits: 64, NBytes: 8, Format: FormatHexadecimal},
		{Id: IPV4_SRC, Name: "ipv4_src", Aliases: []string{"ip_src", "nw_src"}, Writable: true, OxmHeader: OXM_OF_IPV4_SRC, NBits: 32, NBytes: 4, Format: FormatIPv4},
		{Id: IPV4_DST, Name: "ipv4_dst", Aliases: []string{"ip_dst", "nw_dst"}, Writable: true, OxmHeader: OXM_OF_IPV4_DST, NBits: 32, NBytes: 4, Format: FormatIPv4},
		{Id: IPV6_SRC, Name: "ipv6_src", Writable: true, OxmHeader: OXM_OF_IPV6_SRC, NBits: 128, NBytes: 16, Format: FormatIPv6},
		{Id: IPV6_DST, Name: "ipv6_dst", Writable: true, OxmHeader: OXM_OF_IPV6_DST, NBits: 128, NBytes: 16, Format: FormatIPv6},
		{Id: IPV6_FLABEL, Name: "ipv6_flabel", Aliases: []string{"ipv6_label"}, Writable: true, OxmHeader: OXM_OF_IPV6_FLABEL, NBits: 20, NBytes: 4, Format: FormatHexadecimal},
		{Id: IPV6_EXTHDR, Name: "ipv6_exthdr", Writable: false, OxmHeader: OXM_OF_IPV6_EXTHDR, NBits: 9, NBytes: 2, Format: FormatHexadecimal},
		{Id: IP_PROTO, Name: "ip_proto", Aliases: []string{"nw_proto"}, Writable: true, OxmHeader: OXM_OF_IP_PROTO, NBits: 8, NBytes: 1, Format: FormatDecimal},
		{Id: IP_DSCP, Name: "ip_dscp", Writable: true, OxmHeader: OXM_OF_IP_DSCP, NBits: 6, NBytes: 1, Format: FormatHexadecimal},
		{Id: IP_ECN, Name: "ip_ecn", Aliases: []string{"nw_ecn"}, Writable: true, OxmHeader: OXM_OF_IP_ECN, NBits: 2, NBytes: 1, Format: FormatHexadecimal},
		{Id: IP_TTL, Name: "ip_ttl", Aliases: []string{"nw_ttl"}, Writable: true, NxmHeader: NXM_NX_IP_TTL, NBits: 8, NBytes: 1, Format: FormatDecimal},
		{Id: IP_FRAG, Name: "ip_frag", Aliases: []string{"nw_frag"}, Writable: false, NxmHeader: NXM_NX_IP_FRAG, NBits: 2, NBytes: 1, Format: FormatHexadecimal},
		{Id: ARP_OP, Name: "arp_op", Writable: true, OxmHeader: OXM_OF_ARP_OP, NBits: 16, NBytes: 2, Format: FormatDecimal},
		{Id: ARP_SPA, Name: "arp_spa", Writable: true, OxmHeader: OXM_OF_ARP_SPA, NBits: 32, NBytes: 4, Format: FormatIPv4},
		{Id: ARP_TPA, Name: "arp_tpa", Writable: true, OxmHeader: OXM_OF_ARP_TPA, NBits: 32, NBytes: 4, Format: FormatIPv4},
		{Id: ARP_SHA, Name: "arp_sha", Writable: true, OxmHeader: OXM_OF_ARP_SHA, NBits: 48, NBytes: 6, Format: FormatEthernet},
		{Id: ARP_THA, Name: "arp_tha", Writable: true, OxmHeader: OXM_OF_ARP_THA, NBits: 48, NBytes: 6, Format: FormatEthernet},
		{Id: TCP_SRC, Name: "tcp_src", Writable: true, OxmHeader: OXM_OF_TCP_SRC, NBits: 16, NBytes: 2, Format: FormatDecimal},
		{Id: TCP_DST, Name: "tcp_dst", Writable: true, OxmHeader: OXM_OF_TCP_DST, NBits: 16, NBytes: 2, Format: FormatDecimal},
		{Id: UDP_SRC, Name: "udp_src", Writable: true, OxmHeader: OXM_OF_UDP_SRC, NBits: 16, NBytes: 2, Format: FormatDecimal},
		{Id: UDP_DST, Name: "udp_dst", Writable: true, OxmHeader: OXM_OF_UDP_DST, NBits: 16, NBytes: 2, Format: FormatDecimal},
		{Id: SCTP_SRC, Name: "sctp_src", Writable: true, OxmHeader: OXM_OF_SCTP_SRC, NBits: 16, NBytes: 2, Format: FormatDecimal},
		{Id: SCTP_DST, Name: "sctp_dst", Writable: true, OxmHeader: OXM_OF_SCTP_DST, NBits: 16, NBytes: 2, Format: FormatDecimal},
		{Id: ICMPV4_TYPE, Name: "icmpv4_type", Aliases: []string{"icmp_type"}, Writable: true, OxmHeader: OXM_OF_ICMPV4_TYPE, NBits: 8, NBytes: 1, Format: FormatDecimal},
		{Id: ICMPV4_CODE, Name: "icmpv4_code", Aliases: []string{"icmp_code"}, Writable: true, OxmHeader: OXM_OF_ICMPV4_CODE, NBits: 8, NBytes: 1, Format: FormatDecimal},
		{Id: ICMPV6_TYPE, Name: "icmpv6_type", Writable: true, OxmHeader: OXM_OF_ICMPV6_TYPE, NBits: 8, NBytes: 1, Format: FormatDecimal},
		{Id: ICMPV6_CODE, Name: "icmpv6_code", Writable: true, OxmHeader: OXM_OF_ICMPV6_CODE, NBits: 8, NBytes: 1, Format: FormatDecimal},
		{Id: ND_TARGET, Name: "ipv6_nd_target", Aliases: []string{"nd_target"}, Writable: true, OxmHeader: OXM_OF_IPV6_ND_TARGET, NBits: 128, NBytes: 16, Format: FormatIPv6},
		{Id: ND_SLL, Name: "ipv6_nd_sll", Aliases: []string{"nd_sll"}, Writable: true, OxmHeader: OXM_OF_IPV6_ND_SLL, NBits: 48, NBytes: 6, Format: FormatEthernet},
		{Id: ND_TLL, Name: "ipv6_nd_tll", Aliases: []string{"nd_tll"}, Writable: true, OxmHeader: OXM_OF_IPV6_ND_TLL, NBits: 48, NBytes: 6, Format: FormatEthernet},
	}
}
