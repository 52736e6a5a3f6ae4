package types

import (
	"fmt"
	"net/netip"
)

// MacLen is the length in bytes of a link-layer address.
const MacLen = 6

// MacAddr is a 6-byte link-layer multicast address. Two addresses are
// equal iff all their bytes are equal.
type MacAddr [MacLen]byte

func (a MacAddr) String() string {
	return fmt.Sprintf("%02x:%02x:%02x:%02x:%02x:%02x",
		a[0], a[1], a[2], a[3], a[4], a[5])
}

// IsZero returns true for the all-zero address, which is not a valid
// multicast address.
func (a MacAddr) IsZero() bool {
	return a == MacAddr{}
}

// MacFromIPv4 maps an IPv4 multicast group to its link-layer address
// (RFC 1112): 01:00:5e followed by the low 23 bits of the group.
func MacFromIPv4(ip netip.Addr) MacAddr {
	b := ip.Unmap().As4()
	return MacAddr{0x01, 0x00, 0x5e, b[1] & 0x7f, b[2], b[3]}
}

// MacFromIPv6 maps an IPv6 multicast group to its link-layer address
// (RFC 2464): 33:33 followed by the low 32 bits of the group.
func MacFromIPv6(ip netip.Addr) MacAddr {
	b := ip.As16()
	return MacAddr{0x33, 0x33, b[12], b[13], b[14], b[15]}
}

// IsIPv4LocalMulticast reports whether the group is link-local IPv4
// multicast (224.0.0.0/24), reserved for control traffic that never
// leaves the local segment.
func IsIPv4LocalMulticast(ip netip.Addr) bool {
	b := ip.Unmap().As4()
	return b[0] == 224 && b[1] == 0 && b[2] == 0
}

// IsIPv6TransientMulticast reports whether the group carries the
// transient (T) flag, i.e. it is dynamically assigned rather than a
// well-known permanent group.
func IsIPv6TransientMulticast(ip netip.Addr) bool {
	b := ip.As16()
	return b[0] == 0xff && b[1]&0x10 != 0
}

// GroupProto tags the protocol of a snooped multicast group record.
type GroupProto uint8

const (
	// GroupUnknown is the zero value, used for records whose protocol
	// the snooping database could not identify.
	GroupUnknown GroupProto = iota
	GroupIPv4
	GroupIPv6
)

// Group is one multicast group record from a bridge snooping database.
type Group struct {
	Proto GroupProto
	Addr  netip.Addr
}

// Mac converts the group to its link-layer representation. Records
// with an unknown protocol map to the all-zero address.
func (g Group) Mac() MacAddr {
	switch g.Proto {
	case GroupIPv4:
		return MacFromIPv4(g.Addr)
	case GroupIPv6:
		return MacFromIPv6(g.Addr)
	default:
		return MacAddr{}
	}
}

func (g Group) String() string {
	switch g.Proto {
	case GroupIPv4:
		return fmt.Sprintf("ipv4:%s", g.Addr)
	case GroupIPv6:
		return fmt.Sprintf("ipv6:%s", g.Addr)
	default:
		return "unknown"
	}
}
