package types

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_MacFromIPv4(t *testing.T) {
	require.Equal(t,
		MacAddr{0x01, 0x00, 0x5e, 0x01, 0x02, 0x03},
		MacFromIPv4(netip.MustParseAddr("239.1.2.3")))

	// the top bit of the second octet is dropped
	require.Equal(t,
		MacFromIPv4(netip.MustParseAddr("225.1.2.3")),
		MacFromIPv4(netip.MustParseAddr("225.129.2.3")))
}

func Test_MacFromIPv6(t *testing.T) {
	require.Equal(t,
		MacAddr{0x33, 0x33, 0xab, 0xcd, 0x12, 0x34},
		MacFromIPv6(netip.MustParseAddr("ff12::abcd:1234")))
}

func Test_IPv4LocalMulticast(t *testing.T) {
	require.True(t, IsIPv4LocalMulticast(netip.MustParseAddr("224.0.0.251")))
	require.False(t, IsIPv4LocalMulticast(netip.MustParseAddr("224.0.1.1")))
	require.False(t, IsIPv4LocalMulticast(netip.MustParseAddr("239.1.2.3")))
}

func Test_IPv6TransientMulticast(t *testing.T) {
	require.True(t, IsIPv6TransientMulticast(netip.MustParseAddr("ff12::8")))
	require.False(t, IsIPv6TransientMulticast(netip.MustParseAddr("ff02::1")))
	require.False(t, IsIPv6TransientMulticast(netip.MustParseAddr("fe80::1")))
}

func Test_GroupMac(t *testing.T) {
	v4 := Group{Proto: GroupIPv4, Addr: netip.MustParseAddr("239.1.2.3")}
	require.Equal(t, MacFromIPv4(v4.Addr), v4.Mac())

	v6 := Group{Proto: GroupIPv6, Addr: netip.MustParseAddr("ff12::8")}
	require.Equal(t, MacFromIPv6(v6.Addr), v6.Mac())

	require.True(t, Group{}.Mac().IsZero())
}

func Test_MacAddrString(t *testing.T) {
	addr := MacAddr{0x01, 0x00, 0x5e, 0x7f, 0x00, 0xff}
	require.Equal(t, "01:00:5e:7f:00:ff", addr.String())
}
