package impl

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meshcast/meshcast/types"
)

func Test_Classifier_TransientIPv6(t *testing.T) {
	dev := &fakeDevice{name: "mesh0"}

	// ff12::/16 carries the transient flag, ff02::/16 does not
	transient := dev.join6("ff12::8")
	permanent := dev.join6("ff02::1")

	require.True(t, hasUnspecialAddr(transient, dev))
	require.False(t, hasUnspecialAddr(permanent, dev))

	// no membership record maps to this address
	unknown := types.MacFromIPv6(netip.MustParseAddr("ff12::9"))
	require.False(t, hasUnspecialAddr(unknown, dev))
}

func Test_Classifier_NonLocalIPv4(t *testing.T) {
	dev := &fakeDevice{name: "mesh0"}

	local := dev.join4("224.0.0.251")
	routable := dev.join4("239.1.2.3")

	require.False(t, hasUnspecialAddr(local, dev))
	require.True(t, hasUnspecialAddr(routable, dev))
}

func Test_Classifier_IPv4MacCollision(t *testing.T) {
	dev := &fakeDevice{name: "mesh0"}

	// 224.0.0.5 and 225.0.0.5 map to the same link-layer address; one
	// matching non-link-local membership is enough.
	addr := dev.join4("224.0.0.5")
	require.Equal(t, addr, dev.join4("225.0.0.5"))

	require.True(t, hasUnspecialAddr(addr, dev))
}

func Test_Classifier_OtherPrefix(t *testing.T) {
	dev := &fakeDevice{name: "mesh0"}
	dev.join4("239.1.2.3")
	dev.join6("ff12::8")

	// neither the IPv4 nor the IPv6 multicast prefix
	other := types.MacAddr{0x01, 0x80, 0xc2, 0x00, 0x00, 0x0e}
	require.False(t, hasUnspecialAddr(other, dev))
}
