package impl

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"

	"github.com/meshcast/meshcast/mesh"
	"github.com/meshcast/meshcast/types"
)

func Test_Refresh_Reconcile(t *testing.T) {
	dev := &fakeDevice{name: "mesh0"}
	a := dev.join4("239.0.0.1")
	b := dev.join4("239.0.0.2")

	n, recorder := newTestMulticast(t, mesh.Configuration{})
	n.SetPrimaryInterface(dev)

	n.RefreshListeners()
	require.ElementsMatch(t, []types.MacAddr{a, b}, recorder.adds())
	require.Empty(t, recorder.removes())
	require.ElementsMatch(t, []types.MacAddr{a, b}, n.GetAnnouncedListeners())

	// A's listener leaves, a listener for C joins
	recorder.reset()
	next := &fakeDevice{name: "mesh0"}
	next.join4("239.0.0.2")
	c := next.join4("239.0.0.3")
	n.SetPrimaryInterface(next)

	n.RefreshListeners()
	require.Equal(t, []types.MacAddr{c}, recorder.adds())
	require.Equal(t, []types.MacAddr{a}, recorder.removes())
	require.ElementsMatch(t, []types.MacAddr{b, c}, n.GetAnnouncedListeners())
}

func Test_Refresh_Idempotent(t *testing.T) {
	dev := &fakeDevice{name: "mesh0"}
	dev.join4("239.0.0.1")
	dev.join6("ff12::8")

	n, recorder := newTestMulticast(t, mesh.Configuration{})
	n.SetPrimaryInterface(dev)

	n.RefreshListeners()
	announced := n.GetAnnouncedListeners()

	recorder.reset()
	n.RefreshListeners()

	// no change in the sources, no table churn
	require.Equal(t, 0, recorder.numOps())
	require.Equal(t, announced, n.GetAnnouncedListeners())
}

func Test_Refresh_DrainOnDisabledAwareness(t *testing.T) {
	dev := &fakeDevice{name: "mesh0"}
	a := dev.join4("239.0.0.1")

	n, recorder := newTestMulticast(t, mesh.Configuration{})
	n.SetPrimaryInterface(dev)

	n.RefreshListeners()
	require.ElementsMatch(t, []types.MacAddr{a}, n.GetAnnouncedListeners())

	recorder.reset()
	n.SetGroupAwareness(false)
	n.RefreshListeners()

	require.Equal(t, []types.MacAddr{a}, recorder.removes())
	require.Empty(t, recorder.adds())
	require.Empty(t, n.GetAnnouncedListeners())
}

func Test_Refresh_DrainOnNoPrimaryInterface(t *testing.T) {
	dev := &fakeDevice{name: "mesh0"}
	a := dev.join4("239.0.0.1")

	n, recorder := newTestMulticast(t, mesh.Configuration{})
	n.SetPrimaryInterface(dev)
	n.RefreshListeners()

	recorder.reset()
	n.ClearPrimaryInterface()
	n.RefreshListeners()

	require.Equal(t, []types.MacAddr{a}, recorder.removes())
	require.Empty(t, n.GetAnnouncedListeners())
}

func Test_Refresh_AbortOnLocalError(t *testing.T) {
	dev := &fakeDevice{name: "mesh0"}
	a := dev.join4("239.0.0.1")

	n, recorder := newTestMulticast(t, mesh.Configuration{})
	n.SetPrimaryInterface(dev)
	n.RefreshListeners()

	// a failed collection must leave the table and the announced set
	// exactly as they were
	recorder.reset()
	n.SetPrimaryInterface(&fakeDevice{name: "mesh0", err: xerrors.New("device gone")})
	n.RefreshListeners()

	require.Equal(t, 0, recorder.numOps())
	require.Equal(t, []types.MacAddr{a}, n.GetAnnouncedListeners())
}

func Test_Refresh_AbortOnSnooperError(t *testing.T) {
	dev := &fakeDevice{name: "mesh0"}
	a := dev.join4("239.0.0.1")

	n, recorder := newTestMulticast(t, mesh.Configuration{})
	n.SetPrimaryInterface(dev)
	n.RefreshListeners()

	recorder.reset()
	n.conf.Snooper = fakeSnooper{err: xerrors.New("bridge query failed")}
	n.RefreshListeners()

	require.Equal(t, 0, recorder.numOps())
	require.Equal(t, []types.MacAddr{a}, n.GetAnnouncedListeners())
}

func Test_Refresh_MergesBridgeListeners(t *testing.T) {
	dev := &fakeDevice{name: "mesh0"}
	a := dev.join4("239.0.0.1")

	snooped := netip.MustParseAddr("ff12::8")
	n, _ := newTestMulticast(t, mesh.Configuration{
		Snooper: fakeSnooper{groups: []types.Group{
			{Proto: types.GroupIPv4, Addr: netip.MustParseAddr("239.0.0.1")},
			{Proto: types.GroupIPv6, Addr: snooped},
		}},
	})
	n.SetPrimaryInterface(dev)

	n.RefreshListeners()
	require.ElementsMatch(t, []types.MacAddr{a, types.MacFromIPv6(snooped)},
		n.GetAnnouncedListeners())
}
