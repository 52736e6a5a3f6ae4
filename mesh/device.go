package mesh

import (
	"net/netip"

	"github.com/meshcast/meshcast/types"
)

// Device is one network interface's view of multicast membership. It
// is owned by the device subsystem; this package only reads it.
type Device interface {
	// Name returns the interface name.
	Name() string

	// ForEachListener iterates over the multicast link-layer addresses
	// currently joined on the device, under the device's membership
	// lock. Iteration stops early when fn returns false. An error is
	// returned when the membership list cannot be queried; in that
	// case fn may have been called for a prefix of the list.
	ForEachListener(fn func(addr types.MacAddr) bool) error

	// IPv4Memberships returns a snapshot of the IPv4 multicast groups
	// the device has joined.
	IPv4Memberships() []netip.Addr

	// IPv6Memberships returns a snapshot of the IPv6 multicast groups
	// the device has joined.
	IPv6Memberships() []netip.Addr
}

// Topology resolves master relationships between interfaces (e.g. a
// device enslaved to a bridge). Lookups are done under the topology
// lock, which is released before Master returns.
type Topology interface {
	// Master returns the master of the given device, if any.
	Master(dev Device) (Device, bool)
}

// BridgeSnooper queries a bridge's multicast snooping database.
type BridgeSnooper interface {
	// SnoopedGroups returns the multicast groups currently snooped as
	// active on bridge ports other than the given one. The returned
	// slice is owned by the caller.
	SnoopedGroups(port Device) ([]types.Group, error)
}

// ListenerTable is the protocol-visible table of announced multicast
// listeners. Both operations are idempotent and keyed by address.
type ListenerTable interface {
	// Add inserts the address into the table. Adding an address that
	// is already present has no effect.
	Add(addr types.MacAddr)

	// Remove deletes the address from the table. The reason tag is
	// recorded for diagnostics. Removing an absent address has no
	// effect.
	Remove(addr types.MacAddr, reason string)
}
