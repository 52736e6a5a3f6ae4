// Package device models the interface subsystem the multicast code
// collects listeners from: per-interface multicast membership, master
// (bridge) relationships and the bridge multicast snooping database.
package device

import (
	"net/netip"
	"sync"

	"github.com/meshcast/meshcast/types"
)

// Interface is one network interface with its multicast membership
// state. The joined link-layer filter entries and the per-protocol
// membership records are guarded by separate locks, so membership can
// be inspected while the filter list is being iterated.
//
// - implements mesh.Device
type Interface struct {
	name string

	// Link-layer multicast filter entries
	addrMu    sync.RWMutex
	listeners []types.MacAddr

	// IPv4 multicast membership records
	mc4Mu sync.RWMutex
	mc4   []netip.Addr

	// IPv6 multicast membership records
	mc6Mu sync.RWMutex
	mc6   []netip.Addr
}

// NewInterface creates an interface with no memberships.
func NewInterface(name string) *Interface {
	return &Interface{name: name}
}

// Name implements mesh.Device
func (i *Interface) Name() string {
	return i.name
}

// ForEachListener implements mesh.Device
func (i *Interface) ForEachListener(fn func(addr types.MacAddr) bool) error {
	i.addrMu.RLock()
	defer i.addrMu.RUnlock()

	for _, addr := range i.listeners {
		if !fn(addr) {
			break
		}
	}

	return nil
}

// IPv4Memberships implements mesh.Device
func (i *Interface) IPv4Memberships() []netip.Addr {
	i.mc4Mu.RLock()
	defer i.mc4Mu.RUnlock()

	groups := make([]netip.Addr, len(i.mc4))
	copy(groups, i.mc4)

	return groups
}

// IPv6Memberships implements mesh.Device
func (i *Interface) IPv6Memberships() []netip.Addr {
	i.mc6Mu.RLock()
	defer i.mc6Mu.RUnlock()

	groups := make([]netip.Addr, len(i.mc6))
	copy(groups, i.mc6)

	return groups
}

// Join4 joins an IPv4 multicast group: the membership is recorded and
// the group's link-layer mapping is added to the filter entries.
func (i *Interface) Join4(group netip.Addr) {
	group = group.Unmap()

	i.mc4Mu.Lock()
	if !addrListContains(i.mc4, group) {
		i.mc4 = append(i.mc4, group)
	}
	i.mc4Mu.Unlock()

	i.JoinMac(types.MacFromIPv4(group))
}

// Leave4 leaves an IPv4 multicast group. The group's link-layer filter
// entry is dropped once no remaining IPv4 membership maps to it.
func (i *Interface) Leave4(group netip.Addr) {
	group = group.Unmap()
	addr := types.MacFromIPv4(group)

	i.mc4Mu.Lock()
	i.mc4 = removeAddr(i.mc4, group)
	inUse := false
	for _, other := range i.mc4 {
		if types.MacFromIPv4(other) == addr {
			inUse = true
			break
		}
	}
	i.mc4Mu.Unlock()

	if !inUse {
		i.LeaveMac(addr)
	}
}

// Join6 joins an IPv6 multicast group: the membership is recorded and
// the group's link-layer mapping is added to the filter entries.
func (i *Interface) Join6(group netip.Addr) {
	i.mc6Mu.Lock()
	if !addrListContains(i.mc6, group) {
		i.mc6 = append(i.mc6, group)
	}
	i.mc6Mu.Unlock()

	i.JoinMac(types.MacFromIPv6(group))
}

// Leave6 leaves an IPv6 multicast group. The group's link-layer filter
// entry is dropped once no remaining IPv6 membership maps to it.
func (i *Interface) Leave6(group netip.Addr) {
	addr := types.MacFromIPv6(group)

	i.mc6Mu.Lock()
	i.mc6 = removeAddr(i.mc6, group)
	inUse := false
	for _, other := range i.mc6 {
		if types.MacFromIPv6(other) == addr {
			inUse = true
			break
		}
	}
	i.mc6Mu.Unlock()

	if !inUse {
		i.LeaveMac(addr)
	}
}

// JoinMac adds a raw link-layer filter entry, e.g. for a protocol the
// membership records do not cover.
func (i *Interface) JoinMac(addr types.MacAddr) {
	i.addrMu.Lock()
	defer i.addrMu.Unlock()

	for _, other := range i.listeners {
		if other == addr {
			return
		}
	}

	i.listeners = append(i.listeners, addr)
}

// LeaveMac removes a link-layer filter entry.
func (i *Interface) LeaveMac(addr types.MacAddr) {
	i.addrMu.Lock()
	defer i.addrMu.Unlock()

	for idx, other := range i.listeners {
		if other == addr {
			i.listeners = append(i.listeners[:idx], i.listeners[idx+1:]...)
			return
		}
	}
}

func addrListContains(list []netip.Addr, addr netip.Addr) bool {
	for _, other := range list {
		if other == addr {
			return true
		}
	}

	return false
}

func removeAddr(list []netip.Addr, addr netip.Addr) []netip.Addr {
	for idx, other := range list {
		if other == addr {
			return append(list[:idx], list[idx+1:]...)
		}
	}

	return list
}
