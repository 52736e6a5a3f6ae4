package impl

import (
	"github.com/rs/zerolog"
	"golang.org/x/xerrors"

	"github.com/meshcast/meshcast/mesh"
	"github.com/meshcast/meshcast/types"
)

// listenerSet is the candidate set of one collection cycle: an ordered
// list of unique addresses, bounded by the announcement budget.
type listenerSet struct {
	max   int
	addrs []types.MacAddr
}

func newListenerSet(max int) *listenerSet {
	return &listenerSet{max: max}
}

func (s *listenerSet) full() bool {
	return len(s.addrs) >= s.max
}

func (s *listenerSet) contains(addr types.MacAddr) bool {
	return macListContains(s.addrs, addr)
}

// insert appends the address if it is absent and the budget allows it.
// Returns true if the address was appended.
func (s *listenerSet) insert(addr types.MacAddr) bool {
	if s.full() || s.contains(addr) {
		return false
	}

	s.addrs = append(s.addrs, addr)
	return true
}

func macListContains(list []types.MacAddr, addr types.MacAddr) bool {
	for _, other := range list {
		if other == addr {
			return true
		}
	}

	return false
}

// collectLocal gathers the interesting multicast listeners joined on
// the given device into the set, up to the set's budget. If the device
// is enslaved to a master interface (e.g. a bridge), listeners are
// collected from the master instead. Returns the number of addresses
// added.
func (n *node) collectLocal(dev mesh.Device, set *listenerSet,
	logger zerolog.Logger) (int, error) {
	dev = n.effectiveInterface(dev)

	added := 0
	err := dev.ForEachListener(func(addr types.MacAddr) bool {
		if set.full() {
			logger.Warn().Int("max", set.max).Str("interface", dev.Name()).
				Msg("too many local multicast listeners, truncating")
			return false
		}

		if !hasUnspecialAddr(addr, dev) {
			return true
		}

		if set.insert(addr) {
			added++
		}

		return true
	})
	if err != nil {
		return 0, xerrors.Errorf("can't query multicast memberships of %s: %v",
			dev.Name(), err)
	}

	return added, nil
}

// collectBridge gathers the multicast listeners snooped on bridge
// ports other than the given soft interface into the set, up to the
// set's budget. Addresses already collected from the local device are
// not added twice. Returns the number of addresses added.
func (n *node) collectBridge(soft mesh.Device, set *listenerSet,
	logger zerolog.Logger) (int, error) {
	groups, err := n.conf.Snooper.SnoopedGroups(soft)
	if err != nil {
		return 0, xerrors.Errorf("can't query the bridge snooping database for %s: %v",
			soft.Name(), err)
	}

	added := 0
	for _, group := range groups {
		if set.full() {
			logger.Warn().Int("max", set.max).Str("interface", soft.Name()).
				Msg("too many local+bridge multicast listeners, truncating")
			break
		}

		addr := group.Mac()
		// Records the snooping database could not classify map to the
		// all-zero address, which is not announceable.
		if addr.IsZero() {
			continue
		}

		if set.insert(addr) {
			added++
		}
	}

	return added, nil
}
