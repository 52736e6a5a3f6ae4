package impl

import (
	"github.com/rs/xid"
	"github.com/rs/zerolog"

	"github.com/meshcast/meshcast/types"
)

// tableReasonOutdated is the reason tag passed to the listener table
// when an announced address is no longer backed by a listener.
const tableReasonOutdated = "multicast listener outdated"

// RefreshListeners implements mesh.Multicast
//
// One cycle collects the current candidate listener set and reconciles
// it against the table. Either the whole cycle applies, or a failed
// collection leaves the announced set and the table untouched.
func (n *node) RefreshListeners() {
	logger := n.logger.With().Str("cycle", xid.New().String()).Logger()

	set := newListenerSet(types.MaxListenerAnnouncements)

	// With no interface selected or group awareness disabled, the
	// cycle reconciles against the empty set, which drains every
	// previously announced address.
	dev, selected := n.primaryInterface()
	if selected && n.awareness.Load() {
		if _, err := n.collectLocal(dev, set, logger); err != nil {
			logger.Error().Err(err).
				Msg("can't collect local multicast listeners, keeping previous announcements")
			return
		}

		if n.conf.Snooper != nil {
			if _, err := n.collectBridge(dev, set, logger); err != nil {
				logger.Error().Err(err).
					Msg("can't collect bridge multicast listeners, keeping previous announcements")
				return
			}
		}
	}

	n.reconcile(set, logger)
}

// reconcile diffs the freshly collected set against the announced set
// and applies the minimal add/remove operations to the listener table.
// Afterwards the announced set is exactly the collected set.
func (n *node) reconcile(set *listenerSet, logger zerolog.Logger) {
	n.announcedMu.Lock()
	defer n.announcedMu.Unlock()

	removed := 0
	for _, addr := range n.announced {
		if set.contains(addr) {
			continue
		}

		n.conf.Table.Remove(addr, tableReasonOutdated)
		removed++
	}

	added := 0
	for _, addr := range set.addrs {
		if macListContains(n.announced, addr) {
			continue
		}

		n.conf.Table.Add(addr)
		added++
	}

	n.announced = set.addrs

	if added > 0 || removed > 0 {
		logger.Info().Int("added", added).Int("removed", removed).
			Int("announced", len(n.announced)).
			Msg("updated multicast listener announcements")
	}
}
