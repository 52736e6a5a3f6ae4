package impl

import (
	"github.com/meshcast/meshcast/types"
)

// GetAnnouncedListeners implements mesh.Multicast
func (n *node) GetAnnouncedListeners() []types.MacAddr {
	n.announcedMu.RLock()
	defer n.announcedMu.RUnlock()

	listeners := make([]types.MacAddr, len(n.announced))
	copy(listeners, n.announced)

	return listeners
}

// BuildAnnouncement implements mesh.Multicast
//
// The returned message holds its own copy of the announced addresses,
// so later cycles cannot mutate an announcement already handed to the
// broadcast machinery.
func (n *node) BuildAnnouncement() types.ListenerAnnouncement {
	return types.ListenerAnnouncement{
		Listeners: n.GetAnnouncedListeners(),
	}
}
