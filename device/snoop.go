package device

import (
	"sync"

	"github.com/meshcast/meshcast/mesh"
	"github.com/meshcast/meshcast/types"
)

// SnoopDB is the bridge multicast snooping database: the multicast
// groups observed as active behind each port of each bridge.
//
// - implements mesh.BridgeSnooper
type SnoopDB struct {
	registry *Registry

	mu sync.RWMutex
	// bridge name -> port name -> snooped groups
	groups map[string]map[string][]types.Group
}

// NewSnoopDB returns an empty snooping database resolving bridges
// through the given topology.
func NewSnoopDB(registry *Registry) *SnoopDB {
	return &SnoopDB{
		registry: registry,
		groups:   make(map[string]map[string][]types.Group),
	}
}

// Learn records a group as active behind a bridge port.
func (db *SnoopDB) Learn(bridge, port string, group types.Group) {
	db.mu.Lock()
	defer db.mu.Unlock()

	ports, ok := db.groups[bridge]
	if !ok {
		ports = make(map[string][]types.Group)
		db.groups[bridge] = ports
	}

	for _, other := range ports[port] {
		if other == group {
			return
		}
	}

	ports[port] = append(ports[port], group)
}

// Forget removes a group from a bridge port.
func (db *SnoopDB) Forget(bridge, port string, group types.Group) {
	db.mu.Lock()
	defer db.mu.Unlock()

	ports, ok := db.groups[bridge]
	if !ok {
		return
	}

	list := ports[port]
	for idx, other := range list {
		if other == group {
			ports[port] = append(list[:idx], list[idx+1:]...)
			return
		}
	}
}

// SnoopedGroups implements mesh.BridgeSnooper
//
// Returns the groups snooped on the sibling ports of the given port's
// bridge. A port without a master bridge has no snooped groups.
func (db *SnoopDB) SnoopedGroups(port mesh.Device) ([]types.Group, error) {
	bridge, ok := db.registry.Master(port)
	if !ok {
		return nil, nil
	}

	db.mu.RLock()
	defer db.mu.RUnlock()

	var snooped []types.Group
	for name, list := range db.groups[bridge.Name()] {
		if name == port.Name() {
			continue
		}

		snooped = append(snooped, list...)
	}

	return snooped, nil
}
