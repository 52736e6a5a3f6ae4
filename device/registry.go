package device

import (
	"sync"

	"golang.org/x/xerrors"

	"github.com/meshcast/meshcast/mesh"
)

// Registry is the interface-topology store: the known interfaces and
// their master relationships, all guarded by one lock. Master lookups
// hold the lock only for the duration of the lookup.
//
// - implements mesh.Topology
type Registry struct {
	mu      sync.RWMutex
	devices map[string]*Interface
	masters map[string]string
}

// NewRegistry returns an empty topology.
func NewRegistry() *Registry {
	return &Registry{
		devices: make(map[string]*Interface),
		masters: make(map[string]string),
	}
}

// Add registers an interface. Re-adding a name replaces the previous
// interface and drops its master link.
func (r *Registry) Add(dev *Interface) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.devices[dev.Name()] = dev
	delete(r.masters, dev.Name())
}

// Get returns the interface with the given name.
func (r *Registry) Get(name string) (*Interface, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	dev, ok := r.devices[name]
	return dev, ok
}

// SetMaster enslaves an interface to a master (e.g. a bridge). Both
// interfaces must be registered.
func (r *Registry) SetMaster(slave, master string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.devices[slave]; !ok {
		return xerrors.Errorf("unknown interface %s", slave)
	}
	if _, ok := r.devices[master]; !ok {
		return xerrors.Errorf("unknown interface %s", master)
	}

	r.masters[slave] = master
	return nil
}

// RemoveMaster releases an interface from its master.
func (r *Registry) RemoveMaster(slave string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.masters, slave)
}

// Master implements mesh.Topology
func (r *Registry) Master(dev mesh.Device) (mesh.Device, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	name, ok := r.masters[dev.Name()]
	if !ok {
		return nil, false
	}

	master, ok := r.devices[name]
	if !ok {
		return nil, false
	}

	return master, true
}
