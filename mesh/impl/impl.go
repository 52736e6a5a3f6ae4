package impl

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/meshcast/meshcast/mesh"
	"github.com/meshcast/meshcast/types"
)

// NewMulticast creates a new multicast listener announcement subsystem
// for a node.
func NewMulticast(conf mesh.Configuration) mesh.Subsystem {
	n := &node{
		conf:     conf,
		logger:   conf.Logger.With().Str("component", "multicast").Logger(),
		mustStop: make(chan bool, 1),
	}
	n.awareness.Store(conf.GroupAwareness)

	return n
}

// node holds the multicast listener state of a mesh node
//
// - implements mesh.Multicast
// - implements mesh.Service
type node struct {
	conf   mesh.Configuration
	logger zerolog.Logger

	// Indicates whether the refresh worker is currently running
	runMu     sync.Mutex
	isRunning bool

	// Channel used to send a message to stop the worker
	mustStop chan bool

	// Multicast group awareness; while false, refresh cycles drain all
	// previously announced addresses
	awareness atomic.Bool

	// Currently selected primary mesh interface, nil when none
	primaryMu sync.Mutex
	primaryIf mesh.Device

	// Addresses currently reflected in the listener table. Written
	// only by the reconciliation step; readers take the read lock.
	announcedMu sync.RWMutex
	announced   []types.MacAddr
}

func loop(n *node) {
	ticker := time.NewTicker(n.conf.RefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-n.mustStop:
			return
		case <-ticker.C:
			n.RefreshListeners()
		}
	}
}

// Start implements mesh.Service
func (n *node) Start() error {
	n.runMu.Lock()
	defer n.runMu.Unlock()

	if n.isRunning {
		return AlreadyRunningError{}
	}
	n.isRunning = true

	if n.conf.RefreshInterval > 0 {
		go loop(n)
	}

	return nil
}

// Stop implements mesh.Service
func (n *node) Stop() error {
	n.runMu.Lock()
	defer n.runMu.Unlock()

	if !n.isRunning {
		return NotRunningError{}
	}
	n.isRunning = false

	if n.conf.RefreshInterval > 0 {
		n.mustStop <- true
	}

	return nil
}

// SetPrimaryInterface implements mesh.Multicast
func (n *node) SetPrimaryInterface(dev mesh.Device) {
	n.primaryMu.Lock()
	n.primaryIf = dev
	n.primaryMu.Unlock()
}

// ClearPrimaryInterface implements mesh.Multicast
func (n *node) ClearPrimaryInterface() {
	n.primaryMu.Lock()
	n.primaryIf = nil
	n.primaryMu.Unlock()
}

// SetGroupAwareness implements mesh.Multicast
func (n *node) SetGroupAwareness(enabled bool) {
	n.awareness.Store(enabled)
}

func (n *node) primaryInterface() (mesh.Device, bool) {
	n.primaryMu.Lock()
	defer n.primaryMu.Unlock()

	return n.primaryIf, n.primaryIf != nil
}

// effectiveInterface resolves the interface listeners are actually
// collected from: the device's master (e.g. a bridge the device is
// enslaved to) when it has one, the device itself otherwise.
func (n *node) effectiveInterface(dev mesh.Device) mesh.Device {
	if n.conf.Topology == nil {
		return dev
	}

	if master, ok := n.conf.Topology.Master(dev); ok {
		return master
	}

	return dev
}
