package mesh

import (
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/meshcast/meshcast/types"
)

// Multicast defines the functions of the multicast listener
// announcement subsystem. The subsystem keeps the listener table
// synchronized with the set of interesting multicast listeners
// reachable through the node's primary interface.
type Multicast interface {
	// RefreshListeners runs one collection and reconciliation cycle.
	// It never fails outward: a failed cycle leaves the announced set
	// and the listener table untouched and is retried on the next
	// scheduled invocation. Callers must not run two cycles of the
	// same node concurrently.
	RefreshListeners()

	// GetAnnouncedListeners returns a copy of the currently announced
	// listener addresses.
	GetAnnouncedListeners() []types.MacAddr

	// BuildAnnouncement snapshots the announced listeners into the
	// message attached to the node's periodic announcements.
	BuildAnnouncement() types.ListenerAnnouncement

	// SetPrimaryInterface selects the mesh interface listeners are
	// collected from. While no interface is selected, refresh cycles
	// drain all previously announced addresses.
	SetPrimaryInterface(dev Device)

	// ClearPrimaryInterface deselects the primary interface.
	ClearPrimaryInterface()

	// SetGroupAwareness enables or disables multicast group awareness.
	// While disabled, refresh cycles drain all previously announced
	// addresses.
	SetGroupAwareness(enabled bool)

	// WriteLocalListeners writes a human-readable report of the
	// locally retrieved candidate addresses.
	WriteLocalListeners(w io.Writer) error

	// WriteBridgeListeners writes a human-readable report of the
	// bridge-snooped candidate addresses.
	WriteBridgeListeners(w io.Writer) error
}

// Service defines the lifecycle of the periodic refresh worker.
type Service interface {
	// Start runs the refresh worker in the background.
	Start() error

	// Stop stops the refresh worker.
	Stop() error
}

// Subsystem composes the multicast functions with the refresh worker
// lifecycle.
type Subsystem interface {
	Service
	Multicast
}

// Configuration gathers the collaborators and settings of the
// multicast subsystem.
type Configuration struct {
	// Table is the external listener table kept in sync with the
	// collected listener set.
	Table ListenerTable

	// Topology resolves master interfaces. May be nil, in which case
	// devices are always used directly.
	Topology Topology

	// Snooper queries the bridge multicast snooping database. A nil
	// Snooper disables bridge-snooped collection.
	Snooper BridgeSnooper

	// GroupAwareness is the initial multicast group awareness state.
	GroupAwareness bool

	// RefreshInterval is the period of the refresh worker. A zero
	// interval disables the worker; cycles must then be triggered
	// manually via RefreshListeners.
	RefreshInterval time.Duration

	// Logger is the subsystem's logger.
	Logger zerolog.Logger
}
