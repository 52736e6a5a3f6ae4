// Package table implements the node-local listener table the multicast
// subsystem announces through: the set of link-layer addresses this
// node claims to have listeners for.
package table

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/meshcast/meshcast/types"
)

// Entry records one announced listener address.
type Entry struct {
	// AddedAt is the time the address first entered the table.
	AddedAt time.Time
}

// Local is the local listener table. Add and Remove are idempotent and
// keyed by address.
//
// - implements mesh.ListenerTable
type Local struct {
	logger  zerolog.Logger
	entries safeMap[types.MacAddr, Entry]
}

// NewLocal returns an empty listener table.
func NewLocal(logger zerolog.Logger) *Local {
	return &Local{
		logger:  logger.With().Str("component", "listener-table").Logger(),
		entries: newSafeMap[types.MacAddr, Entry](),
	}
}

// Add implements mesh.ListenerTable
func (t *Local) Add(addr types.MacAddr) {
	if !t.entries.setIfAbsent(addr, Entry{AddedAt: time.Now()}) {
		return
	}

	t.logger.Debug().Str("address", addr.String()).Msg("listener added")
}

// Remove implements mesh.ListenerTable
func (t *Local) Remove(addr types.MacAddr, reason string) {
	if !t.entries.delete(addr) {
		return
	}

	t.logger.Debug().Str("address", addr.String()).Str("reason", reason).
		Msg("listener removed")
}

// Contains returns whether the address is in the table.
func (t *Local) Contains(addr types.MacAddr) bool {
	_, ok := t.entries.get(addr)
	return ok
}

// Len returns the number of entries in the table.
func (t *Local) Len() int {
	return t.entries.len()
}

// Snapshot returns a copy of the table's entries.
func (t *Local) Snapshot() map[types.MacAddr]Entry {
	return t.entries.clone()
}
