package types

import "fmt"

// -----------------------------------------------------------------------------
// ListenerAnnouncement

// NewEmpty implements types.Message.
func (msg ListenerAnnouncement) NewEmpty() Message {
	return &ListenerAnnouncement{}
}

// Name implements types.Message.
func (msg ListenerAnnouncement) Name() string {
	return "multicast listener announcement"
}

// String implements types.Message.
func (msg ListenerAnnouncement) String() string {
	return fmt.Sprintf("announcement of %d multicast listeners", len(msg.Listeners))
}

// HTML implements types.Message.
func (msg ListenerAnnouncement) HTML() string {
	return msg.String()
}
