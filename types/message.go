package types

// Message defines a type of message that can be attached to the
// node's periodic protocol announcements.
type Message interface {
	// NewEmpty returns a new empty instance of the message type.
	NewEmpty() Message

	// Name returns the unique name of the message type.
	Name() string

	// String returns a one-line human readable form of the message.
	String() string

	// HTML returns an HTML representation of the message.
	HTML() string
}
