package types

// MaxListenerAnnouncements is the largest number of multicast listener
// addresses one announcement can carry. It matches the 8-bit count
// field of the periodic announcement packet.
const MaxListenerAnnouncements = 255

// ListenerAnnouncement carries the multicast listener addresses a node
// announces to its mesh peers. It is attached to the node's periodic
// announcements so that other nodes learn where to forward multicast
// traffic.
type ListenerAnnouncement struct {
	// Addresses of the announced listeners. At most
	// MaxListenerAnnouncements entries.
	Listeners []MacAddr
}

// AnnouncementLen returns the wire size of the listener information
// for a given number of announced addresses.
func AnnouncementLen(num int) int {
	return num * MacLen
}
