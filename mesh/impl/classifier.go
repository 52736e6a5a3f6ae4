package impl

import (
	"github.com/meshcast/meshcast/mesh"
	"github.com/meshcast/meshcast/types"
)

// hasTransientIPv6 checks whether the device has joined at least one
// transient IPv6 multicast group whose link-layer mapping equals addr.
func hasTransientIPv6(addr types.MacAddr, dev mesh.Device) bool {
	for _, group := range dev.IPv6Memberships() {
		if types.MacFromIPv6(group) != addr {
			continue
		}

		if types.IsIPv6TransientMulticast(group) {
			return true
		}
	}

	return false
}

// hasNonLocalIPv4 checks whether the device has joined at least one
// non-link-local IPv4 multicast group whose link-layer mapping equals
// addr.
func hasNonLocalIPv4(addr types.MacAddr, dev mesh.Device) bool {
	for _, group := range dev.IPv4Memberships() {
		if types.MacFromIPv4(group) != addr {
			continue
		}

		if types.IsIPv4LocalMulticast(group) {
			continue
		}

		return true
	}

	return false
}

// hasUnspecialAddr checks whether the address corresponds to an
// "unspecial" multicast group on the device.
//
// For IPv6 (MAC: 33:33:...) "unspecial" means a transient IPv6 group.
// For IPv4 (MAC: 01:00:5e:...) "unspecial" means a non-link-local IPv4
// group. Any other address is never announced: well-known and
// link-local groups carry low-rate control traffic, which is not worth
// an announcement slot.
func hasUnspecialAddr(addr types.MacAddr, dev mesh.Device) bool {
	if addr[0] == 0x33 && addr[1] == 0x33 {
		return hasTransientIPv6(addr, dev)
	}

	if addr[0] == 0x01 && addr[1] == 0x00 && addr[2] == 0x5e {
		return hasNonLocalIPv4(addr, dev)
	}

	return false
}
