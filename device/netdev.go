package device

import (
	"net"
	"net/netip"

	"golang.org/x/xerrors"
)

// FromSystem snapshots the multicast membership of an operating-system
// interface. The snapshot is static: later membership changes on the
// system are not reflected.
func FromSystem(name string) (*Interface, error) {
	ifi, err := net.InterfaceByName(name)
	if err != nil {
		return nil, xerrors.Errorf("can't find interface %s: %v", name, err)
	}

	addrs, err := ifi.MulticastAddrs()
	if err != nil {
		return nil, xerrors.Errorf("can't read multicast memberships of %s: %v",
			name, err)
	}

	dev := NewInterface(name)
	for _, addr := range addrs {
		ipAddr, ok := addr.(*net.IPAddr)
		if !ok {
			continue
		}

		group, ok := netip.AddrFromSlice(ipAddr.IP)
		if !ok {
			continue
		}

		group = group.Unmap()
		if group.Is4() {
			dev.Join4(group)
		} else {
			dev.Join6(group)
		}
	}

	return dev, nil
}
