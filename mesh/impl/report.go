package impl

import (
	"fmt"
	"io"

	"golang.org/x/xerrors"

	"github.com/meshcast/meshcast/types"
)

// WriteLocalListeners implements mesh.Multicast
func (n *node) WriteLocalListeners(w io.Writer) error {
	dev, ok := n.primaryInterface()
	if !ok {
		return NoPrimaryInterfaceError{}
	}

	effective := n.effectiveInterface(dev)

	var err error
	if effective != dev {
		_, err = fmt.Fprintf(w,
			"Locally retrieved multicast listener announcements (from %s, master of %s):\n",
			effective.Name(), dev.Name())
	} else {
		_, err = fmt.Fprintf(w,
			"Locally retrieved multicast listener announcements (from %s):\n",
			dev.Name())
	}
	if err != nil {
		return err
	}

	var writeErr error
	err = effective.ForEachListener(func(addr types.MacAddr) bool {
		if !hasUnspecialAddr(addr, effective) {
			return true
		}

		_, writeErr = fmt.Fprintf(w, "%s\n", addr)
		return writeErr == nil
	})
	if err != nil {
		return xerrors.Errorf("can't query multicast memberships of %s: %v",
			effective.Name(), err)
	}

	return writeErr
}

// WriteBridgeListeners implements mesh.Multicast
func (n *node) WriteBridgeListeners(w io.Writer) error {
	if n.conf.Snooper == nil {
		return SnoopingDisabledError{}
	}

	dev, ok := n.primaryInterface()
	if !ok {
		return NoPrimaryInterfaceError{}
	}

	groups, err := n.conf.Snooper.SnoopedGroups(dev)
	if err != nil {
		return xerrors.Errorf("can't query the bridge snooping database for %s: %v",
			dev.Name(), err)
	}

	_, err = fmt.Fprintf(w,
		"Bridge snooped multicast listener announcements (from %s):\n",
		dev.Name())
	if err != nil {
		return err
	}

	for _, group := range groups {
		_, err = fmt.Fprintf(w, "%s\n", group.Mac())
		if err != nil {
			return err
		}
	}

	return nil
}
