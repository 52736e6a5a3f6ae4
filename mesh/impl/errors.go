package impl

// AlreadyRunningError occurs when trying to start a refresh worker that
// is already running
type AlreadyRunningError struct{}

func (err AlreadyRunningError) Error() string {
	return "can't start multicast worker: already running"
}

// NotRunningError occurs when trying to stop a refresh worker that is
// not running
type NotRunningError struct{}

func (err NotRunningError) Error() string {
	return "can't stop multicast worker: not running"
}

// NoPrimaryInterfaceError occurs when an operation needs the primary
// mesh interface and none is selected
type NoPrimaryInterfaceError struct{}

func (err NoPrimaryInterfaceError) Error() string {
	return "no primary interface selected"
}

// SnoopingDisabledError occurs when a bridge-snooping operation is
// requested while no bridge snooper is configured
type SnoopingDisabledError struct{}

func (err SnoopingDisabledError) Error() string {
	return "bridge snooping is not enabled"
}
