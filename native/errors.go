package native

import "github.com/cockroachdb/errors"

// ErrDeviceRemoved is reported by devices that have been lost and can no longer execute work
var ErrDeviceRemoved = errors.New("the device has been removed")
