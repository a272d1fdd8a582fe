package memutils

import "github.com/pkg/errors"

// PowerOfTwoError is the error returned from CheckPow2 or other methods if the number being tested is not a power of two
var PowerOfTwoError error = errors.New("number must be a power of two")

// ErrRequestTooLarge is returned by allocators when a single request can never fit, no matter how much
// of the backing region is reclaimed
var ErrRequestTooLarge error = errors.New("allocation request is larger than the allocator capacity")
