package memutils

// Validatable is an allocator that can check its own bookkeeping, such as a ring or a descriptor
// heap. DebugValidate calls it in debug builds.
type Validatable interface {
	Validate() error
}
