package rhi

import (
	"github.com/vkngwrapper/core/v2/common"
)

// CreateFlags indicate specific device behaviors to activate or deactivate
type CreateFlags int32

var createFlagsMapping = common.NewFlagStringMapping[CreateFlags]()

func (f CreateFlags) Register(str string) {
	createFlagsMapping.Register(f, str)
}
func (f CreateFlags) String() string {
	return createFlagsMapping.FlagsToString(f)
}

const (
	// CreateExternallySynchronized ensures that the device will not be synchronized internally. The
	// consumer must guarantee it is used from only one goroutine at a time.
	CreateExternallySynchronized CreateFlags = 1 << iota
	// CreateDisableUAVBarriers makes every texture and buffer start with UAV barriers disabled, so
	// consecutive unordered access to the same resource only barriers once
	CreateDisableUAVBarriers
	// CreateValidateAllocators validates the ring and free list bookkeeping after every flush, even
	// in builds without the debug_rhi tag
	CreateValidateAllocators
)

func init() {
	CreateExternallySynchronized.Register("CreateExternallySynchronized")
	CreateDisableUAVBarriers.Register("CreateDisableUAVBarriers")
	CreateValidateAllocators.Register("CreateValidateAllocators")
}

// CreateOptions contains optional settings when creating a device. It is valid to leave every field
// empty.
type CreateOptions struct {
	Flags CreateFlags

	// ErrorCallback receives fatal errors. When nil, fatal errors are only logged.
	ErrorCallback ErrorCallback

	// UploadBufferSize is the size in bytes of the staging ring, 64MiB by default
	UploadBufferSize int
	// ResourceRingSize and SamplerRingSize are the descriptor counts of the shader-visible rings
	ResourceRingSize int
	SamplerRingSize  int

	// The initial capacities of the static descriptor heaps. Each heap doubles when it runs out.
	RenderTargetHeapSize int
	DepthStencilHeapSize int
	ResourceHeapSize     int
	SamplerHeapSize      int

	// MaxCommandsPerBuffer is the number of commands after which the active command buffer is
	// submitted, 128 by default
	MaxCommandsPerBuffer int
}
