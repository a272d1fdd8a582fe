package native

import "github.com/vkngwrapper/core/v2/common"

// ResourceState is the role a resource or subresource is currently used in. Moving between
// roles requires a transition barrier.
type ResourceState uint32

var resourceStateMapping = common.NewFlagStringMapping[ResourceState]()

func (s ResourceState) Register(str string) {
	resourceStateMapping.Register(s, str)
}

func (s ResourceState) String() string {
	if s == StateCommon {
		return "StateCommon"
	}
	return resourceStateMapping.FlagsToString(s)
}

const (
	StateCommon                  ResourceState = 0
	StateVertexAndConstantBuffer ResourceState = 1 << (iota - 1)
	StateIndexBuffer
	StateRenderTarget
	StateUnorderedAccess
	StateDepthWrite
	StateDepthRead
	StateNonPixelShaderResource
	StatePixelShaderResource
	StateIndirectArgument
	StateCopyDest
	StateCopySource

	StateShaderResource = StateNonPixelShaderResource | StatePixelShaderResource
)

func init() {
	StateVertexAndConstantBuffer.Register("StateVertexAndConstantBuffer")
	StateIndexBuffer.Register("StateIndexBuffer")
	StateRenderTarget.Register("StateRenderTarget")
	StateUnorderedAccess.Register("StateUnorderedAccess")
	StateDepthWrite.Register("StateDepthWrite")
	StateDepthRead.Register("StateDepthRead")
	StateNonPixelShaderResource.Register("StateNonPixelShaderResource")
	StatePixelShaderResource.Register("StatePixelShaderResource")
	StateIndirectArgument.Register("StateIndirectArgument")
	StateCopyDest.Register("StateCopyDest")
	StateCopySource.Register("StateCopySource")
}

type BarrierKind int

const (
	BarrierTransition BarrierKind = iota
	BarrierUnorderedAccess
)

var barrierKindMapping = map[BarrierKind]string{
	BarrierTransition:      "BarrierTransition",
	BarrierUnorderedAccess: "BarrierUnorderedAccess",
}

func (k BarrierKind) String() string {
	return barrierKindMapping[k]
}

// AllSubresources selects every subresource of a texture in a Barrier
const AllSubresources = -1

// Barrier is a single transition or unordered-access barrier. Exactly one of Texture and Buffer is set.
type Barrier struct {
	Kind        BarrierKind
	Texture     Texture
	Buffer      Buffer
	Subresource int
	Before      ResourceState
	After       ResourceState
}
