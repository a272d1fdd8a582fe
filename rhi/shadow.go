package rhi

import (
	"github.com/vkngwrapper/rhicore/native"
)

// shadowState mirrors what the active command buffer has already been told, so that unchanged
// state is not recorded again. A fresh command buffer starts with nothing set.
type shadowState struct {
	pipeline       *pipelineState
	graphicsLayout *bindingLayout
	computeLayout  *bindingLayout

	indexBuffer      native.IndexBufferView
	indexBufferSet   bool
	vertexBuffers    [MaxVertexBuffers]native.VertexBufferView
	vertexBuffersSet [MaxVertexBuffers]bool

	renderTargets     [MaxRenderTargets]native.DescriptorHandle
	renderTargetCount int
	depthTarget       native.DescriptorHandle
	hasDepthTarget    bool
	renderTargetsSet  bool
}

func (s *shadowState) reset() {
	*s = shadowState{}
}

// setRenderTargets records the targets and reports whether they differ from the previous ones
func (s *shadowState) setRenderTargets(targets []native.DescriptorHandle, depth *native.DescriptorHandle) bool {
	changed := !s.renderTargetsSet || s.renderTargetCount != len(targets) || s.hasDepthTarget != (depth != nil)
	if !changed && depth != nil {
		changed = s.depthTarget != *depth
	}
	for i := 0; !changed && i < len(targets); i++ {
		changed = s.renderTargets[i] != targets[i]
	}
	if !changed {
		return false
	}

	s.renderTargetsSet = true
	s.renderTargetCount = copy(s.renderTargets[:], targets)
	s.hasDepthTarget = depth != nil
	if depth != nil {
		s.depthTarget = *depth
	} else {
		s.depthTarget = native.DescriptorHandle{}
	}
	return true
}
