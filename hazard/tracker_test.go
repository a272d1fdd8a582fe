package hazard_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/rhicore/hazard"
	"github.com/vkngwrapper/rhicore/native"
	mock_native "github.com/vkngwrapper/rhicore/native/mocks"
	"go.uber.org/mock/gomock"
)

type fixedStamper uint64

func (s fixedStamper) Pending() uint64 { return uint64(s) }

func newTexture(ctrl *gomock.Controller, desc native.TextureDesc) (*hazard.Resource, *mock_native.MockTexture) {
	texture := mock_native.NewMockTexture(ctrl)
	texture.EXPECT().Desc().Return(desc).AnyTimes()

	var resource hazard.Resource
	resource.InitTexture(texture, native.StateCommon)
	return &resource, texture
}

func TestSubresourceCount(t *testing.T) {
	testCases := map[string]struct {
		desc     native.TextureDesc
		expected int
	}{
		"Texture2D": {
			desc:     native.TextureDesc{Dimension: native.Texture2D, DepthOrArraySize: 1, MipLevels: 4},
			expected: 4,
		},
		"Texture2DArray": {
			desc:     native.TextureDesc{Dimension: native.Texture2DArray, DepthOrArraySize: 3, MipLevels: 4},
			expected: 12,
		},
		"TextureCube": {
			desc:     native.TextureDesc{Dimension: native.TextureCube, DepthOrArraySize: 6, MipLevels: 2},
			expected: 12,
		},
		"Texture3D": {
			desc:     native.TextureDesc{Dimension: native.Texture3D, DepthOrArraySize: 16, MipLevels: 5},
			expected: 5,
		},
	}

	for name, testCase := range testCases {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			resource, _ := newTexture(ctrl, testCase.desc)
			require.Equal(t, testCase.expected, resource.SubresourceCount())
		})
	}
}

func TestRequireStateIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	resource, texture := newTexture(ctrl, native.TextureDesc{Dimension: native.Texture2D, DepthOrArraySize: 1, MipLevels: 1})

	var tracker hazard.Tracker
	tracker.Init(fixedStamper(5))

	tracker.RequireState(resource, hazard.AllArraySlices, hazard.AllMips, native.StatePixelShaderResource)
	tracker.RequireState(resource, hazard.AllArraySlices, hazard.AllMips, native.StatePixelShaderResource)
	require.Equal(t, 1, tracker.PendingCount())
	require.Equal(t, uint64(5), resource.LastUse())

	commandBuffer := mock_native.NewMockCommandBuffer(ctrl)
	commandBuffer.EXPECT().Barriers([]native.Barrier{
		{
			Kind:        native.BarrierTransition,
			Texture:     texture,
			Subresource: 0,
			Before:      native.StateCommon,
			After:       native.StatePixelShaderResource,
		},
	})

	require.Equal(t, 1, tracker.Commit(commandBuffer))
	require.Equal(t, 0, tracker.PendingCount())
	require.Equal(t, 0, tracker.Commit(commandBuffer))

	tracker.RequireState(resource, hazard.AllArraySlices, hazard.AllMips, native.StatePixelShaderResource)
	require.Equal(t, 0, tracker.PendingCount())
}

func TestRequireStateWholeResourceWithMixedStates(t *testing.T) {
	ctrl := gomock.NewController(t)
	resource, texture := newTexture(ctrl, native.TextureDesc{Dimension: native.Texture2DArray, DepthOrArraySize: 2, MipLevels: 2})

	var tracker hazard.Tracker
	tracker.Init(fixedStamper(1))

	tracker.RequireState(resource, 1, 0, native.StateRenderTarget)
	require.Equal(t, native.StateRenderTarget, resource.State(1, 0))
	require.Equal(t, native.StateCommon, resource.State(0, 0))

	tracker.RequireState(resource, hazard.AllArraySlices, 0, native.StateShaderResource)

	commandBuffer := mock_native.NewMockCommandBuffer(ctrl)
	commandBuffer.EXPECT().Barriers([]native.Barrier{
		{Kind: native.BarrierTransition, Texture: texture, Subresource: 2, Before: native.StateCommon, After: native.StateRenderTarget},
		{Kind: native.BarrierTransition, Texture: texture, Subresource: 0, Before: native.StateCommon, After: native.StateShaderResource},
		{Kind: native.BarrierTransition, Texture: texture, Subresource: 2, Before: native.StateRenderTarget, After: native.StateShaderResource},
	})
	tracker.Commit(commandBuffer)

	require.Equal(t, native.StateCommon, resource.State(0, 1))
	require.Equal(t, native.StateShaderResource, resource.State(1, 0))
}

func TestRequireStateOutOfRangeSelectsWholeResource(t *testing.T) {
	ctrl := gomock.NewController(t)
	resource, _ := newTexture(ctrl, native.TextureDesc{Dimension: native.Texture2D, DepthOrArraySize: 1, MipLevels: 3})

	var tracker hazard.Tracker
	tracker.Init(fixedStamper(1))

	tracker.RequireState(resource, 7, 9, native.StateCopyDest)
	require.Equal(t, 3, tracker.PendingCount())
	for mip := 0; mip < 3; mip++ {
		require.Equal(t, native.StateCopyDest, resource.State(0, mip))
	}
}

func TestUnorderedAccessBarriers(t *testing.T) {
	ctrl := gomock.NewController(t)
	resource, texture := newTexture(ctrl, native.TextureDesc{Dimension: native.Texture2D, DepthOrArraySize: 1, MipLevels: 4})

	var tracker hazard.Tracker
	tracker.Init(fixedStamper(1))

	tracker.RequireState(resource, hazard.AllArraySlices, hazard.AllMips, native.StateUnorderedAccess)
	require.Equal(t, 4, tracker.PendingCount())

	// Already in unordered access: a single UAV barrier for the whole range
	tracker.RequireState(resource, hazard.AllArraySlices, hazard.AllMips, native.StateUnorderedAccess)
	require.Equal(t, 5, tracker.PendingCount())

	tracker.RequireState(resource, hazard.AllArraySlices, hazard.AllMips, native.StateUnorderedAccess)
	require.Equal(t, 6, tracker.PendingCount())

	commandBuffer := mock_native.NewMockCommandBuffer(ctrl)
	commandBuffer.EXPECT().Barriers(gomock.Len(6)).Do(func(barriers []native.Barrier) {
		require.Equal(t, native.Barrier{
			Kind:        native.BarrierUnorderedAccess,
			Texture:     texture,
			Subresource: native.AllSubresources,
			Before:      native.StateUnorderedAccess,
			After:       native.StateUnorderedAccess,
		}, barriers[5])
	})
	tracker.Commit(commandBuffer)
}

func TestUnorderedAccessBarrierPolicy(t *testing.T) {
	ctrl := gomock.NewController(t)
	buffer := mock_native.NewMockBuffer(ctrl)

	var resource hazard.Resource
	resource.InitBuffer(buffer, native.StateUnorderedAccess)
	resource.SetEnableUAVBarriers(false)

	var tracker hazard.Tracker
	tracker.Init(fixedStamper(1))

	tracker.RequireState(&resource, 0, 0, native.StateUnorderedAccess)
	tracker.RequireState(&resource, 0, 0, native.StateUnorderedAccess)
	tracker.RequireState(&resource, 0, 0, native.StateUnorderedAccess)
	require.Equal(t, 1, tracker.PendingCount())

	resource.SetEnableUAVBarriers(false)
	tracker.RequireState(&resource, 0, 0, native.StateUnorderedAccess)
	require.Equal(t, 2, tracker.PendingCount())

	resource.SetEnableUAVBarriers(true)
	tracker.RequireState(&resource, 0, 0, native.StateUnorderedAccess)
	tracker.RequireState(&resource, 0, 0, native.StateUnorderedAccess)
	require.Equal(t, 4, tracker.PendingCount())
}

func TestBufferTransitions(t *testing.T) {
	ctrl := gomock.NewController(t)
	buffer := mock_native.NewMockBuffer(ctrl)

	var resource hazard.Resource
	resource.InitBuffer(buffer, native.StateCommon)

	var tracker hazard.Tracker
	tracker.Init(fixedStamper(3))

	tracker.RequireState(&resource, 0, 0, native.StateCopyDest)
	tracker.RequireState(&resource, 0, 0, native.StateCopySource)

	commandBuffer := mock_native.NewMockCommandBuffer(ctrl)
	commandBuffer.EXPECT().Barriers([]native.Barrier{
		{Kind: native.BarrierTransition, Buffer: buffer, Subresource: native.AllSubresources, Before: native.StateCommon, After: native.StateCopyDest},
		{Kind: native.BarrierTransition, Buffer: buffer, Subresource: native.AllSubresources, Before: native.StateCopyDest, After: native.StateCopySource},
	})
	tracker.Commit(commandBuffer)

	require.Equal(t, native.StateCopySource, resource.State(0, 0))
	require.Equal(t, uint64(3), resource.LastUse())
}

func TestResourceStateString(t *testing.T) {
	require.Equal(t, "StateCommon", native.StateCommon.String())
	require.Equal(t, "StateCopyDest", native.StateCopyDest.String())
}
