package software

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/rhicore/native"
)

func recordAndSubmit(t *testing.T, device *Device, record func(cmd native.CommandBuffer)) native.CommandBuffer {
	cmd, err := device.CreateCommandBuffer()
	require.NoError(t, err)

	record(cmd)
	require.NoError(t, cmd.Close())
	require.NoError(t, device.Queue().Submit(cmd))
	return cmd
}

func TestFootprintAlignsRows(t *testing.T) {
	device := New(Options{})

	footprint := device.Footprint(native.TextureDesc{
		Dimension: native.Texture2D,
		Width:     3,
		Height:    2,
		MipLevels: 1,
		Format:    native.FormatRGBA8Unorm,
	}, 0)

	require.Equal(t, 12, footprint.RowSize)
	require.Equal(t, 256, footprint.RowPitch)
	require.Equal(t, 512, footprint.TotalBytes)
	require.Equal(t, uint(512), device.PlacementAlignment())
}

func TestBufferCopyRequiresStates(t *testing.T) {
	device := New(Options{})

	upload, err := device.CreateBuffer(native.BufferDesc{ByteSize: 16, Heap: native.HeapUpload})
	require.NoError(t, err)
	target, err := device.CreateBuffer(native.BufferDesc{ByteSize: 16, DebugName: "target"})
	require.NoError(t, err)

	mapped, err := upload.Map()
	require.NoError(t, err)
	for i := range mapped {
		mapped[i] = byte(i)
	}

	_, err = target.Map()
	require.Error(t, err)

	recordAndSubmit(t, device, func(cmd native.CommandBuffer) {
		cmd.CopyBufferRegion(target, 0, upload, 0, 16)
	})
	require.Len(t, device.Errors(), 1)

	recordAndSubmit(t, device, func(cmd native.CommandBuffer) {
		cmd.Barriers([]native.Barrier{{Kind: native.BarrierTransition, Buffer: target, Before: native.StateCommon, After: native.StateCopyDest}})
		cmd.CopyBufferRegion(target, 4, upload, 0, 4)
	})
	require.Len(t, device.Errors(), 1)
	require.Equal(t, []byte{0, 1, 2, 3}, target.(*Buffer).Contents()[4:8])
	require.Equal(t, native.StateCopyDest, target.(*Buffer).State())
}

func TestBarrierMismatchIsReported(t *testing.T) {
	device := New(Options{})

	texture, err := device.CreateTexture(native.TextureDesc{
		Dimension:        native.Texture2DArray,
		Width:            4,
		Height:           4,
		DepthOrArraySize: 2,
		MipLevels:        2,
		Format:           native.FormatR32Float,
	})
	require.NoError(t, err)

	recordAndSubmit(t, device, func(cmd native.CommandBuffer) {
		cmd.Barriers([]native.Barrier{
			{Kind: native.BarrierTransition, Texture: texture, Subresource: 3, Before: native.StateCommon, After: native.StateCopyDest},
			{Kind: native.BarrierTransition, Texture: texture, Subresource: 3, Before: native.StateCommon, After: native.StateCopySource},
		})
	})

	require.Len(t, device.Errors(), 1)
	require.Equal(t, native.StateCopySource, texture.(*Texture).State(3))
	require.Equal(t, native.StateCommon, texture.(*Texture).State(0))
}

func TestTextureRoundTrip(t *testing.T) {
	device := New(Options{})

	desc := native.TextureDesc{Dimension: native.Texture2D, Width: 2, Height: 2, MipLevels: 1, Format: native.FormatRGBA8Unorm}
	texture, err := device.CreateTexture(desc)
	require.NoError(t, err)

	footprint := device.Footprint(desc, 0)
	staging, err := device.CreateBuffer(native.BufferDesc{ByteSize: footprint.TotalBytes, Heap: native.HeapUpload})
	require.NoError(t, err)
	readback, err := device.CreateBuffer(native.BufferDesc{ByteSize: footprint.TotalBytes, Heap: native.HeapReadback})
	require.NoError(t, err)

	data, err := staging.Map()
	require.NoError(t, err)
	copy(data, []byte{1, 2, 3, 4, 5, 6, 7, 8})
	copy(data[footprint.RowPitch:], []byte{9, 10, 11, 12, 13, 14, 15, 16})

	recordAndSubmit(t, device, func(cmd native.CommandBuffer) {
		cmd.Barriers([]native.Barrier{{Kind: native.BarrierTransition, Texture: texture, Subresource: native.AllSubresources, Before: native.StateCommon, After: native.StateCopyDest}})
		cmd.CopyBufferToTexture(texture, 0, staging, footprint)
		cmd.Barriers([]native.Barrier{{Kind: native.BarrierTransition, Texture: texture, Subresource: 0, Before: native.StateCopyDest, After: native.StateCopySource}})
		cmd.CopyTextureToBuffer(readback, footprint, texture, 0)
	})

	require.Empty(t, device.Errors())
	require.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}, texture.(*Texture).Subresource(0))

	result, err := readback.Map()
	require.NoError(t, err)
	require.Equal(t, []byte{9, 10, 11, 12}, result[footprint.RowPitch:footprint.RowPitch+4])
}

func TestClearUnorderedAccessBuffer(t *testing.T) {
	device := New(Options{})

	buffer, err := device.CreateBuffer(native.BufferDesc{ByteSize: 4096, UnorderedAccess: true})
	require.NoError(t, err)
	table, err := device.CreateDescriptorTable(native.DescriptorTableDesc{Kind: native.DescriptorResource, Count: 4})
	require.NoError(t, err)

	handle := native.DescriptorHandle{Table: table, Index: 2}
	device.WriteDescriptor(handle, native.ViewDesc{Kind: native.ViewUnorderedAccess, Buffer: buffer, Size: 4096})

	recordAndSubmit(t, device, func(cmd native.CommandBuffer) {
		cmd.Barriers([]native.Barrier{{Kind: native.BarrierTransition, Buffer: buffer, Before: native.StateCommon, After: native.StateUnorderedAccess}})
		cmd.ClearUnorderedAccessUint(handle, [4]uint32{0xFFFFFFFF})
	})

	require.Empty(t, device.Errors())
	for _, b := range buffer.(*Buffer).Contents() {
		require.Equal(t, byte(0xFF), b)
	}
}

func TestClearRenderTargetAndDepth(t *testing.T) {
	device := New(Options{})

	color, err := device.CreateTexture(native.TextureDesc{Dimension: native.Texture2D, Width: 2, Height: 1, Format: native.FormatRGBA8Unorm})
	require.NoError(t, err)
	depth, err := device.CreateTexture(native.TextureDesc{Dimension: native.Texture2D, Width: 1, Height: 1, Format: native.FormatD24S8})
	require.NoError(t, err)

	table, err := device.CreateDescriptorTable(native.DescriptorTableDesc{Kind: native.DescriptorRenderTarget, Count: 2})
	require.NoError(t, err)
	rtv := native.DescriptorHandle{Table: table, Index: 0}
	dsv := native.DescriptorHandle{Table: table, Index: 1}
	device.WriteDescriptor(rtv, native.ViewDesc{Kind: native.ViewRenderTarget, Texture: color})
	device.WriteDescriptor(dsv, native.ViewDesc{Kind: native.ViewDepthStencil, Texture: depth})

	recordAndSubmit(t, device, func(cmd native.CommandBuffer) {
		cmd.Barriers([]native.Barrier{
			{Kind: native.BarrierTransition, Texture: color, Subresource: native.AllSubresources, Before: native.StateCommon, After: native.StateRenderTarget},
			{Kind: native.BarrierTransition, Texture: depth, Subresource: native.AllSubresources, Before: native.StateCommon, After: native.StateDepthWrite},
		})
		cmd.ClearRenderTarget(rtv, [4]float32{1, 0, 1, 0})
		cmd.ClearDepthStencil(dsv, false, 0, true, 7)
	})

	require.Empty(t, device.Errors())
	require.Equal(t, []byte{255, 0, 255, 0, 255, 0, 255, 0}, color.(*Texture).Subresource(0))
	require.Equal(t, []byte{0, 0, 0, 7}, depth.(*Texture).Subresource(0))
}

func TestDeferredExecutionRunsOnWait(t *testing.T) {
	device := New(Options{DeferExecution: true})

	fence, err := device.CreateFence(0)
	require.NoError(t, err)

	cmd := recordAndSubmit(t, device, func(cmd native.CommandBuffer) {
		cmd.SetDescriptorTables(nil, nil)
	})
	require.NoError(t, device.Queue().Signal(fence, 1))
	require.Equal(t, uint64(0), fence.CompletedValue())
	require.Error(t, cmd.Reset())

	require.NoError(t, fence.Wait(1))
	require.Equal(t, uint64(1), fence.CompletedValue())
	require.Equal(t, []string{"SetDescriptorTables"}, device.ExecutedCommands())
	require.NoError(t, cmd.Reset())

	require.Error(t, fence.Wait(2))
}

func TestCopyDescriptors(t *testing.T) {
	device := New(Options{})

	src, err := device.CreateDescriptorTable(native.DescriptorTableDesc{Kind: native.DescriptorResource, Count: 4})
	require.NoError(t, err)
	dst, err := device.CreateDescriptorTable(native.DescriptorTableDesc{Kind: native.DescriptorResource, Count: 4, ShaderVisible: true})
	require.NoError(t, err)

	device.WriteDescriptor(native.DescriptorHandle{Table: src, Index: 1}, native.ViewDesc{Kind: native.ViewShaderResource, Offset: 1})
	device.WriteDescriptor(native.DescriptorHandle{Table: src, Index: 3}, native.ViewDesc{Kind: native.ViewShaderResource, Offset: 3})
	device.CopyDescriptors(native.DescriptorHandle{Table: dst, Index: 1}, src, []int{3, 1})

	view, ok := device.Descriptor(native.DescriptorHandle{Table: dst, Index: 1})
	require.True(t, ok)
	require.Equal(t, 3, view.Offset)
	view, ok = device.Descriptor(native.DescriptorHandle{Table: dst, Index: 2})
	require.True(t, ok)
	require.Equal(t, 1, view.Offset)

	device.CopyDescriptors(native.DescriptorHandle{Table: dst, Index: 3}, src, []int{0, 1})
	require.Len(t, device.Errors(), 1)
}

func TestRemovedDevice(t *testing.T) {
	device := New(Options{})
	device.Remove(native.ErrDeviceRemoved)

	_, err := device.CreateBuffer(native.BufferDesc{ByteSize: 4})
	require.ErrorIs(t, err, native.ErrDeviceRemoved)
	require.ErrorIs(t, device.RemovedReason(), native.ErrDeviceRemoved)
}
