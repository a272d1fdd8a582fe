package rhi_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/rhicore/native"
	mock_native "github.com/vkngwrapper/rhicore/native/mocks"
	"github.com/vkngwrapper/rhicore/native/software"
	"github.com/vkngwrapper/rhicore/rhi"
	"go.uber.org/mock/gomock"
)

var triangle = []rhi.DrawArguments{{VertexCount: 3, InstanceCount: 1}}

func createShader(t *testing.T, device *rhi.Device, desc rhi.ShaderDesc) *rhi.Shader {
	if desc.Bytecode == nil {
		desc.Bytecode = []byte{0xDE, 0xAD}
	}
	shader := device.CreateShader(desc)
	require.NotNil(t, shader)
	return shader
}

func drawState(vs, ps *rhi.Shader) rhi.DrawCallState {
	return rhi.DrawCallState{
		PrimitiveType: native.PrimitiveTriangleList,
		VS:            rhi.PipelineStageBindings{Shader: vs},
		PS:            rhi.PipelineStageBindings{Shader: ps},
	}
}

func TestCreateShaderRejectsSlotsOverCapacity(t *testing.T) {
	device, _ := newDevice(t, software.Options{}, rhi.CreateOptions{})

	testCases := map[string]rhi.ShaderDesc{
		"ConstantBuffer":  {ConstantBufferSlots: []int{rhi.MaxConstantBufferSlots}},
		"ShaderResource":  {ShaderResourceSlots: []int{rhi.MaxShaderResourceSlots}},
		"UnorderedAccess": {UnorderedAccessSlots: []int{rhi.MaxUnorderedAccessSlots}},
		"Sampler":         {SamplerSlots: []int{-1}},
		"NoBytecode":      {Bytecode: []byte{}},
	}

	for name, desc := range testCases {
		t.Run(name, func(t *testing.T) {
			if desc.Bytecode == nil {
				desc.Bytecode = []byte{1}
			}
			require.Nil(t, device.CreateShader(desc))
		})
	}
}

func TestDestroyShaderEvictsLayoutsAndPipelines(t *testing.T) {
	device, sw := newDevice(t, software.Options{}, rhi.CreateOptions{})

	vs := createShader(t, device, rhi.ShaderDesc{Type: native.ShaderVertex})
	ps1 := createShader(t, device, rhi.ShaderDesc{Type: native.ShaderPixel, DebugName: "ps1"})
	ps2 := createShader(t, device, rhi.ShaderDesc{Type: native.ShaderPixel, DebugName: "ps2"})

	device.Draw(drawState(vs, ps1), triangle)
	device.Draw(drawState(vs, ps2), triangle)

	stats := device.Statistics()
	require.Equal(t, 2, stats.BindingLayouts)
	require.Equal(t, 2, stats.Pipelines)

	device.DestroyShader(ps1)
	stats = device.Statistics()
	require.Equal(t, 1, stats.BindingLayouts)
	require.Equal(t, 1, stats.Pipelines)
	require.Equal(t, 2, stats.PendingDestruction)

	destroyedBefore := sw.Statistics().Destroyed
	device.SyncWithGPU()
	require.Equal(t, 0, device.Statistics().PendingDestruction)
	require.Equal(t, destroyedBefore+2, sw.Statistics().Destroyed)
	require.Equal(t, 2, sw.Statistics().Draws)

	device.DestroyShader(vs)
	stats = device.Statistics()
	require.Equal(t, 0, stats.BindingLayouts)
	require.Equal(t, 0, stats.Pipelines)

	device.DestroyShader(ps2)
}

func TestStateIsRecordedAgainAfterFlush(t *testing.T) {
	device, sw := newDevice(t, software.Options{}, rhi.CreateOptions{})

	vs := createShader(t, device, rhi.ShaderDesc{Type: native.ShaderVertex})
	ps := createShader(t, device, rhi.ShaderDesc{Type: native.ShaderPixel})

	target := device.CreateTexture(rhi.TextureDesc{Width: 4, Height: 4, Format: native.FormatRGBA8Unorm, IsRenderTarget: true}, nil)
	vertices := device.CreateBuffer(rhi.BufferDesc{ByteSize: 36}, nil)
	indices := device.CreateBuffer(rhi.BufferDesc{ByteSize: 6}, nil)

	state := drawState(vs, ps)
	state.RenderState.Targets = []rhi.RenderTarget{{Texture: target}}
	state.IndexBuffer = indices
	state.IndexBufferFormat = native.FormatR16Uint
	state.VertexBuffers = []rhi.VertexBufferBinding{{Buffer: vertices, Slot: 0, Stride: 12}}

	device.Draw(state, triangle)
	device.Draw(state, triangle)
	device.Flush()

	testCases := []string{"SetPipeline", "SetGraphicsLayout", "SetRenderTargets", "SetVertexBuffers", "SetIndexBuffer"}
	for _, name := range testCases {
		require.Equal(t, 1, countCommands(sw.ExecutedCommands(), name), name)
	}
	require.Equal(t, 2, countCommands(sw.ExecutedCommands(), "Draw"))

	device.Draw(state, triangle)
	device.Flush()

	for _, name := range testCases {
		require.Equal(t, 2, countCommands(sw.ExecutedCommands(), name), name)
	}
	require.Equal(t, 3, countCommands(sw.ExecutedCommands(), "Draw"))
}

func TestOutOfRangeVertexBufferIsNotTransitioned(t *testing.T) {
	device, sw := newDevice(t, software.Options{}, rhi.CreateOptions{})

	vs := createShader(t, device, rhi.ShaderDesc{Type: native.ShaderVertex})
	ps := createShader(t, device, rhi.ShaderDesc{Type: native.ShaderPixel})

	bound := device.CreateBuffer(rhi.BufferDesc{ByteSize: 36}, nil)
	dropped := device.CreateBuffer(rhi.BufferDesc{ByteSize: 36}, nil)

	state := drawState(vs, ps)
	state.VertexBuffers = []rhi.VertexBufferBinding{
		{Buffer: bound, Slot: 0, Stride: 12},
		{Buffer: dropped, Slot: rhi.MaxVertexBuffers, Stride: 12},
	}

	device.Draw(state, triangle)
	device.Flush()

	require.Equal(t, 1, sw.Statistics().Draws)
	require.Equal(t, 1, countCommands(sw.ExecutedCommands(), "SetVertexBuffers"))
	require.Equal(t, native.StateVertexAndConstantBuffer, bound.Native().(*software.Buffer).State())
	require.Equal(t, native.StateCommon, dropped.Native().(*software.Buffer).State())
}

// countingDevice routes pipeline creation through a mock so tests can count it
type countingDevice struct {
	*software.Device
	pipelines *mock_native.MockDevice
}

func (d countingDevice) CreateGraphicsPipeline(desc native.GraphicsPipelineDesc) (native.Pipeline, error) {
	return d.pipelines.CreateGraphicsPipeline(desc)
}

func TestIdenticalDrawsHitThePipelineCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	sw := software.New(software.Options{})

	pipelines := mock_native.NewMockDevice(ctrl)
	pipelines.EXPECT().CreateGraphicsPipeline(gomock.Any()).DoAndReturn(sw.CreateGraphicsPipeline).Times(1)

	device, err := rhi.New(testLogger(), countingDevice{Device: sw, pipelines: pipelines}, sw.Queue(), rhi.CreateOptions{})
	require.NoError(t, err)
	defer func() {
		require.NoError(t, device.Destroy())
	}()

	vs := createShader(t, device, rhi.ShaderDesc{Type: native.ShaderVertex})
	ps := createShader(t, device, rhi.ShaderDesc{Type: native.ShaderPixel})

	device.Draw(drawState(vs, ps), triangle)
	device.Draw(drawState(vs, ps), triangle)
	device.Flush()
	device.Draw(drawState(vs, ps), triangle)

	stats := device.Statistics()
	require.Equal(t, 1, stats.PipelineCacheMisses)
	require.Equal(t, 2, stats.PipelineCacheHits)
	require.Equal(t, 1, stats.Pipelines)
}

func TestPipelineKeyIgnoresUnusedBlendTargets(t *testing.T) {
	device, _ := newDevice(t, software.Options{}, rhi.CreateOptions{})

	vs := createShader(t, device, rhi.ShaderDesc{Type: native.ShaderVertex})
	ps := createShader(t, device, rhi.ShaderDesc{Type: native.ShaderPixel})

	first := drawState(vs, ps)
	second := drawState(vs, ps)
	second.RenderState.Blend.Targets[3].Enable = true

	device.Draw(first, triangle)
	device.Draw(second, triangle)

	require.Equal(t, 1, device.Statistics().Pipelines)
}

func TestShaderInTheWrongStageIsRejected(t *testing.T) {
	device, sw := newDevice(t, software.Options{}, rhi.CreateOptions{})

	vs := createShader(t, device, rhi.ShaderDesc{Type: native.ShaderVertex})
	device.Draw(drawState(vs, vs), triangle)
	device.Flush()

	require.Equal(t, 0, device.Statistics().Pipelines)
	require.Equal(t, 0, sw.Statistics().Draws)
}

func TestConstantBufferUploads(t *testing.T) {
	device, _ := newDevice(t, software.Options{}, rhi.CreateOptions{})

	vs := createShader(t, device, rhi.ShaderDesc{Type: native.ShaderVertex, ConstantBufferSlots: []int{0}})
	ps := createShader(t, device, rhi.ShaderDesc{Type: native.ShaderPixel})

	constants := device.CreateConstantBuffer(rhi.ConstantBufferDesc{ByteSize: 16}, pattern(16, 1))
	require.NotNil(t, constants)

	state := drawState(vs, ps)
	state.VS.ConstantBuffers = []rhi.ConstantBufferBinding{{Slot: 0, Buffer: constants}}

	device.Draw(state, triangle)
	device.Draw(state, triangle)
	require.Equal(t, 1, constants.Statistics().CachedRefs)

	device.WriteConstantBuffer(constants, pattern(16, 1))
	require.Equal(t, 1, constants.Statistics().IdenticalWrites)

	device.WriteConstantBuffer(constants, pattern(16, 2))
	require.Equal(t, 1, constants.Statistics().Writes)

	device.Draw(state, triangle)
	require.Equal(t, 1, constants.Statistics().Refreshes)

	device.Flush()
	device.Draw(state, triangle)

	stats := constants.Statistics()
	require.Equal(t, 2, stats.Refreshes)
	require.Equal(t, 1, stats.CachedRefs)
	require.Equal(t, stats, device.Statistics().ConstantBuffer)

	device.DestroyConstantBuffer(constants)
	require.Equal(t, 0, device.Statistics().ConstantBuffers)
}

func TestConstantBufferUploadIsEvictedByReclaim(t *testing.T) {
	device, _ := newDevice(t, software.Options{}, rhi.CreateOptions{})

	vs := createShader(t, device, rhi.ShaderDesc{Type: native.ShaderVertex, ConstantBufferSlots: []int{2}})
	ps := createShader(t, device, rhi.ShaderDesc{Type: native.ShaderPixel})

	constants := device.CreateConstantBuffer(rhi.ConstantBufferDesc{ByteSize: 64}, nil)
	state := drawState(vs, ps)
	state.VS.ConstantBuffers = []rhi.ConstantBufferBinding{{Slot: 2, Buffer: constants}}

	device.Draw(state, triangle)
	device.SyncWithGPU()
	require.Equal(t, 1, constants.Statistics().Evictions)

	device.Draw(state, triangle)
	require.Equal(t, 1, constants.Statistics().Refreshes)
}

func TestShaderResourceBindingTransitionsTexture(t *testing.T) {
	device, sw := newDevice(t, software.Options{}, rhi.CreateOptions{})

	vs := createShader(t, device, rhi.ShaderDesc{Type: native.ShaderVertex})
	ps := createShader(t, device, rhi.ShaderDesc{
		Type:                native.ShaderPixel,
		ShaderResourceSlots: []int{1, 2},
		SamplerSlots:        []int{0},
	})

	texture := device.CreateTexture(rhi.TextureDesc{Width: 2, Height: 2, Format: native.FormatRGBA8Unorm}, pattern(16, 0))
	sampler := device.CreateSampler(rhi.SamplerDesc{MinFilter: true, MagFilter: true})

	state := drawState(vs, ps)
	state.PS.Textures = []rhi.TextureBinding{
		{Slot: 1, Texture: texture, MipLevel: rhi.AllMipLevels},
		{Slot: 7, Texture: texture},
	}
	state.PS.Samplers = []rhi.SamplerBinding{{Slot: 0, Sampler: sampler}}

	device.Draw(state, triangle)
	device.Flush()

	nativeTexture := texture.Native().(*software.Texture)
	require.Equal(t, native.StatePixelShaderResource, nativeTexture.State(0))
	require.Equal(t, 1, sw.Statistics().Draws)
	require.Equal(t, 1, countCommands(sw.ExecutedCommands(), "SetGraphicsTable(0)"))
	require.Equal(t, 1, countCommands(sw.ExecutedCommands(), "SetGraphicsTable(1)"))

	device.DestroySampler(sampler)
	device.DestroyTexture(texture)
}

func TestDrawClearsRenderTarget(t *testing.T) {
	device, _ := newDevice(t, software.Options{}, rhi.CreateOptions{})

	vs := createShader(t, device, rhi.ShaderDesc{Type: native.ShaderVertex})
	ps := createShader(t, device, rhi.ShaderDesc{Type: native.ShaderPixel})

	green := rhi.Color{G: 1, A: 1}
	target := device.CreateTexture(rhi.TextureDesc{
		Width:          2,
		Height:         2,
		Format:         native.FormatRGBA8Unorm,
		IsRenderTarget: true,
		UseClearValue:  true,
		ClearValue:     green,
	}, nil)

	state := drawState(vs, ps)
	state.RenderState.Targets = []rhi.RenderTarget{{Texture: target}}
	state.RenderState.ClearColorTarget = true
	state.RenderState.ClearColor = green
	state.RenderState.Viewports = []rhi.Viewport{{MaxX: 4, MaxY: 4, MaxZ: 1}}

	device.Draw(state, triangle)

	data := device.ReadTexture(target, 0, 0)
	for i := 0; i < len(data); i += 4 {
		require.Equal(t, []byte{0, 255, 0, 255}, data[i:i+4])
	}
}

func TestDispatchWritesUnorderedAccessBuffer(t *testing.T) {
	device, sw := newDevice(t, software.Options{}, rhi.CreateOptions{})

	cs := createShader(t, device, rhi.ShaderDesc{Type: native.ShaderCompute, UnorderedAccessSlots: []int{0}})
	buffer := device.CreateBuffer(rhi.BufferDesc{ByteSize: 64, CanHaveUAVs: true}, nil)

	state := rhi.DispatchState{PipelineStageBindings: rhi.PipelineStageBindings{
		Shader:  cs,
		Buffers: []rhi.BufferBinding{{Slot: 0, Buffer: buffer, IsWritable: true}},
	}}

	device.Dispatch(state, 1, 1, 1)
	device.Dispatch(state, 2, 1, 1)
	device.Flush()

	require.Equal(t, 2, sw.Statistics().Dispatches)
	require.Equal(t, 1, countCommands(sw.ExecutedCommands(), "SetComputeLayout"))
	require.Equal(t, native.StateUnorderedAccess, buffer.Native().(*software.Buffer).State())
}

func TestBindingRetriesAfterRingFlush(t *testing.T) {
	device, sw := newDevice(t, software.Options{}, rhi.CreateOptions{ResourceRingSize: 8})

	vs := createShader(t, device, rhi.ShaderDesc{Type: native.ShaderVertex})
	ps := createShader(t, device, rhi.ShaderDesc{Type: native.ShaderPixel, ShaderResourceSlots: []int{0, 1, 2}})

	texture := device.CreateTexture(rhi.TextureDesc{Width: 1, Height: 1, Format: native.FormatRGBA8Unorm}, nil)
	state := drawState(vs, ps)
	state.PS.Textures = []rhi.TextureBinding{
		{Slot: 0, Texture: texture},
		{Slot: 1, Texture: texture},
		{Slot: 2, Texture: texture},
	}

	for i := 0; i < 3; i++ {
		device.Draw(state, triangle)
	}
	device.Flush()

	require.Equal(t, 1, device.Statistics().BindingRetries)
	require.Equal(t, 3, sw.Statistics().Draws)
}

func TestMultiMipClearCountsEveryClear(t *testing.T) {
	device, _ := newDevice(t, software.Options{}, rhi.CreateOptions{MaxCommandsPerBuffer: 3})

	black := rhi.Color{A: 1}
	texture := device.CreateTexture(rhi.TextureDesc{
		Width:          8,
		Height:         8,
		MipLevels:      4,
		Format:         native.FormatRGBA8Unorm,
		IsRenderTarget: true,
		UseClearValue:  true,
		ClearValue:     black,
	}, nil)

	// The first clear also records the transitions out of the initial state
	device.ClearTextureFloat(texture, black)
	require.Equal(t, 1, device.Statistics().CommandBuffersSubmitted)

	device.ClearTextureFloat(texture, black)
	require.Equal(t, 2, device.Statistics().CommandBuffersSubmitted)
}

func TestBufferViewsAreCachedPerFormat(t *testing.T) {
	device, _ := newDevice(t, software.Options{}, rhi.CreateOptions{})

	cs := createShader(t, device, rhi.ShaderDesc{Type: native.ShaderCompute, ShaderResourceSlots: []int{0}})
	buffer := device.CreateBuffer(rhi.BufferDesc{ByteSize: 64}, nil)

	dispatch := func(format native.Format) {
		device.Dispatch(rhi.DispatchState{PipelineStageBindings: rhi.PipelineStageBindings{
			Shader:  cs,
			Buffers: []rhi.BufferBinding{{Slot: 0, Buffer: buffer, Format: format}},
		}}, 1, 1, 1)
	}
	inUse := func() int {
		return device.Statistics().DescriptorHeaps.InUse
	}

	base := inUse()
	dispatch(native.FormatUnknown)
	require.Equal(t, base+1, inUse())

	// FormatUnknown reads the buffer as 32-bit words, so it shares the R32Uint view
	dispatch(native.FormatR32Uint)
	require.Equal(t, base+1, inUse())

	dispatch(native.FormatR32Float)
	require.Equal(t, base+2, inUse())

	device.DestroyBuffer(buffer)
	require.Equal(t, base, inUse())
}
