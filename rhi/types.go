package rhi

import (
	"github.com/vkngwrapper/rhicore/hazard"
	"github.com/vkngwrapper/rhicore/native"
)

// AllMipLevels selects every mip level of a texture. Any mip level past the end of the chain does
// the same.
const AllMipLevels = hazard.AllMips

// AllArraySlices selects every array slice of a texture
const AllArraySlices = hazard.AllArraySlices

const (
	// MaxRenderTargets is the number of color targets a draw may write
	MaxRenderTargets = 8
	// MaxVertexBuffers is the number of vertex buffer slots
	MaxVertexBuffers = 16
	// MaxViewports is the number of viewports and scissor rectangles a draw may set
	MaxViewports = 16
)

type Color struct {
	R, G, B, A float32
}

func (c Color) array() [4]float32 {
	return [4]float32{c.R, c.G, c.B, c.A}
}

type TextureDesc struct {
	Width            int
	Height           int
	DepthOrArraySize int
	MipLevels        int
	SampleCount      int
	SampleQuality    int
	Format           native.Format

	IsArray        bool
	IsCubeMap      bool
	IsRenderTarget bool
	IsUAV          bool

	// UseClearValue records ClearValue as the optimized clear color of a render target
	UseClearValue bool
	ClearValue    Color

	DebugName string
}

type BufferDesc struct {
	ByteSize int
	// StructStride makes shader views of the buffer structured, with elements of this many bytes
	StructStride int
	CanHaveUAVs  bool
	DebugName    string
}

type ConstantBufferDesc struct {
	ByteSize  int
	DebugName string
}

// ShaderDesc carries compiled bytecode together with its reflection: the slots the shader declares
// for each kind of binding
type ShaderDesc struct {
	Type     native.ShaderType
	Bytecode []byte

	ConstantBufferSlots  []int
	ShaderResourceSlots  []int
	UnorderedAccessSlots []int
	SamplerSlots         []int

	DebugName string
}

type WrapMode int

const (
	WrapModeClamp WrapMode = iota
	WrapModeWrap
	WrapModeBorder
)

type SamplerDesc struct {
	MinFilter bool
	MagFilter bool
	MipFilter bool
	// WrapMode is the address mode of the U, V and W coordinates
	WrapMode      [3]WrapMode
	MipBias       float32
	Anisotropy    float32
	BorderColor   Color
	ShadowCompare bool
}

type TextureBinding struct {
	Slot    int
	Texture *Texture
	// Format overrides the texture format in the view. FormatUnknown uses the texture's own format.
	Format     native.Format
	MipLevel   int
	IsWritable bool
}

type BufferBinding struct {
	Slot   int
	Buffer *Buffer
	// Format is the element format of a typed view. FormatUnknown reads the buffer as 32-bit words.
	Format     native.Format
	IsWritable bool
}

type ConstantBufferBinding struct {
	Slot   int
	Buffer *ConstantBuffer
}

type SamplerBinding struct {
	Slot    int
	Sampler *Sampler
}

// PipelineStageBindings is the shader and resources of one programmable stage
type PipelineStageBindings struct {
	Shader          *Shader
	Textures        []TextureBinding
	Buffers         []BufferBinding
	ConstantBuffers []ConstantBufferBinding
	Samplers        []SamplerBinding
}

type RenderTarget struct {
	Texture    *Texture
	ArrayIndex int
	MipLevel   int
}

type Viewport struct {
	MinX, MaxX float32
	MinY, MaxY float32
	MinZ, MaxZ float32
}

type Rect struct {
	MinX, MaxX int
	MinY, MaxY int
}

type RenderState struct {
	Targets     []RenderTarget
	DepthTarget RenderTarget

	ClearColorTarget   bool
	ClearDepthTarget   bool
	ClearStencilTarget bool
	ClearColor         Color
	ClearDepth         float32
	ClearStencil       uint8

	Viewports []Viewport
	// ScissorRects are used when Raster.Scissor is set. Otherwise each viewport scissors itself.
	ScissorRects []Rect

	Blend        native.BlendState
	DepthStencil native.DepthStencilState
	Raster       native.RasterState
}

type VertexBufferBinding struct {
	Buffer *Buffer
	Slot   int
	Offset int
	Stride int
}

type DrawCallState struct {
	PrimitiveType native.PrimitiveType
	InputLayout   *InputLayout

	IndexBuffer       *Buffer
	IndexBufferFormat native.Format
	IndexBufferOffset int
	VertexBuffers     []VertexBufferBinding

	VS PipelineStageBindings
	HS PipelineStageBindings
	DS PipelineStageBindings
	GS PipelineStageBindings
	PS PipelineStageBindings

	RenderState RenderState
}

type DrawArguments struct {
	VertexCount           int
	InstanceCount         int
	StartIndexLocation    int
	StartVertexLocation   int
	StartInstanceLocation int
}

type DispatchState struct {
	PipelineStageBindings
}
