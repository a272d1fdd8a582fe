package native

type ShaderType int

const (
	ShaderVertex ShaderType = iota
	ShaderHull
	ShaderDomain
	ShaderGeometry
	ShaderPixel
	ShaderCompute
)

// GraphicsStageCount is the number of programmable stages in a graphics pipeline
const GraphicsStageCount = 5

var shaderTypeMapping = map[ShaderType]string{
	ShaderVertex:   "ShaderVertex",
	ShaderHull:     "ShaderHull",
	ShaderDomain:   "ShaderDomain",
	ShaderGeometry: "ShaderGeometry",
	ShaderPixel:    "ShaderPixel",
	ShaderCompute:  "ShaderCompute",
}

func (t ShaderType) String() string {
	return shaderTypeMapping[t]
}

// StageTables describe the descriptor tables one stage expects. Resource tables are laid out as
// constant buffers, then shader resources, then unordered access views.
type StageTables struct {
	Stage           ShaderType
	ConstantBuffers int
	ShaderResources int
	UnorderedAccess int
	Samplers        int
}

func (s StageTables) ResourceCount() int {
	return s.ConstantBuffers + s.ShaderResources + s.UnorderedAccess
}

type BindingLayoutDesc struct {
	Stages           []StageTables
	AllowInputLayout bool
}

// BindingLayout is a compiled root signature / pipeline layout
type BindingLayout interface {
	Object
}

type PrimitiveType int

const (
	PrimitivePointList PrimitiveType = iota
	PrimitiveLineList
	PrimitiveTriangleList
	PrimitiveTriangleStrip
	PrimitivePatchList3
	PrimitivePatchList4
)

var primitiveTypeMapping = map[PrimitiveType]string{
	PrimitivePointList:     "PrimitivePointList",
	PrimitiveLineList:      "PrimitiveLineList",
	PrimitiveTriangleList:  "PrimitiveTriangleList",
	PrimitiveTriangleStrip: "PrimitiveTriangleStrip",
	PrimitivePatchList3:    "PrimitivePatchList3",
	PrimitivePatchList4:    "PrimitivePatchList4",
}

func (p PrimitiveType) String() string {
	return primitiveTypeMapping[p]
}

type BlendFactor uint8
type BlendOp uint8
type ComparisonFunc uint8
type StencilOp uint8
type FillMode uint8
type CullMode uint8

type TargetBlend struct {
	Enable         bool
	SrcBlend       BlendFactor
	DestBlend      BlendFactor
	BlendOp        BlendOp
	SrcBlendAlpha  BlendFactor
	DestBlendAlpha BlendFactor
	BlendOpAlpha   BlendOp
	WriteMask      uint8
}

type BlendState struct {
	AlphaToCoverage bool
	Targets         [8]TargetBlend
	BlendFactor     [4]float32
}

type StencilFaceOp struct {
	FailOp      StencilOp
	DepthFailOp StencilOp
	PassOp      StencilOp
	Func        ComparisonFunc
}

type DepthStencilState struct {
	DepthEnable      bool
	DepthWriteAll    bool
	DepthFunc        ComparisonFunc
	StencilEnable    bool
	StencilReadMask  uint8
	StencilWriteMask uint8
	StencilRef       uint8
	FrontFace        StencilFaceOp
	BackFace         StencilFaceOp
}

type RasterState struct {
	Fill                 FillMode
	Cull                 CullMode
	FrontCounterClock    bool
	DepthClip            bool
	Scissor              bool
	Multisample          bool
	AntialiasedLine      bool
	DepthBias            int32
	DepthBiasClamp       float32
	SlopeScaledDepthBias float32
}

type InputAttribute struct {
	SemanticName     string
	SemanticIndex    int
	Format           Format
	BufferSlot       int
	Offset           int
	PerInstance      bool
	InstanceStepRate int
}

type GraphicsPipelineDesc struct {
	Layout        BindingLayout
	VS            []byte
	HS            []byte
	DS            []byte
	GS            []byte
	PS            []byte
	InputLayout   []InputAttribute
	Blend         BlendState
	DepthStencil  DepthStencilState
	Raster        RasterState
	PrimitiveType PrimitiveType
	TargetFormats []Format
	DepthFormat   Format
	SampleCount   int
	SampleQuality int
}

type ComputePipelineDesc struct {
	Layout BindingLayout
	CS     []byte
}

// Pipeline is a compiled pipeline state object
type Pipeline interface {
	Object
}
