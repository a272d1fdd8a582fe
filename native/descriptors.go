package native

type DescriptorKind int

const (
	DescriptorResource DescriptorKind = iota
	DescriptorSampler
	DescriptorRenderTarget
	DescriptorDepthStencil
)

var descriptorKindMapping = map[DescriptorKind]string{
	DescriptorResource:     "DescriptorResource",
	DescriptorSampler:      "DescriptorSampler",
	DescriptorRenderTarget: "DescriptorRenderTarget",
	DescriptorDepthStencil: "DescriptorDepthStencil",
}

func (k DescriptorKind) String() string {
	return descriptorKindMapping[k]
}

type DescriptorTableDesc struct {
	Kind          DescriptorKind
	Count         int
	ShaderVisible bool
}

// DescriptorTable is a contiguous array of native descriptors
type DescriptorTable interface {
	Object
	Desc() DescriptorTableDesc
}

// DescriptorHandle addresses a single descriptor slot
type DescriptorHandle struct {
	Table DescriptorTable
	Index int
}

type ViewKind int

const (
	ViewConstantBuffer ViewKind = iota
	ViewShaderResource
	ViewUnorderedAccess
	ViewRenderTarget
	ViewDepthStencil
	ViewSampler
)

var viewKindMapping = map[ViewKind]string{
	ViewConstantBuffer:  "ViewConstantBuffer",
	ViewShaderResource:  "ViewShaderResource",
	ViewUnorderedAccess: "ViewUnorderedAccess",
	ViewRenderTarget:    "ViewRenderTarget",
	ViewDepthStencil:    "ViewDepthStencil",
	ViewSampler:         "ViewSampler",
}

func (k ViewKind) String() string {
	return viewKindMapping[k]
}

type FilterMode int

const (
	FilterPoint FilterMode = iota
	FilterLinear
	FilterAnisotropic
)

type AddressMode int

const (
	AddressWrap AddressMode = iota
	AddressClamp
	AddressMirror
	AddressBorder
)

type SamplerDesc struct {
	MinFilter     FilterMode
	MagFilter     FilterMode
	MipFilter     FilterMode
	AddressU      AddressMode
	AddressV      AddressMode
	AddressW      AddressMode
	MipBias       float32
	MaxAnisotropy int
	BorderColor   [4]float32
	Comparison    bool
}

// ViewDesc describes a descriptor to write. A view with neither Texture nor Buffer set is a null
// descriptor of the given kind.
type ViewDesc struct {
	Kind       ViewKind
	Texture    Texture
	Buffer     Buffer
	Format     Format
	Offset     int
	Size       int
	MipLevel   int
	MipCount   int
	ArrayIndex int
	ArrayCount int
	Sampler    SamplerDesc
}
