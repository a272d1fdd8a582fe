package native

import "github.com/vkngwrapper/core/v2/common"

// Object is implemented by every native object the core owns. Destroy releases the native allocation
// and must only be called once the GPU can no longer reference it.
type Object interface {
	Destroy()
}

type HeapType int

const (
	HeapDefault HeapType = iota
	HeapUpload
	HeapReadback
)

var heapTypeMapping = map[HeapType]string{
	HeapDefault:  "HeapDefault",
	HeapUpload:   "HeapUpload",
	HeapReadback: "HeapReadback",
}

func (h HeapType) String() string {
	return heapTypeMapping[h]
}

type BufferDesc struct {
	ByteSize        int
	Heap            HeapType
	UnorderedAccess bool
	DebugName       string
}

// Buffer is a linear GPU allocation. Map is only valid on upload and readback heaps.
type Buffer interface {
	Object
	Desc() BufferDesc
	Map() ([]byte, error)
	Unmap()
}

type TextureDimension int

const (
	Texture1D TextureDimension = iota
	Texture1DArray
	Texture2D
	Texture2DArray
	TextureCube
	TextureCubeArray
	Texture3D
)

var textureDimensionMapping = map[TextureDimension]string{
	Texture1D:        "Texture1D",
	Texture1DArray:   "Texture1DArray",
	Texture2D:        "Texture2D",
	Texture2DArray:   "Texture2DArray",
	TextureCube:      "TextureCube",
	TextureCubeArray: "TextureCubeArray",
	Texture3D:        "Texture3D",
}

func (d TextureDimension) String() string {
	return textureDimensionMapping[d]
}

// IsArray reports whether DepthOrArraySize counts array slices (and therefore subresources)
// rather than depth slices
func (d TextureDimension) IsArray() bool {
	return d == Texture1DArray || d == Texture2DArray || d == TextureCube || d == TextureCubeArray
}

type TextureUsage int32

var textureUsageMapping = common.NewFlagStringMapping[TextureUsage]()

func (u TextureUsage) Register(str string) {
	textureUsageMapping.Register(u, str)
}
func (u TextureUsage) String() string {
	return textureUsageMapping.FlagsToString(u)
}

const (
	TextureUsageShaderResource TextureUsage = 1 << iota
	TextureUsageRenderTarget
	TextureUsageDepthStencil
	TextureUsageUnorderedAccess
)

func init() {
	TextureUsageShaderResource.Register("TextureUsageShaderResource")
	TextureUsageRenderTarget.Register("TextureUsageRenderTarget")
	TextureUsageDepthStencil.Register("TextureUsageDepthStencil")
	TextureUsageUnorderedAccess.Register("TextureUsageUnorderedAccess")
}

type TextureDesc struct {
	Dimension        TextureDimension
	Width            int
	Height           int
	DepthOrArraySize int
	MipLevels        int
	SampleCount      int
	SampleQuality    int
	Format           Format
	Usage            TextureUsage
	DebugName        string
}

// MipExtent returns the dimensions of one mip level, never smaller than 1
func (d TextureDesc) MipExtent(mip int) (width, height, depth int) {
	width = max1(d.Width >> mip)
	height = max1(d.Height >> mip)
	depth = 1
	if d.Dimension == Texture3D {
		depth = max1(d.DepthOrArraySize >> mip)
	}
	return width, height, depth
}

// ArraySize is the number of array slices, which is 1 for anything that isn't an array
func (d TextureDesc) ArraySize() int {
	if d.Dimension.IsArray() {
		return max1(d.DepthOrArraySize)
	}
	return 1
}

func max1(v int) int {
	if v < 1 {
		return 1
	}
	return v
}

type Texture interface {
	Object
	Desc() TextureDesc
}

// Footprint describes how one texture subresource is laid out in a linear buffer
type Footprint struct {
	Offset     int
	Format     Format
	Width      int
	Height     int
	Depth      int
	RowPitch   int
	RowSize    int
	TotalBytes int
}
