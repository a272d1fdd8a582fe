package native

import "strconv"

// Format is an abstract texel or vertex attribute format. The native device translates it into
// whatever the underlying API understands.
type Format uint32

const (
	FormatUnknown Format = iota
	FormatR8Unorm
	FormatRG8Unorm
	FormatRGBA8Unorm
	FormatBGRA8Unorm
	FormatR16Float
	FormatRGBA16Float
	FormatR32Uint
	FormatR32Float
	FormatRG32Float
	FormatRGB32Float
	FormatRGBA32Float
	FormatRGBA32Uint
	FormatR16Uint
	FormatD16
	FormatD24S8
	FormatD32
)

var formatMapping = map[Format]string{
	FormatUnknown:     "FormatUnknown",
	FormatR8Unorm:     "FormatR8Unorm",
	FormatRG8Unorm:    "FormatRG8Unorm",
	FormatRGBA8Unorm:  "FormatRGBA8Unorm",
	FormatBGRA8Unorm:  "FormatBGRA8Unorm",
	FormatR16Float:    "FormatR16Float",
	FormatRGBA16Float: "FormatRGBA16Float",
	FormatR32Uint:     "FormatR32Uint",
	FormatR32Float:    "FormatR32Float",
	FormatRG32Float:   "FormatRG32Float",
	FormatRGB32Float:  "FormatRGB32Float",
	FormatRGBA32Float: "FormatRGBA32Float",
	FormatRGBA32Uint:  "FormatRGBA32Uint",
	FormatR16Uint:     "FormatR16Uint",
	FormatD16:         "FormatD16",
	FormatD24S8:       "FormatD24S8",
	FormatD32:         "FormatD32",
}

func (f Format) String() string {
	str, ok := formatMapping[f]
	if !ok {
		return "Format(" + strconv.Itoa(int(f)) + ")"
	}
	return str
}

// FormatInfo is the subset of a native format table that the lifecycle core needs
type FormatInfo struct {
	BytesPerPixel int
	DepthStencil  bool
	HasStencil    bool
}
