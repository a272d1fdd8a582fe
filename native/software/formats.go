package software

import (
	"encoding/binary"
	"math"

	"github.com/vkngwrapper/rhicore/native"
)

type channelKind int

const (
	channelUnorm channelKind = iota
	channelUint
	channelFloat
	channelDepth
)

type formatLayout struct {
	info         native.FormatInfo
	channels     int
	channelBytes int
	kind         channelKind
}

var formatLayouts = map[native.Format]formatLayout{
	native.FormatR8Unorm:     {info: native.FormatInfo{BytesPerPixel: 1}, channels: 1, channelBytes: 1, kind: channelUnorm},
	native.FormatRG8Unorm:    {info: native.FormatInfo{BytesPerPixel: 2}, channels: 2, channelBytes: 1, kind: channelUnorm},
	native.FormatRGBA8Unorm:  {info: native.FormatInfo{BytesPerPixel: 4}, channels: 4, channelBytes: 1, kind: channelUnorm},
	native.FormatBGRA8Unorm:  {info: native.FormatInfo{BytesPerPixel: 4}, channels: 4, channelBytes: 1, kind: channelUnorm},
	native.FormatR16Float:    {info: native.FormatInfo{BytesPerPixel: 2}, channels: 1, channelBytes: 2, kind: channelFloat},
	native.FormatRGBA16Float: {info: native.FormatInfo{BytesPerPixel: 8}, channels: 4, channelBytes: 2, kind: channelFloat},
	native.FormatR16Uint:     {info: native.FormatInfo{BytesPerPixel: 2}, channels: 1, channelBytes: 2, kind: channelUint},
	native.FormatR32Uint:     {info: native.FormatInfo{BytesPerPixel: 4}, channels: 1, channelBytes: 4, kind: channelUint},
	native.FormatR32Float:    {info: native.FormatInfo{BytesPerPixel: 4}, channels: 1, channelBytes: 4, kind: channelFloat},
	native.FormatRG32Float:   {info: native.FormatInfo{BytesPerPixel: 8}, channels: 2, channelBytes: 4, kind: channelFloat},
	native.FormatRGB32Float:  {info: native.FormatInfo{BytesPerPixel: 12}, channels: 3, channelBytes: 4, kind: channelFloat},
	native.FormatRGBA32Float: {info: native.FormatInfo{BytesPerPixel: 16}, channels: 4, channelBytes: 4, kind: channelFloat},
	native.FormatRGBA32Uint:  {info: native.FormatInfo{BytesPerPixel: 16}, channels: 4, channelBytes: 4, kind: channelUint},
	native.FormatD16:         {info: native.FormatInfo{BytesPerPixel: 2, DepthStencil: true}, channels: 1, channelBytes: 2, kind: channelDepth},
	native.FormatD24S8:       {info: native.FormatInfo{BytesPerPixel: 4, DepthStencil: true, HasStencil: true}, channels: 1, channelBytes: 4, kind: channelDepth},
	native.FormatD32:         {info: native.FormatInfo{BytesPerPixel: 4, DepthStencil: true}, channels: 1, channelBytes: 4, kind: channelDepth},
}

func layoutOf(format native.Format) formatLayout {
	layout, ok := formatLayouts[format]
	if !ok {
		return formatLayout{info: native.FormatInfo{BytesPerPixel: 4}, channels: 1, channelBytes: 4, kind: channelUint}
	}
	return layout
}

func float16Bits(value float32) uint16 {
	bits := math.Float32bits(value)
	sign := uint16(bits>>16) & 0x8000
	exponent := int((bits>>23)&0xff) - 127 + 15
	mantissa := bits & 0x7fffff

	switch {
	case exponent <= 0:
		return sign
	case exponent >= 0x1f:
		return sign | 0x7c00
	default:
		return sign | uint16(exponent)<<10 | uint16(mantissa>>13)
	}
}

func putChannel(dst []byte, size int, value uint32) {
	switch size {
	case 1:
		dst[0] = byte(value)
	case 2:
		binary.LittleEndian.PutUint16(dst, uint16(value))
	default:
		binary.LittleEndian.PutUint32(dst, value)
	}
}

// encodeFloat produces one texel of format from floating point channel values
func encodeFloat(format native.Format, values [4]float32) []byte {
	layout := layoutOf(format)
	texel := make([]byte, layout.info.BytesPerPixel)

	for c := 0; c < layout.channels; c++ {
		var bits uint32
		switch layout.kind {
		case channelUnorm:
			bits = uint32(clamp01(values[c])*255 + 0.5)
		case channelFloat:
			if layout.channelBytes == 2 {
				bits = uint32(float16Bits(values[c]))
			} else {
				bits = math.Float32bits(values[c])
			}
		default:
			bits = uint32(values[c])
		}
		putChannel(texel[c*layout.channelBytes:], layout.channelBytes, bits)
	}

	return texel
}

// encodeUint produces one texel of format from integer channel values, truncating each to its channel width
func encodeUint(format native.Format, values [4]uint32) []byte {
	layout := layoutOf(format)
	texel := make([]byte, layout.info.BytesPerPixel)

	for c := 0; c < layout.channels; c++ {
		putChannel(texel[c*layout.channelBytes:], layout.channelBytes, values[c])
	}

	return texel
}

func encodeDepth(format native.Format, depth float32, stencil uint8, clearDepth, clearStencil bool, existing []byte) []byte {
	texel := make([]byte, len(existing))
	copy(texel, existing)
	depth = clamp01(depth)

	switch format {
	case native.FormatD16:
		if clearDepth {
			binary.LittleEndian.PutUint16(texel, uint16(depth*0xffff))
		}
	case native.FormatD24S8:
		value := binary.LittleEndian.Uint32(texel)
		if clearDepth {
			value = value&0xff000000 | uint32(depth*0xffffff)
		}
		if clearStencil {
			value = value&0x00ffffff | uint32(stencil)<<24
		}
		binary.LittleEndian.PutUint32(texel, value)
	default:
		if clearDepth {
			binary.LittleEndian.PutUint32(texel, math.Float32bits(depth))
		}
	}

	return texel
}

func clamp01(value float32) float32 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}

func fill(dst []byte, texel []byte) {
	if len(texel) == 0 {
		return
	}
	for offset := 0; offset+len(texel) <= len(dst); offset += len(texel) {
		copy(dst[offset:], texel)
	}
}
