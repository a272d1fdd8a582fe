package rhi

import (
	"github.com/vkngwrapper/rhicore/native"
)

// Sampler holds a sampler description. Its descriptor is written into the static sampler heap the
// first time a draw binds it.
type Sampler struct {
	id   uint64
	desc SamplerDesc
	view int
}

func (s *Sampler) Desc() SamplerDesc {
	return s.desc
}

func (d *Device) CreateSampler(desc SamplerDesc) *Sampler {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.logger.Debug("Device::CreateSampler")

	return &Sampler{
		id:   d.allocateID(),
		desc: desc,
		view: -1,
	}
}

// DestroySampler releases the sampler's descriptor. Tables that already copied it are unaffected.
func (d *Device) DestroySampler(s *Sampler) {
	if s == nil {
		return
	}

	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.logger.Debug("Device::DestroySampler")

	if s.view >= 0 {
		d.samplerHeap.Release(s.view)
		s.view = -1
	}
}

func addressMode(mode WrapMode) native.AddressMode {
	switch mode {
	case WrapModeBorder:
		return native.AddressBorder
	case WrapModeWrap:
		return native.AddressWrap
	default:
		return native.AddressClamp
	}
}

func filterMode(linear bool) native.FilterMode {
	if linear {
		return native.FilterLinear
	}
	return native.FilterPoint
}

func nativeSamplerDesc(desc SamplerDesc) native.SamplerDesc {
	sampler := native.SamplerDesc{
		MinFilter:     filterMode(desc.MinFilter),
		MagFilter:     filterMode(desc.MagFilter),
		MipFilter:     filterMode(desc.MipFilter),
		AddressU:      addressMode(desc.WrapMode[0]),
		AddressV:      addressMode(desc.WrapMode[1]),
		AddressW:      addressMode(desc.WrapMode[2]),
		MipBias:       desc.MipBias,
		MaxAnisotropy: maxInt(int(desc.Anisotropy), 1),
		BorderColor:   desc.BorderColor.array(),
		Comparison:    desc.ShadowCompare,
	}

	if desc.Anisotropy > 1 {
		sampler.MinFilter = native.FilterAnisotropic
		sampler.MagFilter = native.FilterAnisotropic
		sampler.MipFilter = native.FilterAnisotropic
	}

	return sampler
}

func (d *Device) samplerView(s *Sampler) (int, error) {
	if s.view >= 0 {
		return s.view, nil
	}

	index, err := d.samplerHeap.Allocate(native.ViewDesc{
		Kind:    native.ViewSampler,
		Sampler: nativeSamplerDesc(s.desc),
	})
	if err != nil {
		return 0, err
	}

	s.view = index
	return index, nil
}
