package hazard

import (
	"github.com/vkngwrapper/rhicore/native"
)

// AllArraySlices and AllMips select every array slice or every mip level of a texture
const (
	AllArraySlices = -1
	AllMips        = -1
)

// Resource is the hazard-tracking record of one texture or buffer. Textures carry one state per
// subresource, buffers carry a single state.
type Resource struct {
	texture native.Texture
	buffer  native.Buffer

	states    []native.ResourceState
	mipLevels int
	arraySize int
	isArray   bool

	enableUAVBarriers     bool
	firstUAVBarrierPlaced bool

	lastUse uint64
}

func (r *Resource) InitTexture(texture native.Texture, initial native.ResourceState) {
	desc := texture.Desc()

	r.texture = texture
	r.buffer = nil
	r.mipLevels = desc.MipLevels
	if r.mipLevels < 1 {
		r.mipLevels = 1
	}
	r.isArray = desc.Dimension.IsArray()
	r.arraySize = desc.ArraySize()

	count := r.mipLevels
	if r.isArray {
		count *= r.arraySize
	}

	r.states = make([]native.ResourceState, count)
	for i := range r.states {
		r.states[i] = initial
	}

	r.enableUAVBarriers = true
	r.firstUAVBarrierPlaced = false
	r.lastUse = 0
}

func (r *Resource) InitBuffer(buffer native.Buffer, initial native.ResourceState) {
	r.texture = nil
	r.buffer = buffer
	r.mipLevels = 1
	r.arraySize = 1
	r.isArray = false
	r.states = []native.ResourceState{initial}
	r.enableUAVBarriers = true
	r.firstUAVBarrierPlaced = false
	r.lastUse = 0
}

func (r *Resource) IsTexture() bool {
	return r.texture != nil
}

func (r *Resource) SubresourceCount() int {
	return len(r.states)
}

// Subresource is the native subresource index of a single mip of a single array slice
func (r *Resource) Subresource(arrayIndex, mip int) int {
	if !r.isArray {
		arrayIndex = 0
	}
	return arrayIndex*r.mipLevels + mip
}

// State returns the tracked state of one subresource
func (r *Resource) State(arrayIndex, mip int) native.ResourceState {
	return r.states[r.Subresource(arrayIndex, mip)]
}

// OverrideState replaces the tracked state of every subresource without producing barriers. It is
// used for resources whose state is changed outside of the tracker.
func (r *Resource) OverrideState(state native.ResourceState) {
	for i := range r.states {
		r.states[i] = state
	}
}

// SetEnableUAVBarriers controls whether back-to-back unordered access produces a barrier each time.
// When disabled, only the first such barrier after this call is placed.
func (r *Resource) SetEnableUAVBarriers(enable bool) {
	r.enableUAVBarriers = enable
	r.firstUAVBarrierPlaced = false
}

func (r *Resource) EnableUAVBarriers() bool {
	return r.enableUAVBarriers
}

// LastUse is the completion value of the last command buffer that referenced this resource
func (r *Resource) LastUse() uint64 {
	return r.lastUse
}

func (r *Resource) Stamp(value uint64) {
	if value > r.lastUse {
		r.lastUse = value
	}
}

func (r *Resource) subresourceRange(arrayIndex, mip int) (minSlice, maxSlice, minMip, maxMip int) {
	wholeArray := arrayIndex < 0 || arrayIndex >= r.arraySize
	wholeMips := mip < 0 || mip >= r.mipLevels

	switch {
	case !r.isArray:
		minSlice, maxSlice = 0, 0
	case wholeArray:
		minSlice, maxSlice = 0, r.arraySize-1
	default:
		minSlice, maxSlice = arrayIndex, arrayIndex
	}

	if wholeMips {
		minMip, maxMip = 0, r.mipLevels-1
	} else {
		minMip, maxMip = mip, mip
	}

	return minSlice, maxSlice, minMip, maxMip
}
