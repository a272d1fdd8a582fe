package software

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/rhicore/native"
)

type Buffer struct {
	device    *Device
	desc      native.BufferDesc
	data      []byte
	state     native.ResourceState
	mapped    bool
	destroyed bool
}

var _ native.Buffer = &Buffer{}

func (b *Buffer) Desc() native.BufferDesc {
	return b.desc
}

func (b *Buffer) Map() ([]byte, error) {
	if b.desc.Heap == native.HeapDefault {
		return nil, errors.New("buffers in the default heap cannot be mapped")
	}
	b.mapped = true
	return b.data, nil
}

func (b *Buffer) Unmap() {
	b.mapped = false
}

// Contents gives direct access to the buffer storage, regardless of heap
func (b *Buffer) Contents() []byte {
	return b.data
}

// State is the buffer's state as of the last executed command
func (b *Buffer) State() native.ResourceState {
	return b.state
}

func (b *Buffer) Destroyed() bool {
	return b.destroyed
}

func (b *Buffer) Destroy() {
	if b.destroyed {
		b.device.fail("buffer %q destroyed twice", b.desc.DebugName)
		return
	}
	b.destroyed = true
	b.device.stats.Destroyed++
}

// tracked reports whether the buffer's state is validated. Upload and readback heaps have fixed states.
func (b *Buffer) tracked() bool {
	return b.desc.Heap == native.HeapDefault
}

type Texture struct {
	device       *Device
	desc         native.TextureDesc
	subresources [][]byte
	states       []native.ResourceState
	destroyed    bool
}

var _ native.Texture = &Texture{}

func (t *Texture) Desc() native.TextureDesc {
	return t.desc
}

// Subresource gives direct access to the tightly packed texels of one subresource
func (t *Texture) Subresource(index int) []byte {
	return t.subresources[index]
}

func (t *Texture) State(subresource int) native.ResourceState {
	return t.states[subresource]
}

func (t *Texture) Destroyed() bool {
	return t.destroyed
}

func (t *Texture) Destroy() {
	if t.destroyed {
		t.device.fail("texture %q destroyed twice", t.desc.DebugName)
		return
	}
	t.destroyed = true
	t.device.stats.Destroyed++
}

func (t *Texture) subresource(arrayIndex, mip int) int {
	if !t.desc.Dimension.IsArray() {
		arrayIndex = 0
	}
	return arrayIndex*t.desc.MipLevels + mip
}

type descriptor struct {
	view    native.ViewDesc
	written bool
}

type DescriptorTable struct {
	device    *Device
	desc      native.DescriptorTableDesc
	entries   []descriptor
	destroyed bool
}

var _ native.DescriptorTable = &DescriptorTable{}

func (t *DescriptorTable) Desc() native.DescriptorTableDesc {
	return t.desc
}

func (t *DescriptorTable) Destroyed() bool {
	return t.destroyed
}

func (t *DescriptorTable) Destroy() {
	if t.destroyed {
		t.device.fail("descriptor table destroyed twice")
		return
	}
	t.destroyed = true
	t.device.stats.Destroyed++
}

type BindingLayout struct {
	device    *Device
	desc      native.BindingLayoutDesc
	destroyed bool
}

var _ native.BindingLayout = &BindingLayout{}

func (l *BindingLayout) Desc() native.BindingLayoutDesc {
	return l.desc
}

func (l *BindingLayout) Destroyed() bool {
	return l.destroyed
}

func (l *BindingLayout) Destroy() {
	if l.destroyed {
		l.device.fail("binding layout destroyed twice")
		return
	}
	l.destroyed = true
	l.device.stats.Destroyed++
}

type Pipeline struct {
	device    *Device
	graphics  *native.GraphicsPipelineDesc
	compute   *native.ComputePipelineDesc
	destroyed bool
}

var _ native.Pipeline = &Pipeline{}

func (p *Pipeline) IsCompute() bool {
	return p.compute != nil
}

func (p *Pipeline) Destroyed() bool {
	return p.destroyed
}

func (p *Pipeline) Destroy() {
	if p.destroyed {
		p.device.fail("pipeline destroyed twice")
		return
	}
	p.destroyed = true
	p.device.stats.Destroyed++
}
