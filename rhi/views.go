package rhi

import (
	"github.com/dolthub/swiss"
	"github.com/vkngwrapper/rhicore/native"
	"github.com/vkngwrapper/rhicore/rhi/internal/descriptor"
)

// viewKey identifies one cached view of a texture. Shader views use format and mip, render target
// and depth views use array index and mip.
type viewKey struct {
	format     native.Format
	arrayIndex int
	mip        int
}

type textureViews struct {
	shaderResource  *swiss.Map[viewKey, int]
	unorderedAccess *swiss.Map[viewKey, int]
	renderTarget    *swiss.Map[viewKey, int]
	depthStencil    *swiss.Map[viewKey, int]
}

func newTextureViews() textureViews {
	return textureViews{
		shaderResource:  swiss.NewMap[viewKey, int](4),
		unorderedAccess: swiss.NewMap[viewKey, int](4),
		renderTarget:    swiss.NewMap[viewKey, int](4),
		depthStencil:    swiss.NewMap[viewKey, int](4),
	}
}

func (d *Device) cachedView(views *swiss.Map[viewKey, int], heap *descriptor.Heap, key viewKey, view native.ViewDesc) (int, error) {
	index, ok := views.Get(key)
	if ok {
		return index, nil
	}

	index, err := heap.Allocate(view)
	if err != nil {
		return 0, err
	}

	views.Put(key, index)
	return index, nil
}

func (t *Texture) arraySize() int {
	return t.native.Desc().ArraySize()
}

// arrayRange turns an array index into the first slice and slice count of a view. Negative or
// out-of-range indices cover the whole array.
func (t *Texture) arrayRange(arrayIndex int) (int, int) {
	size := t.arraySize()
	if arrayIndex < 0 || arrayIndex >= size {
		return 0, size
	}
	return arrayIndex, 1
}

func (t *Texture) viewFormat(format native.Format) native.Format {
	if format == native.FormatUnknown {
		return t.desc.Format
	}
	return format
}

func (d *Device) textureSRV(t *Texture, format native.Format, mip int) (int, error) {
	firstMip, mipCount := mip, 1
	if mip < 0 || mip >= t.desc.MipLevels {
		firstMip, mipCount = 0, t.desc.MipLevels
		mip = AllMipLevels
	}

	return d.cachedView(t.views.shaderResource, &d.resourceHeap, viewKey{format: format, mip: mip}, native.ViewDesc{
		Kind:       native.ViewShaderResource,
		Texture:    t.native,
		Format:     t.viewFormat(format),
		MipLevel:   firstMip,
		MipCount:   mipCount,
		ArrayCount: t.arraySize(),
	})
}

func (d *Device) textureUAV(t *Texture, format native.Format, mip int) (int, error) {
	if mip < 0 || mip >= t.desc.MipLevels {
		mip = 0
	}

	return d.cachedView(t.views.unorderedAccess, &d.resourceHeap, viewKey{format: format, mip: mip}, native.ViewDesc{
		Kind:       native.ViewUnorderedAccess,
		Texture:    t.native,
		Format:     t.viewFormat(format),
		MipLevel:   mip,
		MipCount:   1,
		ArrayCount: t.arraySize(),
	})
}

func (d *Device) renderTargetView(t *Texture, arrayIndex, mip int) (int, error) {
	first, count := t.arrayRange(arrayIndex)
	if count > 1 {
		arrayIndex = AllArraySlices
	}

	return d.cachedView(t.views.renderTarget, &d.renderTargetHeap, viewKey{arrayIndex: arrayIndex, mip: mip}, native.ViewDesc{
		Kind:       native.ViewRenderTarget,
		Texture:    t.native,
		Format:     t.desc.Format,
		MipLevel:   mip,
		MipCount:   1,
		ArrayIndex: first,
		ArrayCount: count,
	})
}

func (d *Device) depthStencilView(t *Texture, arrayIndex, mip int) (int, error) {
	first, count := t.arrayRange(arrayIndex)
	if count > 1 {
		arrayIndex = AllArraySlices
	}

	return d.cachedView(t.views.depthStencil, &d.depthStencilHeap, viewKey{arrayIndex: arrayIndex, mip: mip}, native.ViewDesc{
		Kind:       native.ViewDepthStencil,
		Texture:    t.native,
		Format:     t.desc.Format,
		MipLevel:   mip,
		MipCount:   1,
		ArrayIndex: first,
		ArrayCount: count,
	})
}

// releaseTextureViews hands every cached view back to its static heap. Views that were copied into
// a shader-visible table stay valid there.
func (d *Device) releaseTextureViews(t *Texture) {
	release := func(views *swiss.Map[viewKey, int], heap *descriptor.Heap) {
		views.Iter(func(key viewKey, index int) bool {
			heap.Release(index)
			return false
		})
	}

	release(t.views.shaderResource, &d.resourceHeap)
	release(t.views.unorderedAccess, &d.resourceHeap)
	release(t.views.renderTarget, &d.renderTargetHeap)
	release(t.views.depthStencil, &d.depthStencilHeap)
	t.views = newTextureViews()
}

func (d *Device) bufferView(b *Buffer, kind native.ViewKind, format native.Format) native.ViewDesc {
	view := native.ViewDesc{
		Kind:   kind,
		Buffer: b.native,
		Size:   b.desc.ByteSize,
	}

	if b.desc.StructStride == 0 {
		view.Format = format
		if view.Format == native.FormatUnknown {
			view.Format = native.FormatR32Uint
		}
	}

	return view
}

func (d *Device) bufferSRV(b *Buffer, format native.Format) (int, error) {
	view := d.bufferView(b, native.ViewShaderResource, format)
	return d.cachedView(b.shaderResourceViews, &d.resourceHeap, viewKey{format: view.Format}, view)
}

func (d *Device) bufferUAV(b *Buffer, format native.Format) (int, error) {
	view := d.bufferView(b, native.ViewUnorderedAccess, format)
	return d.cachedView(b.unorderedAccessViews, &d.resourceHeap, viewKey{format: view.Format}, view)
}

func (d *Device) releaseBufferViews(b *Buffer) {
	release := func(views *swiss.Map[viewKey, int]) {
		views.Iter(func(key viewKey, index int) bool {
			d.resourceHeap.Release(index)
			return false
		})
	}

	release(b.shaderResourceViews)
	release(b.unorderedAccessViews)
	b.shaderResourceViews = swiss.NewMap[viewKey, int](1)
	b.unorderedAccessViews = swiss.NewMap[viewKey, int](1)
}
