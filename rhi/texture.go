package rhi

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/rhicore/deferred"
	"github.com/vkngwrapper/rhicore/hazard"
	"github.com/vkngwrapper/rhicore/native"
	"golang.org/x/exp/slog"
)

// Texture is a GPU image together with its hazard state and cached views
type Texture struct {
	id       uint64
	desc     TextureDesc
	native   native.Texture
	resource hazard.Resource
	views    textureViews

	// managed textures are owned by the device and destroyed with it
	managed bool
}

var _ deferred.Retirable = &Texture{}

func (t *Texture) Desc() TextureDesc {
	return t.desc
}

func (t *Texture) Native() native.Texture {
	return t.native
}

func (t *Texture) LastUse() uint64 {
	return t.resource.LastUse()
}

func (t *Texture) Release() {
	t.native.Destroy()
}

func normalizeTextureDesc(desc TextureDesc) TextureDesc {
	if desc.DepthOrArraySize < 1 {
		desc.DepthOrArraySize = 1
	}
	if desc.MipLevels < 1 {
		desc.MipLevels = 1
	}
	if desc.SampleCount < 1 {
		desc.SampleCount = 1
	}
	return desc
}

func nativeTextureDesc(desc TextureDesc, info native.FormatInfo) native.TextureDesc {
	dimension := native.Texture2D
	switch {
	case desc.IsCubeMap && desc.DepthOrArraySize > 6:
		dimension = native.TextureCubeArray
	case desc.IsCubeMap:
		dimension = native.TextureCube
	case desc.IsArray:
		dimension = native.Texture2DArray
	case desc.DepthOrArraySize > 1:
		dimension = native.Texture3D
	}

	usage := native.TextureUsageShaderResource
	if desc.IsRenderTarget {
		if info.DepthStencil {
			usage |= native.TextureUsageDepthStencil
		} else {
			usage |= native.TextureUsageRenderTarget
		}
	}
	if desc.IsUAV {
		usage |= native.TextureUsageUnorderedAccess
	}

	return native.TextureDesc{
		Dimension:        dimension,
		Width:            desc.Width,
		Height:           desc.Height,
		DepthOrArraySize: desc.DepthOrArraySize,
		MipLevels:        desc.MipLevels,
		SampleCount:      desc.SampleCount,
		SampleQuality:    desc.SampleQuality,
		Format:           desc.Format,
		Usage:            usage,
		DebugName:        desc.DebugName,
	}
}

func (d *Device) newTexture(desc TextureDesc, nativeTexture native.Texture, managed bool) *Texture {
	texture := &Texture{
		id:      d.allocateID(),
		desc:    desc,
		native:  nativeTexture,
		views:   newTextureViews(),
		managed: managed,
	}
	texture.resource.InitTexture(nativeTexture, native.StateCommon)
	if d.createFlags&CreateDisableUAVBarriers != 0 {
		texture.resource.SetEnableUAVBarriers(false)
	}

	d.textures.Put(texture.id, texture)
	return texture
}

// CreateTexture creates a texture. When data is provided and the texture has a single mip level,
// data holds every subresource, tightly packed and in subresource order.
func (d *Device) CreateTexture(desc TextureDesc, data []byte) *Texture {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.logger.Debug("Device::CreateTexture")

	desc = normalizeTextureDesc(desc)
	info := d.device.FormatInfo(desc.Format)
	if info.BytesPerPixel == 0 {
		d.signalError(errors.Newf("texture %q has unsupported format %s", desc.DebugName, desc.Format))
		return nil
	}

	nativeTexture, err := d.device.CreateTexture(nativeTextureDesc(desc, info))
	if err != nil {
		d.signalError(errors.Wrapf(err, "failed to create texture %q", desc.DebugName))
		return nil
	}

	texture := d.newTexture(desc, nativeTexture, true)

	if data != nil && desc.MipLevels == 1 {
		rowPitch := info.BytesPerPixel * desc.Width
		slicePitch := rowPitch * desc.Height
		subresourcePitch := slicePitch
		if !desc.IsArray && !desc.IsCubeMap {
			subresourcePitch *= desc.DepthOrArraySize
		}

		for subresource := 0; subresource < texture.resource.SubresourceCount(); subresource++ {
			offset := subresourcePitch * subresource
			if offset >= len(data) {
				break
			}
			d.writeTexture(texture, subresource, data[offset:], rowPitch, slicePitch)
		}
	}

	return texture
}

func (d *Device) DescribeTexture(t *Texture) TextureDesc {
	return t.desc
}

func (d *Device) warnClearValue(t *Texture, color Color) {
	if !t.desc.UseClearValue {
		d.warn("texture cleared without a clear value", slog.String("Texture", t.desc.DebugName))
	} else if t.desc.ClearValue != color {
		d.warn("clear value differs from the texture's clear value", slog.String("Texture", t.desc.DebugName))
	}
}

// ClearTextureFloat clears every mip level of a texture. Depth formats take the depth from the red
// channel and the stencil from the green channel.
func (d *Device) ClearTextureFloat(t *Texture, color Color) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.logger.Debug("Device::ClearTextureFloat")
	d.warnClearValue(t, color)

	info := d.device.FormatInfo(t.desc.Format)
	switch {
	case t.desc.IsRenderTarget && info.DepthStencil:
		for mip := 0; mip < t.desc.MipLevels; mip++ {
			index, err := d.depthStencilView(t, AllArraySlices, mip)
			if err != nil {
				d.signalError(err)
				return
			}

			d.tracker.RequireState(&t.resource, AllArraySlices, mip, native.StateDepthWrite)
			d.commitBarriers()
			d.cmd().ClearDepthStencil(d.depthStencilHeap.Handle(index), true, color.R, info.HasStencil, uint8(color.G))
		}
	case t.desc.IsRenderTarget:
		for mip := 0; mip < t.desc.MipLevels; mip++ {
			index, err := d.renderTargetView(t, AllArraySlices, mip)
			if err != nil {
				d.signalError(err)
				return
			}

			d.tracker.RequireState(&t.resource, AllArraySlices, mip, native.StateRenderTarget)
			d.commitBarriers()
			d.cmd().ClearRenderTarget(d.renderTargetHeap.Handle(index), color.array())
		}
	case t.desc.IsUAV:
		for mip := 0; mip < t.desc.MipLevels; mip++ {
			ok := d.clearTextureUAV(t, native.FormatUnknown, mip, func(handle native.DescriptorHandle) {
				d.cmd().ClearUnorderedAccessFloat(handle, color.array())
			})
			if !ok {
				return
			}
		}
	default:
		d.warn("Device::ClearTextureFloat texture is neither a render target nor a UAV",
			slog.String("Texture", t.desc.DebugName))
		return
	}

	d.addCommands(t.desc.MipLevels)
	d.loadBalance()
}

// ClearTextureUInt clears every mip level of a UAV texture to an integer value
func (d *Device) ClearTextureUInt(t *Texture, value uint32) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.logger.Debug("Device::ClearTextureUInt")

	if !t.desc.IsUAV {
		d.signalError(errors.Newf("cannot clear texture %q as uint because it is not a UAV", t.desc.DebugName))
		return
	}

	format := native.FormatUnknown
	if d.device.FormatInfo(t.desc.Format).BytesPerPixel == 4 {
		format = native.FormatR32Uint
	}

	for mip := 0; mip < t.desc.MipLevels; mip++ {
		ok := d.clearTextureUAV(t, format, mip, func(handle native.DescriptorHandle) {
			d.cmd().ClearUnorderedAccessUint(handle, [4]uint32{value, value, value, value})
		})
		if !ok {
			return
		}
	}

	d.addCommands(t.desc.MipLevels)
	d.loadBalance()
}

// clearTextureUAV copies the texture's UAV into the shader-visible ring and records a clear through
// it. The ring allocation happens before any barrier, since it may flush.
func (d *Device) clearTextureUAV(t *Texture, format native.Format, mip int, clear func(handle native.DescriptorHandle)) bool {
	index, err := d.textureUAV(t, format, mip)
	if err != nil {
		d.signalError(err)
		return false
	}

	handle, err := d.resourceRing.Allocate(1)
	if err != nil {
		d.signalError(err)
		return false
	}
	d.device.CopyDescriptors(handle, d.resourceHeap.Table(), []int{index})

	d.tracker.RequireState(&t.resource, AllArraySlices, mip, native.StateUnorderedAccess)
	d.commitBarriers()
	clear(handle)
	return true
}

// WriteTexture uploads one subresource. rowPitch and depthPitch describe the layout of data.
func (d *Device) WriteTexture(t *Texture, subresource int, data []byte, rowPitch, depthPitch int) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.logger.Debug("Device::WriteTexture")
	d.writeTexture(t, subresource, data, rowPitch, depthPitch)
}

func (d *Device) writeTexture(t *Texture, subresource int, data []byte, rowPitch, depthPitch int) {
	if subresource < 0 || subresource >= t.resource.SubresourceCount() {
		d.warn("Device::WriteTexture subresource out of range",
			slog.String("Texture", t.desc.DebugName),
			slog.Int("Subresource", subresource),
		)
		return
	}

	footprint := d.device.Footprint(t.native.Desc(), subresource)
	offset, staging, err := d.upload.Suballocate(footprint.TotalBytes, d.device.PlacementAlignment())
	if err != nil {
		d.signalError(err)
		return
	}
	footprint.Offset = offset

	rowBytes := minInt(rowPitch, footprint.RowSize)
	for plane := 0; plane < footprint.Depth; plane++ {
		for row := 0; row < footprint.Height; row++ {
			src := rowPitch*row + depthPitch*plane
			if src >= len(data) {
				break
			}
			count := minInt(rowBytes, len(data)-src)
			dst := footprint.RowPitch * (row + plane*footprint.Height)
			copy(staging[dst:dst+count], data[src:src+count])
		}
	}

	arrayIndex, mip := subresource/t.desc.MipLevels, subresource%t.desc.MipLevels
	d.tracker.RequireState(&t.resource, arrayIndex, mip, native.StateCopyDest)
	d.commitBarriers()

	d.cmd().CopyBufferToTexture(t.native, subresource, d.upload.Buffer(), footprint)
	d.addCommands(1)
	d.loadBalance()
}

// ReadTexture copies one subresource back to the host, with rows tightly packed. It blocks until
// the GPU is idle.
func (d *Device) ReadTexture(t *Texture, arrayIndex, mip int) []byte {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.logger.Debug("Device::ReadTexture")

	if arrayIndex < 0 || arrayIndex >= t.arraySize() || mip < 0 || mip >= t.desc.MipLevels {
		d.warn("Device::ReadTexture subresource out of range",
			slog.String("Texture", t.desc.DebugName),
			slog.Int("ArrayIndex", arrayIndex),
			slog.Int("MipLevel", mip),
		)
		return nil
	}

	subresource := t.resource.Subresource(arrayIndex, mip)
	footprint := d.device.Footprint(t.native.Desc(), subresource)

	readback, err := d.device.CreateBuffer(native.BufferDesc{
		ByteSize:  footprint.TotalBytes,
		Heap:      native.HeapReadback,
		DebugName: "ReadTexture",
	})
	if err != nil {
		d.signalError(errors.Wrap(err, "failed to create a readback buffer"))
		return nil
	}
	defer readback.Destroy()

	d.tracker.RequireState(&t.resource, arrayIndex, mip, native.StateCopySource)
	d.commitBarriers()
	d.cmd().CopyTextureToBuffer(readback, footprint, t.native, subresource)
	d.addCommands(1)

	if !d.syncWithGPU("ReadTexture") {
		return nil
	}

	mapped, err := readback.Map()
	if err != nil {
		d.signalError(errors.Wrap(err, "failed to map a readback buffer"))
		return nil
	}
	defer readback.Unmap()

	data := make([]byte, footprint.RowSize*footprint.Height*footprint.Depth)
	for plane := 0; plane < footprint.Depth; plane++ {
		for row := 0; row < footprint.Height; row++ {
			line := row + plane*footprint.Height
			copy(data[line*footprint.RowSize:(line+1)*footprint.RowSize], mapped[line*footprint.RowPitch:])
		}
	}
	return data
}

// DestroyTexture releases the texture's views immediately and its native storage once the GPU is
// done with it. Non-managed textures only drop the wrapper.
func (d *Device) DestroyTexture(t *Texture) {
	if t == nil {
		return
	}

	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.logger.Debug("Device::DestroyTexture")
	d.destroyTexture(t)
}

func (d *Device) destroyTexture(t *Texture) {
	d.releaseTextureViews(t)
	d.textures.Delete(t.id)

	if t.managed {
		d.retired.Retire(t)
	}
}

// SetEnableUAVBarriersForTexture controls whether back-to-back unordered access to the texture
// produces a barrier every time
func (d *Device) SetEnableUAVBarriersForTexture(t *Texture, enable bool) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	t.resource.SetEnableUAVBarriers(enable)
}
