package rhi

import (
	"github.com/cockroachdb/errors"
	"github.com/dolthub/swiss"
	"github.com/vkngwrapper/rhicore/deferred"
	"github.com/vkngwrapper/rhicore/hazard"
	"github.com/vkngwrapper/rhicore/native"
	"golang.org/x/exp/slog"
)

// Buffer is a linear GPU allocation in the default heap, with its hazard state and cached views
type Buffer struct {
	id       uint64
	desc     BufferDesc
	native   native.Buffer
	resource hazard.Resource

	// views are keyed by the element format of the view
	shaderResourceViews  *swiss.Map[viewKey, int]
	unorderedAccessViews *swiss.Map[viewKey, int]
}

var _ deferred.Retirable = &Buffer{}

func (b *Buffer) Desc() BufferDesc {
	return b.desc
}

func (b *Buffer) Native() native.Buffer {
	return b.native
}

func (b *Buffer) LastUse() uint64 {
	return b.resource.LastUse()
}

func (b *Buffer) Release() {
	b.native.Destroy()
}

// CreateBuffer creates a buffer, and uploads data into it if data is provided
func (d *Device) CreateBuffer(desc BufferDesc, data []byte) *Buffer {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.logger.Debug("Device::CreateBuffer")

	nativeBuffer, err := d.device.CreateBuffer(native.BufferDesc{
		ByteSize:        desc.ByteSize,
		Heap:            native.HeapDefault,
		UnorderedAccess: desc.CanHaveUAVs,
		DebugName:       desc.DebugName,
	})
	if err != nil {
		d.signalError(errors.Wrapf(err, "failed to create buffer %q", desc.DebugName))
		return nil
	}

	buffer := &Buffer{
		id:                   d.allocateID(),
		desc:                 desc,
		native:               nativeBuffer,
		shaderResourceViews:  swiss.NewMap[viewKey, int](1),
		unorderedAccessViews: swiss.NewMap[viewKey, int](1),
	}
	buffer.resource.InitBuffer(nativeBuffer, native.StateCommon)
	if d.createFlags&CreateDisableUAVBarriers != 0 {
		buffer.resource.SetEnableUAVBarriers(false)
	}
	d.buffers.Put(buffer.id, buffer)

	if data != nil {
		d.writeBuffer(buffer, data)
	}

	return buffer
}

// WriteBuffer stages data in the upload ring and copies it to the start of the buffer. Bytes past the
// end of the buffer are ignored.
func (d *Device) WriteBuffer(b *Buffer, data []byte) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.logger.Debug("Device::WriteBuffer")
	d.writeBuffer(b, data)
}

func (d *Device) writeBuffer(b *Buffer, data []byte) {
	size := minInt(len(data), b.desc.ByteSize)
	if size == 0 {
		return
	}

	offset, staging, err := d.upload.Suballocate(size, 0)
	if err != nil {
		d.signalError(err)
		return
	}
	copy(staging, data[:size])

	d.tracker.RequireState(&b.resource, 0, 0, native.StateCopyDest)
	d.commitBarriers()

	d.cmd().CopyBufferRegion(b.native, 0, d.upload.Buffer(), offset, size)
	d.addCommands(1)
	d.loadBalance()
}

// ClearBufferUInt fills the buffer with a repeated 32-bit value. The buffer must allow UAVs.
func (d *Device) ClearBufferUInt(b *Buffer, value uint32) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.logger.Debug("Device::ClearBufferUInt")

	if !b.desc.CanHaveUAVs {
		d.warn("Device::ClearBufferUInt buffer does not allow UAVs", slog.String("Buffer", b.desc.DebugName))
		return
	}

	index, err := d.bufferUAV(b, native.FormatR32Uint)
	if err != nil {
		d.signalError(err)
		return
	}

	handle, err := d.resourceRing.Allocate(1)
	if err != nil {
		d.signalError(err)
		return
	}
	d.device.CopyDescriptors(handle, d.resourceHeap.Table(), []int{index})

	d.tracker.RequireState(&b.resource, 0, 0, native.StateUnorderedAccess)
	d.commitBarriers()

	d.cmd().ClearUnorderedAccessUint(handle, [4]uint32{value, value, value, value})
	d.addCommands(1)
	d.loadBalance()
}

// CopyToBuffer copies size bytes between two buffers
func (d *Device) CopyToBuffer(dst *Buffer, dstOffset int, src *Buffer, srcOffset int, size int) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.logger.Debug("Device::CopyToBuffer")

	if dstOffset < 0 || srcOffset < 0 || size < 0 ||
		dstOffset+size > dst.desc.ByteSize || srcOffset+size > src.desc.ByteSize {
		d.warn("Device::CopyToBuffer copy region is outside of a buffer",
			slog.String("Destination", dst.desc.DebugName),
			slog.String("Source", src.desc.DebugName),
			slog.Int("Size", size),
		)
		return
	}

	// A copy within one buffer keeps the buffer in CopyDest, which the source region reads from
	if dst == src {
		if dstOffset < srcOffset+size && srcOffset < dstOffset+size {
			d.warn("Device::CopyToBuffer source and destination regions overlap",
				slog.String("Buffer", dst.desc.DebugName),
				slog.Int("Size", size),
			)
			return
		}
		d.tracker.RequireState(&dst.resource, 0, 0, native.StateCopyDest)
	} else {
		d.tracker.RequireState(&dst.resource, 0, 0, native.StateCopyDest)
		d.tracker.RequireState(&src.resource, 0, 0, native.StateCopySource)
	}
	d.commitBarriers()

	d.cmd().CopyBufferRegion(dst.native, dstOffset, src.native, srcOffset, size)
	d.addCommands(1)
	d.loadBalance()
}

// ReadBuffer copies the whole buffer back to the host. It blocks until the GPU is idle.
func (d *Device) ReadBuffer(b *Buffer) []byte {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.logger.Debug("Device::ReadBuffer")

	if b.desc.ByteSize == 0 {
		return []byte{}
	}

	readback, err := d.device.CreateBuffer(native.BufferDesc{
		ByteSize:  b.desc.ByteSize,
		Heap:      native.HeapReadback,
		DebugName: "ReadBuffer",
	})
	if err != nil {
		d.signalError(errors.Wrap(err, "failed to create a readback buffer"))
		return nil
	}
	defer readback.Destroy()

	d.tracker.RequireState(&b.resource, 0, 0, native.StateCopySource)
	d.commitBarriers()
	d.cmd().CopyBufferRegion(readback, 0, b.native, 0, b.desc.ByteSize)
	d.addCommands(1)

	if !d.syncWithGPU("ReadBuffer") {
		return nil
	}

	mapped, err := readback.Map()
	if err != nil {
		d.signalError(errors.Wrap(err, "failed to map a readback buffer"))
		return nil
	}
	defer readback.Unmap()

	data := make([]byte, b.desc.ByteSize)
	copy(data, mapped)
	return data
}

// DestroyBuffer releases the buffer's views immediately and its native storage once the GPU is done
// with it
func (d *Device) DestroyBuffer(b *Buffer) {
	if b == nil {
		return
	}

	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.logger.Debug("Device::DestroyBuffer")

	d.releaseBufferViews(b)
	d.buffers.Delete(b.id)
	d.retired.Retire(b)
}

// SetEnableUAVBarriersForBuffer controls whether back-to-back unordered access to the buffer produces
// a barrier every time
func (d *Device) SetEnableUAVBarriersForBuffer(b *Buffer, enable bool) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	b.resource.SetEnableUAVBarriers(enable)
}
