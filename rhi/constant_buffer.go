package rhi

import (
	"bytes"
	"context"

	"github.com/vkngwrapper/rhicore/memutils"
	"github.com/vkngwrapper/rhicore/native"
	"github.com/vkngwrapper/rhicore/ring"
	"golang.org/x/exp/slog"
)

// constantBufferAlignment is the size granularity and placement alignment of constant buffer data
const constantBufferAlignment uint = 256

// ConstantBufferStatistics counts how often constant buffer contents had to travel to the upload
// ring
type ConstantBufferStatistics struct {
	// Evictions is the number of uploads that were invalidated because the upload ring reclaimed them
	Evictions int
	// Writes is the number of writes that changed the contents
	Writes int
	// IdenticalWrites is the number of writes that matched the current contents and were dropped
	IdenticalWrites int
	// Refreshes is the number of uploads of a buffer that had been uploaded before
	Refreshes int
	// CachedRefs is the number of binds that reused an upload already referenced by the active
	// command buffer
	CachedRefs int
}

func (s *ConstantBufferStatistics) add(other ConstantBufferStatistics) {
	s.Evictions += other.Evictions
	s.Writes += other.Writes
	s.IdenticalWrites += other.IdenticalWrites
	s.Refreshes += other.Refreshes
	s.CachedRefs += other.CachedRefs
}

func (s ConstantBufferStatistics) attrs() []slog.Attr {
	return []slog.Attr{
		slog.Int("Evictions", s.Evictions),
		slog.Int("Writes", s.Writes),
		slog.Int("IdenticalWrites", s.IdenticalWrites),
		slog.Int("Refreshes", s.Refreshes),
		slog.Int("CachedRefs", s.CachedRefs),
	}
}

// ConstantBuffer keeps its contents on the host and copies them into the upload ring when a draw
// needs them. The view in the static resource heap is rewritten to point at each new upload.
type ConstantBuffer struct {
	id          uint64
	desc        ConstantBufferDesc
	data        []byte
	alignedSize int
	view        int

	valid       bool
	uploaded    bool
	offset      int
	uploadStamp uint64

	stats ConstantBufferStatistics
}

func (c *ConstantBuffer) Desc() ConstantBufferDesc {
	return c.desc
}

// Statistics reports the counters of this buffer alone
func (c *ConstantBuffer) Statistics() ConstantBufferStatistics {
	return c.stats
}

// CreateConstantBuffer creates a constant buffer whose size is rounded up to 256 bytes. data, when
// provided, becomes the initial contents.
func (d *Device) CreateConstantBuffer(desc ConstantBufferDesc, data []byte) *ConstantBuffer {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.logger.Debug("Device::CreateConstantBuffer")

	alignedSize := memutils.AlignUp(maxInt(desc.ByteSize, 1), constantBufferAlignment)
	view, err := d.resourceHeap.Allocate(native.ViewDesc{Kind: native.ViewConstantBuffer})
	if err != nil {
		d.signalError(err)
		return nil
	}

	buffer := &ConstantBuffer{
		id:          d.allocateID(),
		desc:        desc,
		data:        make([]byte, alignedSize),
		alignedSize: alignedSize,
		view:        view,
	}
	copy(buffer.data, data)

	d.constantBuffers.Put(buffer.id, buffer)
	return buffer
}

// WriteConstantBuffer replaces the start of the contents. Bytes past the end of the buffer are
// ignored, and a write that matches the current contents does nothing.
func (d *Device) WriteConstantBuffer(c *ConstantBuffer, data []byte) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	size := minInt(len(data), c.desc.ByteSize)
	if bytes.Equal(c.data[:size], data[:size]) {
		c.stats.IdenticalWrites++
		d.constantStats.IdenticalWrites++
		return
	}

	copy(c.data, data[:size])
	c.valid = false
	c.stats.Writes++
	d.constantStats.Writes++
}

// DestroyConstantBuffer releases the buffer immediately. Descriptor tables that already reference
// its upload keep working, since the upload belongs to the ring.
func (d *Device) DestroyConstantBuffer(c *ConstantBuffer) {
	if c == nil {
		return
	}

	d.mutex.Lock()
	defer d.mutex.Unlock()

	attrs := append([]slog.Attr{slog.String("ConstantBuffer", c.desc.DebugName)}, c.stats.attrs()...)
	d.logger.LogAttrs(context.Background(), slog.LevelDebug, "Device::DestroyConstantBuffer", attrs...)

	d.resourceHeap.Release(c.view)
	d.constantBuffers.Delete(c.id)
}

// constantBufferView returns the heap slot of a view over current contents, uploading them first
// unless the active command buffer already references an upload of them. The upload may flush.
func (d *Device) constantBufferView(c *ConstantBuffer) (int, error) {
	if c.valid && c.uploadStamp == d.counter.Pending() {
		c.stats.CachedRefs++
		d.constantStats.CachedRefs++
		return c.view, nil
	}

	offset, staging, err := d.upload.Suballocate(c.alignedSize, constantBufferAlignment)
	if err != nil {
		return 0, err
	}
	copy(staging, c.data)

	d.resourceHeap.Rewrite(c.view, native.ViewDesc{
		Kind:   native.ViewConstantBuffer,
		Buffer: d.upload.Buffer(),
		Offset: offset,
		Size:   c.alignedSize,
	})

	if c.uploaded {
		c.stats.Refreshes++
		d.constantStats.Refreshes++
	}
	c.offset = offset
	c.valid = true
	c.uploaded = true
	c.uploadStamp = d.counter.Pending()
	return c.view, nil
}

// invalidateConstantBuffers runs after the upload ring reclaims memory and drops every upload that
// now lies outside the live region
func (d *Device) invalidateConstantBuffers(allocator *ring.Allocator) {
	d.constantBuffers.Iter(func(id uint64, c *ConstantBuffer) bool {
		if c.valid && !allocator.IsLive(c.offset, c.alignedSize) {
			c.valid = false
			c.stats.Evictions++
			d.constantStats.Evictions++
		}
		return false
	})
}
