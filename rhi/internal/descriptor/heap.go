package descriptor

import (
	"github.com/cockroachdb/errors"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/vkngwrapper/rhicore/deferred"
	"github.com/vkngwrapper/rhicore/freelist"
	"github.com/vkngwrapper/rhicore/memutils"
	"github.com/vkngwrapper/rhicore/native"
	"golang.org/x/exp/slog"
)

const (
	DefaultRenderTargetHeapSize = 1024
	DefaultDepthStencilHeapSize = 1024
	DefaultResourceHeapSize     = 1024
	DefaultSamplerHeapSize      = 128
)

// Stamper provides the completion value of the commands currently being recorded
type Stamper interface {
	Pending() uint64
}

// Heap is a host-side descriptor table holding long-lived views. Slot indices remain valid when
// the heap grows, because growth copies every descriptor into the replacement table.
type Heap struct {
	logger  *slog.Logger
	device  native.Device
	kind    native.DescriptorKind
	name    string
	stamper Stamper
	retired *deferred.Pool

	table native.DescriptorTable
	list  freelist.Allocator
}

var _ freelist.Grower = &Heap{}
var _ memutils.Validatable = &Heap{}

func (h *Heap) Init(logger *slog.Logger, device native.Device, name string, kind native.DescriptorKind, capacity int, stamper Stamper, retired *deferred.Pool) error {
	table, err := device.CreateDescriptorTable(native.DescriptorTableDesc{Kind: kind, Count: capacity})
	if err != nil {
		return errors.Wrapf(err, "failed to create the %s descriptor heap", name)
	}

	h.logger = logger
	h.device = device
	h.kind = kind
	h.name = name
	h.stamper = stamper
	h.retired = retired
	h.table = table
	h.list.Init(logger, name, capacity, h)
	return nil
}

func (h *Heap) Destroy() {
	if h.table != nil {
		h.table.Destroy()
		h.table = nil
	}
}

func (h *Heap) Table() native.DescriptorTable {
	return h.table
}

func (h *Heap) Handle(index int) native.DescriptorHandle {
	return native.DescriptorHandle{Table: h.table, Index: index}
}

// Allocate reserves a slot and writes view into it
func (h *Heap) Allocate(view native.ViewDesc) (int, error) {
	index, err := h.list.Allocate()
	if err != nil {
		return 0, err
	}

	h.device.WriteDescriptor(h.Handle(index), view)
	return index, nil
}

// Rewrite replaces the view stored in an allocated slot
func (h *Heap) Rewrite(index int, view native.ViewDesc) {
	h.device.WriteDescriptor(h.Handle(index), view)
}

func (h *Heap) Release(index int) {
	h.list.Release(index)
}

func (h *Heap) Count() int {
	return h.list.Count()
}

func (h *Heap) Capacity() int {
	return h.list.Capacity()
}

func (h *Heap) Grow(oldCapacity, newCapacity int) error {
	table, err := h.device.CreateDescriptorTable(native.DescriptorTableDesc{Kind: h.kind, Count: newCapacity})
	if err != nil {
		return errors.Wrapf(err, "failed to create a replacement %s descriptor heap", h.name)
	}

	indices := make([]int, oldCapacity)
	for i := range indices {
		indices[i] = i
	}
	h.device.CopyDescriptors(native.DescriptorHandle{Table: table, Index: 0}, h.table, indices)

	h.retired.Retire(deferred.Native{Object: h.table, Stamp: h.stamper.Pending()})
	h.table = table
	return nil
}

func (h *Heap) AddStatistics(stats *memutils.Statistics) {
	h.list.AddStatistics(stats)
}

func (h *Heap) PrintDetailedMap(json *jwriter.ObjectState) {
	h.list.PrintDetailedMap(json)
}

func (h *Heap) Validate() error {
	return h.list.Validate()
}
