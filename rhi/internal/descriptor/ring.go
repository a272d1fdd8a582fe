package descriptor

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/rhicore/native"
	"github.com/vkngwrapper/rhicore/ring"
	"golang.org/x/exp/slog"
)

const (
	DefaultResourceRingSize = 16384
	DefaultSamplerRingSize  = 2048
)

// Ring is a shader-visible descriptor table that hands out contiguous ranges, one per table bind
type Ring struct {
	table native.DescriptorTable
	ring  ring.Allocator
}

func (r *Ring) Init(logger *slog.Logger, device native.Device, name string, kind native.DescriptorKind, capacity int, waiter ring.Waiter) error {
	table, err := device.CreateDescriptorTable(native.DescriptorTableDesc{
		Kind:          kind,
		Count:         capacity,
		ShaderVisible: true,
	})
	if err != nil {
		return errors.Wrapf(err, "failed to create the %s descriptor ring", name)
	}

	r.table = table
	r.ring.Init(logger, name, capacity, waiter)
	return nil
}

func (r *Ring) Destroy() {
	if r.table != nil {
		r.table.Destroy()
		r.table = nil
	}
}

func (r *Ring) Table() native.DescriptorTable {
	return r.table
}

func (r *Ring) Allocator() *ring.Allocator {
	return &r.ring
}

// Allocate reserves count consecutive descriptors and returns a handle to the first
func (r *Ring) Allocate(count int) (native.DescriptorHandle, error) {
	index, err := r.ring.Allocate(count, 1)
	if err != nil {
		return native.DescriptorHandle{}, err
	}
	return native.DescriptorHandle{Table: r.table, Index: index}, nil
}
