package freelist

import (
	"context"

	"github.com/bits-and-blooms/bitset"
	"github.com/cockroachdb/errors"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/vkngwrapper/rhicore/memutils"
	"golang.org/x/exp/slog"
)

// Grower moves the contents of a full free list into storage with room for newCapacity slots.
// The storage that is replaced must not be reused until the GPU is done with it.
type Grower interface {
	Grow(oldCapacity, newCapacity int) error
}

// Allocator hands out long-lived slot indices. Every slot below the search cursor is allocated,
// so allocation only ever probes forward from the cursor.
type Allocator struct {
	logger *slog.Logger
	name   string
	grower Grower

	capacity  int
	allocated *bitset.BitSet
	cursor    int

	stats memutils.DetailedStatistics
}

var _ memutils.Validatable = &Allocator{}

func (a *Allocator) Init(logger *slog.Logger, name string, capacity int, grower Grower) {
	if capacity <= 0 {
		panic(errors.AssertionFailedf("free list %s created with invalid capacity %d", name, capacity))
	}

	a.logger = logger
	a.name = name
	a.grower = grower
	a.capacity = capacity
	a.allocated = bitset.New(uint(capacity))
	a.cursor = 0
	a.stats.Clear()
	a.stats.Capacity = capacity
}

func (a *Allocator) Capacity() int {
	return a.capacity
}

func (a *Allocator) Count() int {
	return int(a.allocated.Count())
}

func (a *Allocator) IsAllocated(index int) bool {
	return index >= 0 && index < a.capacity && a.allocated.Test(uint(index))
}

// Allocate returns the lowest free slot at or after the search cursor, doubling the capacity if
// every slot is in use
func (a *Allocator) Allocate() (int, error) {
	index, found := a.allocated.NextClear(uint(a.cursor))
	if !found || index >= uint(a.capacity) {
		grown, err := a.grow()
		if err != nil {
			return 0, err
		}
		index = uint(grown)
	}

	a.allocated.Set(index)
	a.cursor = int(index) + 1
	if a.cursor > a.capacity-1 {
		a.cursor = a.capacity - 1
	}

	a.stats.AddAllocation(1)
	memutils.DebugValidate(a)
	return int(index), nil
}

func (a *Allocator) grow() (int, error) {
	oldCapacity := a.capacity
	newCapacity := oldCapacity * 2

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "FreeList::grow",
		slog.String("FreeList", a.name),
		slog.Int("OldCapacity", oldCapacity),
		slog.Int("NewCapacity", newCapacity),
	)

	if a.grower != nil {
		err := a.grower.Grow(oldCapacity, newCapacity)
		if err != nil {
			return 0, errors.Wrapf(err, "free list %s: failed to grow from %d to %d slots", a.name, oldCapacity, newCapacity)
		}
	}

	grown := bitset.New(uint(newCapacity))
	for i := uint(0); i < uint(oldCapacity); i++ {
		if a.allocated.Test(i) {
			grown.Set(i)
		}
	}

	a.allocated = grown
	a.capacity = newCapacity
	a.stats.Capacity = newCapacity
	a.stats.GrowCount++

	return oldCapacity, nil
}

// Release returns a slot to the free list. Releasing a slot that is not allocated panics.
func (a *Allocator) Release(index int) {
	if !a.IsAllocated(index) {
		panic(errors.AssertionFailedf("free list %s: releasing slot %d, which is not allocated", a.name, index))
	}

	a.allocated.Clear(uint(index))
	if index < a.cursor {
		a.cursor = index
	}
}

func (a *Allocator) Validate() error {
	if a.cursor < 0 || a.cursor >= a.capacity {
		return errors.Newf("free list %s: cursor %d is outside of capacity %d", a.name, a.cursor, a.capacity)
	}

	for i := 0; i < a.cursor; i++ {
		if !a.allocated.Test(uint(i)) {
			return errors.Newf("free list %s: slot %d is free but below the cursor %d", a.name, i, a.cursor)
		}
	}

	return nil
}

func (a *Allocator) AddStatistics(stats *memutils.Statistics) {
	stats.Capacity += a.capacity
	stats.InUse += a.Count()
	stats.AllocationCount += a.stats.AllocationCount
}

func (a *Allocator) AddDetailedStatistics(stats *memutils.DetailedStatistics) {
	current := a.stats
	current.InUse = a.Count()
	stats.AddDetailedStatistics(&current)
}

func (a *Allocator) PrintDetailedMap(json *jwriter.ObjectState) {
	json.Name("Capacity").Int(a.capacity)
	json.Name("InUse").Int(a.Count())
	json.Name("Cursor").Int(a.cursor)
	json.Name("GrowCount").Int(a.stats.GrowCount)
}
