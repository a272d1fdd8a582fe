package ring

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/vkngwrapper/rhicore/memutils"
	"golang.org/x/exp/slog"
)

// Waiter blocks the calling thread until the GPU catches up. Wait must flush any recorded work,
// block until value completes, and call Reclaim on the allocator with the new completed value.
// Sync does the same for the most recently submitted value.
type Waiter interface {
	Wait(value uint64, reason string) error
	Sync(reason string) error
}

// ReclaimHook is called after every reclamation sweep
type ReclaimHook func(allocator *Allocator)

type fenceMark struct {
	value        uint64
	writePointer int
}

// Allocator is an append-only allocator over a fixed region of slots or bytes. Everything between
// the live region start and the write pointer may still be read by the GPU. The live region start
// only moves forward when a fence mark's completion value is reclaimed, so no allocation can ever
// overlap memory that an in-flight command buffer references.
type Allocator struct {
	logger *slog.Logger
	name   string
	waiter Waiter

	capacity     int
	writePointer int
	liveStart    int
	completed    uint64
	marks        []fenceMark

	hooks []ReclaimHook
	stats memutils.DetailedStatistics
}

var _ memutils.Validatable = &Allocator{}

func (a *Allocator) Init(logger *slog.Logger, name string, capacity int, waiter Waiter) {
	if capacity <= 0 {
		panic(fmt.Sprintf("ring %s created with invalid capacity %d", name, capacity))
	}

	a.logger = logger
	a.name = name
	a.waiter = waiter
	a.capacity = capacity
	a.writePointer = 0
	a.liveStart = 0
	a.completed = 0
	a.marks = nil
	a.hooks = nil
	a.stats.Clear()
	a.stats.Capacity = capacity
}

func (a *Allocator) Name() string {
	return a.name
}

func (a *Allocator) Capacity() int {
	return a.capacity
}

func (a *Allocator) WritePointer() int {
	return a.writePointer
}

// LiveStart is the first slot that may still be referenced by the GPU
func (a *Allocator) LiveStart() int {
	return a.liveStart
}

func (a *Allocator) AddReclaimHook(hook ReclaimHook) {
	a.hooks = append(a.hooks, hook)
}

// Allocate carves size units aligned to alignment out of the ring, blocking on the GPU if the ring
// does not have enough reclaimed space. It returns the offset of the new region.
func (a *Allocator) Allocate(size int, alignment uint) (int, error) {
	if size < 0 {
		return 0, errors.Newf("ring %s: negative allocation size %d", a.name, size)
	}
	if size > a.capacity {
		return 0, errors.Wrapf(memutils.ErrRequestTooLarge, "ring %s: requested %d with capacity %d", a.name, size, a.capacity)
	}
	memutils.DebugCheckPow2(alignment, "alignment")

	synced := false
	for {
		offset, ok := a.place(size, alignment)
		if ok {
			a.writePointer = offset + size
			a.stats.AddAllocation(size)
			memutils.DebugValidate(a)
			return offset, nil
		}

		if synced {
			return 0, errors.Wrapf(memutils.ErrRequestTooLarge,
				"ring %s: %d units are required while %d units are held by commands that have not been submitted",
				a.name, size, a.liveSize())
		}

		var err error
		value, found := a.boundingMark(size, alignment)
		if found {
			a.stats.WaitCount++
			a.logger.LogAttrs(context.Background(), slog.LevelDebug, "Ring::Allocate waiting",
				slog.String("Ring", a.name),
				slog.Int("Size", size),
				slog.Uint64("Value", value),
			)
			err = a.waiter.Wait(value, a.name)
		} else {
			synced = true
			a.stats.SyncCount++
			a.logger.LogAttrs(context.Background(), slog.LevelDebug, "Ring::Allocate synchronizing",
				slog.String("Ring", a.name),
				slog.Int("Size", size),
			)
			err = a.waiter.Sync(a.name)
		}

		if err != nil {
			return 0, err
		}
	}
}

func (a *Allocator) wrapped() bool {
	return a.liveStart > a.writePointer
}

func (a *Allocator) place(size int, alignment uint) (int, bool) {
	aligned := memutils.AlignUp(a.writePointer, alignment)

	if a.wrapped() {
		// One unit always stays free so a full ring can be told apart from an empty one
		if aligned+size < a.liveStart {
			return aligned, true
		}
		return 0, false
	}

	if aligned+size <= a.capacity {
		return aligned, true
	}

	if a.liveStart == a.writePointer {
		// Nothing is live, every mark that remains sits on the write pointer
		a.rebase()
		return 0, true
	}

	if size < a.liveStart {
		return 0, true
	}

	return 0, false
}

func (a *Allocator) rebase() {
	a.writePointer = 0
	a.liveStart = 0
	for i := range a.marks {
		a.marks[i].writePointer = 0
	}
}

// boundingMark finds the oldest unreclaimed mark whose completion frees enough of the ring for
// the request
func (a *Allocator) boundingMark(size int, alignment uint) (uint64, bool) {
	aligned := memutils.AlignUp(a.writePointer, alignment)
	wrapped := a.wrapped()

	for _, mark := range a.marks {
		if mark.value <= a.completed {
			continue
		}

		if wrapped {
			if mark.writePointer > aligned+size || mark.writePointer <= a.writePointer {
				return mark.value, true
			}
		} else if mark.writePointer <= a.writePointer && mark.writePointer > size {
			return mark.value, true
		}
	}

	return 0, false
}

// AddFenceMark records that everything allocated so far is referenced by work that completes
// no later than value
func (a *Allocator) AddFenceMark(value uint64) {
	if len(a.marks) > 0 && a.marks[len(a.marks)-1].value >= value {
		panic(errors.AssertionFailedf("ring %s: fence mark %d is not newer than %d", a.name, value, a.marks[len(a.marks)-1].value))
	}
	a.marks = append(a.marks, fenceMark{value: value, writePointer: a.writePointer})
}

// Reclaim discards every mark older than completed and moves the live region start up to the
// newest completed mark
func (a *Allocator) Reclaim(completed uint64) {
	if len(a.marks) == 0 {
		if completed == 0 {
			return
		}
		panic(errors.AssertionFailedf("ring %s: reclaiming completion value %d with no fence marks", a.name, completed))
	}

	index := 0
	for index < len(a.marks) && a.marks[index].value < completed {
		index++
	}
	if index == len(a.marks) {
		panic(errors.AssertionFailedf("ring %s: no fence mark at or after completion value %d", a.name, completed))
	}

	a.marks = append(a.marks[:0], a.marks[index:]...)
	if a.marks[0].value <= completed {
		a.liveStart = a.marks[0].writePointer
	}
	if completed > a.completed {
		a.completed = completed
	}

	for _, hook := range a.hooks {
		hook(a)
	}

	memutils.DebugValidate(a)
}

// IsLive reports whether a previously allocated region is still inside the live region, which means
// it has not been handed back for reuse
func (a *Allocator) IsLive(offset, size int) bool {
	if !a.wrapped() {
		return offset >= a.liveStart && offset+size <= a.writePointer
	}

	return offset >= a.liveStart || offset+size <= a.writePointer
}

func (a *Allocator) liveSize() int {
	if a.wrapped() {
		return a.capacity - a.liveStart + a.writePointer
	}
	return a.writePointer - a.liveStart
}

func (a *Allocator) Validate() error {
	if a.writePointer < 0 || a.writePointer > a.capacity {
		return errors.Newf("ring %s: write pointer %d is outside of capacity %d", a.name, a.writePointer, a.capacity)
	}
	if a.liveStart < 0 || a.liveStart > a.capacity {
		return errors.Newf("ring %s: live region start %d is outside of capacity %d", a.name, a.liveStart, a.capacity)
	}

	for i := 1; i < len(a.marks); i++ {
		if a.marks[i-1].value >= a.marks[i].value {
			return errors.Newf("ring %s: fence marks %d and %d are out of order", a.name, a.marks[i-1].value, a.marks[i].value)
		}
	}

	for _, mark := range a.marks {
		if mark.writePointer < 0 || mark.writePointer > a.capacity {
			return errors.Newf("ring %s: fence mark %d has write pointer %d outside of capacity", a.name, mark.value, mark.writePointer)
		}
	}

	return nil
}

func (a *Allocator) AddStatistics(stats *memutils.Statistics) {
	stats.Capacity += a.capacity
	stats.InUse += a.liveSize()
	stats.AllocationCount += a.stats.AllocationCount
	stats.WaitCount += a.stats.WaitCount
	stats.SyncCount += a.stats.SyncCount
}

func (a *Allocator) AddDetailedStatistics(stats *memutils.DetailedStatistics) {
	current := a.stats
	current.InUse = a.liveSize()
	stats.AddDetailedStatistics(&current)
}

func (a *Allocator) PrintDetailedMap(json *jwriter.ObjectState) {
	json.Name("Capacity").Int(a.capacity)
	json.Name("WritePointer").Int(a.writePointer)
	json.Name("LiveStart").Int(a.liveStart)
	json.Name("Completed").Float64(float64(a.completed))

	marks := json.Name("FenceMarks").Array()
	defer marks.End()

	for _, mark := range a.marks {
		obj := marks.Object()
		obj.Name("Value").Float64(float64(mark.value))
		obj.Name("WritePointer").Int(mark.writePointer)
		obj.End()
	}
}
