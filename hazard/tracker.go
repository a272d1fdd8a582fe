package hazard

import (
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/vkngwrapper/rhicore/native"
)

// Stamper provides the completion value of the command buffer currently being recorded
type Stamper interface {
	Pending() uint64
}

// Tracker accumulates the barriers needed before the next command and submits them as one batch
type Tracker struct {
	stamper Stamper
	pending []native.Barrier

	transitionCount int
	uavBarrierCount int
	commitCount     int
}

func (t *Tracker) Init(stamper Stamper) {
	t.stamper = stamper
	t.pending = t.pending[:0]
	t.transitionCount = 0
	t.uavBarrierCount = 0
	t.commitCount = 0
}

// RequireState moves the selected subresources of a resource into state. Subresources already in
// state produce nothing, except unordered access, which produces at most one UAV barrier per call.
// Pass AllArraySlices or AllMips (or any out-of-range index) to select the whole range.
func (t *Tracker) RequireState(resource *Resource, arrayIndex, mip int, state native.ResourceState) {
	resource.Stamp(t.stamper.Pending())

	if !resource.IsTexture() {
		t.requireSubresource(resource, 0, native.AllSubresources, state, new(bool))
		return
	}

	minSlice, maxSlice, minMip, maxMip := resource.subresourceRange(arrayIndex, mip)
	placedUAVBarrier := false
	for slice := minSlice; slice <= maxSlice; slice++ {
		for level := minMip; level <= maxMip; level++ {
			index := slice*resource.mipLevels + level
			t.requireSubresource(resource, index, index, state, &placedUAVBarrier)
		}
	}
}

func (t *Tracker) requireSubresource(resource *Resource, index, subresource int, state native.ResourceState, placedUAVBarrier *bool) {
	current := resource.states[index]

	if current != state {
		t.pending = append(t.pending, native.Barrier{
			Kind:        native.BarrierTransition,
			Texture:     resource.texture,
			Buffer:      resource.buffer,
			Subresource: subresource,
			Before:      current,
			After:       state,
		})
		t.transitionCount++
		resource.states[index] = state
		return
	}

	if state == native.StateUnorderedAccess && !*placedUAVBarrier &&
		(resource.enableUAVBarriers || !resource.firstUAVBarrierPlaced) {

		t.pending = append(t.pending, native.Barrier{
			Kind:        native.BarrierUnorderedAccess,
			Texture:     resource.texture,
			Buffer:      resource.buffer,
			Subresource: native.AllSubresources,
			Before:      state,
			After:       state,
		})
		t.uavBarrierCount++
		*placedUAVBarrier = true
		resource.firstUAVBarrierPlaced = true
	}
}

// PendingCount is the number of barriers waiting for Commit
func (t *Tracker) PendingCount() int {
	return len(t.pending)
}

// Commit records every pending barrier into the command buffer with a single call and returns the
// number of commands recorded
func (t *Tracker) Commit(commandBuffer native.CommandBuffer) int {
	if len(t.pending) == 0 {
		return 0
	}

	batch := make([]native.Barrier, len(t.pending))
	copy(batch, t.pending)
	commandBuffer.Barriers(batch)

	for i := range t.pending {
		t.pending[i] = native.Barrier{}
	}
	t.pending = t.pending[:0]
	t.commitCount++

	return 1
}

func (t *Tracker) PrintJson(json *jwriter.ObjectState) {
	json.Name("Pending").Int(len(t.pending))
	json.Name("Transitions").Int(t.transitionCount)
	json.Name("UAVBarriers").Int(t.uavBarrierCount)
	json.Name("Commits").Int(t.commitCount)
}
