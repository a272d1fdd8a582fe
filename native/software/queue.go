package software

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/rhicore/native"
)

type queueItem struct {
	commands *CommandBuffer
	ops      []op
	fence    *Fence
	value    uint64
}

// Queue runs submitted command buffers in order, either immediately or lazily when a fence wait
// requires it
type Queue struct {
	device  *Device
	pending []queueItem
}

var _ native.Queue = &Queue{}

func (q *Queue) Submit(commandBuffer native.CommandBuffer) error {
	if q.device.removed != nil {
		return q.device.removed
	}

	commands, ok := commandBuffer.(*CommandBuffer)
	if !ok {
		return errors.New("submitted a foreign command buffer")
	}
	if !commands.closed {
		return errors.New("submitted a command buffer that is still recording")
	}

	q.device.stats.Submits++
	ops := make([]op, len(commands.ops))
	copy(ops, commands.ops)
	q.pending = append(q.pending, queueItem{commands: commands, ops: ops})

	if !q.device.options.DeferExecution {
		q.ExecuteAll()
	}
	return nil
}

func (q *Queue) Signal(fence native.Fence, value uint64) error {
	if q.device.removed != nil {
		return q.device.removed
	}

	target, ok := fence.(*Fence)
	if !ok {
		return errors.New("signaled a foreign fence")
	}

	q.pending = append(q.pending, queueItem{fence: target, value: value})
	if !q.device.options.DeferExecution {
		q.ExecuteAll()
	}
	return nil
}

// PendingCount is the number of submissions and signals that have not executed yet
func (q *Queue) PendingCount() int {
	return len(q.pending)
}

// ExecuteAll runs every pending submission
func (q *Queue) ExecuteAll() {
	for len(q.pending) > 0 {
		q.executeNext()
	}
}

// ExecuteNext runs the oldest pending submission or signal, and reports whether there was one
func (q *Queue) ExecuteNext() bool {
	if len(q.pending) == 0 {
		return false
	}
	q.executeNext()
	return true
}

func (q *Queue) executeNext() {
	item := q.pending[0]
	q.pending[0] = queueItem{}
	q.pending = q.pending[1:]

	if item.fence != nil {
		if item.value > item.fence.completed {
			item.fence.completed = item.value
		}
		return
	}

	for _, operation := range item.ops {
		q.device.executed = append(q.device.executed, operation.name)
		operation.run()
	}
}

func (q *Queue) inFlight(commands *CommandBuffer) bool {
	for _, item := range q.pending {
		if item.commands == commands {
			return true
		}
	}
	return false
}

type Fence struct {
	device    *Device
	completed uint64
	destroyed bool
}

var _ native.Fence = &Fence{}

func (f *Fence) CompletedValue() uint64 {
	return f.completed
}

func (f *Fence) Wait(value uint64) error {
	for f.completed < value {
		if f.device.removed != nil {
			return f.device.removed
		}
		if !f.device.queue.ExecuteNext() {
			return errors.Newf("waiting for fence value %d, which is never signaled", value)
		}
	}
	return nil
}

func (f *Fence) Destroy() {
	if f.destroyed {
		f.device.fail("fence destroyed twice")
		return
	}
	f.destroyed = true
}
