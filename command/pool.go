package command

import (
	"github.com/cockroachdb/errors"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/vkngwrapper/rhicore/native"
	"golang.org/x/exp/slog"
)

// DefaultMaxCommands is the number of commands after which the active command buffer is flushed
const DefaultMaxCommands = 128

type State int

const (
	StateNew State = iota
	StateRecording
	StateSubmitted
	StateRecyclable
)

var stateMapping = map[State]string{
	StateNew:        "StateNew",
	StateRecording:  "StateRecording",
	StateSubmitted:  "StateSubmitted",
	StateRecyclable: "StateRecyclable",
}

func (s State) String() string {
	return stateMapping[s]
}

// Counter is the part of the completion counter the pool needs
type Counter interface {
	Pending() uint64
	Advance() (uint64, error)
	CompletedValue() uint64
}

// Buffer is a pooled native command buffer together with the completion value that marks the
// end of its last submission
type Buffer struct {
	native       native.CommandBuffer
	commandCount int
	lastUse      uint64
	state        State
}

func (b *Buffer) Native() native.CommandBuffer {
	return b.native
}

func (b *Buffer) AddCommands(count int) {
	b.commandCount += count
}

func (b *Buffer) CommandCount() int {
	return b.commandCount
}

func (b *Buffer) LastUse() uint64 {
	return b.lastUse
}

func (b *Buffer) State() State {
	return b.state
}

// Pool rotates command buffers through recording, submission and recycling. Exactly one buffer
// is recording at any time.
type Pool struct {
	logger  *slog.Logger
	factory native.CommandBufferFactory
	queue   native.Queue

	maxCommands int
	active      *Buffer
	submitted   []*Buffer

	createdCount   int
	recycledCount  int
	submittedCount int
}

func (p *Pool) Init(logger *slog.Logger, factory native.CommandBufferFactory, queue native.Queue, maxCommands int) error {
	if maxCommands <= 0 {
		maxCommands = DefaultMaxCommands
	}

	p.logger = logger
	p.factory = factory
	p.queue = queue
	p.maxCommands = maxCommands
	p.submitted = nil

	active, err := p.create()
	if err != nil {
		return err
	}

	p.active = active
	p.active.state = StateRecording
	return nil
}

func (p *Pool) create() (*Buffer, error) {
	commandBuffer, err := p.factory.CreateCommandBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create a command buffer")
	}

	p.createdCount++
	p.logger.Debug("CommandPool::create")
	return &Buffer{native: commandBuffer, state: StateNew}, nil
}

// Active is the buffer currently recording. It is nil after a Submit that could not obtain a
// replacement buffer.
func (p *Pool) Active() *Buffer {
	return p.active
}

// NeedsFlush reports whether the active buffer has grown past the command threshold
func (p *Pool) NeedsFlush() bool {
	return p.active.commandCount > p.maxCommands
}

// Submit closes and submits the active buffer if it has recorded anything, advances the counter,
// and starts recording into a recycled or new buffer. It returns false if there was nothing to submit.
func (p *Pool) Submit(counter Counter) (bool, error) {
	active := p.active
	if active.commandCount == 0 {
		return false, nil
	}

	err := active.native.Close()
	if err != nil {
		return false, errors.Wrap(err, "failed to close the active command buffer")
	}

	active.lastUse = counter.Pending()
	err = p.queue.Submit(active.native)
	if err != nil {
		return false, errors.Wrap(err, "failed to submit the active command buffer")
	}
	active.state = StateSubmitted
	p.submitted = append(p.submitted, active)
	p.submittedCount++

	// A failed advance leaves the completion value unknown, so nothing is recycled and recording
	// moves on to a new buffer
	_, advanceErr := counter.Advance()
	if advanceErr != nil {
		next, err := p.create()
		if err != nil {
			p.active = nil
			return true, errors.CombineErrors(advanceErr, err)
		}
		next.state = StateRecording
		p.active = next
		return true, advanceErr
	}

	completed := counter.CompletedValue()
	var next *Buffer
	if len(p.submitted) > 0 && p.submitted[0].lastUse <= completed {
		next = p.submitted[0]
		p.submitted[0] = nil
		p.submitted = p.submitted[1:]
		next.state = StateRecyclable

		err = next.native.Reset()
		if err != nil {
			next.native.Destroy()
			p.active = nil
			return true, errors.Wrap(err, "failed to reset a recycled command buffer")
		}
		p.recycledCount++
	} else {
		next, err = p.create()
		if err != nil {
			p.active = nil
			return true, err
		}
	}

	next.commandCount = 0
	next.state = StateRecording
	p.active = next
	return true, nil
}

// Destroy releases every pooled buffer. The GPU must be idle.
func (p *Pool) Destroy() {
	for _, buffer := range p.submitted {
		buffer.native.Destroy()
	}
	p.submitted = nil

	if p.active != nil {
		p.active.native.Destroy()
		p.active = nil
	}
}

func (p *Pool) CreatedCount() int {
	return p.createdCount
}

func (p *Pool) RecycledCount() int {
	return p.recycledCount
}

func (p *Pool) SubmittedCount() int {
	return p.submittedCount
}

func (p *Pool) PrintJson(json *jwriter.ObjectState) {
	json.Name("MaxCommands").Int(p.maxCommands)
	json.Name("Created").Int(p.createdCount)
	json.Name("Recycled").Int(p.recycledCount)
	json.Name("Submitted").Int(p.submittedCount)
	json.Name("InFlight").Int(len(p.submitted))
	if p.active != nil {
		json.Name("ActiveCommands").Int(p.active.commandCount)
	}
}
