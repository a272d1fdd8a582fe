package fence

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/rhicore/native"
	"golang.org/x/exp/slog"
)

// Flusher submits any commands that have been recorded but not yet submitted. The counter calls it
// before every wait, so that the wait can actually complete.
type Flusher interface {
	Flush() error
}

// Marker is notified of every value the counter submits for a GPU signal
type Marker interface {
	AddFenceMark(value uint64)
}

// Reclaimer is notified of the newly observed completed value after every wait
type Reclaimer interface {
	Reclaim(completed uint64)
}

// Counter is the completion counter of a single queue. Current is the last value submitted for a
// GPU signal, and CompletedValue is the last value the GPU reported as finished. CompletedValue never
// exceeds Current.
type Counter struct {
	logger *slog.Logger
	fence  native.Fence
	queue  native.Queue

	current   uint64
	completed uint64

	flusher    Flusher
	markers    []Marker
	reclaimers []Reclaimer

	waitCount int
	syncCount int
}

func (c *Counter) Init(logger *slog.Logger, device native.Device, queue native.Queue) error {
	fence, err := device.CreateFence(0)
	if err != nil {
		return errors.Wrap(err, "failed to create the completion fence")
	}

	c.logger = logger
	c.fence = fence
	c.queue = queue
	c.current = 0
	c.completed = 0
	return nil
}

func (c *Counter) Destroy() {
	if c.fence != nil {
		c.fence.Destroy()
		c.fence = nil
	}
}

func (c *Counter) SetFlusher(flusher Flusher) {
	c.flusher = flusher
}

func (c *Counter) AddMarker(marker Marker) {
	c.markers = append(c.markers, marker)
}

func (c *Counter) AddReclaimer(reclaimer Reclaimer) {
	c.reclaimers = append(c.reclaimers, reclaimer)
}

// Current is the last value submitted for a GPU signal
func (c *Counter) Current() uint64 {
	return c.current
}

// Pending is the value that will be signaled when the commands currently being recorded complete.
// Resources referenced by those commands are stamped with this value.
func (c *Counter) Pending() uint64 {
	return c.current + 1
}

// CompletedValue polls the fence for the GPU's progress
func (c *Counter) CompletedValue() uint64 {
	value := c.fence.CompletedValue()
	if value > c.completed {
		c.completed = value
	}
	return c.completed
}

// Advance increments Current, asks the queue to signal it once all previously submitted work
// completes, and records a fence mark on every Marker.
func (c *Counter) Advance() (uint64, error) {
	c.current++
	err := c.queue.Signal(c.fence, c.current)
	if err != nil {
		return c.current, errors.Wrapf(err, "failed to signal completion value %d", c.current)
	}

	for _, marker := range c.markers {
		marker.AddFenceMark(c.current)
	}

	return c.current, nil
}

// Wait flushes unsubmitted work, blocks until the GPU has completed value, and runs a reclamation
// sweep on every Reclaimer. Waiting for a value that has never been submitted panics.
func (c *Counter) Wait(value uint64, reason string) error {
	if c.flusher != nil {
		err := c.flusher.Flush()
		if err != nil {
			return err
		}
	}

	if value > c.current {
		panic(errors.AssertionFailedf("attempted to wait for completion value %d, but only %d has been submitted", value, c.current))
	}

	c.waitCount++
	if c.CompletedValue() < value {
		c.logger.LogAttrs(context.Background(), slog.LevelDebug, "Counter::Wait blocking",
			slog.String("Reason", reason),
			slog.Uint64("Value", value),
			slog.Uint64("Completed", c.completed),
		)

		err := c.fence.Wait(value)
		if err != nil {
			return errors.Wrapf(err, "failed waiting for completion value %d", value)
		}

		c.CompletedValue()
		if c.completed < value {
			c.completed = value
		}
	}

	for _, reclaimer := range c.reclaimers {
		reclaimer.Reclaim(c.completed)
	}

	return nil
}

// Sync flushes all recorded work and waits for the GPU to go idle
func (c *Counter) Sync(reason string) error {
	if c.flusher != nil {
		err := c.flusher.Flush()
		if err != nil {
			return err
		}
	}

	c.syncCount++
	return c.Wait(c.current, reason)
}

// WaitCount is the number of waits performed so far, including those made by Sync
func (c *Counter) WaitCount() int {
	return c.waitCount
}

// SyncCount is the number of full synchronizations performed so far
func (c *Counter) SyncCount() int {
	return c.syncCount
}
