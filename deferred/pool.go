package deferred

import (
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"golang.org/x/exp/slog"
)

// Retirable is an object whose native storage may still be referenced by in-flight commands
type Retirable interface {
	// LastUse is the completion value after which the GPU no longer references the object
	LastUse() uint64
	// Release frees the native storage. It is called exactly once.
	Release()
}

type retired struct {
	object  Retirable
	lastUse uint64
}

// Pool holds logically destroyed objects until the GPU is done with them
type Pool struct {
	logger  *slog.Logger
	entries []retired

	retiredCount  int
	releasedCount int
}

func (p *Pool) Init(logger *slog.Logger) {
	p.logger = logger
	p.entries = nil
	p.retiredCount = 0
	p.releasedCount = 0
}

// Retire records the object with its current LastUse value. Later stamps are ignored.
func (p *Pool) Retire(object Retirable) {
	p.entries = append(p.entries, retired{object: object, lastUse: object.LastUse()})
	p.retiredCount++
}

// Reclaim releases every object whose recorded last use has completed, in retirement order
func (p *Pool) Reclaim(completed uint64) {
	kept := p.entries[:0]
	for _, entry := range p.entries {
		if entry.lastUse <= completed {
			entry.object.Release()
			p.releasedCount++
			continue
		}
		kept = append(kept, entry)
	}

	for i := len(kept); i < len(p.entries); i++ {
		p.entries[i] = retired{}
	}
	p.entries = kept
}

// ReleaseAll releases everything regardless of completion. The GPU must be idle.
func (p *Pool) ReleaseAll() {
	if len(p.entries) > 0 {
		p.logger.Debug("DeferredPool::ReleaseAll", slog.Int("Count", len(p.entries)))
	}

	for _, entry := range p.entries {
		entry.object.Release()
		p.releasedCount++
	}
	p.entries = nil
}

// Len is the number of objects waiting for release
func (p *Pool) Len() int {
	return len(p.entries)
}

func (p *Pool) PrintJson(json *jwriter.ObjectState) {
	json.Name("Pending").Int(len(p.entries))
	json.Name("Retired").Int(p.retiredCount)
	json.Name("Released").Int(p.releasedCount)
}
