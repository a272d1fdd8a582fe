package rhi

import (
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/vkngwrapper/rhicore/memutils"
	"github.com/vkngwrapper/rhicore/ring"
)

// Statistics is a snapshot of the device's counters
type Statistics struct {
	SubmittedValue uint64
	CompletedValue uint64
	Waits          int
	Syncs          int

	CommandBuffersCreated   int
	CommandBuffersRecycled  int
	CommandBuffersSubmitted int

	BindingLayouts      int
	Pipelines           int
	LayoutCacheHits     int
	LayoutCacheMisses   int
	PipelineCacheHits   int
	PipelineCacheMisses int
	PipelineEvictions   int

	PendingDestruction int
	BindingRetries     int

	Textures        int
	Buffers         int
	ConstantBuffers int
	ConstantBuffer  ConstantBufferStatistics

	Upload          memutils.Statistics
	ResourceRing    memutils.Statistics
	SamplerRing     memutils.Statistics
	DescriptorHeaps memutils.Statistics
}

func (d *Device) Statistics() Statistics {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	stats := Statistics{
		SubmittedValue: d.counter.Current(),
		CompletedValue: d.counter.CompletedValue(),
		Waits:          d.counter.WaitCount(),
		Syncs:          d.counter.SyncCount(),

		CommandBuffersCreated:   d.commands.CreatedCount(),
		CommandBuffersRecycled:  d.commands.RecycledCount(),
		CommandBuffersSubmitted: d.commands.SubmittedCount(),

		BindingLayouts:      d.layouts.Len(),
		Pipelines:           d.pipelines.Len(),
		LayoutCacheHits:     d.layouts.Hits(),
		LayoutCacheMisses:   d.layouts.Misses(),
		PipelineCacheHits:   d.pipelines.Hits(),
		PipelineCacheMisses: d.pipelines.Misses(),
		PipelineEvictions:   d.pipelines.Evictions(),

		PendingDestruction: d.retired.Len(),
		BindingRetries:     d.bindingRetries,

		Textures:        d.textures.Count(),
		Buffers:         d.buffers.Count(),
		ConstantBuffers: d.constantBuffers.Count(),
		ConstantBuffer:  d.constantStats,
	}

	d.upload.Ring().AddStatistics(&stats.Upload)
	d.resourceRing.Allocator().AddStatistics(&stats.ResourceRing)
	d.samplerRing.Allocator().AddStatistics(&stats.SamplerRing)
	d.renderTargetHeap.AddStatistics(&stats.DescriptorHeaps)
	d.depthStencilHeap.AddStatistics(&stats.DescriptorHeaps)
	d.resourceHeap.AddStatistics(&stats.DescriptorHeaps)
	d.samplerHeap.AddStatistics(&stats.DescriptorHeaps)

	return stats
}

func printRing(json *jwriter.ObjectState, allocator *ring.Allocator, detailed bool) {
	obj := json.Name(allocator.Name()).Object()
	defer obj.End()

	var stats memutils.DetailedStatistics
	stats.Clear()
	allocator.AddDetailedStatistics(&stats)
	stats.PrintJson(&obj)

	if detailed {
		detailedMap := obj.Name("DetailedMap").Object()
		allocator.PrintDetailedMap(&detailedMap)
		detailedMap.End()
	}
}

// BuildStatsString dumps the state of every allocator, cache and pool as JSON. The detailed form
// adds the fence marks of each ring and the cursor of each heap.
func (d *Device) BuildStatsString(detailed bool) string {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	writer := jwriter.NewWriter()
	json := writer.Object()

	counter := json.Name("Counter").Object()
	counter.Name("Submitted").Float64(float64(d.counter.Current()))
	counter.Name("Completed").Float64(float64(d.counter.CompletedValue()))
	counter.Name("Waits").Int(d.counter.WaitCount())
	counter.Name("Syncs").Int(d.counter.SyncCount())
	counter.End()

	rings := json.Name("Rings").Object()
	printRing(&rings, d.upload.Ring(), detailed)
	printRing(&rings, d.resourceRing.Allocator(), detailed)
	printRing(&rings, d.samplerRing.Allocator(), detailed)
	rings.End()

	heaps := json.Name("Heaps").Object()
	for _, heap := range []struct {
		name string
		heap interface {
			AddStatistics(stats *memutils.Statistics)
			PrintDetailedMap(json *jwriter.ObjectState)
		}
	}{
		{"RenderTargetHeap", &d.renderTargetHeap},
		{"DepthStencilHeap", &d.depthStencilHeap},
		{"ResourceHeap", &d.resourceHeap},
		{"SamplerHeap", &d.samplerHeap},
	} {
		obj := heaps.Name(heap.name).Object()
		var stats memutils.Statistics
		heap.heap.AddStatistics(&stats)
		stats.PrintJson(&obj)
		if detailed {
			detailedMap := obj.Name("DetailedMap").Object()
			heap.heap.PrintDetailedMap(&detailedMap)
			detailedMap.End()
		}
		obj.End()
	}
	heaps.End()

	caches := json.Name("Caches").Object()
	layouts := caches.Name("BindingLayouts").Object()
	d.layouts.PrintJson(&layouts)
	layouts.End()
	pipelines := caches.Name("Pipelines").Object()
	d.pipelines.PrintJson(&pipelines)
	pipelines.End()
	caches.End()

	commands := json.Name("CommandPool").Object()
	d.commands.PrintJson(&commands)
	commands.End()

	retired := json.Name("DeferredDestruction").Object()
	d.retired.PrintJson(&retired)
	retired.End()

	tracker := json.Name("Tracker").Object()
	d.tracker.PrintJson(&tracker)
	tracker.End()

	constants := json.Name("ConstantBuffers").Object()
	constants.Name("Live").Int(d.constantBuffers.Count())
	constants.Name("Evictions").Int(d.constantStats.Evictions)
	constants.Name("Writes").Int(d.constantStats.Writes)
	constants.Name("IdenticalWrites").Int(d.constantStats.IdenticalWrites)
	constants.Name("Refreshes").Int(d.constantStats.Refreshes)
	constants.Name("CachedRefs").Int(d.constantStats.CachedRefs)
	constants.End()

	resources := json.Name("Resources").Object()
	resources.Name("Textures").Int(d.textures.Count())
	resources.Name("Buffers").Int(d.buffers.Count())
	resources.Name("BindingRetries").Int(d.bindingRetries)
	resources.End()

	json.End()
	return string(writer.Bytes())
}
