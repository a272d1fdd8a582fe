package rhi

import (
	"context"

	"github.com/bits-and-blooms/bitset"
	"github.com/vkngwrapper/rhicore/native"
	"golang.org/x/exp/slog"
)

// Slot capacities of a single shader stage
const (
	MaxConstantBufferSlots  = 16
	MaxShaderResourceSlots  = 128
	MaxUnorderedAccessSlots = 16
	MaxSamplerSlots         = 128
)

// slotSet is the set of slots a shader declares for one kind of binding, compacted to the range
// between the lowest and highest declared slot
type slotSet struct {
	slots *bitset.BitSet
	min   int
	count int
}

func (s slotSet) contains(slot int) bool {
	return slot >= 0 && s.slots.Test(uint(slot))
}

// Shader is compiled bytecode along with the slot ranges its descriptor tables cover
type Shader struct {
	id       uint64
	desc     ShaderDesc
	bytecode []byte

	constantBuffers slotSet
	shaderResources slotSet
	unorderedAccess slotSet
	samplers        slotSet
}

func (s *Shader) Desc() ShaderDesc {
	return s.desc
}

// resourceCount is the descriptor count of the stage's resource table
func (s *Shader) resourceCount() int {
	return s.constantBuffers.count + s.shaderResources.count + s.unorderedAccess.count
}

func (s *Shader) tables() native.StageTables {
	return native.StageTables{
		Stage:           s.desc.Type,
		ConstantBuffers: s.constantBuffers.count,
		ShaderResources: s.shaderResources.count,
		UnorderedAccess: s.unorderedAccess.count,
		Samplers:        s.samplers.count,
	}
}

func (d *Device) buildSlotSet(shader ShaderDesc, kind string, slots []int, capacity int) (slotSet, bool) {
	set := slotSet{slots: bitset.New(uint(capacity))}
	highest := -1

	for _, slot := range slots {
		if slot < 0 || slot >= capacity {
			d.warn("Device::CreateShader slot out of range",
				slog.String("Shader", shader.DebugName),
				slog.String("Kind", kind),
				slog.Int("Slot", slot),
				slog.Int("Capacity", capacity),
			)
			return slotSet{}, false
		}

		set.slots.Set(uint(slot))
		highest = maxInt(highest, slot)
	}

	lowest, found := set.slots.NextSet(0)
	if found {
		set.min = int(lowest)
		set.count = highest - set.min + 1
	}
	return set, true
}

// CreateShader records a shader and the reflection of its slots. A slot beyond the capacity of its
// kind, or empty bytecode, is a usage error and produces nil.
func (d *Device) CreateShader(desc ShaderDesc) *Shader {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.logger.Debug("Device::CreateShader")

	if len(desc.Bytecode) == 0 {
		d.warn("Device::CreateShader shader has no bytecode", slog.String("Shader", desc.DebugName))
		return nil
	}

	shader := &Shader{
		id:       d.allocateID(),
		desc:     desc,
		bytecode: append([]byte(nil), desc.Bytecode...),
	}

	var ok bool
	if shader.constantBuffers, ok = d.buildSlotSet(desc, "ConstantBuffer", desc.ConstantBufferSlots, MaxConstantBufferSlots); !ok {
		return nil
	}
	if shader.shaderResources, ok = d.buildSlotSet(desc, "ShaderResource", desc.ShaderResourceSlots, MaxShaderResourceSlots); !ok {
		return nil
	}
	if shader.unorderedAccess, ok = d.buildSlotSet(desc, "UnorderedAccess", desc.UnorderedAccessSlots, MaxUnorderedAccessSlots); !ok {
		return nil
	}
	if shader.samplers, ok = d.buildSlotSet(desc, "Sampler", desc.SamplerSlots, MaxSamplerSlots); !ok {
		return nil
	}

	return shader
}

// DestroyShader evicts every binding layout built from the shader, and every pipeline built on one
// of those layouts. The evicted objects are destroyed once the GPU is done with them.
func (d *Device) DestroyShader(s *Shader) {
	if s == nil {
		return
	}

	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.logger.Debug("Device::DestroyShader")

	layouts := d.layouts.EvictFunc(func(key layoutKey, layout *bindingLayout) bool {
		return key.uses(s.id)
	})
	if len(layouts) == 0 {
		return
	}

	evicted := make(map[*bindingLayout]bool, len(layouts))
	for _, layout := range layouts {
		evicted[layout] = true
	}

	pipelines := d.pipelines.EvictFunc(func(key pipelineKey, pipeline *pipelineState) bool {
		return evicted[pipeline.layout]
	})

	for _, pipeline := range pipelines {
		d.retired.Retire(pipeline)
	}
	for _, layout := range layouts {
		d.retired.Retire(layout)
	}

	d.logger.LogAttrs(context.Background(), slog.LevelDebug, "Device::DestroyShader evicted",
		slog.String("Shader", s.desc.DebugName),
		slog.Int("Layouts", len(layouts)),
		slog.Int("Pipelines", len(pipelines)),
	)
}
