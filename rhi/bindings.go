package rhi

import (
	"github.com/vkngwrapper/rhicore/hazard"
	"github.com/vkngwrapper/rhicore/native"
	"golang.org/x/exp/slog"
)

// maxBindingAttempts bounds how often binding restarts after an allocation flushed the active
// command buffer
const maxBindingAttempts = 3

// stateRequirement is a RequireState call held back until every allocation of a draw has been made
type stateRequirement struct {
	resource   *hazard.Resource
	arrayIndex int
	mip        int
	state      native.ResourceState
}

// stageBinding pairs one stage of a layout with the resources the caller wants bound to it
type stageBinding struct {
	shader   *Shader
	bindings *PipelineStageBindings
}

// bindStages copies every stage's descriptors into fresh ring tables and returns the table
// handles in root parameter order. A ring or upload allocation can flush, which would leave earlier
// tables of the same draw stamped for the submitted command buffer, so binding starts over when the
// completion counter moves. Resource states are required only once the tables are final.
func (d *Device) bindStages(stages []stageBinding) ([]native.DescriptorHandle, bool) {
	var tables []native.DescriptorHandle
	var requirements []stateRequirement

	for attempt := 1; ; attempt++ {
		submitted := d.counter.Current()
		tables = tables[:0]
		requirements = requirements[:0]

		for _, stage := range stages {
			var ok bool
			tables, requirements, ok = d.bindStage(stage, tables, requirements)
			if !ok {
				return nil, false
			}
		}

		if d.counter.Current() == submitted {
			break
		}
		if attempt == maxBindingAttempts {
			d.warn("Device::bindStages command buffer flushed on every binding attempt", slog.Int("Attempts", attempt))
			break
		}
		d.bindingRetries++
	}

	for _, r := range requirements {
		d.tracker.RequireState(r.resource, r.arrayIndex, r.mip, r.state)
	}
	return tables, true
}

func (d *Device) warnSlot(shader *Shader, kind string, slot int) {
	d.warn("binding to a slot the shader does not declare",
		slog.String("Shader", shader.desc.DebugName),
		slog.String("Kind", kind),
		slog.Int("Slot", slot),
	)
}

func (d *Device) warnUnbound(shader *Shader, kind string, count int) {
	d.warn("some slots declared by the shader are not bound",
		slog.String("Shader", shader.desc.DebugName),
		slog.String("Kind", kind),
		slog.Int("Count", count),
	)
}

// bindStage fills the resource table of one stage, laid out as constant buffers, then shader
// resources, then unordered access views, along with the stage's sampler table. Empty tables are
// skipped, matching the layout's root parameters.
func (d *Device) bindStage(stage stageBinding, tables []native.DescriptorHandle, requirements []stateRequirement) ([]native.DescriptorHandle, []stateRequirement, bool) {
	shader := stage.shader
	bindings := stage.bindings
	cbs, srvs, uavs := shader.constantBuffers, shader.shaderResources, shader.unorderedAccess

	shaderResourceState := native.StateNonPixelShaderResource
	if shader.desc.Type == native.ShaderPixel {
		shaderResourceState = native.StatePixelShaderResource
	}

	sources := make([]int, shader.resourceCount())
	for i := range sources {
		switch {
		case i < cbs.count:
			sources[i] = d.nullCBV
		case i < cbs.count+srvs.count:
			sources[i] = d.nullSRV
		default:
			sources[i] = d.nullUAV
		}
	}

	unboundCBs := cbs.slots.Clone()
	unboundSRVs := srvs.slots.Clone()
	unboundUAVs := uavs.slots.Clone()

	for _, binding := range bindings.ConstantBuffers {
		if !cbs.contains(binding.Slot) || binding.Buffer == nil {
			d.warnSlot(shader, "ConstantBuffer", binding.Slot)
			continue
		}

		index, err := d.constantBufferView(binding.Buffer)
		if err != nil {
			d.signalError(err)
			return tables, requirements, false
		}
		sources[binding.Slot-cbs.min] = index
		unboundCBs.Clear(uint(binding.Slot))
	}

	for _, binding := range bindings.Textures {
		if binding.Texture == nil {
			d.warnSlot(shader, "Texture", binding.Slot)
			continue
		}

		if binding.IsWritable {
			if !uavs.contains(binding.Slot) {
				d.warnSlot(shader, "UnorderedAccess", binding.Slot)
				continue
			}

			mip := binding.MipLevel
			if mip < 0 || mip >= binding.Texture.desc.MipLevels {
				mip = 0
			}
			index, err := d.textureUAV(binding.Texture, binding.Format, mip)
			if err != nil {
				d.signalError(err)
				return tables, requirements, false
			}
			sources[cbs.count+srvs.count+binding.Slot-uavs.min] = index
			unboundUAVs.Clear(uint(binding.Slot))
			requirements = append(requirements, stateRequirement{&binding.Texture.resource, AllArraySlices, mip, native.StateUnorderedAccess})
			continue
		}

		if !srvs.contains(binding.Slot) {
			d.warnSlot(shader, "ShaderResource", binding.Slot)
			continue
		}

		index, err := d.textureSRV(binding.Texture, binding.Format, binding.MipLevel)
		if err != nil {
			d.signalError(err)
			return tables, requirements, false
		}
		sources[cbs.count+binding.Slot-srvs.min] = index
		unboundSRVs.Clear(uint(binding.Slot))
		requirements = append(requirements, stateRequirement{&binding.Texture.resource, AllArraySlices, binding.MipLevel, shaderResourceState})
	}

	for _, binding := range bindings.Buffers {
		if binding.Buffer == nil {
			d.warnSlot(shader, "Buffer", binding.Slot)
			continue
		}

		if binding.IsWritable {
			if !uavs.contains(binding.Slot) {
				d.warnSlot(shader, "UnorderedAccess", binding.Slot)
				continue
			}
			if !binding.Buffer.desc.CanHaveUAVs {
				d.warn("writable binding of a buffer that does not allow UAVs",
					slog.String("Buffer", binding.Buffer.desc.DebugName))
				continue
			}

			index, err := d.bufferUAV(binding.Buffer, binding.Format)
			if err != nil {
				d.signalError(err)
				return tables, requirements, false
			}
			sources[cbs.count+srvs.count+binding.Slot-uavs.min] = index
			unboundUAVs.Clear(uint(binding.Slot))
			requirements = append(requirements, stateRequirement{&binding.Buffer.resource, 0, 0, native.StateUnorderedAccess})
			continue
		}

		if !srvs.contains(binding.Slot) {
			d.warnSlot(shader, "ShaderResource", binding.Slot)
			continue
		}

		index, err := d.bufferSRV(binding.Buffer, binding.Format)
		if err != nil {
			d.signalError(err)
			return tables, requirements, false
		}
		sources[cbs.count+binding.Slot-srvs.min] = index
		unboundSRVs.Clear(uint(binding.Slot))
		requirements = append(requirements, stateRequirement{&binding.Buffer.resource, 0, 0, native.StateShaderResource})
	}

	if count := unboundCBs.Count(); count > 0 {
		d.warnUnbound(shader, "ConstantBuffer", int(count))
	}
	if count := unboundSRVs.Count(); count > 0 {
		d.warnUnbound(shader, "ShaderResource", int(count))
	}
	if count := unboundUAVs.Count(); count > 0 {
		d.warnUnbound(shader, "UnorderedAccess", int(count))
	}

	if len(sources) > 0 {
		handle, err := d.resourceRing.Allocate(len(sources))
		if err != nil {
			d.signalError(err)
			return tables, requirements, false
		}
		d.device.CopyDescriptors(handle, d.resourceHeap.Table(), sources)
		tables = append(tables, handle)
	}

	samplers := shader.samplers
	if samplers.count == 0 {
		return tables, requirements, true
	}

	samplerSources := make([]int, samplers.count)
	for i := range samplerSources {
		samplerSources[i] = d.nullSampler
	}

	unboundSamplers := samplers.slots.Clone()
	for _, binding := range bindings.Samplers {
		if !samplers.contains(binding.Slot) || binding.Sampler == nil {
			d.warnSlot(shader, "Sampler", binding.Slot)
			continue
		}

		index, err := d.samplerView(binding.Sampler)
		if err != nil {
			d.signalError(err)
			return tables, requirements, false
		}
		samplerSources[binding.Slot-samplers.min] = index
		unboundSamplers.Clear(uint(binding.Slot))
	}
	if count := unboundSamplers.Count(); count > 0 {
		d.warnUnbound(shader, "Sampler", int(count))
	}

	handle, err := d.samplerRing.Allocate(len(samplerSources))
	if err != nil {
		d.signalError(err)
		return tables, requirements, false
	}
	d.device.CopyDescriptors(handle, d.samplerHeap.Table(), samplerSources)
	tables = append(tables, handle)

	return tables, requirements, true
}
