package rhi

import (
	"github.com/vkngwrapper/rhicore/native"
)

// VertexAttributeDesc places one vertex shader input inside a vertex buffer slot
type VertexAttributeDesc struct {
	Name        string
	Format      native.Format
	BufferIndex int
	Offset      int
	IsInstanced bool
}

// InputLayout is the vertex input description of a graphics pipeline. It has no native object of
// its own, the attributes are compiled into every pipeline that uses it.
type InputLayout struct {
	id         uint64
	attributes []native.InputAttribute
}

func (d *Device) CreateInputLayout(attributes []VertexAttributeDesc) *InputLayout {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.logger.Debug("Device::CreateInputLayout")

	layout := &InputLayout{
		id:         d.allocateID(),
		attributes: make([]native.InputAttribute, len(attributes)),
	}

	for i, attribute := range attributes {
		layout.attributes[i] = native.InputAttribute{
			SemanticName: attribute.Name,
			Format:       attribute.Format,
			BufferSlot:   attribute.BufferIndex,
			Offset:       attribute.Offset,
			PerInstance:  attribute.IsInstanced,
		}
		if attribute.IsInstanced {
			layout.attributes[i].InstanceStepRate = 1
		}
	}

	return layout
}

// DestroyInputLayout is a no-op beyond logging. Pipelines built with the layout keep their compiled
// copy of the attributes.
func (d *Device) DestroyInputLayout(layout *InputLayout) {
	if layout == nil {
		return
	}

	d.logger.Debug("Device::DestroyInputLayout")
}
