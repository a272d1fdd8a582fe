package rhi

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/rhicore/cache"
	"github.com/vkngwrapper/rhicore/deferred"
	"github.com/vkngwrapper/rhicore/native"
	"golang.org/x/exp/slog"
)

// stageCount covers the five graphics stages followed by compute
const stageCount = native.GraphicsStageCount + 1

// layoutKey identifies a binding layout by the shaders it was built from. A zero id is an empty
// stage.
type layoutKey struct {
	shaders          [stageCount]uint64
	allowInputLayout bool
}

func (k layoutKey) Hash(h *cache.Hasher) {
	for _, id := range k.shaders {
		h.AddUint64(id)
	}
	h.AddBool(k.allowInputLayout)
}

func (k layoutKey) uses(shader uint64) bool {
	for _, id := range k.shaders {
		if id == shader {
			return true
		}
	}
	return false
}

type pipelineKey struct {
	layout        layoutKey
	inputLayout   uint64
	primitiveType native.PrimitiveType

	blend        native.BlendState
	depthStencil native.DepthStencilState
	raster       native.RasterState

	targetCount   int
	targetFormats [MaxRenderTargets]native.Format
	depthFormat   native.Format
	sampleCount   int
	sampleQuality int
}

func (k pipelineKey) Hash(h *cache.Hasher) {
	k.layout.Hash(h)
	h.AddUint64(k.inputLayout)
	h.AddInt(int(k.primitiveType))

	h.AddBool(k.blend.AlphaToCoverage)
	for _, target := range k.blend.Targets {
		h.AddBool(target.Enable)
		h.AddUint8(uint8(target.SrcBlend))
		h.AddUint8(uint8(target.DestBlend))
		h.AddUint8(uint8(target.BlendOp))
		h.AddUint8(uint8(target.SrcBlendAlpha))
		h.AddUint8(uint8(target.DestBlendAlpha))
		h.AddUint8(uint8(target.BlendOpAlpha))
		h.AddUint8(target.WriteMask)
	}
	for _, factor := range k.blend.BlendFactor {
		h.AddFloat32(factor)
	}

	ds := k.depthStencil
	h.AddBool(ds.DepthEnable)
	h.AddBool(ds.DepthWriteAll)
	h.AddUint8(uint8(ds.DepthFunc))
	h.AddBool(ds.StencilEnable)
	h.AddUint8(ds.StencilReadMask)
	h.AddUint8(ds.StencilWriteMask)
	h.AddUint8(ds.StencilRef)
	for _, face := range []native.StencilFaceOp{ds.FrontFace, ds.BackFace} {
		h.AddUint8(uint8(face.FailOp))
		h.AddUint8(uint8(face.DepthFailOp))
		h.AddUint8(uint8(face.PassOp))
		h.AddUint8(uint8(face.Func))
	}

	r := k.raster
	h.AddUint8(uint8(r.Fill))
	h.AddUint8(uint8(r.Cull))
	h.AddBool(r.FrontCounterClock)
	h.AddBool(r.DepthClip)
	h.AddBool(r.Scissor)
	h.AddBool(r.Multisample)
	h.AddBool(r.AntialiasedLine)
	h.AddUint32(uint32(r.DepthBias))
	h.AddFloat32(r.DepthBiasClamp)
	h.AddFloat32(r.SlopeScaledDepthBias)

	h.AddInt(k.targetCount)
	for _, format := range k.targetFormats {
		h.AddInt(int(format))
	}
	h.AddInt(int(k.depthFormat))
	h.AddInt(k.sampleCount)
	h.AddInt(k.sampleQuality)
}

// bindingLayout is a cached native layout and the stages whose tables it declares, in root
// parameter order
type bindingLayout struct {
	native  native.BindingLayout
	stages  []*Shader
	lastUse uint64
}

var _ deferred.Retirable = &bindingLayout{}

func (l *bindingLayout) LastUse() uint64 {
	return l.lastUse
}

func (l *bindingLayout) Release() {
	l.native.Destroy()
}

type pipelineState struct {
	native  native.Pipeline
	layout  *bindingLayout
	lastUse uint64
}

var _ deferred.Retirable = &pipelineState{}

func (p *pipelineState) LastUse() uint64 {
	return p.lastUse
}

func (p *pipelineState) Release() {
	p.native.Destroy()
}

func (d *Device) getBindingLayout(key layoutKey, shaders []*Shader) (*bindingLayout, error) {
	layout, ok := d.layouts.Get(key)
	if ok {
		return layout, nil
	}

	desc := native.BindingLayoutDesc{AllowInputLayout: key.allowInputLayout}
	for _, shader := range shaders {
		desc.Stages = append(desc.Stages, shader.tables())
	}

	nativeLayout, err := d.device.CreateBindingLayout(desc)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create a binding layout")
	}

	layout = &bindingLayout{native: nativeLayout, stages: shaders}
	d.layouts.Put(key, layout)
	return layout, nil
}

// graphicsStages returns the stage bindings of a draw in pipeline order
func graphicsStages(state *DrawCallState) [native.GraphicsStageCount]*PipelineStageBindings {
	return [native.GraphicsStageCount]*PipelineStageBindings{&state.VS, &state.HS, &state.DS, &state.GS, &state.PS}
}

// checkShaderStage reports a shader that was bound to a stage of another type
func (d *Device) checkShaderStage(shader *Shader, stage native.ShaderType) bool {
	if shader.desc.Type == stage {
		return true
	}

	d.warn("shader bound to the wrong pipeline stage",
		slog.String("Shader", shader.desc.DebugName),
		slog.String("Type", shader.desc.Type.String()),
		slog.String("Stage", stage.String()),
	)
	return false
}

// sampleDesc is the multisampling of the draw's targets, taken from the depth target if there is
// one and from the first color target otherwise
func sampleDesc(state *RenderState) (int, int) {
	texture := state.DepthTarget.Texture
	if texture == nil && len(state.Targets) > 0 {
		texture = state.Targets[0].Texture
	}
	if texture == nil {
		return 1, 0
	}
	return texture.desc.SampleCount, texture.desc.SampleQuality
}

func (d *Device) graphicsPipeline(state *DrawCallState) *pipelineState {
	if state.VS.Shader == nil {
		d.warn("draw without a vertex shader")
		return nil
	}

	var key pipelineKey
	var shaders []*Shader
	for i, stage := range graphicsStages(state) {
		if stage.Shader == nil {
			continue
		}
		if !d.checkShaderStage(stage.Shader, native.ShaderType(i)) {
			return nil
		}
		key.layout.shaders[i] = stage.Shader.id
		shaders = append(shaders, stage.Shader)
	}
	key.layout.allowInputLayout = state.InputLayout != nil

	render := &state.RenderState
	if len(render.Targets) > MaxRenderTargets {
		d.warn("draw has too many render targets", slog.Int("Targets", len(render.Targets)))
		return nil
	}

	key.primitiveType = state.PrimitiveType
	key.blend = render.Blend
	key.depthStencil = render.DepthStencil
	key.raster = render.Raster
	key.targetCount = len(render.Targets)
	for i, target := range render.Targets {
		if target.Texture == nil {
			d.warn("draw has an empty render target slot", slog.Int("Target", i))
			return nil
		}
		key.targetFormats[i] = target.Texture.desc.Format
	}
	for i := key.targetCount; i < MaxRenderTargets; i++ {
		key.blend.Targets[i] = native.TargetBlend{}
	}
	if render.DepthTarget.Texture != nil {
		key.depthFormat = render.DepthTarget.Texture.desc.Format
	}
	key.sampleCount, key.sampleQuality = sampleDesc(render)

	var attributes []native.InputAttribute
	if state.InputLayout != nil {
		key.inputLayout = state.InputLayout.id
		attributes = state.InputLayout.attributes
	}

	pipeline, ok := d.pipelines.Get(key)
	if ok {
		return pipeline
	}

	layout, err := d.getBindingLayout(key.layout, shaders)
	if err != nil {
		d.signalError(err)
		return nil
	}

	desc := native.GraphicsPipelineDesc{
		Layout:        layout.native,
		InputLayout:   attributes,
		Blend:         key.blend,
		DepthStencil:  key.depthStencil,
		Raster:        key.raster,
		PrimitiveType: key.primitiveType,
		TargetFormats: append([]native.Format(nil), key.targetFormats[:key.targetCount]...),
		DepthFormat:   key.depthFormat,
		SampleCount:   key.sampleCount,
		SampleQuality: key.sampleQuality,
	}
	for i, bytecode := range []*[]byte{&desc.VS, &desc.HS, &desc.DS, &desc.GS, &desc.PS} {
		if shader := graphicsStages(state)[i].Shader; shader != nil {
			*bytecode = shader.bytecode
		}
	}

	nativePipeline, err := d.device.CreateGraphicsPipeline(desc)
	if err != nil {
		d.signalError(errors.Wrap(err, "failed to create a graphics pipeline"))
		return nil
	}

	pipeline = &pipelineState{native: nativePipeline, layout: layout}
	d.pipelines.Put(key, pipeline)
	return pipeline
}

func (d *Device) computePipeline(state *DispatchState) *pipelineState {
	shader := state.Shader
	if shader == nil {
		d.warn("dispatch without a compute shader")
		return nil
	}
	if !d.checkShaderStage(shader, native.ShaderCompute) {
		return nil
	}

	var key pipelineKey
	key.layout.shaders[native.ShaderCompute] = shader.id

	pipeline, ok := d.pipelines.Get(key)
	if ok {
		return pipeline
	}

	layout, err := d.getBindingLayout(key.layout, []*Shader{shader})
	if err != nil {
		d.signalError(err)
		return nil
	}

	nativePipeline, err := d.device.CreateComputePipeline(native.ComputePipelineDesc{
		Layout: layout.native,
		CS:     shader.bytecode,
	})
	if err != nil {
		d.signalError(errors.Wrap(err, "failed to create a compute pipeline"))
		return nil
	}

	pipeline = &pipelineState{native: nativePipeline, layout: layout}
	d.pipelines.Put(key, pipeline)
	return pipeline
}
