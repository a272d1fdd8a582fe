package rhi

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/dolthub/swiss"
	"github.com/vkngwrapper/rhicore/cache"
	"github.com/vkngwrapper/rhicore/command"
	"github.com/vkngwrapper/rhicore/deferred"
	"github.com/vkngwrapper/rhicore/fence"
	"github.com/vkngwrapper/rhicore/hazard"
	"github.com/vkngwrapper/rhicore/memutils"
	"github.com/vkngwrapper/rhicore/native"
	"github.com/vkngwrapper/rhicore/rhi/internal/descriptor"
	"github.com/vkngwrapper/rhicore/rhi/internal/upload"
	"github.com/vkngwrapper/rhicore/rhi/internal/utils"
	"github.com/vkngwrapper/rhicore/ring"
	"golang.org/x/exp/slog"
)

// Device owns every allocator, cache and tracker that sits between the application and a native
// device. It records commands into a single queue.
type Device struct {
	logger        *slog.Logger
	mutex         utils.OptionalMutex
	device        native.Device
	queue         native.Queue
	createFlags   CreateFlags
	errorCallback ErrorCallback
	removed       bool

	counter  fence.Counter
	commands command.Pool
	retired  deferred.Pool
	tracker  hazard.Tracker
	upload   upload.Manager

	resourceRing     descriptor.Ring
	samplerRing      descriptor.Ring
	renderTargetHeap descriptor.Heap
	depthStencilHeap descriptor.Heap
	resourceHeap     descriptor.Heap
	samplerHeap      descriptor.Heap

	nullCBV     int
	nullSRV     int
	nullUAV     int
	nullSampler int

	layouts   *cache.Cache[layoutKey, *bindingLayout]
	pipelines *cache.Cache[pipelineKey, *pipelineState]

	nextID          uint64
	textures        *swiss.Map[uint64, *Texture]
	buffers         *swiss.Map[uint64, *Buffer]
	constantBuffers *swiss.Map[uint64, *ConstantBuffer]

	shadow         shadowState
	constantStats  ConstantBufferStatistics
	bindingRetries int
}

// flushFunc lets the completion counter flush without going back through the locked entry points
type flushFunc func() error

func (f flushFunc) Flush() error {
	return f()
}

// New builds a device over a native device and queue. The native device must outlive the returned
// Device.
func New(logger *slog.Logger, device native.Device, queue native.Queue, options CreateOptions) (*Device, error) {
	d := &Device{
		logger:        logger,
		device:        device,
		queue:         queue,
		createFlags:   options.Flags,
		errorCallback: options.ErrorCallback,

		layouts:         cache.New[layoutKey, *bindingLayout](),
		pipelines:       cache.New[pipelineKey, *pipelineState](),
		textures:        swiss.NewMap[uint64, *Texture](64),
		buffers:         swiss.NewMap[uint64, *Buffer](64),
		constantBuffers: swiss.NewMap[uint64, *ConstantBuffer](64),
	}
	d.mutex.UseMutex = options.Flags&CreateExternallySynchronized == 0

	err := d.init(options)
	if err != nil {
		d.release()
		return nil, err
	}

	return d, nil
}

func (d *Device) init(options CreateOptions) error {
	err := d.counter.Init(d.logger, d.device, d.queue)
	if err != nil {
		return err
	}

	err = d.commands.Init(d.logger, d.device, d.queue, options.MaxCommandsPerBuffer)
	if err != nil {
		return err
	}

	d.retired.Init(d.logger)
	d.tracker.Init(&d.counter)

	err = d.upload.Init(d.logger, d.device, options.UploadBufferSize, &d.counter)
	if err != nil {
		return err
	}

	err = d.resourceRing.Init(d.logger, d.device, "ResourceRing", native.DescriptorResource,
		withDefault(options.ResourceRingSize, descriptor.DefaultResourceRingSize), &d.counter)
	if err != nil {
		return err
	}

	err = d.samplerRing.Init(d.logger, d.device, "SamplerRing", native.DescriptorSampler,
		withDefault(options.SamplerRingSize, descriptor.DefaultSamplerRingSize), &d.counter)
	if err != nil {
		return err
	}

	heaps := []struct {
		heap     *descriptor.Heap
		name     string
		kind     native.DescriptorKind
		capacity int
	}{
		{&d.renderTargetHeap, "RenderTargetHeap", native.DescriptorRenderTarget,
			withDefault(options.RenderTargetHeapSize, descriptor.DefaultRenderTargetHeapSize)},
		{&d.depthStencilHeap, "DepthStencilHeap", native.DescriptorDepthStencil,
			withDefault(options.DepthStencilHeapSize, descriptor.DefaultDepthStencilHeapSize)},
		{&d.resourceHeap, "ResourceHeap", native.DescriptorResource,
			withDefault(options.ResourceHeapSize, descriptor.DefaultResourceHeapSize)},
		{&d.samplerHeap, "SamplerHeap", native.DescriptorSampler,
			withDefault(options.SamplerHeapSize, descriptor.DefaultSamplerHeapSize)},
	}
	for _, h := range heaps {
		err = h.heap.Init(d.logger, d.device, h.name, h.kind, h.capacity, &d.counter, &d.retired)
		if err != nil {
			return err
		}
	}

	err = d.createNullDescriptors()
	if err != nil {
		return err
	}

	d.counter.SetFlusher(flushFunc(d.flush))
	for _, allocator := range []*ring.Allocator{d.upload.Ring(), d.resourceRing.Allocator(), d.samplerRing.Allocator()} {
		d.counter.AddMarker(allocator)
		d.counter.AddReclaimer(allocator)
	}
	d.counter.AddReclaimer(&d.retired)
	d.upload.Ring().AddReclaimHook(d.invalidateConstantBuffers)

	d.bindDescriptorTables()
	return nil
}

func withDefault(value, defaultValue int) int {
	if value <= 0 {
		return defaultValue
	}
	return value
}

func (d *Device) createNullDescriptors() error {
	var err error

	d.nullCBV, err = d.resourceHeap.Allocate(native.ViewDesc{Kind: native.ViewConstantBuffer})
	if err != nil {
		return err
	}

	d.nullSRV, err = d.resourceHeap.Allocate(native.ViewDesc{Kind: native.ViewShaderResource, Format: native.FormatR32Uint})
	if err != nil {
		return err
	}

	d.nullUAV, err = d.resourceHeap.Allocate(native.ViewDesc{Kind: native.ViewUnorderedAccess, Format: native.FormatR32Uint})
	if err != nil {
		return err
	}

	d.nullSampler, err = d.samplerHeap.Allocate(native.ViewDesc{
		Kind: native.ViewSampler,
		Sampler: native.SamplerDesc{
			AddressU: native.AddressWrap,
			AddressV: native.AddressWrap,
			AddressW: native.AddressWrap,
		},
	})
	return err
}

func (d *Device) allocateID() uint64 {
	d.nextID++
	return d.nextID
}

func (d *Device) cmd() native.CommandBuffer {
	return d.commands.Active().Native()
}

func (d *Device) addCommands(count int) {
	d.commands.Active().AddCommands(count)
}

// commitBarriers records every pending barrier into the active command buffer
func (d *Device) commitBarriers() {
	d.addCommands(d.tracker.Commit(d.cmd()))
}

func (d *Device) bindDescriptorTables() {
	d.cmd().SetDescriptorTables(d.resourceRing.Table(), d.samplerRing.Table())
}

// Flush submits every command recorded so far
func (d *Device) Flush() {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	err := d.flush()
	if err != nil {
		d.signalError(err)
	}
}

func (d *Device) flush() error {
	if d.commands.Active().CommandCount() == 0 {
		return nil
	}

	submitted, err := d.commands.Submit(&d.counter)
	if !submitted || d.commands.Active() == nil {
		return err
	}

	d.shadow.reset()
	d.bindDescriptorTables()
	if err != nil {
		return err
	}
	d.checkHealth()

	if d.createFlags&CreateValidateAllocators != 0 {
		d.validate()
	}
	return nil
}

// loadBalance submits the active command buffer once it has grown past the command threshold
func (d *Device) loadBalance() {
	if !d.commands.NeedsFlush() {
		return
	}

	err := d.flush()
	if err != nil {
		d.signalError(err)
	}
}

func (d *Device) checkHealth() {
	if d.removed {
		return
	}

	reason := d.device.RemovedReason()
	if reason != nil {
		d.removed = true
		d.signalError(errors.Wrap(reason, "device removed"))
	}
}

func (d *Device) validate() {
	validatables := []memutils.Validatable{
		d.upload.Ring(),
		d.resourceRing.Allocator(),
		d.samplerRing.Allocator(),
		&d.renderTargetHeap,
		&d.depthStencilHeap,
		&d.resourceHeap,
		&d.samplerHeap,
	}

	for _, validatable := range validatables {
		err := validatable.Validate()
		if err != nil {
			panic(errors.NewAssertionErrorWithWrappedErrf(err, "allocator validation failed"))
		}
	}
}

// SyncWithGPU submits everything recorded and blocks until the GPU is idle
func (d *Device) SyncWithGPU() {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.syncWithGPU("SyncWithGPU")
}

func (d *Device) syncWithGPU(reason string) bool {
	err := d.counter.Sync(reason)
	if err != nil {
		d.signalError(err)
		return false
	}
	return true
}

// Destroy waits for the GPU to go idle and releases every object the device still owns, including
// resources the application never destroyed
func (d *Device) Destroy() error {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.logger.Debug("Device::Destroy")

	err := d.counter.Sync("Destroy")
	if err != nil {
		d.logger.LogAttrs(context.Background(), slog.LevelError, "Device::Destroy failed to synchronize",
			slog.String("Error", err.Error()))
	}

	d.release()
	return err
}

func (d *Device) release() {
	d.retired.ReleaseAll()

	for _, layout := range d.layouts.Drain() {
		layout.Release()
	}
	for _, pipeline := range d.pipelines.Drain() {
		pipeline.Release()
	}

	d.textures.Iter(func(id uint64, texture *Texture) bool {
		if texture.managed {
			texture.native.Destroy()
		}
		return false
	})

	d.buffers.Iter(func(id uint64, buffer *Buffer) bool {
		buffer.native.Destroy()
		return false
	})
	d.textures = swiss.NewMap[uint64, *Texture](0)
	d.buffers = swiss.NewMap[uint64, *Buffer](0)
	d.constantBuffers = swiss.NewMap[uint64, *ConstantBuffer](0)

	d.commands.Destroy()
	d.resourceRing.Destroy()
	d.samplerRing.Destroy()
	d.renderTargetHeap.Destroy()
	d.depthStencilHeap.Destroy()
	d.resourceHeap.Destroy()
	d.samplerHeap.Destroy()
	d.upload.Destroy()
	d.counter.Destroy()
}
