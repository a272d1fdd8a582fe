package upload

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/rhicore/native"
	"github.com/vkngwrapper/rhicore/ring"
	"golang.org/x/exp/slog"
)

const (
	// DefaultSize is the capacity of the upload ring in bytes
	DefaultSize = 64 * 1024 * 1024
	// DefaultAlignment is the alignment of every suballocation. Constant buffer data must start
	// on a 256 byte boundary.
	DefaultAlignment uint = 256
)

// Manager suballocates staging memory out of one persistently mapped upload-heap buffer
type Manager struct {
	logger *slog.Logger
	buffer native.Buffer
	data   []byte
	ring   ring.Allocator
}

func (m *Manager) Init(logger *slog.Logger, device native.Device, size int, waiter ring.Waiter) error {
	if size <= 0 {
		size = DefaultSize
	}

	buffer, err := device.CreateBuffer(native.BufferDesc{
		ByteSize:  size,
		Heap:      native.HeapUpload,
		DebugName: "UploadRing",
	})
	if err != nil {
		return errors.Wrap(err, "failed to create the upload buffer")
	}

	data, err := buffer.Map()
	if err != nil {
		buffer.Destroy()
		return errors.Wrap(err, "failed to map the upload buffer")
	}

	m.logger = logger
	m.buffer = buffer
	m.data = data
	m.ring.Init(logger, "Upload", size, waiter)
	return nil
}

func (m *Manager) Destroy() {
	if m.buffer != nil {
		m.buffer.Unmap()
		m.buffer.Destroy()
		m.buffer = nil
		m.data = nil
	}
}

func (m *Manager) Buffer() native.Buffer {
	return m.buffer
}

func (m *Manager) Ring() *ring.Allocator {
	return &m.ring
}

// Suballocate reserves size bytes of staging memory and returns their offset in the upload buffer
// along with the host-visible bytes. An alignment of 0 uses DefaultAlignment.
func (m *Manager) Suballocate(size int, alignment uint) (int, []byte, error) {
	if alignment == 0 {
		alignment = DefaultAlignment
	}

	offset, err := m.ring.Allocate(size, alignment)
	if err != nil {
		return 0, nil, err
	}

	return offset, m.data[offset : offset+size : offset+size], nil
}

// IsLive reports whether a previous suballocation still holds the bytes that were written into it
func (m *Manager) IsLive(offset, size int) bool {
	return m.ring.IsLive(offset, size)
}
