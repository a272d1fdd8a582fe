package rhi

import (
	"context"

	"github.com/vkngwrapper/rhicore/native"
	"golang.org/x/exp/slog"
)

// GetHandleForTexture wraps a texture the application owns so it can be bound like any other.
// Wrapping the same native texture twice returns the same handle. The device never destroys the
// native texture.
func (d *Device) GetHandleForTexture(nativeTexture native.Texture, desc TextureDesc) *Texture {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	var existing *Texture
	d.textures.Iter(func(id uint64, texture *Texture) bool {
		if texture.native == nativeTexture {
			existing = texture
			return true
		}
		return false
	})
	if existing != nil {
		return existing
	}

	texture := d.newTexture(normalizeTextureDesc(desc), nativeTexture, false)
	d.logTexture("Device::GetHandleForTexture", texture)
	return texture
}

// SetNonManagedTextureResourceState tells the tracker which state the application left a wrapped
// texture in
func (d *Device) SetNonManagedTextureResourceState(t *Texture, state native.ResourceState) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if t.managed {
		d.warn("Device::SetNonManagedTextureResourceState called on a managed texture",
			slog.String("Texture", t.desc.DebugName))
		return
	}

	t.resource.OverrideState(state)
}

// ReleaseNonManagedTextures drops every wrapper made by GetHandleForTexture along with its views
func (d *Device) ReleaseNonManagedTextures() {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	var released []*Texture
	d.textures.Iter(func(id uint64, texture *Texture) bool {
		if !texture.managed {
			released = append(released, texture)
		}
		return false
	})

	for _, texture := range released {
		d.destroyTexture(texture)
	}

	d.logger.LogAttrs(context.Background(), slog.LevelDebug, "Device::ReleaseNonManagedTextures",
		slog.Int("Released", len(released)))
}

func (d *Device) logTexture(msg string, t *Texture) {
	d.logger.LogAttrs(context.Background(), slog.LevelDebug, msg,
		slog.String("Texture", t.desc.DebugName),
		slog.Int("Width", t.desc.Width),
		slog.Int("Height", t.desc.Height),
		slog.String("Format", t.desc.Format.String()),
	)
}
