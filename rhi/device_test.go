package rhi_test

import (
	"io"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/rhicore/native"
	"github.com/vkngwrapper/rhicore/native/software"
	"github.com/vkngwrapper/rhicore/rhi"
	"golang.org/x/exp/slog"
)

type recordingCallback struct {
	messages []string
}

func (c *recordingCallback) SignalError(file string, line int, message string) {
	c.messages = append(c.messages, message)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard))
}

func newDevice(t *testing.T, softwareOptions software.Options, options rhi.CreateOptions) (*rhi.Device, *software.Device) {
	sw := software.New(softwareOptions)
	device, err := rhi.New(testLogger(), sw, sw.Queue(), options)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, device.Destroy())
		require.Empty(t, sw.Errors())
	})
	return device, sw
}

func pattern(size int, seed byte) []byte {
	data := make([]byte, size)
	for i := range data {
		data[i] = byte(i*7) + seed
	}
	return data
}

func countCommands(commands []string, name string) int {
	count := 0
	for _, command := range commands {
		if command == name {
			count++
		}
	}
	return count
}

func TestBufferRoundTrip(t *testing.T) {
	testCases := map[string]int{
		"Empty":        0,
		"OneByte":      1,
		"Unaligned":    255,
		"Aligned":      256,
		"FourMebibyte": 4 * 1024 * 1024,
	}

	for name, size := range testCases {
		t.Run(name, func(t *testing.T) {
			device, _ := newDevice(t, software.Options{}, rhi.CreateOptions{})

			buffer := device.CreateBuffer(rhi.BufferDesc{ByteSize: size, DebugName: name}, nil)
			require.NotNil(t, buffer)

			data := pattern(size, 3)
			device.WriteBuffer(buffer, data)
			require.Equal(t, data, device.ReadBuffer(buffer))

			device.DestroyBuffer(buffer)
		})
	}
}

func TestWriteBufferIgnoresBytesPastTheEnd(t *testing.T) {
	device, _ := newDevice(t, software.Options{}, rhi.CreateOptions{})

	buffer := device.CreateBuffer(rhi.BufferDesc{ByteSize: 8}, nil)
	data := pattern(32, 1)
	device.WriteBuffer(buffer, data)

	require.Equal(t, data[:8], device.ReadBuffer(buffer))
}

func TestClearBufferUInt(t *testing.T) {
	device, _ := newDevice(t, software.Options{}, rhi.CreateOptions{})

	buffer := device.CreateBuffer(rhi.BufferDesc{ByteSize: 4096, CanHaveUAVs: true}, pattern(4096, 9))
	require.Equal(t, pattern(4096, 9), device.ReadBuffer(buffer))

	device.ClearBufferUInt(buffer, 0xFFFFFFFF)

	expected := make([]byte, 4096)
	for i := range expected {
		expected[i] = 0xFF
	}
	require.Equal(t, expected, device.ReadBuffer(buffer))
}

func TestCopyToBuffer(t *testing.T) {
	device, _ := newDevice(t, software.Options{}, rhi.CreateOptions{})

	src := device.CreateBuffer(rhi.BufferDesc{ByteSize: 64}, pattern(64, 0))
	dst := device.CreateBuffer(rhi.BufferDesc{ByteSize: 64}, nil)

	device.CopyToBuffer(dst, 16, src, 0, 32)

	expected := make([]byte, 64)
	copy(expected[16:48], pattern(64, 0)[:32])
	require.Equal(t, expected, device.ReadBuffer(dst))
}

func TestCopyWithinBuffer(t *testing.T) {
	device, _ := newDevice(t, software.Options{}, rhi.CreateOptions{})

	data := pattern(64, 2)
	buffer := device.CreateBuffer(rhi.BufferDesc{ByteSize: 64}, data)

	device.CopyToBuffer(buffer, 32, buffer, 0, 16)

	expected := append([]byte(nil), data...)
	copy(expected[32:48], data[:16])
	require.Equal(t, expected, device.ReadBuffer(buffer))

	// Overlapping regions are dropped
	device.CopyToBuffer(buffer, 8, buffer, 0, 16)
	require.Equal(t, expected, device.ReadBuffer(buffer))
}

func TestClearTextureAndReadBack(t *testing.T) {
	device, _ := newDevice(t, software.Options{}, rhi.CreateOptions{})

	red := rhi.Color{R: 1, A: 1}
	texture := device.CreateTexture(rhi.TextureDesc{
		Width:          4,
		Height:         2,
		Format:         native.FormatRGBA8Unorm,
		IsRenderTarget: true,
		UseClearValue:  true,
		ClearValue:     red,
		DebugName:      "Color",
	}, nil)
	require.NotNil(t, texture)

	device.ClearTextureFloat(texture, red)

	data := device.ReadTexture(texture, 0, 0)
	require.Len(t, data, 4*2*4)
	for i := 0; i < len(data); i += 4 {
		require.Equal(t, []byte{255, 0, 0, 255}, data[i:i+4])
	}
}

func TestWriteTextureRoundTrip(t *testing.T) {
	device, _ := newDevice(t, software.Options{}, rhi.CreateOptions{})

	data := pattern(3*3*4, 5)
	texture := device.CreateTexture(rhi.TextureDesc{
		Width:  3,
		Height: 3,
		Format: native.FormatRGBA8Unorm,
	}, data)
	require.NotNil(t, texture)

	require.Equal(t, data, device.ReadTexture(texture, 0, 0))
}

func TestUploadRingWaitsWhenFull(t *testing.T) {
	device, _ := newDevice(t, software.Options{DeferExecution: true}, rhi.CreateOptions{UploadBufferSize: 4096})

	buffer := device.CreateBuffer(rhi.BufferDesc{ByteSize: 1024}, nil)
	for i := 0; i < 8; i++ {
		device.WriteBuffer(buffer, pattern(1024, byte(i)))
		device.Flush()
	}

	stats := device.Statistics()
	require.Greater(t, stats.Upload.WaitCount, 0)
	require.Equal(t, pattern(1024, 7), device.ReadBuffer(buffer))
}

func TestDeviceRemovalIsSignaled(t *testing.T) {
	sw := software.New(software.Options{})
	callback := &recordingCallback{}
	device, err := rhi.New(testLogger(), sw, sw.Queue(), rhi.CreateOptions{ErrorCallback: callback})
	require.NoError(t, err)

	buffer := device.CreateBuffer(rhi.BufferDesc{ByteSize: 16}, nil)
	device.WriteBuffer(buffer, pattern(16, 0))

	sw.Remove(errors.New("device hung"))
	device.Flush()

	require.NotEmpty(t, callback.messages)
	require.True(t, strings.Contains(callback.messages[0], "device hung"))

	require.Error(t, device.Destroy())
}

func TestBuildStatsString(t *testing.T) {
	device, _ := newDevice(t, software.Options{}, rhi.CreateOptions{})

	buffer := device.CreateBuffer(rhi.BufferDesc{ByteSize: 256}, pattern(256, 0))
	device.Flush()

	summary := device.BuildStatsString(false)
	require.Contains(t, summary, `"Rings"`)
	require.Contains(t, summary, `"Upload"`)
	require.NotContains(t, summary, `"FenceMarks"`)

	detailed := device.BuildStatsString(true)
	require.Contains(t, detailed, `"FenceMarks"`)
	require.Contains(t, detailed, `"ConstantBuffers"`)

	device.DestroyBuffer(buffer)
}
