package descriptor_test

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/rhicore/deferred"
	"github.com/vkngwrapper/rhicore/native"
	"github.com/vkngwrapper/rhicore/native/software"
	"github.com/vkngwrapper/rhicore/rhi/internal/descriptor"
	"golang.org/x/exp/slog"
)

type fixedStamp uint64

func (s fixedStamp) Pending() uint64 { return uint64(s) }

func TestHeapGrowthKeepsDescriptors(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard))
	sw := software.New(software.Options{})

	var retired deferred.Pool
	retired.Init(logger)

	var heap descriptor.Heap
	require.NoError(t, heap.Init(logger, sw, "ResourceHeap", native.DescriptorResource, 2, fixedStamp(4), &retired))
	first := heap.Table()

	indices := make([]int, 3)
	for i := range indices {
		index, err := heap.Allocate(native.ViewDesc{Kind: native.ViewShaderResource, MipLevel: i, MipCount: 1})
		require.NoError(t, err)
		indices[i] = index
	}

	require.Equal(t, []int{0, 1, 2}, indices)
	require.Equal(t, 4, heap.Capacity())
	require.Equal(t, 3, heap.Count())
	require.NotEqual(t, first, heap.Table())

	for i, index := range indices {
		view, ok := sw.Descriptor(heap.Handle(index))
		require.True(t, ok)
		require.Equal(t, i, view.MipLevel)
	}

	require.Equal(t, 1, retired.Len())
	retired.Reclaim(3)
	require.Equal(t, 1, retired.Len())
	retired.Reclaim(4)
	require.Equal(t, 0, retired.Len())
	require.True(t, first.(*software.DescriptorTable).Destroyed())

	heap.Release(indices[1])
	reused, err := heap.Allocate(native.ViewDesc{Kind: native.ViewConstantBuffer})
	require.NoError(t, err)
	require.Equal(t, indices[1], reused)
	require.NoError(t, heap.Validate())

	heap.Destroy()
	require.Empty(t, sw.Errors())
}
