package freelist_test

import (
	"io"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/rhicore/freelist"
	"github.com/vkngwrapper/rhicore/memutils"
	"golang.org/x/exp/slog"
)

type growRecord struct {
	oldCapacity, newCapacity int
}

type recordingGrower struct {
	grows []growRecord
	err   error
}

func (g *recordingGrower) Grow(oldCapacity, newCapacity int) error {
	if g.err != nil {
		return g.err
	}
	g.grows = append(g.grows, growRecord{oldCapacity, newCapacity})
	return nil
}

func newFreeList(capacity int, grower freelist.Grower) *freelist.Allocator {
	var allocator freelist.Allocator
	allocator.Init(slog.New(slog.NewJSONHandler(io.Discard)), "test", capacity, grower)
	return &allocator
}

func TestFreeListAllocatesInOrder(t *testing.T) {
	allocator := newFreeList(4, &recordingGrower{})

	for i := 0; i < 4; i++ {
		index, err := allocator.Allocate()
		require.NoError(t, err)
		require.Equal(t, i, index)
	}

	require.Equal(t, 4, allocator.Count())
	require.NoError(t, allocator.Validate())
}

func TestFreeListReleaseReusesLowestSlot(t *testing.T) {
	allocator := newFreeList(8, &recordingGrower{})

	for i := 0; i < 6; i++ {
		_, err := allocator.Allocate()
		require.NoError(t, err)
	}

	allocator.Release(4)
	allocator.Release(1)

	index, err := allocator.Allocate()
	require.NoError(t, err)
	require.Equal(t, 1, index)

	index, err = allocator.Allocate()
	require.NoError(t, err)
	require.Equal(t, 4, index)

	index, err = allocator.Allocate()
	require.NoError(t, err)
	require.Equal(t, 6, index)
	require.NoError(t, allocator.Validate())
}

func TestFreeListGrowsByDoubling(t *testing.T) {
	grower := &recordingGrower{}
	allocator := newFreeList(2, grower)

	for i := 0; i < 5; i++ {
		index, err := allocator.Allocate()
		require.NoError(t, err)
		require.Equal(t, i, index)
	}

	require.Equal(t, []growRecord{{2, 4}, {4, 8}}, grower.grows)
	require.Equal(t, 8, allocator.Capacity())

	var stats memutils.DetailedStatistics
	stats.Clear()
	allocator.AddDetailedStatistics(&stats)
	require.Equal(t, 2, stats.GrowCount)
	require.Equal(t, 5, stats.InUse)
	require.Equal(t, 5, stats.AllocationCount)
}

func TestFreeListGrowFailure(t *testing.T) {
	grower := &recordingGrower{err: errors.New("out of memory")}
	allocator := newFreeList(1, grower)

	_, err := allocator.Allocate()
	require.NoError(t, err)

	_, err = allocator.Allocate()
	require.Error(t, err)
	require.Equal(t, 1, allocator.Capacity())
}

func TestFreeListDoubleReleasePanics(t *testing.T) {
	allocator := newFreeList(4, &recordingGrower{})

	index, err := allocator.Allocate()
	require.NoError(t, err)
	allocator.Release(index)

	require.Panics(t, func() { allocator.Release(index) })
	require.Panics(t, func() { allocator.Release(10) })
}
