package ring_test

import (
	"io"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/rhicore/memutils"
	"github.com/vkngwrapper/rhicore/ring"
	"golang.org/x/exp/slog"
)

// fakeGPU follows the same contract as fence.Counter: every wait submits outstanding work first,
// then reclaims with the new completed value
type fakeGPU struct {
	rings     []*ring.Allocator
	current   uint64
	completed uint64
	waits     []uint64
	syncs     int
}

func (g *fakeGPU) submit() {
	g.current++
	for _, r := range g.rings {
		r.AddFenceMark(g.current)
	}
}

func (g *fakeGPU) Wait(value uint64, reason string) error {
	g.submit()
	g.waits = append(g.waits, value)
	if value > g.completed {
		g.completed = value
	}
	for _, r := range g.rings {
		r.Reclaim(g.completed)
	}
	return nil
}

func (g *fakeGPU) Sync(reason string) error {
	g.syncs++
	g.submit()
	return g.Wait(g.current, reason)
}

func newRing(capacity int) (*ring.Allocator, *fakeGPU) {
	gpu := &fakeGPU{}
	var allocator ring.Allocator
	allocator.Init(slog.New(slog.NewJSONHandler(io.Discard)), "test", capacity, gpu)
	gpu.rings = append(gpu.rings, &allocator)
	return &allocator, gpu
}

func TestRingSequentialAllocations(t *testing.T) {
	allocator, gpu := newRing(1024)

	offset, err := allocator.Allocate(10, 1)
	require.NoError(t, err)
	require.Equal(t, 0, offset)

	offset, err = allocator.Allocate(100, 256)
	require.NoError(t, err)
	require.Equal(t, 256, offset)

	offset, err = allocator.Allocate(0, 256)
	require.NoError(t, err)
	require.Equal(t, 512, offset)

	require.Equal(t, 512, allocator.WritePointer())
	require.Empty(t, gpu.waits)
	require.NoError(t, allocator.Validate())
}

func TestRingRequestTooLarge(t *testing.T) {
	allocator, _ := newRing(1024)

	_, err := allocator.Allocate(1025, 1)
	require.ErrorIs(t, err, memutils.ErrRequestTooLarge)

	_, err = allocator.Allocate(-1, 1)
	require.Error(t, err)
}

func TestRingWrapWaitsForMark(t *testing.T) {
	allocator, gpu := newRing(1000)

	offset, err := allocator.Allocate(900, 1)
	require.NoError(t, err)
	require.Equal(t, 0, offset)

	gpu.submit()
	require.Equal(t, uint64(0), gpu.completed)

	offset, err = allocator.Allocate(200, 1)
	require.NoError(t, err)
	require.Equal(t, 0, offset)

	require.Equal(t, []uint64{1}, gpu.waits)
	require.Equal(t, uint64(1), gpu.completed)
	require.Equal(t, 0, gpu.syncs)
}

func TestRingWrapIntoReclaimedSpace(t *testing.T) {
	allocator, gpu := newRing(1000)

	_, err := allocator.Allocate(400, 1)
	require.NoError(t, err)
	gpu.submit()

	_, err = allocator.Allocate(400, 1)
	require.NoError(t, err)
	gpu.submit()

	// Reclaiming the first submission frees [0, 400) while [400, 800) stays live
	require.NoError(t, gpu.Wait(1, "test"))
	require.Equal(t, 400, allocator.LiveStart())
	waits := len(gpu.waits)

	offset, err := allocator.Allocate(300, 1)
	require.NoError(t, err)
	require.Equal(t, 0, offset)
	require.Len(t, gpu.waits, waits)

	require.True(t, allocator.IsLive(400, 400))
	require.True(t, allocator.IsLive(0, 300))
	require.False(t, allocator.IsLive(300, 50))
}

func TestRingWrappedCollisionWaits(t *testing.T) {
	allocator, gpu := newRing(1000)

	_, err := allocator.Allocate(400, 1)
	require.NoError(t, err)
	gpu.submit()
	_, err = allocator.Allocate(400, 1)
	require.NoError(t, err)
	gpu.submit()
	require.NoError(t, gpu.Wait(1, "test"))

	_, err = allocator.Allocate(300, 1)
	require.NoError(t, err)
	gpu.submit()

	// The ring is now live over [400, 800) and [0, 300), so another 300 collides with [400, 800)
	offset, err := allocator.Allocate(300, 1)
	require.NoError(t, err)
	require.Equal(t, 300, offset)
	require.Equal(t, uint64(2), gpu.waits[len(gpu.waits)-1])
}

func TestRingFallsBackToSync(t *testing.T) {
	allocator, gpu := newRing(1000)

	// Nothing has been submitted, so no mark can bound the request
	_, err := allocator.Allocate(600, 1)
	require.NoError(t, err)

	offset, err := allocator.Allocate(600, 1)
	require.NoError(t, err)
	require.Equal(t, 0, offset)
	require.Equal(t, 1, gpu.syncs)
}

func TestRingReclaimHooks(t *testing.T) {
	allocator, gpu := newRing(1000)

	var observed []int
	allocator.AddReclaimHook(func(a *ring.Allocator) {
		observed = append(observed, a.LiveStart())
	})

	_, err := allocator.Allocate(100, 1)
	require.NoError(t, err)
	gpu.submit()

	require.NoError(t, gpu.Wait(1, "test"))
	require.Equal(t, []int{100}, observed)
}

func TestRingReclaimWithoutMarksPanics(t *testing.T) {
	allocator, _ := newRing(1000)

	require.NotPanics(t, func() { allocator.Reclaim(0) })
	require.Panics(t, func() { allocator.Reclaim(1) })
}

func TestRingMarksMustIncrease(t *testing.T) {
	allocator, _ := newRing(1000)

	allocator.AddFenceMark(2)
	require.Panics(t, func() { allocator.AddFenceMark(2) })
}

func TestRingStatistics(t *testing.T) {
	allocator, gpu := newRing(1000)

	_, err := allocator.Allocate(900, 1)
	require.NoError(t, err)
	gpu.submit()
	_, err = allocator.Allocate(200, 1)
	require.NoError(t, err)

	var stats memutils.Statistics
	allocator.AddStatistics(&stats)
	require.Equal(t, memutils.Statistics{
		Capacity:        1000,
		InUse:           200,
		AllocationCount: 2,
		WaitCount:       1,
		SyncCount:       0,
	}, stats)
}

type allocation struct {
	offset int
	size   int
	batch  uint64
}

func TestRingNeverOverlapsLiveRegions(t *testing.T) {
	allocator, gpu := newRing(4096)
	random := rand.New(rand.NewSource(1337))
	alignments := []uint{1, 4, 16, 256}

	var live []allocation
	for i := 0; i < 5000; i++ {
		switch random.Intn(10) {
		case 0:
			gpu.submit()
		case 1:
			if gpu.current > 0 {
				require.NoError(t, gpu.Wait(uint64(random.Int63n(int64(gpu.current)))+1, "test"))
			}
		default:
			size := random.Intn(1400) + 1
			offset, err := allocator.Allocate(size, alignments[random.Intn(len(alignments))])
			require.NoError(t, err)
			require.LessOrEqual(t, offset+size, allocator.Capacity())

			pending := gpu.current + 1
			kept := live[:0]
			for _, other := range live {
				if other.batch <= gpu.completed {
					continue
				}
				kept = append(kept, other)
				overlaps := offset < other.offset+other.size && other.offset < offset+size
				require.False(t, overlaps, "allocation [%d, %d) overlaps [%d, %d) from batch %d with %d completed",
					offset, offset+size, other.offset, other.offset+other.size, other.batch, gpu.completed)
			}
			live = append(kept, allocation{offset: offset, size: size, batch: pending})
		}
	}

	require.NoError(t, allocator.Validate())
}
