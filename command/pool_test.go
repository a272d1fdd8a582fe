package command_test

import (
	"io"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/rhicore/command"
	mock_native "github.com/vkngwrapper/rhicore/native/mocks"
	"go.uber.org/mock/gomock"
	"golang.org/x/exp/slog"
)

type fakeCounter struct {
	current    uint64
	completed  uint64
	advanceErr error
}

func (c *fakeCounter) Pending() uint64 { return c.current + 1 }
func (c *fakeCounter) Advance() (uint64, error) {
	if c.advanceErr != nil {
		return c.current, c.advanceErr
	}
	c.current++
	return c.current, nil
}
func (c *fakeCounter) CompletedValue() uint64 { return c.completed }

func newPool(t *testing.T, ctrl *gomock.Controller, first *mock_native.MockCommandBuffer) (*command.Pool, *mock_native.MockCommandBufferFactory, *mock_native.MockQueue) {
	factory := mock_native.NewMockCommandBufferFactory(ctrl)
	queue := mock_native.NewMockQueue(ctrl)
	factory.EXPECT().CreateCommandBuffer().Return(first, nil)

	var pool command.Pool
	require.NoError(t, pool.Init(slog.New(slog.NewJSONHandler(io.Discard)), factory, queue, 4))
	return &pool, factory, queue
}

func TestPoolSubmitEmptyIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	first := mock_native.NewMockCommandBuffer(ctrl)
	pool, _, _ := newPool(t, ctrl, first)

	counter := &fakeCounter{}
	submitted, err := pool.Submit(counter)
	require.NoError(t, err)
	require.False(t, submitted)
	require.Equal(t, uint64(0), counter.current)
	require.Equal(t, command.StateRecording, pool.Active().State())
}

func TestPoolNeedsFlush(t *testing.T) {
	ctrl := gomock.NewController(t)
	first := mock_native.NewMockCommandBuffer(ctrl)
	pool, _, _ := newPool(t, ctrl, first)

	pool.Active().AddCommands(4)
	require.False(t, pool.NeedsFlush())
	pool.Active().AddCommands(1)
	require.True(t, pool.NeedsFlush())
}

func TestPoolCreatesWhileInFlightAndRecyclesWhenComplete(t *testing.T) {
	ctrl := gomock.NewController(t)
	first := mock_native.NewMockCommandBuffer(ctrl)
	second := mock_native.NewMockCommandBuffer(ctrl)
	pool, factory, queue := newPool(t, ctrl, first)
	counter := &fakeCounter{}

	first.EXPECT().Close().Return(nil)
	queue.EXPECT().Submit(first).Return(nil)
	factory.EXPECT().CreateCommandBuffer().Return(second, nil)

	pool.Active().AddCommands(1)
	submitted, err := pool.Submit(counter)
	require.NoError(t, err)
	require.True(t, submitted)
	require.Equal(t, uint64(1), counter.current)
	require.Same(t, second, pool.Active().Native())
	require.Equal(t, 0, pool.Active().CommandCount())

	// The first buffer completes, so the next flush reuses it instead of creating a third
	counter.completed = 1
	second.EXPECT().Close().Return(nil)
	queue.EXPECT().Submit(second).Return(nil)
	first.EXPECT().Reset().Return(nil)

	pool.Active().AddCommands(2)
	submitted, err = pool.Submit(counter)
	require.NoError(t, err)
	require.True(t, submitted)
	require.Same(t, first, pool.Active().Native())

	require.Equal(t, 2, pool.CreatedCount())
	require.Equal(t, 1, pool.RecycledCount())
	require.Equal(t, 2, pool.SubmittedCount())

	second.EXPECT().Destroy()
	first.EXPECT().Destroy()
	pool.Destroy()
}

func TestPoolStampsPendingValue(t *testing.T) {
	ctrl := gomock.NewController(t)
	first := mock_native.NewMockCommandBuffer(ctrl)
	second := mock_native.NewMockCommandBuffer(ctrl)
	pool, factory, queue := newPool(t, ctrl, first)
	counter := &fakeCounter{current: 6}

	first.EXPECT().Close().Return(nil)
	queue.EXPECT().Submit(first).Return(nil)
	factory.EXPECT().CreateCommandBuffer().Return(second, nil)

	buffer := pool.Active()
	buffer.AddCommands(1)
	_, err := pool.Submit(counter)
	require.NoError(t, err)

	require.Equal(t, uint64(7), buffer.LastUse())
	require.Equal(t, command.StateSubmitted, buffer.State())
	require.Equal(t, uint64(7), counter.current)
}

func TestPoolStartsNewBufferWhenAdvanceFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	first := mock_native.NewMockCommandBuffer(ctrl)
	second := mock_native.NewMockCommandBuffer(ctrl)
	pool, factory, queue := newPool(t, ctrl, first)
	counter := &fakeCounter{advanceErr: errors.New("signal failed")}

	first.EXPECT().Close().Return(nil)
	queue.EXPECT().Submit(first).Return(nil)
	factory.EXPECT().CreateCommandBuffer().Return(second, nil)

	pool.Active().AddCommands(1)
	submitted, err := pool.Submit(counter)
	require.ErrorIs(t, err, counter.advanceErr)
	require.True(t, submitted)
	require.Same(t, second, pool.Active().Native())
	require.Equal(t, command.StateRecording, pool.Active().State())
	require.Equal(t, 0, pool.Active().CommandCount())
	require.Equal(t, 0, pool.RecycledCount())
}
