package parallel_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvpar/parallel"
)

// ExecutorSuite exercises Map and All under several worker counts.
type ExecutorSuite struct {
	suite.Suite
	ctx context.Context
}

func TestExecutorSuite(t *testing.T) {
	suite.Run(t, new(ExecutorSuite))
}

func (s *ExecutorSuite) SetupTest() {
	s.ctx = context.Background()
}

func workersCfg(w int) parallel.Config {
	return parallel.Config{Workers: w, CPUCount: func() int { return 8 }}
}

func sum(_ context.Context, c []int) (int, error) {
	total := 0
	for _, v := range c {
		total += v
	}
	return total, nil
}

// TestOrderPreserved verifies results follow chunk order for every worker count.
func (s *ExecutorSuite) TestOrderPreserved() {
	items := make([]int, 50)
	for i := range items {
		items[i] = i
	}
	for _, w := range []int{1, 2, 3, 8, -1} {
		got, err := parallel.Map(s.ctx, workersCfg(w), parallel.ChunkSlice(items, 1),
			func(_ context.Context, c []int) (int, error) {
				time.Sleep(time.Duration(50-c[0]) * time.Microsecond)
				return c[0], nil
			})
		require.NoError(s.T(), err)
		require.Equal(s.T(), items, got, "workers=%d", w)
	}
}

// TestEmptyBatch returns no results and no error.
func (s *ExecutorSuite) TestEmptyBatch() {
	got, err := parallel.Map(s.ctx, workersCfg(4), parallel.ChunkSlice([]int(nil), 2), sum)
	require.NoError(s.T(), err)
	require.Empty(s.T(), got)

	ok, err := parallel.All(s.ctx, workersCfg(4), parallel.ChunkSlice([]int(nil), 2),
		func(context.Context, []int) (bool, error) { return false, nil })
	require.NoError(s.T(), err)
	require.True(s.T(), ok)
}

// TestFailurePropagates checks fail-fast semantics and error wrapping.
func (s *ExecutorSuite) TestFailurePropagates() {
	boom := errors.New("boom")
	items := make([]int, 40)
	for _, w := range []int{1, 4} {
		var ran atomic.Int32
		got, err := parallel.Map(s.ctx, workersCfg(w), parallel.ChunkSlice(items, 1),
			func(_ context.Context, c []int) (int, error) {
				if ran.Add(1) == 3 {
					return 0, boom
				}
				return 1, nil
			})
		require.Nil(s.T(), got)
		require.ErrorIs(s.T(), err, parallel.ErrComputationFailure)
		require.ErrorIs(s.T(), err, boom)
		require.Less(s.T(), int(ran.Load()), len(items)+1)
	}
}

// TestPanicRecovered turns a panicking task into a computation failure.
func (s *ExecutorSuite) TestPanicRecovered() {
	for _, w := range []int{1, 3} {
		_, err := parallel.Map(s.ctx, workersCfg(w), parallel.ChunkSlice([]int{1, 2, 3}, 1),
			func(_ context.Context, c []int) (int, error) {
				if c[0] == 2 {
					panic("bad chunk")
				}
				return c[0], nil
			})
		require.ErrorIs(s.T(), err, parallel.ErrComputationFailure)
		require.Contains(s.T(), err.Error(), "bad chunk")
	}
}

// TestConcurrencyBounded records the peak number of in-flight tasks.
func (s *ExecutorSuite) TestConcurrencyBounded() {
	var inFlight, peak atomic.Int32
	items := make([]int, 64)
	_, err := parallel.Map(s.ctx, workersCfg(3), parallel.ChunkSlice(items, 1),
		func(_ context.Context, _ []int) (int, error) {
			n := inFlight.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(200 * time.Microsecond)
			inFlight.Add(-1)
			return 0, nil
		})
	require.NoError(s.T(), err)
	require.LessOrEqual(s.T(), peak.Load(), int32(3))
	require.GreaterOrEqual(s.T(), peak.Load(), int32(1))
}

// TestAllReduction covers AND semantics and early stop.
func (s *ExecutorSuite) TestAllReduction() {
	items := []int{2, 4, 6, 8, 10}
	even := func(_ context.Context, c []int) (bool, error) {
		for _, v := range c {
			if v%2 != 0 {
				return false, nil
			}
		}
		return true, nil
	}
	for _, w := range []int{1, 2, 5} {
		ok, err := parallel.All(s.ctx, workersCfg(w), parallel.ChunkSlice(items, 2), even)
		require.NoError(s.T(), err)
		require.True(s.T(), ok)

		ok, err = parallel.All(s.ctx, workersCfg(w), parallel.ChunkSlice(append([]int{1}, items...), 2), even)
		require.NoError(s.T(), err)
		require.False(s.T(), ok)
	}

	boom := errors.New("boom")
	_, err := parallel.All(s.ctx, workersCfg(2), parallel.ChunkSlice(items, 1),
		func(context.Context, []int) (bool, error) { return true, boom })
	require.ErrorIs(s.T(), err, boom)
}

// TestAllFalseVersusFailure pins the outcome when one chunk answers false
// and another fails.
func (s *ExecutorSuite) TestAllFalseVersusFailure() {
	boom := errors.New("boom")
	var calls atomic.Int32
	pred := func(_ context.Context, c []int) (bool, error) {
		calls.Add(1)
		if c[0] < 0 {
			return false, boom
		}
		return c[0] != 0, nil
	}

	// Inline: the earlier chunk decides and later chunks never run.
	ok, err := parallel.All(s.ctx, workersCfg(1), parallel.ChunkSlice([]int{0, -1}, 1), pred)
	require.NoError(s.T(), err)
	require.False(s.T(), ok)
	require.EqualValues(s.T(), 1, calls.Load())

	ok, err = parallel.All(s.ctx, workersCfg(1), parallel.ChunkSlice([]int{-1, 0}, 1), pred)
	require.ErrorIs(s.T(), err, boom)
	require.ErrorIs(s.T(), err, parallel.ErrComputationFailure)
	require.False(s.T(), ok)

	// Pooled: either outcome may win, but never true.
	for i := 0; i < 20; i++ {
		ok, err = parallel.All(s.ctx, workersCfg(4), parallel.ChunkSlice([]int{0, -1, 1, 1}, 1), pred)
		require.False(s.T(), ok)
		if err != nil {
			require.ErrorIs(s.T(), err, boom)
		}
	}
}

// TestCancelledContext reports the caller's cancellation.
func (s *ExecutorSuite) TestCancelledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()
	for _, w := range []int{1, 4} {
		_, err := parallel.Map(ctx, workersCfg(w), parallel.ChunkSlice([]int{1, 2, 3}, 1), sum)
		require.ErrorIs(s.T(), err, context.Canceled)
	}
}
