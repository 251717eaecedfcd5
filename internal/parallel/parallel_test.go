package parallel

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapPreservesIndexOrder(t *testing.T) {
	for _, workers := range []int{0, 1, 3, 16} {
		got, err := Map(context.Background(), workers, 100, func(i int) (int, error) {
			return i * i, nil
		})
		require.NoError(t, err)
		require.Len(t, got, 100)
		for i, v := range got {
			assert.Equal(t, i*i, v, "workers=%d index=%d", workers, i)
		}
	}
}

func TestMapEmpty(t *testing.T) {
	got, err := Map(context.Background(), 4, 0, func(i int) (string, error) {
		t.Fatal("fn must not be called")
		return "", nil
	})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMapRespectsWorkerLimit(t *testing.T) {
	var running, peak int32
	_, err := Map(context.Background(), 2, 50, func(i int) (struct{}, error) {
		n := atomic.AddInt32(&running, 1)
		for {
			p := atomic.LoadInt32(&peak)
			if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
				break
			}
		}
		atomic.AddInt32(&running, -1)
		return struct{}{}, nil
	})
	require.NoError(t, err)
	assert.LessOrEqual(t, atomic.LoadInt32(&peak), int32(2))
}

func TestMapReturnsFirstError(t *testing.T) {
	boom := errors.New("boom")
	got, err := Map(context.Background(), 4, 20, func(i int) (int, error) {
		if i == 7 {
			return 0, boom
		}
		return i, nil
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, got)
}

func TestMapRecoversPanics(t *testing.T) {
	got, err := Map(context.Background(), 2, 5, func(i int) (int, error) {
		if i == 3 {
			panic("invariant violated")
		}
		return i, nil
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "task 3 panicked")
	assert.Nil(t, got)
}
