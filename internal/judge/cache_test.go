package judge

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/judgehub-2025.net/internal/domain"
)

func TestResultCacheSingleFlight(t *testing.T) {
	var calls int32
	cache := &ResultCache{}
	fetch := func(ctx context.Context) (Snapshot, error) {
		atomic.AddInt32(&calls, 1)
		return Snapshot{
			Problems: []domain.Problem{{ID: "atcoder_abc100_A"}},
		}, nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			snap, err := cache.Get(context.Background(), fetch)
			assert.NoError(t, err)
			assert.Len(t, snap.Problems, 1)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestResultCacheCachesError(t *testing.T) {
	cache := &ResultCache{}
	boom := errors.New("upstream down")
	calls := 0

	_, err := cache.Get(context.Background(), func(ctx context.Context) (Snapshot, error) {
		calls++
		return Snapshot{}, boom
	})
	require.ErrorIs(t, err, boom)

	_, err = cache.Get(context.Background(), func(ctx context.Context) (Snapshot, error) {
		calls++
		return Snapshot{}, nil
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}

func TestNumToAlphabet(t *testing.T) {
	cases := map[int]string{
		0:   "",
		1:   "A",
		2:   "B",
		26:  "Z",
		27:  "AA",
		28:  "AB",
		52:  "AZ",
		53:  "BA",
		702: "ZZ",
		703: "AAA",
	}
	for n, want := range cases {
		assert.Equal(t, want, NumToAlphabet(n), "n=%d", n)
	}
}
