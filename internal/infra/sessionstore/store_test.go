//go:build unit

package sessionstore_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"table-booking/internal/infra"
	"table-booking/internal/infra/sessionstore"
	"table-booking/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var logger = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestStore(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC))
	var evicted []string
	store := sessionstore.New(time.Minute, clk, logger, func(v string) { evicted = append(evicted, v) })

	t.Run("put and get", func(t *testing.T) {
		id := store.Put("a")
		got, err := store.Get(id)
		require.NoError(t, err)
		assert.Equal(t, "a", got)
		assert.Equal(t, 1, store.Len())
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := store.Get(uuid.New())
		assert.True(t, infra.IsKind(err, infra.KindNotFound))

		_, err = store.Delete(uuid.New())
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("delete does not evict", func(t *testing.T) {
		id := store.Put("b")
		got, err := store.Delete(id)
		require.NoError(t, err)
		assert.Equal(t, "b", got)

		_, err = store.Get(id)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		assert.Empty(t, evicted)
	})

	t.Run("use keeps an entry alive", func(t *testing.T) {
		id := store.Put("c")
		clk.Add(50 * time.Second)
		_, err := store.Get(id)
		require.NoError(t, err)

		clk.Add(50 * time.Second)
		_, err = store.Get(id)
		require.NoError(t, err)
	})

	t.Run("expired entry is evicted on get", func(t *testing.T) {
		evicted = nil
		id := store.Put("d")
		clk.Add(2 * time.Minute)

		_, err := store.Get(id)

		assert.True(t, infra.IsKind(err, infra.KindExpired))
		assert.Contains(t, evicted, "d")
	})

	t.Run("sweep evicts every idle entry", func(t *testing.T) {
		evicted = nil
		store.Put("e")
		store.Put("f")
		clk.Add(2 * time.Minute)
		fresh := store.Put("g")

		n := store.Sweep()

		assert.GreaterOrEqual(t, n, 2)
		assert.Subset(t, evicted, []string{"e", "f"})
		assert.NotContains(t, evicted, "g")
		_, err := store.Get(fresh)
		require.NoError(t, err)
	})
}

func TestStoreWithoutTTL(t *testing.T) {
	clk := clock.NewMockClock(time.Now())
	store := sessionstore.New[int](0, clk, nil, nil)

	id := store.Put(7)
	clk.Add(365 * 24 * time.Hour)

	assert.Zero(t, store.Sweep())
	got, err := store.Get(id)
	require.NoError(t, err)
	assert.Equal(t, 7, got)
}

func TestStoreRunStopsWithContext(t *testing.T) {
	store := sessionstore.New[int](time.Millisecond, clock.NewRealClock(), logger, nil)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		store.Run(ctx, time.Millisecond)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
