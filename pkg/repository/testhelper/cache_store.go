package testhelper

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/docswatch/pkg/domain/interfaces"
	"github.com/m-mizutani/gt"
)

// Clock moves the time observed by a CacheStore forward.
type Clock func(d time.Duration)

// TestAll runs all test cases for CacheStore
// This is the main entry point for testing any CacheStore implementation
func TestAll(t *testing.T, store interfaces.CacheStore, advance Clock) {
	t.Run("SetAndGet", func(t *testing.T) {
		TestSetAndGet(t, store)
	})
	t.Run("Miss", func(t *testing.T) {
		TestMiss(t, store)
	})
	t.Run("Overwrite", func(t *testing.T) {
		TestOverwrite(t, store)
	})
	t.Run("Expire", func(t *testing.T) {
		TestExpire(t, store, advance)
	})
	t.Run("ValueIsCopied", func(t *testing.T) {
		TestValueIsCopied(t, store)
	})
}

func newKey() string {
	return fmt.Sprintf("MicrosoftDocs/azure-docs@%s:commits", uuid.NewString())
}

// TestSetAndGet tests that a stored value is returned as is
func TestSetAndGet(t *testing.T, store interfaces.CacheStore) {
	ctx := context.Background()
	key := newKey()

	gt.NoError(t, store.Set(ctx, key, []byte(`[{"sha":"0123456"}]`), time.Minute))

	value, found, err := store.Get(ctx, key)
	gt.NoError(t, err)
	gt.True(t, found)
	gt.V(t, string(value)).Equal(`[{"sha":"0123456"}]`)
}

// TestMiss tests that an unknown key is a miss, not an error
func TestMiss(t *testing.T, store interfaces.CacheStore) {
	value, found, err := store.Get(context.Background(), newKey())
	gt.NoError(t, err)
	gt.False(t, found)
	gt.V(t, len(value)).Equal(0)
}

// TestOverwrite tests that Set replaces the whole entry
func TestOverwrite(t *testing.T, store interfaces.CacheStore) {
	ctx := context.Background()
	key := newKey()

	gt.NoError(t, store.Set(ctx, key, []byte("first"), time.Minute))
	gt.NoError(t, store.Set(ctx, key, []byte("second"), time.Minute))

	value, found, err := store.Get(ctx, key)
	gt.NoError(t, err)
	gt.True(t, found)
	gt.V(t, string(value)).Equal("second")
}

// TestExpire tests that an entry is absent once its ttl has elapsed
func TestExpire(t *testing.T, store interfaces.CacheStore, advance Clock) {
	ctx := context.Background()
	key := newKey()

	gt.NoError(t, store.Set(ctx, key, []byte("value"), 10*time.Second))

	advance(9 * time.Second)
	_, found, err := store.Get(ctx, key)
	gt.NoError(t, err)
	gt.True(t, found)

	advance(time.Second)
	_, found, err = store.Get(ctx, key)
	gt.NoError(t, err)
	gt.False(t, found)
}

// TestValueIsCopied tests that mutating a returned value does not change the stored entry
func TestValueIsCopied(t *testing.T, store interfaces.CacheStore) {
	ctx := context.Background()
	key := newKey()

	input := []byte("value")
	gt.NoError(t, store.Set(ctx, key, input, time.Minute))
	input[0] = 'X'

	value, _, err := store.Get(ctx, key)
	gt.NoError(t, err)
	value[1] = 'Y'

	again, _, err := store.Get(ctx, key)
	gt.NoError(t, err)
	gt.V(t, string(again)).Equal("value")
}
