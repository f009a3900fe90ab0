package lightclient

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/babylonlabs-io/sp1-ics07-tendermint/types"
)

func TestTransientCache_PutGet(t *testing.T) {
	t.Parallel()

	cache := NewTransientCache()
	kv := types.NewKVPair([]byte("value"), "a", "b")

	_, err := cache.get(100, kv)
	require.ErrorIs(t, err, types.ErrKeyValuePairNotInCache)

	require.NoError(t, cache.put(100, kv, 12345))
	ts, err := cache.get(100, kv)
	require.NoError(t, err)
	require.Equal(t, uint64(12345), ts)

	// Same kv at a different height is a distinct entry.
	_, err = cache.get(200, kv)
	require.ErrorIs(t, err, types.ErrKeyValuePairNotInCache)
}

func TestTransientCache_Clear(t *testing.T) {
	t.Parallel()

	cache := NewTransientCache()
	kv := types.NewKVPair([]byte("value"), "a")
	require.NoError(t, cache.put(100, kv, 1))

	cache.Clear()

	_, err := cache.get(100, kv)
	require.ErrorIs(t, err, types.ErrKeyValuePairNotInCache)
}
