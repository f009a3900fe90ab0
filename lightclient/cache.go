package lightclient

import (
	"encoding/binary"

	"github.com/babylonlabs-io/sp1-ics07-tendermint/codec"
	"github.com/babylonlabs-io/sp1-ics07-tendermint/types"
)

// TransientCache is the per-transaction key->timestamp map described in
// spec.md §4.7. It is a gas optimisation, not a source of truth: its only
// correctness obligation is the absence of false positives, so every write
// must follow a successful verifier call in the same transaction.
//
// The spec models this on host-chain transient storage, which in many VMs
// survives a nested revert but is always cleared between transactions. A
// Go library has no such primitive, so this module follows the
// "explicit dictionary threaded through the call" strategy spec.md §9
// offers as the alternative: the host is expected to construct a fresh
// TransientCache at the start of every transaction (or reuse one across a
// batched multicall) and discard it at transaction end by simply dropping
// the reference — Clear lets a host reuse the allocation instead.
type TransientCache struct {
	entries map[string]uint64
}

// NewTransientCache returns an empty cache, ready for one transaction's
// worth of membership calls.
func NewTransientCache() *TransientCache {
	return &TransientCache{entries: make(map[string]uint64)}
}

// Clear empties the cache in place, for hosts that want to reuse the
// allocation across transactions instead of constructing a new one.
func (c *TransientCache) Clear() {
	for k := range c.entries {
		delete(c.entries, k)
	}
}

func cacheKey(proofHeight uint64, kv types.KVPair) (string, error) {
	var heightBytes [8]byte
	binary.BigEndian.PutUint64(heightBytes[:], proofHeight)
	kvBytes, err := kv.Marshal()
	if err != nil {
		return "", err
	}
	h := codec.Hash(append(heightBytes[:], kvBytes...))
	return string(h), nil
}

// put writes the cache entry for (proofHeight, kv) -> timestamp. Callers
// MUST only invoke this after all validation and the verifier call for the
// batch containing kv have already succeeded (spec.md §4.7 rationale:
// premature writes could poison the cache across failed nested calls on
// hosts where transient storage is not reverted).
func (c *TransientCache) put(proofHeight uint64, kv types.KVPair, timestamp uint64) error {
	key, err := cacheKey(proofHeight, kv)
	if err != nil {
		return err
	}
	c.entries[key] = timestamp
	return nil
}

// get reads the cached timestamp for (proofHeight, kv), returning
// ErrKeyValuePairNotInCache if absent (the zero-timestamp sentinel).
func (c *TransientCache) get(proofHeight uint64, kv types.KVPair) (uint64, error) {
	key, err := cacheKey(proofHeight, kv)
	if err != nil {
		return 0, err
	}
	ts, ok := c.entries[key]
	if !ok || ts == 0 {
		return 0, types.ErrKeyValuePairNotInCache.Wrapf("path=%v value=%x", kv.Path.KeyPath, kv.Value)
	}
	return ts, nil
}
