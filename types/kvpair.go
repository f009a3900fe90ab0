package types

import (
	commitmenttypes "github.com/cosmos/ibc-go/v8/modules/core/23-commitment/types"

	"github.com/babylonlabs-io/sp1-ics07-tendermint/codec"
)

// KVPair is a single (non-)membership entry inside a batched proof: a path
// (sequence of byte-strings, represented with ibc-go's own MerklePath so it
// composes with the rest of the ICS-23/IBC path machinery) and the value
// claimed to live there. An empty Value encodes non-membership.
type KVPair struct {
	Path  commitmenttypes.MerklePath
	Value []byte
}

// NewKVPair builds a KVPair from raw path segments.
func NewKVPair(value []byte, pathSegments ...string) KVPair {
	return KVPair{Path: commitmenttypes.NewMerklePath(pathSegments...), Value: value}
}

// PathEquals reports whether kv's path is identical to other: same number
// of segments, each byte-for-byte equal. This is plain slice/string
// equality, not a Merkle-prefixed comparison.
func (kv KVPair) PathEquals(other commitmenttypes.MerklePath) bool {
	if len(kv.Path.KeyPath) != len(other.KeyPath) {
		return false
	}
	for i := range kv.Path.KeyPath {
		if kv.Path.KeyPath[i] != other.KeyPath[i] {
			return false
		}
	}
	return true
}

// ValueEquals reports whether kv's value is byte-for-byte equal to want.
func (kv KVPair) ValueEquals(want []byte) bool {
	if len(kv.Value) != len(want) {
		return false
	}
	for i := range kv.Value {
		if kv.Value[i] != want[i] {
			return false
		}
	}
	return true
}

// Marshal canonically encodes the pair in field order (path, value).
func (kv KVPair) Marshal() ([]byte, error) {
	e := codec.NewEncoder()
	if err := e.Message(1, &kv.Path); err != nil {
		return nil, err
	}
	e.Bytes(2, kv.Value)
	return e.Finish(), nil
}

// Unmarshal decodes bytes produced by Marshal.
func (kv *KVPair) Unmarshal(data []byte) error {
	d := codec.NewDecoder(data)
	for {
		field, wireType, ok, err := d.Next()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		switch field {
		case 1:
			b, err := d.Bytes()
			if err != nil {
				return err
			}
			if err := kv.Path.Unmarshal(b); err != nil {
				return err
			}
		case 2:
			b, err := d.Bytes()
			if err != nil {
				return err
			}
			kv.Value = b
		default:
			if err := d.Skip(wireType); err != nil {
				return err
			}
		}
	}
}
