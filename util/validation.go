// Package util holds small, independently-tested validation helpers shared
// across the light client packages.
package util

import (
	"github.com/babylonlabs-io/sp1-ics07-tendermint/types"
)

// ValidateKVPairsLength returns an error if n falls outside
// [MinKVPairsPerProof, MaxKVPairsPerProof]. Both the single-height and
// combined membership handlers apply this to the batch they decode from a
// proof's public values before trusting any of its entries.
func ValidateKVPairsLength(n int) error {
	if n < types.MinKVPairsPerProof || n > types.MaxKVPairsPerProof {
		return types.ErrLengthOutOfRange.Wrapf(
			"kv pairs length %d out of range [%d, %d]", n, types.MinKVPairsPerProof, types.MaxKVPairsPerProof)
	}
	return nil
}
