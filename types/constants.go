package types

import "time"

const (
	// AllowedClockDrift bounds how stale a proof's declared time may be
	// relative to the host's clock, preventing replay of an old proof in a
	// later block.
	AllowedClockDrift = 30 * time.Minute

	// MinKVPairsPerProof and MaxKVPairsPerProof bound the size of a
	// batched membership proof.
	MinKVPairsPerProof = 1
	MaxKVPairsPerProof = 256
)
