package lightclient

import (
	"time"

	"github.com/babylonlabs-io/sp1-ics07-tendermint/types"
)

// validateClientStateAndTime checks a proof's declared client state and
// time against the locally stored client state (spec.md §4.2). It
// deliberately does not compare LatestHeight or IsFrozen: the prover's view
// of those is allowed to lag the on-chain view.
func (c *Client) validateClientStateAndTime(publicClientState types.ClientState, proofTime uint64, now time.Time) error {
	proofTimestamp := time.Unix(int64(proofTime), 0)
	if proofTimestamp.After(now) {
		return types.ErrProofIsInTheFuture.Wrapf("proof time %d is after now %d", proofTime, now.Unix())
	}
	if now.Sub(proofTimestamp) > types.AllowedClockDrift {
		return types.ErrProofIsTooOld.Wrapf("proof time %d is more than %s old (now %d)", proofTime, types.AllowedClockDrift, now.Unix())
	}

	stored := c.clientState
	if publicClientState.ChainId != stored.ChainId {
		return types.ErrChainIdMismatch.Wrapf("expected %s, got %s", stored.ChainId, publicClientState.ChainId)
	}
	if !types.FractionEqual(publicClientState.TrustLevel, stored.TrustLevel) {
		return types.ErrTrustThresholdMismatch.Wrapf("expected %+v, got %+v", stored.TrustLevel, publicClientState.TrustLevel)
	}
	if publicClientState.TrustingPeriod != stored.TrustingPeriod {
		return types.ErrTrustingPeriodMismatch.Wrapf("expected %d, got %d", stored.TrustingPeriod, publicClientState.TrustingPeriod)
	}
	if publicClientState.UnbondingPeriod != stored.UnbondingPeriod {
		return types.ErrUnbondingPeriodMismatch.Wrapf("expected %d, got %d", stored.UnbondingPeriod, publicClientState.UnbondingPeriod)
	}

	return nil
}

// validateMembershipOutput checks that trustedConsensusState is indeed the
// consensus state trusted at proofHeight, and that the proof's declared
// commitment root matches it (spec.md §4.2).
func (c *Client) validateMembershipOutput(outputRoot []byte, proofHeight uint64, trustedConsensusState types.ConsensusState) error {
	matches, err := c.consensusStateHashMatches(proofHeight, trustedConsensusState)
	if err != nil {
		return err
	}
	if !matches {
		return types.ErrConsensusStateHashMismatch.Wrapf("height %d", proofHeight)
	}
	if string(outputRoot) != string(trustedConsensusState.Root.Hash) {
		return types.ErrConsensusStateRootMismatch.Wrapf("height %d", proofHeight)
	}
	return nil
}
