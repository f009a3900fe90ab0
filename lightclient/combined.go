package lightclient

import (
	"time"

	"go.uber.org/zap"

	"github.com/babylonlabs-io/sp1-ics07-tendermint/types"
	"github.com/babylonlabs-io/sp1-ics07-tendermint/util"
)

// combinedUpdateAndMembership implements spec.md §4.5: a single proof that
// updates the client and proves a KV batch against the resulting consensus
// state in one shot. Unlike the plain update handler, the verifier is
// called BEFORE any side effect is applied — the combined program proves
// both the update and the membership batch together, so there is no
// cheaper partial check to short-circuit on, and a misbehaviour verdict
// here still needs the freeze to survive the call returning an error (see
// the durability note below).
func (c *Client) combinedUpdateAndMembership(msg types.MsgMembership, inner []byte, cache *TransientCache, now time.Time) (uint64, error) {
	var proof types.SP1MembershipAndUpdateClientProof
	if err := proof.Unmarshal(inner); err != nil {
		return 0, err
	}

	if proof.Sp1Proof.VKey != c.updateClientAndMembershipVKey {
		return 0, types.ErrVerificationKeyMismatch.Wrapf("expected %x, got %x", c.updateClientAndMembershipVKey, proof.Sp1Proof.VKey)
	}

	var output types.UcAndMembershipOutput
	if err := output.Unmarshal(proof.Sp1Proof.PublicValues); err != nil {
		return 0, err
	}
	if err := util.ValidateKVPairsLength(len(output.KvPairs)); err != nil {
		return 0, err
	}

	uc := output.UpdateClientOutput
	if uc.NewHeight.RevisionHeight != msg.ProofHeight.RevisionHeight {
		return 0, types.ErrProofHeightMismatch.Wrapf("expected %d, got %d", msg.ProofHeight.RevisionHeight, uc.NewHeight.RevisionHeight)
	}

	if err := c.validateClientStateAndTime(uc.ClientState, uc.Time, now); err != nil {
		return 0, err
	}

	matches, err := c.consensusStateHashMatches(uc.TrustedHeight.RevisionHeight, uc.TrustedConsensusState)
	if err != nil {
		return 0, err
	}
	if !matches {
		return 0, types.ErrConsensusStateHashMismatch.Wrapf("trusted height %d", uc.TrustedHeight.RevisionHeight)
	}

	result, err := c.checkUpdateResult(uc)
	if err != nil {
		return 0, err
	}

	if err := c.verifier.Verify(proof.Sp1Proof.VKey, proof.Sp1Proof.PublicValues, proof.Sp1Proof.Proof); err != nil {
		return 0, err
	}

	switch result {
	case types.UpdateResultUpdate:
		c.advanceLatestHeight(uc.NewHeight)
		if err := c.setConsensusStateHash(uc.NewHeight.RevisionHeight, uc.NewConsensusState); err != nil {
			return 0, err
		}
	case types.UpdateResultMisbehaviour:
		// The update half of this proof is self-contradictory: freeze the
		// client so the contradiction is recorded even though this call
		// itself reports failure. Per spec.md §4.5 this freeze is NOT
		// expected to be unwound by the host reverting the transaction —
		// the combined handler's misbehaviour branch is the one place the
		// "verifier failure reverts everything" rule (spec.md §4.3) does
		// not apply, since here the state mutation is the intended output
		// of the call, not a side effect pending verifier confirmation.
		c.setFrozen()
		c.logger.Warn("combined update-and-membership: misbehaviour detected, freezing", zap.Uint64("height", uc.NewHeight.RevisionHeight))
		return 0, types.ErrCannotHandleMisbehavior
	case types.UpdateResultNoOp:
		// fall through to the membership read below without touching state
	}

	found, ok := findKVPair(output.KvPairs, msg.Path)
	if !ok {
		return 0, types.ErrMembershipProofKeyNotFound.Wrapf("path %v", msg.Path.KeyPath)
	}
	if !found.ValueEquals(msg.Value) {
		return 0, types.ErrMembershipProofValueMismatch.Wrapf("path %v", msg.Path.KeyPath)
	}

	if err := c.validateMembershipOutput(uc.NewConsensusState.Root.Hash, uc.NewHeight.RevisionHeight, uc.NewConsensusState); err != nil {
		return 0, err
	}

	if len(output.KvPairs) > 1 {
		if err := cacheBatch(cache, msg.ProofHeight.RevisionHeight, output.KvPairs, uc.NewConsensusState.Timestamp); err != nil {
			return 0, err
		}
	}

	c.logger.Debug("combined update-and-membership",
		zap.String("result", result.String()),
		zap.Uint64("height", uc.NewHeight.RevisionHeight),
		zap.Int("batch_size", len(output.KvPairs)),
	)

	return uc.NewConsensusState.Timestamp, nil
}
