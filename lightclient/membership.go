package lightclient

import (
	"time"

	"go.uber.org/zap"

	commitmenttypes "github.com/cosmos/ibc-go/v8/modules/core/23-commitment/types"

	"github.com/babylonlabs-io/sp1-ics07-tendermint/types"
	"github.com/babylonlabs-io/sp1-ics07-tendermint/util"
)

// findKVPair does the batch linear scan spec.md §4.4.1 step 4 describes:
// the first entry whose path matches want is the answer, full stop.
// Duplicate paths later in the slice are never consulted, which is what
// makes the scan's outcome independent of any permutation that preserves
// each path's first occurrence (spec.md P4).
func findKVPair(kvPairs []types.KVPair, want commitmenttypes.MerklePath) (types.KVPair, bool) {
	for _, kv := range kvPairs {
		if kv.PathEquals(want) {
			return kv, true
		}
	}
	return types.KVPair{}, false
}

// Membership implements spec.md §4.4: serve from the transient cache when
// msg.Proof is empty, otherwise decode and dispatch on the tagged proof
// variant.
func (c *Client) Membership(msg types.MsgMembership, cache *TransientCache, now time.Time) (uint64, error) {
	if err := c.notFrozen(); err != nil {
		return 0, err
	}

	if len(msg.Proof) == 0 {
		return cache.get(msg.ProofHeight.RevisionHeight, types.KVPair{Path: msg.Path, Value: msg.Value})
	}

	var proof types.MembershipProof
	if err := proof.Unmarshal(msg.Proof); err != nil {
		return 0, err
	}

	switch proof.ProofType {
	case types.MembershipProofTypeSP1MembershipProof:
		return c.singleHeightMembership(msg, proof.Proof, cache, now)
	case types.MembershipProofTypeSP1MembershipAndUpdateClientProof:
		return c.combinedUpdateAndMembership(msg, proof.Proof, cache, now)
	default:
		return 0, types.ErrUnknownMembershipProofType.Wrapf("tag %d", proof.ProofType)
	}
}

// singleHeightMembership implements spec.md §4.4.1.
func (c *Client) singleHeightMembership(msg types.MsgMembership, inner []byte, cache *TransientCache, now time.Time) (uint64, error) {
	var sp1mp types.SP1MembershipProof
	if err := sp1mp.Unmarshal(inner); err != nil {
		return 0, err
	}

	if sp1mp.Sp1Proof.VKey != c.membershipVKey {
		return 0, types.ErrVerificationKeyMismatch.Wrapf("expected %x, got %x", c.membershipVKey, sp1mp.Sp1Proof.VKey)
	}

	var output types.MembershipOutput
	if err := output.Unmarshal(sp1mp.Sp1Proof.PublicValues); err != nil {
		return 0, err
	}
	if err := util.ValidateKVPairsLength(len(output.KvPairs)); err != nil {
		return 0, err
	}

	found, ok := findKVPair(output.KvPairs, msg.Path)
	if !ok {
		return 0, types.ErrMembershipProofKeyNotFound.Wrapf("path %v", msg.Path.KeyPath)
	}
	if !found.ValueEquals(msg.Value) {
		return 0, types.ErrMembershipProofValueMismatch.Wrapf("path %v", msg.Path.KeyPath)
	}

	if err := c.validateMembershipOutput(output.CommitmentRoot, msg.ProofHeight.RevisionHeight, sp1mp.TrustedConsensusState); err != nil {
		return 0, err
	}

	if err := c.verifier.Verify(sp1mp.Sp1Proof.VKey, sp1mp.Sp1Proof.PublicValues, sp1mp.Sp1Proof.Proof); err != nil {
		return 0, err
	}

	if len(output.KvPairs) > 1 {
		if err := cacheBatch(cache, msg.ProofHeight.RevisionHeight, output.KvPairs, sp1mp.TrustedConsensusState.Timestamp); err != nil {
			return 0, err
		}
	}

	c.logger.Debug("membership",
		zap.Uint64("height", msg.ProofHeight.RevisionHeight),
		zap.Int("batch_size", len(output.KvPairs)),
	)

	return sp1mp.TrustedConsensusState.Timestamp, nil
}

// cacheBatch populates the transient cache for every pair in a verified
// batch, to be called only once the batch's verifier call has succeeded
// (spec.md §4.7).
func cacheBatch(cache *TransientCache, proofHeight uint64, kvPairs []types.KVPair, timestamp uint64) error {
	for _, kv := range kvPairs {
		if err := cache.put(proofHeight, kv, timestamp); err != nil {
			return err
		}
	}
	return nil
}
