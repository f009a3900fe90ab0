package lightclient

import (
	"time"

	"go.uber.org/zap"

	"github.com/babylonlabs-io/sp1-ics07-tendermint/types"
)

// checkUpdateResult decides, purely from currently-stored state, what
// applying output would mean (spec.md §4.3 "checkUpdateResult"). It never
// touches the verifier.
func (c *Client) checkUpdateResult(output types.UpdateClientOutput) (types.UpdateResult, error) {
	h := output.NewHeight.RevisionHeight
	stored, ok := c.consensusStateHashes[h]
	if !ok || len(stored) == 0 {
		return types.UpdateResultUpdate, nil
	}

	newHash, err := output.NewConsensusState.Hash()
	if err != nil {
		return 0, err
	}
	if string(newHash) != string(stored) {
		return types.UpdateResultMisbehaviour, nil
	}
	if output.TrustedConsensusState.Timestamp >= output.NewConsensusState.Timestamp {
		return types.UpdateResultMisbehaviour, nil
	}
	return types.UpdateResultNoOp, nil
}

// UpdateClient implements spec.md §4.3: decode and validate msg, compute
// the update result from locally stored state, apply the corresponding
// side effects, and only then call the verifier (a verifier failure is
// expected to revert the whole host transaction, unwinding any side
// effects already applied here).
func (c *Client) UpdateClient(msg types.MsgUpdateClient, now time.Time) (types.UpdateResult, error) {
	if err := c.notFrozen(); err != nil {
		return 0, err
	}

	if msg.Sp1Proof.VKey != c.updateClientVKey {
		return 0, types.ErrVerificationKeyMismatch.Wrapf("expected %x, got %x", c.updateClientVKey, msg.Sp1Proof.VKey)
	}

	var output types.UpdateClientOutput
	if err := output.Unmarshal(msg.Sp1Proof.PublicValues); err != nil {
		return 0, err
	}

	if err := c.validateClientStateAndTime(output.ClientState, output.Time, now); err != nil {
		return 0, err
	}

	matches, err := c.consensusStateHashMatches(output.TrustedHeight.RevisionHeight, output.TrustedConsensusState)
	if err != nil {
		return 0, err
	}
	if !matches {
		return 0, types.ErrConsensusStateHashMismatch.Wrapf("trusted height %d", output.TrustedHeight.RevisionHeight)
	}

	result, err := c.checkUpdateResult(output)
	if err != nil {
		return 0, err
	}

	switch result {
	case types.UpdateResultUpdate:
		c.advanceLatestHeight(output.NewHeight)
		if err := c.setConsensusStateHash(output.NewHeight.RevisionHeight, output.NewConsensusState); err != nil {
			return 0, err
		}
	case types.UpdateResultMisbehaviour:
		c.setFrozen()
	case types.UpdateResultNoOp:
		c.logger.Debug("update client: no-op, skipping verifier", zap.Uint64("height", output.NewHeight.RevisionHeight))
		return types.UpdateResultNoOp, nil
	}

	if err := c.verifier.Verify(msg.Sp1Proof.VKey, msg.Sp1Proof.PublicValues, msg.Sp1Proof.Proof); err != nil {
		return 0, err
	}

	c.logger.Info("update client",
		zap.String("result", result.String()),
		zap.Uint64("new_height", output.NewHeight.RevisionHeight),
	)

	return result, nil
}
