package lightclient

import (
	"time"

	"go.uber.org/zap"

	"github.com/babylonlabs-io/sp1-ics07-tendermint/types"
)

// Misbehaviour implements spec.md §4.6: evidence of two headers, each
// individually trusted against a previously-accepted consensus state, that
// conflict with one another. The two trusted heights are not required to
// differ. Unlike the update and
// combined handlers, there is nothing to apply on success besides the
// freeze — the whole point of this proof is the freeze.
func (c *Client) Misbehaviour(msg types.MsgSubmitMisbehaviour, now time.Time) error {
	if err := c.notFrozen(); err != nil {
		return err
	}

	if msg.Sp1Proof.VKey != c.misbehaviourVKey {
		return types.ErrVerificationKeyMismatch.Wrapf("expected %x, got %x", c.misbehaviourVKey, msg.Sp1Proof.VKey)
	}

	var output types.MisbehaviourOutput
	if err := output.Unmarshal(msg.Sp1Proof.PublicValues); err != nil {
		return err
	}

	if err := c.validateClientStateAndTime(output.ClientState, output.Time, now); err != nil {
		return err
	}

	matches1, err := c.consensusStateHashMatches(output.TrustedHeight1.RevisionHeight, output.TrustedConsensusState1)
	if err != nil {
		return err
	}
	if !matches1 {
		return types.ErrConsensusStateHashMismatch.Wrapf("trusted height %d", output.TrustedHeight1.RevisionHeight)
	}

	matches2, err := c.consensusStateHashMatches(output.TrustedHeight2.RevisionHeight, output.TrustedConsensusState2)
	if err != nil {
		return err
	}
	if !matches2 {
		return types.ErrConsensusStateHashMismatch.Wrapf("trusted height %d", output.TrustedHeight2.RevisionHeight)
	}

	if err := c.verifier.Verify(msg.Sp1Proof.VKey, msg.Sp1Proof.PublicValues, msg.Sp1Proof.Proof); err != nil {
		return err
	}

	c.setFrozen()
	c.logger.Warn("misbehaviour submitted, client frozen",
		zap.Uint64("height1", output.TrustedHeight1.RevisionHeight),
		zap.Uint64("height2", output.TrustedHeight2.RevisionHeight),
	)

	return nil
}
