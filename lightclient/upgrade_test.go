package lightclient

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/babylonlabs-io/sp1-ics07-tendermint/types"
)

func TestUpgradeClient_NotSupported(t *testing.T) {
	t.Parallel()

	v := &mockVerifier{}
	c, _ := newTestClient(t, v)

	err := c.UpgradeClient(types.ClientState{}, types.ConsensusState{})
	require.ErrorIs(t, err, types.ErrFeatureNotSupported)
}

func TestUpgradeClient_FrozenGate(t *testing.T) {
	t.Parallel()

	v := &mockVerifier{}
	c, _ := newTestClient(t, v)
	c.setFrozen()

	err := c.UpgradeClient(types.ClientState{}, types.ConsensusState{})
	require.ErrorIs(t, err, types.ErrFrozenClientState)
}
