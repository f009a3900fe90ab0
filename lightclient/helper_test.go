package lightclient

import (
	"testing"

	commitmenttypes "github.com/cosmos/ibc-go/v8/modules/core/23-commitment/types"

	"github.com/babylonlabs-io/sp1-ics07-tendermint/types"
)

var (
	testUpdateClientVKey              = [32]byte{1}
	testMembershipVKey                = [32]byte{2}
	testUpdateClientAndMembershipVKey = [32]byte{3}
	testMisbehaviourVKey              = [32]byte{4}
)

func fakeHash(b byte) []byte {
	h := make([]byte, 32)
	for i := range h {
		h[i] = b
	}
	return h
}

func testClientState(latest uint64, frozen bool) types.ClientState {
	return types.ClientState{
		ChainId:         "test-chain",
		TrustLevel:      types.NewFraction(1, 3),
		LatestHeight:    types.NewHeight(1, latest),
		TrustingPeriod:  1000,
		UnbondingPeriod: 2000,
		IsFrozen:        frozen,
	}
}

func testConsensusState(ts uint64, rootByte byte) types.ConsensusState {
	return types.ConsensusState{
		Timestamp:          ts,
		Root:               commitmenttypes.MerkleRoot{Hash: fakeHash(rootByte)},
		NextValidatorsHash: fakeHash(rootByte + 1),
	}
}

// newTestClient builds a Client trusting height 100 with a known consensus
// state and the fixed test verification keys, backed by verifier that
// always succeeds unless reconfigured.
func newTestClient(t *testing.T, v *mockVerifier) (*Client, types.ConsensusState) {
	t.Helper()

	initial := testConsensusState(1000, 0xAA)
	var initialHash [32]byte
	h, _ := initial.Hash()
	copy(initialHash[:], h)

	c, err := NewClient(Config{
		UpdateClientVKey:              testUpdateClientVKey,
		MembershipVKey:                testMembershipVKey,
		UpdateClientAndMembershipVKey: testUpdateClientAndMembershipVKey,
		MisbehaviourVKey:              testMisbehaviourVKey,
		Verifier:                      v,
		InitialClientState:            testClientState(100, false),
		InitialConsensusStateHash:     initialHash,
	})
	if err != nil {
		panic(err)
	}
	return c, initial
}
