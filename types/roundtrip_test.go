package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	commitmenttypes "github.com/cosmos/ibc-go/v8/modules/core/23-commitment/types"

	"github.com/babylonlabs-io/sp1-ics07-tendermint/types"
)

func fakeHash(b byte) []byte {
	h := make([]byte, 32)
	for i := range h {
		h[i] = b
	}
	return h
}

func testClientState() types.ClientState {
	return types.ClientState{
		ChainId:         "test-chain",
		TrustLevel:      types.NewFraction(1, 3),
		LatestHeight:    types.NewHeight(1, 100),
		TrustingPeriod:  1000,
		UnbondingPeriod: 2000,
		IsFrozen:        false,
	}
}

func testConsensusState() types.ConsensusState {
	return types.ConsensusState{
		Timestamp:          12345,
		Root:               commitmenttypes.MerkleRoot{Hash: fakeHash(1)},
		NextValidatorsHash: fakeHash(2),
	}
}

func TestClientStateRoundTrip(t *testing.T) {
	t.Parallel()

	cases := []types.ClientState{
		testClientState(),
		{ChainId: "frozen-chain", TrustLevel: types.NewFraction(2, 3), LatestHeight: types.NewHeight(0, 1), TrustingPeriod: 1, UnbondingPeriod: 1, IsFrozen: true},
	}

	for _, cs := range cases {
		b, err := cs.Marshal()
		require.NoError(t, err)

		var got types.ClientState
		require.NoError(t, got.Unmarshal(b))
		require.Equal(t, cs, got)
	}
}

func TestClientStateValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		cs        types.ClientState
		expectErr error
	}{
		{name: "valid", cs: testClientState(), expectErr: nil},
		{
			name:      "trusting period too long",
			cs:        types.ClientState{ChainId: "c", TrustLevel: types.NewFraction(1, 3), TrustingPeriod: 100, UnbondingPeriod: 50},
			expectErr: types.ErrTrustingPeriodTooLong,
		},
		{
			name:      "empty chain id",
			cs:        types.ClientState{ChainId: "", TrustLevel: types.NewFraction(1, 3), TrustingPeriod: 1, UnbondingPeriod: 1},
			expectErr: types.ErrInvalidClientState,
		},
		{
			name:      "zero denominator",
			cs:        types.ClientState{ChainId: "c", TrustLevel: types.NewFraction(1, 0), TrustingPeriod: 1, UnbondingPeriod: 1},
			expectErr: types.ErrInvalidClientState,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.cs.Validate()
			if tt.expectErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.expectErr)
		})
	}
}

func TestConsensusStateRoundTrip(t *testing.T) {
	t.Parallel()

	cs := testConsensusState()
	b, err := cs.Marshal()
	require.NoError(t, err)

	var got types.ConsensusState
	require.NoError(t, got.Unmarshal(b))
	require.Equal(t, cs, got)
}

func TestConsensusStateHashDeterministic(t *testing.T) {
	t.Parallel()

	cs := testConsensusState()
	h1, err := cs.Hash()
	require.NoError(t, err)
	h2, err := cs.Hash()
	require.NoError(t, err)
	require.Equal(t, h1, h2)

	other := testConsensusState()
	other.Timestamp++
	h3, err := other.Hash()
	require.NoError(t, err)
	require.NotEqual(t, h1, h3)
}

func TestKVPairRoundTrip(t *testing.T) {
	t.Parallel()

	kv := types.NewKVPair([]byte("value"), "ibc", "client", "state")
	b, err := kv.Marshal()
	require.NoError(t, err)

	var got types.KVPair
	require.NoError(t, got.Unmarshal(b))
	require.True(t, got.PathEquals(kv.Path))
	require.True(t, got.ValueEquals(kv.Value))
}

func TestUpdateClientOutputRoundTrip(t *testing.T) {
	t.Parallel()

	out := types.UpdateClientOutput{
		TrustedHeight:         types.NewHeight(1, 100),
		TrustedConsensusState: testConsensusState(),
		NewHeight:             types.NewHeight(1, 200),
		NewConsensusState:     testConsensusState(),
		ClientState:           testClientState(),
		Time:                  999,
	}

	b, err := out.Marshal()
	require.NoError(t, err)

	var got types.UpdateClientOutput
	require.NoError(t, got.Unmarshal(b))
	require.Equal(t, out, got)
}

func TestMembershipOutputRoundTrip(t *testing.T) {
	t.Parallel()

	out := types.MembershipOutput{
		CommitmentRoot: fakeHash(7),
		KvPairs: []types.KVPair{
			types.NewKVPair([]byte("v1"), "a", "b"),
			types.NewKVPair([]byte("v2"), "c"),
		},
	}

	b, err := out.Marshal()
	require.NoError(t, err)

	var got types.MembershipOutput
	require.NoError(t, got.Unmarshal(b))
	require.Equal(t, len(out.KvPairs), len(got.KvPairs))
	for i := range out.KvPairs {
		require.True(t, got.KvPairs[i].PathEquals(out.KvPairs[i].Path))
		require.True(t, got.KvPairs[i].ValueEquals(out.KvPairs[i].Value))
	}
	require.Equal(t, out.CommitmentRoot, got.CommitmentRoot)
}

func TestMisbehaviourOutputRoundTrip(t *testing.T) {
	t.Parallel()

	out := types.MisbehaviourOutput{
		ClientState:            testClientState(),
		TrustedHeight1:         types.NewHeight(1, 100),
		TrustedConsensusState1: testConsensusState(),
		TrustedHeight2:         types.NewHeight(1, 100),
		TrustedConsensusState2: testConsensusState(),
		Time:                   42,
	}

	b, err := out.Marshal()
	require.NoError(t, err)

	var got types.MisbehaviourOutput
	require.NoError(t, got.Unmarshal(b))
	require.Equal(t, out, got)
}

func TestSP1ProofRoundTrip(t *testing.T) {
	t.Parallel()

	p := types.SP1Proof{
		VKey:         [32]byte{1, 2, 3},
		PublicValues: []byte("public"),
		Proof:        []byte("proof-bytes"),
	}

	b, err := p.Marshal()
	require.NoError(t, err)

	var got types.SP1Proof
	require.NoError(t, got.Unmarshal(b))
	require.Equal(t, p, got)
}

func TestMembershipProofRoundTrip(t *testing.T) {
	t.Parallel()

	mp := types.MembershipProof{
		ProofType: types.MembershipProofTypeSP1MembershipAndUpdateClientProof,
		Proof:     []byte("inner"),
	}

	b, err := mp.Marshal()
	require.NoError(t, err)

	var got types.MembershipProof
	require.NoError(t, got.Unmarshal(b))
	require.Equal(t, mp, got)
}
