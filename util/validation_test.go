package util_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/babylonlabs-io/sp1-ics07-tendermint/types"
	"github.com/babylonlabs-io/sp1-ics07-tendermint/util"
)

func TestValidateKVPairsLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		n         int
		expectErr bool
	}{
		{name: "below minimum", n: 0, expectErr: true},
		{name: "minimum is valid", n: types.MinKVPairsPerProof, expectErr: false},
		{name: "typical batch", n: 3, expectErr: false},
		{name: "maximum is valid", n: types.MaxKVPairsPerProof, expectErr: false},
		{name: "above maximum", n: types.MaxKVPairsPerProof + 1, expectErr: true},
		{name: "negative", n: -1, expectErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := util.ValidateKVPairsLength(tt.n)
			if tt.expectErr {
				require.Error(t, err)
				require.ErrorIs(t, err, types.ErrLengthOutOfRange)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
