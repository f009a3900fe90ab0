package types

import (
	clienttypes "github.com/cosmos/ibc-go/v8/modules/core/02-client/types"
)

// Height is the light client's notion of a counterparty height: a
// (revisionNumber, revisionHeight) pair compared lexicographically. It is
// ibc-go's own 02-client Height, the type every ICS-07 implementation in
// this ecosystem already uses, so Marshal/Unmarshal and Compare come for
// free and agree bit-for-bit with any other ibc-go-based chain.
type Height = clienttypes.Height

// NewHeight builds a Height from its two components.
func NewHeight(revisionNumber, revisionHeight uint64) Height {
	return clienttypes.NewHeight(revisionNumber, revisionHeight)
}

// ZeroHeight is the sentinel height with both components zero.
func ZeroHeight() Height {
	return clienttypes.ZeroHeight()
}
