package types

import (
	"cosmossdk.io/errors"
)

// ModuleName is the error-registration namespace for this light client's
// error codes, following the same cosmossdk.io/errors.Register idiom
// ibc-go's own client modules use to give every failure mode a stable,
// distinguishable code a host transaction handler can switch on.
const ModuleName = "sp1ics07tendermint"

var (
	ErrFrozenClientState = errors.Register(ModuleName, 2, "client state is frozen")

	ErrVerificationKeyMismatch = errors.Register(ModuleName, 3, "verification key mismatch")

	ErrConsensusStateHashMismatch = errors.Register(ModuleName, 4, "consensus state hash mismatch")
	ErrConsensusStateRootMismatch = errors.Register(ModuleName, 5, "consensus state root mismatch")
	ErrConsensusStateNotFound     = errors.Register(ModuleName, 6, "consensus state not found")

	ErrChainIdMismatch         = errors.Register(ModuleName, 7, "chain id mismatch")
	ErrTrustThresholdMismatch  = errors.Register(ModuleName, 8, "trust threshold mismatch")
	ErrTrustingPeriodMismatch  = errors.Register(ModuleName, 9, "trusting period mismatch")
	ErrUnbondingPeriodMismatch = errors.Register(ModuleName, 10, "unbonding period mismatch")

	ErrProofIsInTheFuture = errors.Register(ModuleName, 11, "proof time is in the future")
	ErrProofIsTooOld      = errors.Register(ModuleName, 12, "proof time is too old")

	ErrMembershipProofKeyNotFound   = errors.Register(ModuleName, 13, "membership proof key not found")
	ErrMembershipProofValueMismatch = errors.Register(ModuleName, 14, "membership proof value mismatch")
	ErrLengthOutOfRange             = errors.Register(ModuleName, 15, "length is out of range")
	ErrUnknownMembershipProofType   = errors.Register(ModuleName, 16, "unknown membership proof type")
	ErrKeyValuePairNotInCache       = errors.Register(ModuleName, 17, "key value pair not in cache")

	ErrProofHeightMismatch     = errors.Register(ModuleName, 18, "proof height mismatch")
	ErrCannotHandleMisbehavior = errors.Register(ModuleName, 19, "cannot handle misbehaviour in a combined update-and-membership proof")

	ErrTrustingPeriodTooLong = errors.Register(ModuleName, 20, "trusting period exceeds unbonding period")
	ErrFeatureNotSupported   = errors.Register(ModuleName, 21, "feature not supported")
	ErrInvalidClientState    = errors.Register(ModuleName, 22, "invalid client state")
)
