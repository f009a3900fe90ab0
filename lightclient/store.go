// Package lightclient is the core: the state store, the public-input
// validators, the four message handlers, and the transient KV cache
// described in spec.md. It plays the role the teacher's clientcontroller
// package plays for the finality-provider daemon — the orchestrating type
// that holds configuration and mutable state behind a small public
// operation surface.
package lightclient

import (
	"go.uber.org/zap"

	"github.com/babylonlabs-io/sp1-ics07-tendermint/codec"
	"github.com/babylonlabs-io/sp1-ics07-tendermint/types"
	"github.com/babylonlabs-io/sp1-ics07-tendermint/verifier"
)

// Client is the light client object: immutable program verification keys
// and verifier reference, plus mutable client state and consensus-state
// hash map. One Client is constructed once per host-chain deployment and
// lives for its entire lifetime (spec.md §3 "Lifecycle").
type Client struct {
	logger   *zap.Logger
	verifier verifier.Verifier

	updateClientVKey              [32]byte
	membershipVKey                [32]byte
	updateClientAndMembershipVKey [32]byte
	misbehaviourVKey              [32]byte

	clientState          types.ClientState
	consensusStateHashes map[uint64][]byte // revisionHeight -> canonical hash; absent key == zero sentinel
}

// Config bundles the constructor inputs spec.md §6 declares immutable
// after construction.
type Config struct {
	UpdateClientVKey              [32]byte
	MembershipVKey                [32]byte
	UpdateClientAndMembershipVKey [32]byte
	MisbehaviourVKey              [32]byte

	Verifier verifier.Verifier

	InitialClientState        types.ClientState
	InitialConsensusStateHash [32]byte

	// Logger is optional; a no-op logger is used when nil.
	Logger *zap.Logger
}

// NewClient constructs the light client object, placing
// InitialConsensusStateHash at InitialClientState.LatestHeight.RevisionHeight.
// It fails if the initial client state does not pass ClientState.Validate
// (trustingPeriod <= unbondingPeriod among others) or if no verifier is
// supplied.
func NewClient(cfg Config) (*Client, error) {
	if err := cfg.InitialClientState.Validate(); err != nil {
		return nil, err
	}
	if cfg.Verifier == nil {
		return nil, types.ErrInvalidClientState.Wrap("verifier must not be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	c := &Client{
		logger:                        logger,
		verifier:                      cfg.Verifier,
		updateClientVKey:              cfg.UpdateClientVKey,
		membershipVKey:                cfg.MembershipVKey,
		updateClientAndMembershipVKey: cfg.UpdateClientAndMembershipVKey,
		misbehaviourVKey:              cfg.MisbehaviourVKey,
		clientState:                   cfg.InitialClientState,
		consensusStateHashes:          make(map[uint64][]byte),
	}
	c.consensusStateHashes[cfg.InitialClientState.LatestHeight.RevisionHeight] = append([]byte{}, cfg.InitialConsensusStateHash[:]...)

	return c, nil
}

// GetClientState returns the canonical encoding of the current client
// state (spec.md §4.1).
func (c *Client) GetClientState() ([]byte, error) {
	return c.clientState.Marshal()
}

// GetConsensusStateHash returns the hash stored at revisionHeight, or
// ErrConsensusStateNotFound if the zero sentinel is stored (no entry).
func (c *Client) GetConsensusStateHash(revisionHeight uint64) ([]byte, error) {
	hash, ok := c.consensusStateHashes[revisionHeight]
	if !ok || len(hash) == 0 {
		return nil, types.ErrConsensusStateNotFound.Wrapf("height %d", revisionHeight)
	}
	return hash, nil
}

// IsFrozen reports the client's frozen flag. Read access is unrestricted
// (spec.md §5 "Shared resources").
func (c *Client) IsFrozen() bool {
	return c.clientState.IsFrozen
}

// notFrozen is the gate every write-capable handler calls first
// (spec.md I3).
func (c *Client) notFrozen() error {
	if c.clientState.IsFrozen {
		c.logger.Debug("rejecting call: client is frozen")
		return types.ErrFrozenClientState
	}
	return nil
}

// setFrozen sets the frozen flag. It is monotonic by construction: nothing
// in this package ever sets it back to false (spec.md I4).
func (c *Client) setFrozen() {
	c.clientState.IsFrozen = true
}

// advanceLatestHeight sets latestHeight to newHeight if newHeight is
// strictly greater by revision height, preserving monotonic
// non-decreasingness (spec.md I2, P1).
func (c *Client) advanceLatestHeight(newHeight types.Height) {
	if newHeight.RevisionHeight > c.clientState.LatestHeight.RevisionHeight {
		c.clientState.LatestHeight = newHeight
	}
}

// setConsensusStateHash writes the canonical hash of cs at revisionHeight.
func (c *Client) setConsensusStateHash(revisionHeight uint64, cs types.ConsensusState) error {
	hash, err := cs.Hash()
	if err != nil {
		return err
	}
	c.consensusStateHashes[revisionHeight] = hash
	return nil
}

// consensusStateHashMatches reports whether cs hashes to the value stored
// at revisionHeight.
func (c *Client) consensusStateHashMatches(revisionHeight uint64, cs types.ConsensusState) (bool, error) {
	stored, ok := c.consensusStateHashes[revisionHeight]
	if !ok {
		return false, nil
	}
	hash, err := cs.Hash()
	if err != nil {
		return false, err
	}
	return codec.HashSize == len(stored) && string(hash) == string(stored), nil
}
