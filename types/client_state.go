package types

import (
	"github.com/babylonlabs-io/sp1-ics07-tendermint/codec"
)

// ClientState is the light client's configuration and mutable trust
// parameters: which chain it tracks, the Tendermint trust threshold, the
// highest height it has ever accepted, and the two durations that bound
// how long a consensus state may be trusted. LatestHeight only ever moves
// forward and IsFrozen only ever moves false->true; both are enforced at
// the write sites in package lightclient, not by this type.
type ClientState struct {
	ChainId         string
	TrustLevel      Fraction
	LatestHeight    Height
	TrustingPeriod  uint64 // seconds
	UnbondingPeriod uint64 // seconds
	IsFrozen        bool
}

// Validate checks the invariants fixed at construction time: a consensus
// state cannot be trusted for longer than the counterparty promises to keep
// it unbonded, the chain id is non-empty, and the trust level's denominator
// is non-zero.
func (cs ClientState) Validate() error {
	if cs.TrustingPeriod > cs.UnbondingPeriod {
		return ErrTrustingPeriodTooLong
	}
	if cs.ChainId == "" {
		return ErrInvalidClientState.Wrap("chain id must not be empty")
	}
	if cs.TrustLevel.Denominator == 0 {
		return ErrInvalidClientState.Wrap("trust level denominator must not be zero")
	}
	return nil
}

// Marshal canonically encodes the client state in field order (chainId,
// trustLevel, latestHeight, trustingPeriod, unbondingPeriod, isFrozen).
func (cs ClientState) Marshal() ([]byte, error) {
	e := codec.NewEncoder()
	e.String(1, cs.ChainId)
	if err := e.Message(2, &cs.TrustLevel); err != nil {
		return nil, err
	}
	if err := e.Message(3, &cs.LatestHeight); err != nil {
		return nil, err
	}
	e.Uint64(4, cs.TrustingPeriod)
	e.Uint64(5, cs.UnbondingPeriod)
	e.Bool(6, cs.IsFrozen)
	return e.Finish(), nil
}

// Unmarshal decodes bytes produced by Marshal.
func (cs *ClientState) Unmarshal(data []byte) error {
	d := codec.NewDecoder(data)
	for {
		field, wireType, ok, err := d.Next()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		switch field {
		case 1:
			s, err := d.String()
			if err != nil {
				return err
			}
			cs.ChainId = s
		case 2:
			b, err := d.Bytes()
			if err != nil {
				return err
			}
			if err := cs.TrustLevel.Unmarshal(b); err != nil {
				return err
			}
		case 3:
			b, err := d.Bytes()
			if err != nil {
				return err
			}
			if err := cs.LatestHeight.Unmarshal(b); err != nil {
				return err
			}
		case 4:
			v, err := d.Uint64()
			if err != nil {
				return err
			}
			cs.TrustingPeriod = v
		case 5:
			v, err := d.Uint64()
			if err != nil {
				return err
			}
			cs.UnbondingPeriod = v
		case 6:
			v, err := d.Bool()
			if err != nil {
				return err
			}
			cs.IsFrozen = v
		default:
			if err := d.Skip(wireType); err != nil {
				return err
			}
		}
	}
}
