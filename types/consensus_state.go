package types

import (
	"fmt"

	commitmenttypes "github.com/cosmos/ibc-go/v8/modules/core/23-commitment/types"

	"github.com/babylonlabs-io/sp1-ics07-tendermint/codec"
)

// hashLen is the fixed length of the commitment root and next-validators
// hash carried by every ConsensusState.
const hashLen = codec.HashSize

// ConsensusState is a snapshot of the counterparty chain trusted at a
// given height: its commitment root and the hash of its next validator
// set. It is stored on-chain only by its canonical hash (see Hash); the
// full struct only ever exists transiently, decoded from a proof's public
// values or supplied alongside one for a hash-equality check.
type ConsensusState struct {
	Timestamp          uint64
	Root               commitmenttypes.MerkleRoot
	NextValidatorsHash []byte
}

// Validate checks the struct-level shape invariants a ConsensusState must
// satisfy before it can be hashed or stored: exactly hashLen bytes for the
// root and the next-validators hash.
func (cs ConsensusState) Validate() error {
	if len(cs.Root.Hash) != hashLen {
		return fmt.Errorf("consensus state root must be %d bytes, got %d", hashLen, len(cs.Root.Hash))
	}
	if len(cs.NextValidatorsHash) != hashLen {
		return fmt.Errorf("consensus state next validators hash must be %d bytes, got %d", hashLen, len(cs.NextValidatorsHash))
	}
	return nil
}

// Marshal canonically encodes the consensus state in field order
// (timestamp, root, nextValidatorsHash).
func (cs ConsensusState) Marshal() ([]byte, error) {
	e := codec.NewEncoder()
	e.Uint64(1, cs.Timestamp)
	e.Bytes(2, cs.Root.Hash)
	e.Bytes(3, cs.NextValidatorsHash)
	return e.Finish(), nil
}

// Unmarshal decodes bytes produced by Marshal. Unknown fields are skipped
// so the format may grow without breaking old decoders.
func (cs *ConsensusState) Unmarshal(data []byte) error {
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
			v, err := d.Uint64()
			if err != nil {
				return err
			}
			cs.Timestamp = v
		case 2:
			b, err := d.Bytes()
			if err != nil {
				return err
			}
			cs.Root = commitmenttypes.MerkleRoot{Hash: b}
		case 3:
			b, err := d.Bytes()
			if err != nil {
				return err
			}
			cs.NextValidatorsHash = b
		default:
			if err := d.Skip(wireType); err != nil {
				return err
			}
		}
	}
}

// Hash returns the canonical hash of cs, the value stored in the
// consensus-state-hash map and compared against a proof's declared
// trusted consensus state.
func (cs ConsensusState) Hash() ([]byte, error) {
	return codec.HashMarshaler(cs)
}
