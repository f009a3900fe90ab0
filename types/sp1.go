package types

import (
	"github.com/babylonlabs-io/sp1-ics07-tendermint/codec"
)

// VKeySize is the length in bytes of an SP1 program verification key.
const VKeySize = 32

// SP1Proof is the opaque succinct proof envelope: everything except VKey is
// meaningless to the core until it has been decoded into one of the typed
// outputs and checked against the verification key the calling handler
// expects.
type SP1Proof struct {
	VKey         [VKeySize]byte
	PublicValues []byte
	Proof        []byte
}

// Marshal canonically encodes the proof in field order (vKey,
// publicValues, proof).
func (p SP1Proof) Marshal() ([]byte, error) {
	e := codec.NewEncoder()
	e.Bytes(1, p.VKey[:])
	e.Bytes(2, p.PublicValues)
	e.Bytes(3, p.Proof)
	return e.Finish(), nil
}

// Unmarshal decodes bytes produced by Marshal.
func (p *SP1Proof) Unmarshal(data []byte) error {
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
			b, err := d.Bytes()
			if err != nil {
				return err
			}
			copy(p.VKey[:], b)
		case 2:
			b, err := d.Bytes()
			if err != nil {
				return err
			}
			p.PublicValues = b
		case 3:
			b, err := d.Bytes()
			if err != nil {
				return err
			}
			p.Proof = b
		default:
			if err := d.Skip(wireType); err != nil {
				return err
			}
		}
	}
}

// MembershipProofType tags the variant carried by a MembershipProof, the
// sum type dispatched on by the membership handler (spec design notes:
// re-architected as a tagged variant with an exhaustive match).
type MembershipProofType uint64

const (
	MembershipProofTypeUnspecified MembershipProofType = iota
	MembershipProofTypeSP1MembershipProof
	MembershipProofTypeSP1MembershipAndUpdateClientProof
)

func (t MembershipProofType) String() string {
	switch t {
	case MembershipProofTypeSP1MembershipProof:
		return "SP1MembershipProof"
	case MembershipProofTypeSP1MembershipAndUpdateClientProof:
		return "SP1MembershipAndUpdateClientProof"
	default:
		return "Unspecified"
	}
}

// MembershipProof is the tagged envelope carried in MsgMembership.Proof
// when a caller supplies a fresh proof rather than reading the transient
// cache.
type MembershipProof struct {
	ProofType MembershipProofType
	Proof     []byte
}

func (mp MembershipProof) Marshal() ([]byte, error) {
	e := codec.NewEncoder()
	e.Uint64(1, uint64(mp.ProofType))
	e.Bytes(2, mp.Proof)
	return e.Finish(), nil
}

func (mp *MembershipProof) Unmarshal(data []byte) error {
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
			mp.ProofType = MembershipProofType(v)
		case 2:
			b, err := d.Bytes()
			if err != nil {
				return err
			}
			mp.Proof = b
		default:
			if err := d.Skip(wireType); err != nil {
				return err
			}
		}
	}
}

// SP1MembershipProof is the inner payload of a MembershipProof tagged
// MembershipProofTypeSP1MembershipProof: a single-height proof plus the
// consensus state it was proven against.
type SP1MembershipProof struct {
	Sp1Proof              SP1Proof
	TrustedConsensusState ConsensusState
}

func (p SP1MembershipProof) Marshal() ([]byte, error) {
	e := codec.NewEncoder()
	if err := e.Message(1, p.Sp1Proof); err != nil {
		return nil, err
	}
	if err := e.Message(2, p.TrustedConsensusState); err != nil {
		return nil, err
	}
	return e.Finish(), nil
}

func (p *SP1MembershipProof) Unmarshal(data []byte) error {
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
			b, err := d.Bytes()
			if err != nil {
				return err
			}
			if err := p.Sp1Proof.Unmarshal(b); err != nil {
				return err
			}
		case 2:
			b, err := d.Bytes()
			if err != nil {
				return err
			}
			if err := p.TrustedConsensusState.Unmarshal(b); err != nil {
				return err
			}
		default:
			if err := d.Skip(wireType); err != nil {
				return err
			}
		}
	}
}

// SP1MembershipAndUpdateClientProof is the inner payload of a
// MembershipProof tagged
// MembershipProofTypeSP1MembershipAndUpdateClientProof.
type SP1MembershipAndUpdateClientProof struct {
	Sp1Proof SP1Proof
}

func (p SP1MembershipAndUpdateClientProof) Marshal() ([]byte, error) {
	e := codec.NewEncoder()
	if err := e.Message(1, p.Sp1Proof); err != nil {
		return nil, err
	}
	return e.Finish(), nil
}

func (p *SP1MembershipAndUpdateClientProof) Unmarshal(data []byte) error {
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
			b, err := d.Bytes()
			if err != nil {
				return err
			}
			if err := p.Sp1Proof.Unmarshal(b); err != nil {
				return err
			}
		default:
			if err := d.Skip(wireType); err != nil {
				return err
			}
		}
	}
}
