package types

import (
	commitmenttypes "github.com/cosmos/ibc-go/v8/modules/core/23-commitment/types"

	"github.com/babylonlabs-io/sp1-ics07-tendermint/codec"
)

// MsgUpdateClient is the update handler's input: a single SP1 proof whose
// public values decode into an UpdateClientOutput.
type MsgUpdateClient struct {
	Sp1Proof SP1Proof
}

func (m MsgUpdateClient) Marshal() ([]byte, error) {
	e := codec.NewEncoder()
	if err := e.Message(1, m.Sp1Proof); err != nil {
		return nil, err
	}
	return e.Finish(), nil
}

func (m *MsgUpdateClient) Unmarshal(data []byte) error {
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
			if err := m.Sp1Proof.Unmarshal(b); err != nil {
				return err
			}
		default:
			if err := d.Skip(wireType); err != nil {
				return err
			}
		}
	}
}

// MsgMembership is the membership handler's input. An empty Proof means
// "serve this exact (path, value) from the transient cache instead of
// verifying a fresh proof"; a non-empty Proof carries an encoded
// MembershipProof.
type MsgMembership struct {
	ProofHeight Height
	Path        commitmenttypes.MerklePath
	Value       []byte
	Proof       []byte
}

func (m MsgMembership) Marshal() ([]byte, error) {
	e := codec.NewEncoder()
	if err := e.Message(1, &m.ProofHeight); err != nil {
		return nil, err
	}
	if err := e.Message(2, &m.Path); err != nil {
		return nil, err
	}
	e.Bytes(3, m.Value)
	e.Bytes(4, m.Proof)
	return e.Finish(), nil
}

func (m *MsgMembership) Unmarshal(data []byte) error {
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
			if err := m.ProofHeight.Unmarshal(b); err != nil {
				return err
			}
		case 2:
			b, err := d.Bytes()
			if err != nil {
				return err
			}
			if err := m.Path.Unmarshal(b); err != nil {
				return err
			}
		case 3:
			b, err := d.Bytes()
			if err != nil {
				return err
			}
			m.Value = b
		case 4:
			b, err := d.Bytes()
			if err != nil {
				return err
			}
			m.Proof = b
		default:
			if err := d.Skip(wireType); err != nil {
				return err
			}
		}
	}
}

// MsgSubmitMisbehaviour is the misbehaviour handler's input.
type MsgSubmitMisbehaviour struct {
	Sp1Proof SP1Proof
}

func (m MsgSubmitMisbehaviour) Marshal() ([]byte, error) {
	e := codec.NewEncoder()
	if err := e.Message(1, m.Sp1Proof); err != nil {
		return nil, err
	}
	return e.Finish(), nil
}

func (m *MsgSubmitMisbehaviour) Unmarshal(data []byte) error {
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
			if err := m.Sp1Proof.Unmarshal(b); err != nil {
				return err
			}
		default:
			if err := d.Skip(wireType); err != nil {
				return err
			}
		}
	}
}
