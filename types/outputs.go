package types

import (
	"github.com/babylonlabs-io/sp1-ics07-tendermint/codec"
)

// UpdateClientOutput is the typed decoding of an UPDATE_CLIENT_PROGRAM
// proof's public values: everything the update handler needs to bind the
// proof to locally trusted state and to decide Update/Misbehaviour/NoOp.
type UpdateClientOutput struct {
	TrustedHeight         Height
	TrustedConsensusState ConsensusState
	NewHeight             Height
	NewConsensusState     ConsensusState
	ClientState           ClientState
	Time                  uint64
}

func (o UpdateClientOutput) Marshal() ([]byte, error) {
	e := codec.NewEncoder()
	if err := e.Message(1, &o.TrustedHeight); err != nil {
		return nil, err
	}
	if err := e.Message(2, o.TrustedConsensusState); err != nil {
		return nil, err
	}
	if err := e.Message(3, &o.NewHeight); err != nil {
		return nil, err
	}
	if err := e.Message(4, o.NewConsensusState); err != nil {
		return nil, err
	}
	if err := e.Message(5, o.ClientState); err != nil {
		return nil, err
	}
	e.Uint64(6, o.Time)
	return e.Finish(), nil
}

func (o *UpdateClientOutput) Unmarshal(data []byte) error {
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
			if err := o.TrustedHeight.Unmarshal(b); err != nil {
				return err
			}
		case 2:
			b, err := d.Bytes()
			if err != nil {
				return err
			}
			if err := o.TrustedConsensusState.Unmarshal(b); err != nil {
				return err
			}
		case 3:
			b, err := d.Bytes()
			if err != nil {
				return err
			}
			if err := o.NewHeight.Unmarshal(b); err != nil {
				return err
			}
		case 4:
			b, err := d.Bytes()
			if err != nil {
				return err
			}
			if err := o.NewConsensusState.Unmarshal(b); err != nil {
				return err
			}
		case 5:
			b, err := d.Bytes()
			if err != nil {
				return err
			}
			if err := o.ClientState.Unmarshal(b); err != nil {
				return err
			}
		case 6:
			v, err := d.Uint64()
			if err != nil {
				return err
			}
			o.Time = v
		default:
			if err := d.Skip(wireType); err != nil {
				return err
			}
		}
	}
}

// MembershipOutput is the typed decoding of a MEMBERSHIP_PROGRAM proof's
// public values: the root the batch was proven against, and the batch
// itself (length in [MinKVPairsPerProof, MaxKVPairsPerProof]).
type MembershipOutput struct {
	CommitmentRoot []byte
	KvPairs        []KVPair
}

func (o MembershipOutput) Marshal() ([]byte, error) {
	e := codec.NewEncoder()
	e.Bytes(1, o.CommitmentRoot)
	for _, kv := range o.KvPairs {
		if err := e.Message(2, kv); err != nil {
			return nil, err
		}
	}
	return e.Finish(), nil
}

func (o *MembershipOutput) Unmarshal(data []byte) error {
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
			o.CommitmentRoot = b
		case 2:
			b, err := d.Bytes()
			if err != nil {
				return err
			}
			var kv KVPair
			if err := kv.Unmarshal(b); err != nil {
				return err
			}
			o.KvPairs = append(o.KvPairs, kv)
		default:
			if err := d.Skip(wireType); err != nil {
				return err
			}
		}
	}
}

// UcAndMembershipOutput is the typed decoding of an
// UPDATE_CLIENT_AND_MEMBERSHIP_PROGRAM proof's public values: an update
// output plus a KV batch proven against the *new* consensus state in one
// shot.
type UcAndMembershipOutput struct {
	UpdateClientOutput UpdateClientOutput
	KvPairs            []KVPair
}

func (o UcAndMembershipOutput) Marshal() ([]byte, error) {
	e := codec.NewEncoder()
	if err := e.Message(1, o.UpdateClientOutput); err != nil {
		return nil, err
	}
	for _, kv := range o.KvPairs {
		if err := e.Message(2, kv); err != nil {
			return nil, err
		}
	}
	return e.Finish(), nil
}

func (o *UcAndMembershipOutput) Unmarshal(data []byte) error {
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
			if err := o.UpdateClientOutput.Unmarshal(b); err != nil {
				return err
			}
		case 2:
			b, err := d.Bytes()
			if err != nil {
				return err
			}
			var kv KVPair
			if err := kv.Unmarshal(b); err != nil {
				return err
			}
			o.KvPairs = append(o.KvPairs, kv)
		default:
			if err := d.Skip(wireType); err != nil {
				return err
			}
		}
	}
}

// MisbehaviourOutput is the typed decoding of a MISBEHAVIOUR_PROGRAM
// proof's public values: evidence of two conflicting valid headers, each
// trusted against its own previously-accepted consensus state.
type MisbehaviourOutput struct {
	ClientState            ClientState
	TrustedHeight1         Height
	TrustedConsensusState1 ConsensusState
	TrustedHeight2         Height
	TrustedConsensusState2 ConsensusState
	Time                   uint64
}

func (o MisbehaviourOutput) Marshal() ([]byte, error) {
	e := codec.NewEncoder()
	if err := e.Message(1, o.ClientState); err != nil {
		return nil, err
	}
	if err := e.Message(2, &o.TrustedHeight1); err != nil {
		return nil, err
	}
	if err := e.Message(3, o.TrustedConsensusState1); err != nil {
		return nil, err
	}
	if err := e.Message(4, &o.TrustedHeight2); err != nil {
		return nil, err
	}
	if err := e.Message(5, o.TrustedConsensusState2); err != nil {
		return nil, err
	}
	e.Uint64(6, o.Time)
	return e.Finish(), nil
}

func (o *MisbehaviourOutput) Unmarshal(data []byte) error {
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
			if err := o.ClientState.Unmarshal(b); err != nil {
				return err
			}
		case 2:
			b, err := d.Bytes()
			if err != nil {
				return err
			}
			if err := o.TrustedHeight1.Unmarshal(b); err != nil {
				return err
			}
		case 3:
			b, err := d.Bytes()
			if err != nil {
				return err
			}
			if err := o.TrustedConsensusState1.Unmarshal(b); err != nil {
				return err
			}
		case 4:
			b, err := d.Bytes()
			if err != nil {
				return err
			}
			if err := o.TrustedHeight2.Unmarshal(b); err != nil {
				return err
			}
		case 5:
			b, err := d.Bytes()
			if err != nil {
				return err
			}
			if err := o.TrustedConsensusState2.Unmarshal(b); err != nil {
				return err
			}
		case 6:
			v, err := d.Uint64()
			if err != nil {
				return err
			}
			o.Time = v
		default:
			if err := d.Skip(wireType); err != nil {
				return err
			}
		}
	}
}
