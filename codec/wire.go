// Package codec implements the single canonical binary encoding shared by
// every type that crosses the host/prover boundary (client state, consensus
// state, and the four typed proof outputs). The wire format follows the
// gogoproto conventions the rest of this domain's protobuf-generated code
// uses: a varint (field<<3|wireType) key followed by a varint, or a
// length-delimited payload. Implementations MUST agree bit-for-bit with the
// off-chain prover; this module is the one place that contract is fixed.
package codec

import (
	"encoding/binary"
	"fmt"
)

const (
	wireVarint = 0
	wireBytes  = 2
)

// Marshaler is implemented by every canonically-encoded type.
type Marshaler interface {
	Marshal() ([]byte, error)
}

// Unmarshaler is implemented by every canonically-decoded type.
type Unmarshaler interface {
	Unmarshal([]byte) error
}

// Encoder appends canonically-ordered fields to an in-progress buffer.
// Zero-valued scalar fields and empty repeated fields are omitted, matching
// proto3 implicit presence, so encoding stays deterministic across languages
// without needing an explicit presence bit per field.
type Encoder struct {
	buf []byte
}

func NewEncoder() *Encoder {
	return &Encoder{}
}

// Finish returns the accumulated canonical encoding.
func (e *Encoder) Finish() []byte {
	return e.buf
}

func (e *Encoder) key(field int, wireType int) {
	e.buf = binary.AppendUvarint(e.buf, uint64(field)<<3|uint64(wireType))
}

func (e *Encoder) Uint64(field int, v uint64) {
	if v == 0 {
		return
	}
	e.key(field, wireVarint)
	e.buf = binary.AppendUvarint(e.buf, v)
}

func (e *Encoder) Bool(field int, v bool) {
	if !v {
		return
	}
	e.key(field, wireVarint)
	e.buf = binary.AppendUvarint(e.buf, 1)
}

func (e *Encoder) Bytes(field int, b []byte) {
	if len(b) == 0 {
		return
	}
	e.key(field, wireBytes)
	e.buf = binary.AppendUvarint(e.buf, uint64(len(b)))
	e.buf = append(e.buf, b...)
}

func (e *Encoder) String(field int, s string) {
	if s == "" {
		return
	}
	e.Bytes(field, []byte(s))
}

// Message encodes m as a length-delimited nested field.
func (e *Encoder) Message(field int, m Marshaler) error {
	b, err := m.Marshal()
	if err != nil {
		return err
	}
	if len(b) == 0 {
		return nil
	}
	e.key(field, wireBytes)
	e.buf = binary.AppendUvarint(e.buf, uint64(len(b)))
	e.buf = append(e.buf, b...)
	return nil
}

// Decoder walks a canonically-encoded buffer one field at a time.
type Decoder struct {
	buf []byte
	pos int
}

func NewDecoder(b []byte) *Decoder {
	return &Decoder{buf: b}
}

// Next reads the next field key, returning ok=false at end of buffer.
func (d *Decoder) Next() (field int, wireType int, ok bool, err error) {
	if d.pos >= len(d.buf) {
		return 0, 0, false, nil
	}
	key, n := binary.Uvarint(d.buf[d.pos:])
	if n <= 0 {
		return 0, 0, false, fmt.Errorf("codec: malformed field key at offset %d", d.pos)
	}
	d.pos += n
	return int(key >> 3), int(key & 0x7), true, nil
}

func (d *Decoder) Uint64() (uint64, error) {
	v, n := binary.Uvarint(d.buf[d.pos:])
	if n <= 0 {
		return 0, fmt.Errorf("codec: malformed varint at offset %d", d.pos)
	}
	d.pos += n
	return v, nil
}

func (d *Decoder) Bool() (bool, error) {
	v, err := d.Uint64()
	if err != nil {
		return false, err
	}
	return v != 0, nil
}

func (d *Decoder) Bytes() ([]byte, error) {
	l, n := binary.Uvarint(d.buf[d.pos:])
	if n <= 0 {
		return nil, fmt.Errorf("codec: malformed length at offset %d", d.pos)
	}
	d.pos += n
	if d.pos+int(l) > len(d.buf) {
		return nil, fmt.Errorf("codec: length-delimited field exceeds buffer")
	}
	b := make([]byte, l)
	copy(b, d.buf[d.pos:d.pos+int(l)])
	d.pos += int(l)
	return b, nil
}

func (d *Decoder) String() (string, error) {
	b, err := d.Bytes()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Skip discards the value following a field key of the given wire type.
func (d *Decoder) Skip(wireType int) error {
	switch wireType {
	case wireVarint:
		_, err := d.Uint64()
		return err
	case wireBytes:
		_, err := d.Bytes()
		return err
	default:
		return fmt.Errorf("codec: unknown wire type %d", wireType)
	}
}
