package codec_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/babylonlabs-io/sp1-ics07-tendermint/codec"
)

type nestedMsg struct {
	v uint64
}

func (n nestedMsg) Marshal() ([]byte, error) {
	e := codec.NewEncoder()
	e.Uint64(1, n.v)
	return e.Finish(), nil
}

func (n *nestedMsg) Unmarshal(data []byte) error {
	d := codec.NewDecoder(data)
	for {
		field, wireType, ok, err := d.Next()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if field == 1 {
			v, err := d.Uint64()
			if err != nil {
				return err
			}
			n.v = v
			continue
		}
		if err := d.Skip(wireType); err != nil {
			return err
		}
	}
}

func TestEncoderDecoderScalars(t *testing.T) {
	t.Parallel()

	e := codec.NewEncoder()
	e.Uint64(1, 42)
	e.Bool(2, true)
	e.Bytes(3, []byte("hello"))
	e.String(4, "world")
	buf := e.Finish()

	d := codec.NewDecoder(buf)

	field, _, ok, err := d.Next()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 1, field)
	v, err := d.Uint64()
	require.NoError(t, err)
	require.Equal(t, uint64(42), v)

	field, _, ok, err = d.Next()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 2, field)
	b, err := d.Bool()
	require.NoError(t, err)
	require.True(t, b)

	field, _, ok, err = d.Next()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 3, field)
	bs, err := d.Bytes()
	require.NoError(t, err)
	require.Equal(t, []byte("hello"), bs)

	field, _, ok, err = d.Next()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 4, field)
	s, err := d.String()
	require.NoError(t, err)
	require.Equal(t, "world", s)

	_, _, ok, err = d.Next()
	require.NoError(t, err)
	require.False(t, ok)
}

func TestEncoderOmitsZeroValues(t *testing.T) {
	t.Parallel()

	e := codec.NewEncoder()
	e.Uint64(1, 0)
	e.Bool(2, false)
	e.Bytes(3, nil)
	e.String(4, "")
	require.Empty(t, e.Finish())
}

func TestEncoderMessageNesting(t *testing.T) {
	t.Parallel()

	e := codec.NewEncoder()
	require.NoError(t, e.Message(1, nestedMsg{v: 7}))
	buf := e.Finish()

	d := codec.NewDecoder(buf)
	field, _, ok, err := d.Next()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 1, field)

	b, err := d.Bytes()
	require.NoError(t, err)

	var nested nestedMsg
	require.NoError(t, nested.Unmarshal(b))
	require.Equal(t, uint64(7), nested.v)
}

func TestDecoderSkipUnknownFields(t *testing.T) {
	t.Parallel()

	e := codec.NewEncoder()
	e.Uint64(1, 1)
	e.Bytes(2, []byte("skip me"))
	e.Uint64(3, 99)
	buf := e.Finish()

	d := codec.NewDecoder(buf)
	var last uint64
	for {
		field, wireType, ok, err := d.Next()
		require.NoError(t, err)
		if !ok {
			break
		}
		if field == 3 {
			v, err := d.Uint64()
			require.NoError(t, err)
			last = v
			continue
		}
		require.NoError(t, d.Skip(wireType))
	}
	require.Equal(t, uint64(99), last)
}

func TestHashDeterministic(t *testing.T) {
	t.Parallel()

	h1 := codec.Hash([]byte("abc"))
	h2 := codec.Hash([]byte("abc"))
	require.Equal(t, h1, h2)
	require.Len(t, h1, codec.HashSize)

	h3 := codec.Hash([]byte("abd"))
	require.NotEqual(t, h1, h3)
}
