package codec

import "github.com/cometbft/cometbft/crypto/tmhash"

// HashSize is the length in bytes of a canonical hash digest.
const HashSize = tmhash.Size

// Hash returns the canonical digest of b. It is the same SHA-256-based
// hash (tmhash) CometBFT uses for header and app hashes, reused here so the
// client's notion of a "canonical hash" rests on a hash function the rest
// of the stack already trusts rather than a bespoke one.
func Hash(b []byte) []byte {
	return tmhash.Sum(b)
}

// HashMarshaler canonically encodes m and hashes the result.
func HashMarshaler(m Marshaler) ([]byte, error) {
	b, err := m.Marshal()
	if err != nil {
		return nil, err
	}
	return Hash(b), nil
}
