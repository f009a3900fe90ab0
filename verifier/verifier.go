// Package verifier defines the boundary to the succinct-proof verifier: an
// external collaborator (out of scope for this module, per spec.md §1) that
// either accepts a (vKey, publicValues, proof) triple or aborts the
// transaction. The core never interprets a boolean result from it; a
// returned error is the only failure signal, and it is expected to
// propagate verbatim to the caller's transaction, same as the teacher's
// eotsmanager.EOTSManager interface being the sole seam between the
// finality-provider daemon and signing, with swappable implementations
// behind it.
package verifier

// Verifier abstracts the host chain's succinct-proof verification
// predicate. A real implementation calls out to an SP1 verifier gateway
// (on-chain precompile, contract, or equivalent); this module only depends
// on the interface.
type Verifier interface {
	// Verify checks that proof is valid for the program identified by vKey
	// against the given publicValues. It returns nil on success and a
	// non-nil error on any failure — implementations MUST NOT encode
	// failure as a boolean return smuggled through publicValues or proof.
	Verify(vKey [32]byte, publicValues []byte, proof []byte) error
}
