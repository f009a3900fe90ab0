package lightclient

// mockVerifier is a hand-written test double for verifier.Verifier, in the
// style of the teacher's clientcontroller mockBabylonClient: it records
// every call it sees and lets a test script canned results per call.
type mockVerifier struct {
	callCount int
	// err, indexed by call order; a call beyond len(err) succeeds.
	err []error

	lastVKey         [32]byte
	lastPublicValues []byte
	lastProof        []byte
}

func (m *mockVerifier) Verify(vKey [32]byte, publicValues []byte, proof []byte) error {
	m.lastVKey = vKey
	m.lastPublicValues = publicValues
	m.lastProof = proof

	var err error
	if m.callCount < len(m.err) {
		err = m.err[m.callCount]
	}
	m.callCount++
	return err
}
