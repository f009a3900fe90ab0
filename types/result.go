package types

// UpdateResult is the three-way outcome of applying an update proof to
// locally stored state, decided purely from on-chain state
// (checkUpdateResult) before the verifier is ever invoked.
type UpdateResult uint8

const (
	// UpdateResultUpdate means the proof advances trusted state to a
	// height that was not previously trusted.
	UpdateResultUpdate UpdateResult = iota
	// UpdateResultMisbehaviour means the proof conflicts with an
	// already-trusted consensus state at the same height, or reproduces it
	// with a trusted consensus state whose timestamp is not older than the
	// new one.
	UpdateResultMisbehaviour
	// UpdateResultNoOp means the proof reproduces an already-trusted
	// consensus state. The plain update handler makes no verifier call for
	// it; the combined update-and-membership handler still does.
	UpdateResultNoOp
)

func (r UpdateResult) String() string {
	switch r {
	case UpdateResultUpdate:
		return "Update"
	case UpdateResultMisbehaviour:
		return "Misbehaviour"
	case UpdateResultNoOp:
		return "NoOp"
	default:
		return "Unknown"
	}
}
