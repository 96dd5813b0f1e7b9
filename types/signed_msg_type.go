package types

// SignedMsgType is the type tag carried in the canonical sign-bytes of a
// consensus message, so a signature over one message kind can never be
// replayed as another.
type SignedMsgType uint8

const (
	UnknownType   SignedMsgType = 0
	PrevoteType   SignedMsgType = 1
	PrecommitType SignedMsgType = 2
	ProposalType  SignedMsgType = 32
)

// IsVoteTypeValid returns true if t is a valid vote type.
func IsVoteTypeValid(t SignedMsgType) bool {
	switch t {
	case PrevoteType, PrecommitType:
		return true
	default:
		return false
	}
}

var signedMsgTypeToShortName = map[SignedMsgType]string{
	UnknownType:   "unknown",
	PrevoteType:   "prevote",
	PrecommitType: "precommit",
	ProposalType:  "proposal",
}

// SignedMsgTypeToShortString returns a short lowercase descriptor for a
// signed message type.
func SignedMsgTypeToShortString(t SignedMsgType) string {
	if shortName, ok := signedMsgTypeToShortName[t]; ok {
		return shortName
	}
	return "unknown"
}
