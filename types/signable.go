package types

import (
	"github.com/1Money-Co/emerald/crypto/bls12381"
)

// Signable is an interface for all signable things. SignBytes returns the
// exact byte sequence the signature covers; it must be deterministic and
// stable across process restarts. Implementations panic if marshaling
// fails.
//
// NOTE: chainIDs are part of the SignBytes but not necessarily the object
// themselves.
type Signable interface {
	SignBytes(chainID string) []byte
}

// SignedMessage pairs a consensus message with the signature covering its
// sign-bytes, scoped to one ciphersuite variant.
type SignedMessage[V bls12381.Variant, M Signable] struct {
	Message   M
	Signature bls12381.Signature[V]
}

// NewSignedMessage returns a SignedMessage wrapping msg and sig.
func NewSignedMessage[V bls12381.Variant, M Signable](msg M, sig bls12381.Signature[V]) SignedMessage[V, M] {
	return SignedMessage[V, M]{Message: msg, Signature: sig}
}

// VerificationResult is the outcome of verifying a signed message. A
// cryptographic mismatch is a normal, expected result, not an error;
// quorum logic treats invalid as frequent input.
type VerificationResult uint8

const (
	SignatureInvalid VerificationResult = iota
	SignatureValid
)

// VerificationResultFromBool maps a verification predicate to a result.
func VerificationResultFromBool(valid bool) VerificationResult {
	if valid {
		return SignatureValid
	}
	return SignatureInvalid
}

// IsValid reports whether the signature verified.
func (r VerificationResult) IsValid() bool {
	return r == SignatureValid
}

func (r VerificationResult) String() string {
	if r == SignatureValid {
		return "valid"
	}
	return "invalid"
}

// VoteExtension is opaque application data attached to a precommit. There
// is no defined signing scheme for extensions yet; every signing path for
// them is a fatal fault.
type VoteExtension []byte

// SignBytes panics: the canonical encoding of vote extensions is not
// defined.
func (VoteExtension) SignBytes(string) []byte {
	panic("vote extension sign bytes are not defined")
}

// SigningProvider is the signing capability the consensus engine holds for
// its local replica: one sign and one verify operation per message kind.
// Implementations are stateless beyond the immutable private key they are
// bound to, and every call is an independent request/response.
//
// SignVoteExtension and VerifyVoteExtension are part of the contract but
// deliberately unimplemented; implementations must panic on any call
// rather than guess at an extension signing scheme.
type SigningProvider[V bls12381.Variant] interface {
	// PubKey returns the verification identity of the held private key.
	PubKey() bls12381.PubKey[V]

	SignVote(vote *Vote) (SignedMessage[V, *Vote], error)
	VerifyVote(vote *Vote, sig bls12381.Signature[V], pubKey bls12381.PubKey[V]) VerificationResult

	SignProposal(proposal *Proposal) (SignedMessage[V, *Proposal], error)
	VerifyProposal(proposal *Proposal, sig bls12381.Signature[V], pubKey bls12381.PubKey[V]) VerificationResult

	SignProposalPart(part *ProposalPart) (SignedMessage[V, *ProposalPart], error)
	VerifyProposalPart(part *ProposalPart, sig bls12381.Signature[V], pubKey bls12381.PubKey[V]) VerificationResult

	SignVoteExtension(ext VoteExtension) (SignedMessage[V, VoteExtension], error)
	VerifyVoteExtension(ext VoteExtension, sig bls12381.Signature[V], pubKey bls12381.PubKey[V]) VerificationResult
}
