// Package privval holds the local replica's signing capability: the
// pairing of one BLS private key with the operations to sign and verify
// consensus messages on its behalf, plus file-backed import/export of the
// raw key material.
package privval

import (
	"github.com/1Money-Co/emerald/crypto/bls12381"
	"github.com/1Money-Co/emerald/types"
)

// Signer signs and verifies consensus messages with one BLS12-381 key.
// It is stateless beyond the immutable key: no counters, no persisted
// signing state, so concurrent use needs no coordination.
type Signer[V bls12381.Variant] struct {
	privKey bls12381.PrivKey[V]
	pubKey  bls12381.PubKey[V]
	chainID string
}

var (
	_ types.SigningProvider[bls12381.MinPk]  = (*Signer[bls12381.MinPk])(nil)
	_ types.SigningProvider[bls12381.MinSig] = (*Signer[bls12381.MinSig])(nil)
)

// NewSigner returns a signing capability bound to the given key and chain.
func NewSigner[V bls12381.Variant](privKey bls12381.PrivKey[V], chainID string) *Signer[V] {
	return &Signer[V]{
		privKey: privKey,
		pubKey:  privKey.PubKey(),
		chainID: chainID,
	}
}

// PubKey returns the verification identity of the held key.
func (s *Signer[V]) PubKey() bls12381.PubKey[V] {
	return s.pubKey
}

// ChainID returns the chain this signer is bound to.
func (s *Signer[V]) ChainID() string {
	return s.chainID
}

// SignVote signs the vote's canonical bytes.
func (s *Signer[V]) SignVote(vote *types.Vote) (types.SignedMessage[V, *types.Vote], error) {
	sig := s.privKey.Sign(vote.SignBytes(s.chainID))
	return types.NewSignedMessage[V](vote, sig), nil
}

// VerifyVote recomputes the vote's canonical bytes and checks sig against
// pubKey. A mismatch is a normal outcome, not an error.
func (s *Signer[V]) VerifyVote(vote *types.Vote, sig bls12381.Signature[V], pubKey bls12381.PubKey[V]) types.VerificationResult {
	return types.VerificationResultFromBool(
		pubKey.VerifySignature(vote.SignBytes(s.chainID), sig))
}

// SignProposal signs the proposal's canonical bytes.
func (s *Signer[V]) SignProposal(proposal *types.Proposal) (types.SignedMessage[V, *types.Proposal], error) {
	sig := s.privKey.Sign(proposal.SignBytes(s.chainID))
	return types.NewSignedMessage[V](proposal, sig), nil
}

// VerifyProposal recomputes the proposal's canonical bytes and checks sig
// against pubKey.
func (s *Signer[V]) VerifyProposal(proposal *types.Proposal, sig bls12381.Signature[V], pubKey bls12381.PubKey[V]) types.VerificationResult {
	return types.VerificationResultFromBool(
		pubKey.VerifySignature(proposal.SignBytes(s.chainID), sig))
}

// SignProposalPart signs the part's canonical bytes.
func (s *Signer[V]) SignProposalPart(part *types.ProposalPart) (types.SignedMessage[V, *types.ProposalPart], error) {
	sig := s.privKey.Sign(part.SignBytes(s.chainID))
	return types.NewSignedMessage[V](part, sig), nil
}

// VerifyProposalPart recomputes the part's canonical bytes and checks sig
// against pubKey.
func (s *Signer[V]) VerifyProposalPart(part *types.ProposalPart, sig bls12381.Signature[V], pubKey bls12381.PubKey[V]) types.VerificationResult {
	return types.VerificationResultFromBool(
		pubKey.VerifySignature(part.SignBytes(s.chainID), sig))
}

// SignVoteExtension panics: there is no extension signing scheme defined.
// A call indicates a consensus-engine feature gap, not bad input.
func (s *Signer[V]) SignVoteExtension(types.VoteExtension) (types.SignedMessage[V, types.VoteExtension], error) {
	panic("vote extension signing is not implemented")
}

// VerifyVoteExtension panics: there is no extension signing scheme defined.
func (s *Signer[V]) VerifyVoteExtension(types.VoteExtension, bls12381.Signature[V], bls12381.PubKey[V]) types.VerificationResult {
	panic("vote extension verification is not implemented")
}
