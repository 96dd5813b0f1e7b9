package types

import (
	"time"

	"github.com/fxamacker/cbor/v2"
)

// Canonical* shadow the message structs for producing sign-bytes. They are
// encoded with canonical CBOR (RFC 8949 core deterministic encoding), so
// the byte sequence a signature covers is stable across process restarts
// and library versions. Fields that must not influence the signature (vote
// timestamps, validator index) are simply absent.

var signBytesEncMode cbor.EncMode

func init() {
	opts := cbor.CanonicalEncOptions()
	opts.Time = cbor.TimeRFC3339Nano
	em, err := opts.EncMode()
	if err != nil {
		panic(err)
	}
	signBytesEncMode = em
}

type CanonicalPartSetHeader struct {
	Total uint32 `cbor:"1,keyasint"`
	Hash  []byte `cbor:"2,keyasint,omitempty"`
}

type CanonicalBlockID struct {
	Hash          []byte                 `cbor:"1,keyasint"`
	PartSetHeader CanonicalPartSetHeader `cbor:"2,keyasint"`
}

type CanonicalVote struct {
	Type    SignedMsgType     `cbor:"1,keyasint"`
	Height  int64             `cbor:"2,keyasint"`
	Round   int64             `cbor:"3,keyasint"`
	BlockID *CanonicalBlockID `cbor:"4,keyasint,omitempty"`
	ChainID string            `cbor:"5,keyasint"`
}

type CanonicalProposal struct {
	Type      SignedMsgType     `cbor:"1,keyasint"`
	Height    int64             `cbor:"2,keyasint"`
	Round     int64             `cbor:"3,keyasint"`
	POLRound  int64             `cbor:"4,keyasint"`
	BlockID   *CanonicalBlockID `cbor:"5,keyasint,omitempty"`
	Timestamp time.Time         `cbor:"6,keyasint"`
	ChainID   string            `cbor:"7,keyasint"`
}

type CanonicalProposalPart struct {
	Height  int64  `cbor:"1,keyasint"`
	Round   int64  `cbor:"2,keyasint"`
	Index   uint32 `cbor:"3,keyasint"`
	Total   uint32 `cbor:"4,keyasint"`
	Data    []byte `cbor:"5,keyasint"`
	ChainID string `cbor:"6,keyasint"`
}

// CanonicalizeBlockID returns nil for the nil-vote BlockID, so "no block"
// and "a block with empty hash" cannot collide in sign-bytes.
func CanonicalizeBlockID(blockID BlockID) *CanonicalBlockID {
	if blockID.IsZero() {
		return nil
	}
	return &CanonicalBlockID{
		Hash:          blockID.Hash,
		PartSetHeader: CanonicalizePartSetHeader(blockID.PartSetHeader),
	}
}

// CanonicalizePartSetHeader transforms the given PartSetHeader to a
// CanonicalPartSetHeader.
func CanonicalizePartSetHeader(psh PartSetHeader) CanonicalPartSetHeader {
	return CanonicalPartSetHeader{Total: psh.Total, Hash: psh.Hash}
}

// CanonicalizeVote transforms the given Vote to a CanonicalVote, which does
// not contain ValidatorIndex and ValidatorAddress fields. The timestamp is
// excluded so votes for the same block stay byte-identical across replicas.
func CanonicalizeVote(chainID string, vote *Vote) CanonicalVote {
	return CanonicalVote{
		Type:    vote.Type,
		Height:  vote.Height,
		Round:   int64(vote.Round),
		BlockID: CanonicalizeBlockID(vote.BlockID),
		ChainID: chainID,
	}
}

// CanonicalizeProposal transforms the given Proposal to a CanonicalProposal.
func CanonicalizeProposal(chainID string, proposal *Proposal) CanonicalProposal {
	return CanonicalProposal{
		Type:      ProposalType,
		Height:    proposal.Height,
		Round:     int64(proposal.Round),
		POLRound:  int64(proposal.POLRound),
		BlockID:   CanonicalizeBlockID(proposal.BlockID),
		Timestamp: proposal.Timestamp.UTC(),
		ChainID:   chainID,
	}
}

// CanonicalizeProposalPart transforms the given ProposalPart to a
// CanonicalProposalPart.
func CanonicalizeProposalPart(chainID string, part *ProposalPart) CanonicalProposalPart {
	return CanonicalProposalPart{
		Height:  part.Height,
		Round:   int64(part.Round),
		Index:   part.Index,
		Total:   part.Total,
		Data:    part.Data,
		ChainID: chainID,
	}
}

// signBytes marshals a canonical struct. It panics on a marshal error: the
// canonical structs contain no user-controlled shapes, so failure here is a
// programming error, per the Signable contract.
func signBytes(v any) []byte {
	bz, err := signBytesEncMode.Marshal(v)
	if err != nil {
		panic(err)
	}
	return bz
}
