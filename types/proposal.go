package types

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrProposalNegativeHeight  = errors.New("negative height")
	ErrProposalNegativeRound   = errors.New("negative round")
	ErrProposalInvalidPOLRound = errors.New("invalid POL round")
	ErrProposalInvalidBlockID  = errors.New("invalid block ID")
)

// Proposal defines a block proposal for the consensus. It must be signed by
// the correct proposer for the given height/round to be considered valid.
// It may depend on votes from a previous round, a so-called Proof-of-Lock
// (POL) round, as noted in POLRound.
type Proposal struct {
	Height    int64
	Round     int32
	POLRound  int32 // -1 if no POL
	BlockID   BlockID
	Timestamp time.Time
}

var _ Signable = (*Proposal)(nil)

// SignBytes returns the canonical bytes a proposal signature covers.
func (p *Proposal) SignBytes(chainID string) []byte {
	return signBytes(CanonicalizeProposal(chainID, p))
}

// ValidateBasic performs basic validation.
func (p *Proposal) ValidateBasic() error {
	if p.Height < 0 {
		return ErrProposalNegativeHeight
	}
	if p.Round < 0 {
		return ErrProposalNegativeRound
	}
	if p.POLRound < -1 || p.POLRound >= p.Round {
		return fmt.Errorf("%w: %d", ErrProposalInvalidPOLRound, p.POLRound)
	}
	if err := p.BlockID.ValidateBasic(); err != nil {
		return fmt.Errorf("%w: %s", ErrProposalInvalidBlockID, err)
	}
	// A proposal is for an actual block, never nil.
	if !p.BlockID.IsComplete() {
		return fmt.Errorf("%w: expected a complete block ID, got: %v",
			ErrProposalInvalidBlockID, p.BlockID)
	}
	return nil
}

func (p *Proposal) String() string {
	if p == nil {
		return "nil-Proposal"
	}
	return fmt.Sprintf("Proposal{%v/%v (%v, %v) @ %s}",
		p.Height,
		p.Round,
		p.BlockID,
		p.POLRound,
		p.Timestamp.Format(time.RFC3339Nano),
	)
}
