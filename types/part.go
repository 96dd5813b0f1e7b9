package types

import (
	"errors"
	"fmt"
)

// MaxPartDataSize bounds one proposal part's payload (1 MiB).
const MaxPartDataSize = 1 << 20

var (
	ErrPartNegativeHeight  = errors.New("negative height")
	ErrPartNegativeRound   = errors.New("negative round")
	ErrPartIndexOutOfRange = errors.New("part index out of range")
	ErrPartEmptyData       = errors.New("empty part data")
	ErrPartDataTooBig      = errors.New("part data exceeds maximum size")
)

// ProposalPart is one fragment of a proposed value, streamed to peers while
// the full proposal is assembled. Each part is signed individually so
// peers can discard forged fragments before the value is complete.
type ProposalPart struct {
	Height int64
	Round  int32
	Index  uint32
	Total  uint32
	Data   []byte
}

var _ Signable = (*ProposalPart)(nil)

// SignBytes returns the canonical bytes a proposal-part signature covers.
func (part *ProposalPart) SignBytes(chainID string) []byte {
	return signBytes(CanonicalizeProposalPart(chainID, part))
}

// ValidateBasic performs basic validation.
func (part *ProposalPart) ValidateBasic() error {
	if part.Height < 0 {
		return ErrPartNegativeHeight
	}
	if part.Round < 0 {
		return ErrPartNegativeRound
	}
	if part.Total == 0 || part.Index >= part.Total {
		return fmt.Errorf("%w: index %d, total %d", ErrPartIndexOutOfRange, part.Index, part.Total)
	}
	if len(part.Data) == 0 {
		return ErrPartEmptyData
	}
	if len(part.Data) > MaxPartDataSize {
		return fmt.Errorf("%w: %d > %d", ErrPartDataTooBig, len(part.Data), MaxPartDataSize)
	}
	return nil
}

func (part *ProposalPart) String() string {
	if part == nil {
		return "nil-ProposalPart"
	}
	return fmt.Sprintf("ProposalPart{%v/%v %d/%d %d bytes}",
		part.Height, part.Round, part.Index, part.Total, len(part.Data))
}
