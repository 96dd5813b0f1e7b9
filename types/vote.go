package types

import (
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

var (
	ErrVoteInvalidType           = errors.New("invalid vote type")
	ErrVoteNegativeHeight        = errors.New("negative height")
	ErrVoteNegativeRound         = errors.New("negative round")
	ErrVoteInvalidBlockID        = errors.New("invalid block ID")
	ErrVoteInvalidValidatorIndex = errors.New("invalid validator index")
)

// Vote represents a prevote or precommit from a validator for a block (or
// nil, when BlockID is zero).
type Vote struct {
	Type             SignedMsgType
	Height           int64
	Round            int32
	BlockID          BlockID
	Timestamp        time.Time
	ValidatorAddress common.Address
	ValidatorIndex   int32
}

var _ Signable = (*Vote)(nil)

// SignBytes returns the canonical bytes a vote signature covers. The
// timestamp, validator address and index are excluded.
func (vote *Vote) SignBytes(chainID string) []byte {
	return signBytes(CanonicalizeVote(chainID, vote))
}

// IsNil reports whether this is a vote for nil.
func (vote *Vote) IsNil() bool {
	return vote.BlockID.IsZero()
}

// ValidateBasic checks whether the vote is well-formed. It does not verify
// the signature, which is the signing layer's job.
func (vote *Vote) ValidateBasic() error {
	if !IsVoteTypeValid(vote.Type) {
		return ErrVoteInvalidType
	}
	if vote.Height < 0 {
		return ErrVoteNegativeHeight
	}
	if vote.Round < 0 {
		return ErrVoteNegativeRound
	}
	if err := vote.BlockID.ValidateBasic(); err != nil {
		return fmt.Errorf("%w: %s", ErrVoteInvalidBlockID, err)
	}
	// BlockID.ValidateBasic would not err if we for instance have an empty
	// hash but a non-empty PartSetHeader:
	if !vote.BlockID.IsZero() && !vote.BlockID.IsComplete() {
		return fmt.Errorf("%w: must be either empty or complete, got: %v",
			ErrVoteInvalidBlockID, vote.BlockID)
	}
	if vote.ValidatorIndex < 0 {
		return ErrVoteInvalidValidatorIndex
	}
	return nil
}

func (vote *Vote) String() string {
	if vote == nil {
		return "nil-Vote"
	}
	return fmt.Sprintf("Vote{%v/%02d/%v(%v) %X @ %s}",
		vote.Height,
		vote.Round,
		vote.Type,
		SignedMsgTypeToShortString(vote.Type),
		vote.BlockID.Hash,
		vote.Timestamp.Format(time.RFC3339Nano),
	)
}
