package types

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/ethereum/go-ethereum/common"
)

// MaxTotalVotingPower is the maximum allowed total voting power. It keeps
// quorum arithmetic (total*2/3 + 1) far away from int64 overflow.
const MaxTotalVotingPower = int64(math.MaxInt64) / 8

var (
	ErrEmptyValidatorSet  = errors.New("validator set is empty")
	ErrDuplicateValidator = errors.New("duplicate validator public key")
	ErrTotalPowerOverflow = fmt.Errorf("total voting power exceeds %d", MaxTotalVotingPower)
)

// ValidatorSet holds the active validators in a canonical order: sorted by
// the lexicographic order of their canonical public key bytes. That order
// is a pure byte comparison, so every replica derives the same set layout
// without any cryptographic interpretation.
type ValidatorSet struct {
	Validators []*Validator

	totalVotingPower int64
}

// NewValidatorSet validates, dedups and sorts the given validators. The
// input slice is not retained.
func NewValidatorSet(vals []*Validator) (*ValidatorSet, error) {
	if len(vals) == 0 {
		return nil, ErrEmptyValidatorSet
	}

	copied := make([]*Validator, len(vals))
	for i, val := range vals {
		if err := val.ValidateBasic(); err != nil {
			return nil, fmt.Errorf("invalid validator %d: %w", i, err)
		}
		copied[i] = val.Copy()
	}

	sort.Slice(copied, func(i, j int) bool {
		return bytes.Compare(copied[i].PubKeyBytes, copied[j].PubKeyBytes) < 0
	})

	var total int64
	for i, val := range copied {
		if i > 0 && bytes.Equal(copied[i-1].PubKeyBytes, val.PubKeyBytes) {
			return nil, fmt.Errorf("%w: %X", ErrDuplicateValidator, val.PubKeyBytes)
		}
		if val.VotingPower > MaxTotalVotingPower-total {
			return nil, ErrTotalPowerOverflow
		}
		total += val.VotingPower
	}

	return &ValidatorSet{
		Validators:       copied,
		totalVotingPower: total,
	}, nil
}

// Size returns the number of validators.
func (vals *ValidatorSet) Size() int {
	return len(vals.Validators)
}

// TotalVotingPower returns the sum of all voting powers.
func (vals *ValidatorSet) TotalVotingPower() int64 {
	return vals.totalVotingPower
}

// QuorumPower returns the smallest power that constitutes a >2/3 quorum.
func (vals *ValidatorSet) QuorumPower() int64 {
	return vals.totalVotingPower*2/3 + 1
}

// GetByAddress returns the index and validator with the given address, or
// (-1, nil) if not present.
func (vals *ValidatorSet) GetByAddress(address common.Address) (int, *Validator) {
	for idx, val := range vals.Validators {
		if val.Address == address {
			return idx, val.Copy()
		}
	}
	return -1, nil
}

// GetByIndex returns the validator at the given index, or nil if out of
// range.
func (vals *ValidatorSet) GetByIndex(index int32) *Validator {
	if index < 0 || int(index) >= len(vals.Validators) {
		return nil
	}
	return vals.Validators[index].Copy()
}

// HasAddress reports whether a validator with the given address is present.
func (vals *ValidatorSet) HasAddress(address common.Address) bool {
	idx, _ := vals.GetByAddress(address)
	return idx >= 0
}

func (vals *ValidatorSet) String() string {
	return fmt.Sprintf("ValidatorSet{size:%d power:%d}", vals.Size(), vals.TotalVotingPower())
}
