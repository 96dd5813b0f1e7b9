package genesis

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// ValidatorKeySize is the raw byte length of a registry key: two 32-byte
// limbs, matching the contract's `bytes32 x, bytes32 y` layout.
const ValidatorKeySize = 64

var (
	ErrEmptyValidatorSet  = errors.New("genesis: empty validator set")
	ErrZeroPower          = errors.New("genesis: validator has zero power")
	ErrDuplicateValidator = errors.New("genesis: duplicate validator key")
	ErrTotalPowerOverflow = errors.New("genesis: total power overflows uint64")
	ErrInvalidKeyLength   = errors.New("genesis: validator key must be 64 bytes")
)

// ValidatorKey is a registry public key as the ValidatorManager contract
// stores it: two big-endian 32-byte limbs.
type ValidatorKey struct {
	X common.Hash
	Y common.Hash
}

// ValidatorKeyFromBytes splits a 64-byte raw key into its limbs.
func ValidatorKeyFromBytes(raw []byte) (ValidatorKey, error) {
	if len(raw) != ValidatorKeySize {
		return ValidatorKey{}, fmt.Errorf("%w: got %d", ErrInvalidKeyLength, len(raw))
	}
	return ValidatorKey{
		X: common.BytesToHash(raw[:32]),
		Y: common.BytesToHash(raw[32:]),
	}, nil
}

// Bytes returns the 64-byte raw form.
func (k ValidatorKey) Bytes() []byte {
	out := make([]byte, 0, ValidatorKeySize)
	out = append(out, k.X.Bytes()...)
	out = append(out, k.Y.Bytes()...)
	return out
}

// Address derives the validator's registry address: the last 20 bytes of
// the keccak-256 hash of the raw key.
func (k ValidatorKey) Address() common.Address {
	return common.BytesToAddress(crypto.Keccak256(k.Bytes())[12:])
}

func (k ValidatorKey) String() string {
	return fmt.Sprintf("ValidatorKey{%s}", k.Address().Hex())
}

// Validator is one registry entry: a key and its voting power.
type Validator struct {
	Key   ValidatorKey
	Power uint64
}

// ValidatorSet is the deduplicated registry content, ordered by validator
// address so every genesis generation run lays storage out identically.
type ValidatorSet struct {
	validators []Validator
	totalPower uint64
}

// NewValidatorSet validates and orders the given validators.
func NewValidatorSet(validators []Validator) (*ValidatorSet, error) {
	if len(validators) == 0 {
		return nil, ErrEmptyValidatorSet
	}

	seen := make(map[ValidatorKey]struct{}, len(validators))
	var total uint64
	for _, val := range validators {
		if val.Power == 0 {
			return nil, fmt.Errorf("%w: %s", ErrZeroPower, val.Key)
		}
		if _, ok := seen[val.Key]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateValidator, val.Key)
		}
		seen[val.Key] = struct{}{}
		if val.Power > math.MaxUint64-total {
			return nil, ErrTotalPowerOverflow
		}
		total += val.Power
	}

	ordered := make([]Validator, len(validators))
	copy(ordered, validators)
	sort.Slice(ordered, func(i, j int) bool {
		ai, aj := ordered[i].Key.Address(), ordered[j].Key.Address()
		return bytes.Compare(ai.Bytes(), aj.Bytes()) < 0
	})

	return &ValidatorSet{validators: ordered, totalPower: total}, nil
}

// Validators returns the ordered entries.
func (s *ValidatorSet) Validators() []Validator {
	return s.validators
}

// OrderedAddresses returns the registry addresses in set order.
func (s *ValidatorSet) OrderedAddresses() []common.Address {
	addrs := make([]common.Address, len(s.validators))
	for i, val := range s.validators {
		addrs[i] = val.Key.Address()
	}
	return addrs
}

// TotalPower returns the sum of all powers.
func (s *ValidatorSet) TotalPower() uint64 {
	return s.totalPower
}

// Len returns the number of validators.
func (s *ValidatorSet) Len() int {
	return len(s.validators)
}
