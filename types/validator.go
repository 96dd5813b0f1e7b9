package types

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/1Money-Co/emerald/crypto/bls12381"
)

var (
	ErrValidatorNonPositivePower = errors.New("validator has non-positive voting power")
)

// Validator is one entry of the validator set: a BLS verification identity
// with its voting power. The address is the last 20 bytes of the keccak-256
// hash of the canonical public key encoding, and is what the validator
// registry indexes by.
type Validator struct {
	Address     common.Address
	PubKeyBytes []byte
	VotingPower int64
}

// NewValidator builds a Validator from a decoded public key. The stored
// bytes are the key's canonical encoding.
func NewValidator[V bls12381.Variant](pubKey bls12381.PubKey[V], power int64) *Validator {
	hash := pubKey.Hash()
	return &Validator{
		Address:     common.BytesToAddress(hash[12:]),
		PubKeyBytes: pubKey.Bytes(),
		VotingPower: power,
	}
}

// ValidatorPubKey decodes the stored canonical bytes back into a typed public key.
// The variant must be the one the validator was built with; a mismatched
// variant fails on the length check.
func ValidatorPubKey[V bls12381.Variant](val *Validator) (bls12381.PubKey[V], error) {
	return bls12381.PubKeyFromBytes[V](val.PubKeyBytes)
}

// ValidateBasic performs basic validation.
func (v *Validator) ValidateBasic() error {
	if v == nil {
		return errors.New("nil validator")
	}
	if v.VotingPower <= 0 {
		return fmt.Errorf("%w: %d", ErrValidatorNonPositivePower, v.VotingPower)
	}
	if len(v.PubKeyBytes) != bls12381.PubKeySizeMinPk &&
		len(v.PubKeyBytes) != bls12381.PubKeySizeMinSig {
		return fmt.Errorf("wrong public key size: %d", len(v.PubKeyBytes))
	}
	return nil
}

// Copy returns a deep copy.
func (v *Validator) Copy() *Validator {
	vCopy := *v
	vCopy.PubKeyBytes = append([]byte(nil), v.PubKeyBytes...)
	return &vCopy
}

func (v *Validator) String() string {
	if v == nil {
		return "nil-Validator"
	}
	return fmt.Sprintf("Validator{%s VP:%d}", v.Address.Hex(), v.VotingPower)
}
