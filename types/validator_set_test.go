package types_test

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1Money-Co/emerald/crypto/bls12381"
	"github.com/1Money-Co/emerald/types"
)

func newTestValidator(t *testing.T, power int64) *types.Validator {
	t.Helper()
	ikm := make([]byte, bls12381.SecretKeySize)
	_, err := rand.Read(ikm)
	require.NoError(t, err)
	privKey, err := bls12381.GenPrivKeyFromSeed[bls12381.MinPk](ikm)
	require.NoError(t, err)
	return types.NewValidator(privKey.PubKey(), power)
}

func TestNewValidatorAddress(t *testing.T) {
	val := newTestValidator(t, 10)

	pubKey, err := types.ValidatorPubKey[bls12381.MinPk](val)
	require.NoError(t, err)
	hash := pubKey.Hash()
	assert.Equal(t, hash[12:], val.Address.Bytes())
}

func TestNewValidatorSetSortsByPubKeyBytes(t *testing.T) {
	vals := []*types.Validator{
		newTestValidator(t, 10),
		newTestValidator(t, 20),
		newTestValidator(t, 30),
		newTestValidator(t, 40),
	}

	set, err := types.NewValidatorSet(vals)
	require.NoError(t, err)
	require.Equal(t, 4, set.Size())

	for i := 1; i < set.Size(); i++ {
		assert.Negative(t, bytes.Compare(
			set.Validators[i-1].PubKeyBytes,
			set.Validators[i].PubKeyBytes,
		))
	}
	assert.Equal(t, int64(100), set.TotalVotingPower())
	assert.Equal(t, int64(67), set.QuorumPower())
}

func TestNewValidatorSetRejections(t *testing.T) {
	_, err := types.NewValidatorSet(nil)
	require.ErrorIs(t, err, types.ErrEmptyValidatorSet)

	val := newTestValidator(t, 10)
	_, err = types.NewValidatorSet([]*types.Validator{val, val.Copy()})
	require.ErrorIs(t, err, types.ErrDuplicateValidator)

	zero := newTestValidator(t, 10)
	zero.VotingPower = 0
	_, err = types.NewValidatorSet([]*types.Validator{zero})
	require.ErrorIs(t, err, types.ErrValidatorNonPositivePower)

	over := []*types.Validator{
		newTestValidator(t, types.MaxTotalVotingPower),
		newTestValidator(t, 1),
	}
	_, err = types.NewValidatorSet(over)
	require.ErrorIs(t, err, types.ErrTotalPowerOverflow)
}

func TestValidatorSetQuorumPowerAtMaxTotal(t *testing.T) {
	// The largest admissible total must still give a sound quorum
	// threshold: strictly more than two thirds of the total, no wraparound.
	half := types.MaxTotalVotingPower / 2
	set, err := types.NewValidatorSet([]*types.Validator{
		newTestValidator(t, half),
		newTestValidator(t, half),
	})
	require.NoError(t, err)

	total := set.TotalVotingPower()
	require.Equal(t, 2*half, total)

	quorum := set.QuorumPower()
	assert.Positive(t, quorum)
	assert.Greater(t, 3*quorum, 2*total)
	assert.LessOrEqual(t, quorum, total)
}

func TestValidatorSetLookup(t *testing.T) {
	val1 := newTestValidator(t, 10)
	val2 := newTestValidator(t, 20)
	set, err := types.NewValidatorSet([]*types.Validator{val1, val2})
	require.NoError(t, err)

	idx, found := set.GetByAddress(val1.Address)
	require.NotNil(t, found)
	assert.Equal(t, val1.Address, found.Address)
	assert.Equal(t, found, set.GetByIndex(int32(idx)))

	assert.True(t, set.HasAddress(val2.Address))
	assert.False(t, set.HasAddress(newTestValidator(t, 1).Address))
	assert.Nil(t, set.GetByIndex(99))
}

func TestValidatorSetDoesNotAliasInput(t *testing.T) {
	val := newTestValidator(t, 10)
	set, err := types.NewValidatorSet([]*types.Validator{val})
	require.NoError(t, err)

	// Mutating the caller's validator must not change the set.
	val.VotingPower = 999
	assert.Equal(t, int64(10), set.Validators[0].VotingPower)
}
