package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1Money-Co/emerald/types"
)

func TestVerificationResult(t *testing.T) {
	assert.True(t, types.VerificationResultFromBool(true).IsValid())
	assert.False(t, types.VerificationResultFromBool(false).IsValid())
	assert.Equal(t, "valid", types.SignatureValid.String())
	assert.Equal(t, "invalid", types.SignatureInvalid.String())
}

func TestVoteExtensionSignBytesIsFatal(t *testing.T) {
	ext := types.VoteExtension([]byte("extension data"))
	require.Panics(t, func() {
		ext.SignBytes("emerald-test")
	})
}
