package bls12381_test

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1Money-Co/emerald/crypto/bls12381"
)

// Vectors from ethereum/bls12-381-tests v0.1.2 (min-pk ciphersuite):
// verify/verify_valid_case_195246ee3bd3b6ec.json and
// verify/verify_wrong_pubkey_case_195246ee3bd3b6ec.json.
const (
	conformanceMessage = "abababababababababababababababab" +
		"abababababababababababababababab"
	conformancePubKey = "b53d21a4cfd562c469cc81514d4ce5a6" +
		"b577d8403d32a394dc265dd190b47fa9" +
		"f829fdd7963afdf972e5e77854051f6f"
	conformanceSignatureValid = "ae82747ddeefe4fd64cf9cedb9b04ae3" +
		"e8a43420cd255e3c7cd06a8d88b7c7f8" +
		"638543719981c5d16fa3527c468c25f0" +
		"026704a6951bde891360c7e8d12ddee0" +
		"559004ccdbe6046b55bae1b257ee97f7" +
		"cdb955773d7cf29adf3ccbb9975e4eb9"
	conformanceSignatureWrongPubKey = "9674e2228034527f4c083206032b0203" +
		"10face156d4a4685e2fcaec2f6f3665a" +
		"a635d90347b6ce124eb879266b1e801d" +
		"185de36a0a289b85e9039662634f2eea" +
		"1e02e670bc7ab849d006a70b2f93b845" +
		"97558a05b879c8d445f387a5d5b653df"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	bz, err := hex.DecodeString(s)
	require.NoError(t, err)
	return bz
}

func TestEthereumVectorVerifyValidCase(t *testing.T) {
	pubKey, err := bls12381.PubKeyFromBytes[bls12381.MinPk](mustHex(t, conformancePubKey))
	require.NoError(t, err)
	sig, err := bls12381.SignatureFromBytes[bls12381.MinPk](mustHex(t, conformanceSignatureValid))
	require.NoError(t, err)

	assert.True(t, sig.Verify(mustHex(t, conformanceMessage), pubKey))
}

func TestEthereumVectorVerifyWrongPubKeyCase(t *testing.T) {
	pubKey, err := bls12381.PubKeyFromBytes[bls12381.MinPk](mustHex(t, conformancePubKey))
	require.NoError(t, err)
	sig, err := bls12381.SignatureFromBytes[bls12381.MinPk](mustHex(t, conformanceSignatureWrongPubKey))
	require.NoError(t, err)

	assert.False(t, sig.Verify(mustHex(t, conformanceMessage), pubKey))
}

func TestEthereumVectorCanonicalRoundTrip(t *testing.T) {
	pubBytes := mustHex(t, conformancePubKey)
	pubKey, err := bls12381.PubKeyFromBytes[bls12381.MinPk](pubBytes)
	require.NoError(t, err)
	assert.Equal(t, pubBytes, pubKey.Bytes())

	sigBytes := mustHex(t, conformanceSignatureValid)
	sig, err := bls12381.SignatureFromBytes[bls12381.MinPk](sigBytes)
	require.NoError(t, err)
	assert.Equal(t, sigBytes, sig.Bytes())
}
