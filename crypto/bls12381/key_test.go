package bls12381_test

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1Money-Co/emerald/crypto/bls12381"
)

func randSeed(t *testing.T) []byte {
	t.Helper()
	ikm := make([]byte, bls12381.SecretKeySize)
	_, err := rand.Read(ikm)
	require.NoError(t, err)
	return ikm
}

func testSignVerifyRoundTrip[V bls12381.Variant](t *testing.T) {
	t.Helper()

	privKey, err := bls12381.GenPrivKeyFromSeed[V](randSeed(t))
	require.NoError(t, err)
	pubKey := privKey.PubKey()
	msg := []byte("hello bls")

	sig := privKey.Sign(msg)

	assert.True(t, pubKey.VerifySignature(msg, sig))
	assert.True(t, sig.Verify(msg, pubKey))

	// Tampered message must not verify.
	assert.False(t, pubKey.VerifySignature([]byte("hello bls!"), sig))
}

func TestSignVerifyRoundTripMinPk(t *testing.T) {
	testSignVerifyRoundTrip[bls12381.MinPk](t)
}

func TestSignVerifyRoundTripMinSig(t *testing.T) {
	testSignVerifyRoundTrip[bls12381.MinSig](t)
}

func testDeterministicSignature[V bls12381.Variant](t *testing.T) {
	t.Helper()

	privKey, err := bls12381.GenPrivKeyFromSeed[V](randSeed(t))
	require.NoError(t, err)
	msg := []byte("the same message")

	sig1 := privKey.Sign(msg)
	sig2 := privKey.Sign(msg)
	assert.True(t, sig1.Equals(sig2))
	assert.Equal(t, sig1.Bytes(), sig2.Bytes())
}

func TestDeterministicSignatureMinPk(t *testing.T) {
	testDeterministicSignature[bls12381.MinPk](t)
}

func TestDeterministicSignatureMinSig(t *testing.T) {
	testDeterministicSignature[bls12381.MinSig](t)
}

func testCrossKeyRejection[V bls12381.Variant](t *testing.T) {
	t.Helper()

	privKey1, err := bls12381.GenPrivKeyFromSeed[V](randSeed(t))
	require.NoError(t, err)
	privKey2, err := bls12381.GenPrivKeyFromSeed[V](randSeed(t))
	require.NoError(t, err)
	require.False(t, privKey1.PubKey().Equals(privKey2.PubKey()))

	msg := []byte("vote for height 42")
	sig := privKey1.Sign(msg)

	assert.True(t, privKey1.PubKey().VerifySignature(msg, sig))
	assert.False(t, privKey2.PubKey().VerifySignature(msg, sig))
}

func TestCrossKeyRejectionMinPk(t *testing.T) {
	testCrossKeyRejection[bls12381.MinPk](t)
}

func TestCrossKeyRejectionMinSig(t *testing.T) {
	testCrossKeyRejection[bls12381.MinSig](t)
}

func testCanonicalRoundTrip[V bls12381.Variant](t *testing.T) {
	t.Helper()

	privKey, err := bls12381.GenPrivKeyFromSeed[V](randSeed(t))
	require.NoError(t, err)
	pubBytes := privKey.PubKey().Bytes()
	sigBytes := privKey.Sign([]byte("canonical")).Bytes()

	pubKey, err := bls12381.PubKeyFromBytes[V](pubBytes)
	require.NoError(t, err)
	assert.Equal(t, pubBytes, pubKey.Bytes())

	sig, err := bls12381.SignatureFromBytes[V](sigBytes)
	require.NoError(t, err)
	assert.Equal(t, sigBytes, sig.Bytes())
}

func TestCanonicalRoundTripMinPk(t *testing.T) {
	testCanonicalRoundTrip[bls12381.MinPk](t)
}

func TestCanonicalRoundTripMinSig(t *testing.T) {
	testCanonicalRoundTrip[bls12381.MinSig](t)
}

func testLengthRejection[V bls12381.Variant](t *testing.T, pubKeySize, sigSize int) {
	t.Helper()

	for _, n := range []int{0, pubKeySize - 1, pubKeySize + 1, 2 * pubKeySize} {
		_, err := bls12381.PubKeyFromBytes[V](make([]byte, n))
		assert.ErrorIs(t, err, bls12381.ErrInvalidLength, "public key length %d", n)
	}
	for _, n := range []int{0, sigSize - 1, sigSize + 1, 2 * sigSize} {
		_, err := bls12381.SignatureFromBytes[V](make([]byte, n))
		assert.ErrorIs(t, err, bls12381.ErrInvalidLength, "signature length %d", n)
	}
}

func TestLengthRejectionMinPk(t *testing.T) {
	testLengthRejection[bls12381.MinPk](t, bls12381.PubKeySizeMinPk, bls12381.SignatureSizeMinPk)
}

func TestLengthRejectionMinSig(t *testing.T) {
	testLengthRejection[bls12381.MinSig](t, bls12381.PubKeySizeMinSig, bls12381.SignatureSizeMinSig)
}

func TestInvalidPointRejection(t *testing.T) {
	// Correct length, but not an encoding of a curve point.
	garbage := make([]byte, bls12381.PubKeySizeMinPk)
	for i := range garbage {
		garbage[i] = 0xff
	}
	_, err := bls12381.PubKeyFromBytes[bls12381.MinPk](garbage)
	require.ErrorIs(t, err, bls12381.ErrDeserialization)

	garbage = make([]byte, bls12381.SignatureSizeMinSig)
	for i := range garbage {
		garbage[i] = 0xff
	}
	_, err = bls12381.SignatureFromBytes[bls12381.MinSig](garbage)
	require.ErrorIs(t, err, bls12381.ErrDeserialization)
}

func TestPrivKeyFromBytes(t *testing.T) {
	privKey, err := bls12381.GenPrivKey[bls12381.MinPk]()
	require.NoError(t, err)
	defer privKey.Zeroize()

	privKey2, err := bls12381.PrivKeyFromBytes[bls12381.MinPk](privKey.Bytes())
	require.NoError(t, err)
	assert.Equal(t, privKey.Bytes(), privKey2.Bytes())
	assert.True(t, privKey.PubKey().Equals(privKey2.PubKey()))

	_, err = bls12381.PrivKeyFromBytes[bls12381.MinPk](make([]byte, 31))
	assert.ErrorIs(t, err, bls12381.ErrInvalidLength)

	_, err = bls12381.PrivKeyFromBytes[bls12381.MinPk](make([]byte, 32))
	assert.ErrorIs(t, err, bls12381.ErrZeroKey)
}

func TestGenPrivKeyFromSeedRejectsBadSeedLength(t *testing.T) {
	for _, n := range []int{0, 16, 31, 33, 64} {
		_, err := bls12381.GenPrivKeyFromSeed[bls12381.MinPk](make([]byte, n))
		assert.ErrorIs(t, err, bls12381.ErrInvalidLength, "seed length %d", n)
	}
}

func TestGenPrivKeyFromSeedDeterministic(t *testing.T) {
	seed := randSeed(t)

	privKey1, err := bls12381.GenPrivKeyFromSeed[bls12381.MinSig](seed)
	require.NoError(t, err)
	privKey2, err := bls12381.GenPrivKeyFromSeed[bls12381.MinSig](seed)
	require.NoError(t, err)

	assert.Equal(t, privKey1.Bytes(), privKey2.Bytes())
}

func TestPubKeyOrdering(t *testing.T) {
	privKey1, err := bls12381.GenPrivKeyFromSeed[bls12381.MinPk](randSeed(t))
	require.NoError(t, err)
	privKey2, err := bls12381.GenPrivKeyFromSeed[bls12381.MinPk](randSeed(t))
	require.NoError(t, err)

	pub1, pub2 := privKey1.PubKey(), privKey2.PubKey()
	require.False(t, pub1.Equals(pub2))

	// Total order: exactly one strict direction, and it is antisymmetric.
	assert.Equal(t, 0, pub1.Compare(pub1))
	assert.Equal(t, -pub2.Compare(pub1), pub1.Compare(pub2))
	assert.NotEqual(t, 0, pub1.Compare(pub2))
}

func TestPubKeyHash(t *testing.T) {
	privKey, err := bls12381.GenPrivKeyFromSeed[bls12381.MinPk](randSeed(t))
	require.NoError(t, err)
	pubKey := privKey.PubKey()

	h1 := pubKey.Hash()
	h2 := pubKey.Hash()
	assert.Equal(t, h1, h2)

	decoded, err := bls12381.PubKeyFromBytes[bls12381.MinPk](pubKey.Bytes())
	require.NoError(t, err)
	assert.Equal(t, h1, decoded.Hash())
}

func TestPrivKeyStringRedacted(t *testing.T) {
	privKey, err := bls12381.GenPrivKeyFromSeed[bls12381.MinSig](randSeed(t))
	require.NoError(t, err)
	assert.Equal(t, "PrivKey{min-sig}", privKey.String())
}
