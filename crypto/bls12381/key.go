package bls12381

import (
	"bytes"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"

	blst "github.com/supranational/blst/bindings/go"
	"golang.org/x/crypto/sha3"
)

var (
	// ErrDeserialization is returned when bytes do not encode a valid point
	// in the variant's expected subgroup, or a valid secret scalar.
	ErrDeserialization = errors.New("bls12381: deserialization error")

	// ErrInvalidLength is returned, before any point parsing is attempted,
	// when the input byte length does not match the variant's fixed encoding
	// length.
	ErrInvalidLength = errors.New("bls12381: invalid encoding length")

	// ErrZeroKey is returned when key material is all zeros.
	ErrZeroKey = errors.New("bls12381: secret key is zero")
)

// ===============================================================================================
// Private Key
// ===============================================================================================

// PrivKey is a BLS12-381 secret key scoped to one ciphersuite variant. It is
// created by import from exactly 32 raw bytes or by key generation from a
// 32-byte seed, and is immutable afterwards.
type PrivKey[V Variant] struct {
	sk *blst.SecretKey
}

// GenPrivKey generates a new key from OS randomness.
func GenPrivKey[V Variant]() (PrivKey[V], error) {
	var ikm [SecretKeySize]byte
	if _, err := rand.Read(ikm[:]); err != nil {
		return PrivKey[V]{}, err
	}
	return GenPrivKeyFromSeed[V](ikm[:])
}

// GenPrivKeyFromSeed derives a key from exactly 32 bytes of seed material
// using the ciphersuite's KeyGen procedure.
func GenPrivKeyFromSeed[V Variant](ikm []byte) (PrivKey[V], error) {
	if len(ikm) != SecretKeySize {
		return PrivKey[V]{}, fmt.Errorf("%w: seed must be %d bytes, got %d",
			ErrInvalidLength, SecretKeySize, len(ikm))
	}
	sk := blst.KeyGen(ikm)
	if sk == nil {
		return PrivKey[V]{}, fmt.Errorf("%w: key generation failed", ErrDeserialization)
	}
	return PrivKey[V]{sk: sk}, nil
}

// PrivKeyFromBytes builds a key from its 32-byte serialized form.
func PrivKeyFromBytes[V Variant](bz []byte) (PrivKey[V], error) {
	if len(bz) != SecretKeySize {
		return PrivKey[V]{}, fmt.Errorf("%w: secret key must be %d bytes, got %d",
			ErrInvalidLength, SecretKeySize, len(bz))
	}
	if isZero(bz) {
		return PrivKey[V]{}, ErrZeroKey
	}
	sk := new(blst.SecretKey).Deserialize(bz)
	if sk == nil {
		return PrivKey[V]{}, fmt.Errorf("%w: invalid secret key", ErrDeserialization)
	}
	return PrivKey[V]{sk: sk}, nil
}

// Bytes returns the 32-byte serialized form of the key.
func (privKey PrivKey[V]) Bytes() []byte {
	return privKey.sk.Serialize()
}

// PubKey derives the public key of this secret key.
func (privKey PrivKey[V]) PubKey() PubKey[V] {
	var v V
	return PubKey[V]{bz: v.pubKeyFromSecretKey(privKey.sk)}
}

// Sign signs the given message under the variant's domain-separation tag.
// The signature is a deterministic function of the key and the message.
func (privKey PrivKey[V]) Sign(msg []byte) Signature[V] {
	var v V
	return Signature[V]{bz: v.sign(privKey.sk, msg)}
}

// Zeroize clears the secret scalar.
func (privKey *PrivKey[V]) Zeroize() {
	privKey.sk.Zeroize()
}

// Type returns the key algorithm name.
func (PrivKey[V]) Type() string {
	return KeyType
}

// String never reveals key material.
func (PrivKey[V]) String() string {
	var v V
	return fmt.Sprintf("PrivKey{%s}", v.Name())
}

func isZero(bz []byte) bool {
	b := byte(0)
	for _, s := range bz {
		b |= s
	}
	return subtle.ConstantTimeByteEq(b, 0) == 1
}

// ===============================================================================================
// Public Key
// ===============================================================================================

// PubKey is the canonical compressed encoding of a BLS12-381 public key,
// scoped to one ciphersuite variant. Construction goes through
// PubKeyFromBytes (or PrivKey.PubKey), so a PubKey value always holds the
// unique canonical form: decode re-serializes the parsed point and stores
// that, not the caller's input.
type PubKey[V Variant] struct {
	bz []byte
}

// PubKeyFromBytes decodes a compressed public key. It fails if the length
// differs from the variant's fixed public key length, or if the bytes do
// not encode a valid point in the required subgroup.
func PubKeyFromBytes[V Variant](bz []byte) (PubKey[V], error) {
	var v V
	if len(bz) != v.PubKeySize() {
		return PubKey[V]{}, fmt.Errorf("%w: public key must be %d bytes, got %d",
			ErrInvalidLength, v.PubKeySize(), len(bz))
	}
	canonical, err := v.decodePubKey(bz)
	if err != nil {
		return PubKey[V]{}, err
	}
	return PubKey[V]{bz: canonical}, nil
}

// Bytes returns the canonical compressed encoding.
func (pubKey PubKey[V]) Bytes() []byte {
	return bytes.Clone(pubKey.bz)
}

// Equals reports whether two public keys have the same canonical encoding.
func (pubKey PubKey[V]) Equals(other PubKey[V]) bool {
	return bytes.Equal(pubKey.bz, other.bz)
}

// Compare orders public keys lexicographically over their canonical bytes.
func (pubKey PubKey[V]) Compare(other PubKey[V]) int {
	return bytes.Compare(pubKey.bz, other.bz)
}

// Hash returns the keccak-256 digest of the canonical encoding, used for
// identity lookups by the validator registry.
func (pubKey PubKey[V]) Hash() [32]byte {
	var h [32]byte
	d := sha3.NewLegacyKeccak256()
	d.Write(pubKey.bz)
	d.Sum(h[:0])
	return h
}

// VerifySignature reports whether sig is a valid signature by this key over
// msg. A mismatch yields false, never an error; the signature and key
// points are re-parsed with subgroup checks enabled on every call.
func (pubKey PubKey[V]) VerifySignature(msg []byte, sig Signature[V]) bool {
	var v V
	return v.verify(sig.bz, msg, pubKey.bz)
}

func (pubKey PubKey[V]) String() string {
	var v V
	return fmt.Sprintf("PubKey{%s:%s}", v.Name(), hex.EncodeToString(pubKey.bz))
}

// Type returns the key algorithm name.
func (PubKey[V]) Type() string {
	return KeyType
}

// ===============================================================================================
// Signature
// ===============================================================================================

// Signature is the canonical compressed encoding of a BLS12-381 signature,
// scoped to one ciphersuite variant. The same canonicalization, equality
// and ordering contract as PubKey applies, over the signature's own fixed
// length.
type Signature[V Variant] struct {
	bz []byte
}

// SignatureFromBytes decodes a compressed signature, enforcing the
// variant's fixed length and group membership, and stores the re-serialized
// canonical form.
func SignatureFromBytes[V Variant](bz []byte) (Signature[V], error) {
	var v V
	if len(bz) != v.SignatureSize() {
		return Signature[V]{}, fmt.Errorf("%w: signature must be %d bytes, got %d",
			ErrInvalidLength, v.SignatureSize(), len(bz))
	}
	canonical, err := v.decodeSignature(bz)
	if err != nil {
		return Signature[V]{}, err
	}
	return Signature[V]{bz: canonical}, nil
}

// Bytes returns the canonical compressed encoding.
func (sig Signature[V]) Bytes() []byte {
	return bytes.Clone(sig.bz)
}

// Equals reports whether two signatures have the same canonical encoding.
func (sig Signature[V]) Equals(other Signature[V]) bool {
	return bytes.Equal(sig.bz, other.bz)
}

// Compare orders signatures lexicographically over their canonical bytes.
func (sig Signature[V]) Compare(other Signature[V]) int {
	return bytes.Compare(sig.bz, other.bz)
}

// Verify reports whether this signature is valid for msg under pubKey.
// It is the same predicate as PubKey.VerifySignature.
func (sig Signature[V]) Verify(msg []byte, pubKey PubKey[V]) bool {
	return pubKey.VerifySignature(msg, sig)
}

func (sig Signature[V]) String() string {
	var v V
	return fmt.Sprintf("Signature{%s:%s}", v.Name(), hex.EncodeToString(sig.bz))
}
