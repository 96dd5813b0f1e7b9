package bls12381

import (
	"fmt"

	blst "github.com/supranational/blst/bindings/go"
)

const (
	// SecretKeySize defines the byte length of a serialized secret key.
	// It is shared by both ciphersuite variants.
	SecretKeySize = 32
	// PubKeySizeMinPk defines the byte length of a compressed G1 public key.
	PubKeySizeMinPk = 48
	// SignatureSizeMinPk defines the byte length of a compressed G2 signature.
	SignatureSizeMinPk = 96
	// PubKeySizeMinSig defines the byte length of a compressed G2 public key.
	PubKeySizeMinSig = 96
	// SignatureSizeMinSig defines the byte length of a compressed G1 signature.
	SignatureSizeMinSig = 48
	// KeyType is the string constant for the BLS12-381 algorithm.
	KeyType = "bls12_381"
)

var (
	// IETF BLS ciphersuite for min-pk mode (public key in G1, signature in
	// G2), with PoP. This is the ciphersuite used by Ethereum consensus.
	dstMinPk = []byte("BLS_SIG_BLS12381G2_XMD:SHA-256_SSWU_RO_POP_")

	// IETF BLS ciphersuite for min-sig mode (public key in G2, signature in
	// G1), with PoP.
	dstMinSig = []byte("BLS_SIG_BLS12381G1_XMD:SHA-256_SSWU_RO_POP_")
)

// Variant fixes the parameters of one BLS12-381 ciphersuite: which group
// holds public keys versus signatures, the resulting byte lengths, and the
// domain-separation tag mixed into hash-to-curve. Exactly two variants
// exist, MinPk and MinSig; the unexported primitives keep the set closed so
// the two ciphersuites can never mix at the type level.
//
// All primitives are bytes-in/bytes-out: points are re-parsed on every
// call and never cached across calls.
type Variant interface {
	// Name returns the conventional short name of the ciphersuite.
	Name() string
	// PubKeySize returns the compressed public key length in bytes.
	PubKeySize() int
	// SignatureSize returns the compressed signature length in bytes.
	SignatureSize() int
	// DST returns the ciphersuite's domain-separation tag.
	DST() []byte

	pubKeyFromSecretKey(sk *blst.SecretKey) []byte
	decodePubKey(bz []byte) ([]byte, error)
	decodeSignature(bz []byte) ([]byte, error)
	sign(sk *blst.SecretKey, msg []byte) []byte
	verify(sig, msg, pub []byte) bool
}

// MinPk is the minimal-public-key-size ciphersuite: public keys in G1
// (48 bytes), signatures in G2 (96 bytes). Ethereum consensus uses this
// variant.
type MinPk struct{}

// MinSig is the minimal-signature-size ciphersuite: public keys in G2
// (96 bytes), signatures in G1 (48 bytes).
type MinSig struct{}

var (
	_ Variant = MinPk{}
	_ Variant = MinSig{}
)

func (MinPk) Name() string { return "min-pk" }

func (MinPk) PubKeySize() int { return PubKeySizeMinPk }

func (MinPk) SignatureSize() int { return SignatureSizeMinPk }

func (MinPk) DST() []byte { return dstMinPk }

func (MinPk) pubKeyFromSecretKey(sk *blst.SecretKey) []byte {
	return new(blst.P1Affine).From(sk).Compress()
}

func (MinPk) decodePubKey(bz []byte) ([]byte, error) {
	pk := new(blst.P1Affine).Uncompress(bz)
	if pk == nil {
		return nil, fmt.Errorf("%w: invalid public key point", ErrDeserialization)
	}
	// Subgroup and infinity check.
	if !pk.KeyValidate() {
		return nil, fmt.Errorf("%w: public key failed key validation", ErrDeserialization)
	}
	return pk.Compress(), nil
}

func (MinPk) decodeSignature(bz []byte) ([]byte, error) {
	sig := new(blst.P2Affine).Uncompress(bz)
	if sig == nil {
		return nil, fmt.Errorf("%w: invalid signature point", ErrDeserialization)
	}
	if !sig.SigValidate(false) {
		return nil, fmt.Errorf("%w: signature not in group", ErrDeserialization)
	}
	return sig.Compress(), nil
}

func (MinPk) sign(sk *blst.SecretKey, msg []byte) []byte {
	return new(blst.P2Affine).Sign(sk, msg, dstMinPk).Compress()
}

func (MinPk) verify(sig, msg, pub []byte) bool {
	s := new(blst.P2Affine).Uncompress(sig)
	if s == nil {
		return false
	}
	p := new(blst.P1Affine).Uncompress(pub)
	if p == nil {
		return false
	}
	return s.Verify(true, p, true, msg, dstMinPk)
}

func (MinSig) Name() string { return "min-sig" }

func (MinSig) PubKeySize() int { return PubKeySizeMinSig }

func (MinSig) SignatureSize() int { return SignatureSizeMinSig }

func (MinSig) DST() []byte { return dstMinSig }

func (MinSig) pubKeyFromSecretKey(sk *blst.SecretKey) []byte {
	return new(blst.P2Affine).From(sk).Compress()
}

func (MinSig) decodePubKey(bz []byte) ([]byte, error) {
	pk := new(blst.P2Affine).Uncompress(bz)
	if pk == nil {
		return nil, fmt.Errorf("%w: invalid public key point", ErrDeserialization)
	}
	if !pk.KeyValidate() {
		return nil, fmt.Errorf("%w: public key failed key validation", ErrDeserialization)
	}
	return pk.Compress(), nil
}

func (MinSig) decodeSignature(bz []byte) ([]byte, error) {
	sig := new(blst.P1Affine).Uncompress(bz)
	if sig == nil {
		return nil, fmt.Errorf("%w: invalid signature point", ErrDeserialization)
	}
	if !sig.SigValidate(false) {
		return nil, fmt.Errorf("%w: signature not in group", ErrDeserialization)
	}
	return sig.Compress(), nil
}

func (MinSig) sign(sk *blst.SecretKey, msg []byte) []byte {
	return new(blst.P1Affine).Sign(sk, msg, dstMinSig).Compress()
}

func (MinSig) verify(sig, msg, pub []byte) bool {
	s := new(blst.P1Affine).Uncompress(sig)
	if s == nil {
		return false
	}
	p := new(blst.P2Affine).Uncompress(pub)
	if p == nil {
		return false
	}
	return s.Verify(true, p, true, msg, dstMinSig)
}
