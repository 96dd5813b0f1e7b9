package privval

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/common"

	"github.com/1Money-Co/emerald/crypto/bls12381"
)

// FilePVKey is the on-disk form of a validator key: raw key material in
// hex, plus the derived identity fields for operator convenience. Only the
// private key field is authoritative; the rest is re-derived on load.
type FilePVKey struct {
	Address string `json:"address"`
	PubKey  string `json:"pub_key"`
	PrivKey string `json:"priv_key"`
	Variant string `json:"variant"`
}

// FilePV wraps a private key stored in a JSON file. Unlike a full remote
// signer there is no signing state here: the file holds key material only.
type FilePV[V bls12381.Variant] struct {
	Key      FilePVKey
	privKey  bls12381.PrivKey[V]
	filePath string
}

// GenFilePV generates a new key and wraps it for the given path. Call
// Save to persist it.
func GenFilePV[V bls12381.Variant](filePath string) (*FilePV[V], error) {
	privKey, err := bls12381.GenPrivKey[V]()
	if err != nil {
		return nil, err
	}
	return newFilePV(privKey, filePath), nil
}

// NewFilePV wraps an existing key for the given path.
func NewFilePV[V bls12381.Variant](privKey bls12381.PrivKey[V], filePath string) *FilePV[V] {
	return newFilePV(privKey, filePath)
}

func newFilePV[V bls12381.Variant](privKey bls12381.PrivKey[V], filePath string) *FilePV[V] {
	var v V
	pubKey := privKey.PubKey()
	hash := pubKey.Hash()
	return &FilePV[V]{
		Key: FilePVKey{
			Address: common.BytesToAddress(hash[12:]).Hex(),
			PubKey:  hex.EncodeToString(pubKey.Bytes()),
			PrivKey: hex.EncodeToString(privKey.Bytes()),
			Variant: v.Name(),
		},
		privKey:  privKey,
		filePath: filePath,
	}
}

// LoadFilePV reads a key file and rebuilds the private key from the raw
// key material. The file's variant tag must match V, so a min-sig key file
// cannot silently feed a min-pk signer.
func LoadFilePV[V bls12381.Variant](filePath string) (*FilePV[V], error) {
	bz, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("reading key file %s: %w", filePath, err)
	}

	var key FilePVKey
	if err := json.Unmarshal(bz, &key); err != nil {
		return nil, fmt.Errorf("parsing key file %s: %w", filePath, err)
	}

	var v V
	if key.Variant != v.Name() {
		return nil, fmt.Errorf("key file %s holds a %q key, expected %q",
			filePath, key.Variant, v.Name())
	}

	raw, err := hex.DecodeString(key.PrivKey)
	if err != nil {
		return nil, fmt.Errorf("decoding private key hex: %w", err)
	}
	privKey, err := bls12381.PrivKeyFromBytes[V](raw)
	if err != nil {
		return nil, err
	}

	pv := newFilePV(privKey, filePath)
	return pv, nil
}

// Save writes the key file with owner-only permissions.
func (pv *FilePV[V]) Save() error {
	bz, err := json.MarshalIndent(pv.Key, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(pv.filePath, bz, 0o600)
}

// PrivKey returns the held private key.
func (pv *FilePV[V]) PrivKey() bls12381.PrivKey[V] {
	return pv.privKey
}

// PubKey returns the derived public key.
func (pv *FilePV[V]) PubKey() bls12381.PubKey[V] {
	return pv.privKey.PubKey()
}

// Signer returns a signing capability over this key for the given chain.
func (pv *FilePV[V]) Signer(chainID string) *Signer[V] {
	return NewSigner(pv.privKey, chainID)
}

// String never reveals key material.
func (pv *FilePV[V]) String() string {
	return fmt.Sprintf("FilePV{%s %s}", pv.Key.Variant, pv.Key.Address)
}
