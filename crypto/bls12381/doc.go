// Package bls12381 implements the dual-variant BLS12-381 signature scheme
// used to authenticate consensus messages.
//
// Two IETF ciphersuites are supported, selected at compile time through a
// type parameter: MinPk places public keys in G1 (48 bytes) with signatures
// in G2 (96 bytes), matching the Ethereum consensus ciphersuite; MinSig is
// the dual arrangement. Each variant carries its own domain-separation tag,
// so a signature produced under one ciphersuite can never verify under the
// other.
//
// PubKey and Signature are immutable canonical wrappers: decoding validates
// the length before any point parsing, performs subgroup checks, and stores
// the re-serialized compressed form rather than the input bytes. Equality
// and ordering are defined over those canonical bytes, giving a total order
// usable for deterministic validator-set sorting.
package bls12381
