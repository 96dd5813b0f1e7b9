package types

import (
	"bytes"
	"fmt"
)

// HashSize is the byte length of block and part-set hashes.
const HashSize = 32

// PartSetHeader identifies the part set a proposed value is split into.
type PartSetHeader struct {
	Total uint32
	Hash  []byte
}

func (psh PartSetHeader) Equals(other PartSetHeader) bool {
	return psh.Total == other.Total && bytes.Equal(psh.Hash, other.Hash)
}

func (psh PartSetHeader) IsZero() bool {
	return psh.Total == 0 && len(psh.Hash) == 0
}

// ValidateBasic performs basic validation.
func (psh PartSetHeader) ValidateBasic() error {
	// Hash can be empty in case of POLBlockID in Proposal.
	if err := validateHash(psh.Hash); err != nil {
		return fmt.Errorf("wrong Hash: %w", err)
	}
	return nil
}

func (psh PartSetHeader) String() string {
	return fmt.Sprintf("%v:%X", psh.Total, psh.Hash)
}

// BlockID identifies one proposed block: the block hash plus the header of
// the part set it was gossiped as.
type BlockID struct {
	Hash          []byte
	PartSetHeader PartSetHeader
}

func (blockID BlockID) Equals(other BlockID) bool {
	return bytes.Equal(blockID.Hash, other.Hash) &&
		blockID.PartSetHeader.Equals(other.PartSetHeader)
}

// IsZero returns true for the nil-vote BlockID.
func (blockID BlockID) IsZero() bool {
	return len(blockID.Hash) == 0 && blockID.PartSetHeader.IsZero()
}

// IsComplete returns true if this is a valid BlockID of a non-nil block.
func (blockID BlockID) IsComplete() bool {
	return len(blockID.Hash) == HashSize &&
		blockID.PartSetHeader.Total > 0 &&
		len(blockID.PartSetHeader.Hash) == HashSize
}

// ValidateBasic performs basic validation.
func (blockID BlockID) ValidateBasic() error {
	if err := validateHash(blockID.Hash); err != nil {
		return fmt.Errorf("wrong Hash: %w", err)
	}
	if err := blockID.PartSetHeader.ValidateBasic(); err != nil {
		return fmt.Errorf("wrong PartSetHeader: %w", err)
	}
	return nil
}

func (blockID BlockID) String() string {
	return fmt.Sprintf("%X:%v", blockID.Hash, blockID.PartSetHeader)
}

// validateHash accepts an empty hash (nil vote) or one of exactly HashSize
// bytes.
func validateHash(h []byte) error {
	if len(h) > 0 && len(h) != HashSize {
		return fmt.Errorf("expected size to be %d bytes, got %d bytes",
			HashSize, len(h))
	}
	return nil
}
