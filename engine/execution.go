// Package engine defines the boundary between consensus and the execution
// layer. Consensus drives block production and finalization through the
// ExecutionLayer interface and never inspects execution payloads beyond
// the Block accessors.
package engine

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
)

// Block is an opaque execution payload as consensus sees it: enough to
// chain blocks together and move their bytes around, nothing more.
type Block interface {
	// ID returns the block's own hash.
	ID() common.Hash
	// ParentID returns the parent block's hash.
	ParentID() common.Hash
	// Height returns the block number.
	Height() uint64
	// Encode returns the canonical wire form of the block.
	Encode() []byte
}

// BlockDecoder reconstructs a Block from its wire form.
type BlockDecoder interface {
	DecodeBlock(data []byte) (Block, error)
}

// SyncStatus reports the execution layer's view of chain sync.
type SyncStatus struct {
	Syncing bool
	// HighestHeight is the highest block height the execution layer knows
	// about, whether or not it has been imported yet.
	HighestHeight uint64
}

// ValidatorUpdate is one entry of the validator set the execution layer
// reports for a block: the raw registry key and its voting power.
type ValidatorUpdate struct {
	PubKey []byte
	Power  uint64
}

// ExecutionLayer is the consensus-side client of the execution engine.
//
// Implementations are safe for concurrent use. All calls honor context
// cancellation; a canceled context returns ctx.Err() wrapped in the
// implementation's error type.
type ExecutionLayer interface {
	BlockDecoder

	// GenesisBlock returns the execution layer's genesis block.
	GenesisBlock(ctx context.Context) (Block, error)

	// BuildBlock asks the execution layer to assemble a new block on top of
	// parent with the given timestamp. Build parameters such as the fee
	// recipient are configured on the implementation, not passed per call.
	BuildBlock(ctx context.Context, parent Block, timestamp uint64) (Block, error)

	// ValidateBlock checks a block received from a peer against the
	// execution layer's rules. A false result means the block is invalid;
	// an error means validation could not be carried out.
	ValidateBlock(ctx context.Context, block Block) (bool, error)

	// FinalizeBlock marks the block as final and returns the execution
	// layer's confirmed head so consensus can check both sides agree on
	// the tip.
	FinalizeBlock(ctx context.Context, block Block) (common.Hash, error)

	// ValidatorSet returns the validator set active at the given block.
	ValidatorSet(ctx context.Context, block Block) ([]ValidatorUpdate, error)

	// LatestBlockHeight returns the current head height. The boolean is
	// false when the execution layer has no blocks yet.
	LatestBlockHeight(ctx context.Context) (uint64, bool, error)

	// GetBlockByHeight returns the block at the given height, or nil when
	// the execution layer does not have it.
	GetBlockByHeight(ctx context.Context, height uint64) (Block, error)

	// SyncStatus reports whether the execution layer is still syncing.
	SyncStatus(ctx context.Context) (SyncStatus, error)

	// Shutdown releases the connection to the execution layer.
	Shutdown(ctx context.Context) error
}
