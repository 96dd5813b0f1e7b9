package types_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1Money-Co/emerald/types"
)

func exampleProposal() *types.Proposal {
	return &types.Proposal{
		Height:    12345,
		Round:     2,
		POLRound:  -1,
		BlockID:   exampleBlockID(),
		Timestamp: time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestProposalSignBytesDeterministic(t *testing.T) {
	p := exampleProposal()
	assert.Equal(t, p.SignBytes("emerald-test"), p.SignBytes("emerald-test"))
}

func TestProposalSignBytesTimestampNormalized(t *testing.T) {
	p1 := exampleProposal()
	p2 := exampleProposal()
	loc := time.FixedZone("UTC+2", 2*60*60)
	p2.Timestamp = p1.Timestamp.In(loc)

	assert.Equal(t, p1.SignBytes("emerald-test"), p2.SignBytes("emerald-test"))
}

func TestProposalSignBytesDiffersFromVote(t *testing.T) {
	// A proposal and a vote at the same height/round/block must never
	// produce the same sign-bytes.
	p := exampleProposal()
	v := exampleVote()
	v.Height, v.Round = p.Height, p.Round
	assert.NotEqual(t, p.SignBytes("emerald-test"), v.SignBytes("emerald-test"))
}

func TestProposalValidateBasic(t *testing.T) {
	testCases := []struct {
		name     string
		mutate   func(*types.Proposal)
		expected error
	}{
		{"good proposal", func(*types.Proposal) {}, nil},
		{"POL round from earlier round", func(p *types.Proposal) { p.POLRound = 1 }, nil},
		{"negative height", func(p *types.Proposal) { p.Height = -1 }, types.ErrProposalNegativeHeight},
		{"negative round", func(p *types.Proposal) { p.Round = -1 }, types.ErrProposalNegativeRound},
		{"POL round below -1", func(p *types.Proposal) { p.POLRound = -2 }, types.ErrProposalInvalidPOLRound},
		{"POL round not earlier", func(p *types.Proposal) { p.POLRound = p.Round }, types.ErrProposalInvalidPOLRound},
		{"nil block ID", func(p *types.Proposal) { p.BlockID = types.BlockID{} }, types.ErrProposalInvalidBlockID},
		{
			"wrong hash size",
			func(p *types.Proposal) { p.BlockID.Hash = make([]byte, 20) },
			types.ErrProposalInvalidBlockID,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := exampleProposal()
			tc.mutate(p)
			err := p.ValidateBasic()
			if tc.expected == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tc.expected)
			}
		})
	}
}
