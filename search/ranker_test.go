package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amharies/BIONARY--CHATBOT/core"
)

func candidate(id core.ID, score float64, date time.Time) *core.Candidate {
	return &core.Candidate{
		Record: &core.EventRecord{Id: id, Date: date},
		Score:  score,
	}
}

func TestRank_BySimilarity(t *testing.T) {
	candidates := []*core.Candidate{
		candidate(1, 0.2, time.Time{}),
		candidate(2, 0.9, time.Time{}),
		candidate(3, 0.5, time.Time{}),
	}

	ranked := rank(candidates, true, 0)
	require.Len(t, ranked, 3)
	assert.Equal(t, core.ID(2), ranked[0].Candidate.Record.Id)
	assert.Equal(t, core.ID(3), ranked[1].Candidate.Record.Id)
	assert.Equal(t, core.ID(1), ranked[2].Candidate.Record.Id)
	assert.Equal(t, 0.9, ranked[0].FinalScore)
}

func TestRank_TieBreakByID(t *testing.T) {
	candidates := []*core.Candidate{
		candidate(7, 0.5, time.Time{}),
		candidate(3, 0.5, time.Time{}),
		candidate(5, 0.5, time.Time{}),
	}

	ranked := rank(candidates, true, 0)
	require.Len(t, ranked, 3)
	assert.Equal(t, core.ID(3), ranked[0].Candidate.Record.Id)
	assert.Equal(t, core.ID(5), ranked[1].Candidate.Record.Id)
	assert.Equal(t, core.ID(7), ranked[2].Candidate.Record.Id)
}

func TestRank_TermlessBaseline(t *testing.T) {
	early := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	late := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)

	candidates := []*core.Candidate{
		candidate(1, 0, late),
		candidate(2, 0, early),
		candidate(3, 0, time.Time{}), // unknown date sorts last
	}

	ranked := rank(candidates, false, 0)
	require.Len(t, ranked, 3)
	assert.Equal(t, core.ID(2), ranked[0].Candidate.Record.Id)
	assert.Equal(t, core.ID(1), ranked[1].Candidate.Record.Id)
	assert.Equal(t, core.ID(3), ranked[2].Candidate.Record.Id)
	for _, r := range ranked {
		assert.Equal(t, baselineScore, r.FinalScore)
	}
}

func TestRank_TruncatesAfterRanking(t *testing.T) {
	candidates := []*core.Candidate{
		candidate(1, 0.1, time.Time{}),
		candidate(2, 0.9, time.Time{}),
		candidate(3, 0.5, time.Time{}),
	}

	ranked := rank(candidates, true, 2)
	require.Len(t, ranked, 2)
	// The top-N by final score survive, not the first-N seen
	assert.Equal(t, core.ID(2), ranked[0].Candidate.Record.Id)
	assert.Equal(t, core.ID(3), ranked[1].Candidate.Record.Id)
}

func TestRank_Empty(t *testing.T) {
	ranked := rank(nil, true, 10)
	assert.Empty(t, ranked)
}

func TestRank_Deterministic(t *testing.T) {
	candidates := []*core.Candidate{
		candidate(4, 0.5, time.Time{}),
		candidate(1, 0.5, time.Time{}),
		candidate(9, 0.7, time.Time{}),
		candidate(2, 0.5, time.Time{}),
	}

	first := rank(candidates, true, 0)
	second := rank(candidates, true, 0)
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Candidate.Record.Id, second[i].Candidate.Record.Id)
		assert.Equal(t, first[i].FinalScore, second[i].FinalScore)
	}
}
