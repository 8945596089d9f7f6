package search

import (
	"slices"
	"time"

	"github.com/amharies/BIONARY--CHATBOT/core"
)

// baselineScore is assigned to every candidate of a termless query, where
// no similarity signal exists and ordering falls to the secondary key.
const baselineScore = 1.0

// rank produces a deterministic total order over candidates.
//
// With a fuzzy term the final score is the raw similarity score and
// candidates sort by score descending. Without a term all candidates get
// the equal baseline and sort by event date ascending, zero dates last.
// Ties always break by record ID ascending. Truncation to maxResults
// happens only after the full ranking.
func rank(candidates []*core.Candidate, hasTerm bool, maxResults int) []*core.RankedResult {
	results := make([]*core.RankedResult, 0, len(candidates))
	for _, c := range candidates {
		score := c.Score
		if !hasTerm {
			score = baselineScore
		}
		results = append(results, &core.RankedResult{
			Candidate:  c,
			FinalScore: score,
		})
	}

	slices.SortStableFunc(results, func(a, b *core.RankedResult) int {
		if a.FinalScore > b.FinalScore {
			return -1
		}
		if a.FinalScore < b.FinalScore {
			return 1
		}
		if !hasTerm {
			if c := compareDates(a.Candidate.Record.Date, b.Candidate.Record.Date); c != 0 {
				return c
			}
		}
		return compareIDs(a.Candidate.Record.Id, b.Candidate.Record.Id)
	})

	if maxResults > 0 && len(results) > maxResults {
		results = results[:maxResults]
	}
	return results
}

// compareDates orders dates ascending with zero dates sorting last.
func compareDates(a, b time.Time) int {
	switch {
	case a.IsZero() && b.IsZero():
		return 0
	case a.IsZero():
		return 1
	case b.IsZero():
		return -1
	case a.Before(b):
		return -1
	case b.Before(a):
		return 1
	default:
		return 0
	}
}

func compareIDs(a, b core.ID) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
