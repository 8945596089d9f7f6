package search

import (
	"github.com/amharies/BIONARY--CHATBOT/core"
)

// SearchMonitor provides hooks to observe the retrieval pipeline.
// Implement this interface to track intermediate steps and results during search.
type SearchMonitor interface {
	Start(question string)
	AfterNormalize(normalized string)
	AfterConstraints(constraints core.QueryConstraints)
	DirectHit(record *core.EventRecord)
	AfterTermExtraction(term string)
	AfterRetrieval(queryText string, candidates []*core.Candidate)
	Finish(results []*core.RankedResult)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                              {}
func (n *noopMonitor) AfterNormalize(_ string)                     {}
func (n *noopMonitor) AfterConstraints(_ core.QueryConstraints)    {}
func (n *noopMonitor) DirectHit(_ *core.EventRecord)               {}
func (n *noopMonitor) AfterTermExtraction(_ string)                {}
func (n *noopMonitor) AfterRetrieval(_ string, _ []*core.Candidate) {}
func (n *noopMonitor) Finish(_ []*core.RankedResult)               {}
