// Package reindex recomputes the derived fields of stored event records
// so the fuzzy-match index stays consistent with changed normalization
// or searchable-text rules.
//
// This package supports batch processing, progress tracking, and retry
// logic with exponential backoff.
package reindex
