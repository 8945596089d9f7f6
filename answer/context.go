// Copyright 2025 Amharies
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package answer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/amharies/BIONARY--CHATBOT/core"
)

// recordSeparator joins the context blocks of multiple records.
const recordSeparator = "\n\n---\n\n"

// humanDateFormat renders event dates for the model.
const humanDateFormat = "January 2, 2006"

// RenderRecord renders one event as a field-ordered markdown block:
// a heading with the event name, then one "**Label:** value" line per
// non-sentinel field. Zero fees render as "Free", dates in human-readable
// form. Pure rendering, no filtering beyond sentinel omission.
func RenderRecord(record *core.EventRecord) string {
	lines := []string{fmt.Sprintf("## %s", record.Name)}
	for _, f := range record.Fields() {
		if core.IsSentinel(f.Value) {
			continue
		}
		lines = append(lines, fmt.Sprintf("**%s:** %s", f.Label, renderValue(record, f)))
	}
	return strings.Join(lines, "\n")
}

// renderValue applies the per-field display rules.
func renderValue(record *core.EventRecord, f core.Field) string {
	switch f.Label {
	case core.FieldFee:
		if fee, err := strconv.ParseFloat(strings.TrimSpace(f.Value), 64); err == nil && fee == 0 {
			return "Free"
		}
	case core.FieldDate:
		if !record.Date.IsZero() {
			return record.Date.Format(humanDateFormat)
		}
	}
	return f.Value
}

// RenderDirect renders a single directly-resolved record. Direct lookups
// carry no relevance score.
func RenderDirect(record *core.EventRecord) string {
	return RenderRecord(record)
}

// RenderContext renders ranked results into the assembled context passed
// to the synthesizer: each record's block followed by its relevance
// score, joined with a separator.
func RenderContext(results []*core.RankedResult) string {
	parts := make([]string, 0, len(results))
	for _, r := range results {
		block := RenderRecord(r.Candidate.Record)
		block += fmt.Sprintf("\n**Relevance Score:** %.2f", r.FinalScore)
		parts = append(parts, block)
	}
	return strings.Join(parts, recordSeparator)
}
