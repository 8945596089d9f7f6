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

package query

import (
	"regexp"
	"strconv"
	"time"

	"github.com/amharies/BIONARY--CHATBOT/core"
)

var yearPattern = regexp.MustCompile(`\b(19|20)\d{2}\b`)

// monthNames maps full English month names to their number. Matching is
// ordered January..December; when a question mentions several months the
// leftmost occurrence in the text wins.
var monthNames = map[string]time.Month{
	"january":   time.January,
	"february":  time.February,
	"march":     time.March,
	"april":     time.April,
	"may":       time.May,
	"june":      time.June,
	"july":      time.July,
	"august":    time.August,
	"september": time.September,
	"october":   time.October,
	"november":  time.November,
	"december":  time.December,
}

var monthPattern = regexp.MustCompile(`\b(january|february|march|april|may|june|july|august|september|october|november|december)\b`)

// Run collapsing in text normalization reduces "free" to "fre", so the
// pattern accepts both spellings. Word boundaries keep "freedom" and
// "carefree" from reading as a fee filter.
var freePattern = regexp.MustCompile(`\bfree?\b`)

// ExtractYear returns the first four-digit year token in text, or 0 when
// none is present.
func ExtractYear(text string) int {
	m := yearPattern.FindString(text)
	if m == "" {
		return 0
	}
	year, _ := strconv.Atoi(m)
	return year
}

// ExtractMonth returns the leftmost full month name in text, or 0 when
// none is present. Matching requires word boundaries so "mayor" does not
// read as May.
func ExtractMonth(text string) time.Month {
	m := monthPattern.FindString(text)
	if m == "" {
		return 0
	}
	return monthNames[m]
}

// ExtractConstraints derives the structured filters from normalized
// question text. Year alone covers the whole year; year plus month covers
// that calendar month with a correct end day (leap years included). A
// month without a year yields no date constraint, since the original data
// carries absolute dates only. The word "free" requests a zero fee.
//
// Pure function; never fails. All fields of the result are optional.
func ExtractConstraints(text string) core.QueryConstraints {
	var c core.QueryConstraints

	year := ExtractYear(text)
	month := ExtractMonth(text)

	switch {
	case year != 0 && month != 0:
		start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)
		c.Date = &core.DateRange{Start: start, End: end}
	case year != 0:
		start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
		c.Date = &core.DateRange{Start: start, End: end}
	}

	if freePattern.MatchString(text) {
		zero := 0
		c.FeeEquals = &zero
	}

	return c
}
