// Package query turns a normalized user question into the structured
// pieces of a retrieval request: date and fee constraints, a fuzzy
// search term, and an optional explicit event-name fragment for direct
// lookup. Everything here is a pure function of the input text.
package query
