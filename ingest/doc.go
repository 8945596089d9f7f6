// Package ingest loads raw event data into the catalog. Inputs arrive
// from CSV files or API payloads as plain strings; the pipeline applies
// sentinel normalization, validates, refreshes derived fields, and writes
// batches concurrently through a worker pool.
package ingest
