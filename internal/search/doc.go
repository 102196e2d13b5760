// Package search locates and marks query matches across translation records.
//
// Highlight splits a single string into matched and unmatched segments for
// rendering. AdvancedSearch filters a collection with per-field options, and
// Engine memoizes AdvancedSearch behind a bounded cache.
//
// The cache is keyed by the record keys, the query and the options, not by
// record contents. Callers that change record text without changing the key
// set must call Engine.Clear, otherwise stale results are served.
package search
