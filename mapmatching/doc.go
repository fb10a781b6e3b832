// Package mapmatching implements LCSS (longest-common-subsequence
// similarity) map matching: it recursively segments a GPS trace, matches
// each sub-trace to a shortest-path candidate over the road network, and
// iteratively splits and re-joins segments by similarity score until the
// match converges.
package mapmatching

import "errors"

// Sentinel errors for the map matching pipeline.
var (
	// ErrEmptyTrace indicates MatchTrace was called with a zero-length trace.
	ErrEmptyTrace = errors.New("mapmatching: empty trace")
)

// InternalError wraps an unexpected pipeline failure that is neither a
// malformed trace nor a propagated search error (e.g. an index that
// returns inconsistent results).
type InternalError struct {
	Msg string
}

func (e *InternalError) Error() string { return "mapmatching: internal error: " + e.Msg }

// SearchError wraps a failure from the underlying A* driver encountered
// while computing a candidate path for a segment.
type SearchError struct {
	Err error
}

func (e *SearchError) Error() string { return "mapmatching: search failed: " + e.Err.Error() }
func (e *SearchError) Unwrap() error { return e.Err }
