package svgoffset

import "errors"

// Errors returned by the parsing and offsetting pipeline. Callers should
// compare with errors.Is; the returned errors carry additional context.
var (
	// ErrEmptyInput is returned for blank path data.
	ErrEmptyInput = errors.New("path is empty")
	// ErrMalformedPath is returned for grammar violations, unexpected
	// characters and numbers that fail to scan.
	ErrMalformedPath = errors.New("invalid SVG path data")
	// ErrInvalidNumber is returned alongside ErrMalformedPath when a numeric
	// token contains no digit or does not fit a float64.
	ErrInvalidNumber = errors.New("expected number")
	// ErrEmptyRing is returned when flattening produced no point.
	ErrEmptyRing = errors.New("path produced no points")
	// ErrInvalidAmount is returned when the offset distance is NaN or infinite.
	ErrInvalidAmount = errors.New("offset amount is NaN or infinite")
	// ErrTooFewPoints is returned when the flattened ring has fewer than
	// three points.
	ErrTooFewPoints = errors.New("path must have at least 3 points")
	// ErrOffsetFailed wraps failures reported by the offsetting library.
	ErrOffsetFailed = errors.New("offset failed")
	// ErrUnknownJoinType is returned for join styles outside the enumeration.
	ErrUnknownJoinType = errors.New("unknown join type")
	// ErrUnknownEndType is returned for end styles outside the enumeration.
	ErrUnknownEndType = errors.New("unknown end type")
)
