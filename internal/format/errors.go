package format

import "errors"

var (
	// ErrUnknownTag indicates a tag ID outside the known range.
	ErrUnknownTag = errors.New("format: unknown tag id")
	// ErrRootNotNamed indicates the stream did not start with a named tag.
	ErrRootNotNamed = errors.New("format: stream does not start with a named tag")
	// ErrNegativeLength indicates a negative array or list count.
	ErrNegativeLength = errors.New("format: negative length")
	// ErrTrailingData indicates bytes left over after the root tag.
	ErrTrailingData = errors.New("format: trailing data after root tag")
	// ErrMixedList indicates a list whose children do not share one tag.
	ErrMixedList = errors.New("format: list elements differ in type")
)
