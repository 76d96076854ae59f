package extract

import "errors"

var (
	// ErrInvalidInput indicates empty or whitespace-only source text. It is
	// rejected before any processing happens.
	ErrInvalidInput = errors.New("invalid input")

	// ErrPatternCompile indicates a caller-supplied filter pattern failed to
	// compile. The error is attributable to the caller, not the engine.
	ErrPatternCompile = errors.New("pattern compilation failed")

	// ErrProcessing indicates a failure during reformatting or matching.
	ErrProcessing = errors.New("processing failed")
)
