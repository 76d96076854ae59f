package extract

import "strings"

// DefaultContextDelimiter bounds context windows at line breaks.
const DefaultContextDelimiter = "\n"

// ContextExtractor expands a match outward to the nearest delimiter
// boundaries, producing a human-readable snippet around it. The delimiter is
// an explicit parameter rather than shared module state so independent
// pipeline calls can use different boundaries.
type ContextExtractor struct {
	delimiter        string
	includeDelimiter bool
}

// NewContextExtractor creates an extractor bounded by delimiter. An empty
// delimiter falls back to DefaultContextDelimiter. When includeDelimiter is
// true the bounding delimiters themselves are kept in the snippet.
func NewContextExtractor(delimiter string, includeDelimiter bool) *ContextExtractor {
	if delimiter == "" {
		delimiter = DefaultContextDelimiter
	}
	return &ContextExtractor{
		delimiter:        delimiter,
		includeDelimiter: includeDelimiter,
	}
}

// Expand returns the substring of text between the delimiter occurrences
// nearest to the match. A match at the very start or end of text yields a
// context running to index 0 or the final index; there is never an
// out-of-bounds access.
func (ce *ContextExtractor) Expand(m Match, text string) string {
	start := 0
	if idx := strings.LastIndex(text[:m.Start], ce.delimiter); idx >= 0 {
		start = idx
		if !ce.includeDelimiter {
			start += len(ce.delimiter)
		}
	}

	end := len(text)
	if m.End < len(text) {
		if idx := strings.Index(text[m.End:], ce.delimiter); idx >= 0 {
			end = m.End + idx
			if ce.includeDelimiter {
				end += len(ce.delimiter)
			}
		}
	}

	return text[start:end]
}
