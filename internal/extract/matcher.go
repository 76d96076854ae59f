package extract

import "strings"

// quoteChars are the delimiters a link candidate must be wrapped in. The
// quotes are part of the matched region but never of the captured link.
const quoteChars = `"'`

// Matcher applies the compound pattern to a text and yields every match in
// left-to-right order. It is stateless and safe for concurrent use.
type Matcher struct{}

// NewMatcher creates a matcher over the fixed compound pattern.
func NewMatcher() *Matcher {
	return &Matcher{}
}

// FindAll returns all non-overlapping matches in text, each advancing past the
// previous match's closing quote.
//
// Algorithm:
//  1. Find the next quote character; treat it as a candidate opening quote.
//  2. Find the next quote after it; the bytes in between form the span.
//  3. If an alternative accepts the whole span, emit a match covering both
//     quotes and resume after the closing quote.
//  4. Otherwise resume at the closing quote, which becomes the next candidate
//     opening quote.
func (m *Matcher) FindAll(text string) []Match {
	var matches []Match
	i := 0
	for {
		rel := strings.IndexAny(text[i:], quoteChars)
		if rel < 0 {
			break
		}
		open := i + rel

		rel = strings.IndexAny(text[open+1:], quoteChars)
		if rel < 0 {
			break
		}
		close := open + 1 + rel

		span := text[open+1 : close]
		alt, ok := classifySpan(span)
		if !ok {
			i = close
			continue
		}

		matches = append(matches, Match{
			Link:  span,
			Alt:   alt,
			Start: open,
			End:   close + 1,
		})
		i = close + 1
	}
	return matches
}
