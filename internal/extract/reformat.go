package extract

import (
	"fmt"
	"strings"

	"github.com/ditashi/jsbeautifier-go/jsbeautifier"
)

// DefaultReformatThreshold is the input size above which full beautification
// is skipped in favor of the cheap line-break heuristic. It bounds worst-case
// CPU time per call under concurrent load.
const DefaultReformatThreshold = 1_000_000

// Reformatter normalizes dense or minified source into a form with more line
// breaks, improving the quality of line-bounded context extraction. It never
// changes the set of link substrings the pattern can match, only whitespace
// placement around them.
type Reformatter struct {
	threshold int
}

// NewReformatter creates a reformatter. Inputs longer than threshold bytes
// take the cheap substitution path; threshold <= 0 means
// DefaultReformatThreshold.
func NewReformatter(threshold int) *Reformatter {
	if threshold <= 0 {
		threshold = DefaultReformatThreshold
	}
	return &Reformatter{threshold: threshold}
}

// Reformat returns a semantically equivalent text with additional line
// breaks. Inputs up to the threshold are run through a full structural
// beautifier; larger inputs get a line break inserted after every `;` and `,`
// instead, which is O(n) but yields coarser, sometimes mid-statement,
// boundaries.
func (r *Reformatter) Reformat(text string) (string, error) {
	if len(text) > r.threshold {
		return insertBreaks(text), nil
	}

	out, err := jsbeautifier.Beautify(&text, jsbeautifier.DefaultOptions())
	if err != nil {
		return "", fmt.Errorf("%w: beautify: %v", ErrProcessing, err)
	}
	return out, nil
}

// insertBreaks adds a newline after every statement and list separator.
func insertBreaks(text string) string {
	var b strings.Builder
	b.Grow(len(text) + len(text)/8)
	for i := 0; i < len(text); i++ {
		c := text[i]
		b.WriteByte(c)
		if c == ';' || c == ',' {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
