package extract

import (
	"fmt"
	"regexp"
)

// Filter narrows findings to those whose link matches a caller-supplied
// pattern. It is independent of the compound pattern.
type Filter struct {
	re *regexp.Regexp
}

// NewFilter compiles pattern into a filter. An unparseable pattern fails fast
// with an error wrapping ErrPatternCompile rather than silently matching
// nothing or everything.
func NewFilter(pattern string) (*Filter, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid filter pattern %q: %v", ErrPatternCompile, pattern, err)
	}
	return &Filter{re: re}, nil
}

// Apply keeps a finding iff the filter pattern matches anywhere within its
// link. Relative order is preserved.
func (f *Filter) Apply(findings []Finding) []Finding {
	out := make([]Finding, 0, len(findings))
	for _, item := range findings {
		if f.re.MatchString(item.Link) {
			out = append(out, item)
		}
	}
	return out
}
