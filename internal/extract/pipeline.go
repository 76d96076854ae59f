package extract

import (
	"fmt"
	"strings"
)

// Options controls one pipeline invocation. The zero value is not useful;
// start from DefaultOptions.
type Options struct {
	// IncludeContext reformats the source and attaches a line-bounded
	// context snippet to every finding. When false the matcher runs on the
	// unmodified source and no reformatting cost is paid.
	IncludeContext bool

	// FilterPattern is an optional secondary regex applied to the link text
	// of each finding after deduplication. Empty means no filtering.
	FilterPattern string

	// RemoveDuplicates collapses findings with identical link text to the
	// first occurrence.
	RemoveDuplicates bool

	// ContextDelimiter bounds context windows. Empty means
	// DefaultContextDelimiter.
	ContextDelimiter string
}

// DefaultOptions mirrors the defaults exposed to external callers: context
// extraction and deduplication on, no secondary filter.
func DefaultOptions() Options {
	return Options{
		IncludeContext:   true,
		RemoveDuplicates: true,
		ContextDelimiter: DefaultContextDelimiter,
	}
}

// Pipeline orchestrates reformatting, matching, context extraction,
// deduplication and filtering. It holds no per-call state and is safe for
// concurrent use.
type Pipeline struct {
	matcher     *Matcher
	reformatter *Reformatter
}

// NewPipeline creates a pipeline whose reformatter switches to the cheap path
// above reformatThreshold bytes; pass 0 for the default threshold.
func NewPipeline(reformatThreshold int) *Pipeline {
	return &Pipeline{
		matcher:     NewMatcher(),
		reformatter: NewReformatter(reformatThreshold),
	}
}

// Run executes one extraction pass over text and returns the ordered
// findings. It either returns a complete, consistent result or an error,
// never a partial one. Errors wrap ErrInvalidInput for empty or
// whitespace-only text, ErrPatternCompile for a bad filter pattern and
// ErrProcessing for reformatting failures.
func (p *Pipeline) Run(text string, opts Options) ([]Finding, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: content is empty", ErrInvalidInput)
	}

	// Compile the caller's filter up front so a bad pattern fails before any
	// reformatting cost is paid.
	var filter *Filter
	if opts.FilterPattern != "" {
		var err error
		if filter, err = NewFilter(opts.FilterPattern); err != nil {
			return nil, err
		}
	}

	if opts.IncludeContext {
		reformatted, err := p.reformatter.Reformat(text)
		if err != nil {
			return nil, err
		}
		text = reformatted
	}

	matches := p.matcher.FindAll(text)

	findings := make([]Finding, 0, len(matches))
	if opts.IncludeContext {
		extractor := NewContextExtractor(opts.ContextDelimiter, false)
		for _, m := range matches {
			findings = append(findings, Finding{
				Link:    m.Link,
				Context: extractor.Expand(m, text),
			})
		}
	} else {
		for _, m := range matches {
			findings = append(findings, Finding{Link: m.Link})
		}
	}

	if opts.RemoveDuplicates {
		findings = Dedupe(findings)
	}
	if filter != nil {
		findings = filter.Apply(findings)
	}
	return findings, nil
}
