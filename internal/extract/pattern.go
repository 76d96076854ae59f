package extract

import "regexp"

// Alternative identifies which sub-pattern of the compound pattern matched a
// quoted token.
type Alternative int

const (
	// AltAbsoluteURL matches a scheme (or scheme-relative //) followed by a
	// dotted domain and optional path.
	AltAbsoluteURL Alternative = iota + 1

	// AltRelativePath matches paths starting with /, ../ or ./.
	AltRelativePath

	// AltExtensionedPath matches a slashed path whose final segment carries a
	// 1-4 letter extension (or the literal "action").
	AltExtensionedPath

	// AltRESTPath matches a slashed path without an extension whose final
	// segment is at least 3 characters.
	AltRESTPath

	// AltBareFilename matches a standalone filename with one of a fixed set
	// of interesting extensions.
	AltBareFilename
)

func (a Alternative) String() string {
	switch a {
	case AltAbsoluteURL:
		return "absolute-url"
	case AltRelativePath:
		return "relative-path"
	case AltExtensionedPath:
		return "extensioned-path"
	case AltRESTPath:
		return "rest-path"
	case AltBareFilename:
		return "bare-filename"
	default:
		return "unknown"
	}
}

// The compound pattern, split into its five alternatives so each one's
// boundary rules can be tested in isolation. Every alternative is anchored and
// applied to the text of a single quote-delimited span; because no alternative
// can match a quote character, an anchored full-span match is equivalent to
// requiring the match to run from the opening quote to the closing one.
//
// Order matters: the first alternative that accepts the span wins, mirroring
// alternative-order evaluation in a single combined expression.
var alternatives = []struct {
	alt Alternative
	re  *regexp.Regexp
}{
	// Scheme (1-10 letters) or scheme-relative //, a dotted domain segment,
	// a TLD-like segment, then anything up to the closing quote.
	{AltAbsoluteURL, regexp.MustCompile(`\A(?:[a-zA-Z]{1,10}://|//)[^"'/]+\.[a-zA-Z]{2,}[^"']*\z`)},

	// Starts with /, ../ or ./. The next character must not come from the
	// disallowed set, the rest excludes structural punctuation.
	{AltRelativePath, regexp.MustCompile(`\A(?:/|\.\./|\./)[^"'><,;| *()%$^/\\\[\]][^"'><,;|()]+\z`)},

	// Slashed path, resource name, dot plus 1-4 letter extension or
	// "action", optional ?/# fragment.
	{AltExtensionedPath, regexp.MustCompile(`\A[a-zA-Z0-9_\-/]+/[a-zA-Z0-9_\-/.]+\.(?:[a-zA-Z]{1,4}|action)(?:[\?|#][^"|']*)?\z`)},

	// Slashed path without extension; the trailing segment needs 3+
	// characters to avoid matching trivial noise.
	{AltRESTPath, regexp.MustCompile(`\A[a-zA-Z0-9_\-/]+/[a-zA-Z0-9_\-/]{3,}(?:[\?|#][^"|']*)?\z`)},

	// Bare filename with a known extension. The name segment admits dots so
	// that multi-part names like app.min.js are recognized.
	{AltBareFilename, regexp.MustCompile(`\A[a-zA-Z0-9_\-.]+\.(?:php|asp|aspx|jsp|json|action|html|js|txt|xml)(?:[\?|#][^"|']*)?\z`)},
}

// classifySpan reports whether the content of one quote-delimited span is a
// link candidate, and if so which alternative recognized it.
func classifySpan(span string) (Alternative, bool) {
	for _, a := range alternatives {
		if a.re.MatchString(span) {
			return a.alt, true
		}
	}
	return 0, false
}
