// Package extract implements the endpoint extraction core. Given a blob of
// JavaScript-like source text it locates substrings that look like URLs, paths
// or API endpoints inside quoted tokens, optionally reformats the source so
// matches carry meaningful surrounding context, expands each match to its line
// boundaries, removes duplicate findings and applies an optional secondary
// filter.
//
// The core is a pure function of its inputs: no state survives a pipeline
// invocation and the compiled pattern set is immutable, so concurrent calls on
// independent texts need no coordination.
package extract

// Match is a single hit of the compound pattern against the (possibly
// reformatted) source text.
type Match struct {
	// Link is the captured substring: the content between the quote
	// delimiters.
	Link string

	// Alt identifies which alternative of the compound pattern fired.
	Alt Alternative

	// Start and End are byte offsets into the searched text delimiting the
	// entire matched region including the surrounding quotes. End is
	// exclusive. They are only meaningful for context expansion against the
	// same text the match was produced from.
	Start int
	End   int
}

// Finding is the externally visible unit of output: one endpoint candidate
// with its optional surrounding context. Context is populated only when
// context extraction was requested.
type Finding struct {
	Link    string `json:"link"`
	Context string `json:"context,omitempty"`
}
