package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for the compound pattern:
// - Each alternative accepts and rejects the right spans in isolation
// - Alternative order decides ambiguous spans (first match wins)
// - Short noise like 'a' never classifies
// - Quotes can never be part of a span

func altRegexp(t *testing.T, alt Alternative) func(string) bool {
	t.Helper()
	for _, a := range alternatives {
		if a.alt == alt {
			return a.re.MatchString
		}
	}
	t.Fatalf("no pattern for alternative %v", alt)
	return nil
}

func TestAlternative_AbsoluteURL(t *testing.T) {
	t.Parallel()

	match := altRegexp(t, AltAbsoluteURL)

	assert.True(t, match("https://api.example.com/v1/users?id=5"))
	assert.True(t, match("http://example.com"))
	assert.True(t, match("ftp://files.example.org/pub"))
	assert.True(t, match("//cdn.example.com/lib.js"))

	assert.False(t, match("https://nodomaindot/path"), "domain segment requires a dot")
	assert.False(t, match("averylongscheme://example.com"), "scheme is capped at 10 letters")
	assert.False(t, match("example.com/path"), "needs a scheme or //")
}

func TestAlternative_RelativePath(t *testing.T) {
	t.Parallel()

	match := altRegexp(t, AltRelativePath)

	assert.True(t, match("/api/users/123"))
	assert.True(t, match("../../config/settings.json"))
	assert.True(t, match("./relative/file"))
	assert.True(t, match("/ab"))

	assert.False(t, match("/a"), "needs at least two characters after the slash")
	assert.False(t, match("/*glob"), "first character after the prefix is restricted")
	assert.False(t, match("//host/path"), "scheme-relative belongs to the URL alternative")
	assert.False(t, match("/path,next"), "structural punctuation ends a path")
}

func TestAlternative_ExtensionedPath(t *testing.T) {
	t.Parallel()

	match := altRegexp(t, AltExtensionedPath)

	assert.True(t, match("api/v2/export.php"))
	assert.True(t, match("static/js/app.js?v=12"))
	assert.True(t, match("user/submit.action"))
	assert.True(t, match("a/b/archive.tgz#frag"))

	assert.False(t, match("export.php"), "requires a slashed path")
	assert.False(t, match("a/b.toolong"), "extension is capped at 4 letters")
}

func TestAlternative_RESTPath(t *testing.T) {
	t.Parallel()

	match := altRegexp(t, AltRESTPath)

	assert.True(t, match("api/v1/users"))
	assert.True(t, match("api/v1/do?x=1"))
	assert.True(t, match("orders/list#recent"))

	assert.False(t, match("xy/ab"), "trailing segment needs 3+ characters")
	assert.False(t, match("plain"), "requires a slash")
}

func TestAlternative_BareFilename(t *testing.T) {
	t.Parallel()

	match := altRegexp(t, AltBareFilename)

	assert.True(t, match("app.js"))
	assert.True(t, match("app.min.js"))
	assert.True(t, match("config.json?v=2"))
	assert.True(t, match("index.html#top"))
	assert.True(t, match("data.xml"))
	assert.True(t, match("page.aspx"))

	assert.False(t, match("setup.exe"), "extension set is fixed")
	assert.False(t, match("style.css"))
	assert.False(t, match("a.b"))
}

func TestClassifySpan_AlternativeOrder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		span string
		want Alternative
	}{
		{"https://api.example.com/v1/users?id=5", AltAbsoluteURL},
		{"//cdn.example.com/lib.js", AltAbsoluteURL},
		// A relative path that also names a known-extension file: the
		// relative-path alternative comes first.
		{"../../config/settings.json", AltRelativePath},
		// Also a valid REST path, but the relative-path alternative fires
		// first under 1..5 ordering.
		{"/api/users/123", AltRelativePath},
		{"api/v1/users", AltRESTPath},
		{"api/v2/export.php", AltExtensionedPath},
		{"app.min.js", AltBareFilename},
	}

	for _, tt := range tests {
		alt, ok := classifySpan(tt.span)
		require.True(t, ok, "span %q should classify", tt.span)
		assert.Equal(t, tt.want, alt, "span %q", tt.span)
	}
}

func TestClassifySpan_Rejections(t *testing.T) {
	t.Parallel()

	for _, span := range []string{"", "a", "ab", "hello world", "text/plain;charset=utf-8 "} {
		_, ok := classifySpan(span)
		assert.False(t, ok, "span %q should not classify", span)
	}
}

func TestAlternative_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "absolute-url", AltAbsoluteURL.String())
	assert.Equal(t, "bare-filename", AltBareFilename.String())
	assert.Equal(t, "unknown", Alternative(0).String())
}
