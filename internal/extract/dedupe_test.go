package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDedupe_FirstOccurrenceWins(t *testing.T) {
	t.Parallel()

	in := []Finding{
		{Link: "/api/x", Context: "first"},
		{Link: "app.js", Context: "middle"},
		{Link: "/api/x", Context: "second"},
	}

	out := Dedupe(in)

	require.Len(t, out, 2)
	assert.Equal(t, "/api/x", out[0].Link)
	assert.Equal(t, "first", out[0].Context, "context of the first occurrence survives")
	assert.Equal(t, "app.js", out[1].Link)
}

func TestDedupe_Idempotent(t *testing.T) {
	t.Parallel()

	in := []Finding{
		{Link: "a/b/c.js"},
		{Link: "/api/x"},
		{Link: "a/b/c.js"},
	}

	once := Dedupe(in)
	twice := Dedupe(once)
	assert.Equal(t, once, twice)
}

func TestDedupe_PreservesOrderAndInput(t *testing.T) {
	t.Parallel()

	in := []Finding{
		{Link: "c.js"}, {Link: "a.js"}, {Link: "b.js"}, {Link: "a.js"},
	}
	out := Dedupe(in)

	assert.Equal(t, []Finding{{Link: "c.js"}, {Link: "a.js"}, {Link: "b.js"}}, out)
	assert.Len(t, in, 4, "input slice untouched")
}

func TestDedupe_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Dedupe(nil))
	assert.Empty(t, Dedupe([]Finding{}))
}
