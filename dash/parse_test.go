package dash_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dictdash/dash"
)

// sampleInput is the original Dictionary Dash example stream.
const sampleInput = "7\n" +
	"cog\n" +
	"dog\n" +
	"dot\n" +
	"hit\n" +
	"hot\n" +
	"log\n" +
	"lot\n" +
	"2\n" +
	"hot\n" +
	"dog\n" +
	"hit\n" +
	"cog\n"

// TestParse_Sample parses the canonical example input.
func TestParse_Sample(t *testing.T) {
	p, err := dash.Parse(strings.NewReader(sampleInput))
	require.NoError(t, err)
	require.Equal(t, []string{"cog", "dog", "dot", "hit", "hot", "log", "lot"}, p.Words)
	require.Equal(t, []dash.Pair{
		{Start: "hot", End: "dog"},
		{Start: "hit", End: "cog"},
	}, p.Pairs)
}

// TestParse_TrimsWhitespace checks CRLF and padded lines survive.
func TestParse_TrimsWhitespace(t *testing.T) {
	p, err := dash.Parse(strings.NewReader("1\r\n dog \r\n1\r\ndog\r\ndog\r\n"))
	require.NoError(t, err)
	require.Equal(t, []string{"dog"}, p.Words)
	require.Equal(t, []dash.Pair{{Start: "dog", End: "dog"}}, p.Pairs)
}

// TestParse_BadCount rejects unparseable and negative counts.
func TestParse_BadCount(t *testing.T) {
	for _, in := range []string{"x\n", "-3\n", "2\ndog\ndot\nmany\n"} {
		_, err := dash.Parse(strings.NewReader(in))
		require.ErrorIs(t, err, dash.ErrBadCount, "input %q", in)
	}
}

// TestParse_Truncated rejects streams ending before the announced counts.
func TestParse_Truncated(t *testing.T) {
	for _, in := range []string{
		"",                 // no word count
		"3\ndog\ndot\n",    // missing a word
		"1\ndog\n",         // missing pair count
		"1\ndog\n1\ndog\n", // pair missing its end word
	} {
		_, err := dash.Parse(strings.NewReader(in))
		require.ErrorIs(t, err, dash.ErrTruncated, "input %q", in)
	}
}

// TestParse_ZeroCounts allows empty dictionaries and empty batches.
func TestParse_ZeroCounts(t *testing.T) {
	p, err := dash.Parse(strings.NewReader("0\n0\n"))
	require.NoError(t, err)
	require.Empty(t, p.Words)
	require.Empty(t, p.Pairs)
}
