package strutil

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStripWS(t *testing.T) {
	require.Equal(t, "hello", LStripWS(" \thello"))
	require.Equal(t, "hello", RStripWS("hello\t "))
	require.Equal(t, "he llo", StripWS("  he llo  "))
	require.Empty(t, StripWS(" \t "))
}

func TestCutHeader(t *testing.T) {
	value, params := CutHeader("text/plain;  charset=utf-8")
	require.Equal(t, "text/plain", value)
	require.Equal(t, "charset=utf-8", params)

	value, params = CutHeader("application/json")
	require.Equal(t, "application/json", value)
	require.Empty(t, params)
}

func TestWalkList(t *testing.T) {
	t.Run("single", func(t *testing.T) {
		require.Equal(t, []string{"gzip"}, slices.Collect(WalkList("gzip")))
	})

	t.Run("ordered", func(t *testing.T) {
		require.Equal(t, []string{"br", "x-gzip", "gzip", "deflate"}, slices.Collect(WalkList("br, x-gzip,gzip ,  deflate")))
	})

	t.Run("multiple header lines", func(t *testing.T) {
		require.Equal(t, []string{"br", "GZIP", "Deflate"}, slices.Collect(WalkList("br", "GZIP, Deflate")))
	})

	t.Run("empty elements", func(t *testing.T) {
		require.Equal(t, []string{"gzip", "br"}, slices.Collect(WalkList(" , gzip,, ,br,")))
		require.Empty(t, slices.Collect(WalkList("")))
		require.Empty(t, slices.Collect(WalkList()))
	})
}

func TestWalkListBreak(t *testing.T) {
	var seen []string
	for element := range WalkList("a, b, c") {
		seen = append(seen, element)
		if element == "b" {
			break
		}
	}

	require.Equal(t, []string{"a", "b"}, seen)
}
