package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColorMode(t *testing.T) {
	for in, want := range map[string]ColorMode{
		"":       ColorAuto,
		"auto":   ColorAuto,
		"ALWAYS": ColorAlways,
		"never":  ColorNever,
	} {
		got, err := ParseColorMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseColorMode("sometimes")
	assert.Error(t, err)
}

func TestWriter_PlainOutput(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf, Options{Query: "duct", CaseSensitive: true, Color: ColorAuto})
	assert.False(t, w.colored)

	require.NoError(t, w.WriteLine("safe, fast, productive."))
	require.NoError(t, w.WriteLine(""))
	assert.Equal(t, "safe, fast, productive.\n\n", buf.String())
}

func TestWriter_LineNumbers(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf, Options{Query: "a", Color: ColorNever, LineNumbers: true})

	require.NoError(t, w.WriteNumbered(3, "banana"))
	assert.Equal(t, "3:banana\n", buf.String())
}

func TestWriter_NumberedWithoutLineNumbers(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf, Options{Query: "a", Color: ColorNever})

	require.NoError(t, w.WriteNumbered(3, "banana"))
	assert.Equal(t, "banana\n", buf.String())
}

func TestWriter_AlwaysHighlights(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf, Options{Query: "rust", CaseSensitive: false, Color: ColorAlways})
	assert.True(t, w.colored)

	require.NoError(t, w.WriteLine("Trust Rust"))
	out := buf.String()
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "Rust")
	assert.True(t, strings.HasPrefix(out, "T"))
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestHighlightQuery_NoOccurrence(t *testing.T) {
	w := New(&bytes.Buffer{}, Options{Query: "zzz", CaseSensitive: true, Color: ColorAlways})
	assert.Equal(t, "no match here", w.highlightQuery("no match here"))
}

func TestHighlightQuery_EmptyQuery(t *testing.T) {
	w := New(&bytes.Buffer{}, Options{Query: "", Color: ColorAlways})
	assert.Equal(t, "text", w.highlightQuery("text"))
}

func TestHighlightQuery_ShiftedOffsetsLeftUnstyled(t *testing.T) {
	// U+0130 lowercases to a shorter encoding
	w := New(&bytes.Buffer{}, Options{Query: "i", CaseSensitive: false, Color: ColorAlways})
	assert.Equal(t, "İi", w.highlightQuery("İi"))
}

func TestLowerKeepsOffsets(t *testing.T) {
	assert.True(t, lowerKeepsOffsets("Hello, Мир"))
	assert.False(t, lowerKeepsOffsets("İ"))
	assert.False(t, lowerKeepsOffsets("bad\xffbyte"))
}

func TestLabel_NotATerminal(t *testing.T) {
	assert.Equal(t, "Application error", Label(&bytes.Buffer{}, "Application error"))
}
