package output

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// ColorMode controls when matches are highlighted
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode validates a --color value. An empty value means auto.
func ParseColorMode(s string) (ColorMode, error) {
	switch mode := ColorMode(strings.ToLower(s)); mode {
	case ColorAuto, ColorAlways, ColorNever:
		return mode, nil
	case "":
		return ColorAuto, nil
	default:
		return "", fmt.Errorf("invalid color mode %q (want auto, always or never)", s)
	}
}

// Options configures a Writer
type Options struct {
	Query         string
	CaseSensitive bool
	Color         ColorMode
	LineNumbers   bool
}

// Writer prints matching lines, one per line
type Writer struct {
	w       io.Writer
	opts    Options
	colored bool

	highlightStyle  lipgloss.Style
	lineNumberStyle lipgloss.Style
}

// New creates a Writer on w. In auto mode highlighting is enabled only when w
// is a terminal.
func New(w io.Writer, opts Options) *Writer {
	colored := IsColorEnabled(w, opts.Color)

	renderer := lipgloss.NewRenderer(w)
	if colored {
		renderer.SetColorProfile(termenv.ANSI256)
	} else {
		renderer.SetColorProfile(termenv.Ascii)
	}

	return &Writer{
		w:       w,
		opts:    opts,
		colored: colored,
		highlightStyle: renderer.NewStyle().
			Foreground(lipgloss.Color("220")).
			Bold(true),
		lineNumberStyle: renderer.NewStyle().
			Foreground(lipgloss.Color("240")),
	}
}

// WriteLine writes a single matching line
func (wr *Writer) WriteLine(line string) error {
	if wr.colored {
		line = wr.highlightQuery(line)
	}
	_, err := io.WriteString(wr.w, line+"\n")
	return err
}

// WriteNumbered writes a matching line prefixed with its 1-based line number
// when line numbers are enabled, and like WriteLine otherwise
func (wr *Writer) WriteNumbered(lineNum int, line string) error {
	if !wr.opts.LineNumbers {
		return wr.WriteLine(line)
	}

	num := strconv.Itoa(lineNum)
	if wr.colored {
		num = wr.lineNumberStyle.Render(num)
		line = wr.highlightQuery(line)
	}
	_, err := io.WriteString(wr.w, num+":"+line+"\n")
	return err
}

// IsColorEnabled resolves mode against the destination writer
func IsColorEnabled(w io.Writer, mode ColorMode) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}

	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// highlightQuery styles every occurrence of the query in text
func (wr *Writer) highlightQuery(text string) string {
	query := wr.opts.Query
	if query == "" {
		return text
	}

	haystack, needle := text, query
	if !wr.opts.CaseSensitive {
		// Offsets found in the lowercased line must also be valid in text
		if !lowerKeepsOffsets(text) {
			return text
		}
		haystack = strings.ToLower(text)
		needle = strings.ToLower(query)
	}

	var b strings.Builder
	lastIndex := 0
	for {
		idx := strings.Index(haystack[lastIndex:], needle)
		if idx == -1 {
			break
		}
		start := lastIndex + idx
		end := start + len(needle)

		b.WriteString(text[lastIndex:start])
		b.WriteString(wr.highlightStyle.Render(text[start:end]))
		lastIndex = end
	}
	b.WriteString(text[lastIndex:])

	return b.String()
}

// lowerKeepsOffsets reports whether lowercasing s leaves every rune at the
// same byte offset
func lowerKeepsOffsets(s string) bool {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			return false
		}
		if utf8.RuneLen(unicode.ToLower(r)) != size {
			return false
		}
		i += size
	}
	return true
}
