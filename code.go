package fluxins

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

// lineSpan is the byte range of one line of source, not counting its
// trailing newline.
type lineSpan struct {
	begin, length int
}

// Code wraps an expression's source text together with the line index
// needed to turn byte offsets into human-readable locations.
type Code struct {
	// Text is the expression source.
	Text string
	// Name identifies the source for diagnostics, e.g. in a formatted
	// CodeError. Randomly generated by NewCode if not given explicitly.
	Name string

	lines []lineSpan
}

// NewCode wraps text with a randomly generated name.
func NewCode(text string) *Code {
	return NewNamedCode(text, randomCodeName())
}

// NewNamedCode wraps text under an explicit name.
func NewNamedCode(text, name string) *Code {
	c := &Code{Text: text, Name: name}
	c.splitLines()
	return c
}

func randomCodeName() string {
	return fmt.Sprintf("%08x.flx", rand.Uint32())
}

func (c *Code) splitLines() {
	begin := 0
	for begin <= len(c.Text) {
		end := strings.IndexByte(c.Text[begin:], '\n')
		if end < 0 {
			c.lines = append(c.lines, lineSpan{begin, len(c.Text) - begin})
			return
		}
		c.lines = append(c.lines, lineSpan{begin, end})
		begin += end + 1
	}
}

// LineCol returns the 1-based line number and 0-based column of the byte
// offset pos within the source text. The offset just past a line's last
// character (its newline, or the end of the text) maps to that line, at
// the column equal to the line's length.
func (c *Code) LineCol(pos int) (line, col int, err error) {
	for i, ln := range c.lines {
		if pos >= ln.begin && pos <= ln.begin+ln.length {
			return i + 1, pos - ln.begin, nil
		}
	}
	return 0, 0, fmt.Errorf("fluxins: position %d is out of range", pos)
}

// Line returns the 1-based line n of the source text, without its
// trailing newline.
func (c *Code) Line(n int) (string, error) {
	if n == 0 || n > len(c.lines) {
		return "", fmt.Errorf("fluxins: line %d is out of range", n)
	}
	ln := c.lines[n-1]
	return c.Text[ln.begin : ln.begin+ln.length], nil
}

// Lines returns the 1-based, inclusive range of lines [begin, end].
func (c *Code) Lines(begin, end int) ([]string, error) {
	if begin == 0 || end > len(c.lines) || begin > end {
		return nil, fmt.Errorf("fluxins: line range %d-%d is out of range", begin, end)
	}
	out := make([]string, 0, end-begin+1)
	for i := begin - 1; i < end; i++ {
		ln := c.lines[i]
		out = append(out, c.Text[ln.begin:ln.begin+ln.length])
	}
	return out, nil
}

// CodeLocation points to a span of a Code, plus a single byte offset
// within that span (relative to Begin) that is the important part for
// caret rendering. A location can span multiple lines.
type CodeLocation struct {
	Begin   int
	Length  int
	Pointer int
}

// Preview renders the lines the location spans, with a marker row below
// each showing where the location begins (<), ends (>), continues (~),
// and points (^).
func (loc CodeLocation) Preview(c *Code, padding int) (string, error) {
	beginPos := loc.Begin
	endPos := loc.Begin + loc.Length
	pointerPos := loc.Begin + loc.Pointer

	beginLine, beginCol, err := c.LineCol(beginPos)
	if err != nil {
		return "", err
	}
	endLine, endColInc, err := c.LineCol(endPos - 1)
	if err != nil {
		return "", err
	}
	pointerLine, pointerCol, err := c.LineCol(pointerPos)
	if err != nil {
		return "", err
	}
	endColExc := endColInc + 1

	width := len(strconv.Itoa(endLine))
	pad := strings.Repeat(" ", padding)

	var b strings.Builder
	for ln := beginLine; ln <= endLine; ln++ {
		line, err := c.Line(ln)
		if err != nil {
			return "", err
		}
		b.WriteString(pad)
		fmt.Fprintf(&b, "%*d | %s\n", width, ln, line)

		b.WriteString(pad)
		b.WriteString(strings.Repeat(" ", width))
		b.WriteString(" | ")

		lineLen := c.lines[ln-1].length
		start := 0
		if ln == beginLine {
			start = beginCol
		}
		end := lineLen
		if ln == endLine {
			end = endColExc
		}

		b.WriteString(strings.Repeat(" ", start))
		for col := start; col < end; col++ {
			switch {
			case ln == pointerLine && col == pointerCol:
				b.WriteByte('^')
			case ln == beginLine && col == start:
				b.WriteByte('<')
			case ln == endLine && col == end-1:
				b.WriteByte('>')
			default:
				b.WriteByte('~')
			}
		}
		b.WriteByte('\n')
	}
	return b.String(), nil
}
