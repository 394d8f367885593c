package syntax

import "fmt"

// Pos represents a position in a source file.
// The zero value is an invalid position.
type Pos struct {
	filename string // source file name
	line     uint32 // 1-based line number
	col      uint32 // 1-based column number (byte offset in line)
}

// NewPos creates a new Pos with the given filename, line, and column.
// Line and column numbers are 1-based.
func NewPos(filename string, line, col uint32) Pos {
	return Pos{filename: filename, line: line, col: col}
}

// String returns a string representation of the position in the format
// "filename:line:col" or "line:col" if filename is empty.
func (p Pos) String() string {
	if p.filename != "" {
		return fmt.Sprintf("%s:%d:%d", p.filename, p.line, p.col)
	}
	return fmt.Sprintf("%d:%d", p.line, p.col)
}

// IsValid reports whether the position is valid.
// A position is valid if line > 0.
func (p Pos) IsValid() bool {
	return p.line > 0
}

// Line returns the 1-based line number.
func (p Pos) Line() uint32 {
	return p.line
}

// Col returns the 1-based column number (byte offset in line).
func (p Pos) Col() uint32 {
	return p.col
}

// Filename returns the source file name.
func (p Pos) Filename() string {
	return p.filename
}

// Before reports whether p comes strictly before q in the same file.
func (p Pos) Before(q Pos) bool {
	if p.line != q.line {
		return p.line < q.line
	}
	return p.col < q.col
}

// Span is a half-open source range [Start, End).
// A span with an invalid End covers only its start position.
type Span struct {
	Start Pos
	End   Pos
}

// NewSpan returns the span from start to end.
func NewSpan(start, end Pos) Span {
	return Span{Start: start, End: end}
}

// SpanOf returns the source span covered by n.
func SpanOf(n Node) Span {
	if n == nil {
		return Span{}
	}
	return Span{Start: n.Pos(), End: n.End()}
}

// IsValid reports whether the span has a valid start position.
func (s Span) IsValid() bool {
	return s.Start.IsValid()
}

// String formats the span as "file:line:col" when it covers a single
// position and "file:line:col-line:col" otherwise.
func (s Span) String() string {
	if !s.End.IsValid() || s.End == s.Start {
		return s.Start.String()
	}
	return fmt.Sprintf("%s-%d:%d", s.Start, s.End.line, s.End.col)
}
