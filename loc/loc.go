// Package loc provides locations and spans within a lexed input.
// Offsets count runes from the start of the input, 0-based.
package loc

type Loc struct {
	// This is the 0-based index of this location from the start of the
	// input, in runes
	Start int
}

// Span is a range of runes in the input. The start is inclusive,
// the end is exclusive.
type Span struct {
	Start, End int
}

func (s Span) Len() int {
	return s.End - s.Start
}

type Range struct {
	Loc Loc
	Len int
}

func (r Range) End() int {
	return r.Loc.Start + r.Len
}
