// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jpretty

import "fmt"

// A Span is the half-open range of byte offsets [Pos, End) in the input.
type Span struct {
	Pos, End int
}

// A LineCol is a position in the input by line and column.
type LineCol struct {
	Line   int // 1-based
	Column int // bytes from the start of the line, 0-based
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }

// A Location is a Span together with the line and column where it begins
// and ends.
type Location struct {
	Span
	First, Last LineCol
}

func (loc Location) String() string {
	if loc.First.Line == loc.Last.Line {
		return fmt.Sprintf("%d:%d-%d", loc.First.Line, loc.First.Column, loc.Last.Column)
	}
	return fmt.Sprintf("%s-%s", loc.First, loc.Last)
}
