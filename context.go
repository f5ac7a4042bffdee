// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jpretty

// expect records which tokens are grammatically valid at the current position.
type expect byte

const (
	wantDoc        expect = iota // "{" or "[" at top level
	wantKeyOrEnd                 // string key or "}", just after "{"
	wantKey                      // string key, after "," in an object
	wantColon                    // ":" after a key
	wantValueOrEnd               // any value or "]", just after "["
	wantValue                    // any value, after ":" or "," in an array
	wantSepOrEnd                 // "," or the closer of the innermost structure
)

var expectStr = [...]string{
	wantDoc:        `"{" or "["`,
	wantKeyOrEnd:   `string or "}"`,
	wantKey:        "string",
	wantColon:      `":"`,
	wantValueOrEnd: `value or "]"`,
	wantValue:      "value",
	wantSepOrEnd:   `"," or closer`,
}

func (e expect) String() string { return expectStr[e] }

// scanState is the mutable context threaded through a single printing pass.
//
// The open stack has one entry per unclosed object or array, true for arrays.
// Its length is the nesting depth and its top is the array-context flag.
type scanState struct {
	open    []bool
	want    expect
	pending bool // a line break is owed before the next token
	docs    int  // number of complete top-level values
}

func (c *scanState) depth() int { return len(c.open) }

// inArray reports whether the innermost open structure is an array.
func (c *scanState) inArray() bool {
	if len(c.open) == 0 {
		return false
	}
	return c.open[len(c.open)-1]
}

// push opens a new structure and marks a line break as owed.
func (c *scanState) push(array bool) {
	c.open = append(c.open, array)
	c.pending = true
	if array {
		c.want = wantValueOrEnd
	} else {
		c.want = wantKeyOrEnd
	}
}

// pop closes the innermost structure, which must be an array if array is
// true, or an object otherwise. It reports false without changing c if there
// is no such structure.
func (c *scanState) pop(array bool) bool {
	if len(c.open) == 0 || c.inArray() != array {
		return false
	}
	c.open = c.open[:len(c.open)-1]
	return true
}

// endValue records that a complete value was rendered at the current depth.
func (c *scanState) endValue() {
	if len(c.open) == 0 {
		c.docs++
		c.want = wantDoc
	} else {
		c.want = wantSepOrEnd
	}
}

// separate records a value separator.
func (c *scanState) separate() {
	c.pending = true
	if c.inArray() {
		c.want = wantValue
	} else {
		c.want = wantKey
	}
}

// wantsKey reports whether a string at this position is an object key.
func (c *scanState) wantsKey() bool { return c.want == wantKeyOrEnd || c.want == wantKey }

// wantsValue reports whether a value may begin at this position.
func (c *scanState) wantsValue() bool {
	return c.want == wantValue || c.want == wantValueOrEnd || c.want == wantDoc
}

// canClose reports whether the innermost structure may end at this position.
func (c *scanState) canClose() bool {
	return c.want == wantKeyOrEnd || c.want == wantValueOrEnd || c.want == wantSepOrEnd
}
