// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jpretty

import "github.com/amterp/color"

// A Theme assigns terminal colors to token kinds. A nil color leaves tokens
// of that kind undecorated. Whitespace is never colored.
type Theme struct {
	Object *color.Color // braces "{" and "}"
	Array  *color.Color // brackets "[" and "]"
	Comma  *color.Color
	Colon  *color.Color
	Key    *color.Color // strings used as object keys
	String *color.Color // strings used as values
	Number *color.Color // integers and numbers
	True   *color.Color
	False  *color.Color
	Null   *color.Color
}

// DefaultTheme is the Theme used by a Printer whose options do not specify one.
var DefaultTheme = &Theme{
	Object: color.New(color.Bold),
	Array:  color.New(color.Bold),
	Comma:  color.New(color.Bold),
	Colon:  color.New(color.Bold),
	Key:    color.New(color.FgBlue, color.Bold),
	String: color.New(color.FgGreen),
	Number: color.New(color.FgCyan),
	True:   color.New(color.FgYellow),
	False:  color.New(color.FgYellow),
	Null:   color.New(color.FgBlack, color.Bold),
}

// forced returns a copy of t whose colors are enabled regardless of whether
// the process output is a terminal.
func (t *Theme) forced() *Theme {
	force := func(c *color.Color) *color.Color {
		if c == nil {
			return nil
		}
		cp := *c
		cp.EnableColor()
		return &cp
	}
	return &Theme{
		Object: force(t.Object),
		Array:  force(t.Array),
		Comma:  force(t.Comma),
		Colon:  force(t.Colon),
		Key:    force(t.Key),
		String: force(t.String),
		Number: force(t.Number),
		True:   force(t.True),
		False:  force(t.False),
		Null:   force(t.Null),
	}
}

// colorOf returns the color for tok, which is an object key if key is true.
func (t *Theme) colorOf(tok Token, key bool) *color.Color {
	switch tok {
	case LBrace, RBrace:
		return t.Object
	case LSquare, RSquare:
		return t.Array
	case Comma:
		return t.Comma
	case Colon:
		return t.Colon
	case String:
		if key {
			return t.Key
		}
		return t.String
	case Integer, Number:
		return t.Number
	case True:
		return t.True
	case False:
		return t.False
	case Null:
		return t.Null
	}
	return nil
}
