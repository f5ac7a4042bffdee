// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jpretty

import "strings"

// A Class is the lexical category of a single input character. The class of
// the first character of a token decides which sub-scanner reads the rest.
type Class byte

// Constants defining the valid Class values.
const (
	Space     Class = iota // whitespace between tokens
	Symbol                 // structural symbol: { } [ ] , :
	Quote                  // double quotation mark, begins a string
	Digit                  // minus sign or decimal digit, begins a number
	Keyword                // t, f, or n, begins true, false, or null
	Forbidden              // single quotation mark, never valid
	Unknown                // any other character
)

var classStr = [...]string{
	Space:     "space",
	Symbol:    "symbol",
	Quote:     "quote",
	Digit:     "digit",
	Keyword:   "keyword",
	Forbidden: "forbidden",
	Unknown:   "unknown",
}

func (c Class) String() string {
	if int(c) >= len(classStr) {
		return classStr[Unknown]
	}
	return classStr[c]
}

// Classify reports the lexical class of ch.
func Classify(ch rune) Class {
	switch {
	case isSpace(ch):
		return Space
	case isSymbol(ch):
		return Symbol
	case ch == '"':
		return Quote
	case isNumStart(ch):
		return Digit
	case ch == 't', ch == 'f', ch == 'n':
		return Keyword
	case ch == '\'':
		return Forbidden
	}
	return Unknown
}

var self = [...]Token{LBrace, RBrace, LSquare, RSquare, Comma, Colon}

func isSymbol(ch rune) bool { return strings.ContainsRune("{}[],:", ch) }

func symbolToken(ch rune) (Token, bool) {
	i := strings.IndexRune("{}[],:", ch)
	if i >= 0 {
		return self[i], true
	}
	return Invalid, false
}

func isSpace(ch rune) bool {
	return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t'
}

func isNumStart(ch rune) bool { return ch == '-' || isDigit(ch) }
func isExpStart(ch rune) bool { return ch == '-' || ch == '+' || isDigit(ch) }
func isDigit(ch rune) bool    { return '0' <= ch && ch <= '9' }
func isNameRune(ch rune) bool { return ch >= 'a' && ch <= 'z' }

func isHexDigit(ch rune) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}
