// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jpretty

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"go4.org/mem"
)

// Token identifies the kind of a lexeme read by a Scanner.
type Token byte

// Token kinds. Other covers any character that has no role in JSON.
const (
	Invalid Token = iota
	LBrace        // {
	RBrace        // }
	LSquare       // [
	RSquare       // ]
	Comma         // ,
	Colon         // :
	Integer       // -12, 0, 5139
	Number        // 2.5, 1e9, -0.5E-3
	String        // "a\tb"
	True
	False
	Null
	Other
)

var tokenStr = [...]string{
	Invalid: "invalid token",
	LBrace:  `"{"`,
	RBrace:  `"}"`,
	LSquare: `"["`,
	RSquare: `"]"`,
	Comma:   `","`,
	Colon:   `":"`,
	Integer: "integer",
	Number:  "number",
	String:  "string",
	True:    "true",
	False:   "false",
	Null:    "null",
	Other:   "other",
}

func (t Token) String() string {
	v := int(t)
	if v >= len(tokenStr) {
		return tokenStr[Invalid]
	}
	return tokenStr[v]
}

// isLiteral reports whether t is a complete value on its own.
func (t Token) isLiteral() bool {
	switch t {
	case Integer, Number, String, True, False, Null:
		return true
	}
	return false
}

// A Scanner splits JSON text into tokens, tracking the line and column of
// each one. It does not check how tokens are arranged; see Printer.
type Scanner struct {
	r   *bufio.Reader
	buf bytes.Buffer // current token
	tok Token
	err error

	pos, end int // byte offsets bounding the current token
	last     int // width of the rune most recently read

	// 0-based line and byte column of the token start (p) and end (e)
	pline, pcol int
	eline, ecol int
}

// NewScanner returns a Scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Scanner{r: br}
}

// Next advances s to the next token of the input, or reports an error.
// At the end of the input, Next returns io.EOF.
//
// A character that cannot begin any JSON token is reported as an Other token
// whose text is that character. A single quotation mark is always an error.
func (s *Scanner) Next() error {
	s.buf.Reset()
	s.err = nil
	s.tok = Invalid
	s.mark()

	for {
		ch, err := s.rune()
		if err == io.EOF {
			return s.setErr(err)
		} else if err != nil {
			return s.fail(err)
		}

		switch Classify(ch) {
		case Space:
			// Discard whitespace.
			if ch == '\n' {
				s.eline++
				s.ecol = 0
			}
			s.mark()
		case Symbol:
			s.buf.WriteRune(ch)
			s.tok, _ = symbolToken(ch)
			return nil
		case Digit:
			return s.scanNumber(ch)
		case Quote:
			return s.scanString(ch)
		case Keyword:
			return s.scanKeyword(ch)
		case Forbidden:
			return s.failf(ErrSingleQuote, "JSON does not allow single quotes: %q", ch)
		default:
			s.buf.WriteRune(ch)
			s.tok = Other
			return nil
		}
	}
}

// Token returns the type of the current token.
func (s *Scanner) Token() Token { return s.tok }

// Err returns the last error reported by Next.
func (s *Scanner) Err() error { return s.err }

// Text returns the current token exactly as it appeared in the input. The
// slice is reused by the next call to Next.
func (s *Scanner) Text() []byte { return s.buf.Bytes() }

// Span returns the byte offsets of the current token.
func (s *Scanner) Span() Span { return Span{Pos: s.pos, End: s.end} }

// Location returns the offsets and line/column range of the current token.
func (s *Scanner) Location() Location {
	return Location{
		Span:  s.Span(),
		First: LineCol{Line: s.pline + 1, Column: s.pcol},
		Last:  LineCol{Line: s.eline + 1, Column: s.ecol},
	}
}

// mark records the current read position as the start of the next token.
func (s *Scanner) mark() { s.pos, s.pline, s.pcol = s.end, s.eline, s.ecol }

func (s *Scanner) scanString(open rune) error {
	s.buf.WriteRune(open)
	var esc bool
	for {
		ch, err := s.rune()
		if err == io.EOF {
			return s.failf(ErrUnterminated, "end of input in string")
		} else if err != nil {
			return s.fail(err)
		} else if ch == open && !esc {
			s.buf.WriteRune(ch)
			s.tok = String
			return nil
		}
		if esc {
			// The previous rune was a backslash.
			switch ch {
			case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
				s.buf.WriteByte(byte(ch))
			case 'u':
				s.buf.WriteByte(byte(ch))
				if err := s.readHex4(); err != nil {
					return err
				}
			default:
				return s.failf(ErrString, "invalid %q after escape", ch)
			}
			esc = false
		} else if ch < ' ' {
			return s.failf(ErrString, "unescaped control %q", ch)
		} else if ch == utf8.RuneError && s.last == 1 {
			return s.failf(ErrString, "invalid UTF-8 in string")
		} else {
			s.buf.WriteRune(ch)
			esc = ch == '\\'
		}
	}
}

// scanNumber consumes a number beginning with start: an optional minus sign,
// an integer part, and then an optional fraction and exponent. A number with
// neither fraction nor exponent is an Integer.
func (s *Scanner) scanNumber(start rune) error {
	s.buf.WriteRune(start)
	if start == '-' {
		ch, err := s.require(isDigit, "digit")
		if err != nil {
			return err
		}
		s.buf.WriteRune(ch)
	}
	ch, more, err := s.readWhile(isDigit)
	if err != nil {
		return err
	} else if hasExtraLeadingZeroes(s.buf.Bytes()) {
		return s.failf(ErrNumber, "extra leading zeroes in %q", s.buf.String())
	}
	s.tok = Integer

	if more && ch == '.' {
		s.buf.WriteRune(ch)
		n := s.buf.Len()
		if ch, more, err = s.readWhile(isDigit); err != nil {
			return err
		} else if s.buf.Len() == n {
			return s.failf(ErrNumber, "no digits after decimal point")
		}
		s.tok = Number
	}

	if more && (ch == 'e' || ch == 'E') {
		s.buf.WriteRune(ch)
		lead, err := s.require(isExpStart, "sign or digit")
		if err != nil {
			return err
		}
		s.buf.WriteRune(lead)
		n := s.buf.Len()
		if ch, more, err = s.readWhile(isDigit); err != nil {
			return err
		} else if s.buf.Len() == n && !isDigit(lead) {
			return s.failf(ErrNumber, "missing exponent digits")
		}
		s.tok = Number
	}

	if more {
		s.unrune()
	}
	return nil
}

// scanKeyword consumes a run of lowercase letters starting with first, which
// must spell exactly one of the constants true, false, or null.
func (s *Scanner) scanKeyword(first rune) error {
	var tok Token
	var want mem.RO
	switch first {
	case 't':
		tok, want = True, mem.S("true")
	case 'f':
		tok, want = False, mem.S("false")
	case 'n':
		tok, want = Null, mem.S("null")
	default:
		return s.failf(ErrKeyword, "unexpected %q", first)
	}

	s.buf.WriteRune(first)
	_, more, err := s.readWhile(isNameRune)
	if err != nil {
		return err
	} else if more {
		s.unrune()
	}
	if got := mem.B(s.buf.Bytes()); !got.Equal(want) {
		return s.failf(ErrKeyword, "got %q, want %v", got.StringCopy(), tok)
	}
	s.tok = tok
	return nil
}

func (s *Scanner) rune() (rune, error) {
	ch, nb, err := s.r.ReadRune()
	s.last = nb
	s.end += nb
	s.ecol += nb
	return ch, err
}

func (s *Scanner) unrune() {
	s.end -= s.last
	s.ecol -= s.last
	s.last = 0
	s.r.UnreadRune()
}

// require reads a single rune matching f from the input, or returns a number
// error mentioning the desired label.
func (s *Scanner) require(f func(rune) bool, label string) (rune, error) {
	ch, err := s.rune()
	if err == io.EOF {
		return 0, s.failf(ErrNumber, "want %s, got end of input", label)
	} else if err != nil {
		return 0, s.fail(err)
	} else if !f(ch) {
		s.unrune()
		return 0, s.failf(ErrNumber, "got %q, want %s", ch, label)
	}
	return ch, nil
}

// readWhile copies runes matching f from the input into the token buffer.
// If it stops before the end of input, more is true and ch is the rune that
// did not match; the caller must either keep it or unread it.
func (s *Scanner) readWhile(f func(rune) bool) (ch rune, more bool, err error) {
	for {
		r, rerr := s.rune()
		if rerr == io.EOF {
			return 0, false, nil
		} else if rerr != nil {
			return 0, false, s.fail(rerr)
		} else if !f(r) {
			return r, true, nil
		}
		s.buf.WriteRune(r)
	}
}

// readHex4 copies the four hex digits of a \u escape.
func (s *Scanner) readHex4() error {
	for i := 0; i < 4; i++ {
		ch, err := s.rune()
		if err == io.EOF {
			return s.failf(ErrUnterminated, "end of input in Unicode escape")
		} else if err != nil {
			return s.fail(err)
		} else if !isHexDigit(ch) {
			return s.failf(ErrString, "invalid Unicode escape: not a hex digit: %q", ch)
		}
		s.buf.WriteRune(ch)
	}
	return nil
}

func (s *Scanner) setErr(err error) error {
	s.err = err
	return err
}

// fail reports an I/O error from the underlying reader.
func (s *Scanner) fail(err error) error {
	return s.setErr(&SyntaxError{
		Location: s.Location().First,
		Offset:   s.end,
		Message:  err.Error(),
		err:      err,
	})
}

// failf reports an error of the given kind at the start of the current token.
func (s *Scanner) failf(kind error, msg string, args ...any) error {
	return s.setErr(&SyntaxError{
		Location: s.Location().First,
		Offset:   s.pos,
		Message:  fmt.Sprintf(msg, args...),
		err:      kind,
	})
}

// hasExtraLeadingZeroes reports whether the integer part in buf starts with
// a zero followed by more digits, as in 01 or -007.
func hasExtraLeadingZeroes(buf []byte) bool {
	if buf[0] == '-' {
		buf = buf[1:]
	}
	return len(buf) > 1 && buf[0] == '0'
}
