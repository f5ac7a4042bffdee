// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jpretty

import (
	"fmt"
	"io"
	"strings"
)

// DefaultTabStop is the indentation width used when no Options are given.
const DefaultTabStop = 4

// Options control the rendering performed by a Printer.
// A nil *Options is ready for use and selects the defaults.
type Options struct {
	// TabStop is the number of spaces per nesting level. Zero puts every
	// token on its own line flush left. It must not be negative.
	TabStop int

	// Color enables terminal color escapes around each token.
	Color bool

	// Theme selects the colors used when Color is true.
	// If nil, DefaultTheme is used.
	Theme *Theme

	// Strict makes characters outside the JSON grammar an error. Otherwise
	// they are skipped when they occur inside an object or array.
	Strict bool
}

// A Printer validates JSON text and renders it indented, one token per
// line, in a single pass over the input. No document tree is built: each
// token is written as soon as it has been recognized.
type Printer struct {
	w      io.Writer
	opts   Options
	theme  *Theme
	indent string // cached run of spaces, grown as needed
	err    error  // first write error
}

// NewPrinter constructs a Printer that writes to w with the settings from
// opts. The options are copied and not retained. It panics if w == nil.
func NewPrinter(w io.Writer, opts *Options) *Printer {
	if w == nil {
		panic("jpretty: cannot create a Printer with a nil writer")
	}
	p := &Printer{w: w, opts: Options{TabStop: DefaultTabStop}}
	if opts != nil {
		p.opts = *opts
	}
	if p.opts.Color {
		theme := p.opts.Theme
		if theme == nil {
			theme = DefaultTheme
		}
		p.theme = theme.forced()
	}
	return p
}

// Format renders the JSON text read from r to w with the settings from opts.
func Format(w io.Writer, r io.Reader, opts *Options) error {
	return NewPrinter(w, opts).Print(r)
}

// Print consumes the JSON text from r and writes its rendering. It returns
// nil when the input ended with every object and array closed. Otherwise it
// stops at the first error. Errors in the input have concrete type
// *SyntaxError; errors from w are returned as-is. Output already written is
// not retracted.
//
// The input may hold several top-level values in sequence; each must be an
// object or an array, and each is followed by a newline in the output.
func (p *Printer) Print(r io.Reader) error {
	if p.opts.TabStop < 0 {
		return fmt.Errorf("invalid tab stop %d: %w", p.opts.TabStop, ErrTabStop)
	}
	p.err = nil

	s := NewScanner(r)
	var st scanState
	for {
		if err := s.Next(); err == io.EOF {
			return p.finish(s, &st)
		} else if err != nil {
			return err
		}
		if err := p.render(s, &st); err != nil {
			return err
		}
	}
}

// render checks the current token of s against st, writes it, and updates st.
func (p *Printer) render(s *Scanner, st *scanState) error {
	tok := s.Token()
	if st.depth() == 0 {
		switch {
		case tok == RBrace || tok == RSquare:
			if st.docs > 0 {
				return p.failf(s, ErrImbalance, "unmatched %v", tok)
			}
			return p.failf(s, ErrInvalidStart, "JSON must start with %q or %q, not %q", '{', '[', s.Text())
		case tok != LBrace && tok != LSquare:
			return p.failf(s, ErrInvalidStart, "JSON must start with %q or %q, not %q", '{', '[', s.Text())
		}
	}

	switch tok {
	case LBrace, LSquare:
		if !st.wantsValue() {
			return p.unexpected(s, st)
		}
		p.lineBreak(st)
		p.emit(tok, false, s.Text())
		st.push(tok == LSquare)

	case RBrace, RSquare:
		array := tok == RSquare
		if st.inArray() != array {
			return p.failf(s, ErrImbalance, "mismatched %v", tok)
		} else if !st.canClose() {
			return p.unexpected(s, st)
		}
		st.pop(array)
		if st.pending {
			st.pending = false // empty object or array
		} else {
			p.newline(st.depth())
		}
		p.emit(tok, false, s.Text())
		st.endValue()
		if st.depth() == 0 {
			p.write("\n")
		}

	case Comma:
		if st.want != wantSepOrEnd {
			return p.unexpected(s, st)
		}
		p.emit(tok, false, s.Text())
		st.separate()

	case Colon:
		if st.want != wantColon {
			return p.unexpected(s, st)
		}
		p.emit(tok, false, s.Text())
		p.write(" ")
		st.want = wantValue

	case Other:
		if p.opts.Strict {
			return p.unexpected(s, st)
		}

	default:
		if !tok.isLiteral() {
			return p.failf(s, ErrUnexpected, "unknown token %v", tok)
		}
		key := tok == String && st.wantsKey()
		if !key && !st.wantsValue() {
			return p.unexpected(s, st)
		}
		p.lineBreak(st)
		p.emit(tok, key, s.Text())
		if key {
			st.want = wantColon
		} else {
			st.endValue()
		}
	}
	return p.err
}

// finish checks the state at the end of the input.
func (p *Printer) finish(s *Scanner, st *scanState) error {
	if n := st.depth(); n > 0 {
		return p.failf(s, ErrImbalance, "unexpected end of input with %d unclosed %s", n, plural(n, "structure"))
	} else if st.docs == 0 {
		return p.failf(s, ErrInvalidStart, "JSON must start with %q or %q, got end of input", '{', '[')
	}
	return nil
}

// lineBreak writes the line break owed after an open or a separator, if any.
func (p *Printer) lineBreak(st *scanState) {
	if st.pending {
		p.newline(st.depth())
		st.pending = false
	}
}

// newline writes a newline followed by indentation for the given depth.
func (p *Printer) newline(depth int) {
	n := depth * p.opts.TabStop
	if len(p.indent) < n {
		p.indent = strings.Repeat(" ", n)
	}
	p.write("\n")
	p.write(p.indent[:n])
}

// emit writes the text of tok, colored if enabled.
func (p *Printer) emit(tok Token, key bool, text []byte) {
	if p.theme != nil {
		if c := p.theme.colorOf(tok, key); c != nil {
			p.write(c.Sprint(string(text)))
			return
		}
	}
	p.write(string(text))
}

func (p *Printer) write(s string) {
	if p.err != nil || s == "" {
		return
	}
	_, p.err = io.WriteString(p.w, s)
}

func (p *Printer) unexpected(s *Scanner, st *scanState) error {
	return p.failf(s, ErrUnexpected, "unexpected %v %q, expected %s", s.Token(), s.Text(), st.want)
}

func (p *Printer) failf(s *Scanner, kind error, msg string, args ...any) error {
	loc := s.Location()
	return &SyntaxError{
		Location: loc.First,
		Offset:   loc.Pos,
		Message:  fmt.Sprintf(msg, args...),
		err:      kind,
	}
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
