// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jpretty implements a validating JSON pretty-printer.
//
// # Printing
//
// The Printer type reads JSON text from an io.Reader and writes it to an
// io.Writer with one token per line, indented by nesting depth, optionally
// wrapped in terminal color escapes. Lexing, validation, and rendering happen
// in one pass: each token is written as soon as it is recognized, and no
// document tree is built.
//
//	p := jpretty.NewPrinter(os.Stdout, &jpretty.Options{TabStop: 2})
//	if err := p.Print(input); err != nil {
//	   log.Fatalf("Print failed: %v", err)
//	}
//
// Given the input {"a":[1,2],"b":{}} with TabStop 2, the output is
//
//	{
//	  "a": [
//	    1,
//	    2
//	  ],
//	  "b": {}
//	}
//
// The lexemes of strings and numbers are copied exactly as written. Printing
// already-printed output again produces the same bytes.
//
// # Errors
//
// Print stops at the first problem it finds. Errors in the input are
// reported as a *SyntaxError giving the line and column of the offending
// token. Use errors.Is to distinguish the kinds:
//
//	Error            | Cause
//	---------------- | ------------------------------------------------
//	ErrInvalidStart  | the input does not begin with "{" or "["
//	ErrSingleQuote   | a single quotation mark, anywhere outside a string
//	ErrKeyword       | a misspelled true, false, or null
//	ErrNumber        | a "-" without digits, or a malformed fraction or exponent
//	ErrUnterminated  | end of input inside a string
//	ErrString        | a bad escape or control character in a string
//	ErrImbalance     | a closer without its opener, or end of input inside a value
//	ErrUnexpected    | a token out of place, such as a trailing comma
//
// Output already written before an error is not retracted.
//
// # Scanning
//
// The Scanner type implements the lexical scanner used by the Printer.
// Construct a scanner from an io.Reader and call its Next method to iterate
// over the stream. Next advances to the next input token and returns nil, or
// reports an error:
//
//	s := jpretty.NewScanner(input)
//	for s.Next() == nil {
//	   log.Printf("Next token: %v %q", s.Token(), s.Text())
//	}
//
// Next returns io.EOF when the input has been fully consumed. Any other error
// indicates an I/O or lexical error in the input.
//
//	if s.Err() != io.EOF {
//	   log.Fatalf("Scanning failed: %v", s.Err())
//	}
package jpretty
