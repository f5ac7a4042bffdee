// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jpretty_test

import (
	"testing"

	"github.com/creachadair/jpretty"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		chars string
		want  jpretty.Class
	}{
		{" \t\r\n", jpretty.Space},
		{"{}[],:", jpretty.Symbol},
		{`"`, jpretty.Quote},
		{"-0123456789", jpretty.Digit},
		{"tfn", jpretty.Keyword},
		{"'", jpretty.Forbidden},
		{"+.eETFNxyz/\\\x00é", jpretty.Unknown},
	}
	for _, test := range tests {
		for _, ch := range test.chars {
			if got := jpretty.Classify(ch); got != test.want {
				t.Errorf("Classify(%q): got %v, want %v", ch, got, test.want)
			}
		}
	}
}
