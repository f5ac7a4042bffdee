package jpretty_test

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"testing"

	"github.com/creachadair/jpretty"
)

func BenchmarkPrinter(b *testing.B) {
	input, err := os.ReadFile("testdata/input.json")
	if err != nil {
		b.Fatalf("Reading test input: %v", err)
	}
	b.Logf("Benchmark input: %d bytes", len(input))

	b.Run("Indent", func(b *testing.B) {
		var buf bytes.Buffer
		for i := 0; i < b.N; i++ {
			buf.Reset()
			if err := json.Indent(&buf, input, "", "    "); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})

	b.Run("Printer", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if err := jpretty.Format(io.Discard, bytes.NewReader(input), nil); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})

	b.Run("Scanner", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			s := jpretty.NewScanner(bytes.NewReader(input))
			for s.Next() == nil {
			}
			if s.Err() != io.EOF {
				b.Fatalf("Unexpected error: %v", s.Err())
			}
		}
	})
}

func TestSampleInput(t *testing.T) {
	input, err := os.ReadFile("testdata/input.json")
	if err != nil {
		t.Fatalf("Reading test input: %v", err)
	}
	if !json.Valid(input) {
		t.Fatal("Test input is not valid JSON")
	}
	var buf bytes.Buffer
	if err := jpretty.Format(&buf, bytes.NewReader(input), &jpretty.Options{TabStop: 4}); err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	// Only insignificant whitespace differs between input and output.
	var compact bytes.Buffer
	if err := json.Compact(&compact, buf.Bytes()); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	var want bytes.Buffer
	if err := json.Compact(&want, input); err != nil {
		t.Fatalf("Compact input: %v", err)
	}
	if !bytes.Equal(compact.Bytes(), want.Bytes()) {
		t.Errorf("Output does not match input:\ngot  %s\nwant %s", compact.Bytes(), want.Bytes())
	}
}
