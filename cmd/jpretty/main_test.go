// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func runWith(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, env{
		stdin:  strings.NewReader(stdin),
		stdout: &stdout,
		stderr: &stderr,
	})
	return code, stdout.String(), stderr.String()
}

func TestRun(t *testing.T) {
	tests := []struct {
		name   string
		stdin  string
		args   []string
		code   int
		stdout string
		stderr string // substring of the diagnostic
	}{
		{"ScenarioA", `{"a":1}`, []string{"-t", "2"}, 0, "{\n  \"a\": 1\n}\n", ""},
		{"ScenarioB", `[1,2,3]`, []string{"--tab-stop=4", "-"}, 0, "[\n    1,\n    2,\n    3\n]\n", ""},
		{"ScenarioC", `{'a':1}`, nil, 1, "{", "single quotes"},
		{"ScenarioD", `{"a":1`, []string{"-t", "2"}, 1, "{\n  \"a\": 1", "unexpected end of input"},
		{"ScenarioE", `tru`, nil, 1, "", `got "tru", want true`},

		{"DefaultTabStop", `[1]`, nil, 0, "[\n    1\n]\n", ""},
		{"NeverColor", `[true]`, []string{"--color=never", "-t", "1"}, 0, "[\n true\n]\n", ""},
		{"Lenient", `[1 x]`, []string{"-t", "1"}, 0, "[\n 1\n]\n", ""},
		{"Strict", `[1 x]`, []string{"-s", "-t", "1"}, 1, "[\n 1", "unexpected other"},
		{"JWCC", "{\n  // comment\n  \"a\": [1, 2,],\n}", []string{"-j", "-t", "2"}, 0,
			"{\n  \"a\": [\n    1,\n    2\n  ]\n}\n", ""},
		{"NoJWCC", "{\"a\": [1, 2,]}", []string{"-t", "2"}, 1, "{\n  \"a\": [\n    1,\n    2,", "unexpected"},
		{"NegativeTabStop", `[]`, []string{"--tab-stop=-1"}, 1, "", "tab stop"},
		{"BadColor", `[]`, []string{"--color=sometimes"}, 1, "", "sometimes"},
		{"MissingFile", ``, []string{"no/such/file.json"}, 1, "", "error opening file"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			code, stdout, stderr := runWith(t, test.stdin, test.args...)
			if code != test.code {
				t.Errorf("Exit code: got %d, want %d (stderr %q)", code, test.code, stderr)
			}
			if diff := cmp.Diff(test.stdout, stdout); diff != "" {
				t.Errorf("Output: (-want, +got)\n%s", diff)
			}
			if test.stderr == "" && stderr != "" {
				t.Errorf("Unexpected diagnostic: %q", stderr)
			} else if !strings.Contains(stderr, test.stderr) {
				t.Errorf("Diagnostic: got %q, want it to contain %q", stderr, test.stderr)
			}
		})
	}
}

func TestRunFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.json")
	if err := os.WriteFile(path, []byte(`{"ok":[true,null]}`), 0o644); err != nil {
		t.Fatalf("Writing input: %v", err)
	}
	code, stdout, stderr := runWith(t, "", "-t", "2", path)
	if code != 0 {
		t.Fatalf("Exit code: got %d, want 0 (stderr %q)", code, stderr)
	}
	want := "{\n  \"ok\": [\n    true,\n    null\n  ]\n}\n"
	if diff := cmp.Diff(want, stdout); diff != "" {
		t.Errorf("Output: (-want, +got)\n%s", diff)
	}
}

func TestHelp(t *testing.T) {
	code, stdout, _ := runWith(t, "", "--help")
	if code != 0 {
		t.Errorf("Exit code: got %d, want 0", code)
	}
	if !strings.Contains(stdout, "--tab-stop") {
		t.Errorf("Help output does not describe --tab-stop:\n%s", stdout)
	}
}

func TestUseColor(t *testing.T) {
	tests := []struct {
		mode string
		tty  bool
		want bool
	}{
		{"always", false, true},
		{"always", true, true},
		{"never", true, false},
		{"never", false, false},
		{"auto", false, false},
	}
	for _, test := range tests {
		if got := useColor(test.mode, test.tty); got != test.want {
			t.Errorf("useColor(%q, %v): got %v, want %v", test.mode, test.tty, got, test.want)
		}
	}
}
