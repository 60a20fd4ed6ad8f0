// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"strings"
	"testing"
)

func newTestSession(t *testing.T, variant string) *Session {
	t.Helper()
	s, err := NewSession(variant, defaultConfig())
	if err != nil {
		t.Fatalf("NewSession(%q): %v", variant, err)
	}
	return s
}

func TestSessionCommands(t *testing.T) {
	tests := []struct {
		name    string
		variant string
		lines   []string
		want    string
		wantErr error
	}{
		{"print in order", "avl", []string{"insert 0 16 8 24 20 22"}, "Your tree: 0 8 16 20 22 24", nil},
		{"avl preorder", "avl", []string{"insert 0 16 8 24 20 22"}, "Pre-order: 20 8 0 16 24 22", nil},
		{"rbt preorder", "rbt", []string{"insert 0 16 8 24 20 22"}, "Pre-order: 8 0 20 16 24 22", nil},
		{"llrb preorder", "llrb", []string{"insert 0 16 8 24 20 22"}, "Pre-order: 20 8 0 16 24 22", nil},
		{"height", "avl", []string{"insert 1 2 3"}, "Height of tree: 2", nil},
		{"count leaves", "bst", []string{"insert 2 1 3"}, "Number of leaves: 2", nil},
		{"len", "rbt", []string{"insert 5 5 6"}, "Length: 2", nil},
		{"min", "avl", []string{"insert 9 4 7"}, "Minimum Value: 4", nil},
		{"max", "avl", []string{"insert 9 4 7"}, "Maximum Value: 9", nil},
		{"min of empty tree", "rbt", nil, emptyTreeMessage, nil},
		{"max of empty tree", "llrb", nil, emptyTreeMessage, nil},
		{"print empty tree", "avl", nil, noNodeMessage, nil},
		{"empty", "bst", nil, "Is the tree empty?: true", nil},
		{"valid", "rbt", []string{"insert 3 1 2"}, "Is the tree valid?: true", nil},
		{"contains hit", "avl", []string{"insert 3"}, "value 3 found? true", nil},
		{"delete", "rbt", []string{"insert 1 2 3", "delete 2"}, "Your tree: 1 3", nil},
		{"upper case command", "avl", []string{"INSERT 4"}, "Your tree: 4", nil},
		{"quoted argument", "avl", []string{`insert "12"`}, "Your tree: 12", nil},
		{"delete unsupported", "llrb", []string{"insert 1", "delete 1"}, "Your tree: 1", nil},
		{"unknown command", "avl", []string{"frobnicate"}, noNodeMessage, nil},
		{"bad value leaves tree untouched", "avl", []string{"insert 1 x 3"}, noNodeMessage, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(t, tt.variant)
			for _, line := range tt.lines {
				s.Execute(line)
			}
			query := "print"
			switch {
			case strings.HasPrefix(tt.want, "Pre-order"):
				query = "preorder"
			case strings.HasPrefix(tt.want, "Height"):
				query = "height"
			case strings.HasPrefix(tt.want, "Number"):
				query = "count"
			case strings.HasPrefix(tt.want, "Length"):
				query = "len"
			case strings.HasPrefix(tt.want, "Minimum"), tt.name == "min of empty tree":
				query = "min"
			case strings.HasPrefix(tt.want, "Maximum"), tt.name == "max of empty tree":
				query = "max"
			case strings.HasPrefix(tt.want, "Is the tree empty"):
				query = "empty"
			case strings.HasPrefix(tt.want, "Is the tree valid"):
				query = "valid"
			case strings.HasPrefix(tt.want, "value"):
				query = "contains 3"
			}
			res, err := s.Execute(query)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Execute(%q) error = %v; want %v", query, err, tt.wantErr)
			}
			if res.Output != tt.want {
				t.Errorf("Execute(%q) = %q; want %q", query, res.Output, tt.want)
			}
		})
	}
}

func TestSessionErrors(t *testing.T) {
	tests := []struct {
		name    string
		variant string
		line    string
		wantErr error
	}{
		{"unknown command", "avl", "frobnicate", errUnknownCommand},
		{"non integer argument", "avl", "insert seven", errNotInteger},
		{"delete without support", "llrb", "delete 3", errUnsupported},
		{"copy before output", "rbt", "copy", errNothingToCopy},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(t, tt.variant)
			res, err := s.Execute(tt.line)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Execute(%q) error = %v; want %v", tt.line, err, tt.wantErr)
			}
			if res.Prompt != "operation > " {
				t.Errorf("Prompt = %q; want the operation prompt", res.Prompt)
			}
		})
	}
}

func TestUnknownCommandMessage(t *testing.T) {
	s := newTestSession(t, "avl")
	_, err := s.Execute("Frobnicate now")
	if err == nil {
		t.Fatal("unknown command returned no error")
	}
	if want := "command not recognized, try 'help' for valid operations"; err.Error() != want {
		t.Errorf("error = %q; want %q", err.Error(), want)
	}
}

func TestSessionPendingValue(t *testing.T) {
	s := newTestSession(t, "avl")

	res, err := s.Execute("insert")
	if err != nil {
		t.Fatal(err)
	}
	if res.Prompt != "insert value > " {
		t.Fatalf("Prompt = %q; want %q", res.Prompt, "insert value > ")
	}

	for _, bad := range []string{"abc", "", "1.5"} {
		res, err = s.Execute(bad)
		if !errors.Is(err, errNotInteger) || err.Error() != "this was not an integer number" {
			t.Errorf("Execute(%q) error = %v", bad, err)
		}
		if res.Prompt != "insert value > " {
			t.Errorf("after %q Prompt = %q; want the value prompt again", bad, res.Prompt)
		}
	}

	res, err = s.Execute(" 42 ")
	if err != nil {
		t.Fatal(err)
	}
	if res.Output != "insert value '42' in tree ... done!" {
		t.Errorf("Output = %q", res.Output)
	}
	if res.Prompt != "operation > " {
		t.Errorf("Prompt = %q; want the operation prompt", res.Prompt)
	}
	if !s.Tree().Contains(42) {
		t.Error("42 was not inserted")
	}
}

func TestSessionContainsUsesFilter(t *testing.T) {
	s := newTestSession(t, "rbt")
	s.Execute("insert 1 2 3")
	s.Execute("delete 2")

	res, _ := s.Execute("contains 2 1000")
	if want := "value 2 found? false\nvalue 1000 found? false"; res.Output != want {
		t.Errorf("Output = %q; want %q", res.Output, want)
	}
	if s.filter.Skipped() != 1 {
		t.Errorf("filter answered %d lookups alone; want 1", s.filter.Skipped())
	}
}

func TestSessionRenderCacheFollowsMutations(t *testing.T) {
	s := newTestSession(t, "avl")
	s.Execute("insert 2 1")
	first, _ := s.Execute("print")
	s.Execute("insert 3")
	second, _ := s.Execute("print")

	if first.Output != "Your tree: 1 2" || second.Output != "Your tree: 1 2 3" {
		t.Errorf("outputs = %q, %q", first.Output, second.Output)
	}
}

func TestSessionCopyAndQuit(t *testing.T) {
	s := newTestSession(t, "avl")
	var copied string
	s.copyFn = func(text string) error {
		copied = text
		return nil
	}

	s.Execute("insert 5")
	s.Execute("height")
	if _, err := s.Execute("copy"); err != nil {
		t.Fatal(err)
	}
	if copied != "Height of tree: 1" {
		t.Errorf("copied %q", copied)
	}

	res, _ := s.Execute("help")
	if !res.Help || !strings.Contains(res.Output, "AVL Tree") {
		t.Error("help did not return the command reference")
	}
	for _, line := range []string{"exit", "QUIT"} {
		if res, _ := s.Execute(line); !res.Quit {
			t.Errorf("%q did not quit", line)
		}
	}
}

func TestSessionHistoryLimit(t *testing.T) {
	cfg := defaultConfig()
	cfg.Shell.HistoryLimit = 2
	s, err := NewSession("bst", cfg)
	if err != nil {
		t.Fatal(err)
	}
	for _, line := range []string{"insert 1", "height", "", "min"} {
		s.Execute(line)
	}
	got := s.History()
	if len(got) != 2 || got[0] != "height" || got[1] != "min" {
		t.Errorf("History = %q", got)
	}
}

func TestRunPlainShell(t *testing.T) {
	s := newTestSession(t, "avl")
	in := strings.NewReader("insert\nx\n7\ninsert 3 9\nprint\nexit\nprint\n")
	var out strings.Builder

	if err := runPlainShell(s, in, &out); err != nil {
		t.Fatal(err)
	}
	got := out.String()
	for _, want := range []string{
		"::...AVL Tree branch...::",
		"insert value > ",
		"this was not an integer number",
		"insert value '7' in tree ... done!",
		"Your tree: 3 7 9",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if strings.Count(got, "Your tree:") != 1 {
		t.Error("commands after exit were executed")
	}
}
