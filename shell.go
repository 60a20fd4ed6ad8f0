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
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	markdown "github.com/MichaelMure/go-term-markdown"
	"github.com/atotto/clipboard"
	"github.com/mattn/go-shellwords"
	"github.com/patrickmn/go-cache"

	"github.com/cybrota/arbor/ordered"
)

var (
	errNotInteger     = errors.New("this was not an integer number")
	errUnsupported    = errors.New("operation not supported")
	errUnknownCommand = errors.New("command not recognized, try 'help' for valid operations")
	errNothingToCopy  = errors.New("nothing to copy yet")
)

const (
	emptyTreeMessage = "It is an empty tree!"
	noNodeMessage    = "There is no node in the tree!"
)

// Result is what one shell line produced.
type Result struct {
	Output string
	// Prompt to show before the next line.
	Prompt string
	// Help is set when Output is the markdown command reference.
	Help bool
	Quit bool
}

// Session runs shell commands against one tree. It holds no terminal state,
// so the TUI and the plain line loop share it.
type Session struct {
	variant Variant
	tree    ordered.Tree[int]
	filter  *keyFilter
	renders *cache.Cache

	// generation increases on every mutation and keys the render cache.
	generation uint64
	pending    string
	prompt     string
	lastOutput string

	history      []string
	historyLimit int

	copyFn func(string) error
}

func NewSession(variantName string, cfg *Config) (*Session, error) {
	v, err := lookupVariant(variantName)
	if err != nil {
		return nil, err
	}
	return &Session{
		variant:      v,
		tree:         v.New(),
		filter:       newKeyFilter(cfg.Filter),
		renders:      NewRenderCache(cfg.Cache),
		prompt:       cfg.Shell.Prompt,
		historyLimit: cfg.Shell.HistoryLimit,
		copyFn:       clipboard.WriteAll,
	}, nil
}

func (s *Session) Variant() Variant { return s.variant }

func (s *Session) Tree() ordered.Tree[int] { return s.tree }

// Prompt is the prompt for the next line, which changes while a value is
// awaited.
func (s *Session) Prompt() string {
	if s.pending != "" {
		return s.pending + " value > "
	}
	return s.prompt
}

// History returns the recorded lines, oldest first.
func (s *Session) History() []string {
	return s.history
}

func (s *Session) record(line string) {
	if s.historyLimit == 0 {
		return
	}
	s.history = append(s.history, line)
	if over := len(s.history) - s.historyLimit; over > 0 {
		s.history = s.history[over:]
	}
}

// Execute runs one input line. Errors are meant for the user and leave the
// session usable.
func (s *Session) Execute(line string) (Result, error) {
	line = strings.TrimSpace(line)
	if s.pending != "" {
		return s.completePending(line)
	}
	if line == "" {
		return Result{Prompt: s.Prompt()}, nil
	}
	s.record(line)

	words, err := shellwords.Parse(line)
	if err != nil {
		return Result{Prompt: s.Prompt()}, fmt.Errorf("failed to parse %q: %w", line, err)
	}
	if len(words) == 0 {
		return Result{Prompt: s.Prompt()}, nil
	}
	op, args := strings.ToLower(words[0]), words[1:]

	switch op {
	case "insert", "delete", "contains":
		if op == "delete" && !supportsDelete(s.tree) {
			return s.fail(fmt.Errorf("%s: delete: %w", s.variant.Name, errUnsupported))
		}
		if len(args) == 0 {
			s.pending = op
			return Result{Prompt: s.Prompt()}, nil
		}
		keys, err := parseValues(args)
		if err != nil {
			return s.fail(err)
		}
		return s.done(s.apply(op, keys))
	case "height":
		return s.done(fmt.Sprintf("Height of tree: %d", s.tree.Height()))
	case "count":
		return s.done(fmt.Sprintf("Number of leaves: %d", s.tree.CountLeaves()))
	case "len", "length":
		return s.done(fmt.Sprintf("Length: %d", s.tree.Len()))
	case "min":
		v, ok := s.tree.Min()
		if !ok {
			return s.done(emptyTreeMessage)
		}
		return s.done(fmt.Sprintf("Minimum Value: %d", v))
	case "max":
		v, ok := s.tree.Max()
		if !ok {
			return s.done(emptyTreeMessage)
		}
		return s.done(fmt.Sprintf("Maximum Value: %d", v))
	case "print":
		return s.done(s.render("print", "Your tree: ", s.tree.InOrder))
	case "preorder":
		return s.done(s.render("preorder", "Pre-order: ", s.tree.PreOrder))
	case "empty":
		return s.done(fmt.Sprintf("Is the tree empty?: %t", s.tree.IsEmpty()))
	case "valid":
		if err := s.tree.Verify(); err != nil {
			return s.done(fmt.Sprintf("Is the tree valid?: false (%v)", err))
		}
		return s.done(fmt.Sprintf("Is the tree valid?: %t", s.tree.IsValid()))
	case "copy":
		if s.lastOutput == "" {
			return s.fail(errNothingToCopy)
		}
		if err := s.copyFn(s.lastOutput); err != nil {
			return s.fail(fmt.Errorf("failed to copy to clipboard: %w", err))
		}
		return Result{Output: "📋 Copied to clipboard.", Prompt: s.Prompt()}, nil
	case "help":
		return Result{Output: shellHelpMarkdown(s.variant), Prompt: s.Prompt(), Help: true}, nil
	case "exit", "quit":
		return Result{Quit: true}, nil
	default:
		return s.fail(errUnknownCommand)
	}
}

func (s *Session) completePending(line string) (Result, error) {
	key, err := strconv.Atoi(line)
	if err != nil {
		return Result{Prompt: s.Prompt()}, errNotInteger
	}
	op := s.pending
	s.pending = ""
	return s.done(s.apply(op, []int{key}))
}

func (s *Session) apply(op string, keys []int) string {
	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		switch op {
		case "insert":
			s.tree.Insert(k)
			s.filter.Add(k)
			s.generation++
		case "delete":
			s.tree.(ordered.MutableTree[int]).Delete(k)
			s.generation++
		case "contains":
			found := s.filter.MayContain(k) && s.tree.Contains(k)
			lines = append(lines, fmt.Sprintf("value %d found? %t", k, found))
			continue
		}
		lines = append(lines, fmt.Sprintf("%s value '%d' in tree ... done!", op, k))
	}
	return strings.Join(lines, "\n")
}

func (s *Session) render(view, label string, walk func() []int) string {
	if s.tree.IsEmpty() {
		return noNodeMessage
	}
	return GetOrFillRender(s.renders, renderKey(view, s.generation), func() string {
		return label + joinKeys(walk())
	})
}

func (s *Session) done(output string) (Result, error) {
	s.lastOutput = output
	return Result{Output: output, Prompt: s.Prompt()}, nil
}

func (s *Session) fail(err error) (Result, error) {
	return Result{Prompt: s.Prompt()}, err
}

// parseValues converts every argument or none.
func parseValues(args []string) ([]int, error) {
	keys := make([]int, 0, len(args))
	for _, a := range args {
		k, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", a, errNotInteger)
		}
		keys = append(keys, k)
	}
	return keys, nil
}

func joinKeys(keys []int) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = strconv.Itoa(k)
	}
	return strings.Join(parts, " ")
}

// runPlainShell drives a session from a line reader, echoing prompts to out.
// It returns at end of input or after exit.
func runPlainShell(s *Session, in io.Reader, out io.Writer) error {
	fmt.Fprintf(out, "\n::...%s branch...::\n\n", s.variant.Title)
	fmt.Fprint(out, s.Prompt())

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		res, err := s.Execute(scanner.Text())
		if err != nil {
			fmt.Fprintf(out, "%s%v%s\n", Error, err, Reset)
		}
		if res.Quit {
			return nil
		}
		switch {
		case res.Help:
			fmt.Fprint(out, string(markdown.Render(res.Output, 80, 3)))
		case res.Output != "":
			fmt.Fprintln(out, res.Output)
		}
		fmt.Fprint(out, res.Prompt)
	}
	fmt.Fprintln(out)
	return scanner.Err()
}
