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
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/schollz/progressbar/v3"
)

// defaultBenchVariants leaves out the unbalanced tree, whose sequential
// inserts are quadratic.
var defaultBenchVariants = []string{"avl", "rbt", "llrb"}

var errInvalidSize = errors.New("tree size must not be negative")

type benchOptions struct {
	Sizes    []int
	Variants []string
	Random   bool
	Seed     int64
	Lookups  bool
	Progress bool
}

type benchResult struct {
	Variant string
	Size    int
	Order   string
	Insert  time.Duration
	Lookup  time.Duration
	Height  int
	Valid   bool
}

// benchKeys returns 0..n-1, shuffled deterministically when random is set.
func benchKeys(n int, random bool, seed int64) []int {
	if random {
		r := rand.New(rand.NewPCG(uint64(seed), uint64(n)))
		return r.Perm(n)
	}
	keys := make([]int, n)
	for i := range keys {
		keys[i] = i
	}
	return keys
}

func runBench(opts benchOptions, out io.Writer) ([]benchResult, error) {
	if len(opts.Variants) == 0 {
		opts.Variants = defaultBenchVariants
	}
	selected := make([]Variant, 0, len(opts.Variants))
	for _, name := range opts.Variants {
		v, err := lookupVariant(name)
		if err != nil {
			return nil, err
		}
		selected = append(selected, v)
	}

	for _, n := range opts.Sizes {
		if n < 0 {
			return nil, fmt.Errorf("%w: %d", errInvalidSize, n)
		}
	}

	order := "sequential"
	if opts.Random {
		order = "random"
	}

	var bar *progressbar.ProgressBar
	if opts.Progress {
		bar = progressbar.NewOptions(len(opts.Sizes)*len(selected),
			progressbar.OptionSetWriter(out),
			progressbar.OptionSetDescription("⏱  Benchmarking..."),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "█",
				SaucerHead:    "█",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintf(out, "\n✅ Benchmark completed!\n")
			}),
		)
	}

	results := make([]benchResult, 0, len(opts.Sizes)*len(selected))
	for _, n := range opts.Sizes {
		keys := benchKeys(n, opts.Random, opts.Seed)
		for _, v := range selected {
			if bar != nil {
				bar.Describe(fmt.Sprintf("⏱  %s with %d keys", v.Name, n))
			}
			results = append(results, benchOne(v, keys, opts.Lookups, order))
			if bar != nil {
				if err := bar.Add(1); err != nil {
					return nil, fmt.Errorf("progress bar: %w", err)
				}
			}
		}
	}
	return results, nil
}

func benchOne(v Variant, keys []int, lookups bool, order string) benchResult {
	tree := v.New()
	start := time.Now()
	for _, k := range keys {
		tree.Insert(k)
	}
	res := benchResult{
		Variant: v.Name,
		Size:    len(keys),
		Order:   order,
		Insert:  time.Since(start),
	}

	if lookups {
		start = time.Now()
		for k := 0; k < len(keys)/10; k++ {
			tree.Contains(k)
		}
		res.Lookup = time.Since(start)
	}

	res.Height = tree.Height()
	res.Valid = tree.IsValid()
	return res
}

func renderBenchTable(results []benchResult) string {
	headerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)
	badStyle := cellStyle.Foreground(lipgloss.Color("196")).Bold(true)

	rows := make([][]string, 0, len(results))
	for _, r := range results {
		lookup := "-"
		if r.Lookup > 0 {
			lookup = r.Lookup.Round(time.Microsecond).String()
		}
		rows = append(rows, []string{
			r.Variant,
			strconv.Itoa(r.Size),
			r.Order,
			r.Insert.Round(time.Microsecond).String(),
			perKey(r.Insert, r.Size),
			lookup,
			strconv.Itoa(r.Height),
			strconv.FormatBool(r.Valid),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("TREE", "KEYS", "ORDER", "INSERT", "PER KEY", "LOOKUP", "HEIGHT", "VALID").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 7 && row < len(results) && !results[row].Valid:
				return badStyle
			default:
				return cellStyle
			}
		})
	return t.Render()
}

func perKey(d time.Duration, n int) string {
	if n == 0 {
		return "-"
	}
	return fmt.Sprintf("%.0fns", float64(d.Nanoseconds())/float64(n))
}
