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
	"fmt"
	"slices"
	"strings"

	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
	tb "github.com/nsf/termbox-go"
)

// DisableMouseInput in termbox-go. This should be called after ui.Init()
func DisableMouseInput() {
	tb.SetInputMode(tb.InputEsc)
}

type chartMetric int

const (
	metricInsert chartMetric = iota
	metricHeight
)

func (m chartMetric) title() string {
	if m == metricHeight {
		return " Tree height "
	}
	return " Insert time (ms) "
}

// chartData flattens results into one bar per run, coloured by variant.
func chartData(results []benchResult, metric chartMetric) ([]float64, []string, []ui.Color) {
	data := make([]float64, 0, len(results))
	labels := make([]string, 0, len(results))
	colors := make([]ui.Color, 0, len(results))
	series := map[string]int{}

	for _, r := range results {
		idx, ok := series[r.Variant]
		if !ok {
			idx = len(series)
			series[r.Variant] = idx
		}
		switch metric {
		case metricHeight:
			data = append(data, float64(r.Height))
		default:
			data = append(data, float64(r.Insert.Microseconds())/1000)
		}
		labels = append(labels, fmt.Sprintf("%s/%s", r.Variant, shortSize(r.Size)))
		colors = append(colors, barColor(idx))
	}
	return data, labels, colors
}

// shortSize prints 40000 as 40k.
func shortSize(n int) string {
	if n >= 1000 && n%1000 == 0 {
		return fmt.Sprintf("%dk", n/1000)
	}
	return fmt.Sprint(n)
}

func chartLegend(results []benchResult) string {
	var seen []string
	for _, r := range results {
		if !slices.Contains(seen, r.Variant) {
			seen = append(seen, r.Variant)
		}
	}
	entries := make([]string, len(seen))
	for i, name := range seen {
		entries[i] = fmt.Sprintf("[■ %s](fg:%s)", name, colorName(barColor(i)))
	}
	return strings.Join(entries, "  ") + `
[<tab>](fg:green) -> Switch between insert time and height
[q](fg:green), [<esc>](fg:green) or [<ctrl> + c](fg:green) -> Quit`
}

// colorName maps the palette to termui's markup names.
func colorName(c ui.Color) string {
	switch c {
	case ui.Color(2), ui.Color(10):
		return "green"
	case ui.Color(3), ui.Color(11):
		return "yellow"
	case ui.Color(4):
		return "blue"
	case ui.Color(5), ui.Color(13):
		return "magenta"
	default:
		return "cyan"
	}
}

func showBenchChart(results []benchResult) error {
	if err := ui.Init(); err != nil {
		return fmt.Errorf("failed to initialize termui: %w", err)
	}
	DisableMouseInput()
	defer ui.Close()

	scheme := GetChartScheme()
	metric := metricInsert

	bc := widgets.NewBarChart()
	bc.BarWidth = 9
	bc.BarGap = 1
	bc.BorderStyle = ui.NewStyle(scheme.Border)
	bc.TitleStyle = ui.NewStyle(scheme.Title)
	bc.LabelStyles = []ui.Style{ui.NewStyle(scheme.Label)}
	bc.NumStyles = []ui.Style{ui.NewStyle(scheme.Number)}
	bc.NumFormatter = func(v float64) string { return fmt.Sprintf("%.1f", v) }

	legend := widgets.NewParagraph()
	legend.Title = " Legend "
	legend.Text = chartLegend(results)
	legend.BorderStyle = ui.NewStyle(scheme.Border)

	paint := func() {
		bc.Title = metric.title()
		bc.Data, bc.Labels, bc.BarColors = chartData(results, metric)
	}
	paint()

	termWidth, termHeight := ui.TerminalDimensions()
	grid := ui.NewGrid()
	grid.SetRect(0, 0, termWidth, termHeight)
	grid.Set(
		ui.NewRow(0.8, bc),
		ui.NewRow(0.2, legend),
	)
	ui.Render(grid)

	uiEvents := ui.PollEvents()
	for {
		e := <-uiEvents
		switch e.ID {
		case "q", "<C-c>", "<Escape>":
			return nil
		case "<Tab>":
			if metric == metricInsert {
				metric = metricHeight
			} else {
				metric = metricInsert
			}
			paint()
		case "<Resize>":
			payload := e.Payload.(ui.Resize)
			grid.SetRect(0, 0, payload.Width, payload.Height)
			ui.Clear()
		}
		ui.Render(grid)
	}
}
