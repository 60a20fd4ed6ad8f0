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
	"os"
	"strings"

	ui "github.com/gizak/termui/v3"
)

// ANSI sequences for fmt output. Empty until InitializeColors runs, so tests
// and piped output stay plain.
var Green, Info, Warning, Error, Reset string

// ChartScheme colours the benchmark chart.
type ChartScheme struct {
	Bars   []ui.Color
	Border ui.Color
	Title  ui.Color
	Label  ui.Color
	Number ui.Color
}

type TerminalMode int

const (
	TerminalModeUnknown TerminalMode = iota
	TerminalModeLight
	TerminalModeDark
)

var (
	currentChartScheme *ChartScheme
	detectedMode       TerminalMode
)

// detectTerminalMode guesses light or dark from the environment. Dark is the
// fallback.
func detectTerminalMode() TerminalMode {
	// COLORFGBG is "foreground;background"
	if colorScheme := os.Getenv("COLORFGBG"); colorScheme != "" {
		parts := strings.Split(colorScheme, ";")
		if len(parts) >= 2 {
			switch parts[len(parts)-1] {
			case "0", "8", "16":
				return TerminalModeDark
			case "7", "15", "255":
				return TerminalModeLight
			}
		}
	}

	for _, env := range []string{"TERM_THEME", "THEME"} {
		theme := strings.ToLower(os.Getenv(env))
		if strings.Contains(theme, "dark") {
			return TerminalModeDark
		}
		if strings.Contains(theme, "light") {
			return TerminalModeLight
		}
	}

	return TerminalModeDark
}

func createLightChartScheme() *ChartScheme {
	return &ChartScheme{
		Bars:   []ui.Color{ui.Color(4), ui.Color(2), ui.Color(5), ui.Color(3)},
		Border: ui.Color(8),
		Title:  ui.Color(4),
		Label:  ui.ColorBlack,
		Number: ui.ColorWhite,
	}
}

func createDarkChartScheme() *ChartScheme {
	return &ChartScheme{
		Bars:   []ui.Color{ui.Color(14), ui.Color(10), ui.Color(13), ui.Color(11)},
		Border: ui.Color(240),
		Title:  ui.Color(14),
		Label:  ui.ColorWhite,
		Number: ui.ColorBlack,
	}
}

// InitializeColors detects the terminal mode and sets the ANSI globals and
// the chart scheme to match.
func InitializeColors() {
	detectedMode = detectTerminalMode()
	currentChartScheme = chartSchemeFor(detectedMode)
	Green, Info, Warning, Error, Reset = GetANSIColors()
}

func chartSchemeFor(mode TerminalMode) *ChartScheme {
	if mode == TerminalModeLight {
		return createLightChartScheme()
	}
	return createDarkChartScheme()
}

// GetChartScheme leaves the ANSI globals alone when called before
// InitializeColors.
func GetChartScheme() *ChartScheme {
	if currentChartScheme == nil {
		currentChartScheme = chartSchemeFor(detectTerminalMode())
	}
	return currentChartScheme
}

// ANSI color codes for terminal output (adaptive to mode)
func GetANSIColors() (success, info, warning, error, reset string) {
	// For light mode terminals, use darker colors for better contrast
	if detectedMode == TerminalModeLight {
		success = "\033[32m"
		info = "\033[34m"
		warning = "\033[33m"
		error = "\033[31m"
	} else {
		success = "\033[92m"
		info = "\033[96m"
		warning = "\033[93m"
		error = "\033[91m"
	}

	reset = "\033[0m"
	return
}

// barColor picks a stable colour for the i-th series.
func barColor(i int) ui.Color {
	bars := GetChartScheme().Bars
	return bars[i%len(bars)]
}
