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
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

const (
	focusInput = iota
	focusTranscript
	focusHelp
)

// Model is the Bubble Tea state for the interactive shell.
type Model struct {
	ready   bool
	session *Session

	textInput  textinput.Model
	transcript viewport.Model
	helpView   viewport.Model

	lines      []string
	focusIndex int
	// historyPos indexes session history while browsing with up/down;
	// len(history) means a fresh line.
	historyPos int

	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	width  int
	height int
}

// Styles holds all the styling for the application
type Styles struct {
	BorderFocused  lipgloss.Style
	BorderBlurred  lipgloss.Style
	Title          lipgloss.Style
	InputPrompt    lipgloss.Style
	Echo           lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
}

// NewStyles creates the default styles
func NewStyles() *Styles {
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Padding(0, 1).
			Bold(true),
		InputPrompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true),
		Echo: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
	}
}

// InitialModel creates the initial model
func InitialModel(s *Session) Model {
	styles := NewStyles()

	ti := textinput.New()
	ti.Placeholder = "insert 5, print, help..."
	ti.Prompt = s.Prompt()
	ti.PromptStyle = styles.InputPrompt
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	transcript := viewport.New(0, 0)
	helpView := viewport.New(0, 0)

	glamourRenderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(60),
	)

	m := Model{
		session:         s,
		textInput:       ti,
		transcript:      transcript,
		helpView:        helpView,
		lines:           []string{fmt.Sprintf("::...%s branch...::", s.Variant().Title)},
		styles:          styles,
		glamourRenderer: glamourRenderer,
	}
	m.setHelp(shellHelpMarkdown(s.Variant()))
	m.transcript.SetContent(strings.Join(m.lines, "\n"))
	return m
}

// Init is called when the program starts
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all the I/O
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.focusIndex = (m.focusIndex + 1) % 3
			if m.focusIndex == focusInput {
				m.textInput.Focus()
			} else {
				m.textInput.Blur()
			}
			return m, nil
		}

		switch m.focusIndex {
		case focusTranscript:
			m.transcript, cmd = m.transcript.Update(msg)
			return m, cmd
		case focusHelp:
			m.helpView, cmd = m.helpView.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "enter":
			return m.submit()
		case "up":
			m.browseHistory(-1)
			return m, nil
		case "down":
			m.browseHistory(1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	line := m.textInput.Value()
	m.appendLine(m.styles.Echo.Render(m.textInput.Prompt + line))

	res, err := m.session.Execute(line)
	if res.Quit {
		return m, tea.Quit
	}
	switch {
	case err != nil:
		m.appendLine(m.styles.ErrorMessage.Render(err.Error()))
	case res.Help:
		m.setHelp(res.Output)
		m.appendLine(m.styles.SuccessMessage.Render("help updated →"))
	case res.Output != "":
		m.appendLine(res.Output)
	}

	m.textInput.Reset()
	m.textInput.Prompt = res.Prompt
	m.historyPos = len(m.session.History())
	return m, nil
}

func (m *Model) browseHistory(step int) {
	history := m.session.History()
	pos := m.historyPos + step
	if pos < 0 || pos > len(history) {
		return
	}
	m.historyPos = pos
	if pos == len(history) {
		m.textInput.SetValue("")
		return
	}
	m.textInput.SetValue(history[pos])
	m.textInput.CursorEnd()
}

func (m *Model) appendLine(s string) {
	m.lines = append(m.lines, s)
	m.transcript.SetContent(strings.Join(m.lines, "\n"))
	m.transcript.GotoBottom()
}

func (m *Model) setHelp(md string) {
	if m.glamourRenderer != nil {
		if rendered, err := m.glamourRenderer.Render(md); err == nil {
			m.helpView.SetContent(rendered)
			return
		}
	}
	// Fall back to plain text
	m.helpView.SetContent(md)
}

func (m *Model) updateLayout() {
	leftWidth := (m.width * 6 / 10) - 1
	rightWidth := m.width - leftWidth - 3
	bodyHeight := m.height - 3 - 6

	m.textInput.Width = leftWidth - 4 - lipgloss.Width(m.textInput.Prompt)
	m.transcript.Width = leftWidth - 2
	m.transcript.Height = bodyHeight - 2
	m.helpView.Width = rightWidth - 2
	m.helpView.Height = bodyHeight + 1
}

func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 40 || m.height < 12 {
		return "Terminal too small. Please resize your terminal."
	}

	inputHeight := 3
	bodyHeight := m.height - inputHeight - 6
	leftWidth := (m.width * 6 / 10) - 1
	rightWidth := m.width - leftWidth - 3

	box := func(focused bool, title string, width, height int, content string) string {
		style := m.styles.BorderBlurred
		if focused {
			style = m.styles.BorderFocused
			title += " (Active)"
		}
		return style.
			Width(width).
			Height(height).
			Render(lipgloss.JoinVertical(
				lipgloss.Left,
				m.styles.Title.Width(width-4).Render(title),
				content,
			))
	}

	transcriptBox := box(m.focusIndex == focusTranscript, " 🌳 "+m.session.Variant().Title+" ", leftWidth, bodyHeight, m.transcript.View())
	inputBox := box(m.focusIndex == focusInput, " ⌨  Operation ", leftWidth, inputHeight, m.textInput.View())
	helpBox := box(m.focusIndex == focusHelp, " 📖 Operations ", rightWidth, bodyHeight+inputHeight+2, m.helpView.View())

	main := lipgloss.JoinHorizontal(
		lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, transcriptBox, inputBox),
		helpBox,
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		main,
		m.renderStatus(),
	)
}

// renderStatus renders the footer: tree stats followed by key bindings.
func (m Model) renderStatus() string {
	t := m.session.Tree()
	stats := fmt.Sprintf("keys %d · height %d · leaves %d", t.Len(), t.Height(), t.CountLeaves())
	if t.IsValid() {
		stats = m.styles.SuccessMessage.Render("✔ ") + stats
	} else {
		stats = m.styles.ErrorMessage.Render("✘ ") + stats
	}

	keys := []string{"enter", "up/down", "tab", "esc"}
	descs := []string{"run", "history", "switch focus", "quit"}

	entries := []string{stats}
	for i, key := range keys {
		entries = append(entries,
			fmt.Sprintf("%s %s",
				m.styles.HelpKey.Render(key),
				m.styles.HelpDesc.Render(descs[i])))
	}

	return lipgloss.NewStyle().
		Padding(1, 0, 0, 2).
		Render(strings.Join(entries, " • "))
}

// runShellTUI starts the Bubble Tea application
func runShellTUI(s *Session) error {
	program := tea.NewProgram(
		InitialModel(s),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := program.Run()
	return err
}
