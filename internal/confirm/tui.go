// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package confirm

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TUIPrompter asks on the terminal. In and Out default to the process's
// stdin and stdout.
type TUIPrompter struct {
	In  io.Reader
	Out io.Writer
}

// Confirm runs the prompt and reports the answer.
func (p TUIPrompter) Confirm(ctx context.Context, req Request) (bool, error) {
	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if p.In != nil {
		opts = append(opts, tea.WithInput(p.In))
	}
	if p.Out != nil {
		opts = append(opts, tea.WithOutput(p.Out))
	}

	m, err := tea.NewProgram(newModel(req), opts...).Run()
	if err != nil {
		return false, err
	}
	return m.(model).confirmed, nil
}

type model struct {
	req       Request
	input     textinput.Model
	confirmed bool
	done      bool
}

func newModel(req Request) model {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 8
	ti.Prompt = `[Y] Yes  [N] No (default is "N"): `
	return model{req: req, input: ti}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			m.confirmed = answer(m.input.Value())
			m.done = true
			return m, tea.Quit
		case "ctrl+c", "esc":
			m.confirmed = false
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Confirm"))
	b.WriteString("\nAre you sure you want to perform this action?\n")
	b.WriteString(m.req.String())
	b.WriteString("\n")
	if m.done {
		fmt.Fprintf(&b, "%s%s\n", m.input.Prompt, m.input.Value())
		return b.String()
	}
	b.WriteString(m.input.View())
	return b.String()
}

func answer(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
