// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package confirm

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePrompter struct {
	answer bool
	err    error
	asked  []Request
}

func (f *fakePrompter) Confirm(_ context.Context, req Request) (bool, error) {
	f.asked = append(f.asked, req)
	return f.answer, f.err
}

func yes() bool { return true }
func no() bool  { return false }

func TestParseImpact(t *testing.T) {
	tests := []struct {
		in      string
		want    Impact
		wantErr bool
	}{
		{in: "", want: High},
		{in: "HIGH", want: High},
		{in: "medium", want: Medium},
		{in: "low", want: Low},
		{in: "none", want: None},
		{in: "sometimes", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseImpact(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, must(ParseImpact(got.String())))
		})
	}
}

func must(i Impact, err error) Impact {
	if err != nil {
		panic(err)
	}
	return i
}

func TestRequired(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want bool
	}{
		{name: "medium impact, high preference", opts: Options{Impact: Medium, Preference: High}, want: false},
		{name: "medium impact, medium preference", opts: Options{Impact: Medium, Preference: Medium}, want: true},
		{name: "medium impact, low preference", opts: Options{Impact: Medium, Preference: Low}, want: true},
		{name: "none preference", opts: Options{Impact: High, Preference: None}, want: false},
		{name: "force", opts: Options{Impact: Medium, Preference: Low, Force: true}, want: false},
		{name: "confirm", opts: Options{Impact: Medium, Preference: High, Confirm: true}, want: true},
		{name: "confirm beats force", opts: Options{Impact: Medium, Preference: High, Confirm: true, Force: true}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Required(tt.opts))
		})
	}
}

func TestShouldProceed(t *testing.T) {
	req := Request{Action: "Stop-WKSWorkspace (StopWorkspaces)", Target: "ws-1"}
	boom := errors.New("tty gone")

	tests := []struct {
		name      string
		opts      Options
		prompter  *fakePrompter
		wantErr   error
		wantAsked int
	}{
		{name: "not required", opts: Options{Impact: Medium, Preference: High, IsTerminal: no}, prompter: &fakePrompter{}},
		{name: "accepted", opts: Options{Impact: Medium, Confirm: true, IsTerminal: yes}, prompter: &fakePrompter{answer: true}, wantAsked: 1},
		{name: "declined", opts: Options{Impact: Medium, Confirm: true, IsTerminal: yes}, prompter: &fakePrompter{}, wantErr: ErrDeclined, wantAsked: 1},
		{name: "no terminal", opts: Options{Impact: Medium, Preference: Low, IsTerminal: no}, prompter: &fakePrompter{}, wantErr: ErrNotTerminal},
		{name: "prompt error", opts: Options{Impact: Medium, Confirm: true, IsTerminal: yes}, prompter: &fakePrompter{err: boom}, wantErr: boom, wantAsked: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.opts.Prompter = tt.prompter
			err := ShouldProceed(context.Background(), tt.opts, req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Len(t, tt.prompter.asked, tt.wantAsked)
		})
	}
}

func TestRequestString(t *testing.T) {
	req := Request{Action: "New-RSSWorkgroup (CreateWorkgroup)", Target: "wg1"}
	assert.Equal(t, `Performing the operation "New-RSSWorkgroup (CreateWorkgroup)" on target "wg1".`, req.String())
}

func TestModel(t *testing.T) {
	tests := []struct {
		name  string
		keys  []tea.KeyMsg
		want  bool
		typed string
	}{
		{
			name:  "yes",
			keys:  []tea.KeyMsg{{Type: tea.KeyRunes, Runes: []rune("y")}, {Type: tea.KeyEnter}},
			want:  true,
			typed: "y",
		},
		{
			name:  "default is no",
			keys:  []tea.KeyMsg{{Type: tea.KeyEnter}},
			want:  false,
			typed: "",
		},
		{
			name:  "escape",
			keys:  []tea.KeyMsg{{Type: tea.KeyRunes, Runes: []rune("y")}, {Type: tea.KeyEsc}},
			want:  false,
			typed: "y",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m tea.Model = newModel(Request{Action: "a", Target: "t"})
			var cmd tea.Cmd
			for _, k := range tt.keys {
				m, cmd = m.Update(k)
			}

			got := m.(model)
			assert.True(t, got.done)
			assert.Equal(t, tt.want, got.confirmed)
			assert.Equal(t, tt.typed, got.input.Value())
			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
			assert.Contains(t, got.View(), `on target "t"`)
		})
	}
}

func TestAnswer(t *testing.T) {
	assert.True(t, answer("Y"))
	assert.True(t, answer(" yes "))
	assert.False(t, answer("n"))
	assert.False(t, answer("yep"))
}
