// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package confirm

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/tfctl/awsctl/internal/log"
)

// Impact ranks how risky an operation is. A preference of the same or lower
// rank asks before the operation runs.
type Impact int

const (
	None Impact = iota
	Low
	Medium
	High
)

func (i Impact) String() string {
	switch i {
	case None:
		return "none"
	case Low:
		return "low"
	case Medium:
		return "medium"
	case High:
		return "high"
	default:
		return fmt.Sprintf("Impact(%d)", int(i))
	}
}

// ParseImpact parses a confirm-preference value. Empty means High.
func ParseImpact(s string) (Impact, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "high":
		return High, nil
	case "medium":
		return Medium, nil
	case "low":
		return Low, nil
	case "none":
		return None, nil
	default:
		return High, fmt.Errorf("invalid confirm preference %q: must be one of [low medium high none]", s)
	}
}

var (
	// ErrDeclined is returned when the user answers no.
	ErrDeclined = errors.New("operation declined")
	// ErrNotTerminal is returned when a prompt is required but stdin is not a
	// terminal.
	ErrNotTerminal = errors.New("confirmation required but stdin is not a terminal; pass --force to proceed")
)

// Request names what is about to happen, e.g. Action "Stop-WKSWorkspace
// (StopWorkspaces)" on Target "ws-1, ws-2".
type Request struct {
	Action string
	Target string
}

func (r Request) String() string {
	return fmt.Sprintf("Performing the operation %q on target %q.", r.Action, r.Target)
}

// Prompter asks the user a yes/no question.
type Prompter interface {
	Confirm(ctx context.Context, req Request) (bool, error)
}

// Options are the confirmation inputs of one invocation.
type Options struct {
	Impact     Impact
	Preference Impact
	Force      bool
	// Confirm always prompts, even with Force.
	Confirm  bool
	Prompter Prompter
	// IsTerminal reports whether a prompt can be shown. Defaults to a check
	// of stdin.
	IsTerminal func() bool
}

// Required reports whether o calls for a prompt.
func Required(o Options) bool {
	switch {
	case o.Confirm:
		return true
	case o.Force:
		return false
	case o.Preference == None:
		return false
	default:
		return o.Impact >= o.Preference
	}
}

// ShouldProceed returns nil when the operation may run. It prompts through
// o.Prompter when Required says so.
func ShouldProceed(ctx context.Context, o Options, req Request) error {
	if !Required(o) {
		log.Debugf("confirm skipped: impact=%s preference=%s force=%t", o.Impact, o.Preference, o.Force)
		return nil
	}

	isTerminal := o.IsTerminal
	if isTerminal == nil {
		isTerminal = StdinIsTerminal
	}
	if !isTerminal() {
		return ErrNotTerminal
	}

	prompter := o.Prompter
	if prompter == nil {
		prompter = TUIPrompter{}
	}
	ok, err := prompter.Confirm(ctx, req)
	if err != nil {
		return fmt.Errorf("confirmation failed: %w", err)
	}
	if !ok {
		return ErrDeclined
	}
	return nil
}

// StdinIsTerminal reports whether stdin is attached to a terminal.
func StdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
