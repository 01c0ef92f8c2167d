// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package paginate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tfctl/awsctl/internal/log"
)

// Policy selects how page sizes and mid-sequence failures are handled. It is
// fixed when the Executor is built.
type Policy int

const (
	// ServerDriven passes the caller's page size through untouched and lets the
	// server bound each page. Every call failure is reported.
	ServerDriven Policy = iota
	// ClientCapped enforces an optional item budget on the client by shrinking
	// the requested page size, and treats a failure after a partial, budgeted
	// result as the end of the results.
	ClientCapped
)

// String returns the flag/config spelling of the policy.
func (p Policy) String() string {
	switch p {
	case ServerDriven:
		return "server"
	case ClientCapped:
		return "capped"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy maps a flag or config value onto a Policy. "modern" and "legacy"
// are accepted as synonyms.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "server", "modern":
		return ServerDriven, nil
	case "capped", "legacy":
		return ClientCapped, nil
	default:
		return ServerDriven, fmt.Errorf("invalid paging policy %q: must be one of [server capped]", s)
	}
}

// State is the lifecycle position of a run. A finished run is always in one of
// the two terminal states.
type State int

const (
	Idle State = iota
	AwaitingResponse
	Delivered
	TerminatedNormal
	TerminatedError
)

func (s State) String() string {
	return [...]string{"idle", "awaiting-response", "delivered", "terminated-normal", "terminated-error"}[s]
}

// Operation describes one remote list API in terms the Executor can drive. R
// is the request type and S the response type.
type Operation[R, S any] struct {
	// Name is used in errors and logs, e.g. "ListQueries".
	Name string
	// Call issues one request. It is the remote call collaborator.
	Call func(context.Context, *R) (*S, error)
	// SetCursor writes the continuation token into the request. A nil cursor
	// means "first page".
	SetCursor func(*R, *string)
	// SetPageSize writes the requested page size. It may be nil when the
	// operation has no such field; the ClientCapped policy requires it.
	SetPageSize func(*R, int32)
	// NextCursor reads the continuation token from the response.
	NextCursor func(*S) *string
	// Count returns the number of result items in the response.
	Count func(*S) int
}

// Options are the caller-facing pagination controls.
type Options struct {
	Policy Policy
	// StartCursor is non-nil when the caller supplied a starting token, even an
	// empty one. Supplying it puts the caller in control of paging.
	StartCursor *string
	// Manual restricts the run to exactly one call.
	Manual bool
	// Budget caps the total number of items retrieved. Only valid with
	// ClientCapped.
	Budget *int
	// ServerMaxPageSize is the largest page size the service accepts.
	ServerMaxPageSize int
}

// Summary reports what a run did.
type Summary struct {
	Calls     int
	Retrieved int
	// LastCursor is the continuation token returned by the last successful
	// call, nil when the server reported no more pages.
	LastCursor *string
	// Swallowed holds a call failure that ended a budgeted run after a partial
	// result. It is never returned as the run's error.
	Swallowed error
	State     State
}

// CallError is returned when a call to the remote operation fails and the
// failure is reported to the caller. It unwraps to the underlying SDK error.
type CallError struct {
	Operation string
	Call      int
	Err       error
}

func (e *CallError) Error() string {
	return fmt.Sprintf("%s call %d failed: %v", e.Operation, e.Call, e.Err)
}

func (e *CallError) Unwrap() error { return e.Err }

// Executor drives repeated calls to a list operation, feeding each page to a
// sink as soon as it arrives.
type Executor[R, S any] struct {
	op   Operation[R, S]
	opts Options
}

// New validates op and opts and returns an Executor.
func New[R, S any](op Operation[R, S], opts Options) (*Executor[R, S], error) {
	if op.Call == nil || op.SetCursor == nil || op.NextCursor == nil || op.Count == nil {
		return nil, errors.New("operation requires Call, SetCursor, NextCursor and Count")
	}

	if opts.Budget != nil {
		if opts.Policy != ClientCapped {
			return nil, errors.New("an item budget requires the capped paging policy")
		}
		if *opts.Budget < 0 {
			return nil, fmt.Errorf("item budget must not be negative: %d", *opts.Budget)
		}
		if op.SetPageSize == nil {
			return nil, fmt.Errorf("%s has no page size to cap", op.Name)
		}
		if opts.ServerMaxPageSize < 1 {
			return nil, errors.New("server maximum page size must be positive")
		}
	}

	return &Executor[R, S]{op: op, opts: opts}, nil
}

// UserControlled reports whether the caller took over paging, either with
// manual mode or an explicit start cursor. Such runs make exactly one call.
func (e *Executor[R, S]) UserControlled() bool {
	return e.opts.Manual || e.opts.StartCursor != nil
}

// Run executes the operation using req as the base request. req is mutated in
// place (cursor and, under ClientCapped with a budget, page size) and must not
// be shared with another run. sink is called once per successful page in call
// order; a sink error stops the run and is returned unchanged.
func (e *Executor[R, S]) Run(ctx context.Context, req *R, sink func(*S) error) (Summary, error) {
	sum := Summary{State: Idle}

	cursor := normalize(e.opts.StartCursor)
	var remaining int
	budgeted := e.opts.Budget != nil
	if budgeted {
		remaining = *e.opts.Budget
		if remaining < 1 {
			log.Debugf("%s: item budget is zero, skipping call", e.op.Name)
			sum.State = TerminatedNormal
			return sum, nil
		}
	}

	for {
		e.op.SetCursor(req, cursor)
		if e.opts.Policy == ClientCapped && budgeted {
			e.op.SetPageSize(req, int32(min(e.opts.ServerMaxPageSize, remaining)))
		}

		sum.Calls++
		sum.State = AwaitingResponse
		log.Tracef("%s: call=%d cursor=%t remaining=%d", e.op.Name, sum.Calls, cursor != nil, remaining)

		resp, err := e.op.Call(ctx, req)
		if err != nil {
			cerr := &CallError{Operation: e.op.Name, Call: sum.Calls, Err: err}
			if sum.Retrieved == 0 || !budgeted {
				sum.State = TerminatedError
				return sum, cerr
			}
			log.WithError(err).Debugf("%s: ending budgeted run after %d items", e.op.Name, sum.Retrieved)
			sum.Swallowed = cerr
			sum.State = TerminatedNormal
			return sum, nil
		}

		if err := sink(resp); err != nil {
			sum.State = TerminatedError
			return sum, err
		}
		sum.State = Delivered

		received := e.op.Count(resp)
		sum.Retrieved += received
		if budgeted {
			remaining -= received
		}
		cursor = normalize(e.op.NextCursor(resp))
		sum.LastCursor = cursor
		log.Debugf("%s: call=%d received=%d total=%d more=%t", e.op.Name, sum.Calls, received, sum.Retrieved, cursor != nil)

		if e.UserControlled() || cursor == nil || (budgeted && remaining < 1) {
			sum.State = TerminatedNormal
			return sum, nil
		}
	}
}

// HasValue reports whether a cursor carries a token. Absent and empty are the
// same.
func HasValue(cursor *string) bool {
	return cursor != nil && *cursor != ""
}

func normalize(cursor *string) *string {
	if !HasValue(cursor) {
		return nil
	}
	c := *cursor
	return &c
}
