// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"math"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/urfave/cli/v3"

	awsx "github.com/tfctl/awsctl/internal/aws"
	"github.com/tfctl/awsctl/internal/cacheutil"
	"github.com/tfctl/awsctl/internal/confirm"
	"github.com/tfctl/awsctl/internal/history"
	"github.com/tfctl/awsctl/internal/log"
	"github.com/tfctl/awsctl/internal/meta"
	"github.com/tfctl/awsctl/internal/paginate"
)

// ListCmdlet runs a paginated list operation through a paginate.Executor,
// emitting each page as it arrives. R is the SDK input type and S the output
// type.
type ListCmdlet[R, S any] struct {
	*Cmdlet
	// ServerMaxPageSize is the largest page size the service accepts.
	ServerMaxPageSize int
	// DefaultPageSize is requested under server paging when --max-result is
	// not given. Zero leaves the page size to the service.
	DefaultPageSize int
	// ServerOnly pins server paging and drops --paging. Set for operations
	// whose pages must reach the service unshrunk.
	ServerOnly bool
	// Request builds the base request from the parameter flags.
	Request func(*cli.Command) (*R, error)
	// NewOperation binds the operation to a client built from cfg.
	NewOperation func(cfg awsv2.Config, cmd *cli.Command) paginate.Operation[R, S]
}

// Build returns the cli.Command for l.
func (l *ListCmdlet[R, S]) Build(m meta.Meta) *cli.Command {
	return l.build(m, NewListFlags(!l.ServerOnly, l.Service, m.Config.Source), l.Run)
}

// Run executes the list cmdlet.
func (l *ListCmdlet[R, S]) Run(ctx context.Context, cmd *cli.Command) error {
	inv, done, err := l.prepare(ctx, cmd, new(S))
	if err != nil || done {
		return err
	}
	if err := l.validate(cmd); err != nil {
		return err
	}

	req, err := l.Request(cmd)
	if err != nil {
		return err
	}

	op := l.NewOperation(inv.cfg, cmd)
	hist := history.New(cacheutil.Default())
	histKey := history.Key(cmd.String("profile"), inv.cfg.Region)

	opts, err := l.pagingOptions(cmd, op, req, hist, histKey)
	if err != nil {
		return err
	}

	executor, err := paginate.New(op, opts)
	if err != nil {
		return err
	}

	sum, err := executor.Run(ctx, req, func(resp *S) error {
		return inv.emitPage(resp)
	})
	if err != nil {
		_ = inv.emitter.Close()
		return inv.fail(err)
	}
	log.Debugf("%s: calls=%d retrieved=%d state=%s", l.Operation, sum.Calls, sum.Retrieved, sum.State)

	if err := hist.Save(l.historyName(), histKey, sum.LastCursor); err != nil {
		log.WithError(err).Debugf("next token not recorded")
	}

	if err := inv.emitParam(); err != nil {
		return err
	}
	return inv.emitter.Close()
}

// pagingOptions maps the paging flags onto executor options. Under server
// paging --max-result is written into req as the page size, so it must fit the
// SDK's int32 field.
func (l *ListCmdlet[R, S]) pagingOptions(
	cmd *cli.Command,
	op paginate.Operation[R, S],
	req *R,
	hist *history.Store,
	histKey string,
) (paginate.Options, error) {
	policy := paginate.ServerDriven
	if !l.ServerOnly {
		var err error
		if policy, err = paginate.ParsePolicy(cmd.String("paging")); err != nil {
			return paginate.Options{}, err
		}
	}

	opts := paginate.Options{
		Policy:            policy,
		Manual:            cmd.Bool("no-auto-iteration"),
		ServerMaxPageSize: l.ServerMaxPageSize,
	}

	if cmd.IsSet("next-token") {
		token, err := hist.Resolve(l.historyName(), histKey, cmd.String("next-token"))
		if err != nil {
			return opts, err
		}
		opts.StartCursor = &token
	}

	switch {
	case cmd.IsSet("max-result") && policy == paginate.ClientCapped:
		budget := cmd.Int("max-result")
		opts.Budget = &budget
	case cmd.IsSet("max-result"):
		if op.SetPageSize == nil {
			return opts, fmt.Errorf("%s does not accept --max-result", l.Operation)
		}
		size := cmd.Int("max-result")
		if size > math.MaxInt32 {
			return opts, fmt.Errorf("invalid --max-result %d: page size must be at most %d", size, math.MaxInt32)
		}
		op.SetPageSize(req, int32(size))
	case policy == paginate.ServerDriven && l.DefaultPageSize > 0 && op.SetPageSize != nil:
		op.SetPageSize(req, int32(l.DefaultPageSize))
	}

	return opts, nil
}

// CallCmdlet runs an operation that is called exactly once. Parameters are
// validated before the prompt, and mutating cmdlets confirm before the request
// is built.
type CallCmdlet[R, S any] struct {
	*Cmdlet
	// Request builds the request from the parameter flags.
	Request func(*cli.Command) (*R, error)
	// NewCall binds the operation to a client built from cfg.
	NewCall func(cfg awsv2.Config, cmd *cli.Command) func(context.Context, *R) (*S, error)
}

// Build returns the cli.Command for c.
func (c *CallCmdlet[R, S]) Build(m meta.Meta) *cli.Command {
	return c.build(m, nil, c.Run)
}

// Run executes the cmdlet.
func (c *CallCmdlet[R, S]) Run(ctx context.Context, cmd *cli.Command) error {
	inv, done, err := c.prepare(ctx, cmd, new(S))
	if err != nil || done {
		return err
	}
	if err := c.validate(cmd); err != nil {
		return err
	}

	if c.Mutating {
		err := c.confirm(ctx, cmd)
		if errors.Is(err, confirm.ErrDeclined) {
			log.Debugf("%s declined", c.Alias)
			return nil
		}
		if err != nil {
			return err
		}
	}

	req, err := c.Request(cmd)
	if err != nil {
		return err
	}

	resp, err := c.NewCall(inv.cfg, cmd)(ctx, req)
	if err != nil {
		return awsx.FriendlyAWS(err, inv.errorContext())
	}

	if err := inv.emitPage(resp); err != nil {
		return err
	}
	if err := inv.emitParam(); err != nil {
		return err
	}
	return inv.emitter.Close()
}
