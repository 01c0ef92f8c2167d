// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/urfave/cli/v3"

	awsx "github.com/tfctl/awsctl/internal/aws"
	"github.com/tfctl/awsctl/internal/config"
	"github.com/tfctl/awsctl/internal/confirm"
	"github.com/tfctl/awsctl/internal/log"
	"github.com/tfctl/awsctl/internal/meta"
	"github.com/tfctl/awsctl/internal/output"
	"github.com/tfctl/awsctl/internal/paginate"
	"github.com/tfctl/awsctl/internal/selector"
	"github.com/tfctl/awsctl/internal/version"
)

// Cmdlet is the command line identity of one AWS operation.
type Cmdlet struct {
	// Service is the parent command and config namespace, e.g. "ct".
	Service string
	// Title names the service in errors, e.g. "CloudTrail".
	Title string
	// Name is the subcommand, e.g. "get-query-summary".
	Name string
	// Alias is the PowerShell style name, e.g. "Get-CTQuerySummary".
	Alias string
	Usage string
	// Operation is the SDK operation, e.g. "ListQueries".
	Operation string

	DefaultSelect string
	// DefaultAttrs apply only when the default selection is in effect.
	DefaultAttrs string
	// PassThruParam is the flag --pass-thru emits. Empty disables --pass-thru.
	PassThruParam string
	// Flags are the operation's parameters. Their names are what '^Param'
	// selectors may name.
	Flags []cli.Flag

	// Mutating cmdlets take --force and --confirm and prompt per Impact.
	Mutating bool
	Impact   confirm.Impact
	// Target describes what a mutating call acts on, for the prompt.
	Target func(*cli.Command) string
	// Validate checks the parameter flags before any prompt or call.
	Validate func(*cli.Command) error
}

// Path is the command path, e.g. "ct get-query-summary".
func (c *Cmdlet) Path() string {
	return c.Service + " " + c.Name
}

// validate runs c.Validate, if any.
func (c *Cmdlet) validate(cmd *cli.Command) error {
	if c.Validate == nil {
		return nil
	}
	return c.Validate(cmd)
}

// historyName keys the cmdlet's stored next token.
func (c *Cmdlet) historyName() string {
	return c.Service + "-" + c.Name
}

// Params lists the parameter flag names.
func (c *Cmdlet) Params() []string {
	var params []string
	for _, f := range c.Flags {
		params = append(params, f.Names()[0])
	}
	return params
}

// build returns the leaf cli.Command for c. extra holds flags that depend on
// the cmdlet kind.
func (c *Cmdlet) build(m meta.Meta, extra []cli.Flag, action cli.ActionFunc) *cli.Command {
	src := m.Config.Source

	var flags []cli.Flag
	flags = append(flags, c.Flags...)
	flags = append(flags, NewSelectFlags(c.DefaultSelect)...)
	flags = append(flags, extra...)
	if c.Mutating {
		flags = append(flags, NewMutatingFlags(c.Service, src)...)
	}
	flags = append(flags, NewAWSFlags(c.Service, src)...)
	flags = append(flags, NewGlobalFlags(c.Service, src)...)

	return &cli.Command{
		Name:        c.Name,
		Usage:       c.Usage,
		UsageText:   fmt.Sprintf("awsctl %s [options]", c.Path()),
		Description: fmt.Sprintf("Alias: %s. Calls %s %s.", c.Alias, c.Title, c.Operation),
		Metadata: map[string]any{
			"meta":   m,
			"cmdlet": c,
		},
		Flags: flags,
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			return ctx, GlobalFlagsValidator(ctx, cmd)
		},
		Action: action,
	}
}

// invocation is the per-run state shared by every cmdlet kind.
type invocation struct {
	cmdlet  *Cmdlet
	cmd     *cli.Command
	cfg     awsv2.Config
	sel     selector.Selector
	emitter *output.Emitter
}

// prepare resolves everything that can fail without touching the network:
// the selection, the output options and the AWS config. done is true when
// the run was fully handled, as with --schema.
func (c *Cmdlet) prepare(ctx context.Context, cmd *cli.Command, response any) (inv *invocation, done bool, err error) {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args)

	config.Config.Namespace = c.Service

	sel, err := selector.Resolve(selector.Options{
		Select:        cmd.String("select"),
		Explicit:      cmd.IsSet("select"),
		PassThru:      cmd.Bool("pass-thru"),
		Default:       c.DefaultSelect,
		PassThruParam: c.PassThruParam,
		Params:        c.Params(),
	})
	if err != nil {
		return nil, false, err
	}
	if sel, err = sel.Bind(response); err != nil {
		return nil, false, err
	}
	log.Debugf("selector: kind=%d name=%s", sel.Kind, sel.Name)

	w := writer(cmd)
	if DumpSchemaIfRequested(cmd, schemaType(sel, response), w) {
		return nil, true, nil
	}

	var defaults string
	if sel.Kind == selector.Field && sel.Name == c.DefaultSelect {
		defaults = c.DefaultAttrs
	}
	opts, err := output.OptionsFromCommand(cmd, defaults)
	if err != nil {
		return nil, false, err
	}
	emitter, err := output.NewEmitter(w, opts)
	if err != nil {
		return nil, false, err
	}

	cfg, err := loadAWSConfig(ctx,
		awsx.WithProfile(cmd.String("profile")),
		awsx.WithRegion(cmd.String("region")),
		awsx.WithEndpointURL(cmd.String("endpoint-url")),
		awsx.WithAppID(version.AppID()),
	)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load AWS config: %w", err)
	}
	log.Debugf("Invoking %s %s in region %s (endpoint %s)",
		c.Title, c.Operation, cfg.Region, cmd.String("endpoint-url"))

	return &invocation{cmdlet: c, cmd: cmd, cfg: cfg, sel: sel, emitter: emitter}, false, nil
}

// confirm returns nil when the cmdlet may proceed.
func (c *Cmdlet) confirm(ctx context.Context, cmd *cli.Command) error {
	pref, err := confirm.ParseImpact(cmd.String("confirm-preference"))
	if err != nil {
		return err
	}

	var target string
	if c.Target != nil {
		target = c.Target(cmd)
	}

	return confirm.ShouldProceed(ctx,
		confirm.Options{
			Impact:     c.Impact,
			Preference: pref,
			Force:      cmd.Bool("force"),
			Confirm:    cmd.Bool("confirm"),
			Prompter:   prompter,
			IsTerminal: isTerminal,
		},
		confirm.Request{
			Action: fmt.Sprintf("%s (%s)", c.Alias, c.Operation),
			Target: target,
		})
}

// emitPage projects one response and emits it. Param selectors emit nothing
// per page.
func (inv *invocation) emitPage(response any) error {
	if !inv.sel.PerPage() {
		return nil
	}
	v, err := inv.sel.Project(response)
	if err != nil {
		return err
	}
	return inv.emitter.Emit(v)
}

// emitParam emits the bound parameter value once for a Param selector.
func (inv *invocation) emitParam() error {
	if inv.sel.Kind != selector.Param {
		return nil
	}
	return inv.emitter.Emit(inv.cmd.Value(inv.sel.Name))
}

func (inv *invocation) errorContext() awsx.ErrorContext {
	return awsx.ErrorContext{
		Service:   inv.cmdlet.Title,
		Operation: inv.cmdlet.Operation,
		Region:    inv.cfg.Region,
		Endpoint:  inv.cmd.String("endpoint-url"),
	}
}

// fail adds AWS context to executor call failures. Other errors, such as a
// failed write to the output, pass through.
func (inv *invocation) fail(err error) error {
	var callErr *paginate.CallError
	if errors.As(err, &callErr) {
		return awsx.FriendlyAWS(callErr.Err, inv.errorContext())
	}
	return err
}
