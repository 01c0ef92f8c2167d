// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/awsctl/internal/meta"
)

// cmdletCommand is satisfied by ListCmdlet and CallCmdlet.
type cmdletCommand interface {
	Build(meta.Meta) *cli.Command
	info() *Cmdlet
}

func (c *Cmdlet) info() *Cmdlet { return c }

// service groups the cmdlets of one AWS service under a parent command.
type service struct {
	Name    string
	Usage   string
	Cmdlets []cmdletCommand
}

// services returns freshly built cmdlets. Flags carry parse state, so every
// app gets its own.
func services() []service {
	return []service{
		{Name: "ads", Usage: "AWS Application Discovery Service", Cmdlets: []cmdletCommand{adsStartExportTask()}},
		{Name: "comp", Usage: "Amazon Comprehend", Cmdlets: []cmdletCommand{compFindEntity()}},
		{Name: "ct", Usage: "AWS CloudTrail", Cmdlets: []cmdletCommand{ctGetQuerySummary()}},
		{Name: "ram", Usage: "AWS Resource Access Manager", Cmdlets: []cmdletCommand{ramGetResourceShare()}},
		{Name: "resh", Usage: "AWS Resilience Hub", Cmdlets: []cmdletCommand{reshUpdateResiliencyPolicy()}},
		{Name: "rss", Usage: "Amazon Redshift Serverless", Cmdlets: []cmdletCommand{rssNewWorkgroup()}},
		{Name: "s3", Usage: "Amazon S3", Cmdlets: []cmdletCommand{s3GetObject()}},
		{Name: "wks", Usage: "Amazon WorkSpaces", Cmdlets: []cmdletCommand{wksStopWorkspace()}},
	}
}

// serviceCommandBuilder constructs the parent command of one service.
func serviceCommandBuilder(s service, m meta.Meta) *cli.Command {
	cmd := &cli.Command{
		Name:     s.Name,
		Usage:    s.Usage,
		Metadata: map[string]any{"meta": m},
	}
	for _, c := range s.Cmdlets {
		cmd.Commands = append(cmd.Commands, c.Build(m))
	}
	return cmd
}

// ResolveAlias maps a PowerShell style cmdlet name such as
// "Get-CTQuerySummary" to its command path. Matching ignores case.
func ResolveAlias(name string) ([]string, bool) {
	if !strings.Contains(name, "-") || strings.HasPrefix(name, "-") {
		return nil, false
	}
	for _, s := range services() {
		for _, c := range s.Cmdlets {
			if strings.EqualFold(c.info().Alias, name) {
				return []string{s.Name, c.info().Name}, true
			}
		}
	}
	return nil, false
}

// RepeatableFlags lists the names of flags that may be given more than once.
func RepeatableFlags() []string {
	var names []string
	for _, s := range services() {
		for _, c := range s.Cmdlets {
			for _, f := range c.info().Flags {
				if _, ok := f.(*cli.StringSliceFlag); ok {
					names = append(names, f.Names()...)
				}
			}
		}
	}
	return names
}
