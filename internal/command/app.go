// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"sort"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/awsctl/internal/config"
	"github.com/tfctl/awsctl/internal/log"
	"github.com/tfctl/awsctl/internal/meta"
)

func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	// The arg[1] immediately following the binary (arg[0]) is the service and
	// also the namespace key used when retrieving config values. arg[1] could
	// be -h/--help, so ignore it if it appears to be a flag.
	var ns string
	if len(args) > 1 && !strings.HasPrefix(args[1], "-") {
		ns = args[1]
	}

	config.Config.Namespace = ns
	cfg, err := config.Load()
	if err != nil {
		// Running without a config file is normal.
		log.Debugf("config not loaded: %v", err)
		cfg = config.Type{Namespace: ns}
	}

	meta := meta.Meta{
		Args:      args,
		Config:    cfg,
		Context:   ctx,
		Namespace: ns,
	}

	app := &cli.Command{
		Name:  "awsctl",
		Usage: "AWS cmdlets on the command line",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "awsctl version info",
				HideDefault: true,
			},
		},
	}

	for _, s := range services() {
		app.Commands = append(app.Commands, serviceCommandBuilder(s, meta))
	}
	app.Commands = append(app.Commands, completionCommandBuilder(meta))

	// Make sure flags are sorted for the --help text.
	for _, svc := range app.Commands {
		for _, cmd := range svc.Commands {
			sort.Slice(cmd.Flags, func(i, j int) bool {
				return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
			})
		}
	}

	return app, nil
}
