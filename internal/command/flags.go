// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

// NewGlobalFlags returns the output flags shared by every cmdlet. params[0] is
// the service namespace and params[1] the config file. Flags hold parse state,
// so every command gets its own.
func NewGlobalFlags(params ...string) (flags []cli.Flag) {
	padding := &cli.IntFlag{
		Name:  "padding",
		Usage: "spaces between text columns",
		Value: 2,
	}
	output := &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output format",
		Value:   "text",
		Sources: cli.NewValueSourceChain(cli.EnvVar("AWSCTL_OUTPUT")),
		Validator: func(value string) error {
			return FlagValidators(value, OutputValidator)
		},
	}

	if len(params) == 2 {
		output = NameSpacedValueChainFlagFromConfigFile(params[0], params[1], output)
		padding.Sources = namespacedSources(params[0], params[1], padding.Name)
	}

	flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "attrs",
			Aliases: []string{"a"},
			Usage:   "comma-separated list of attributes to include in results",
		},
		&cli.BoolFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			Value:   false,
		},
		&cli.StringFlag{
			Name:    "filter",
			Aliases: []string{"f"},
			Usage:   "comma-separated list of filters to apply to results",
		},
		&cli.BoolFlag{
			Name:    "local",
			Aliases: []string{"l"},
			Usage:   "show local timestamps",
			Value:   false,
		},
		output,
		padding,
		&cli.BoolFlag{
			Name:        "schema",
			Usage:       "list the item attributes available to --attrs, --filter and --sort",
			HideDefault: true,
		},
		&cli.StringFlag{
			Name:    "sort",
			Aliases: []string{"s"},
			Usage:   "comma-separated list of attributes to sort the results by",
		},
		&cli.BoolFlag{
			Name:    "titles",
			Aliases: []string{"t"},
			Usage:   "show titles with text output",
			Value:   false,
		},
	}

	return
}

// NewSelectFlags returns --select and --pass-thru. def is the cmdlet's default
// selection.
func NewSelectFlags(def string) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "select",
			Usage: "what to emit: '*' for the whole response, a response field, or '^Param' for a parameter value",
			Value: def,
		},
		&cli.BoolFlag{
			Name:        "pass-thru",
			Usage:       "emit the primary parameter value (deprecated, use --select '^Param')",
			HideDefault: true,
		},
	}
}

// NewAWSFlags returns the client resolution flags. params[0] is the service
// namespace and params[1] the config file.
func NewAWSFlags(params ...string) []cli.Flag {
	region := &cli.StringFlag{
		Name:  "region",
		Usage: "AWS region. Overrides the shared config",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("AWSCTL_REGION"),
			cli.EnvVar("AWS_REGION"),
			cli.EnvVar("AWS_DEFAULT_REGION"),
		),
	}
	profile := &cli.StringFlag{
		Name:  "profile",
		Usage: "shared config profile to use",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("AWSCTL_PROFILE"),
			cli.EnvVar("AWS_PROFILE"),
		),
	}
	endpoint := &cli.StringFlag{
		Name:  "endpoint-url",
		Usage: "send requests to this endpoint instead of the service default",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("AWS_ENDPOINT_URL"),
		),
	}

	if len(params) == 2 {
		region = NameSpacedValueChainFlagFromConfigFile(params[0], params[1], region)
		profile = NameSpacedValueChainFlagFromConfigFile(params[0], params[1], profile)
		endpoint = NameSpacedValueChainFlagFromConfigFile(params[0], params[1], endpoint)
	}

	return []cli.Flag{region, profile, endpoint}
}

// NewListFlags returns the paging flags of list cmdlets. --paging is left out
// unless selectable.
func NewListFlags(selectable bool, params ...string) []cli.Flag {
	paging := &cli.StringFlag{
		Name:  "paging",
		Usage: "paging policy: server passes --max-result as the page size, capped treats it as an item budget",
		Value: "server",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("AWSCTL_PAGING"),
		),
		Validator: func(value string) error {
			return FlagValidators(value, PagingValidator)
		},
	}
	if len(params) == 2 {
		paging = NameSpacedValueChainFlagFromConfigFile(params[0], params[1], paging)
	}

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:  "next-token",
			Usage: "start from this continuation token and make a single call. @last resumes the previous run",
		},
		&cli.BoolFlag{
			Name:        "no-auto-iteration",
			Usage:       "make a single call instead of following continuation tokens",
			HideDefault: true,
		},
		&cli.IntFlag{
			Name:  "max-result",
			Usage: "page size (server paging) or total item budget (capped paging)",
			Validator: func(value int) error {
				return FlagValidators(value, NonNegativeValidator)
			},
		},
	}
	if selectable {
		flags = append(flags, paging)
	}
	return flags
}

// NewMutatingFlags returns the confirmation flags of cmdlets that change
// state.
func NewMutatingFlags(params ...string) []cli.Flag {
	preference := &cli.StringFlag{
		Name:  "confirm-preference",
		Usage: "lowest impact that prompts for confirmation: low, medium, high or none",
		Value: "high",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("AWSCTL_CONFIRM_PREFERENCE"),
		),
		Validator: func(value string) error {
			return FlagValidators(value, ConfirmPreferenceValidator)
		},
	}
	if len(params) == 2 {
		preference = NameSpacedValueChainFlagFromConfigFile(params[0], params[1], preference)
	}

	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "force",
			Usage:       "skip the confirmation prompt",
			HideDefault: true,
		},
		&cli.BoolFlag{
			Name:        "confirm",
			Usage:       "always prompt for confirmation",
			HideDefault: true,
		},
		preference,
	}
}

// NameSpacedValueChainFlagFromConfigFile adds namespaced and global config file
// sources to the given flag's Sources chain.
func NameSpacedValueChainFlagFromConfigFile(ns string, path string, flag *cli.StringFlag) *cli.StringFlag {
	flag.Sources.Chain = append(flag.Sources.Chain, namespacedSources(ns, path, flag.Name).Chain...)
	return flag
}

// namespacedSources returns the config file sources for name, the service
// namespaced key first.
func namespacedSources(ns string, path string, name string) cli.ValueSourceChain {
	return cli.NewValueSourceChain(
		yaml.YAML(ns+"."+name, altsrc.StringSourcer(path)),
		yaml.YAML(name, altsrc.StringSourcer(path)),
	)
}
