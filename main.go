// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/tfctl/awsctl/internal/cacheutil"
	"github.com/tfctl/awsctl/internal/command"
	"github.com/tfctl/awsctl/internal/config"
	"github.com/tfctl/awsctl/internal/history"
	"github.com/tfctl/awsctl/internal/log"
	"github.com/tfctl/awsctl/internal/version"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain())
}

// handleVersion checks for --version/-v and returns whether it was handled.
func handleVersion(args []string) bool {
	for _, a := range args {
		if a == "--" {
			break
		}
		if a == "--version" || a == "-v" {
			fmt.Println(version.Version)
			return true
		}
	}
	return false
}

// handleNakedCommand appends --help if no command is provided.
func handleNakedCommand(args []string) []string {
	if len(args) <= 1 {
		return append(args, "--help")
	}
	return args
}

// rewriteAlias turns "awsctl Get-S3Object ..." into "awsctl s3 get-object ...".
func rewriteAlias(args []string) []string {
	if len(args) < 2 {
		return args
	}
	path, ok := command.ResolveAlias(args[1])
	if !ok {
		return args
	}
	log.Debugf("alias resolved: alias=%s path=%v", args[1], path)

	out := make([]string, 0, len(args)+1)
	out = append(out, args[0])
	out = append(out, path...)
	return append(out, args[2:]...)
}

// processCommandArgs handles command-specific argument processing.
func processCommandArgs(args []string) []string {
	if len(args) > 1 && args[1] == "completion" {
		// Short-circuit completion: pass args directly.
		return args
	}

	args = rewriteAlias(args)
	args = processSetOnly(args)
	log.Debugf("args after set processing: args=%v", args)

	return deduplicateFlags(args, command.RepeatableFlags()...)
}

// processSetOnly expands an @set argument into the string list at config key
// <service>.<set>. "@last" belongs to --next-token and is left alone.
func processSetOnly(args []string) []string {
	if len(args) < 3 {
		return args
	}

	for i := 2; i < len(args); i++ {
		a := args[i]
		if !strings.HasPrefix(a, "@") || a == history.LastToken || args[i-1] == "--next-token" {
			continue
		}

		entries, err := config.GetStringSlice(args[1] + "." + a[1:])
		if err != nil {
			log.Debugf("set not found: set=%s err=%v", a, err)
			entries = nil
		}
		return injectConfigSet(args, i, entries)
	}
	return args
}

// injectConfigSet replaces args[idx] with the whitespace separated fields of
// entries.
func injectConfigSet(args []string, idx int, entries []string) []string {
	var expanded []string
	for _, entry := range entries {
		expanded = append(expanded, strings.Fields(entry)...)
	}

	out := make([]string, 0, len(args)+len(expanded))
	out = append(out, args[:idx]...)
	out = append(out, expanded...)
	return append(out, args[idx+1:]...)
}

// deduplicateFlags collapses repeated flags so the last occurrence wins, which
// lets an explicit flag override one injected from a set. A flag is taken to
// carry a value when the next argument does not start with '-'. Flags named in
// repeatable are kept as given.
func deduplicateFlags(args []string, repeatable ...string) []string {
	if len(args) <= 2 {
		return args
	}

	type token struct {
		name  string
		parts []string
	}

	var tokens []token
	for i := 2; i < len(args); i++ {
		a := args[i]
		if a == "--" {
			tokens = append(tokens, token{parts: args[i:]})
			break
		}
		if !strings.HasPrefix(a, "-") || a == "-" {
			tokens = append(tokens, token{parts: []string{a}})
			continue
		}

		name := strings.TrimLeft(a, "-")
		if n, _, ok := strings.Cut(name, "="); ok {
			tokens = append(tokens, token{name: n, parts: []string{a}})
			continue
		}
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			tokens = append(tokens, token{name: name, parts: []string{a, args[i+1]}})
			i++
			continue
		}
		tokens = append(tokens, token{name: name, parts: []string{a}})
	}

	last := map[string]int{}
	for i, tok := range tokens {
		if tok.name != "" {
			last[tok.name] = i
		}
	}

	out := append([]string{}, args[:2]...)
	for i, tok := range tokens {
		if tok.name != "" && last[tok.name] != i && !slices.Contains(repeatable, tok.name) {
			continue
		}
		out = append(out, tok.parts...)
	}
	return out
}

// initAndRunApp initializes the app and runs it, returning the exit code.
func initAndRunApp(args []string) int {
	if hours, err := config.GetInt("cache.clean", 0); err == nil {
		if err := cacheutil.Default().Purge(hours); err != nil {
			log.Debugf("cache purge err: err=%v", err)
		}
	}

	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app init err: err=%v", err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app run err: err=%v", err)
		return 2
	}

	return 0
}

func realMain() int {
	log.InitLogger()

	args := os.Args
	log.Debugf("args captured: args=%v", args)

	if handleVersion(args) {
		return 0
	}

	args = handleNakedCommand(args)

	// If --help appears anywhere, skip command processing and let the CLI handle it.
	helpFound := false
	for _, a := range args {
		if a == "--help" || a == "-h" {
			helpFound = true
			break
		}
	}

	if !helpFound {
		args = processCommandArgs(args)
	} else {
		args = rewriteAlias(args)
	}

	return initAndRunApp(args)
}
