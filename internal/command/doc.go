// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package command defines the CLI command set for awsctl. Each AWS service is
// a parent command whose subcommands are cmdlets: one SDK operation bound to
// flags, an output selector and, for list operations, the paginating
// executor.
package command
