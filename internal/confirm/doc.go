// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package confirm decides whether a mutating cmdlet must ask before it runs,
// and asks. The decision weighs the operation's impact against the user's
// confirm-preference, with --force and --confirm as overrides.
package confirm
