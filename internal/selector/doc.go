// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package selector resolves the --select and --pass-thru flags into a
// projection applied to every service response before it is rendered.
package selector
