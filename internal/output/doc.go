// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package output renders cmdlet results page by page as text tables, JSON
// lines, YAML documents or raw JSON, applying --attrs, --filter and --sort.
package output
