// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package driller extracts values from serialized AWS response items using the
// dot paths given to --attrs, --filter and --sort.
package driller
