// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package aws loads AWS SDK v2 configuration, constructs the service clients
// the cmdlets call, and wraps SDK errors with the service, operation and
// region they came from.
package aws
