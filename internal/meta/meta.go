// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package meta

import (
	"context"

	"github.com/tfctl/awsctl/internal/config"
)

// Meta contains runtime metadata shared by commands. It carries CLI arguments,
// loaded configuration, context, and the service namespace the invocation
// resolved to (used for namespaced config lookups).
type Meta struct {
	Args      []string
	Config    config.Type
	Context   context.Context
	Namespace string
}
