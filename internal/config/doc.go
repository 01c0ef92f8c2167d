// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config provides loading and typed accessors for awsctl's user
// configuration. The configuration is expected to be a YAML document located
// in the user's configuration directory, typically:
//   - Linux: $XDG_CONFIG_HOME/awsctl.yaml or $HOME/.config/awsctl.yaml
//   - macOS: $HOME/Library/Application Support/awsctl.yaml
//   - Windows: %AppData%/awsctl.yaml
//
// AWSCTL_CFG_FILE overrides the location. Keys may be namespaced by service
// (e.g. "ram.paging") and fall back to the global key ("paging").
package config
