// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tfctl/awsctl/internal/config"
)

func TestDeduplicateFlags(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		repeatable []string
		expected   []string
	}{
		{
			name:     "empty args",
			args:     []string{},
			expected: []string{},
		},
		{
			name:     "only program and service",
			args:     []string{"awsctl", "s3"},
			expected: []string{"awsctl", "s3"},
		},
		{
			name:     "no duplicates",
			args:     []string{"awsctl", "s3", "get-object", "--output", "text", "--titles"},
			expected: []string{"awsctl", "s3", "get-object", "--output", "text", "--titles"},
		},
		{
			name:     "duplicate flag with value - last wins",
			args:     []string{"awsctl", "s3", "get-object", "--output", "json", "--titles", "--output", "text"},
			expected: []string{"awsctl", "s3", "get-object", "--titles", "--output", "text"},
		},
		{
			name:     "duplicate boolean flag",
			args:     []string{"awsctl", "s3", "get-object", "--titles", "--local", "--titles"},
			expected: []string{"awsctl", "s3", "get-object", "--local", "--titles"},
		},
		{
			name:     "duplicate flag with equals syntax",
			args:     []string{"awsctl", "ct", "get-query-summary", "--output=json", "--titles", "--output=text"},
			expected: []string{"awsctl", "ct", "get-query-summary", "--titles", "--output=text"},
		},
		{
			name:     "mixed equals and space syntax - same flag",
			args:     []string{"awsctl", "ct", "get-query-summary", "--output=json", "--output", "text"},
			expected: []string{"awsctl", "ct", "get-query-summary", "--output", "text"},
		},
		{
			name:     "multiple different flags with duplicates",
			args:     []string{"awsctl", "ram", "get-resource-share", "--region", "us-east-1", "--paging", "server", "--region", "eu-west-1", "--paging", "capped"},
			expected: []string{"awsctl", "ram", "get-resource-share", "--region", "eu-west-1", "--paging", "capped"},
		},
		{
			name:     "short flags deduplicated",
			args:     []string{"awsctl", "s3", "get-object", "-o", "json", "-o", "text"},
			expected: []string{"awsctl", "s3", "get-object", "-o", "text"},
		},
		{
			name:     "different flags not affected",
			args:     []string{"awsctl", "s3", "get-object", "--force", "--confirm"},
			expected: []string{"awsctl", "s3", "get-object", "--force", "--confirm"},
		},
		{
			name:     "triple duplicate",
			args:     []string{"awsctl", "s3", "get-object", "--prefix", "a", "--prefix", "b", "--prefix", "c"},
			expected: []string{"awsctl", "s3", "get-object", "--prefix", "c"},
		},
		{
			name:       "repeatable flags kept",
			args:       []string{"awsctl", "wks", "stop-workspace", "--workspace-id", "ws-1", "--force", "--workspace-id", "ws-2"},
			repeatable: []string{"workspace-id"},
			expected:   []string{"awsctl", "wks", "stop-workspace", "--workspace-id", "ws-1", "--force", "--workspace-id", "ws-2"},
		},
		{
			name:     "args after terminator untouched",
			args:     []string{"awsctl", "s3", "get-object", "-o", "json", "--", "-o", "text", "-o", "yaml"},
			expected: []string{"awsctl", "s3", "get-object", "-o", "json", "--", "-o", "text", "-o", "yaml"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, deduplicateFlags(tt.args, tt.repeatable...))
		})
	}
}

func TestDeduplicateFlagsPreservesOrder(t *testing.T) {
	args := []string{"awsctl", "s3", "get-object", "--alpha", "--beta", "--gamma"}
	assert.Equal(t, args, deduplicateFlags(args))
}

func TestInjectConfigSet(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		idx      int
		entries  []string
		expected []string
	}{
		{
			name:     "empty set removes the marker",
			args:     []string{"awsctl", "s3", "get-object", "@prod", "--titles"},
			idx:      3,
			expected: []string{"awsctl", "s3", "get-object", "--titles"},
		},
		{
			name:     "single entry injected",
			args:     []string{"awsctl", "s3", "get-object", "@prod", "--titles"},
			idx:      3,
			entries:  []string{"--local"},
			expected: []string{"awsctl", "s3", "get-object", "--local", "--titles"},
		},
		{
			name:     "multi-word entry split",
			args:     []string{"awsctl", "s3", "get-object", "@prod"},
			idx:      3,
			entries:  []string{"--bucket logs", "--region us-east-2"},
			expected: []string{"awsctl", "s3", "get-object", "--bucket", "logs", "--region", "us-east-2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, injectConfigSet(tt.args, tt.idx, tt.entries))
		})
	}
}

func TestProcessSetOnly(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "awsctl.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("s3:\n  prod:\n    - --bucket prod-logs\n    - --region us-east-2\n"), 0o600))
	t.Setenv("AWSCTL_CFG_FILE", cfg)
	config.Config = config.Type{}
	t.Cleanup(func() { config.Config = config.Type{} })

	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{
			name:     "set expanded in place",
			args:     []string{"awsctl", "s3", "get-object", "@prod", "-o", "json"},
			expected: []string{"awsctl", "s3", "get-object", "--bucket", "prod-logs", "--region", "us-east-2", "-o", "json"},
		},
		{
			name:     "last token is not a set",
			args:     []string{"awsctl", "s3", "get-object", "--next-token", "@last"},
			expected: []string{"awsctl", "s3", "get-object", "--next-token", "@last"},
		},
		{
			name:     "unknown set dropped",
			args:     []string{"awsctl", "s3", "get-object", "@dev"},
			expected: []string{"awsctl", "s3", "get-object"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, processSetOnly(tt.args))
		})
	}
}

func TestRewriteAlias(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{
			name:     "alias",
			args:     []string{"awsctl", "Get-S3Object", "-b", "logs"},
			expected: []string{"awsctl", "s3", "get-object", "-b", "logs"},
		},
		{
			name:     "case-insensitive",
			args:     []string{"awsctl", "stop-wksworkspace"},
			expected: []string{"awsctl", "wks", "stop-workspace"},
		},
		{
			name:     "service form untouched",
			args:     []string{"awsctl", "s3", "get-object"},
			expected: []string{"awsctl", "s3", "get-object"},
		},
		{
			name:     "flag untouched",
			args:     []string{"awsctl", "--help"},
			expected: []string{"awsctl", "--help"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, rewriteAlias(tt.args))
		})
	}
}

func TestProcessCommandArgs(t *testing.T) {
	t.Setenv("AWSCTL_CFG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
	config.Config = config.Type{}

	got := processCommandArgs([]string{"awsctl", "Stop-WKSWorkspace", "--workspace-id", "a", "-o", "json", "--workspace-id", "b", "-o", "text"})
	assert.Equal(t, []string{"awsctl", "wks", "stop-workspace", "--workspace-id", "a", "--workspace-id", "b", "-o", "text"}, got)

	completion := []string{"awsctl", "completion", "bash"}
	assert.Equal(t, completion, processCommandArgs(completion))
}
