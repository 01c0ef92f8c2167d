// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
region: us-east-1
profile: dev
paging: server
confirm-preference: high
cache:
  clean: 24
ram:
  paging: capped
  region: eu-west-1
  defaults:
    - --output json
    - --titles
colors:
  title: "#ff0000"
dry: true
ratio: 1.5
mixed:
  - a
  - 1
`

// withConfig writes content to a temp file, points AWSCTL_CFG_FILE at it and
// resets the global Config.
func withConfig(t *testing.T, content string, namespace string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "awsctl.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("AWSCTL_CFG_FILE", path)

	Config = Type{Namespace: namespace}
	_, err := Load()
	require.NoError(t, err)

	t.Cleanup(func() { Config = Type{} })
}

func TestLoad(t *testing.T) {
	withConfig(t, testYAML, "")

	assert.NotEmpty(t, Config.Source)
	assert.Equal(t, "us-east-1", Config.Data["region"])
	ram, ok := Config.Data["ram"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "capped", ram["paging"])
}

func TestLoad_PreservesNamespace(t *testing.T) {
	withConfig(t, testYAML, "ram")

	_, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "ram", Config.Namespace)
}

func TestLoad_NoConfigFile(t *testing.T) {
	t.Setenv("AWSCTL_CFG_FILE", "/nonexistent/path/awsctl.yaml")
	Config = Type{}

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestLoad_CfgFileIsDirectory(t *testing.T) {
	t.Setenv("AWSCTL_CFG_FILE", t.TempDir())
	Config = Type{}

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "points to a directory")
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("a: [b\n"), 0o600))
	t.Setenv("AWSCTL_CFG_FILE", path)
	Config = Type{}

	_, err := Load()
	assert.Error(t, err)
}

func TestGetString(t *testing.T) {
	tests := []struct {
		name      string
		namespace string
		key       string
		def       []string
		want      string
		wantErr   bool
	}{
		{name: "global key", key: "region", want: "us-east-1"},
		{name: "namespaced key wins", namespace: "ram", key: "region", want: "eu-west-1"},
		{name: "namespace falls back to global", namespace: "ram", key: "profile", want: "dev"},
		{name: "nested key", key: "colors.title", want: "#ff0000"},
		{name: "missing with default", key: "nope", def: []string{"x"}, want: "x"},
		{name: "missing without default", key: "nope", wantErr: true},
		{name: "not a string", key: "dry", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withConfig(t, testYAML, tt.namespace)

			got, err := GetString(tt.key, tt.def...)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetInt(t *testing.T) {
	withConfig(t, testYAML, "")

	v, err := GetInt("cache.clean")
	require.NoError(t, err)
	assert.Equal(t, 24, v)

	v, err = GetInt("ratio")
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	v, err = GetInt("missing", 7)
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	_, err = GetInt("region")
	assert.Error(t, err)
}

func TestGetBool(t *testing.T) {
	withConfig(t, testYAML, "")

	v, err := GetBool("dry")
	require.NoError(t, err)
	assert.True(t, v)

	v, err = GetBool("missing", true)
	require.NoError(t, err)
	assert.True(t, v)

	_, err = GetBool("region")
	assert.Error(t, err)
}

func TestGetStringSlice(t *testing.T) {
	withConfig(t, testYAML, "")

	v, err := GetStringSlice("ram.defaults")
	require.NoError(t, err)
	assert.Equal(t, []string{"--output json", "--titles"}, v)

	_, err = GetStringSlice("mixed")
	assert.Error(t, err)

	_, err = GetStringSlice("region")
	assert.Error(t, err)

	v, err = GetStringSlice("missing", []string{"a"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, v)
}

func TestGetStringSlice_NamespaceFallback(t *testing.T) {
	withConfig(t, testYAML, "ram")

	v, err := GetStringSlice("defaults")
	require.NoError(t, err)
	assert.Len(t, v, 2)
}
