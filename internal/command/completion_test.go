// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package command

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCompletion(t *testing.T) {
	isolate(t)
	app, err := InitApp(context.Background(), []string{"awsctl"})
	require.NoError(t, err)

	tests := []struct {
		shell string
		want  []string
	}{
		{
			shell: "bash",
			want: []string{
				"complete -F _awsctl awsctl",
				`compgen -W "ads comp ct ram resh rss s3 wks completion --help --version"`,
				`ct) COMPREPLY=( $(compgen -W "get-query-summary" -- "$cur") ) ;;`,
				`"s3 get-object")`,
				"--bucket -b",
				"--event-data-store",
				"text json yaml raw",
			},
		},
		{
			shell: "zsh",
			want: []string{
				"#compdef awsctl",
				"'wks:Amazon WorkSpaces'",
				"'stop-workspace:",
				`"wks stop-workspace") compadd --`,
				"--workspace-id",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, writeCompletion(&buf, tt.shell, app))
			for _, w := range tt.want {
				assert.Contains(t, buf.String(), w)
			}
		})
	}

	var buf bytes.Buffer
	assert.Error(t, writeCompletion(&buf, "fish", app))
}

func TestCompletionCommand(t *testing.T) {
	isolate(t)

	out, err := run(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "_awsctl()")

	_, err = run(t, "completion", "tcsh")
	assert.Error(t, err)
}
