// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKeyValues(t *testing.T) {
	tests := []struct {
		name    string
		values  []string
		want    []KeyValue
		wantErr bool
	}{
		{name: "none"},
		{
			name:   "ordered",
			values: []string{"b=2", "a=1"},
			want:   []KeyValue{{Key: "b", Value: "2"}, {Key: "a", Value: "1"}},
		},
		{
			name:   "value with equals",
			values: []string{"expr=x=y"},
			want:   []KeyValue{{Key: "expr", Value: "x=y"}},
		},
		{
			name:   "empty value",
			values: []string{" env ="},
			want:   []KeyValue{{Key: "env", Value: ""}},
		},
		{name: "missing equals", values: []string{"env"}, wantErr: true},
		{name: "missing key", values: []string{"=prod"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseKeyValues("tag", tt.values)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid --tag")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplitValues(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitValues("a|b"))
	assert.Equal(t, []string{"a", "b"}, splitValues(" a || b |"))
	assert.Nil(t, splitValues(""))
}

func TestCmdletNames(t *testing.T) {
	c := &Cmdlet{Service: "ct", Name: "get-query-summary"}
	assert.Equal(t, "ct get-query-summary", c.Path())
	assert.Equal(t, "ct-get-query-summary", c.historyName())
}
