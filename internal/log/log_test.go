// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package log

import (
	"bytes"
	"testing"

	"github.com/apex/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want log.Level
	}{
		{"trace", log.DebugLevel},
		{"debug", log.DebugLevel},
		{"DEBUG", log.DebugLevel},
		{"info", log.InfoLevel},
		{"warn", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"fatal", log.FatalLevel},
		{"bogus", log.ErrorLevel},
		{"", log.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestCustomHandler(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf)

	err := h.HandleLog(&log.Entry{
		Level:   log.WarnLevel,
		Message: "call failed",
		Fields:  log.Fields{"operation": "ListQueries"},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, " W call failed")
	assert.Contains(t, out, "operation=ListQueries")
}

func TestCustomHandler_Trace(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf)

	err := h.HandleLog(&log.Entry{
		Level:   log.DebugLevel,
		Message: "TRACE: cursor set",
		Fields:  log.Fields{},
	})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), " T cursor set")
	assert.NotContains(t, buf.String(), "TRACE:")
}
