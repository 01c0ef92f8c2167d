// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidators(t *testing.T) {
	tests := []struct {
		name      string
		validator FlagValidatorType
		value     any
		wantErr   bool
	}{
		{name: "output text", validator: OutputValidator, value: "text"},
		{name: "output raw", validator: OutputValidator, value: "raw"},
		{name: "output xml", validator: OutputValidator, value: "xml", wantErr: true},
		{name: "output empty", validator: OutputValidator, value: "", wantErr: true},
		{name: "paging server", validator: PagingValidator, value: "server"},
		{name: "paging legacy", validator: PagingValidator, value: "Legacy"},
		{name: "paging bogus", validator: PagingValidator, value: "eager", wantErr: true},
		{name: "preference none", validator: ConfirmPreferenceValidator, value: "none"},
		{name: "preference medium", validator: ConfirmPreferenceValidator, value: "Medium"},
		{name: "preference bogus", validator: ConfirmPreferenceValidator, value: "sometimes", wantErr: true},
		{name: "non-negative zero", validator: NonNegativeValidator, value: 0},
		{name: "non-negative negative", validator: NonNegativeValidator, value: -3, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := FlagValidators(tt.value, tt.validator)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFlagValidators_StopsAtFirstError(t *testing.T) {
	calls := 0
	counting := func(any) error {
		calls++
		return nil
	}

	err := FlagValidators("xml", counting, OutputValidator, counting)
	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}
