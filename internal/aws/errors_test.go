// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package aws

import (
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFriendlyAWS_Nil(t *testing.T) {
	assert.NoError(t, FriendlyAWS(nil, ErrorContext{}))
}

func TestFriendlyAWS(t *testing.T) {
	dns := &net.DNSError{Err: "no such host", Name: "cloudtrail.xx-nowhere-1.amazonaws.com"}
	api := &smithy.GenericAPIError{Code: "InvalidNextTokenException", Message: "bad token"}

	tests := []struct {
		name     string
		err      error
		ctx      ErrorContext
		contains []string
	}{
		{
			name:     "plain error",
			err:      errors.New("connection reset"),
			ctx:      ErrorContext{Service: "CloudTrail", Operation: "ListQueries", Region: "us-east-1"},
			contains: []string{"CloudTrail ListQueries (us-east-1): connection reset"},
		},
		{
			name:     "dns failure names region",
			err:      fmt.Errorf("send request: %w", dns),
			ctx:      ErrorContext{Service: "CloudTrail", Operation: "ListQueries", Region: "xx-nowhere-1"},
			contains: []string{"name resolution failure", "region xx-nowhere-1"},
		},
		{
			name:     "dns failure names endpoint",
			err:      dns,
			ctx:      ErrorContext{Service: "S3", Operation: "ListObjectsV2", Region: "us-east-1", Endpoint: "http://nowhere:4566"},
			contains: []string{"endpoint http://nowhere:4566"},
		},
		{
			name:     "api error keeps code",
			err:      api,
			ctx:      ErrorContext{Service: "RAM", Operation: "GetResourceShares", Region: "eu-west-1"},
			contains: []string{"RAM GetResourceShares (eu-west-1) [InvalidNextTokenException]"},
		},
		{
			name:     "missing context",
			err:      errors.New("boom"),
			contains: []string{"AWS request (<no region>): boom"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FriendlyAWS(tt.err, tt.ctx)
			require.Error(t, got)
			for _, s := range tt.contains {
				assert.Contains(t, got.Error(), s)
			}
			assert.ErrorIs(t, got, tt.err)
		})
	}
}

func TestFriendlyAWS_PreservesAPIError(t *testing.T) {
	api := &smithy.GenericAPIError{Code: "AccessDenied", Message: "nope"}
	got := FriendlyAWS(fmt.Errorf("op error: %w", api), ErrorContext{Service: "WorkSpaces"})

	var target smithy.APIError
	require.ErrorAs(t, got, &target)
	assert.Equal(t, "AccessDenied", target.ErrorCode())
}
