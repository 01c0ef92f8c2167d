// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package aws

import (
	"context"
	"testing"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	"github.com/aws/aws-sdk-go-v2/service/cloudtrail"
	"github.com/aws/aws-sdk-go-v2/service/ram"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestOptions verifies that each option sets its field.
func TestOptions(t *testing.T) {
	var opts options
	WithProfile("dev")(&opts)
	WithRegion("ap-southeast-1")(&opts)
	WithEndpointURL("http://localhost:4566")(&opts)
	WithAppID("awsctl/dev")(&opts)
	WithRetryer(func() awsv2.Retryer { return retry.NewStandard() })(&opts)

	assert.Equal(t, "dev", opts.profile)
	assert.Equal(t, "ap-southeast-1", opts.region)
	assert.Equal(t, "http://localhost:4566", opts.endpoint)
	assert.Equal(t, "awsctl/dev", opts.appID)
	require.NotNil(t, opts.retryer)
	assert.NotNil(t, opts.retryer())
}

// TestLoadAWSConfig_WithRegion verifies that region option is applied
// during config loading.
func TestLoadAWSConfig_WithRegion(t *testing.T) {
	cfg, err := LoadAWSConfig(context.Background(), WithRegion("us-west-2"))

	assert.NoError(t, err)
	assert.Equal(t, "us-west-2", cfg.Region)
}

// TestLoadAWSConfig_OptionsOrder verifies that later options override
// earlier ones.
func TestLoadAWSConfig_OptionsOrder(t *testing.T) {
	cfg, err := LoadAWSConfig(
		context.Background(),
		WithRegion("us-east-1"),
		WithRegion("eu-west-1"),
	)

	assert.NoError(t, err)
	assert.Equal(t, "eu-west-1", cfg.Region)
}

// TestLoadAWSConfig_EndpointAndAppID verifies the endpoint and app id land in
// the loaded config.
func TestLoadAWSConfig_EndpointAndAppID(t *testing.T) {
	cfg, err := LoadAWSConfig(
		context.Background(),
		WithRegion("us-east-1"),
		WithEndpointURL("http://localhost:4566"),
		WithAppID("awsctl-test"),
	)

	require.NoError(t, err)
	require.NotNil(t, cfg.BaseEndpoint)
	assert.Equal(t, "http://localhost:4566", *cfg.BaseEndpoint)
	assert.Equal(t, "awsctl-test", cfg.AppID)
}

// TestNewClients verifies every service constructor builds a client from a
// loaded config.
func TestNewClients(t *testing.T) {
	cfg, err := LoadAWSConfig(context.Background(), WithRegion("us-east-1"))
	require.NoError(t, err)

	assert.NotNil(t, NewApplicationDiscovery(cfg))
	assert.IsType(t, &cloudtrail.Client{}, NewCloudTrail(cfg))
	assert.NotNil(t, NewComprehend(cfg))
	assert.IsType(t, &ram.Client{}, NewRAM(cfg))
	assert.NotNil(t, NewRedshiftServerless(cfg))
	assert.NotNil(t, NewResilienceHub(cfg))
	assert.IsType(t, &s3v2.Client{}, NewS3(cfg, WithS3PathStyle(true)))
	assert.NotNil(t, NewWorkSpaces(cfg))
}

// TestWithS3PathStyle verifies the option toggles path-style addressing.
func TestWithS3PathStyle(t *testing.T) {
	var o s3v2.Options
	WithS3PathStyle(true)(&o)
	assert.True(t, o.UsePathStyle)
}
