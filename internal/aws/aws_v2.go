// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package aws

import (
	"context"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	ads "github.com/aws/aws-sdk-go-v2/service/applicationdiscoveryservice"
	"github.com/aws/aws-sdk-go-v2/service/cloudtrail"
	"github.com/aws/aws-sdk-go-v2/service/comprehend"
	"github.com/aws/aws-sdk-go-v2/service/ram"
	"github.com/aws/aws-sdk-go-v2/service/redshiftserverless"
	"github.com/aws/aws-sdk-go-v2/service/resiliencehub"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/workspaces"

	"github.com/tfctl/awsctl/internal/log"
)

// options holds optional overrides for AWS config loading.
type options struct {
	profile  string
	region   string
	endpoint string
	appID    string
	retryer  func() awsv2.Retryer
}

// Option customizes how AWS config is loaded.
// Default behavior (no options) inherits the shell environment and shared
// config chain (AWS_PROFILE, ~/.aws/config, ~/.aws/credentials, IMDS, etc.).
type Option func(*options)

// LoadAWSConfig loads AWS SDK v2 config. By default it inherits the shell's
// AWS setup (AWS_PROFILE, shared config, env, IMDS). Options can override
// profile, region, endpoint, app id and retryer without changing callers.
func LoadAWSConfig(ctx context.Context, opts ...Option) (awsv2.Config, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	log.Debugf("opts applied: profile=%s, region=%s, endpoint=%s", o.profile, o.region, o.endpoint)

	var loadOpts []func(*config.LoadOptions) error
	if o.profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(o.profile))
	}
	if o.region != "" {
		loadOpts = append(loadOpts, config.WithRegion(o.region))
	}
	if o.endpoint != "" {
		loadOpts = append(loadOpts, config.WithBaseEndpoint(o.endpoint))
	}
	if o.appID != "" {
		loadOpts = append(loadOpts, config.WithAppID(o.appID))
	}
	if o.retryer != nil {
		loadOpts = append(loadOpts, config.WithRetryer(o.retryer))
	}
	log.Debugf("loadOpts built: len=%d", len(loadOpts))

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		log.Debugf("config load err: err=%v", err)
		return awsv2.Config{}, err
	}
	log.Debugf("config loaded: region=%s", cfg.Region)
	return cfg, nil
}

// WithProfile sets the shared config profile. Defaults to AWS_PROFILE/env chain.
func WithProfile(profile string) Option {
	return func(o *options) { o.profile = profile }
}

// WithRegion sets the region override. Defaults to env/profile/metadata chain.
func WithRegion(region string) Option {
	return func(o *options) { o.region = region }
}

// WithEndpointURL points every service client at a fixed base endpoint, e.g. a
// local emulator or a VPC endpoint.
func WithEndpointURL(url string) Option {
	return func(o *options) { o.endpoint = url }
}

// WithAppID tags outgoing requests' user agent.
func WithAppID(id string) Option {
	return func(o *options) { o.appID = id }
}

// WithRetryer injects a custom retryer; if not set, SDK defaults are used.
func WithRetryer(newRetryer func() awsv2.Retryer) Option {
	return func(o *options) { o.retryer = newRetryer }
}

// NewApplicationDiscovery constructs an Application Discovery Service client.
func NewApplicationDiscovery(cfg awsv2.Config, optFns ...func(*ads.Options)) *ads.Client {
	log.Debugf("ads client created")
	return ads.NewFromConfig(cfg, optFns...)
}

// NewCloudTrail constructs a CloudTrail client.
func NewCloudTrail(cfg awsv2.Config, optFns ...func(*cloudtrail.Options)) *cloudtrail.Client {
	log.Debugf("cloudtrail client created")
	return cloudtrail.NewFromConfig(cfg, optFns...)
}

// NewComprehend constructs a Comprehend client.
func NewComprehend(cfg awsv2.Config, optFns ...func(*comprehend.Options)) *comprehend.Client {
	log.Debugf("comprehend client created")
	return comprehend.NewFromConfig(cfg, optFns...)
}

// NewRAM constructs a Resource Access Manager client.
func NewRAM(cfg awsv2.Config, optFns ...func(*ram.Options)) *ram.Client {
	log.Debugf("ram client created")
	return ram.NewFromConfig(cfg, optFns...)
}

// NewRedshiftServerless constructs a Redshift Serverless client.
func NewRedshiftServerless(cfg awsv2.Config, optFns ...func(*redshiftserverless.Options)) *redshiftserverless.Client {
	log.Debugf("redshiftserverless client created")
	return redshiftserverless.NewFromConfig(cfg, optFns...)
}

// NewResilienceHub constructs a Resilience Hub client.
func NewResilienceHub(cfg awsv2.Config, optFns ...func(*resiliencehub.Options)) *resiliencehub.Client {
	log.Debugf("resiliencehub client created")
	return resiliencehub.NewFromConfig(cfg, optFns...)
}

// NewS3 constructs a v2 S3 client from the provided config. Additional service
// options can be supplied via optFns.
func NewS3(cfg awsv2.Config, optFns ...func(*s3v2.Options)) *s3v2.Client {
	client := s3v2.NewFromConfig(cfg, optFns...)
	log.Debugf("s3 client created")
	return client
}

// WithS3PathStyle forces path-style bucket addressing, which most S3
// emulators behind --endpoint-url require.
func WithS3PathStyle(enabled bool) func(*s3v2.Options) {
	return func(o *s3v2.Options) {
		o.UsePathStyle = enabled
	}
}

// NewWorkSpaces constructs a WorkSpaces client.
func NewWorkSpaces(cfg awsv2.Config, optFns ...func(*workspaces.Options)) *workspaces.Client {
	log.Debugf("workspaces client created")
	return workspaces.NewFromConfig(cfg, optFns...)
}
