// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

//go:build integration
// +build integration

package aws

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tfctl/awsctl/internal/paginate"
)

// listObjects adapts ListObjectsV2 for the executor.
func listObjects(client *s3v2.Client) paginate.Operation[s3v2.ListObjectsV2Input, s3v2.ListObjectsV2Output] {
	return paginate.Operation[s3v2.ListObjectsV2Input, s3v2.ListObjectsV2Output]{
		Name: "ListObjectsV2",
		Call: func(ctx context.Context, in *s3v2.ListObjectsV2Input) (*s3v2.ListObjectsV2Output, error) {
			return client.ListObjectsV2(ctx, in)
		},
		SetCursor:   func(in *s3v2.ListObjectsV2Input, c *string) { in.ContinuationToken = c },
		SetPageSize: func(in *s3v2.ListObjectsV2Input, n int32) { in.MaxKeys = awsv2.Int32(n) },
		NextCursor:  func(out *s3v2.ListObjectsV2Output) *string { return out.NextContinuationToken },
		Count:       func(out *s3v2.ListObjectsV2Output) int { return len(out.Contents) },
	}
}

// withBucket creates a scratch bucket holding n objects and removes it when
// the test ends. Requires AWS credentials in the environment.
func withBucket(t *testing.T, n int) (*s3v2.Client, string) {
	t.Helper()
	ctx := context.Background()

	cfg, err := LoadAWSConfig(ctx, WithRegion("us-east-1"), WithAppID("awsctl-integration"))
	require.NoError(t, err)
	client := NewS3(cfg)

	bucket := fmt.Sprintf("awsctl-list-%d", time.Now().UnixNano())
	_, err = client.CreateBucket(ctx, &s3v2.CreateBucketInput{Bucket: awsv2.String(bucket)})
	require.NoError(t, err)

	keys := make([]string, 0, n)
	for i := 0; i < n; i++ {
		key := fmt.Sprintf("object-%d.txt", i)
		_, err := client.PutObject(ctx, &s3v2.PutObjectInput{
			Bucket: awsv2.String(bucket),
			Key:    awsv2.String(key),
			Body:   bytes.NewReader([]byte(key)),
		})
		require.NoError(t, err)
		keys = append(keys, key)
	}

	t.Cleanup(func() {
		for _, key := range keys {
			_, _ = client.DeleteObject(ctx, &s3v2.DeleteObjectInput{Bucket: awsv2.String(bucket), Key: awsv2.String(key)})
		}
		_, _ = client.DeleteBucket(ctx, &s3v2.DeleteBucketInput{Bucket: awsv2.String(bucket)})
	})

	return client, bucket
}

// TestIntegration_ListObjectsAllPages verifies that a server-driven run with a
// small page size walks every page.
func TestIntegration_ListObjectsAllPages(t *testing.T) {
	client, bucket := withBucket(t, 5)

	ex, err := paginate.New(listObjects(client), paginate.Options{})
	require.NoError(t, err)

	var pages int
	sum, err := ex.Run(context.Background(), &s3v2.ListObjectsV2Input{
		Bucket:  awsv2.String(bucket),
		MaxKeys: awsv2.Int32(2),
	}, func(*s3v2.ListObjectsV2Output) error {
		pages++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, pages)
	assert.Equal(t, 5, sum.Retrieved)
	assert.Nil(t, sum.LastCursor)
}

// TestIntegration_ListObjectsBudget verifies a capped run stops at the budget.
func TestIntegration_ListObjectsBudget(t *testing.T) {
	client, bucket := withBucket(t, 5)

	budget := 3
	ex, err := paginate.New(listObjects(client), paginate.Options{
		Policy:            paginate.ClientCapped,
		Budget:            &budget,
		ServerMaxPageSize: 2,
	})
	require.NoError(t, err)

	sum, err := ex.Run(context.Background(), &s3v2.ListObjectsV2Input{Bucket: awsv2.String(bucket)},
		func(*s3v2.ListObjectsV2Output) error { return nil })

	require.NoError(t, err)
	assert.Equal(t, 2, sum.Calls)
	assert.Equal(t, 3, sum.Retrieved)
}

// TestIntegration_UnknownRegion verifies the name resolution rewrite against
// a real resolver.
func TestIntegration_UnknownRegion(t *testing.T) {
	ctx := context.Background()
	cfg, err := LoadAWSConfig(ctx, WithRegion("xx-nowhere-9"))
	require.NoError(t, err)

	_, err = NewS3(cfg).ListBuckets(ctx, &s3v2.ListBucketsInput{})
	require.Error(t, err)

	err = FriendlyAWS(err, ErrorContext{Service: "S3", Operation: "ListBuckets", Region: cfg.Region})
	assert.Contains(t, err.Error(), "name resolution failure")
}
