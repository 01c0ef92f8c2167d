// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/urfave/cli/v3"

	awsx "github.com/tfctl/awsctl/internal/aws"
	"github.com/tfctl/awsctl/internal/paginate"
)

type s3API interface {
	ListObjectsV2(context.Context, *s3.ListObjectsV2Input, ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

var newS3Client = func(cfg awsv2.Config, pathStyle bool) s3API {
	return awsx.NewS3(cfg, awsx.WithS3PathStyle(pathStyle))
}

// s3MaxKeys is the largest page ListObjectsV2 returns.
const s3MaxKeys = 1000

// s3ListObjects adapts ListObjectsV2 to the executor. Common prefixes count
// against MaxKeys, so they count as items too.
func s3ListObjects(client s3API) paginate.Operation[s3.ListObjectsV2Input, s3.ListObjectsV2Output] {
	return paginate.Operation[s3.ListObjectsV2Input, s3.ListObjectsV2Output]{
		Name: "ListObjectsV2",
		Call: func(ctx context.Context, in *s3.ListObjectsV2Input) (*s3.ListObjectsV2Output, error) {
			return client.ListObjectsV2(ctx, in)
		},
		SetCursor:   func(in *s3.ListObjectsV2Input, c *string) { in.ContinuationToken = c },
		SetPageSize: func(in *s3.ListObjectsV2Input, n int32) { in.MaxKeys = awsv2.Int32(n) },
		NextCursor:  func(out *s3.ListObjectsV2Output) *string { return out.NextContinuationToken },
		Count: func(out *s3.ListObjectsV2Output) int {
			return len(out.Contents) + len(out.CommonPrefixes)
		},
	}
}

// s3GetObject lists the objects of a bucket.
func s3GetObject() *ListCmdlet[s3.ListObjectsV2Input, s3.ListObjectsV2Output] {
	return &ListCmdlet[s3.ListObjectsV2Input, s3.ListObjectsV2Output]{
		Cmdlet: &Cmdlet{
			Service:       "s3",
			Title:         "S3",
			Name:          "get-object",
			Alias:         "Get-S3Object",
			Usage:         "list the objects in a bucket",
			Operation:     "ListObjectsV2",
			DefaultSelect: "Contents",
			DefaultAttrs:  "Key,Size,LastModified,StorageClass",
			PassThruParam: "bucket",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "bucket",
					Aliases:  []string{"b"},
					Usage:    "bucket name",
					Required: true,
				},
				&cli.StringFlag{
					Name:  "prefix",
					Usage: "only keys that begin with this prefix",
				},
				&cli.StringFlag{
					Name:  "delimiter",
					Usage: "group keys that share a prefix up to this character into CommonPrefixes",
				},
				&cli.StringFlag{
					Name:  "start-after",
					Usage: "only keys after this key",
				},
				&cli.BoolFlag{
					Name:  "fetch-owner",
					Usage: "include the owner of each object",
				},
				&cli.BoolFlag{
					Name:  "path-style",
					Usage: "address the bucket in the URL path, as S3 compatible stores often need",
					Sources: cli.NewValueSourceChain(
						cli.EnvVar("AWSCTL_S3_PATH_STYLE"),
					),
				},
			},
		},
		ServerMaxPageSize: s3MaxKeys,
		Request: func(cmd *cli.Command) (*s3.ListObjectsV2Input, error) {
			return &s3.ListObjectsV2Input{
				Bucket:     awsv2.String(cmd.String("bucket")),
				Prefix:     optionalString(cmd, "prefix"),
				Delimiter:  optionalString(cmd, "delimiter"),
				StartAfter: optionalString(cmd, "start-after"),
				FetchOwner: optionalBool(cmd, "fetch-owner"),
			}, nil
		},
		NewOperation: func(cfg awsv2.Config, cmd *cli.Command) paginate.Operation[s3.ListObjectsV2Input, s3.ListObjectsV2Output] {
			return s3ListObjects(newS3Client(cfg, cmd.Bool("path-style")))
		},
	}
}
