// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudtrail"
	cttypes "github.com/aws/aws-sdk-go-v2/service/cloudtrail/types"
	"github.com/urfave/cli/v3"

	awsx "github.com/tfctl/awsctl/internal/aws"
	"github.com/tfctl/awsctl/internal/paginate"
)

type ctAPI interface {
	ListQueries(context.Context, *cloudtrail.ListQueriesInput, ...func(*cloudtrail.Options)) (*cloudtrail.ListQueriesOutput, error)
}

var newCTClient = func(cfg awsv2.Config) ctAPI {
	return awsx.NewCloudTrail(cfg)
}

// ctListQueries adapts ListQueries to the executor.
func ctListQueries(client ctAPI) paginate.Operation[cloudtrail.ListQueriesInput, cloudtrail.ListQueriesOutput] {
	return paginate.Operation[cloudtrail.ListQueriesInput, cloudtrail.ListQueriesOutput]{
		Name: "ListQueries",
		Call: func(ctx context.Context, in *cloudtrail.ListQueriesInput) (*cloudtrail.ListQueriesOutput, error) {
			return client.ListQueries(ctx, in)
		},
		SetCursor:   func(in *cloudtrail.ListQueriesInput, c *string) { in.NextToken = c },
		SetPageSize: func(in *cloudtrail.ListQueriesInput, n int32) { in.MaxResults = awsv2.Int32(n) },
		NextCursor:  func(out *cloudtrail.ListQueriesOutput) *string { return out.NextToken },
		Count:       func(out *cloudtrail.ListQueriesOutput) int { return len(out.Queries) },
	}
}

// ctGetQuerySummary lists the CloudTrail Lake queries run against an event
// data store. Paging is always server driven.
func ctGetQuerySummary() *ListCmdlet[cloudtrail.ListQueriesInput, cloudtrail.ListQueriesOutput] {
	return &ListCmdlet[cloudtrail.ListQueriesInput, cloudtrail.ListQueriesOutput]{
		Cmdlet: &Cmdlet{
			Service:       "ct",
			Title:         "CloudTrail",
			Name:          "get-query-summary",
			Alias:         "Get-CTQuerySummary",
			Usage:         "list queries run against a CloudTrail Lake event data store",
			Operation:     "ListQueries",
			DefaultSelect: "Queries",
			DefaultAttrs:  "QueryId,QueryStatus,CreationTime",
			PassThruParam: "event-data-store",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "event-data-store",
					Usage:    "ARN or ID suffix of the event data store",
					Required: true,
				},
				&cli.StringFlag{
					Name:  "query-status",
					Usage: "only queries in this status: QUEUED, RUNNING, FINISHED, FAILED, CANCELLED or TIMED_OUT",
				},
				timestampFlag("start-time", "only queries created at or after this time"),
				timestampFlag("end-time", "only queries created at or before this time"),
			},
		},
		ServerMaxPageSize: 1000,
		ServerOnly:        true,
		Request: func(cmd *cli.Command) (*cloudtrail.ListQueriesInput, error) {
			return &cloudtrail.ListQueriesInput{
				EventDataStore: awsv2.String(cmd.String("event-data-store")),
				QueryStatus:    cttypes.QueryStatus(cmd.String("query-status")),
				StartTime:      optionalTime(cmd, "start-time"),
				EndTime:        optionalTime(cmd, "end-time"),
			}, nil
		},
		NewOperation: func(cfg awsv2.Config, _ *cli.Command) paginate.Operation[cloudtrail.ListQueriesInput, cloudtrail.ListQueriesOutput] {
			return ctListQueries(newCTClient(cfg))
		},
	}
}
