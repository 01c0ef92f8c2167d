// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/redshiftserverless"
	rsstypes "github.com/aws/aws-sdk-go-v2/service/redshiftserverless/types"
	"github.com/urfave/cli/v3"

	awsx "github.com/tfctl/awsctl/internal/aws"
	"github.com/tfctl/awsctl/internal/confirm"
)

type rssAPI interface {
	CreateWorkgroup(context.Context, *redshiftserverless.CreateWorkgroupInput, ...func(*redshiftserverless.Options)) (*redshiftserverless.CreateWorkgroupOutput, error)
}

var newRSSClient = func(cfg awsv2.Config) rssAPI {
	return awsx.NewRedshiftServerless(cfg)
}

// rssNewWorkgroup creates a Redshift Serverless workgroup in a namespace.
func rssNewWorkgroup() *CallCmdlet[redshiftserverless.CreateWorkgroupInput, redshiftserverless.CreateWorkgroupOutput] {
	return &CallCmdlet[redshiftserverless.CreateWorkgroupInput, redshiftserverless.CreateWorkgroupOutput]{
		Cmdlet: &Cmdlet{
			Service:       "rss",
			Title:         "Redshift Serverless",
			Name:          "new-workgroup",
			Alias:         "New-RSSWorkgroup",
			Usage:         "create a workgroup",
			Operation:     "CreateWorkgroup",
			DefaultSelect: "Workgroup",
			DefaultAttrs:  "WorkgroupName,NamespaceName,Status,BaseCapacity",
			PassThruParam: "workgroup-name",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "workgroup-name",
					Usage:    "name of the new workgroup",
					Required: true,
				},
				&cli.StringFlag{
					Name:     "namespace-name",
					Usage:    "namespace to create the workgroup in",
					Required: true,
				},
				&cli.IntFlag{
					Name:  "base-capacity",
					Usage: "base data warehouse capacity in RPUs",
				},
				&cli.IntFlag{
					Name:  "max-capacity",
					Usage: "maximum data warehouse capacity in RPUs",
				},
				&cli.IntFlag{
					Name:  "port",
					Usage: "port the workgroup listens on",
				},
				&cli.BoolFlag{
					Name:  "enhanced-vpc-routing",
					Usage: "route traffic through your VPC",
				},
				&cli.BoolFlag{
					Name:  "publicly-accessible",
					Usage: "allow access from outside the VPC",
				},
				&cli.StringSliceFlag{
					Name:  "security-group-id",
					Usage: "security group for the workgroup. Repeatable",
				},
				&cli.StringSliceFlag{
					Name:  "subnet-id",
					Usage: "subnet for the workgroup. Repeatable",
				},
				&cli.StringSliceFlag{
					Name:  "config-parameter",
					Usage: "workgroup parameter as key=value, e.g. max_query_execution_time=3600. Repeatable",
				},
				&cli.StringSliceFlag{
					Name:  "tag",
					Usage: "tag as key=value. Repeatable",
				},
			},
			Mutating: true,
			Impact:   confirm.Medium,
			Target: func(cmd *cli.Command) string {
				return cmd.String("workgroup-name")
			},
			Validate: func(cmd *cli.Command) error {
				if _, err := parseKeyValues("tag", cmd.StringSlice("tag")); err != nil {
					return err
				}
				_, err := parseKeyValues("config-parameter", cmd.StringSlice("config-parameter"))
				return err
			},
		},
		Request: rssCreateWorkgroupRequest,
		NewCall: func(cfg awsv2.Config, _ *cli.Command) func(context.Context, *redshiftserverless.CreateWorkgroupInput) (*redshiftserverless.CreateWorkgroupOutput, error) {
			client := newRSSClient(cfg)
			return func(ctx context.Context, in *redshiftserverless.CreateWorkgroupInput) (*redshiftserverless.CreateWorkgroupOutput, error) {
				return client.CreateWorkgroup(ctx, in)
			}
		},
	}
}

func rssCreateWorkgroupRequest(cmd *cli.Command) (*redshiftserverless.CreateWorkgroupInput, error) {
	tags, err := parseKeyValues("tag", cmd.StringSlice("tag"))
	if err != nil {
		return nil, err
	}
	params, err := parseKeyValues("config-parameter", cmd.StringSlice("config-parameter"))
	if err != nil {
		return nil, err
	}

	in := &redshiftserverless.CreateWorkgroupInput{
		WorkgroupName:      awsv2.String(cmd.String("workgroup-name")),
		NamespaceName:      awsv2.String(cmd.String("namespace-name")),
		BaseCapacity:       optionalInt32(cmd, "base-capacity"),
		MaxCapacity:        optionalInt32(cmd, "max-capacity"),
		Port:               optionalInt32(cmd, "port"),
		EnhancedVpcRouting: optionalBool(cmd, "enhanced-vpc-routing"),
		PubliclyAccessible: optionalBool(cmd, "publicly-accessible"),
		SecurityGroupIds:   cmd.StringSlice("security-group-id"),
		SubnetIds:          cmd.StringSlice("subnet-id"),
	}
	for _, kv := range tags {
		in.Tags = append(in.Tags, rsstypes.Tag{Key: awsv2.String(kv.Key), Value: awsv2.String(kv.Value)})
	}
	for _, kv := range params {
		in.ConfigParameters = append(in.ConfigParameters, rsstypes.ConfigParameter{
			ParameterKey:   awsv2.String(kv.Key),
			ParameterValue: awsv2.String(kv.Value),
		})
	}
	return in, nil
}
