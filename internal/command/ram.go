// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ram"
	ramtypes "github.com/aws/aws-sdk-go-v2/service/ram/types"
	"github.com/urfave/cli/v3"

	awsx "github.com/tfctl/awsctl/internal/aws"
	"github.com/tfctl/awsctl/internal/paginate"
)

type ramAPI interface {
	GetResourceShares(context.Context, *ram.GetResourceSharesInput, ...func(*ram.Options)) (*ram.GetResourceSharesOutput, error)
}

var newRAMClient = func(cfg awsv2.Config) ramAPI {
	return awsx.NewRAM(cfg)
}

// ramMaxPageSize is the largest MaxResults GetResourceShares accepts.
const ramMaxPageSize = 500

func ramGetResourceSharesOp(client ramAPI) paginate.Operation[ram.GetResourceSharesInput, ram.GetResourceSharesOutput] {
	return paginate.Operation[ram.GetResourceSharesInput, ram.GetResourceSharesOutput]{
		Name: "GetResourceShares",
		Call: func(ctx context.Context, in *ram.GetResourceSharesInput) (*ram.GetResourceSharesOutput, error) {
			return client.GetResourceShares(ctx, in)
		},
		SetCursor:   func(in *ram.GetResourceSharesInput, c *string) { in.NextToken = c },
		SetPageSize: func(in *ram.GetResourceSharesInput, n int32) { in.MaxResults = awsv2.Int32(n) },
		NextCursor:  func(out *ram.GetResourceSharesOutput) *string { return out.NextToken },
		Count:       func(out *ram.GetResourceSharesOutput) int { return len(out.ResourceShares) },
	}
}

// ramGetResourceShare lists resource shares owned by or shared with the
// caller.
func ramGetResourceShare() *ListCmdlet[ram.GetResourceSharesInput, ram.GetResourceSharesOutput] {
	return &ListCmdlet[ram.GetResourceSharesInput, ram.GetResourceSharesOutput]{
		Cmdlet: &Cmdlet{
			Service:       "ram",
			Title:         "RAM",
			Name:          "get-resource-share",
			Alias:         "Get-RAMResourceShare",
			Usage:         "list resource shares",
			Operation:     "GetResourceShares",
			DefaultSelect: "ResourceShares",
			DefaultAttrs:  "Name,Status,OwningAccountId,CreationTime",
			PassThruParam: "resource-owner",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "resource-owner",
					Usage: "SELF for shares you own, OTHER-ACCOUNTS for shares shared with you",
					Value: string(ramtypes.ResourceOwnerSelf),
				},
				&cli.StringFlag{
					Name:  "name",
					Usage: "only shares with this name",
				},
				&cli.StringSliceFlag{
					Name:  "resource-share-arn",
					Usage: "only these shares",
				},
				&cli.StringFlag{
					Name:  "resource-share-status",
					Usage: "only shares in this status, e.g. ACTIVE",
				},
				&cli.StringFlag{
					Name:  "permission-arn",
					Usage: "only shares that use this managed permission",
				},
				&cli.StringSliceFlag{
					Name:  "tag-filter",
					Usage: "only shares tagged key=value1|value2. Repeatable",
				},
			},
		},
		ServerMaxPageSize: ramMaxPageSize,
		DefaultPageSize:   ramMaxPageSize,
		Request:           ramResourceSharesRequest,
		NewOperation: func(cfg awsv2.Config, _ *cli.Command) paginate.Operation[ram.GetResourceSharesInput, ram.GetResourceSharesOutput] {
			return ramGetResourceSharesOp(newRAMClient(cfg))
		},
	}
}

func ramResourceSharesRequest(cmd *cli.Command) (*ram.GetResourceSharesInput, error) {
	owner := ramtypes.ResourceOwner(cmd.String("resource-owner"))
	switch owner {
	case ramtypes.ResourceOwnerSelf, ramtypes.ResourceOwnerOtherAccounts:
	default:
		return nil, fmt.Errorf("invalid --resource-owner %q: must be one of %v", owner, owner.Values())
	}

	tags, err := parseKeyValues("tag-filter", cmd.StringSlice("tag-filter"))
	if err != nil {
		return nil, err
	}
	var tagFilters []ramtypes.TagFilter
	for _, kv := range tags {
		tagFilters = append(tagFilters, ramtypes.TagFilter{
			TagKey:    awsv2.String(kv.Key),
			TagValues: splitValues(kv.Value),
		})
	}

	return &ram.GetResourceSharesInput{
		ResourceOwner:       owner,
		Name:                optionalString(cmd, "name"),
		ResourceShareArns:   cmd.StringSlice("resource-share-arn"),
		ResourceShareStatus: ramtypes.ResourceShareStatus(cmd.String("resource-share-status")),
		PermissionArn:       optionalString(cmd, "permission-arn"),
		TagFilters:          tagFilters,
	}, nil
}
