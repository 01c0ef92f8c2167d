// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"strings"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/workspaces"
	wkstypes "github.com/aws/aws-sdk-go-v2/service/workspaces/types"
	"github.com/urfave/cli/v3"

	awsx "github.com/tfctl/awsctl/internal/aws"
	"github.com/tfctl/awsctl/internal/confirm"
)

type wksAPI interface {
	StopWorkspaces(context.Context, *workspaces.StopWorkspacesInput, ...func(*workspaces.Options)) (*workspaces.StopWorkspacesOutput, error)
}

var newWKSClient = func(cfg awsv2.Config) wksAPI {
	return awsx.NewWorkSpaces(cfg)
}

// wksMaxStopRequests is how many workspaces one StopWorkspaces call takes.
const wksMaxStopRequests = 25

// wksStopWorkspace stops AutoStop workspaces. The response lists only the
// requests that failed.
func wksStopWorkspace() *CallCmdlet[workspaces.StopWorkspacesInput, workspaces.StopWorkspacesOutput] {
	return &CallCmdlet[workspaces.StopWorkspacesInput, workspaces.StopWorkspacesOutput]{
		Cmdlet: &Cmdlet{
			Service:       "wks",
			Title:         "WorkSpaces",
			Name:          "stop-workspace",
			Alias:         "Stop-WKSWorkspace",
			Usage:         "stop one or more workspaces",
			Operation:     "StopWorkspaces",
			DefaultSelect: "FailedRequests",
			DefaultAttrs:  "WorkspaceId,ErrorCode,ErrorMessage",
			PassThruParam: "workspace-id",
			Flags: []cli.Flag{
				&cli.StringSliceFlag{
					Name:     "workspace-id",
					Usage:    "workspace to stop. Repeatable",
					Required: true,
				},
			},
			Mutating: true,
			Impact:   confirm.Medium,
			Target: func(cmd *cli.Command) string {
				return strings.Join(cmd.StringSlice("workspace-id"), ", ")
			},
			Validate: func(cmd *cli.Command) error {
				if n := len(cmd.StringSlice("workspace-id")); n > wksMaxStopRequests {
					return fmt.Errorf("at most %d --workspace-id values per call, got %d", wksMaxStopRequests, n)
				}
				return nil
			},
		},
		Request: func(cmd *cli.Command) (*workspaces.StopWorkspacesInput, error) {
			in := &workspaces.StopWorkspacesInput{}
			for _, id := range cmd.StringSlice("workspace-id") {
				in.StopWorkspaceRequests = append(in.StopWorkspaceRequests, wkstypes.StopRequest{
					WorkspaceId: awsv2.String(id),
				})
			}
			return in, nil
		},
		NewCall: func(cfg awsv2.Config, _ *cli.Command) func(context.Context, *workspaces.StopWorkspacesInput) (*workspaces.StopWorkspacesOutput, error) {
			client := newWKSClient(cfg)
			return func(ctx context.Context, in *workspaces.StopWorkspacesInput) (*workspaces.StopWorkspacesOutput, error) {
				return client.StopWorkspaces(ctx, in)
			}
		},
	}
}
