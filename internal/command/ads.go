// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"strings"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	ads "github.com/aws/aws-sdk-go-v2/service/applicationdiscoveryservice"
	adstypes "github.com/aws/aws-sdk-go-v2/service/applicationdiscoveryservice/types"
	"github.com/urfave/cli/v3"

	awsx "github.com/tfctl/awsctl/internal/aws"
	"github.com/tfctl/awsctl/internal/confirm"
)

type adsAPI interface {
	StartExportTask(context.Context, *ads.StartExportTaskInput, ...func(*ads.Options)) (*ads.StartExportTaskOutput, error)
}

var newADSClient = func(cfg awsv2.Config) adsAPI {
	return awsx.NewApplicationDiscovery(cfg)
}

// adsStartExportTask starts an export of discovered data. With no filter the
// export covers every agent.
func adsStartExportTask() *CallCmdlet[ads.StartExportTaskInput, ads.StartExportTaskOutput] {
	return &CallCmdlet[ads.StartExportTaskInput, ads.StartExportTaskOutput]{
		Cmdlet: &Cmdlet{
			Service:       "ads",
			Title:         "Application Discovery Service",
			Name:          "start-export-task",
			Alias:         "Start-ADSExportTask",
			Usage:         "start an export of discovered data",
			Operation:     "StartExportTask",
			DefaultSelect: "ExportId",
			PassThruParam: "export-data-format",
			Flags: []cli.Flag{
				&cli.StringSliceFlag{
					Name:  "export-data-format",
					Usage: "file format of the export. Repeatable",
				},
				&cli.StringSliceFlag{
					Name:  "export-filter",
					Usage: "export only data matching name=value1|value2, e.g. agentIds=o-123. Repeatable",
				},
				timestampFlag("start-time", "export data collected at or after this time"),
				timestampFlag("end-time", "export data collected at or before this time"),
			},
			Mutating: true,
			Impact:   confirm.Medium,
			Target: func(cmd *cli.Command) string {
				if f := cmd.StringSlice("export-filter"); len(f) > 0 {
					return strings.Join(f, ", ")
				}
				return "all agents"
			},
			Validate: func(cmd *cli.Command) error {
				_, err := adsExportFilters(cmd)
				return err
			},
		},
		Request: adsStartExportTaskRequest,
		NewCall: func(cfg awsv2.Config, _ *cli.Command) func(context.Context, *ads.StartExportTaskInput) (*ads.StartExportTaskOutput, error) {
			client := newADSClient(cfg)
			return func(ctx context.Context, in *ads.StartExportTaskInput) (*ads.StartExportTaskOutput, error) {
				return client.StartExportTask(ctx, in)
			}
		},
	}
}

func adsStartExportTaskRequest(cmd *cli.Command) (*ads.StartExportTaskInput, error) {
	filters, err := adsExportFilters(cmd)
	if err != nil {
		return nil, err
	}

	in := &ads.StartExportTaskInput{
		StartTime: optionalTime(cmd, "start-time"),
		EndTime:   optionalTime(cmd, "end-time"),
		Filters:   filters,
	}
	for _, f := range cmd.StringSlice("export-data-format") {
		in.ExportDataFormat = append(in.ExportDataFormat, adstypes.ExportDataFormat(strings.ToUpper(f)))
	}
	return in, nil
}

// adsExportFilters parses --export-filter name=value1|value2 into EQUALS
// filters.
func adsExportFilters(cmd *cli.Command) ([]adstypes.ExportFilter, error) {
	kvs, err := parseKeyValues("export-filter", cmd.StringSlice("export-filter"))
	if err != nil {
		return nil, err
	}

	var filters []adstypes.ExportFilter
	for _, kv := range kvs {
		values := splitValues(kv.Value)
		if len(values) == 0 {
			return nil, fmt.Errorf("invalid --export-filter %q: no values", kv.Key)
		}
		filters = append(filters, adstypes.ExportFilter{
			Name:      awsv2.String(kv.Key),
			Values:    values,
			Condition: awsv2.String("EQUALS"),
		})
	}
	return filters, nil
}
