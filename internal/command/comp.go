// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"os"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/comprehend"
	comptypes "github.com/aws/aws-sdk-go-v2/service/comprehend/types"
	"github.com/urfave/cli/v3"

	awsx "github.com/tfctl/awsctl/internal/aws"
)

type compAPI interface {
	DetectEntities(context.Context, *comprehend.DetectEntitiesInput, ...func(*comprehend.Options)) (*comprehend.DetectEntitiesOutput, error)
}

var newCompClient = func(cfg awsv2.Config) compAPI {
	return awsx.NewComprehend(cfg)
}

// compFindEntity detects named entities in a document.
func compFindEntity() *CallCmdlet[comprehend.DetectEntitiesInput, comprehend.DetectEntitiesOutput] {
	return &CallCmdlet[comprehend.DetectEntitiesInput, comprehend.DetectEntitiesOutput]{
		Cmdlet: &Cmdlet{
			Service:       "comp",
			Title:         "Comprehend",
			Name:          "find-entity",
			Alias:         "Find-COMPEntity",
			Usage:         "detect named entities in text",
			Operation:     "DetectEntities",
			DefaultSelect: "Entities",
			DefaultAttrs:  "Type,Text,Score,BeginOffset",
			PassThruParam: "text",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "text",
					Usage: "UTF-8 text to analyze",
				},
				&cli.StringFlag{
					Name:      "text-file",
					Usage:     "read the text to analyze from this file",
					TakesFile: true,
				},
				&cli.StringFlag{
					Name:  "language-code",
					Usage: "language of the text, e.g. en. Ignored by custom endpoints",
					Value: string(comptypes.LanguageCodeEn),
				},
				&cli.StringFlag{
					Name:  "endpoint-arn",
					Usage: "custom entity recognizer endpoint",
				},
			},
		},
		Request: compDetectEntitiesRequest,
		NewCall: func(cfg awsv2.Config, _ *cli.Command) func(context.Context, *comprehend.DetectEntitiesInput) (*comprehend.DetectEntitiesOutput, error) {
			client := newCompClient(cfg)
			return func(ctx context.Context, in *comprehend.DetectEntitiesInput) (*comprehend.DetectEntitiesOutput, error) {
				return client.DetectEntities(ctx, in)
			}
		},
	}
}

func compDetectEntitiesRequest(cmd *cli.Command) (*comprehend.DetectEntitiesInput, error) {
	text := cmd.String("text")
	if path := cmd.String("text-file"); path != "" {
		if text != "" {
			return nil, errors.New("--text and --text-file are mutually exclusive")
		}
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read --text-file: %w", err)
		}
		text = string(b)
	}
	if text == "" {
		return nil, errors.New("one of --text or --text-file is required")
	}

	in := &comprehend.DetectEntitiesInput{
		Text:        awsv2.String(text),
		EndpointArn: optionalString(cmd, "endpoint-arn"),
	}
	if in.EndpointArn == nil || cmd.IsSet("language-code") {
		in.LanguageCode = comptypes.LanguageCode(cmd.String("language-code"))
	}
	return in, nil
}
