// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/resiliencehub"
	reshtypes "github.com/aws/aws-sdk-go-v2/service/resiliencehub/types"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	awsx "github.com/tfctl/awsctl/internal/aws"
	"github.com/tfctl/awsctl/internal/confirm"
)

type reshAPI interface {
	UpdateResiliencyPolicy(context.Context, *resiliencehub.UpdateResiliencyPolicyInput, ...func(*resiliencehub.Options)) (*resiliencehub.UpdateResiliencyPolicyOutput, error)
}

var newReshClient = func(cfg awsv2.Config) reshAPI {
	return awsx.NewResilienceHub(cfg)
}

// reshUpdateResiliencyPolicy changes an existing resiliency policy. Members
// that are not given keep their current values.
func reshUpdateResiliencyPolicy() *CallCmdlet[resiliencehub.UpdateResiliencyPolicyInput, resiliencehub.UpdateResiliencyPolicyOutput] {
	return &CallCmdlet[resiliencehub.UpdateResiliencyPolicyInput, resiliencehub.UpdateResiliencyPolicyOutput]{
		Cmdlet: &Cmdlet{
			Service:       "resh",
			Title:         "Resilience Hub",
			Name:          "update-resiliency-policy",
			Alias:         "Update-RESHResiliencyPolicy",
			Usage:         "update a resiliency policy",
			Operation:     "UpdateResiliencyPolicy",
			DefaultSelect: "Policy",
			DefaultAttrs:  "PolicyName,Tier,DataLocationConstraint,PolicyArn",
			PassThruParam: "policy-arn",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "policy-arn",
					Usage:    "policy to update",
					Required: true,
				},
				&cli.StringFlag{
					Name:  "policy-name",
					Usage: "new policy name",
				},
				&cli.StringFlag{
					Name:  "policy-description",
					Usage: "new policy description",
				},
				&cli.StringFlag{
					Name:  "tier",
					Usage: "MissionCritical, Critical, Important, CoreServices, NonCritical or NotApplicable",
				},
				&cli.StringFlag{
					Name:  "data-location-constraint",
					Usage: "AnyLocation, SameContinent or SameCountry",
				},
				&cli.StringFlag{
					Name:  "policy",
					Usage: "RTO/RPO targets per disruption as YAML or JSON, e.g. '{Software: {RtoInSecs: 300, RpoInSecs: 60}}'",
				},
				&cli.StringFlag{
					Name:      "policy-file",
					Usage:     "read --policy from this file",
					TakesFile: true,
				},
			},
			Mutating: true,
			Impact:   confirm.Medium,
			Target: func(cmd *cli.Command) string {
				return cmd.String("policy-arn")
			},
			Validate: func(cmd *cli.Command) error {
				doc, err := reshPolicyDoc(cmd)
				if err != nil {
					return err
				}
				_, err = parseFailurePolicies(doc)
				return err
			},
		},
		Request: reshUpdateResiliencyPolicyRequest,
		NewCall: func(cfg awsv2.Config, _ *cli.Command) func(context.Context, *resiliencehub.UpdateResiliencyPolicyInput) (*resiliencehub.UpdateResiliencyPolicyOutput, error) {
			client := newReshClient(cfg)
			return func(ctx context.Context, in *resiliencehub.UpdateResiliencyPolicyInput) (*resiliencehub.UpdateResiliencyPolicyOutput, error) {
				return client.UpdateResiliencyPolicy(ctx, in)
			}
		},
	}
}

func reshUpdateResiliencyPolicyRequest(cmd *cli.Command) (*resiliencehub.UpdateResiliencyPolicyInput, error) {
	doc, err := reshPolicyDoc(cmd)
	if err != nil {
		return nil, err
	}
	policy, err := parseFailurePolicies(doc)
	if err != nil {
		return nil, err
	}

	return &resiliencehub.UpdateResiliencyPolicyInput{
		PolicyArn:              awsv2.String(cmd.String("policy-arn")),
		PolicyName:             optionalString(cmd, "policy-name"),
		PolicyDescription:      optionalString(cmd, "policy-description"),
		Tier:                   reshtypes.ResiliencyPolicyTier(cmd.String("tier")),
		DataLocationConstraint: reshtypes.DataLocationConstraint(cmd.String("data-location-constraint")),
		Policy:                 policy,
	}, nil
}

// reshPolicyDoc returns the --policy document, read from --policy-file when
// that is given.
func reshPolicyDoc(cmd *cli.Command) (string, error) {
	doc := cmd.String("policy")
	path := cmd.String("policy-file")
	if path == "" {
		return doc, nil
	}
	if doc != "" {
		return "", errors.New("--policy and --policy-file are mutually exclusive")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read --policy-file: %w", err)
	}
	return string(b), nil
}

// parseFailurePolicies reads a disruption type to RTO/RPO mapping from YAML
// or JSON. Disruption types and member names match case-insensitively. An
// empty document yields a nil map so the policy is left unchanged.
func parseFailurePolicies(doc string) (map[string]reshtypes.FailurePolicy, error) {
	if strings.TrimSpace(doc) == "" {
		return nil, nil
	}

	var raw map[string]interface{}
	if err := yaml.Unmarshal([]byte(doc), &raw); err != nil {
		return nil, fmt.Errorf("invalid --policy: %w", err)
	}

	// FailurePolicy has no struct tags, so encoding/json maps RtoInSecs and
	// rtoInSecs alike.
	b, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid --policy: %w", err)
	}
	var parsed map[string]reshtypes.FailurePolicy
	if err := json.Unmarshal(b, &parsed); err != nil {
		return nil, fmt.Errorf("invalid --policy: %w", err)
	}

	valid := reshtypes.DisruptionType("").Values()
	policy := make(map[string]reshtypes.FailurePolicy, len(parsed))
	for key, fp := range parsed {
		canonical := ""
		for _, v := range valid {
			if strings.EqualFold(key, string(v)) {
				canonical = string(v)
			}
		}
		if canonical == "" {
			return nil, fmt.Errorf("invalid --policy: unknown disruption type %q (valid: %v)", key, valid)
		}
		policy[canonical] = fp
	}
	return policy, nil
}
