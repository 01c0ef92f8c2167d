// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package aws

import (
	"errors"
	"fmt"
	"net"

	"github.com/aws/smithy-go"
)

// ErrorContext carries input context for improving API error messages.
type ErrorContext struct {
	Service   string // e.g., "CloudTrail"
	Operation string // e.g., "ListQueries"
	Region    string
	Endpoint  string // set when --endpoint-url was given
}

// FriendlyAWS wraps an SDK error with the service, operation and region it
// came from while preserving the original error for errors.Is/As. A name
// resolution failure is reworded so the user sees which region or endpoint
// could not be reached.
func FriendlyAWS(err error, ctx ErrorContext) error {
	if err == nil {
		return nil
	}

	prefix := fmt.Sprintf("%s %s (%s)",
		nonEmpty(ctx.Service, "AWS"), nonEmpty(ctx.Operation, "request"), nonEmpty(ctx.Region, "<no region>"))

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		target := "region " + nonEmpty(ctx.Region, "<no region>")
		if ctx.Endpoint != "" {
			target = "endpoint " + ctx.Endpoint
		}
		return fmt.Errorf("%s: name resolution failure attempting to reach service in %s "+
			"(as supplied to --region/--endpoint-url or from the configured default): %w", prefix, target, err)
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("%s [%s]: %w", prefix, apiErr.ErrorCode(), err)
	}

	return fmt.Errorf("%s: %w", prefix, err)
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
