// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"slices"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/awsctl/internal/confirm"
	"github.com/tfctl/awsctl/internal/output"
	"github.com/tfctl/awsctl/internal/paginate"
	"github.com/tfctl/awsctl/internal/selector"
)

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

// GlobalFlagsValidator rejects flag combinations that no single flag
// validator can see.
func GlobalFlagsValidator(ctx context.Context, c *cli.Command) error {
	if c.Bool("pass-thru") && c.IsSet("select") {
		return selector.ErrPassThruWithSelect
	}
	return nil
}

func OutputValidator(value any) error {
	if s, ok := value.(string); ok && slices.Contains(output.Formats, s) {
		return nil
	}
	return fmt.Errorf("must be one of %v", output.Formats)
}

func PagingValidator(value any) error {
	s, _ := value.(string)
	_, err := paginate.ParsePolicy(s)
	return err
}

func ConfirmPreferenceValidator(value any) error {
	s, _ := value.(string)
	_, err := confirm.ParseImpact(s)
	return err
}

func NonNegativeValidator(value any) error {
	if n, ok := value.(int); ok && n < 0 {
		return fmt.Errorf("must not be negative: %d", n)
	}
	return nil
}
