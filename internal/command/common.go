// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"
	"io"
	"reflect"
	"strings"
	"time"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/urfave/cli/v3"

	awsx "github.com/tfctl/awsctl/internal/aws"
	"github.com/tfctl/awsctl/internal/confirm"
	"github.com/tfctl/awsctl/internal/meta"
	"github.com/tfctl/awsctl/internal/output"
	"github.com/tfctl/awsctl/internal/selector"
)

// Replaced in tests.
var (
	loadAWSConfig = awsx.LoadAWSConfig
	prompter      = confirm.Prompter(confirm.TUIPrompter{})
	isTerminal    = confirm.StdinIsTerminal
)

// DumpSchemaIfRequested writes the attribute paths of typ to w when --schema
// is set, and returns true if it handled the request.
func DumpSchemaIfRequested(cmd *cli.Command, typ reflect.Type, w io.Writer) bool {
	if cmd.Bool("schema") {
		output.DumpSchema(typ, w)
		return true
	}
	return false
}

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// schemaType is the type of one emitted item for sel: the element type of a
// selected collection field, or the response itself.
func schemaType(sel selector.Selector, response any) reflect.Type {
	t := reflect.TypeOf(response)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if sel.Kind != selector.Field {
		return t
	}

	f, ok := t.FieldByName(sel.Name)
	if !ok {
		return t
	}
	ft := f.Type
	for ft.Kind() == reflect.Pointer || ft.Kind() == reflect.Slice || ft.Kind() == reflect.Map {
		ft = ft.Elem()
	}
	return ft
}

// writer is where a command's results go.
func writer(cmd *cli.Command) io.Writer {
	if root := cmd.Root(); root != nil && root.Writer != nil {
		return root.Writer
	}
	return nil
}

// optionalString returns nil for an unset flag so the SDK omits the member.
func optionalString(cmd *cli.Command, name string) *string {
	if !cmd.IsSet(name) {
		return nil
	}
	return awsv2.String(cmd.String(name))
}

func optionalInt32(cmd *cli.Command, name string) *int32 {
	if !cmd.IsSet(name) {
		return nil
	}
	return awsv2.Int32(int32(cmd.Int(name)))
}

func optionalBool(cmd *cli.Command, name string) *bool {
	if !cmd.IsSet(name) {
		return nil
	}
	return awsv2.Bool(cmd.Bool(name))
}

// KeyValue is one parsed key=value flag value.
type KeyValue struct {
	Key   string
	Value string
}

// parseKeyValues parses repeated key=value flag values, keeping their order.
// A value may itself contain '='.
func parseKeyValues(flag string, values []string) ([]KeyValue, error) {
	var kvs []KeyValue
	for _, v := range values {
		key, value, ok := strings.Cut(v, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --%s %q: expected key=value", flag, v)
		}
		kvs = append(kvs, KeyValue{Key: key, Value: value})
	}
	return kvs, nil
}

// splitValues splits a '|' separated list, dropping empty entries.
func splitValues(s string) []string {
	var out []string
	for _, v := range strings.Split(s, "|") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func optionalTime(cmd *cli.Command, name string) *time.Time {
	if !cmd.IsSet(name) {
		return nil
	}
	return awsv2.Time(cmd.Timestamp(name))
}

// timestampFlag accepts RFC3339 timestamps.
func timestampFlag(name, usage string) *cli.TimestampFlag {
	return &cli.TimestampFlag{
		Name:  name,
		Usage: usage + " (RFC3339)",
		Config: cli.TimestampConfig{
			Layouts: []string{time.RFC3339, "2006-01-02"},
		},
	}
}
