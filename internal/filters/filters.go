// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filters

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/tfctl/awsctl/internal/attrs"
	"github.com/tfctl/awsctl/internal/driller"
	"github.com/tfctl/awsctl/internal/log"
)

// filterRegex splits a filter expression into key, operator (with optional
// negation) and target. Operators are one of = ^ ~ < > @ or /.
// Examples: "Key=a.txt", "Size>1024", "Status!=FAILED", "Key/\.log$".
var filterRegex = regexp.MustCompile(`^([^!?=^~<>@/]*)(!?[=^~<>@/])(.*)$`)

// Filter is a single parsed --filter expression.
type Filter struct {
	Key     string `yaml:"key" json:"Key"`
	Negate  bool   `yaml:"negate" json:"Negate"`
	Operand string `yaml:"operand" json:"Operand"`
	Value   string `yaml:"value" json:"Value"`

	re *regexp.Regexp
}

// Delimiter returns the separator between filter expressions. It is "," unless
// AWSCTL_FILTER_DELIM overrides it for values that contain commas.
func Delimiter() string {
	if d, ok := os.LookupEnv("AWSCTL_FILTER_DELIM"); ok && d != "" {
		return d
	}
	return ","
}

// Parse parses a filter specification. Unlike rendering, parsing happens
// before any AWS call, so a malformed expression is an error, not a warning.
func Parse(spec string) ([]Filter, error) {
	var filters []Filter //nolint:prealloc
	if strings.TrimSpace(spec) == "" {
		return filters, nil
	}

	for _, expr := range strings.Split(spec, Delimiter()) {
		expr = strings.TrimSpace(expr)
		if expr == "" {
			continue
		}

		parts := filterRegex.FindStringSubmatch(expr)
		if parts == nil {
			return nil, fmt.Errorf("invalid filter %q: missing operator (one of = ^ ~ < > @ /)", expr)
		}

		f := Filter{
			Key:     strings.TrimSpace(parts[1]),
			Operand: parts[2],
			Value:   parts[3],
		}
		if f.Key == "" {
			return nil, fmt.Errorf("invalid filter %q: empty key", expr)
		}
		if strings.HasPrefix(f.Operand, "!") {
			f.Negate = true
			f.Operand = strings.TrimPrefix(f.Operand, "!")
		}
		if f.Operand == "/" {
			re, err := regexp.Compile(f.Value)
			if err != nil {
				return nil, fmt.Errorf("invalid filter %q: %w", expr, err)
			}
			f.re = re
		}

		filters = append(filters, f)
	}

	return filters, nil
}

// Apply keeps the items matching every filter and shapes each survivor into a
// row keyed by attr OutputKey. Raw attr values are returned; transforms are
// applied by the renderer.
func Apply(items []gjson.Result, list attrs.AttrList, filters []Filter) []map[string]interface{} {
	var rows []map[string]interface{} //nolint:prealloc

	for _, item := range items {
		if !Match(item, list, filters) {
			continue
		}

		row := make(map[string]interface{}, len(list))
		for _, attr := range list {
			if attr.Key == "*" {
				continue
			}
			row[attr.OutputKey] = driller.Drill(item, attr.Key).Value()
		}
		rows = append(rows, row)
	}

	return rows
}

// Match reports whether item passes every filter. A filter key is resolved
// against attr output keys first and is otherwise used as a path into the item.
func Match(item gjson.Result, list attrs.AttrList, filters []Filter) bool {
	for _, f := range filters {
		path := f.Key
		for _, attr := range list {
			if attr.OutputKey == f.Key {
				path = attr.Key
				break
			}
		}

		value := driller.Drill(item, path).Value()
		if value == nil {
			log.Tracef("filter key absent: key=%s", f.Key)
			return f.Negate
		}

		if !f.check(value) {
			return false
		}
	}
	return true
}

func (f Filter) check(value interface{}) bool {
	switch v := value.(type) {
	case string:
		return f.checkString(v)
	case bool:
		return f.checkString(strconv.FormatBool(v))
	case float64:
		if _, err := strconv.ParseFloat(strings.TrimSpace(f.Value), 64); err == nil {
			return f.checkNumeric(v)
		}
		return f.checkString(strconv.FormatFloat(v, 'f', -1, 64))
	default:
		if f.Operand == "@" {
			return f.checkContains(v)
		}
		log.Debugf("unsupported filter value type: key=%s type=%T", f.Key, v)
		return false
	}
}

// checkContains evaluates '@' against an array or object value.
func (f Filter) checkContains(value interface{}) bool {
	found := false
	switch val := value.(type) {
	case []interface{}:
		for _, item := range val {
			if fmt.Sprint(item) == f.Value {
				found = true
				break
			}
		}
	case map[string]interface{}:
		_, found = val[f.Value]
	}
	return found != f.Negate
}

// checkNumeric compares using numeric semantics. Supported operands: =, >, <.
func (f Filter) checkNumeric(value float64) bool {
	tgt, _ := strconv.ParseFloat(strings.TrimSpace(f.Value), 64)

	switch f.Operand {
	case "=":
		return (value == tgt) != f.Negate
	case ">":
		return (value > tgt) != f.Negate
	case "<":
		return (value < tgt) != f.Negate
	default:
		return f.checkString(strconv.FormatFloat(value, 'f', -1, 64))
	}
}

func (f Filter) checkString(value string) bool {
	var ok bool
	switch f.Operand {
	case "=":
		ok = value == f.Value
	case "~":
		ok = strings.EqualFold(value, f.Value)
	case "^":
		ok = strings.HasPrefix(value, f.Value)
	case ">":
		ok = value > f.Value
	case "<":
		ok = value < f.Value
	case "@":
		ok = strings.Contains(value, f.Value)
	case "/":
		re := f.re
		if re == nil {
			var err error
			if re, err = regexp.Compile(f.Value); err != nil {
				return false
			}
		}
		ok = re.MatchString(value)
	}
	return ok != f.Negate
}
