// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package selector

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/iancoleman/strcase"
)

// Kind is what a Selector projects.
type Kind int

const (
	// Field projects one top-level field of each response.
	Field Kind = iota
	// Whole emits each response unchanged.
	Whole
	// Param emits the value bound to a cmdlet parameter, once, after the call
	// sequence finishes.
	Param
)

// Selector is a parsed --select value.
type Selector struct {
	Kind Kind
	// Name is the response field name for Field, and the flag name for Param.
	Name string
}

// ErrPassThruWithSelect is returned when both --pass-thru and --select are
// supplied.
var ErrPassThruWithSelect = errors.New("--pass-thru cannot be used together with --select; use --select '^<Param>' instead")

// Options describe the selection flags of one invocation.
type Options struct {
	// Select is the --select value; Explicit reports whether the user set it.
	Select   string
	Explicit bool
	PassThru bool
	// Default is the cmdlet's default --select value.
	Default string
	// PassThruParam is the flag name --pass-thru stands for.
	PassThruParam string
	// Params are the flag names a "^Param" selector may name.
	Params []string
}

// Resolve turns the selection flags into a Selector. It never touches the
// network, so every error here is a usage error.
func Resolve(o Options) (Selector, error) {
	if o.PassThru {
		if o.Explicit {
			return Selector{}, ErrPassThruWithSelect
		}
		if o.PassThruParam == "" {
			return Selector{}, errors.New("--pass-thru is not supported by this command")
		}
		return Selector{Kind: Param, Name: o.PassThruParam}, nil
	}

	value := o.Select
	if value == "" {
		value = o.Default
	}
	return Parse(value, o.Params)
}

// Parse parses a --select value.
//
//	"*"       the whole response
//	"^Bucket" the value of the --bucket parameter
//	"Queries" the Queries field of each response
func Parse(value string, params []string) (Selector, error) {
	value = strings.TrimSpace(value)

	switch {
	case value == "":
		return Selector{}, errors.New("empty --select value")
	case value == "*":
		return Selector{Kind: Whole}, nil
	case strings.HasPrefix(value, "^"):
		name := strcase.ToKebab(strings.TrimPrefix(value, "^"))
		if name == "" || !slices.Contains(params, name) {
			return Selector{}, fmt.Errorf("invalid --select %q: no parameter named %q (valid: %s)",
				value, name, strings.Join(params, ", "))
		}
		return Selector{Kind: Param, Name: name}, nil
	default:
		return Selector{Kind: Field, Name: value}, nil
	}
}

// Bind checks a Field selector against the response type of the command and
// canonicalizes its name. Matching ignores case, as "--select contents" and
// "--select Contents" mean the same thing. Other kinds are returned as-is.
func (s Selector) Bind(response any) (Selector, error) {
	if s.Kind != Field {
		return s, nil
	}
	t := reflect.TypeOf(response)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return Selector{}, fmt.Errorf("cannot select %q from %T", s.Name, response)
	}

	fields := Fields(response)
	for _, f := range fields {
		if strings.EqualFold(f, s.Name) {
			return Selector{Kind: Field, Name: f}, nil
		}
	}
	return Selector{}, fmt.Errorf("invalid --select %q: %s has no such field (valid: *, %s)",
		s.Name, t.Name(), strings.Join(fields, ", "))
}

// PerPage reports whether the selector emits something for every page.
func (s Selector) PerPage() bool {
	return s.Kind != Param
}

// Project extracts the selected value from one response. It returns nil for a
// Param selector.
func (s Selector) Project(response any) (any, error) {
	switch s.Kind {
	case Whole:
		return response, nil
	case Param:
		return nil, nil
	}

	v := reflect.ValueOf(response)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil, nil
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, fmt.Errorf("cannot select %q from %T", s.Name, response)
	}
	f := v.FieldByName(s.Name)
	if !f.IsValid() {
		return nil, fmt.Errorf("%T has no field %q", response, s.Name)
	}
	return f.Interface(), nil
}

// Fields lists the selectable top-level fields of an SDK output struct,
// skipping the SDK's bookkeeping fields.
func Fields(response any) []string {
	t := reflect.TypeOf(response)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}

	var out []string
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() || f.Anonymous || f.Name == "ResultMetadata" {
			continue
		}
		out = append(out, f.Name)
	}
	return out
}
