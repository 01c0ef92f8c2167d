// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"reflect"
	"strconv"

	"github.com/tidwall/gjson"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v2"

	"github.com/tfctl/awsctl/internal/attrs"
	"github.com/tfctl/awsctl/internal/filters"
	"github.com/tfctl/awsctl/internal/log"
)

// Formats accepted by --output.
var Formats = []string{"text", "json", "yaml", "raw"}

// Options shape how an Emitter renders.
type Options struct {
	Format  string
	Attrs   attrs.AttrList
	Filter  string
	Sort    string
	Titles  bool
	Color   bool
	Local   bool
	Padding int
}

// OptionsFromCommand reads the output flags of cmd. defaults are the
// command's default --attrs, which the user's --attrs restyles or extends.
func OptionsFromCommand(cmd *cli.Command, defaults string) (Options, error) {
	var list attrs.AttrList
	if err := list.Set(defaults); err != nil {
		return Options{}, err
	}
	if err := list.Set(cmd.String("attrs")); err != nil {
		return Options{}, err
	}
	if err := list.SetGlobalTransformSpec(); err != nil {
		return Options{}, err
	}
	if cmd.Bool("local") {
		for i := range list {
			list[i].TransformSpec += "t"
		}
	}

	return Options{
		Format:  cmd.String("output"),
		Attrs:   list,
		Filter:  cmd.String("filter"),
		Sort:    cmd.String("sort"),
		Titles:  cmd.Bool("titles"),
		Color:   cmd.Bool("color"),
		Local:   cmd.Bool("local"),
		Padding: cmd.Int("padding"),
	}, nil
}

// Emitter renders projected values page by page as they arrive. Values are
// serialized to JSON, filtered and shaped by attrs, then rendered in the
// chosen format. With a sort spec, rows are buffered until Close.
type Emitter struct {
	w       io.Writer
	opts    Options
	filters []filters.Filter
	attrs   attrs.AttrList
	renders int
	buffer  []map[string]interface{}
}

// NewEmitter validates opts and returns an Emitter writing to w, or to stdout
// if w is nil.
func NewEmitter(w io.Writer, opts Options) (*Emitter, error) {
	if w == nil {
		w = os.Stdout
	}
	if opts.Format == "" {
		opts.Format = "text"
	}
	valid := false
	for _, f := range Formats {
		valid = valid || f == opts.Format
	}
	if !valid {
		return nil, fmt.Errorf("invalid --output %q: must be one of %v", opts.Format, Formats)
	}

	fs, err := filters.Parse(opts.Filter)
	if err != nil {
		return nil, err
	}

	return &Emitter{w: w, opts: opts, filters: fs, attrs: opts.Attrs}, nil
}

// Emit renders one projected value. Collections are enumerated into one row
// per element; a single object is one row; anything else is a scalar.
func (e *Emitter) Emit(value interface{}) error {
	if isNil(value) {
		return nil
	}

	if e.opts.Format == "raw" {
		b, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("failed to marshal raw output: %w", err)
		}
		_, err = fmt.Fprintln(e.w, string(b))
		return err
	}

	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	doc := gjson.ParseBytes(b)

	var items []gjson.Result
	switch {
	case doc.IsArray():
		items = doc.Array()
	case doc.IsObject():
		items = []gjson.Result{doc}
	case doc.Type == gjson.Null:
		return nil
	default:
		return e.emitScalar(doc)
	}

	if len(items) == 0 {
		return nil
	}

	// Collections of scalars (e.g. a list of ids) render one per line.
	if !items[0].IsObject() {
		for _, item := range items {
			if err := e.emitScalar(item); err != nil {
				return err
			}
		}
		return nil
	}

	rows := e.rows(items)
	if e.opts.Sort != "" {
		e.buffer = append(e.buffer, rows...)
		return nil
	}
	return e.render(rows)
}

// Close flushes buffered rows.
func (e *Emitter) Close() error {
	if len(e.buffer) == 0 {
		return nil
	}
	SortDataset(e.buffer, e.opts.Sort)
	rows := e.buffer
	e.buffer = nil
	return e.render(rows)
}

// rows filters items and shapes them by attrs. Without attrs, text output
// derives columns from the first item; json and yaml keep whole items.
func (e *Emitter) rows(items []gjson.Result) []map[string]interface{} {
	if len(e.attrs) == 0 {
		if e.opts.Format != "text" {
			var rows []map[string]interface{}
			for _, item := range items {
				if !filters.Match(item, nil, e.filters) {
					continue
				}
				if m, ok := item.Value().(map[string]interface{}); ok {
					rows = append(rows, m)
				}
			}
			return rows
		}
		e.attrs = deriveAttrs(items[0], e.opts.Local)
		log.Debugf("derived attrs: attrs=%s", e.attrs.String())
	}

	rows := filters.Apply(items, e.attrs, e.filters)
	for _, row := range rows {
		for _, attr := range e.attrs {
			if attr.TransformSpec != "" {
				row[attr.OutputKey] = attr.Transform(row[attr.OutputKey])
			}
		}
	}
	return rows
}

func (e *Emitter) render(rows []map[string]interface{}) error {
	if len(rows) == 0 {
		return nil
	}
	defer func() { e.renders++ }()

	switch e.opts.Format {
	case "json":
		for _, row := range rows {
			b, err := e.marshalRow(row)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintln(e.w, string(b)); err != nil {
				return err
			}
		}
		return nil
	case "yaml":
		doc := make([]interface{}, 0, len(rows))
		for _, row := range rows {
			doc = append(doc, e.orderedRow(row))
		}
		b, err := yaml.Marshal(doc)
		if err != nil {
			return fmt.Errorf("failed to marshal yaml output: %w", err)
		}
		_, err = fmt.Fprintf(e.w, "---\n%s", b)
		return err
	default:
		return TableWriter(e.w, rows, e.attrs, TableOptions{
			Titles:  e.opts.Titles && e.renders == 0,
			Color:   e.opts.Color,
			Padding: e.opts.Padding,
		})
	}
}

// marshalRow writes a row as JSON with keys in attr order.
func (e *Emitter) marshalRow(row map[string]interface{}) ([]byte, error) {
	if len(e.attrs) == 0 {
		return json.Marshal(row)
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	n := 0
	for _, attr := range e.attrs.Visible() {
		if attr.Key == "*" {
			continue
		}
		k, _ := json.Marshal(attr.OutputKey)
		v, err := json.Marshal(row[attr.OutputKey])
		if err != nil {
			return nil, fmt.Errorf("failed to marshal %s: %w", attr.OutputKey, err)
		}
		if n > 0 {
			buf.WriteByte(',')
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
		n++
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// orderedRow returns a yaml.MapSlice in attr order, or the row itself.
func (e *Emitter) orderedRow(row map[string]interface{}) interface{} {
	if len(e.attrs) == 0 {
		return row
	}
	ms := yaml.MapSlice{}
	for _, attr := range e.attrs.Visible() {
		ms = append(ms, yaml.MapItem{Key: attr.OutputKey, Value: row[attr.OutputKey]})
	}
	return ms
}

func (e *Emitter) emitScalar(v gjson.Result) error {
	var err error
	switch e.opts.Format {
	case "json":
		_, err = fmt.Fprintln(e.w, v.Raw)
	case "yaml":
		var b []byte
		b, err = yaml.Marshal(v.Value())
		if err == nil {
			_, err = fmt.Fprintf(e.w, "---\n%s", b)
		}
	default:
		_, err = fmt.Fprintln(e.w, InterfaceToString(v.Value()))
	}
	return err
}

// deriveAttrs builds columns from the non-null scalar top-level fields of
// item, in the order the SDK declares them.
func deriveAttrs(item gjson.Result, local bool) attrs.AttrList {
	var list attrs.AttrList
	item.ForEach(func(key, value gjson.Result) bool {
		if value.IsObject() || value.IsArray() || value.Type == gjson.Null {
			return true
		}
		a := attrs.Attr{Key: key.String(), OutputKey: key.String(), Include: true}
		if local {
			a.TransformSpec = "t"
		}
		list = append(list, a)
		return true
	})
	return list
}

// InterfaceToString converts supported primitive or composite values to a
// string. A custom empty value may be provided.
func InterfaceToString(value interface{}, emptyValue ...string) string {
	if len(emptyValue) == 0 {
		emptyValue = []string{""}
	}

	if isNil(value) {
		return emptyValue[0]
	}

	switch value := value.(type) {
	case string:
		if value == "" {
			return emptyValue[0]
		}
		return value
	case int:
		return strconv.Itoa(value)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(value)
	default:
		jsonBytes, err := json.Marshal(value)
		if err != nil {
			return fmt.Sprintf("%v", value)
		}
		return string(jsonBytes)
	}
}

func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
