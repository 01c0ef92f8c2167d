// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"sort"
	"time"

	"github.com/tfctl/awsctl/internal/log"
)

// maxSchemaDepth limits how deep nested structs are listed.
const maxSchemaDepth = 1

var timeType = reflect.TypeOf(time.Time{})

// DumpSchema writes the sorted --attrs paths available on items of type typ.
// If w is nil, os.Stdout is used.
func DumpSchema(typ reflect.Type, w io.Writer) {
	if w == nil {
		w = os.Stdout
	}

	fmt.Fprintln(w,
		`Item attributes available to the --attrs, --filter and --sort flags.
For the complete response, use --select '*' --output raw.`)
	fmt.Fprintln(w, "")

	paths := dumpSchemaWalker("", typ, 0)
	if len(paths) == 0 {
		log.Debugf("no fields found for type: %v", typ)
		return
	}

	sort.Strings(paths)
	for _, p := range paths {
		fmt.Fprintln(w, p)
	}
}

// dumpSchemaWalker lists the exported field paths of typ, descending into
// nested structs up to maxSchemaDepth.
func dumpSchemaWalker(holder string, typ reflect.Type, depth int) []string {
	typ = indirect(typ)
	if typ == nil || typ.Kind() != reflect.Struct || typ == timeType {
		return nil
	}

	var paths []string
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() || field.Anonymous || field.Name == "ResultMetadata" {
			continue
		}

		name := field.Name
		if holder != "" {
			name = holder + "." + name
		}

		ft := indirect(field.Type)
		if ft.Kind() == reflect.Slice {
			name += "[*]"
			ft = indirect(ft.Elem())
		}
		paths = append(paths, name)

		if depth < maxSchemaDepth && ft.Kind() == reflect.Struct && ft != timeType {
			paths = append(paths, dumpSchemaWalker(name, ft, depth+1)...)
		}
	}

	return paths
}

func indirect(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}
