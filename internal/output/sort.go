// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"sort"
	"strings"
)

// sortKey is one parsed --sort field.
type sortKey struct {
	field         string
	descending    bool
	caseSensitive bool
}

func parseSortSpec(spec string) []sortKey {
	var keys []sortKey
	for _, field := range strings.Split(spec, ",") {
		field = strings.TrimSpace(field)
		k := sortKey{}
		if strings.HasPrefix(field, "-") {
			field = strings.TrimPrefix(field, "-")
			k.descending = true
		}
		if strings.HasPrefix(field, "!") {
			field = strings.TrimPrefix(field, "!")
			k.caseSensitive = true
		}
		if field == "" {
			continue
		}
		k.field = field
		keys = append(keys, k)
	}
	return keys
}

// SortDataset stably sorts rows by a comma separated list of output keys. A
// '-' prefix sorts descending and a '!' prefix compares case-sensitively.
// Numbers compare numerically, everything else as strings.
func SortDataset(resultSet []map[string]interface{}, spec string) {
	keys := parseSortSpec(spec)
	if len(keys) == 0 {
		return
	}

	sort.SliceStable(resultSet, func(one, two int) bool {
		for _, k := range keys {
			c := compareValues(resultSet[one][k.field], resultSet[two][k.field], k.caseSensitive)
			if c == 0 {
				continue
			}
			if k.descending {
				return c > 0
			}
			return c < 0
		}
		return false
	})
}

func compareValues(a, b interface{}, caseSensitive bool) int {
	an, aOk := a.(float64)
	bn, bOk := b.(float64)
	if aOk && bOk {
		switch {
		case an < bn:
			return -1
		case an > bn:
			return 1
		}
		return 0
	}

	as := InterfaceToString(a)
	bs := InterfaceToString(b)
	if !caseSensitive {
		as = strings.ToLower(as)
		bs = strings.ToLower(bs)
	}
	return strings.Compare(as, bs)
}
