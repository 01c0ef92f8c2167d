// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package driller

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

var segmentRegex = regexp.MustCompile(`^([A-Za-z0-9_-]+)(\[(\d+|\*)?\])?$`)

// Drill navigates item using a dot path. Each segment is a key optionally
// followed by [n] (one element), [*] or [] (the whole array). A bare key
// naming a single-element array unwraps it. A key that follows an AWS tag list
// ([{"Key":..,"Value":..}]) selects the value of that tag, so "Tags.env" reads
// the env tag.
func Drill(item gjson.Result, path string) gjson.Result {
	current := item

	for _, p := range strings.Split(path, ".") {
		matches := segmentRegex.FindStringSubmatch(p)
		if matches == nil {
			return gjson.Result{}
		}
		key := matches[1]

		index := -1
		whole := matches[2] != ""
		if matches[3] != "" && matches[3] != "*" {
			i, err := strconv.Atoi(matches[3])
			if err != nil {
				return gjson.Result{}
			}
			index = i
			whole = false
		}

		var val gjson.Result
		if current.IsArray() {
			val = tagValue(current, key)
			if !val.Exists() {
				if r := current.Get("#." + gjson.Escape(key)); len(r.Array()) > 0 {
					val = r
				}
			}
		} else {
			val = current.Get(gjson.Escape(key))
		}

		if val.IsArray() {
			arr := val.Array()
			switch {
			case index >= 0 && index < len(arr):
				val = arr[index]
			case index >= 0:
				return gjson.Result{}
			case !whole && len(arr) == 1:
				val = arr[0]
			}
		}

		current = val
	}

	return current
}

// Driller is Drill over a raw JSON document.
func Driller(jsonData string, path string) gjson.Result {
	return Drill(gjson.Parse(jsonData), path)
}

// tagValue finds the Value of the element whose Key is key.
func tagValue(list gjson.Result, key string) gjson.Result {
	var out gjson.Result
	list.ForEach(func(_, el gjson.Result) bool {
		if el.Get("Key").String() == key {
			out = el.Get("Value")
			return false
		}
		return true
	})
	return out
}
