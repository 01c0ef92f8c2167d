// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package attrs

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/tfctl/awsctl/internal/log"
)

// Attr is one output column. Key is a dotted path into a result item as the
// SDK serializes it, e.g. "Owner.DisplayName" or "Tags[*]".
type Attr struct {
	// The path to extract from each result item.
	Key string `yaml:"key" json:"Key"`
	// Should this Attr be included in output or is it just
	// intended for filtering and sorting?
	Include bool `yaml:"include" json:"Include"`
	// The key to use in the output. This is also used as the column title when
	// output=text.
	OutputKey string `yaml:"outputKey" json:"OutputKey"`
	// Transformation spec to apply to the output value.
	TransformSpec string `yaml:"transformSpec" json:"TransformSpec"`
}

var lengthSpec = regexp.MustCompile(`-?\d+`)

// Transform applies the attribute's transform spec to a value and returns the
// transformed result. Only string values are transformed.
func (a *Attr) Transform(value interface{}) interface{} {
	result, ok := value.(string)
	if !ok || a.TransformSpec == "" {
		log.Tracef("untransformed value: value=%v", value)
		return value
	}

	if strings.ContainsAny(a.TransformSpec, "tT") {
		result = transformTime(result, strings.Contains(a.TransformSpec, "T"))
	}
	result = transformCase(result, a.TransformSpec)
	result = transformLength(result, a.TransformSpec)

	return result
}

// transformTime renders an RFC3339 timestamp in the local zone, or as a
// relative "3 hours ago" when ago is set. Non-timestamps pass through.
func transformTime(s string, ago bool) string {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return s
	}
	local := t.In(time.Local)
	if ago {
		s = humanize.Time(local)
		log.Tracef("time ago: result=%s", s)
		return s
	}
	s = local.Format("2006-01-02T15:04:05MST")
	log.Tracef("time local: result=%s", s)
	return s
}

// transformCase applies the last case directive in spec, so a per-attr
// directive overrides a prepended global one ('*::U,Key::l' is lower).
func transformCase(s, spec string) string {
	lastL := strings.LastIndexAny(spec, "lL")
	lastU := strings.LastIndexAny(spec, "uU")

	switch {
	case lastL > lastU:
		return strings.ToLower(s)
	case lastU > lastL:
		return strings.ToUpper(s)
	}
	return s
}

// transformLength truncates s to the last length in spec, counted in runes. A
// negative length keeps both ends and elides the middle.
func transformLength(s, spec string) string {
	match := lengthSpec.FindAllString(spec, -1)
	if len(match) == 0 {
		return s
	}

	l, _ := strconv.Atoi(match[len(match)-1])
	abs := l
	if abs < 0 {
		abs = -abs
	}
	r := []rune(s)
	if len(r) <= abs {
		return s
	}

	if l < 0 {
		keep := max(abs/2-1, 0)
		s = string(r[:keep]) + ".." + string(r[len(r)-keep:])
		log.Tracef("length middle: result=%s", s)
		return s
	}
	s = string(r[:l])
	log.Tracef("length trunc: result=%s", s)
	return s
}

// AttrList is a collection of Attr used to shape output fields.
type AttrList []Attr

// Set parses each spec from --attrs and adds it to the AttrList. Each spec is
// key[:outputKey[:transform]]; a leading '!' on the key keeps the column for
// filtering and sorting but hides it.
func (a *AttrList) Set(value string) error {
	if value == "" || value == "*" {
		log.Debugf("early return: value=%s", value)
		return nil
	}

	const (
		keyIdx = iota
		outputIdx
		transformIdx
	)

	specs := strings.Split(value, ",")
	log.Debugf("specs split: specs=%v", specs)
specloop:
	for _, spec := range specs {
		fields := strings.Split(spec, ":")
		if len(fields) > transformIdx+1 {
			return fmt.Errorf("invalid attr spec %q: too many ':' separated fields", spec)
		}

		attr := Attr{Include: true}
		attr.Key = strings.TrimSpace(fields[keyIdx])
		if strings.HasPrefix(attr.Key, "!") {
			attr.Include = false
			attr.Key = attr.Key[1:]
		}
		if attr.Key == "" {
			return fmt.Errorf("invalid attr spec %q: empty key", spec)
		}
		if attr.Key == "*" {
			attr.Include = false
		}

		// The output key defaults to the last segment of the path.
		segments := strings.Split(attr.Key, ".")
		attr.OutputKey = segments[len(segments)-1]
		if len(fields) > outputIdx && strings.TrimSpace(fields[outputIdx]) != "" {
			attr.OutputKey = strings.TrimSpace(fields[outputIdx])
		}
		if len(fields) > transformIdx {
			attr.TransformSpec = strings.TrimSpace(fields[transformIdx])
		}
		log.Tracef("attr parsed: key=%s, output=%s, spec=%s, include=%v",
			attr.Key, attr.OutputKey, attr.TransformSpec, attr.Include)

		// A spec naming an attr already in the list (a command default, or a
		// repeat) restyles it in place.
		for i := range *a {
			if (*a)[i].Key == attr.Key || (*a)[i].OutputKey == attr.Key {
				(*a)[i].Include = attr.Include
				(*a)[i].OutputKey = attr.OutputKey
				(*a)[i].TransformSpec = attr.TransformSpec
				log.Tracef("existing updated: i=%d", i)
				continue specloop
			}
		}

		*a = append(*a, attr)
	}

	return nil
}

// SetGlobalTransformSpec prepends the transform of the "*" attr, if any, to
// every attr in the list.
func (a *AttrList) SetGlobalTransformSpec() error {
	spec := ""
	for i := range *a {
		if (*a)[i].Key == "*" {
			spec = (*a)[i].TransformSpec
			break
		}
	}

	if spec == "" {
		log.Debugf("no global spec")
		return nil
	}

	for i := range *a {
		(*a)[i].TransformSpec = spec + "," + (*a)[i].TransformSpec
	}
	log.Debugf("global spec prepended: spec=%s", spec)

	return nil
}

// Visible returns the attrs that produce output columns.
func (a AttrList) Visible() AttrList {
	out := make(AttrList, 0, len(a))
	for _, attr := range a {
		if attr.Include {
			out = append(out, attr)
		}
	}
	return out
}

// String returns a string representation of the AttrList. This matches the
// format of the original --attrs flag.
func (a *AttrList) String() string {
	result := make([]string, 0, len(*a))
	for _, attr := range *a {
		result = append(result, fmt.Sprintf("%s:%s:%s", attr.Key, attr.OutputKey, attr.TransformSpec))
	}
	return strings.Join(result, ",")
}

// Type returns the flag type for use with the flag.Value interface.
func (a *AttrList) Type() string { return "list" }
