// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package filters provides client-side filtering of AWS response items.
//
// Filters are specified as key-operator-target expressions joined by a
// delimiter (default: comma, override with AWSCTL_FILTER_DELIM).
//
// Operators, each negatable with a leading '!':
//
//   - = : exact match, numeric when both sides are numbers
//   - ~ : case-insensitive match
//   - ^ : prefix match
//   - < : less than, numeric when both sides are numbers
//   - > : greater than, numeric when both sides are numbers
//   - @ : contains (substring, array element or object key)
//   - / : regular expression match
//
// Examples:
//
//   - "Key^logs/" : objects whose key starts with "logs/"
//   - "Size>1048576" : objects larger than one MiB
//   - "Status!=DELETED" : shares not in the DELETED state
//   - "Tags.env=prod" : items tagged env=prod
//
// A filter key names an --attrs output key, or failing that a path into the
// item (see package driller). Items without the key fail the filter unless it
// is negated.
package filters
