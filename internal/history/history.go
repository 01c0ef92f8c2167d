// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package history remembers the continuation token a list cmdlet stopped at,
// so a later run can resume with --next-token @last.
package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/tfctl/awsctl/internal/cacheutil"
	"github.com/tfctl/awsctl/internal/log"
)

// LastToken is the --next-token value that resumes from history.
const LastToken = "@last"

// ErrNoHistory is returned when @last is requested but nothing is stored.
var ErrNoHistory = errors.New("no stored next token")

// Record is one stored resume point.
type Record struct {
	Command string    `json:"command"`
	Token   string    `json:"token"`
	Time    time.Time `json:"time"`
}

// Store reads and writes Records beneath history/<command>.
type Store struct {
	cache cacheutil.Store
	now   func() time.Time
}

// New returns a Store over cache.
func New(cache cacheutil.Store) *Store {
	return &Store{cache: cache, now: time.Now}
}

// Key scopes a record to the credentials and region it was produced with.
func Key(profile, region string) string {
	return profile + "|" + region
}

// Save records token for command. A nil or empty token means the last run
// reached the end of the results, and any stored record is cleared.
func (s *Store) Save(command, key string, token *string) error {
	subdirs := []string{"history", command}
	if token == nil || *token == "" {
		return s.cache.Remove(subdirs, key)
	}

	b, err := json.Marshal(Record{Command: command, Token: *token, Time: s.now().UTC()})
	if err != nil {
		return fmt.Errorf("failed to encode history record: %w", err)
	}
	log.Debugf("history save: command=%s key=%s", command, key)
	return s.cache.Write(subdirs, key, b)
}

// Last returns the stored record for command.
func (s *Store) Last(command, key string) (Record, error) {
	e, ok := s.cache.Read([]string{"history", command}, key)
	if !ok {
		return Record{}, fmt.Errorf("%s: %w", command, ErrNoHistory)
	}

	var r Record
	if err := json.Unmarshal(e.Data, &r); err != nil {
		return Record{}, fmt.Errorf("corrupt history record for %s: %w", command, err)
	}
	return r, nil
}

// Resolve expands value when it is LastToken and returns it unchanged
// otherwise.
func (s *Store) Resolve(command, key, value string) (string, error) {
	if value != LastToken {
		return value, nil
	}
	r, err := s.Last(command, key)
	if err != nil {
		return "", err
	}
	log.Debugf("history resume: command=%s saved=%s", command, r.Time.Format(time.RFC3339))
	return r.Token, nil
}
