// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cacheutil

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/tfctl/awsctl/internal/log"
)

// Entry represents a cached artifact on disk.
// Key is the clear-text key; EncodedKey is the hashed filename.
type Entry struct {
	Key        string
	EncodedKey string
	Path       string
	Data       []byte
	ModTime    time.Time
}

// Store is a directory of hashed-key files. The zero value is disabled and
// every operation on it is a no-op.
type Store struct {
	Base    string
	Enabled bool
}

// Default resolves the store from the environment.
// Base precedence:
//  1. AWSCTL_CACHE_DIR, if set and non-empty
//  2. os.UserCacheDir()/awsctl
//
// The store is disabled when AWSCTL_CACHE is "0"/"false" or no base resolves.
func Default() Store {
	if v := os.Getenv("AWSCTL_CACHE"); v == "0" || v == "false" {
		return Store{}
	}
	if c := os.Getenv("AWSCTL_CACHE_DIR"); c != "" {
		return Store{Base: c, Enabled: true}
	}
	if dir, err := os.UserCacheDir(); err == nil && dir != "" {
		return Store{Base: filepath.Join(dir, "awsctl"), Enabled: true}
	}
	return Store{}
}

// Path returns where an entry would live and whether a file exists there.
func (s Store) Path(subdirs []string, clearKey string) (string, bool) {
	if !s.Enabled {
		return "", false
	}
	p := filepath.Join(append(append([]string{s.Base}, subdirs...), encodeKey(clearKey))...)
	if _, err := os.Stat(p); err == nil {
		return p, true
	}
	return p, false
}

// Read attempts to read a cached entry.
func (s Store) Read(subdirs []string, clearKey string) (*Entry, bool) {
	p, ok := s.Path(subdirs, clearKey)
	if !ok {
		return nil, false
	}
	info, err := os.Stat(p)
	if err != nil {
		return nil, false
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return nil, false
	}
	log.Debugf("cache hit: key=%s", clearKey)
	return &Entry{
		Key:        clearKey,
		EncodedKey: encodeKey(clearKey),
		Path:       p,
		Data:       bytes.TrimSpace(b),
		ModTime:    info.ModTime(),
	}, true
}

// Write stores data for the given key beneath subdirs. Creates directories as needed.
func (s Store) Write(subdirs []string, clearKey string, data []byte) error {
	if !s.Enabled {
		return nil
	}
	dir := filepath.Join(append([]string{s.Base}, subdirs...)...)
	if err := os.MkdirAll(dir, 0o755); err != nil { //nolint:mnd
		return fmt.Errorf("failed to create cache directory: %w", err)
	}
	p := filepath.Join(dir, encodeKey(clearKey))
	if err := os.WriteFile(p, data, os.FileMode(0o600)); err != nil { //nolint:mnd
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	log.Debugf("cache write: key=%s", clearKey)
	return nil
}

// Remove deletes an entry. A missing entry is not an error.
func (s Store) Remove(subdirs []string, clearKey string) error {
	p, ok := s.Path(subdirs, clearKey)
	if !ok {
		return nil
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove cache entry: %w", err)
	}
	log.Debugf("cache remove: key=%s", clearKey)
	return nil
}

// Purge removes files older than the provided number of hours.
// If hours <= 0 or the store is disabled, it is a no-op.
func (s Store) Purge(hours int) error {
	if hours <= 0 || !s.Enabled {
		log.Debug("cache cleaning disabled")
		return nil
	}

	maxAge := time.Duration(hours) * time.Hour
	err := filepath.WalkDir(s.Base, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			// Base not created yet, or a file vanished under a concurrent purge.
			if errors.Is(walkErr, fs.ErrNotExist) {
				return nil
			}
			return walkErr
		}
		if d.IsDir() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil //nolint:nilerr
		}
		if time.Since(info.ModTime()) > maxAge {
			if err := os.Remove(path); err == nil {
				log.Debugf("removed cache file %s", path)
			} else {
				log.WithError(err).Warnf("failed to remove cache file %s", path)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to purge cache: %w", err)
	}
	return nil
}

// encodeKey returns the hex sha256 of input.
func encodeKey(input string) string {
	h := sha256.Sum256([]byte(input))
	return hex.EncodeToString(h[:])
}
