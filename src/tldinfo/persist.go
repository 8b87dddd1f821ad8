// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package tldinfo

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// snapshot is the on-disk YAML form of the two cached datasets.
// Timestamps are stored in the fixed "2006-01-02 15:04:05" layout so
// the round trip is lossless to the second.
type snapshot struct {
	List           []string          `yaml:"list"`
	ListUpdated    string            `yaml:"list_updated"`
	Records        map[string]Record `yaml:"records"`
	RecordsUpdated string            `yaml:"records_updated"`
}

// LoadSnapshot restores both datasets from the YAML file at path.
//
// A missing file leaves the store at its defaults (empty datasets,
// epoch timestamps). A timestamp that fails to parse falls back to
// the epoch default so the affected dataset is immediately considered
// stale rather than trusted indefinitely.
func (s *Store) LoadSnapshot(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("tldinfo: reading snapshot: %w", err)
	}

	var snap snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("tldinfo: decoding snapshot: %w", err)
	}

	listUpdated := parseUpdated(snap.ListUpdated)
	recordsUpdated := parseUpdated(snap.RecordsUpdated)

	records := snap.Records
	if records == nil {
		records = make(map[string]Record)
	}

	s.SetList(snap.List, listUpdated)
	s.SetRecords(records, recordsUpdated)
	return nil
}

// SaveSnapshot persists the datasets to the YAML file at path.
//
// Empty datasets are not written: an existing snapshot's values for
// them are carried over unchanged, so a run that never managed a
// successful fetch does not clobber earlier good data. When there is
// nothing to write at all, the file is left untouched.
func (s *Store) SaveSnapshot(path string) error {
	list, listUpdated := s.List()
	records, recordsUpdated := s.Records()

	var snap snapshot
	if prior, err := os.ReadFile(path); err == nil {
		// Best effort; a corrupt prior snapshot is simply replaced.
		_ = yaml.Unmarshal(prior, &snap)
	}

	if len(list) > 0 {
		snap.List = list
		snap.ListUpdated = listUpdated.Format(timeLayout)
	}
	if len(records) > 0 {
		snap.Records = records
		snap.RecordsUpdated = recordsUpdated.Format(timeLayout)
	}

	if len(snap.List) == 0 && len(snap.Records) == 0 {
		return nil
	}

	data, err := yaml.Marshal(snap)
	if err != nil {
		return fmt.Errorf("tldinfo: encoding snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("tldinfo: writing snapshot: %w", err)
	}
	return nil
}

// parseUpdated parses a persisted timestamp, falling back to the
// epoch default on any failure.
func parseUpdated(value string) time.Time {
	t, err := time.Parse(timeLayout, value)
	if err != nil {
		return epochUpdated()
	}
	return t
}
