// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package tldinfo

import (
	"sync"
	"time"
)

// Dataset identifies one of the two independently cached TLD datasets.
type Dataset string

const (
	// DatasetList is the flat list of valid suffixes from the IANA
	// registry.
	DatasetList Dataset = "list"

	// DatasetRecords is the structured record index built from the
	// Wikipedia TLD tables.
	DatasetRecords Dataset = "data"
)

// timeLayout is the fixed textual format used when persisting
// dataset timestamps.
const timeLayout = "2006-01-02 15:04:05"

// defaultUpdated is the updatedAt value of a dataset that has never
// been fetched. It is far enough in the past that the dataset is
// immediately considered stale.
const defaultUpdated = "2000-01-01 00:00:00"

func epochUpdated() time.Time {
	t, _ := time.Parse(timeLayout, defaultUpdated)
	return t
}

// Store holds the two cached TLD datasets, each with its own
// last-updated timestamp.
//
// Every refresh replaces a dataset wholesale (replace-then-publish,
// never in-place mutation), so a concurrent reader observes either
// the fully-old or the fully-new dataset. Datasets are never
// partially merged.
type Store struct {
	mu sync.RWMutex

	list        []string
	listUpdated time.Time

	records        map[string]Record
	recordsUpdated time.Time
}

// NewStore creates an empty Store. Both datasets start empty with
// their timestamps at the epoch default, so the first staleness check
// triggers a fetch.
func NewStore() *Store {
	epoch := epochUpdated()
	return &Store{
		records:        make(map[string]Record),
		listUpdated:    epoch,
		recordsUpdated: epoch,
	}
}

// List returns the cached suffix list and its last-updated timestamp.
func (s *Store) List() ([]string, time.Time) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.list, s.listUpdated
}

// SetList atomically replaces the cached suffix list and its
// timestamp.
func (s *Store) SetList(list []string, updated time.Time) {
	s.mu.Lock()
	s.list = list
	s.listUpdated = updated
	s.mu.Unlock()
}

// Records returns the cached record index and its last-updated
// timestamp.
func (s *Store) Records() (map[string]Record, time.Time) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records, s.recordsUpdated
}

// SetRecords atomically replaces the cached record index and its
// timestamp.
func (s *Store) SetRecords(records map[string]Record, updated time.Time) {
	s.mu.Lock()
	s.records = records
	s.recordsUpdated = updated
	s.mu.Unlock()
}

// Expire backdates both datasets' timestamps to the epoch default so
// the next staleness check refetches them. The datasets themselves
// are left in place.
func (s *Store) Expire() {
	epoch := epochUpdated()
	s.mu.Lock()
	s.listUpdated = epoch
	s.recordsUpdated = epoch
	s.mu.Unlock()
}

// Stale reports whether the named dataset is due for refresh: at
// least staleAfter has elapsed since its last successful update.
// Unknown dataset names report false; the refresh machinery is
// responsible for flagging them.
func (s *Store) Stale(which Dataset, now time.Time, staleAfter time.Duration) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	switch which {
	case DatasetList:
		return now.Sub(s.listUpdated) >= staleAfter
	case DatasetRecords:
		return now.Sub(s.recordsUpdated) >= staleAfter
	default:
		return false
	}
}
