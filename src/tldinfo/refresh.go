// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package tldinfo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Refresh evaluates the named dataset's staleness and, when due,
// refetches and reparses it.
//
// A network or decode failure is logged and leaves the cached dataset
// and its timestamp untouched, so the service degrades gracefully to
// last-known-good data and the next opportunity retries. Unknown
// dataset names are logged and ignored.
func (s *Service) Refresh(ctx context.Context, which Dataset) {
	switch which {
	case DatasetList, DatasetRecords:
	default:
		s.logger.Error("asked to update unknown dataset",
			zap.Error(fmt.Errorf("%w: %q", ErrUnknownDataset, string(which))))
		return
	}

	now := time.Now()
	if !s.store.Stale(which, now, s.staleAfter) {
		s.logger.Debug("skipping dataset update; cache is still fresh",
			zap.String("dataset", string(which)))
		return
	}

	switch which {
	case DatasetList:
		s.refreshList(ctx, now)
	case DatasetRecords:
		s.refreshRecords(ctx, now)
	}
}

func (s *Service) refreshList(ctx context.Context, now time.Time) {
	text, err := s.fetcher.FetchList(ctx)
	if err != nil {
		// Probably a transient error; log it and continue life.
		s.logger.Warn("error fetching IANA TLD list; will try again later",
			zap.Error(err))
		return
	}

	s.store.SetList(parseList(text), now)
	s.logger.Debug("updated TLD list cache")
}

func (s *Service) refreshRecords(ctx context.Context, now time.Time) {
	page, err := s.fetcher.FetchPageHTML(ctx)
	if err != nil {
		s.logger.Warn("error fetching TLD data from the wiki; will try again later",
			zap.Error(err))
		return
	}

	tables, err := ExtractTables(strings.NewReader(page))
	if err != nil {
		s.logger.Warn("error parsing TLD data page; will try again later",
			zap.Error(err))
		return
	}

	s.store.SetRecords(IndexTables(tables, s.logger), now)
	s.logger.Debug("updated TLD data cache")
}

// Run refreshes both datasets on the configured interval until ctx is
// canceled. Each tick re-evaluates staleness independently for the
// suffix list and the record index; the 7-day threshold means most
// ticks are no-ops.
func (s *Service) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		s.Refresh(ctx, DatasetList)
		s.Refresh(ctx, DatasetRecords)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
