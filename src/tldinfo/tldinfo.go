// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package tldinfo

import (
	"net/http"
	"strings"
	"time"

	"github.com/miekg/dns"
	"go.uber.org/zap"
)

// Default configuration values.
const (
	defaultStaleAfter      = 7 * 24 * time.Hour
	defaultRefreshInterval = 60 * time.Minute
	defaultMaxMessageLen   = 400
	defaultHTTPTimeout     = 30 * time.Second
	defaultResolver        = "8.8.8.8:53"
	defaultUserAgent       = "tldinfo/1.0 (+https://github.com/H0llyW00dzZ/tldinfo)"
)

// Service keeps a local, time-bounded copy of IANA's TLD registry and
// the Wikipedia TLD metadata tables, and resolves TLD lookups against
// them.
//
// The two datasets age independently: each is refetched when it is
// at least a week old, either on the periodic [Service.Run] tick or
// lazily when a lookup finds a cache empty. A failed fetch degrades
// gracefully to last-known-good data.
type Service struct {
	store   *Store
	fetcher Fetcher
	logger  *zap.Logger

	client        *http.Client
	userAgent     string
	listURL       string
	wikiAPI       string
	pageName      string
	staleAfter    time.Duration
	interval      time.Duration
	maxMessageLen int
	snapshotPath  string
	resolverAddr  string
	dnsClient     *dns.Client
}

// New creates a [Service] with the default IANA and Wikipedia
// endpoints. Use functional options to customize behavior.
//
//	// Default configuration:
//	s := tldinfo.New()
//
//	// Custom configuration:
//	s := tldinfo.New(
//	    tldinfo.WithSnapshotPath("tldinfo.yaml"),
//	    tldinfo.WithMaxMessageLength(300),
//	)
func New(opts ...Option) *Service {
	s := &Service{
		store:         NewStore(),
		userAgent:     defaultUserAgent,
		listURL:       defaultListURL,
		wikiAPI:       defaultWikiAPI,
		pageName:      defaultPageName,
		staleAfter:    defaultStaleAfter,
		interval:      defaultRefreshInterval,
		maxMessageLen: defaultMaxMessageLen,
		resolverAddr:  defaultResolver,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = zap.NewNop()
	}

	if s.client == nil {
		s.client = &http.Client{Timeout: defaultHTTPTimeout}
	}

	// Initialize the default HTTP fetcher if not set by WithFetcher.
	if s.fetcher == nil {
		s.fetcher = &httpFetcher{
			client:    s.client,
			userAgent: s.userAgent,
			listURL:   s.listURL,
			wikiAPI:   s.wikiAPI,
			pageName:  s.pageName,
		}
	}

	// Initialize the shared DNS client used by ProbeNS.
	if s.dnsClient == nil {
		s.dnsClient = &dns.Client{
			Timeout: defaultHTTPTimeout,
			Net:     "udp",
		}
	}

	return s
}

// Store returns the service's cache store. It is safe for concurrent
// use alongside lookups and refreshes.
func (s *Service) Store() *Store {
	return s.store
}

// Load restores the cached datasets from the configured snapshot
// file. It is a no-op when no snapshot path is configured and when
// the file does not exist yet.
func (s *Service) Load() error {
	if s.snapshotPath == "" {
		return nil
	}
	return s.store.LoadSnapshot(s.snapshotPath)
}

// Close persists the non-empty cached datasets to the configured
// snapshot file. It is a no-op when no snapshot path is configured.
func (s *Service) Close() error {
	if s.snapshotPath == "" {
		return nil
	}
	return s.store.SaveSnapshot(s.snapshotPath)
}

// Normalize lowercases a raw TLD token and strips surrounding
// whitespace and dots, so ".RU" and "ru" resolve identically.
func Normalize(raw string) string {
	return strings.ToLower(strings.Trim(strings.TrimSpace(raw), "."))
}
