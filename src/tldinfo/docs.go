// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package tldinfo maintains a local, time-bounded copy of two remote
// TLD datasets — IANA's registry of valid top-level domains and the
// Wikipedia table of TLD metadata — and resolves user-supplied TLD
// tokens against them.
//
// It works by downloading the plain-text IANA list and the rendered
// HTML of the Wikipedia page, extracting every "wikitable"-class
// table with a streaming tokenizer, and indexing the rows under both
// the plain suffix and its IDNA (punycode) form.
//
// # Caching Model
//
// The two datasets age independently. Each has a last-updated
// timestamp and is refetched once it is at least a week old, either
// on the hourly [Service.Run] tick or lazily when a lookup finds a
// cache empty. A refresh replaces a dataset wholesale — readers never
// observe a partial write — and a failed fetch is logged and leaves
// the previous dataset untouched, so the service degrades gracefully
// to last-known-good data.
//
// Caches survive restarts through a YAML snapshot: [Service.Load]
// restores it on startup and [Service.Close] writes it on shutdown.
// Empty datasets are never written, so a run that never fetched
// successfully cannot clobber earlier good data.
//
// # Features
//
//   - Streaming wikitable extraction — tag-driven state machine over
//     [golang.org/x/net/html]'s tokenizer, with footnote suppression
//     and inline bold/italic preservation
//   - Dual-key record index — every TLD reachable under its plain
//     suffix and its punycode form, both sharing one record
//   - Staleness-driven refresh — 7-day threshold per dataset,
//     evaluated hourly, with graceful degradation on fetch failure
//   - Snapshot persistence — lossless YAML round trip of both
//     datasets and their timestamps
//   - Bounded replies — rendered lines are truncated to a transport
//     budget with an ellipsis marker, never mid-rune
//   - Live delegation probe — [Service.ProbeNS] confirms a TLD in
//     the root zone via DNS, independent of the caches
//   - Spreadsheet export — [Service.ExportXLSX] dumps the record
//     index to an Excel workbook
//   - Functional options — clean, idiomatic configuration pattern
//   - Typed errors — sentinel errors for [errors.Is] matching
//
// # Quick Start
//
//	s := tldinfo.New(tldinfo.WithSnapshotPath("tldinfo.yaml"))
//	if err := s.Load(); err != nil {
//	    log.Fatal(err)
//	}
//	defer s.Close()
//
//	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
//	defer cancel()
//
//	line, err := s.Lookup(ctx, ".ru")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(line)
//	// Sponsor: Coordination Center for TLD RU | Notes: …
//
// Run the hourly refresh loop in the background for long-lived
// processes:
//
//	go s.Run(ctx)
//
// # Errors
//
// Sentinel errors for use with [errors.Is]:
//
//	var (
//	    ErrNoTLDGiven       // Lookup attempted without a TLD token
//	    ErrTLDNotRegistered // Token not in IANA's list, directly or via punycode
//	    ErrTLDNoDetails     // Registered, but no structured record found
//	    ErrFetchFailed      // Transient fetch/decode failure; cache untouched
//	    ErrUnknownDataset   // Refresh requested for a nonexistent dataset
//	    ErrNothingToExport  // Export requested with an empty record cache
//	)
//
// The first three describe user-facing lookup outcomes; the rest are
// internal and only ever logged. No fetch or parse failure is fatal —
// this is best-effort advisory data.
//
// # Custom Fetcher
//
// Implement the Fetcher interface to substitute the transport, for
// example to serve fixtures in tests:
//
//	type Fetcher interface {
//	    FetchList(ctx context.Context) (string, error)
//	    FetchPageHTML(ctx context.Context) (string, error)
//	}
//
// Pass it via [WithFetcher].
package tldinfo
