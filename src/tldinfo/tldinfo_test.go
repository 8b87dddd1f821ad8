// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package tldinfo

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewDefaults(t *testing.T) {
	s := New()

	assert.Equal(t, defaultListURL, s.listURL)
	assert.Equal(t, defaultWikiAPI, s.wikiAPI)
	assert.Equal(t, defaultPageName, s.pageName)
	assert.Equal(t, defaultStaleAfter, s.staleAfter)
	assert.Equal(t, defaultRefreshInterval, s.interval)
	assert.Equal(t, defaultMaxMessageLen, s.maxMessageLen)
	assert.NotNil(t, s.fetcher, "a default HTTP fetcher must be initialized")
	assert.NotNil(t, s.logger, "the logger must default to a nop logger")
	assert.NotNil(t, s.dnsClient)
}

func TestNewOptions(t *testing.T) {
	fetcher := &stubFetcher{}
	s := New(
		WithFetcher(fetcher),
		WithLogger(zap.NewNop()),
		WithStaleAfter(48*time.Hour),
		WithRefreshInterval(5*time.Minute),
		WithMaxMessageLength(200),
		WithUserAgent("custom/1.0"),
		WithPageName("Some_other_page"),
		WithSnapshotPath("snap.yaml"),
		WithResolverAddress("127.0.0.1"),
	)

	assert.Same(t, fetcher, s.fetcher)
	assert.Equal(t, 48*time.Hour, s.staleAfter)
	assert.Equal(t, 5*time.Minute, s.interval)
	assert.Equal(t, 200, s.maxMessageLen)
	assert.Equal(t, "custom/1.0", s.userAgent)
	assert.Equal(t, "Some_other_page", s.pageName)
	assert.Equal(t, "snap.yaml", s.snapshotPath)
	assert.Equal(t, "127.0.0.1", s.resolverAddr)
}

func TestOptionsIgnoreZeroValues(t *testing.T) {
	s := New(
		WithStaleAfter(0),
		WithRefreshInterval(-time.Hour),
		WithMaxMessageLength(0),
		WithUserAgent(""),
		WithDNSClient(nil),
		WithLogger(nil),
	)

	assert.Equal(t, defaultStaleAfter, s.staleAfter)
	assert.Equal(t, defaultRefreshInterval, s.interval)
	assert.Equal(t, defaultMaxMessageLen, s.maxMessageLen)
	assert.Equal(t, defaultUserAgent, s.userAgent)
	assert.NotNil(t, s.dnsClient)
	assert.NotNil(t, s.logger)
}

func TestServiceLifecycle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tldinfo.yaml")
	fetcher := &stubFetcher{list: "RU\n", page: testPage}

	// First run: fetch, look up, persist on close.
	first := New(WithFetcher(fetcher), WithSnapshotPath(path))
	require.NoError(t, first.Load())

	_, err := first.Lookup(context.Background(), "ru")
	require.NoError(t, err)
	require.NoError(t, first.Close())

	// Second run: the snapshot satisfies the lookup without any
	// network fetch.
	second := New(WithFetcher(&stubFetcher{}), WithSnapshotPath(path))
	require.NoError(t, second.Load())

	line, err := second.Lookup(context.Background(), ".ru")
	require.NoError(t, err)
	assert.Contains(t, line, "Sponsor: Coordination Center")

	list, _ := second.Store().List()
	assert.Equal(t, []string{"ru"}, list)
}

func TestServiceLifecycleWithoutSnapshotPath(t *testing.T) {
	s := New(WithFetcher(&stubFetcher{}))
	assert.NoError(t, s.Load())
	assert.NoError(t, s.Close())
}
