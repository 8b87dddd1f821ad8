// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package tldinfo

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPFetcherFetchList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "tldinfo-test", r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte("# Version 2026083000, Last Updated\nCOM\nRU\nXN--P1AI\n"))
	}))
	defer srv.Close()

	f := &httpFetcher{client: srv.Client(), userAgent: "tldinfo-test", listURL: srv.URL}

	text, err := f.FetchList(context.Background())
	require.NoError(t, err)

	list := parseList(text)
	assert.Equal(t, []string{"com", "ru", "xn--p1ai"}, list,
		"comment lines dropped, entries lowercased, source order kept")
}

func TestHTTPFetcherFetchPageHTML(t *testing.T) {
	const page = `<table class="wikitable"><tr><td>.ru</td></tr></table>`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "parse", q.Get("action"))
		assert.Equal(t, "json", q.Get("format"))
		assert.Equal(t, "text", q.Get("prop"))
		assert.Equal(t, "2", q.Get("formatversion"))
		assert.Equal(t, "List_of_Internet_top-level_domains", q.Get("page"))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"parse": map[string]any{"title": "List of Internet top-level domains", "text": page},
		})
	}))
	defer srv.Close()

	f := &httpFetcher{
		client:    srv.Client(),
		userAgent: "tldinfo-test",
		wikiAPI:   srv.URL,
		pageName:  defaultPageName,
	}

	html, err := f.FetchPageHTML(context.Background())
	require.NoError(t, err)
	assert.Equal(t, page, html)
}

func TestHTTPFetcherBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusGone)
	}))
	defer srv.Close()

	f := &httpFetcher{client: srv.Client(), userAgent: "t", listURL: srv.URL}

	_, err := f.FetchList(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFetchFailed)
}

func TestHTTPFetcherMissingKeyPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error": {"code": "missingtitle"}}`))
	}))
	defer srv.Close()

	f := &httpFetcher{client: srv.Client(), userAgent: "t", wikiAPI: srv.URL, pageName: "Nope"}

	_, err := f.FetchPageHTML(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFetchFailed,
		"a JSON body without parse.text must be reported as a fetch failure")
}

func TestParseListKeepsSourceOrder(t *testing.T) {
	list := parseList("# header\nAAA\nZZZ\nBBB")
	assert.Equal(t, []string{"aaa", "zzz", "bbb"}, list)
}
