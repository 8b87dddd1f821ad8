// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package tldinfo

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Default remote endpoints.
const (
	defaultListURL  = "https://data.iana.org/TLD/tlds-alpha-by-domain.txt"
	defaultWikiAPI  = "https://en.wikipedia.org/w/api.php"
	defaultPageName = "List_of_Internet_top-level_domains"
)

// Fetcher retrieves the two remote TLD datasets. Implement this
// interface to substitute a custom transport, or a fixture source in
// tests, via the [WithFetcher] option.
type Fetcher interface {
	// FetchList returns the raw text of the IANA TLD registry.
	FetchList(ctx context.Context) (string, error)

	// FetchPageHTML returns the rendered HTML of the TLD metadata
	// page.
	FetchPageHTML(ctx context.Context) (string, error)
}

// httpFetcher is the default Fetcher, backed by an [http.Client].
type httpFetcher struct {
	client    *http.Client
	userAgent string
	listURL   string
	wikiAPI   string
	pageName  string
}

// get issues a GET request and returns the response body. Non-2xx
// status codes are reported as [ErrFetchFailed].
func (f *httpFetcher) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s returned status %d", ErrFetchFailed, rawURL, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	return body, nil
}

// FetchList downloads the plain-text IANA TLD registry.
func (f *httpFetcher) FetchList(ctx context.Context) (string, error) {
	body, err := f.get(ctx, f.listURL)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// FetchPageHTML asks the wiki API for the rendered HTML of the TLD
// metadata page.
//
// See https://www.mediawiki.org/wiki/Special:MyLanguage/API:Get_the_contents_of_a_page
func (f *httpFetcher) FetchPageHTML(ctx context.Context) (string, error) {
	u, err := url.Parse(f.wikiAPI)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	q := url.Values{}
	q.Set("action", "parse")
	q.Set("format", "json")
	q.Set("prop", "text")
	q.Set("utf8", "1")
	q.Set("formatversion", "2")
	q.Set("page", f.pageName)
	u.RawQuery = q.Encode()

	body, err := f.get(ctx, u.String())
	if err != nil {
		return "", err
	}

	var payload struct {
		Parse struct {
			Text string `json:"text"`
		} `json:"parse"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("%w: decoding wiki response: %v", ErrFetchFailed, err)
	}
	if payload.Parse.Text == "" {
		return "", fmt.Errorf("%w: wiki response missing parse.text", ErrFetchFailed)
	}
	return payload.Parse.Text, nil
}

// parseList splits the raw IANA registry text into a lowercase
// suffix list, dropping comment lines. Source order is preserved.
func parseList(text string) []string {
	var list []string
	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "#") {
			continue
		}
		list = append(list, strings.ToLower(line))
	}
	return list
}
