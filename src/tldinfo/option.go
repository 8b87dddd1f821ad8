// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package tldinfo

import (
	"net/http"
	"time"

	"github.com/miekg/dns"
	"go.uber.org/zap"
)

// Option is a functional option for configuring a [Service].
type Option func(*Service)

// WithLogger sets the logger used for refresh diagnostics and
// skipped-row warnings. The default is [zap.NewNop], which discards
// everything.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithHTTPClient sets a custom [http.Client] for all dataset fetches.
// The default client has a 30-second timeout.
//
// This option has no effect if a custom fetcher is set via
// [WithFetcher].
func WithHTTPClient(client *http.Client) Option {
	return func(s *Service) {
		if client != nil {
			s.client = client
		}
	}
}

// WithFetcher replaces the default HTTP fetcher entirely. Useful for
// testing, or for routing fetches through a custom transport.
func WithFetcher(fetcher Fetcher) Option {
	return func(s *Service) {
		if fetcher != nil {
			s.fetcher = fetcher
		}
	}
}

// WithUserAgent sets the User-Agent header sent with dataset fetches.
// Wikipedia's API policy asks for an identifying User-Agent.
func WithUserAgent(ua string) Option {
	return func(s *Service) {
		if ua != "" {
			s.userAgent = ua
		}
	}
}

// WithListURL overrides the IANA TLD registry URL.
func WithListURL(url string) Option {
	return func(s *Service) {
		if url != "" {
			s.listURL = url
		}
	}
}

// WithWikiAPI overrides the wiki API endpoint queried for the TLD
// metadata page.
func WithWikiAPI(url string) Option {
	return func(s *Service) {
		if url != "" {
			s.wikiAPI = url
		}
	}
}

// WithPageName overrides the wiki page title requested from the API.
// The default is "List_of_Internet_top-level_domains".
func WithPageName(name string) Option {
	return func(s *Service) {
		if name != "" {
			s.pageName = name
		}
	}
}

// WithStaleAfter sets how old a cached dataset may grow before it is
// refetched. The default is 7 days.
func WithStaleAfter(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.staleAfter = d
		}
	}
}

// WithRefreshInterval sets how often [Service.Run] re-evaluates both
// datasets' staleness. The default is 60 minutes.
func WithRefreshInterval(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.interval = d
		}
	}
}

// WithMaxMessageLength sets the transport budget in bytes for a
// rendered reply line. Longer lines are truncated with an ellipsis
// marker. The default is 400, which fits a 512-byte IRC line with
// room for protocol overhead.
func WithMaxMessageLength(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxMessageLen = n
		}
	}
}

// WithSnapshotPath sets the YAML file used by [Service.Load] and
// [Service.Close] to persist the caches across restarts. Persistence
// is disabled when unset.
func WithSnapshotPath(path string) Option {
	return func(s *Service) {
		s.snapshotPath = path
	}
}

// WithResolverAddress sets the DNS resolver queried by
// [Service.ProbeNS]. A bare IP gets port 53 appended. The default is
// "8.8.8.8:53".
func WithResolverAddress(addr string) Option {
	return func(s *Service) {
		if addr != "" {
			s.resolverAddr = addr
		}
	}
}

// WithDNSClient sets a custom [dns.Client] for [Service.ProbeNS].
// This allows full control over the transport configuration (TCP,
// DNS-over-TLS, custom dialers). Passing nil is a no-op and the
// default UDP client will be used.
func WithDNSClient(client *dns.Client) Option {
	return func(s *Service) {
		if client != nil {
			s.dnsClient = client
		}
	}
}
