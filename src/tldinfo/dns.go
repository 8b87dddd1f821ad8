// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package tldinfo

import (
	"context"
	"fmt"
	"strings"

	"github.com/miekg/dns"
	"golang.org/x/net/idna"
)

// ProbeNS queries the configured resolver for the TLD's NS records,
// confirming the suffix is actually delegated in the root zone. This
// is a live check, independent of the cached datasets; it is useful
// when the cached IANA list is days old and a brand-new TLD is being
// asked about.
//
// The returned names are the delegated nameservers without their
// trailing root dot. NXDOMAIN maps to [ErrTLDNotRegistered]; other
// query failures map to [ErrFetchFailed].
func (s *Service) ProbeNS(ctx context.Context, rawTLD string) ([]string, error) {
	tld := Normalize(rawTLD)
	if tld == "" {
		return nil, ErrNoTLDGiven
	}

	// The root zone only knows the punycode form.
	if ascii, err := idna.ToASCII(tld); err == nil {
		tld = ascii
	}

	server := s.resolverAddr
	if !strings.Contains(server, ":") {
		server += ":53"
	}

	msg := new(dns.Msg)
	msg.SetQuestion(dns.Fqdn(tld), dns.TypeNS)
	msg.RecursionDesired = true

	resp, _, err := s.dnsClient.ExchangeContext(ctx, msg, server)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	if resp.Rcode == dns.RcodeNameError {
		return nil, fmt.Errorf("%w: %s", ErrTLDNotRegistered, tld)
	}
	if resp.Rcode != dns.RcodeSuccess {
		return nil, fmt.Errorf("%w: unexpected response code %d", ErrFetchFailed, resp.Rcode)
	}

	var servers []string
	for _, rr := range resp.Answer {
		if ns, ok := rr.(*dns.NS); ok {
			servers = append(servers, strings.TrimSuffix(ns.Ns, "."))
		}
	}
	return servers, nil
}
