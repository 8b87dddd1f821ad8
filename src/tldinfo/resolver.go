// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package tldinfo

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/net/idna"
)

// Lookup resolves a raw TLD token against the cached datasets and
// renders a single bounded-length reply line.
//
// The token is normalized (dots stripped, lowercased), validated
// against the IANA suffix list (matching either directly or via its
// IDNA punycode form), and then looked up in the record index.
// Empty caches trigger a synchronous fetch-or-skip on the caller's
// path before the check, with the same failure handling as the
// periodic refresh.
//
// Errors are sentinel-wrapped for [errors.Is]: [ErrNoTLDGiven],
// [ErrTLDNotRegistered], and [ErrTLDNoDetails].
func (s *Service) Lookup(ctx context.Context, raw string) (string, error) {
	tld := Normalize(raw)
	if tld == "" {
		return "", ErrNoTLDGiven
	}

	list, _ := s.store.List()
	if len(list) == 0 {
		s.Refresh(ctx, DatasetList)
		list, _ = s.store.List()
	}

	if !listContains(list, tld) {
		return "", fmt.Errorf("%w: %s", ErrTLDNotRegistered, tld)
	}

	records, _ := s.store.Records()
	if len(records) == 0 {
		s.Refresh(ctx, DatasetRecords)
		records, _ = s.store.Records()
	}

	record := records[tld]
	if len(record) == 0 {
		return "", fmt.Errorf("%w: %s", ErrTLDNoDetails, tld)
	}

	return s.renderRecord(record), nil
}

// listContains reports whether the suffix list contains the token
// itself or its IDNA (punycode) transliteration.
func listContains(list []string, tld string) bool {
	ascii, err := idna.ToASCII(tld)
	for _, name := range list {
		if name == tld {
			return true
		}
		if err == nil && name == ascii {
			return true
		}
	}
	return false
}

// renderRecord joins a record's fields into "Field: value" segments
// separated by " | ", with notes moved last, truncated to the
// transport budget.
func (s *Service) renderRecord(record Record) string {
	items := make([]string, 0, len(record))
	for _, f := range orderFields(record) {
		if f.Value == "" {
			continue
		}
		items = append(items, f.Name+": "+f.Value)
	}

	message := strings.Join(items, " | ")
	usable, excess := SendableSplit(message, s.maxMessageLen)
	if excess != "" {
		message = usable + ellipsisMarker
	}
	return message
}

// orderFields moves fields whose name starts with "Notes" or
// "Comments" to the end. This is a stable partition, not a sort: the
// relative order among the remaining fields is untouched.
func orderFields(record Record) Record {
	ordered := make(Record, 0, len(record))
	var trailing Record
	for _, f := range record {
		if strings.HasPrefix(f.Name, "Notes") || strings.HasPrefix(f.Name, "Comments") {
			trailing = append(trailing, f)
			continue
		}
		ordered = append(ordered, f)
	}
	return append(ordered, trailing...)
}
