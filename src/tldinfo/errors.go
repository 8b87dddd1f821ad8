// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package tldinfo

import "errors"

// Sentinel errors for the tldinfo package.
var (
	// ErrNoTLDGiven is returned when a lookup is attempted without
	// a top-level domain to search.
	ErrNoTLDGiven = errors.New("tldinfo: no top-level domain given")

	// ErrTLDNotRegistered is returned when the normalized token is not
	// present in IANA's list of valid TLDs, neither as-is nor in its
	// IDNA (punycode) form.
	ErrTLDNotRegistered = errors.New("tldinfo: not in IANA's list of valid TLDs")

	// ErrTLDNoDetails is returned when a TLD is registered but no
	// structured record about it could be found.
	ErrTLDNoDetails = errors.New("tldinfo: no details available")

	// ErrFetchFailed is returned when fetching or decoding one of the
	// remote datasets fails. The refresh machinery treats it as
	// transient: it is logged, the cached dataset stays untouched, and
	// the next scheduled or triggered opportunity retries.
	ErrFetchFailed = errors.New("tldinfo: fetching remote dataset failed")

	// ErrUnknownDataset indicates a refresh was requested for a dataset
	// name that does not exist. This is a programming error; the
	// refresh machinery logs it and carries on.
	ErrUnknownDataset = errors.New("tldinfo: unknown dataset")

	// ErrNothingToExport is returned by [Service.ExportXLSX] when the
	// record cache is empty.
	ErrNothingToExport = errors.New("tldinfo: no cached records to export")
)
