// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package tldinfo

import "unicode/utf8"

// ellipsisMarker is appended to a reply line that had to be truncated
// to fit the transport budget.
const ellipsisMarker = " […]"

// SendableSplit splits message into a usable prefix of at most max
// bytes and the excess remainder. The split point is moved back as
// needed so it never lands inside a multi-byte UTF-8 sequence.
//
// A non-positive max disables the budget: the whole message is
// usable.
func SendableSplit(message string, max int) (usable, excess string) {
	if max <= 0 || len(message) <= max {
		return message, ""
	}

	cut := max
	for cut > 0 && !utf8.RuneStart(message[cut]) {
		cut--
	}
	return message[:cut], message[cut:]
}
