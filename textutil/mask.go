/*
Copyright © 2025 Acronis International GmbH.

Released under MIT license.
*/

// Package textutil contains helpers for presenting personal data and times to end users.
package textutil

import (
	"math"
	"strings"
)

// MaskMobile hides the 4th to 7th characters of a mobile number: "13337217033" becomes "133****7033".
// Strings of 7 characters or less are returned as is.
func MaskMobile(mobile string) string {
	runes := []rune(mobile)
	if len(runes) <= 7 {
		return mobile
	}
	return string(runes[:3]) + "****" + string(runes[7:])
}

// MaskEmail hides the local part of an e-mail address except its first 4 characters
// (first character if the local part is 4 characters or shorter).
// Strings without '@' after the first character are returned as is.
func MaskEmail(email string) string {
	at := strings.IndexByte(email, '@')
	if at <= 0 {
		return email
	}
	local := []rune(email[:at])
	keep := 1
	if len(local) > 4 {
		keep = 4
	}
	return string(local[:keep]) + strings.Repeat("*", len(local)-keep) + email[at:]
}

// ByteLen estimates the display width of s: characters beyond Latin-1 count as one, others as a half.
// The result is rounded down.
func ByteLen(s string) int {
	var n float64
	for _, r := range s {
		if r > 0xff {
			n++
		} else {
			n += 0.5
		}
	}
	return int(math.Floor(n))
}
