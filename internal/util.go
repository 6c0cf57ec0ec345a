/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import (
	"strings"
	"time"
	"unicode"

	"github.com/araddon/dateparse"
)

// ParseDateOrZero returns a parsed time or zero if input is empty or "null".
func ParseDateOrZero(s string) (time.Time, error) {
	if s == "" || s == "null" {
		return time.Time{}, nil
	}
	return dateparse.ParseAny(s)
}

// NormalizeName reduces a raw name to title-cased "First Last" form.
func NormalizeName(s string) string {
	parts := strings.Fields(s)
	if len(parts) == 0 {
		return ""
	}
	first := parts[0]
	last := first
	if len(parts) > 1 {
		last = parts[len(parts)-1]
	}
	firstTitle := titleCase(first)
	lastTitle := titleCase(last)
	if firstTitle == lastTitle {
		return firstTitle
	}
	return firstTitle + " " + lastTitle
}

func titleCase(s string) string {
	r := []rune(strings.ToLower(s))
	return string(unicode.ToUpper(r[0])) + string(r[1:])
}
