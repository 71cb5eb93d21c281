// Package domain holds domain logic for the blog feature that does not
// depend on persistence or transport.
package domain

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeName produces the canonical form used for uniqueness checks on
// category names, tag names and post titles: NFKC-normalized, trimmed and
// lowercased.
func NormalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(norm.NFKC.String(s)))
}
