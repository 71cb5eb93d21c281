// Package domain holds domain logic for the auth feature that does not
// depend on persistence or transport.
package domain

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// HandleKind classifies the string a client supplies to identify itself.
type HandleKind int

const (
	// HandleEmail is an email-shaped handle.
	HandleEmail HandleKind = iota
	// HandleOpaque is any other handle.
	HandleOpaque
)

// emailPattern is intentionally loose: one @ separating a non-empty local
// part from a dotted domain. Strict validation happens at the transport
// boundary via binding tags.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ClassifyHandle reports whether the handle is email-shaped or opaque.
// All normalization dispatches on this single classification.
func ClassifyHandle(handle string) HandleKind {
	if emailPattern.MatchString(strings.TrimSpace(handle)) {
		return HandleEmail
	}
	return HandleOpaque
}

// NormalizeEmail trims and NFKC-normalizes the address and lowercases the
// domain part only. The local part keeps its case.
func NormalizeEmail(email string) string {
	email = norm.NFKC.String(strings.TrimSpace(email))
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	return email[:at+1] + strings.ToLower(email[at+1:])
}

// UsernameFromEmail derives the login handle stored for a user:
// the normalized email, fully lowercased. This projection is computed once
// at registration and never again.
func UsernameFromEmail(email string) string {
	return strings.ToLower(NormalizeEmail(email))
}

// NormalizeHandle prepares a login handle for lookup. Email-shaped input is
// normalized via the email rule and lowercased; opaque input is only
// NFKC-normalized, with no case folding.
func NormalizeHandle(handle string) string {
	if ClassifyHandle(handle) == HandleEmail {
		return UsernameFromEmail(handle)
	}
	return norm.NFKC.String(handle)
}
