// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package domains normalizes customer supplied domain names and applies the
// extension allow-list before anything is sent to the registrar.
package domains

import (
	"fmt"
	"strings"

	"golang.org/x/net/idna"
)

const maxLabelLength = 63

// allowed extensions, longest first so com.mx wins over mx
var allowedTLDs = []string{"com.mx", "com", "info", "mx", "net", "store", "online", "xyz", "site", "shop"}

var profile = idna.New(
	idna.MapForLookup(),
	idna.BidiRule(),
	idna.StrictDomainName(true),
)

type InvalidDomainError struct {
	Domain string
	Reason string
}

func (e *InvalidDomainError) Error() string {
	return fmt.Sprintf("invalid domain %q: %s", e.Domain, e.Reason)
}

type InvalidTLDError struct {
	Domain    string
	Extension string
}

func (e *InvalidTLDError) Error() string {
	return fmt.Sprintf("extension %q of %q is not supported, allowed: %s", e.Extension, e.Domain, strings.Join(allowedTLDs, ", "))
}

// AllowedTLDs returns a copy of the extension allow-list.
func AllowedTLDs() []string {
	out := make([]string, len(allowedTLDs))
	copy(out, allowedTLDs)
	return out
}

// Normalize lowercases raw and strips whitespace, scheme, path, a leading
// www. and trailing slashes or dots. Normalize(Normalize(x)) == Normalize(x).
func Normalize(raw string) string {
	d := strings.ToLower(strings.TrimSpace(raw))

	for {
		prev := d

		d = strings.TrimPrefix(d, "https://")
		d = strings.TrimPrefix(d, "http://")

		if i := strings.IndexAny(d, "/?#"); i >= 0 {
			d = d[:i]
		}

		d = strings.TrimRight(d, "/.")
		d = strings.TrimPrefix(d, "www.")
		d = strings.TrimSpace(d)

		if d == prev {
			return d
		}
	}
}

// Split separates a normalized domain into its registrable label and its
// allow-listed extension.
func Split(domain string) (string, string, error) {
	for _, tld := range allowedTLDs {
		suffix := "." + tld
		if strings.HasSuffix(domain, suffix) {
			label := strings.TrimSuffix(domain, suffix)
			if label == "" {
				return "", "", &InvalidDomainError{Domain: domain, Reason: "missing name"}
			}
			return label, tld, nil
		}
	}

	ext := domain
	if i := strings.LastIndex(domain, "."); i >= 0 {
		ext = domain[i+1:]
	}

	return "", "", &InvalidTLDError{Domain: domain, Extension: ext}
}

// Validate checks a normalized domain. The extension check runs first so that
// unsupported extensions always surface as InvalidTLDError.
func Validate(domain string) error {
	if domain == "" {
		return &InvalidDomainError{Domain: domain, Reason: "empty"}
	}

	if !strings.Contains(domain, ".") {
		return &InvalidTLDError{Domain: domain, Extension: ""}
	}

	label, _, err := Split(domain)
	if err != nil {
		return err
	}

	if strings.Contains(label, ".") {
		return &InvalidDomainError{Domain: domain, Reason: "subdomains cannot be registered"}
	}

	if len(label) > maxLabelLength {
		return &InvalidDomainError{Domain: domain, Reason: "name is longer than 63 characters"}
	}

	if _, err := profile.ToASCII(domain); err != nil {
		return &InvalidDomainError{Domain: domain, Reason: err.Error()}
	}

	return nil
}

// Parse normalizes and validates raw, returning the domain and its parts.
func Parse(raw string) (domain, label, ext string, err error) {
	domain = Normalize(raw)

	if err = Validate(domain); err != nil {
		return domain, "", "", err
	}

	label, ext, err = Split(domain)
	return domain, label, ext, err
}
