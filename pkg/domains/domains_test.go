// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package domains

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"HTTPS://WWW.Example.COM/", "example.com"},
		{"  example.com.mx  ", "example.com.mx"},
		{"WWW.Example.store/", "example.store"},
		{"http://shop.example.net/path?q=1", "shop.example.net"},
		{"example.com.", "example.com"},
		{"https://www.www.example.com//", "example.com"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range testCases {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	inputs := []string{
		"HTTPS://WWW.Example.COM/",
		"https://https://www.example.com",
		"www.https://example.com",
		" WWW. example .com ",
		"example.com/./",
		"..",
		"http://",
		"ñandú.mx",
		"https://www.tienda.com.mx/productos/?page=2#top",
	}

	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}

func TestSplit(t *testing.T) {
	testCases := []struct {
		domain string
		label  string
		ext    string
		tldErr bool
	}{
		{"example.com.mx", "example", "com.mx", false},
		{"example.mx", "example", "mx", false},
		{"example.store", "example", "store", false},
		{"example.org", "", "", true},
		{"example.co", "", "", true},
	}

	for _, tt := range testCases {
		t.Run(tt.domain, func(t *testing.T) {
			label, ext, err := Split(tt.domain)
			if tt.tldErr {
				var tldErr *InvalidTLDError
				require.True(t, errors.As(err, &tldErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.label, label)
			assert.Equal(t, tt.ext, ext)
		})
	}
}

func TestValidate(t *testing.T) {
	long := ""
	for i := 0; i < 64; i++ {
		long += "a"
	}

	testCases := []struct {
		name      string
		domain    string
		tldErr    bool
		domainErr bool
	}{
		{name: "valid", domain: "example.com"},
		{name: "valid second level", domain: "mi-tienda.com.mx"},
		{name: "valid idn", domain: "ñandú.mx"},
		{name: "empty", domain: "", domainErr: true},
		{name: "no extension", domain: "localhost", tldErr: true},
		{name: "unsupported extension", domain: "example.org", tldErr: true},
		{name: "suffix lookalike", domain: "examplecom", tldErr: true},
		{name: "subdomain", domain: "shop.example.com", domainErr: true},
		{name: "label too long", domain: long + ".com", domainErr: true},
		{name: "bad characters", domain: "exa_mple.com", domainErr: true},
		{name: "only extension", domain: ".com", domainErr: true},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.domain)

			var tldErr *InvalidTLDError
			var domainErr *InvalidDomainError

			switch {
			case tt.tldErr:
				assert.True(t, errors.As(err, &tldErr), "expected InvalidTLDError, got %v", err)
			case tt.domainErr:
				assert.True(t, errors.As(err, &domainErr), "expected InvalidDomainError, got %v", err)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestParse(t *testing.T) {
	domain, label, ext, err := Parse("WWW.Example.store/")
	require.NoError(t, err)
	assert.Equal(t, "example.store", domain)
	assert.Equal(t, "example", label)
	assert.Equal(t, "store", ext)

	_, _, _, err = Parse("https://example.io")
	var tldErr *InvalidTLDError
	assert.True(t, errors.As(err, &tldErr))
	assert.Equal(t, "io", tldErr.Extension)
}
