// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"
)

// Verify checks an x-signature header of the form "ts=<t>,v1=<hex>" against
// the HMAC-SHA256 of the manifest "id:<resource>;request-id:<request>;ts:<t>;".
// A missing timestamp, signature or request id never verifies.
func Verify(signatureHeader, requestID, resourceID, secret string) bool {
	ts, v1 := parseSignature(signatureHeader)
	if ts == "" || v1 == "" || requestID == "" || secret == "" {
		return false
	}

	expected := Sign(requestID, resourceID, ts, secret)

	return subtle.ConstantTimeCompare([]byte(expected), []byte(strings.ToLower(v1))) == 1
}

// Sign returns the lowercase hex v1 value for a delivery.
func Sign(requestID, resourceID, ts, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(manifest(requestID, resourceID, ts)))

	return hex.EncodeToString(mac.Sum(nil))
}

func manifest(requestID, resourceID, ts string) string {
	var b strings.Builder

	b.WriteString("id:" + resourceID + ";")
	b.WriteString("request-id:" + requestID + ";")
	b.WriteString("ts:" + ts + ";")

	return b.String()
}

func parseSignature(header string) (ts, v1 string) {
	for _, part := range strings.Split(header, ",") {
		k, v, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}

		switch strings.TrimSpace(k) {
		case "ts":
			ts = strings.TrimSpace(v)
		case "v1":
			v1 = strings.TrimSpace(v)
		}
	}

	return ts, v1
}
