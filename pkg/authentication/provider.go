// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"
	"net/http"

	"github.com/coreos/go-oidc/v3/oidc"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

var (
	otelHTTPClient = http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}

	// access tokens are not ID tokens, the audience is the API not a client
	verifierConfig = &oidc.Config{SkipClientIDCheck: true}
)

// discoveredVerifier uses the issuer's well-known configuration.
func discoveredVerifier(ctx context.Context, issuer string) (*oidc.IDTokenVerifier, error) {
	ctx = oidc.ClientContext(ctx, &otelHTTPClient)

	provider, err := oidc.NewProvider(ctx, issuer)
	if err != nil {
		return nil, fmt.Errorf("failed to create OIDC provider: %v", err)
	}

	return provider.Verifier(verifierConfig), nil
}

// jwksVerifier skips discovery, for issuers whose keys are served from a
// different host than the issuer URL.
func jwksVerifier(ctx context.Context, issuer, jwksURL string) *oidc.IDTokenVerifier {
	ctx = oidc.ClientContext(ctx, &otelHTTPClient)

	return oidc.NewVerifier(issuer, oidc.NewRemoteKeySet(ctx, jwksURL), verifierConfig)
}
