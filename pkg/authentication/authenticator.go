// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"

	"github.com/canonical/storefront-service/internal/logging"
	"github.com/canonical/storefront-service/internal/monitoring"
	"github.com/canonical/storefront-service/internal/tracing"
)

// NewJWTAuthenticator builds the token verifier for the API, from the JWKS URL
// when given and from OIDC discovery otherwise.
func NewJWTAuthenticator(
	ctx context.Context,
	issuer string,
	jwksURL string,
	adminSubjects []string,
	requiredScope string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) (TokenVerifierInterface, error) {
	if issuer == "" {
		return nil, fmt.Errorf("issuer is required for JWT authentication")
	}

	if len(adminSubjects) == 0 && requiredScope == "" {
		return nil, fmt.Errorf("no access policy configured, set admin subjects or a required scope")
	}

	if jwksURL != "" {
		logger.Infof("Using manual JWKS URL: %s", jwksURL)
		return newJWTVerifier(jwksVerifier(ctx, issuer, jwksURL), adminSubjects, requiredScope, tracer, monitor, logger), nil
	}

	logger.Infof("Using OIDC discovery for issuer: %s", issuer)
	v, err := discoveredVerifier(ctx, issuer)
	if err != nil {
		return nil, err
	}

	return newJWTVerifier(v, adminSubjects, requiredScope, tracer, monitor, logger), nil
}
