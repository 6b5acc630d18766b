// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/coreos/go-oidc/v3/oidc"

	"github.com/canonical/storefront-service/internal/logging"
	"github.com/canonical/storefront-service/internal/monitoring"
	"github.com/canonical/storefront-service/internal/tracing"
)

type claims struct {
	Subject string   `json:"sub"`
	Scope   string   `json:"scope"`
	Scopes  []string `json:"scp"`
}

func (c claims) hasScope(scope string) bool {
	return slices.Contains(strings.Fields(c.Scope), scope) || slices.Contains(c.Scopes, scope)
}

// JWTVerifier accepts two kinds of callers: subjects listed as admins
// (operators, the CLI client) and users whose token carries the storefront
// scope, whose subject is their kratos identity id.
type JWTVerifier struct {
	verifier      *oidc.IDTokenVerifier
	adminSubjects []string
	requiredScope string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (v *JWTVerifier) VerifyToken(ctx context.Context, rawToken string) (*Principal, error) {
	ctx, span := v.tracer.Start(ctx, "authentication.JWTVerifier.VerifyToken")
	defer span.End()

	token, err := v.verifier.Verify(ctx, rawToken)
	if err != nil {
		return nil, err
	}

	var c claims
	if err := token.Claims(&c); err != nil {
		v.logger.Debugf("Failed to extract claims: %v", err)
		return nil, err
	}

	return v.authorize(c)
}

func (v *JWTVerifier) authorize(c claims) (*Principal, error) {
	if c.Subject == "" {
		return nil, fmt.Errorf("unauthorized: token has no subject")
	}

	if slices.Contains(v.adminSubjects, c.Subject) {
		return &Principal{UserID: c.Subject, Admin: true}, nil
	}

	if v.requiredScope != "" && c.hasScope(v.requiredScope) {
		return &Principal{UserID: c.Subject}, nil
	}

	v.logger.Security().AuthzFailure(c.Subject, "storefront_api")
	return nil, fmt.Errorf("unauthorized: missing required scope or subject not allowed")
}

func newJWTVerifier(
	verifier *oidc.IDTokenVerifier,
	adminSubjects []string,
	requiredScope string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *JWTVerifier {
	v := new(JWTVerifier)

	v.verifier = verifier
	v.adminSubjects = adminSubjects
	v.requiredScope = requiredScope
	v.tracer = tracer
	v.monitor = monitor
	v.logger = logger

	return v
}
