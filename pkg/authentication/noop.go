// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"strings"
)

const noopAdminPrefix = "admin:"

type NoopVerifier struct{}

// NewNoopVerifier returns a verifier for local development, the bearer token
// is taken as the user id and an "admin:" prefix marks an operator.
func NewNoopVerifier() *NoopVerifier {
	return &NoopVerifier{}
}

func (n *NoopVerifier) VerifyToken(ctx context.Context, rawToken string) (*Principal, error) {
	if id, ok := strings.CutPrefix(rawToken, noopAdminPrefix); ok {
		return &Principal{UserID: id, Admin: true}, nil
	}
	return &Principal{UserID: rawToken}, nil
}

var _ TokenVerifierInterface = (*NoopVerifier)(nil)
