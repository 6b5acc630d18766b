// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import "context"

// Principal is the authenticated caller. Store owners carry their kratos
// identity id, platform operators and automation are Admin.
type Principal struct {
	UserID string
	Admin  bool
}

type contextKey struct{}

var principalContextKey = contextKey{}

func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalContextKey, p)
}

func PrincipalFrom(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(principalContextKey).(*Principal)
	return p, ok && p != nil
}

// GetUserID retrieves the user ID from the context.
// Returns an empty string and false if no principal is present.
func GetUserID(ctx context.Context) (string, bool) {
	p, ok := PrincipalFrom(ctx)
	if !ok {
		return "", false
	}
	return p.UserID, true
}

// IsAdmin reports whether the caller is a platform operator.
func IsAdmin(ctx context.Context) bool {
	p, ok := PrincipalFrom(ctx)
	return ok && p.Admin
}
