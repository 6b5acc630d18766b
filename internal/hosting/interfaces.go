// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package hosting

import (
	"context"
)

type ClientInterface interface {
	GetDomain(ctx context.Context, domain string) (*Domain, error)
	AddDomain(ctx context.Context, domain string) error
	GetDomainConfig(ctx context.Context, domain string) (*DomainConfig, error)
}
