// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notifications

import (
	"context"

	"github.com/resend/resend-go/v2"
)

type SenderInterface interface {
	SendStoreReady(ctx context.Context, to string, msg StoreReady) error
	SendOrderPaid(ctx context.Context, to string, msg OrderPaid) error
}

// EmailsAPI is the subset of the Resend emails service in use.
type EmailsAPI interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}
