// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notifications

import (
	"context"

	"github.com/canonical/storefront-service/internal/logging"
)

var _ SenderInterface = (*NoopSender)(nil)

// NoopSender only logs, used when no email provider is configured.
type NoopSender struct {
	logger logging.LoggerInterface
}

func (s *NoopSender) SendStoreReady(_ context.Context, to string, msg StoreReady) error {
	s.logger.Infof("email disabled, store ready notice for %s to %s not sent", msg.Domain, to)
	return nil
}

func (s *NoopSender) SendOrderPaid(_ context.Context, to string, msg OrderPaid) error {
	s.logger.Infof("email disabled, order %s notice to %s not sent", msg.OrderID, to)
	return nil
}

func NewNoopSender(logger logging.LoggerInterface) *NoopSender {
	return &NoopSender{logger: logger}
}
