// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

const (
	eventSystemStartup           = "sys_startup"
	eventSystemShutdown          = "sys_shutdown"
	eventAuthzFailure            = "authz_fail"
	eventWebhookSignatureFailure = "webhook_signature_fail"
	eventWebhookUnverified       = "webhook_unverified"
)

var _ SecurityLoggerInterface = (*SecurityLogger)(nil)

type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info("system startup", zap.String("event", eventSystemStartup))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info("system shutdown", zap.String("event", eventSystemShutdown))
}

func (s *SecurityLogger) AuthzFailure(user, resource string) {
	s.l.Warn(
		"authorization failure",
		zap.String("event", eventAuthzFailure+":"+user+","+resource),
		zap.String("user", user),
		zap.String("resource", resource),
	)
}

func (s *SecurityLogger) WebhookSignatureFailure(requestID, reason string) {
	s.l.Warn(
		"webhook signature rejected",
		zap.String("event", eventWebhookSignatureFailure),
		zap.String("request_id", requestID),
		zap.String("reason", reason),
	)
}

// WebhookUnverified records a webhook accepted without signature verification.
func (s *SecurityLogger) WebhookUnverified(requestID, reason string) {
	s.l.Warn(
		"webhook processed without verification",
		zap.String("event", eventWebhookUnverified),
		zap.String("request_id", requestID),
		zap.String("reason", reason),
	)
}
