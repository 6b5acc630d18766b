// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tasks

type RunnerInterface interface {
	Submit(name string, fn Task) error
}
