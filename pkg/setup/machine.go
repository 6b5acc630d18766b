// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package setup

import (
	"errors"
	"fmt"

	"github.com/felixgeelhaar/statekit"

	"github.com/canonical/storefront-service/internal/types"
)

var ErrInvalidTransition = errors.New("invalid purchase status transition")

const (
	EventPurchased statekit.EventType = "PURCHASED"
	EventFail      statekit.EventType = "FAIL"
	EventDNSWait   statekit.EventType = "DNS_WAIT"
	EventActivate  statekit.EventType = "ACTIVATE"
)

const guardAllowed statekit.GuardType = "allowed"

var (
	stateProcessing = statekit.StateID(types.PurchaseProcessing)
	statePending    = statekit.StateID(types.PurchasePending)
	stateDNSPending = statekit.StateID(types.PurchaseDNSPending)
	stateActive     = statekit.StateID(types.PurchaseActive)
	stateFailed     = statekit.StateID(types.PurchaseFailed)
)

// Transition returns the status a purchase in from moves to on event.
// Events the machine does not accept in from return ErrInvalidTransition.
//
//	processing --PURCHASED--> pending
//	processing --FAIL-------> failed
//	pending    --FAIL-------> failed
//	pending, dns_pending --DNS_WAIT--> dns_pending
//	pending, dns_pending, active --ACTIVATE--> active
func Transition(from types.PurchaseStatus, event statekit.EventType) (types.PurchaseStatus, error) {
	switch from {
	case types.PurchaseProcessing, types.PurchasePending, types.PurchaseDNSPending, types.PurchaseActive, types.PurchaseFailed:
	default:
		return from, fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, from)
	}

	// the guard only records that some transition accepted the event,
	// self transitions leave the state unchanged
	accepted := false
	allow := func(struct{}, statekit.Event) bool {
		accepted = true
		return true
	}

	machine, err := statekit.NewMachine[struct{}]("domain-purchase").
		WithInitial(statekit.StateID(from)).
		WithGuard(guardAllowed, allow).
		State(stateProcessing).
		On(EventPurchased).Target(statePending).Guard(guardAllowed).
		On(EventFail).Target(stateFailed).Guard(guardAllowed).
		Done().
		State(statePending).
		On(EventDNSWait).Target(stateDNSPending).Guard(guardAllowed).
		On(EventActivate).Target(stateActive).Guard(guardAllowed).
		On(EventFail).Target(stateFailed).Guard(guardAllowed).
		Done().
		State(stateDNSPending).
		On(EventDNSWait).Target(stateDNSPending).Guard(guardAllowed).
		On(EventActivate).Target(stateActive).Guard(guardAllowed).
		Done().
		State(stateActive).
		On(EventActivate).Target(stateActive).Guard(guardAllowed).
		Done().
		State(stateFailed).
		Final().
		Done().
		Build()
	if err != nil {
		return from, fmt.Errorf("%w: %s: %v", ErrInvalidTransition, from, err)
	}

	interp := statekit.NewInterpreter(machine)
	interp.Start()
	interp.Send(statekit.Event{Type: event})

	if !accepted {
		return from, fmt.Errorf("%w: %s on %s", ErrInvalidTransition, from, event)
	}

	return types.PurchaseStatus(interp.State().Value), nil
}
