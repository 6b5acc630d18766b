// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package payments

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

const (
	PaymentApproved = "approved"

	PreapprovalAuthorized = "authorized"
	PreapprovalCancelled  = "cancelled"
	PreapprovalPaused     = "paused"
	PreapprovalPending    = "pending"
)

// ID accepts both numeric and string identifiers, the processor uses both.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("invalid id %s: %w", b, err)
	}
	*id = ID(n.String())
	return nil
}

func (id ID) String() string {
	return string(id)
}

type Payment struct {
	ID                ID             `json:"id"`
	Status            string         `json:"status"`
	StatusDetail      string         `json:"status_detail,omitempty"`
	ExternalReference string         `json:"external_reference"`
	PreapprovalID     string         `json:"preapproval_id,omitempty"`
	TransactionAmount float64        `json:"transaction_amount"`
	CurrencyID        string         `json:"currency_id,omitempty"`
	Metadata          map[string]any `json:"metadata,omitempty"`
}

func (p *Payment) Approved() bool {
	return p.Status == PaymentApproved
}

// Subscription returns the preapproval a recurring charge belongs to, looking
// at the metadata when the top level field is absent.
func (p *Payment) Subscription() string {
	if p.PreapprovalID != "" {
		return p.PreapprovalID
	}
	return p.MetadataString("preapproval_id")
}

// MetadataString reads a metadata value as a string, numbers included.
func (p *Payment) MetadataString(key string) string {
	switch v := p.Metadata[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

func (p *Payment) MetadataBool(key string) bool {
	switch v := p.Metadata[key].(type) {
	case bool:
		return v
	case string:
		b, _ := strconv.ParseBool(v)
		return b
	default:
		return false
	}
}

type AutoRecurring struct {
	Frequency         int     `json:"frequency"`
	FrequencyType     string  `json:"frequency_type"`
	TransactionAmount float64 `json:"transaction_amount"`
	CurrencyID        string  `json:"currency_id"`
}

type Preapproval struct {
	ID                string        `json:"id"`
	Status            string        `json:"status"`
	PayerEmail        string        `json:"payer_email,omitempty"`
	ExternalReference string        `json:"external_reference,omitempty"`
	InitPoint         string        `json:"init_point,omitempty"`
	AutoRecurring     AutoRecurring `json:"auto_recurring"`
}

type PreapprovalRequest struct {
	Reason            string        `json:"reason"`
	ExternalReference string        `json:"external_reference"`
	PayerEmail        string        `json:"payer_email"`
	BackURL           string        `json:"back_url"`
	Status            string        `json:"status"`
	AutoRecurring     AutoRecurring `json:"auto_recurring"`
}
