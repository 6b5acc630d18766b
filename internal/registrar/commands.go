// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package registrar

import (
	"context"
	"fmt"
)

const (
	cmdCheckDomain    = "checkDomainRequest"
	cmdRetrievePrice  = "retrievePriceDomainRequest"
	cmdCreateDomain   = "createDomainRequest"
	cmdTransferDomain = "transferDomainRequest"
)

type Operation string

const (
	OperationCreate   Operation = "create"
	OperationTransfer Operation = "transfer"
	OperationRenew    Operation = "renew"
)

type Availability struct {
	Domain    string `json:"domain"`
	Available bool   `json:"available"`
	Status    string `json:"status"`
}

type PurchaseRequest struct {
	Label     string
	Extension string
	// ContactHandle and NSGroup default to the configured values when empty.
	ContactHandle string
	NSGroup       string
	Period        int
}

type TransferRequest struct {
	Label         string
	Extension     string
	AuthCode      string
	ContactHandle string
	NSGroup       string
}

type PurchaseResult struct {
	DomainID int64
	Status   string
	Raw      map[string]any
}

func domainParams(label, ext string) Params {
	return Params{"name": label, "extension": ext}
}

// CheckAvailability maps the reply status "free" to available, anything else to taken.
func (c *Client) CheckAvailability(ctx context.Context, label, ext string) (*Availability, error) {
	ctx, span := c.tracer.Start(ctx, "registrar.Client.CheckAvailability")
	defer span.End()

	resp, err := c.read(ctx, cmdCheckDomain, Params{
		"domains": []Params{domainParams(label, ext)},
	})
	if err != nil {
		return nil, err
	}

	a := &Availability{Domain: label + "." + ext}
	if status := resp.Data.Find("status"); status != nil {
		a.Status = status.Text
	}
	a.Available = a.Status == "free"

	return a, nil
}

// QuotePrice returns the reseller price in USD, 0 when no known shape matches.
func (c *Client) QuotePrice(ctx context.Context, label, ext string, op Operation) (float64, error) {
	ctx, span := c.tracer.Start(ctx, "registrar.Client.QuotePrice")
	defer span.End()

	resp, err := c.read(ctx, cmdRetrievePrice, Params{
		"domain":    domainParams(label, ext),
		"operation": string(op),
		"period":    1,
	})
	if err != nil {
		return 0, err
	}

	return ExtractPrice(resp.Data), nil
}

// Purchase registers the domain with every contact role set to the platform
// handle, autorenew off and nameservers delegated through the ns group.
func (c *Client) Purchase(ctx context.Context, req PurchaseRequest) (*PurchaseResult, error) {
	ctx, span := c.tracer.Start(ctx, "registrar.Client.Purchase")
	defer span.End()

	period := req.Period
	if period <= 0 {
		period = 1
	}

	params := c.handles(req.ContactHandle)
	params["domain"] = domainParams(req.Label, req.Extension)
	params["period"] = period
	params["autorenew"] = "off"
	params["nsGroup"] = c.orDefault(req.NSGroup, c.nsGroup)

	resp, err := c.write(ctx, cmdCreateDomain, params)
	if err != nil {
		return nil, err
	}

	return purchaseResult(resp)
}

// Transfer moves an existing registration in using its auth code.
func (c *Client) Transfer(ctx context.Context, req TransferRequest) (*PurchaseResult, error) {
	ctx, span := c.tracer.Start(ctx, "registrar.Client.Transfer")
	defer span.End()

	params := c.handles(req.ContactHandle)
	params["domain"] = domainParams(req.Label, req.Extension)
	params["period"] = 1
	params["authCode"] = req.AuthCode
	params["autorenew"] = "off"
	params["nsGroup"] = c.orDefault(req.NSGroup, c.nsGroup)

	resp, err := c.write(ctx, cmdTransferDomain, params)
	if err != nil {
		return nil, err
	}

	return purchaseResult(resp)
}

// ContactHandle is the platform handle used for new registrations.
func (c *Client) ContactHandle() string {
	return c.contactHandle
}

func (c *Client) handles(handle string) Params {
	h := c.orDefault(handle, c.contactHandle)
	return Params{
		"ownerHandle":   h,
		"adminHandle":   h,
		"techHandle":    h,
		"billingHandle": h,
	}
}

func (c *Client) orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func purchaseResult(resp *Response) (*PurchaseResult, error) {
	idNode := resp.Data.Child("id")
	if idNode == nil {
		idNode = resp.Data.Find("id")
	}

	id, ok := idNode.Int()
	if !ok {
		return nil, &TransportError{Err: fmt.Errorf("reply without domain id")}
	}

	r := &PurchaseResult{DomainID: id, Raw: resp.Data.Map()}
	if status := resp.Data.Child("status"); status != nil {
		r.Status = status.Text
	}

	return r, nil
}
