// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	httptypes "github.com/canonical/storefront-service/internal/http/types"
)

// apiClient talks to the storefront HTTP API and unwraps the response envelope.
type apiClient struct {
	http *resty.Client
}

func newAPIClient(ctx context.Context) (*apiClient, error) {
	token := accessToken
	if token == "" && clientID != "" {
		t, err := fetchToken(ctx)
		if err != nil {
			return nil, err
		}
		token = t
	}

	endpoint := strings.TrimSuffix(apiURL, "/")
	if !strings.HasPrefix(endpoint, "http") {
		endpoint = "http://" + endpoint
	}

	c := resty.New().
		SetBaseURL(endpoint).
		SetTimeout(60 * time.Second).
		SetHeader("Accept", "application/json")

	if token != "" {
		c.SetAuthToken(token)
	}

	return &apiClient{http: c}, nil
}

// do sends the request and decodes the data field of the envelope into out.
// The returned string is the server's message.
func (c *apiClient) do(ctx context.Context, method, path string, body, out any) (string, error) {
	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}

	if resp.IsError() {
		var apiErr httptypes.ErrorResponse
		if json.Unmarshal(resp.Body(), &apiErr) == nil && apiErr.Message != "" {
			return "", fmt.Errorf("api error (status %d): %s", resp.StatusCode(), apiErr.Message)
		}
		return "", fmt.Errorf("api error (status %d): %s", resp.StatusCode(), resp.String())
	}

	envelope := struct {
		Data    json.RawMessage `json:"data"`
		Message string          `json:"message"`
	}{}
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if out != nil && len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return "", fmt.Errorf("failed to unmarshal response data: %w", err)
		}
	}

	return envelope.Message, nil
}
