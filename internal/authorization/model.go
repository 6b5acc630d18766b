// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	_ "embed"
	"encoding/json"
	"fmt"

	fga "github.com/openfga/go-sdk"
)

//go:embed model_v0.json
var modelV0 []byte

type AuthorizationModelProvider struct {
	models  map[string][]byte
	version string
}

// GetModel returns the model for the provider's version, nil when unknown.
func (p *AuthorizationModelProvider) GetModel() *fga.AuthorizationModel {
	raw, ok := p.models[p.version]
	if !ok {
		return nil
	}

	model := new(fga.AuthorizationModel)
	if err := json.Unmarshal(raw, model); err != nil {
		panic(fmt.Errorf("embedded authorization model %s is invalid: %w", p.version, err))
	}

	return model
}

func NewAuthorizationModelProvider(version string) *AuthorizationModelProvider {
	return &AuthorizationModelProvider{
		models:  map[string][]byte{"v0": modelV0},
		version: version,
	}
}
