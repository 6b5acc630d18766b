// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the error body every endpoint answers with, the shape the
// admin UI expects.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

type Response struct {
	Data    any    `json:"data"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, status int, message string) error {
	return WriteJSON(w, status, ErrorResponse{Status: status, Message: message})
}

func WriteData(w http.ResponseWriter, status int, data any, message string) error {
	return WriteJSON(w, status, Response{Data: data, Message: message, Status: status})
}
