// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package registrar

import (
	"errors"
	"fmt"
	"strings"
)

const maxErrorBody = 512

// TransportError is a network, timeout or non-2xx HTTP failure.
type TransportError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("registrar transport error: %v", e.Err)
	}
	return fmt.Sprintf("registrar returned HTTP %d: %s", e.StatusCode, e.Body)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func newHTTPError(status int, body []byte) *TransportError {
	b := string(body)
	if len(b) > maxErrorBody {
		b = b[:maxErrorBody]
	}
	return &TransportError{StatusCode: status, Body: b}
}

// APIError is a reply carrying a non-zero <code>.
type APIError struct {
	Code        int
	Description string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("registrar error %d: %s", e.Code, e.Description)
}

type Category string

const (
	CategoryAuthFailed        Category = "authentication_failed"
	CategoryContractNotSigned Category = "contract_not_signed"
	CategoryRateLimited       Category = "rate_limit_exceeded"
	CategoryDomainTaken       Category = "domain_already_registered"
	CategoryInvalidPeriod     Category = "invalid_period"
	CategoryTransport         Category = "transport"
	CategoryOther             Category = "other"
)

// Classification is what gets stored on a failed purchase and shown to the operator.
type Classification struct {
	Code        int
	Category    Category
	ErrorCode   string
	Message     string
	Remediation string
	Retryable   bool
}

var codeTable = map[int]Classification{
	196: {
		Category:    CategoryAuthFailed,
		ErrorCode:   "AUTH_FAILED",
		Message:     "Usuario o contraseña incorrectos",
		Remediation: "Revisa las credenciales del registrador configuradas en el servicio.",
	},
	309: {
		Category:    CategoryContractNotSigned,
		ErrorCode:   "CONTRACT_NOT_SIGNED",
		Message:     "Debes firmar el último contrato",
		Remediation: "Firma el contrato vigente en el panel del registrador y vuelve a intentarlo.",
	},
	399: {
		Category:    CategoryRateLimited,
		ErrorCode:   "RATE_LIMIT_EXCEEDED",
		Message:     "Demasiadas solicitudes al registrador",
		Remediation: "Espera unos minutos antes de reintentar.",
		Retryable:   true,
	},
	4005: {
		Category:    CategoryRateLimited,
		ErrorCode:   "RATE_LIMIT_EXCEEDED",
		Message:     "Demasiadas solicitudes al registrador",
		Remediation: "Espera unos minutos antes de reintentar.",
		Retryable:   true,
	},
	346: {
		Category:    CategoryDomainTaken,
		ErrorCode:   "DOMAIN_ALREADY_REGISTERED",
		Message:     "El dominio ya está registrado",
		Remediation: "Elige otro nombre o solicita una transferencia con el código de autorización.",
	},
	311: {
		Category:    CategoryInvalidPeriod,
		ErrorCode:   "INVALID_PERIOD",
		Message:     "Periodo de registro inválido",
		Remediation: "Usa un periodo de registro permitido para la extensión.",
	},
	366: {
		Category:    CategoryInvalidPeriod,
		ErrorCode:   "INVALID_PERIOD",
		Message:     "Periodo de registro inválido",
		Remediation: "Usa un periodo de registro permitido para la extensión.",
	},
}

// descriptionFallback is consulted only for codes missing from codeTable.
// Descriptions are not a stable contract, so this is a last resort.
var descriptionFallback = []struct {
	substr string
	code   int
}{
	{"contract", 309},
	{"authentication", 196},
	{"password", 196},
	{"rate limit", 399},
	{"too many", 399},
	{"already registered", 346},
	{"period", 311},
}

// Classify maps an error returned by the client to a user facing category.
func Classify(err error) Classification {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if c, ok := codeTable[apiErr.Code]; ok {
			c.Code = apiErr.Code
			return c
		}

		desc := strings.ToLower(apiErr.Description)
		for _, f := range descriptionFallback {
			if strings.Contains(desc, f.substr) {
				c := codeTable[f.code]
				c.Code = apiErr.Code
				return c
			}
		}

		return Classification{
			Code:        apiErr.Code,
			Category:    CategoryOther,
			ErrorCode:   "UNKNOWN",
			Message:     apiErr.Description,
			Remediation: "Contacta a soporte con el código de error.",
		}
	}

	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return Classification{
			Category:    CategoryTransport,
			ErrorCode:   "REGISTRAR_UNAVAILABLE",
			Message:     "No fue posible comunicarse con el registrador",
			Remediation: "Intenta de nuevo en unos minutos.",
			Retryable:   true,
		}
	}

	msg := "error desconocido"
	if err != nil {
		msg = err.Error()
	}

	return Classification{
		Category:    CategoryOther,
		ErrorCode:   "UNKNOWN",
		Message:     msg,
		Remediation: "Contacta a soporte con el código de error.",
	}
}

// Temporary reports whether repeating the request may succeed.
func (e *TransportError) Temporary() bool {
	return e.Err != nil || e.StatusCode >= 500 || e.StatusCode == 429
}

func isRetryable(err error) bool {
	var transportErr *TransportError
	return errors.As(err, &transportErr) && transportErr.Temporary()
}
