// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notifications

import (
	"bytes"
	"html/template"
)

type StoreReady struct {
	TenantName   string
	Domain       string
	DashboardURL string
}

type OrderPaid struct {
	TenantName   string
	OrderID      string
	CustomerName string
	Amount       string
	DashboardURL string
}

var (
	storeReadyTemplate = template.Must(template.New("store_ready").Parse(`<!DOCTYPE html>
<html lang="es">
<body style="font-family: Arial, sans-serif; color: #111827;">
  <h1>¡Tu tienda {{ .TenantName }} está lista!</h1>
  <p>Tu dominio <strong>{{ .Domain }}</strong> ya apunta a tu tienda y está disponible en
    <a href="https://{{ .Domain }}">https://{{ .Domain }}</a>.</p>
  {{ if .DashboardURL }}<p>Administra tu tienda desde el <a href="{{ .DashboardURL }}">panel</a>.</p>{{ end }}
</body>
</html>`))

	orderPaidTemplate = template.Must(template.New("order_paid").Parse(`<!DOCTYPE html>
<html lang="es">
<body style="font-family: Arial, sans-serif; color: #111827;">
  <h1>Nuevo pedido pagado en {{ .TenantName }}</h1>
  <p>El pedido <strong>{{ .OrderID }}</strong>{{ if .CustomerName }} de {{ .CustomerName }}{{ end }} fue pagado por {{ .Amount }}.</p>
  {{ if .DashboardURL }}<p>Revisa los detalles en el <a href="{{ .DashboardURL }}">panel</a>.</p>{{ end }}
</body>
</html>`))
)

func render(t *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
