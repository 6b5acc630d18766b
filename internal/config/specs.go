// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string  `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string  `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool    `envconfig:"tracing_enabled" default:"true"`
	TraceSampleRatio float64 `envconfig:"trace_sample_ratio" default:"1"`

	KratosAdminURL string `envconfig:"kratos_admin_url" required:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port        int      `envconfig:"port" default:"8080"`
	CORSOrigins []string `envconfig:"cors_origins"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	AuthenticationEnabled bool     `envconfig:"authentication_enabled" default:"true"`
	OIDCIssuer            string   `envconfig:"oidc_issuer"`
	OIDCJWKSURL           string   `envconfig:"oidc_jwks_url"`
	AllowedSubjects       []string `envconfig:"allowed_subjects"`
	RequiredScope         string   `envconfig:"required_scope"`

	AuthorizationEnabled bool   `envconfig:"authorization_enabled" default:"false"`
	OpenfgaApiScheme     string `envconfig:"openfga_api_scheme" default:""`
	OpenfgaApiHost       string `envconfig:"openfga_api_host"`
	OpenfgaApiToken      string `envconfig:"openfga_api_token"`
	OpenfgaStoreId       string `envconfig:"openfga_store_id"`
	OpenfgaModelId       string `envconfig:"openfga_authorization_model_id" default:""`

	RegistrarURL           string        `envconfig:"registrar_url" default:"https://api.openprovider.eu"`
	RegistrarUsername      string        `envconfig:"registrar_username"`
	RegistrarPassword      string        `envconfig:"registrar_password"`
	RegistrarContactHandle string        `envconfig:"registrar_contact_handle"`
	RegistrarNSGroup       string        `envconfig:"registrar_ns_group" default:"hosting"`
	RegistrarTimeout       time.Duration `envconfig:"registrar_timeout" default:"8s"`
	RegistrarRetries       int           `envconfig:"registrar_retries" default:"3"`

	PriceMarkup       float64 `envconfig:"price_markup" default:"1.45"`
	PriceFXRate       float64 `envconfig:"price_fx_rate" default:"20"`
	PriceCurrency     string  `envconfig:"price_currency" default:"MXN"`
	PriceLocale       string  `envconfig:"price_locale" default:"es-MX"`
	AnnualPlanMinimum float64 `envconfig:"annual_plan_minimum" default:"1000"`

	HostingAPIURL    string        `envconfig:"hosting_api_url" default:"https://api.vercel.com"`
	HostingToken     string        `envconfig:"hosting_token"`
	HostingTeamID    string        `envconfig:"hosting_team_id"`
	HostingProjectID string        `envconfig:"hosting_project_id"`
	HostingTimeout   time.Duration `envconfig:"hosting_timeout" default:"5s"`

	PaymentsAPIURL        string        `envconfig:"payments_api_url" default:"https://api.mercadopago.com"`
	PaymentsAccessToken   string        `envconfig:"payments_access_token"`
	PaymentsBackURL       string        `envconfig:"payments_back_url"`
	PaymentsTimeout       time.Duration `envconfig:"payments_timeout" default:"5s"`
	WebhookSecret         string        `envconfig:"webhook_secret"`
	WebhookInsecureMode   bool          `envconfig:"webhook_insecure_mode" default:"false"`
	BasicPlanMonthlyPrice float64       `envconfig:"basic_plan_monthly_price" default:"299"`

	ResendAPIKey  string `envconfig:"resend_api_key"`
	MailFromName  string `envconfig:"mail_from_name" default:"Tu Tienda"`
	MailFromEmail string `envconfig:"mail_from_email" default:"no-reply@example.com"`
	DashboardURL  string `envconfig:"dashboard_url" default:"http://localhost:3000"`

	RedisAddr     string `envconfig:"redis_addr"`
	RedisPassword string `envconfig:"redis_password"`
	RedisDB       int    `envconfig:"redis_db" default:"0"`

	PurchaseLockTTL     time.Duration `envconfig:"purchase_lock_ttl" default:"2m"`
	TenantHostCacheTTL  time.Duration `envconfig:"tenant_host_cache_ttl" default:"5m"`
	SetupRecheckEnabled bool          `envconfig:"setup_recheck_enabled" default:"false"`
	SetupRecheckEvery   time.Duration `envconfig:"setup_recheck_every" default:"10m"`
	SetupRecheckBatch   int           `envconfig:"setup_recheck_batch" default:"50"`

	TaskWorkers   int           `envconfig:"task_workers" default:"4"`
	TaskQueueSize int           `envconfig:"task_queue_size" default:"256"`
	TaskTimeout   time.Duration `envconfig:"task_timeout" default:"60s"`
	TaskRetries   int           `envconfig:"task_retries" default:"3"`
}
