// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/canonical/storefront-service/internal/authorization"
	"github.com/canonical/storefront-service/internal/cache"
	"github.com/canonical/storefront-service/internal/config"
	"github.com/canonical/storefront-service/internal/db"
	"github.com/canonical/storefront-service/internal/hosting"
	"github.com/canonical/storefront-service/internal/kratos"
	"github.com/canonical/storefront-service/internal/locks"
	"github.com/canonical/storefront-service/internal/logging"
	"github.com/canonical/storefront-service/internal/monitoring/prometheus"
	"github.com/canonical/storefront-service/internal/notifications"
	"github.com/canonical/storefront-service/internal/openfga"
	"github.com/canonical/storefront-service/internal/payments"
	"github.com/canonical/storefront-service/internal/registrar"
	"github.com/canonical/storefront-service/internal/storage"
	"github.com/canonical/storefront-service/internal/tasks"
	"github.com/canonical/storefront-service/internal/tracing"
	"github.com/canonical/storefront-service/internal/types"
	"github.com/canonical/storefront-service/internal/validation"
	"github.com/canonical/storefront-service/pkg/authentication"
	"github.com/canonical/storefront-service/pkg/checkout"
	"github.com/canonical/storefront-service/pkg/domainpurchase"
	"github.com/canonical/storefront-service/pkg/pricing"
	"github.com/canonical/storefront-service/pkg/provisioning"
	"github.com/canonical/storefront-service/pkg/setup"
	"github.com/canonical/storefront-service/pkg/tenant"
	"github.com/canonical/storefront-service/pkg/web"
	"github.com/canonical/storefront-service/pkg/webhooks"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		envFile, _ := cmd.Flags().GetString("env-file")

		if err := serve(envFile); err != nil {
			fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("env-file", "", "Load environment variables from this file before starting")
}

func serve(envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	logger := logging.NewLogger(specs.LogLevel)
	logger.Debugf("env vars: %v", specs)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("storefront-service", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, specs.TraceSampleRatio, logger))

	dbConfig := db.Config{
		DSN:             specs.DSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TracingEnabled:  specs.TracingEnabled,
	}
	dbClient, err := db.NewDBClient(dbConfig, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()
	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	var authorizer *authorization.Authorizer
	if specs.AuthorizationEnabled {
		ofga, err := openfga.NewClient(
			openfga.NewConfig(
				fmt.Sprintf("%s://%s", specs.OpenfgaApiScheme, specs.OpenfgaApiHost),
				specs.OpenfgaStoreId,
				specs.OpenfgaApiToken,
				specs.OpenfgaModelId,
				specs.Debug,
				tracer,
				monitor,
				logger,
			),
		)
		if err != nil {
			return fmt.Errorf("failed to create openfga client: %v", err)
		}
		authorizer = authorization.NewAuthorizer(ofga, tracer, monitor, logger)
		logger.Info("Authorization is enabled")
		if authorizer.ValidateModel(context.Background()) != nil {
			panic("Invalid authorization model provided")
		}
	} else {
		authorizer = authorization.NewAuthorizer(
			openfga.NewNoopClient(tracer, monitor, logger),
			tracer,
			monitor,
			logger,
		)
		logger.Info("Using noop authorizer")
	}

	var verifier authentication.TokenVerifierInterface
	if specs.AuthenticationEnabled {
		verifier, err = authentication.NewJWTAuthenticator(
			context.Background(),
			specs.OIDCIssuer,
			specs.OIDCJWKSURL,
			specs.AllowedSubjects,
			specs.RequiredScope,
			tracer,
			monitor,
			logger,
		)
		if err != nil {
			return fmt.Errorf("failed to create authenticator: %v", err)
		}
	} else {
		verifier = authentication.NewNoopVerifier()
		logger.Warn("Authentication is disabled, bearer tokens are taken as user IDs")
	}

	kratosClient := kratos.NewClient(specs.KratosAdminURL, tracer, monitor, logger)

	var (
		locker locks.LockerInterface
		hosts  cache.CacheInterface[*types.Tenant]
	)
	if specs.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     specs.RedisAddr,
			Password: specs.RedisPassword,
			DB:       specs.RedisDB,
		})
		defer rdb.Close()

		locker = locks.NewRedisLocker(rdb, tracer, logger)
		hosts = cache.NewRedisCache[*types.Tenant](rdb, "storefront:")
		logger.Infof("Using redis at %s for locks and host cache", specs.RedisAddr)
	} else {
		locker = locks.NewLocalLocker()
		hosts = cache.NewTTLCache[*types.Tenant]()
		logger.Info("Using in-process locks and host cache")
	}

	var notifier notifications.SenderInterface
	if specs.ResendAPIKey != "" {
		notifier, err = notifications.NewResendSender(
			notifications.Config{
				APIKey:       specs.ResendAPIKey,
				FromName:     specs.MailFromName,
				FromEmail:    specs.MailFromEmail,
				DashboardURL: specs.DashboardURL,
			},
			tracer,
			monitor,
			logger,
		)
		if err != nil {
			return fmt.Errorf("failed to create mail sender: %v", err)
		}
	} else {
		notifier = notifications.NewNoopSender(logger)
		logger.Info("No mail API key, notifications are only logged")
	}

	runner := tasks.NewRunner(
		tasks.Config{
			Workers:   specs.TaskWorkers,
			QueueSize: specs.TaskQueueSize,
			Timeout:   specs.TaskTimeout,
			Retries:   specs.TaskRetries,
		},
		tracer,
		monitor,
		logger,
	)

	registrarClient := registrar.NewClient(
		registrar.Config{
			URL:           specs.RegistrarURL,
			Username:      specs.RegistrarUsername,
			Password:      specs.RegistrarPassword,
			ContactHandle: specs.RegistrarContactHandle,
			NSGroup:       specs.RegistrarNSGroup,
			Timeout:       specs.RegistrarTimeout,
			Retries:       specs.RegistrarRetries,
		},
		tracer,
		monitor,
		logger,
	)
	hostingClient := hosting.NewClient(
		hosting.Config{
			URL:       specs.HostingAPIURL,
			Token:     specs.HostingToken,
			TeamID:    specs.HostingTeamID,
			ProjectID: specs.HostingProjectID,
			Timeout:   specs.HostingTimeout,
		},
		tracer,
		monitor,
		logger,
	)
	paymentsClient := payments.NewClient(
		payments.Config{
			URL:         specs.PaymentsAPIURL,
			AccessToken: specs.PaymentsAccessToken,
			Timeout:     specs.PaymentsTimeout,
		},
		tracer,
		monitor,
		logger,
	)
	calculator := pricing.NewCalculator(specs.PriceMarkup, specs.PriceFXRate, specs.PriceCurrency, specs.PriceLocale)
	validator := validation.NewValidator()

	setupService := setup.NewService(s, hostingClient, notifier, kratosClient, tracer, monitor, logger)
	purchaseService := domainpurchase.NewService(
		s,
		registrarClient,
		setupService,
		runner,
		locker,
		calculator,
		specs.PurchaseLockTTL,
		tracer,
		monitor,
		logger,
	)
	provisioningService := provisioning.NewService(
		s,
		dbClient,
		authorizer,
		setupService,
		runner,
		hosts,
		specs.TenantHostCacheTTL,
		tracer,
		monitor,
		logger,
	)
	webhookService := webhooks.NewService(
		s,
		dbClient,
		paymentsClient,
		provisioningService,
		purchaseService,
		setupService,
		runner,
		notifier,
		kratosClient,
		webhooks.Config{
			AnnualPlanMinimum: specs.AnnualPlanMinimum,
			Currency:          specs.PriceCurrency,
			DashboardURL:      specs.DashboardURL,
		},
		tracer,
		monitor,
		logger,
	)
	tenantService := tenant.NewService(s, kratosClient, hosts, tracer, monitor, logger)
	checkoutService := checkout.NewService(
		s,
		paymentsClient,
		kratosClient,
		checkout.Config{
			MonthlyPrice: specs.BasicPlanMonthlyPrice,
			Currency:     specs.PriceCurrency,
			BackURL:      specs.PaymentsBackURL,
		},
		tracer,
		monitor,
		logger,
	)

	tenantAPI := tenant.NewAPI(tenantService, authorizer, validator, tracer, monitor, logger)

	router := web.NewRouter(
		web.APIs{
			Public: []web.EndpointsRegisterer{
				webhooks.NewAPI(webhookService, specs.WebhookSecret, specs.WebhookInsecureMode, tracer, monitor, logger),
			},
			Authenticated: []web.EndpointsRegisterer{
				domainpurchase.NewAPI(purchaseService, authorizer, validator, tracer, monitor, logger),
				provisioning.NewAPI(provisioningService, authorizer, validator, tracer, monitor, logger),
				checkout.NewAPI(checkoutService, authorizer, validator, tracer, monitor, logger),
				tenantAPI,
			},
			Admin: []web.EndpointsRegisterer{
				setup.NewAPI(setupService, tracer, monitor, logger),
				web.RegistererFunc(tenantAPI.RegisterAdminEndpoints),
			},
		},
		authentication.NewMiddleware(verifier, tracer, monitor, logger),
		dbClient,
		specs.CORSOrigins,
		tracer,
		monitor,
		logger,
	)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Infof("Starting HTTP server on port %v", specs.Port)
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	if specs.SetupRecheckEnabled {
		g.Go(func() error {
			setupService.RecheckLoop(gctx, specs.SetupRecheckEvery, specs.SetupRecheckBatch)
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()

		// Create a deadline to wait for.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		logger.Security().SystemShutdown()

		var serverError error
		if err := srv.Shutdown(shutdownCtx); err != nil {
			serverError = fmt.Errorf("server shutdown error: %w", err)
		}
		if err := runner.Shutdown(shutdownCtx); err != nil {
			logger.Errorf("background tasks did not finish: %v", err)
		}

		return serverError
	})

	return g.Wait()
}
