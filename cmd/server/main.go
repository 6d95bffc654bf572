// Package main provides the invoice-dashboard binary entry point.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	_ "github.com/ridwanfathin/invoice-dashboard/docs"
	"github.com/ridwanfathin/invoice-dashboard/internal/config"
	"github.com/ridwanfathin/invoice-dashboard/internal/database"
	"github.com/ridwanfathin/invoice-dashboard/internal/logging"
	"github.com/ridwanfathin/invoice-dashboard/internal/repository"
	"github.com/ridwanfathin/invoice-dashboard/internal/server"
	"github.com/ridwanfathin/invoice-dashboard/internal/service"
)

const (
	Version = "0.1.0"
	appName = "invoice-dashboard"
)

// @title Invoice Dashboard API
// @version 1.0
// @description Invoices and customers behind the invoice dashboard.
// @BasePath /
func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   appName,
		Short: "Invoice dashboard web service",
		Long: `Invoice dashboard serves the HTML dashboard for browsing, searching and
editing invoices, together with a JSON API over the same data.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(cmd.Context(), func(ctx context.Context, logger zerolog.Logger, db *database.PostgresDB) error {
				applied, err := db.Migrate(ctx)
				if err != nil {
					return err
				}
				logger.Info().Strs("applied", applied).Msg("migrations complete")
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "seed",
		Short: "Load placeholder customers and invoices",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(cmd.Context(), func(ctx context.Context, logger zerolog.Logger, db *database.PostgresDB) error {
				if _, err := db.Migrate(ctx); err != nil {
					return err
				}
				inserted, err := db.Seed(ctx)
				if err != nil {
					return err
				}
				logger.Info().Int("invoices", inserted).Msg("seed complete")
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s\n", appName, Version)
		},
	})

	return cmd
}

// withDatabase loads configuration, connects to PostgreSQL and runs fn
func withDatabase(ctx context.Context, fn func(context.Context, zerolog.Logger, *database.PostgresDB) error) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	logger := logging.New(cfg.LogFormat, cfg.LogLevel)

	db, err := database.NewPostgresDB(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns)
	if err != nil {
		return err
	}
	defer db.Close()

	return fn(ctx, logger, db)
}

func serve(ctx context.Context) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := logging.New(cfg.LogFormat, cfg.LogLevel)
	gin.SetMode(cfg.GinMode)

	// sentry init needs to happen before the gin middlewares are added
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			EnableTracing:    cfg.SentryTracesSampleRate > 0,
			TracesSampleRate: cfg.SentryTracesSampleRate,
		}); err != nil {
			logger.Error().Err(err).Msg("sentry init error")
		}
		defer sentry.Flush(2 * time.Second)
	}

	logger.Info().Msg("connecting to database")
	db, err := database.NewPostgresDB(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns)
	if err != nil {
		return err
	}
	defer db.Close()

	applied, err := db.Migrate(ctx)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	if len(applied) > 0 {
		logger.Info().Strs("applied", applied).Msg("database migrated")
	}

	invoiceRepo := repository.NewPostgresInvoiceRepository(db.GetPool())
	customerRepo := repository.NewPostgresCustomerRepository(db.GetPool())
	invoiceService := service.NewInvoiceService(invoiceRepo, customerRepo, cfg.ItemsPerPage)

	appServer, err := server.NewServer(cfg, logger, db, invoiceService)
	if err != nil {
		return err
	}

	return appServer.Start()
}
