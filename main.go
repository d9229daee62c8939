package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/saviour-frank/vault-chain/config"
	"github.com/saviour-frank/vault-chain/handlers"
	"github.com/saviour-frank/vault-chain/heights"
	"github.com/saviour-frank/vault-chain/ledger"
	"github.com/saviour-frank/vault-chain/models"
	"github.com/saviour-frank/vault-chain/services"
	"github.com/saviour-frank/vault-chain/storage"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:          "vault-chain",
		Short:        "Ledger service for tokenized ownership of external assets",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "path to the configuration file")

	root.AddCommand(serveCmd(&configPath))
	root.AddCommand(migrateCmd(&configPath))
	return root
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(os.Stdout).Level(lvl).With().Timestamp().Logger()
}

func serveCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			logger := newLogger(cfg.LogLevel)

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			opts := []ledger.Option{}
			if cfg.Database.DSN != "" {
				db, err := storage.NewDB(cfg.Database.DSN, cfg.Database.MigrationsDir, logger)
				if err != nil {
					return err
				}
				defer db.Close()

				store := storage.NewStore(db)
				snap, err := store.Load(ctx)
				if err != nil {
					return err
				}
				opts = append(opts, ledger.WithSnapshot(snap), ledger.WithSink(store))
				logger.Info().
					Uint64("next_asset_id", snap.NextAssetID).
					Uint64("last_event_id", snap.LastEventID).
					Msg("ledger state restored")
			} else {
				logger.Warn().Msg("no database DSN configured, running in-memory")
			}

			engine := ledger.New(
				models.Identity(cfg.AuthorityKey),
				models.Identity(cfg.SystemKey),
				opts...,
			)

			var src heights.Source
			switch cfg.HeightSource {
			case config.HeightSourceSolana:
				solanaSrc := heights.NewSolanaSource(
					cfg.Solana.RPCURL,
					time.Duration(cfg.Solana.PollIntervalSeconds)*time.Second,
					logger,
				)
				go solanaSrc.Start(ctx)
				src = solanaSrc
			default:
				src = heights.NewLogical(0)
			}

			svc := services.NewLedgerService(engine, src, logger)

			assetHandler := handlers.NewAssetHandler(svc)
			transferHandler := handlers.NewTransferHandler(svc)
			complianceHandler := handlers.NewComplianceHandler(svc)
			eventHandler := handlers.NewEventHandler(svc)

			r := chi.NewRouter()
			r.Use(handlers.RequestLogger(logger))
			r.Use(middleware.Recoverer)
			r.Use(middleware.URLFormat)

			r.Route("/assets", func(r chi.Router) {
				r.Post("/", assetHandler.CreateAsset)
				r.Get("/{id}", assetHandler.GetAssetByID)
				r.Get("/{id}/shares/{owner}", assetHandler.GetOwnerShares)
			})
			r.Post("/transfers", transferHandler.Transfer)
			r.Route("/compliance", func(r chi.Router) {
				r.Post("/", complianceHandler.SetStatus)
				r.Get("/{assetID}/{user}", complianceHandler.GetDetails)
			})
			r.Get("/events/{id}", eventHandler.GetEventByID)
			r.Handle("/metrics", promhttp.Handler())

			logger.Info().Str("addr", cfg.ListenAddr).Msg("serving")
			return http.ListenAndServe(cfg.ListenAddr, r)
		},
	}
}

func migrateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			logger := newLogger(cfg.LogLevel)

			db, err := storage.NewDB(cfg.Database.DSN, cfg.Database.MigrationsDir, logger)
			if err != nil {
				return err
			}
			defer db.Close()
			logger.Info().Msg("migrations up to date")
			return nil
		},
	}
}
