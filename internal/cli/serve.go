package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"example.com/denine-prints/internal/config"
	"example.com/denine-prints/internal/infra/catalogapi"
	"example.com/denine-prints/internal/infra/logging"
	"example.com/denine-prints/internal/infra/security"
	httpapi "example.com/denine-prints/internal/interface/http"
	cartuc "example.com/denine-prints/internal/usecase/cart"
	cataloguc "example.com/denine-prints/internal/usecase/catalog"
	checkoutuc "example.com/denine-prints/internal/usecase/checkout"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the storefront HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configFile)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			return serve(cmd.Context(), cfg)
		},
	}
}

func serve(ctx context.Context, cfg *config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	storage, closeStorage, err := openStorage(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer closeStorage()

	client := catalogapi.NewClient(cfg.Catalog.BaseURL, &http.Client{Timeout: cfg.Catalog.Timeout})
	catalogSvc := cataloguc.NewService(client, client,
		cataloguc.WithTimeout(cfg.Catalog.Timeout),
		cataloguc.WithLogger(logger.Named("catalog")),
	)
	cartSvc := cartuc.NewService(storage, logger.Named("cart"))
	sessions := security.NewSessionService(cfg.Session.Secret, cfg.Session.TTL, cfg.Storage.Key)

	api := httpapi.NewAPI(httpapi.Dependencies{
		CatalogService:  catalogSvc,
		CartService:     cartSvc,
		CheckoutService: checkoutuc.NewService(cartSvc),
		Sessions:        sessions,
		Logger:          logger.Named("http"),
	})

	// The server starts while the catalog is still loading; handlers answer
	// 503 until the first fetch lands.
	go func() {
		if err := <-catalogSvc.RefreshAsync(ctx); err != nil {
			logger.Warn("initial catalog load failed", zap.Error(err))
		}
	}()

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           api.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", cfg.HTTP.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
