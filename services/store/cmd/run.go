package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/Nugamoto/bestbuy2.0/pkg/env"
	"github.com/Nugamoto/bestbuy2.0/pkg/log"
	"github.com/Nugamoto/bestbuy2.0/services/store/adapter/catalog"
	"github.com/Nugamoto/bestbuy2.0/services/store/controller/console"
	"github.com/Nugamoto/bestbuy2.0/services/store/entity"
	"github.com/Nugamoto/bestbuy2.0/services/store/usecase"
)

func runService(ctx context.Context) error {
	cfg := new(config)
	if err := env.ParseCfg(cfg); err != nil {
		return err
	}

	logger, err := log.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	log.SetGlobal(logger)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	products, err := seedProducts(cfg)
	if err != nil {
		logger.Error("catalog seeding failed", zap.Error(err))
		return err
	}

	store, err := usecase.New(products...)
	if err != nil {
		return err
	}

	logger.Info("store ready",
		zap.String("service", cfg.Name),
		zap.Int("products", len(products)),
		zap.Int("total_quantity", store.TotalQuantity()))

	for _, p := range products {
		logger.Debug("product seeded",
			zap.Stringer("product_id", p.ID()),
			zap.String("name", p.Name()),
			zap.Int("quantity", p.Quantity()))
	}

	shell := console.New(store, os.Stdin, os.Stdout, logger)

	done := make(chan error, 1)
	go func() {
		done <- shell.Run(ctx)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGHUP,
		syscall.SIGQUIT)

	select {
	case err := <-done:
		if err != nil {
			logger.Error("shell stopped", zap.Error(err))
			return err
		}

		logger.Info("session finished")

		return nil
	case sig := <-sigCh:
		logger.Info("terminating", zap.Stringer("signal", sig))
		return nil
	}
}

func seedProducts(cfg *config) ([]*entity.Product, error) {
	if cfg.Catalog.Path != "" {
		return catalog.Load(cfg.Catalog.Path)
	}

	return catalog.Default()
}
