package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-journal/internal/adapter"
	"github.com/MKhiriev/go-journal/internal/config"
	"github.com/MKhiriev/go-journal/internal/connectivity"
	"github.com/MKhiriev/go-journal/internal/logger"
	"github.com/MKhiriev/go-journal/internal/service"
	"github.com/MKhiriev/go-journal/internal/store"
	"github.com/MKhiriev/go-journal/internal/tui"
	"github.com/MKhiriev/go-journal/internal/workers"
	"github.com/MKhiriev/go-journal/models"
)

type App struct {
	storages *store.ClientStorages
	monitor  *connectivity.Monitor
	services *service.ClientServices
	workers  *workers.Workers
	ui       *tui.TUI

	logger *logger.Logger
}

// NewApp wires local storage, the server adapter, the connectivity monitor,
// client services, background workers and the terminal UI.
//
// The client starts optimistic: the monitor reports online until the first
// health probe says otherwise.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, logger)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("create server adapter: %w", err), storages.Close())
	}

	monitor := connectivity.NewMonitor(true, logger)
	services := service.NewClientServices(storages.LocalStorage, serverAdapter, monitor, logger)

	return &App{
		storages: storages,
		monitor:  monitor,
		services: services,
		workers:  workers.NewClientWorkers(cfg.Workers, serverAdapter, monitor, services.SyncJob, logger),
		ui:       tui.New(services, monitor, buildInfo, logger),
		logger:   logger,
	}, nil
}

// Run starts the background workers and blocks in the terminal UI until the
// user quits or the process receives SIGINT or SIGTERM.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a.workers.Start(ctx)
	defer a.workers.Stop()

	if err := a.ui.Run(ctx); err != nil {
		a.logger.Err(err).Str("func", "App.Run").Msg("terminal ui stopped with error")
		return err
	}

	a.logger.Info().Msg("client stopped")
	return nil
}

// Close releases the local database.
func (a *App) Close() error {
	return a.storages.Close()
}
