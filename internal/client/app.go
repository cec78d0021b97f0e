package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/internal/store"
	"github.com/MKhiriev/go-doc-vault/internal/tui"
	"github.com/MKhiriev/go-doc-vault/internal/workers"
)

// UI is the interactive front-end run by [App].
type UI interface {
	Run(ctx context.Context) error
}

type App struct {
	storages *store.Storages
	ui       UI
	workers  *workers.Workers
	logger   *logger.Logger
}

func NewApp(storages *store.Storages, ui UI, workers *workers.Workers, logger *logger.Logger) (*App, error) {
	if storages == nil || ui == nil {
		return nil, ErrAppNotConfigured
	}

	return &App{
		storages: storages,
		ui:       ui,
		workers:  workers,
		logger:   logger,
	}, nil
}

// Run sweeps leftovers of the previous session, then hands the terminal to
// the UI until the user quits or ctx is done. Storages are closed on return.
func (a *App) Run(ctx context.Context) error {
	defer func() {
		if err := a.storages.Close(); err != nil {
			a.logger.Err(err).Msg("failed to close storages")
		}
	}()

	if a.workers != nil {
		a.workers.Run()
	}

	a.logger.Info().Msg("client started")

	err := a.ui.Run(ctx)
	if errors.Is(err, tui.ErrUserQuit) {
		a.logger.Info().Msg("client stopped by user")
		return nil
	}
	if err != nil {
		return fmt.Errorf("ui error: %w", err)
	}

	return nil
}
