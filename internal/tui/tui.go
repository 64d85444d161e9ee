// Package tui is the terminal interface of the journal client: one screen
// with a tab per list, an online indicator and forms for new records.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-journal/internal/logger"
	"github.com/MKhiriev/go-journal/internal/service"
	"github.com/MKhiriev/go-journal/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	journal   service.ClientJournalService
	sync      service.ClientSyncService
	notifier  service.ConnectivityNotifier
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(
	services *service.ClientServices,
	notifier service.ConnectivityNotifier,
	buildInfo models.AppBuildInfo,
	logger *logger.Logger,
) *TUI {
	return &TUI{
		journal:   services.JournalService,
		sync:      services.SyncService,
		notifier:  notifier,
		buildInfo: buildInfo,
		logger:    logger,
	}
}

// Run shows the journal screen and blocks until the user quits or ctx is
// canceled.
func (t *TUI) Run(ctx context.Context) error {
	updates := make(chan bool, 1)
	unsubscribe := t.notifier.Subscribe(func(online bool) {
		// keep only the latest state
		select {
		case <-updates:
		default:
		}
		select {
		case updates <- online:
		default:
		}
	})
	defer unsubscribe()

	model := newJournalModel(ctx, t.journal, t.sync, t.notifier.IsOnline(), updates, t.buildInfo)

	t.logger.Info().Msg("starting terminal ui")
	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("terminal ui: %w", err)
	}
	return nil
}
