package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/internal/service"
	"github.com/MKhiriev/go-doc-vault/internal/workers"
	"github.com/MKhiriev/go-doc-vault/models"
)

var ErrUserQuit = errors.New("вышел из программы")

const (
	pageSearch = "search"
	pageImport = "import"
)

type TUI struct {
	services  *service.Services
	runner    *workers.ImportRunner
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.Services, runner *workers.ImportRunner, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		services:  services,
		runner:    runner,
		buildInfo: buildInfo,
		logger:    logger,
	}
}

// Run blocks until the user leaves the program.
func (t *TUI) Run(ctx context.Context) error {
	pages := map[string]tea.Model{
		pageSearch: newSearchModel(ctx, t.services, t.logger),
		pageImport: newImportModel(ctx, t.runner),
	}

	root := NewRootModel(pages, pageSearch, t.buildInfo)
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}

	return nil
}
