package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-doc-vault/internal/client"
	"github.com/MKhiriev/go-doc-vault/internal/config"
	"github.com/MKhiriev/go-doc-vault/internal/crypto"
	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/internal/service"
	"github.com/MKhiriev/go-doc-vault/internal/store"
	"github.com/MKhiriev/go-doc-vault/internal/tui"
	"github.com/MKhiriev/go-doc-vault/internal/workers"
	"github.com/MKhiriev/go-doc-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("go-doc-vault-client").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("go-doc-vault-client", cfg.App.LogDir)
	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	key, err := crypto.NewKeyManager(cfg.App.VaultDir, log).GetOrCreateKey()
	if err != nil {
		log.Fatal().Err(err).Msg("error loading encryption key")
	}

	cipher, err := crypto.NewCipher(key)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating cipher")
	}

	storages, err := store.NewStorages(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	if storages.CatalogWarning != nil {
		log.Warn().Err(storages.CatalogWarning).Msg("metadata catalog is damaged, previously sealed objects have no original names")
	}

	services, err := service.NewServices(storages, cipher, workers.NewDelayedScheduler(log), cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	ui := tui.New(services, workers.NewImportRunner(services.ImportService, log), buildInfo, log)

	app, err := client.NewApp(storages, ui, workers.NewWorkers(cfg.App, log), log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
