// Comando sync executa uma sincronização completa e termina.
// Serve para agendadores externos que não chamam POST /v1/sync.
package main

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-control-api/infrastructure/database/postgres"
	"github.com/vfg2006/ad-control-api/infrastructure/integrator/meta"
	"github.com/vfg2006/ad-control-api/infrastructure/repository"
	"github.com/vfg2006/ad-control-api/internal/config"
	"github.com/vfg2006/ad-control-api/internal/usecases/syncing"
	"github.com/vfg2006/ad-control-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel)

	ctx := context.Background()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	platform, err := meta.New(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Plataforma de anúncios indisponível")
	}

	service := syncing.NewService(
		platform,
		repository.NewVendorRepository(conn),
		repository.NewAccountRepository(conn),
		repository.NewAccountMetricRepository(conn),
		cfg,
	)

	result, err := service.Sync(ctx)
	if err != nil {
		logrus.WithError(err).Error("Sincronização falhou")
		conn.Close()
		os.Exit(1)
	}

	logrus.WithFields(logrus.Fields{
		"sync_mode":     result.Mode,
		"sync_seen":     result.AccountsSeen,
		"sync_synced":   result.AccountsSynced,
		"sync_failed":   result.AccountsFailed,
		"sync_duration": result.FinishedAt.Sub(result.StartedAt).String(),
	}).Info("Sincronização concluída")
}
