package main

import (
	"context"
	"flag"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-control-api/infrastructure/database/postgres"
	"github.com/vfg2006/ad-control-api/internal/config"
	"github.com/vfg2006/ad-control-api/pkg/log"
)

func main() {
	direction := flag.String("direction", postgres.MigrateUp, "direção da migração: up ou down")
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel)

	conn, err := postgres.NewConnection(context.Background(), cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	if err := conn.RunMigrations(*direction); err != nil {
		logrus.WithError(err).Fatal("Erro ao executar migrações")
	}

	version, dirty, err := conn.MigrationVersion()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao ler versão das migrações")
	}

	logrus.WithFields(logrus.Fields{
		"direction": *direction,
		"version":   version,
		"dirty":     dirty,
	}).Info("Migrações executadas")
}
