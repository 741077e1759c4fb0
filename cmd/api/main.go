package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-control-api/infrastructure/database/postgres"
	"github.com/vfg2006/ad-control-api/infrastructure/integrator/meta"
	"github.com/vfg2006/ad-control-api/infrastructure/repository"
	"github.com/vfg2006/ad-control-api/internal/api"
	"github.com/vfg2006/ad-control-api/internal/config"
	"github.com/vfg2006/ad-control-api/internal/scheduler"
	"github.com/vfg2006/ad-control-api/internal/usecases/account"
	"github.com/vfg2006/ad-control-api/internal/usecases/authenticating"
	"github.com/vfg2006/ad-control-api/internal/usecases/controlling"
	"github.com/vfg2006/ad-control-api/internal/usecases/syncing"
	"github.com/vfg2006/ad-control-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if cfg.Database.RunMigrations {
		if err := pgConn.RunMigrations(postgres.MigrateUp); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar migrações")
		}
		logrus.Info("Migrações aplicadas")
	}

	platform := adPlatform(cfg)

	vendorRepo := repository.NewVendorRepository(pgConn)
	accountRepo := repository.NewAccountRepository(pgConn)
	metricRepo := repository.NewAccountMetricRepository(pgConn)
	actionRepo := repository.NewAccountActionRepository(pgConn)

	store, err := authenticating.NewStaticCredentialStore(cfg.Auth.Users)
	if err != nil {
		logrus.WithError(err).Fatal("AUTH_USERS inválido")
	}
	if len(cfg.Auth.Users) == 0 {
		logrus.Warn("Nenhum usuário configurado em AUTH_USERS, o login sempre falhará")
	}

	authenticator := authenticating.NewService(store, cfg)
	accountService := account.NewService(platform, accountRepo, metricRepo, actionRepo)
	controlService := controlling.NewService(platform, accountRepo, actionRepo)
	syncService := syncing.NewService(platform, vendorRepo, accountRepo, metricRepo, cfg)

	syncScheduler := scheduler.NewAccountSyncService(syncService, cfg)
	if err := syncScheduler.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de contas")
	}

	server, err := api.New(
		cfg,
		pgConn,
		platform.Mode(),
		authenticator,
		accountService,
		controlService,
		syncScheduler,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// adPlatform não derruba o servidor quando o modo live está sem credenciais.
// Login e leituras locais continuam, e toda chamada remota devolve o erro de configuração.
func adPlatform(cfg *config.Config) meta.AdPlatform {
	platform, err := meta.New(cfg)
	if err != nil {
		logrus.WithError(err).Error("Plataforma de anúncios indisponível")
		return meta.Unavailable(err)
	}

	return platform
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
