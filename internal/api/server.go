package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-control-api/internal/api/handler"
	"github.com/vfg2006/ad-control-api/internal/api/handler/router"
	"github.com/vfg2006/ad-control-api/internal/config"
	"github.com/vfg2006/ad-control-api/internal/scheduler"
	"github.com/vfg2006/ad-control-api/internal/usecases/account"
	"github.com/vfg2006/ad-control-api/internal/usecases/authenticating"
	"github.com/vfg2006/ad-control-api/internal/usecases/controlling"
	"github.com/vfg2006/ad-control-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	checker handler.HealthChecker,
	mode string,
	authenticator authenticating.Authenticator,
	accountService account.AccountService,
	controlService controlling.ControlService,
	syncScheduler scheduler.AccountSyncScheduler,
) (*Server, error) {
	cookie := handler.CookieOptions{
		Name:   config.Auth.CookieName,
		Secure: config.Auth.CookieSecure,
		TTL:    config.Auth.TokenTTL,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(checker, mode)...),
		router.WithRoutes(handler.Metrics()...),
		router.WithRoutes(handler.Authentication(authenticator, cookie)...),
		router.WithRoutes(handler.Sync(syncScheduler)...),
		router.WithRoutes(handler.AdAccounts(accountService, controlService)...),
		router.WithRoutes(handler.Campaigns(controlService)...),
		router.WithRoutes(handler.Actions(accountService)...),
		router.WithRoutes(handler.Dashboard(accountService)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.App.CorsAllowedOrigins),
		middleware.AuthMiddleware(authenticator, middleware.AuthOptions{
			CookieName: config.Auth.CookieName,
			SyncSecret: config.Sync.TriggerSecret,
		}),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// Handler expõe a cadeia completa de middlewares e rotas
func (s Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": shutdownTimeout.String(),
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
