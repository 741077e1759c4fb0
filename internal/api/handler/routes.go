package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/ad-control-api/internal/api/handler/router"
	"github.com/vfg2006/ad-control-api/internal/scheduler"
	"github.com/vfg2006/ad-control-api/internal/usecases/account"
	"github.com/vfg2006/ad-control-api/internal/usecases/authenticating"
	"github.com/vfg2006/ad-control-api/internal/usecases/controlling"
	"github.com/vfg2006/ad-control-api/pkg/middleware"
)

func authenticated() []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{middleware.RequireIdentity()}
}

func Healthcheck(checker HealthChecker, mode string) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(checker, mode),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}

func Authentication(service authenticating.Authenticator, cookie CookieOptions) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service, cookie),
		},
		{
			Path:    "/v1/logout",
			Method:  http.MethodPost,
			Handler: Logout(cookie),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(),
			Middlewares: authenticated(),
		},
	}
}

func Sync(sched scheduler.AccountSyncScheduler) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/sync",
			Method:      http.MethodPost,
			Handler:     RunSync(sched),
			Middlewares: authenticated(),
		},
		{
			Path:        "/v1/sync/status",
			Method:      http.MethodGet,
			Handler:     GetSyncStatus(sched),
			Middlewares: authenticated(),
		},
	}
}

func AdAccounts(accountService account.AccountService, controlService controlling.ControlService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/accounts",
			Method:      http.MethodGet,
			Handler:     AdAccountList(accountService),
			Middlewares: authenticated(),
		},
		{
			Path:        "/v1/accounts/:id",
			Method:      http.MethodGet,
			Handler:     GetAdAccount(accountService),
			Middlewares: authenticated(),
		},
		{
			Path:        "/v1/accounts/:id/pause-all",
			Method:      http.MethodPost,
			Handler:     PauseAllCampaigns(controlService),
			Middlewares: authenticated(),
		},
		{
			Path:        "/v1/accounts/:id/actions",
			Method:      http.MethodGet,
			Handler:     ListAccountActions(accountService),
			Middlewares: authenticated(),
		},
	}
}

func Campaigns(service controlling.ControlService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/campaigns/:id/set-status",
			Method:      http.MethodPost,
			Handler:     SetCampaignStatus(service),
			Middlewares: authenticated(),
		},
	}
}

func Actions(service account.AccountService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/actions",
			Method:      http.MethodGet,
			Handler:     ListActions(service),
			Middlewares: authenticated(),
		},
	}
}

func Dashboard(service account.AccountService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dashboard/summary",
			Method:      http.MethodGet,
			Handler:     DashboardSummary(service),
			Middlewares: authenticated(),
		},
	}
}
