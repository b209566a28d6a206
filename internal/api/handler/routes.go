package handler

import (
	"net/http"

	"github.com/vfg2006/sales-visualiser/infrastructure/repository"
	"github.com/vfg2006/sales-visualiser/internal/api/handler/router"
	"github.com/vfg2006/sales-visualiser/internal/usecases/authenticating"
	"github.com/vfg2006/sales-visualiser/internal/usecases/visualising"
	"github.com/vfg2006/sales-visualiser/pkg/middleware"
)

func adminOnly(authenticator authenticating.Authenticator) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		middleware.AuthMiddleware(authenticator),
		middleware.AdminOnly(),
	}
}

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Dashboards(visualiser visualising.Visualiser) []router.Route {
	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: Dashboard(visualiser),
		},
	}
}

func Charts(visualiser visualising.Visualiser) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/chart",
			Method:  http.MethodGet,
			Handler: GetChart(visualiser),
		},
		{
			Path:    "/v1/sales/daily",
			Method:  http.MethodGet,
			Handler: GetDailySales(visualiser),
		},
		{
			Path:    "/v1/regions",
			Method:  http.MethodGet,
			Handler: GetRegions(),
		},
	}
}

func Datasets(
	visualiser visualising.Visualiser,
	loadRunRepo repository.LoadRunRepository,
	authenticator authenticating.Authenticator,
) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dataset",
			Method:  http.MethodGet,
			Handler: GetDatasetSummary(visualiser),
		},
		{
			Path:        "/v1/dataset/loads",
			Method:      http.MethodGet,
			Handler:     ListLoadRuns(loadRunRepo),
			Middlewares: adminOnly(authenticator),
		},
	}
}

func CronJobs(services CronJobServices, authenticator authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: adminOnly(authenticator),
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: adminOnly(authenticator),
		},
	}
}
