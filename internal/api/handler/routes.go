package handler

import (
	"net/http"

	"github.com/deepcalm/campaign-console/internal/api/handler/router"
	"github.com/deepcalm/campaign-console/internal/usecases/advising"
	"github.com/deepcalm/campaign-console/internal/usecases/campaigning"
	"github.com/deepcalm/campaign-console/internal/usecases/insighting"
	"github.com/deepcalm/campaign-console/internal/usecases/integrating"
	"github.com/deepcalm/campaign-console/internal/usecases/pricing"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Catalog(provider pricing.CatalogProvider) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/catalog/skus",
			Method:  http.MethodGet,
			Handler: ListSkus(provider),
		},
		{
			Path:    "/v1/catalog/defaults",
			Method:  http.MethodGet,
			Handler: GetDraftDefaults(provider),
		},
	}
}

func Economics(provider pricing.CatalogProvider) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/forecast",
			Method:  http.MethodPost,
			Handler: EstimateForecast(provider),
		},
		{
			Path:    "/v1/metrics/classify",
			Method:  http.MethodPost,
			Handler: ClassifyMetric(),
		},
	}
}

func Campaigns(service campaigning.CampaignService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/campaigns",
			Method:  http.MethodGet,
			Handler: ListCampaigns(service),
		},
		{
			Path:    "/v1/campaigns",
			Method:  http.MethodPost,
			Handler: CreateCampaign(service),
		},
		{
			Path:    "/v1/campaigns/:id",
			Method:  http.MethodGet,
			Handler: GetCampaign(service),
		},
		{
			Path:    "/v1/campaigns/:id",
			Method:  http.MethodPatch,
			Handler: UpdateCampaign(service),
		},
		{
			Path:    "/v1/campaigns/:id",
			Method:  http.MethodDelete,
			Handler: CampaignTransition(service, campaigning.CommandDelete),
		},
		{
			Path:    "/v1/campaigns/:id/activate",
			Method:  http.MethodPost,
			Handler: CampaignTransition(service, campaigning.CommandActivate),
		},
		{
			Path:    "/v1/campaigns/:id/pause",
			Method:  http.MethodPost,
			Handler: CampaignTransition(service, campaigning.CommandPause),
		},
	}
}

func Analytics(service insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/analytics/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboardSummary(service),
		},
		{
			Path:    "/v1/analytics/dashboard/daily",
			Method:  http.MethodGet,
			Handler: GetDashboardDaily(service),
		},
		{
			Path:    "/v1/analytics/channels",
			Method:  http.MethodGet,
			Handler: GetChannelPerformance(service),
		},
		{
			Path:    "/v1/analytics/overview",
			Method:  http.MethodGet,
			Handler: GetDashboardOverview(service),
		},
		{
			Path:    "/v1/analytics/campaigns/:id",
			Method:  http.MethodGet,
			Handler: GetCampaignAnalytics(service),
		},
	}
}

func Integrations(service integrating.IntegrationService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/integrations",
			Method:  http.MethodGet,
			Handler: ListIntegrations(service),
		},
		{
			Path:    "/v1/integrations/:type/status",
			Method:  http.MethodGet,
			Handler: GetIntegrationStatus(service),
		},
		{
			Path:    "/v1/integrations/:type/connect",
			Method:  http.MethodPost,
			Handler: ConnectIntegration(service),
		},
		{
			Path:    "/v1/integrations/:type/disconnect",
			Method:  http.MethodPost,
			Handler: DisconnectIntegration(service),
		},
		{
			Path:    "/v1/integrations/:type/sync",
			Method:  http.MethodPost,
			Handler: SyncIntegration(service),
		},
	}
}

func Analyst(service advising.Advisor) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/analyst/health",
			Method:  http.MethodGet,
			Handler: AnalystHealth(service),
		},
		{
			Path:    "/v1/analyst/chat",
			Method:  http.MethodPost,
			Handler: AnalystChat(service),
		},
		{
			Path:    "/v1/analyst/analyze/:id",
			Method:  http.MethodPost,
			Handler: AnalyzeCampaign(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/run/:type",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
