package handler

import (
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/deepcalm/campaign-console/internal/domain"
	"github.com/deepcalm/campaign-console/internal/usecases/insighting"
	"github.com/deepcalm/campaign-console/pkg/apiErrors"
	"github.com/deepcalm/campaign-console/pkg/utils"
)

// parseDateRange lê start_date/end_date (YYYY-MM-DD); ausentes assumem o período padrão
func parseDateRange(r *http.Request) (domain.DateRange, error) {
	query := r.URL.Query()

	start, err := utils.ParseDate(query.Get("start_date"))
	if err != nil {
		return domain.DateRange{}, err
	}
	end, err := utils.ParseDate(query.Get("end_date"))
	if err != nil {
		return domain.DateRange{}, err
	}

	return insighting.ResolveRange(start, end, time.Now()), nil
}

func analyticsHandler[T any](name, fallback string, read func(r *http.Request, dateRange domain.DateRange) (T, error)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - " + name)

		dateRange, err := parseDateRange(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Datas devem estar no formato YYYY-MM-DD", nil)
			return
		}

		result, err := read(r, dateRange)
		if err != nil {
			writeServiceError(w, r, err, fallback)
			return
		}

		writeJSON(w, http.StatusOK, result)
	})
}

func GetDashboardSummary(service insighting.Insighter) http.Handler {
	return analyticsHandler("GetDashboardSummary", "Erro ao buscar resumo do dashboard",
		func(r *http.Request, dateRange domain.DateRange) (*domain.DashboardSummary, error) {
			return service.DashboardSummary(r.Context(), dateRange)
		})
}

func GetDashboardDaily(service insighting.Insighter) http.Handler {
	return analyticsHandler("GetDashboardDaily", "Erro ao buscar série diária",
		func(r *http.Request, dateRange domain.DateRange) ([]domain.DailyMetricPoint, error) {
			return service.DashboardDaily(r.Context(), dateRange)
		})
}

func GetChannelPerformance(service insighting.Insighter) http.Handler {
	return analyticsHandler("GetChannelPerformance", "Erro ao buscar desempenho dos canais",
		func(r *http.Request, dateRange domain.DateRange) ([]domain.ChannelEvaluation, error) {
			return service.ChannelPerformance(r.Context(), dateRange)
		})
}

func GetDashboardOverview(service insighting.Insighter) http.Handler {
	return analyticsHandler("GetDashboardOverview", "Erro ao montar overview do dashboard",
		func(r *http.Request, dateRange domain.DateRange) (*domain.DashboardOverview, error) {
			return service.Overview(r.Context(), dateRange)
		})
}

func GetCampaignAnalytics(service insighting.Insighter) http.Handler {
	return analyticsHandler("GetCampaignAnalytics", "Erro ao buscar analytics da campanha",
		func(r *http.Request, dateRange domain.DateRange) (*domain.CampaignEvaluation, error) {
			id := httprouter.ParamsFromContext(r.Context()).ByName("id")
			return service.CampaignAnalytics(r.Context(), id, dateRange)
		})
}
