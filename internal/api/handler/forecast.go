package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/deepcalm/campaign-console/internal/domain"
	"github.com/deepcalm/campaign-console/internal/economics"
	"github.com/deepcalm/campaign-console/internal/usecases/pricing"
	"github.com/deepcalm/campaign-console/pkg/apiErrors"
)

type classifyRequest struct {
	Value  *float64          `json:"value"`
	Target *float64          `json:"target"`
	Kind   domain.MetricKind `json:"kind"`
}

type classifyResponse struct {
	Kind   domain.MetricKind  `json:"kind"`
	Status domain.StatusLevel `json:"status"`
}

// EstimateForecast calcula a previsão do rascunho enquanto o formulário é editado
func EstimateForecast(provider pricing.CatalogProvider) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - EstimateForecast")

		var draft domain.CampaignDraft
		if err := decodeBody(r, &draft, false); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		result, err := economics.EstimateForecast(draft, provider.Catalog(r.Context()))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao calcular previsão")
			return
		}

		writeJSON(w, http.StatusOK, result)
	})
}

func ClassifyMetric() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ClassifyMetric")

		var request classifyRequest
		if err := decodeBody(r, &request, false); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		status, err := economics.ClassifyMetric(request.Value, request.Target, request.Kind)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao classificar métrica")
			return
		}

		writeJSON(w, http.StatusOK, classifyResponse{Kind: request.Kind, Status: status})
	})
}
