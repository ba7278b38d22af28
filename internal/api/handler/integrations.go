package handler

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/deepcalm/campaign-console/internal/domain"
	"github.com/deepcalm/campaign-console/internal/usecases/integrating"
	"github.com/deepcalm/campaign-console/pkg/apiErrors"
)

type connectIntegrationRequest struct {
	Token string `json:"token"`
}

func ListIntegrations(service integrating.IntegrationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ListIntegrations")

		integrations, err := service.List(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar integrações")
			return
		}

		writeJSON(w, http.StatusOK, integrations)
	})
}

func GetIntegrationStatus(service integrating.IntegrationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetIntegrationStatus")

		integrationType, err := integrationTypeParam(r)
		if err != nil {
			writeServiceError(w, r, err, "Tipo de integração inválido")
			return
		}

		integration, err := service.Status(r.Context(), integrationType)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao consultar status da integração")
			return
		}

		writeJSON(w, http.StatusOK, integration)
	})
}

func ConnectIntegration(service integrating.IntegrationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ConnectIntegration")

		integrationType, err := integrationTypeParam(r)
		if err != nil {
			writeServiceError(w, r, err, "Tipo de integração inválido")
			return
		}

		var request connectIntegrationRequest
		if err := decodeBody(r, &request, false); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		result, err := service.Connect(r.Context(), integrationType, request.Token)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao conectar integração")
			return
		}

		writeJSON(w, http.StatusOK, result)
	})
}

func DisconnectIntegration(service integrating.IntegrationService) http.Handler {
	return integrationAction("DisconnectIntegration", "Erro ao desconectar integração", service.Disconnect)
}

func SyncIntegration(service integrating.IntegrationService) http.Handler {
	return integrationAction("SyncIntegration", "Erro ao sincronizar integração", service.Sync)
}

func integrationAction(
	name, fallback string,
	action func(ctx context.Context, integrationType domain.IntegrationType) (*domain.IntegrationActionResult, error),
) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - " + name)

		integrationType, err := integrationTypeParam(r)
		if err != nil {
			writeServiceError(w, r, err, "Tipo de integração inválido")
			return
		}

		result, err := action(r.Context(), integrationType)
		if err != nil {
			writeServiceError(w, r, err, fallback)
			return
		}

		writeJSON(w, http.StatusOK, result)
	})
}

func integrationTypeParam(r *http.Request) (domain.IntegrationType, error) {
	return integrating.ParseType(httprouter.ParamsFromContext(r.Context()).ByName("type"))
}
