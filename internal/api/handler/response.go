package handler

import (
	"errors"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/deepcalm/campaign-console/infrastructure/integrator/backend/backendclient"
	"github.com/deepcalm/campaign-console/internal/economics"
	"github.com/deepcalm/campaign-console/internal/usecases/advising"
	"github.com/deepcalm/campaign-console/internal/usecases/campaigning"
	"github.com/deepcalm/campaign-console/internal/usecases/integrating"
	"github.com/deepcalm/campaign-console/pkg/apiErrors"
	"github.com/deepcalm/campaign-console/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.L.WithError(err).Error("Erro ao codificar resposta")
	}
}

// decodeBody aceita corpo vazio quando optional é true
func decodeBody(r *http.Request, dest any, optional bool) error {
	err := json.NewDecoder(r.Body).Decode(dest)
	if optional && errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// writeServiceError traduz os erros dos casos de uso e do backend para o formato padronizado
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	logger := log.ForContext(r.Context()).WithError(err)

	var validationErr *campaigning.ValidationError
	if errors.As(err, &validationErr) {
		logger.Warn("Requisição reprovada na validação")
		apiErrors.WriteError(w, apiErrors.ErrValidationFailed, "Dados da campanha inválidos", validationErr.Fields)
		return
	}

	var inputErr *economics.InputError
	if errors.As(err, &inputErr) {
		code := apiErrors.ErrEconomicsInvalidInput
		if errors.Is(err, economics.ErrUnknownSku) {
			code = apiErrors.ErrEconomicsUnknownSku
		}
		apiErrors.WriteError(w, code, inputErr.Error(), map[string]any{"field": inputErr.Field})
		return
	}

	var backendErr *backendclient.APIError
	if errors.As(err, &backendErr) {
		writeBackendError(w, r, backendErr)
		return
	}

	switch {
	case errors.Is(err, economics.ErrInvalidInput):
		apiErrors.WriteError(w, apiErrors.ErrEconomicsInvalidInput, err.Error(), nil)
	case errors.Is(err, economics.ErrUnknownSku):
		apiErrors.WriteError(w, apiErrors.ErrEconomicsUnknownSku, err.Error(), nil)
	case errors.Is(err, economics.ErrNoData):
		apiErrors.WriteError(w, apiErrors.ErrEconomicsNoData, "Sem dados suficientes para classificar a métrica", nil)

	case errors.Is(err, campaigning.ErrCampaignIDRequired):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da campanha é obrigatório", nil)
	case errors.Is(err, campaigning.ErrUnknownCommand):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)

	case errors.Is(err, integrating.ErrUnknownIntegration):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
	case errors.Is(err, integrating.ErrTokenRequired):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Token da integração é obrigatório", nil)

	case errors.Is(err, advising.ErrInvalidMessage), errors.Is(err, advising.ErrInvalidCampaignID):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
	case errors.Is(err, advising.ErrRequestInFlight):
		apiErrors.WriteError(w, apiErrors.ErrConflict, "Aguarde a resposta da pergunta anterior", nil)

	case errors.Is(err, backendclient.ErrNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Recurso não encontrado", nil)
	case errors.Is(err, backendclient.ErrUnavailable):
		apiErrors.WriteError(w, apiErrors.ErrCommunication, "Backend indisponível", nil)

	default:
		logger.Error(fallback)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
	}
}

func writeBackendError(w http.ResponseWriter, r *http.Request, err *backendclient.APIError) {
	logger := log.ForContext(r.Context()).WithFields(log.Fields{
		"backend_method": err.Method,
		"backend_path":   err.Path,
		"backend_status": err.StatusCode,
	})

	switch {
	case errors.Is(err, backendclient.ErrNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, err.Detail(), nil)

	case errors.Is(err, backendclient.ErrRejected):
		logger.Warn("Backend rejeitou a requisição")
		code := apiErrors.ErrInvalidRequest
		if err.StatusCode == http.StatusConflict {
			code = apiErrors.ErrConflict
		}

		var details any
		if issues := err.Response.Issues(); len(issues) > 0 {
			details = issues
		}
		apiErrors.WriteError(w, code, err.Detail(), details)

	default:
		logger.WithError(err).Error("Erro ao consultar backend")
		if err.StatusCode == 0 {
			apiErrors.WriteError(w, apiErrors.ErrCommunication, "Backend indisponível", nil)
			return
		}
		apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro no backend", nil)
	}
}
