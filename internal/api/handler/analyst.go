package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/deepcalm/campaign-console/internal/domain"
	"github.com/deepcalm/campaign-console/internal/usecases/advising"
	"github.com/deepcalm/campaign-console/pkg/apiErrors"
	"github.com/deepcalm/campaign-console/pkg/log"
)

// ChatSessionHeader identifica a conversa do usuário com o analista
const ChatSessionHeader = "X-Chat-Session"

func AnalystHealth(service advising.Advisor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - AnalystHealth")

		health, err := service.Health(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao consultar analista")
			return
		}

		writeJSON(w, http.StatusOK, health)
	})
}

func AnalystChat(service advising.Advisor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - AnalystChat")

		var request domain.ChatRequest
		if err := decodeBody(r, &request, false); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		response, err := service.Chat(r.Context(), chatSession(r), request)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao conversar com o analista")
			return
		}

		writeJSON(w, http.StatusOK, response)
	})
}

func AnalyzeCampaign(service advising.Advisor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - AnalyzeCampaign")

		campaignID, err := strconv.Atoi(httprouter.ParamsFromContext(r.Context()).ByName("id"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID da campanha deve ser numérico", nil)
			return
		}

		var request domain.AnalysisRequest
		if err := decodeBody(r, &request, true); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		analysis, err := service.AnalyzeCampaign(r.Context(), campaignID, request)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao analisar campanha")
			return
		}

		writeJSON(w, http.StatusOK, analysis)
	})
}

// chatSession usa o cabeçalho da conversa; sem ele, cada requisição vira uma sessão
// própria (correlation ID ou endereço remoto) para que clientes anônimos não se bloqueiem
func chatSession(r *http.Request) string {
	if session := strings.TrimSpace(r.Header.Get(ChatSessionHeader)); session != "" {
		return session
	}
	if correlationID := log.GetCorrelationID(r.Context()); correlationID != "" {
		return "corr:" + correlationID
	}
	return "addr:" + r.RemoteAddr
}
