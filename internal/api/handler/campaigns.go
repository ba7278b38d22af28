package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/deepcalm/campaign-console/internal/domain"
	"github.com/deepcalm/campaign-console/internal/usecases/campaigning"
	"github.com/deepcalm/campaign-console/pkg/apiErrors"
)

func ListCampaigns(service campaigning.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ListCampaigns")

		query := r.URL.Query()
		params := domain.CampaignListParams{
			Status: domain.CampaignStatus(query.Get("status")),
		}

		var err error
		if params.Page, err = optionalInt(query.Get("page")); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro page inválido", nil)
			return
		}
		if params.PageSize, err = optionalInt(query.Get("page_size")); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro page_size inválido", nil)
			return
		}

		page, err := service.List(r.Context(), params)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar campanhas")
			return
		}

		writeJSON(w, http.StatusOK, page)
	})
}

func GetCampaign(service campaigning.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCampaign")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		campaign, err := service.Get(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar campanha")
			return
		}

		writeJSON(w, http.StatusOK, campaign)
	})
}

func CreateCampaign(service campaigning.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateCampaign")

		var draft domain.CampaignDraft
		if err := decodeBody(r, &draft, false); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		executeCommand(w, r, service, campaigning.Command{
			Kind:  campaigning.CommandCreate,
			Draft: &draft,
		}, http.StatusCreated)
	})
}

func UpdateCampaign(service campaigning.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateCampaign")

		var patch domain.CampaignPatch
		if err := decodeBody(r, &patch, false); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		executeCommand(w, r, service, campaigning.Command{
			Kind:       campaigning.CommandUpdate,
			CampaignID: httprouter.ParamsFromContext(r.Context()).ByName("id"),
			Patch:      &patch,
		}, http.StatusOK)
	})
}

// CampaignTransition atende activate, pause e delete, que não têm corpo
func CampaignTransition(service campaigning.CampaignService, kind campaigning.CommandKind) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.WithField("command", kind).Info("INIT - CampaignTransition")

		executeCommand(w, r, service, campaigning.Command{
			Kind:       kind,
			CampaignID: httprouter.ParamsFromContext(r.Context()).ByName("id"),
		}, http.StatusOK)
	})
}

func executeCommand(w http.ResponseWriter, r *http.Request, service campaigning.CampaignService, cmd campaigning.Command, status int) {
	result, err := service.Execute(r.Context(), cmd)
	if err != nil {
		writeServiceError(w, r, err, "Erro ao executar comando de campanha")
		return
	}

	writeJSON(w, status, result)
}

func optionalInt(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
