package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/deepcalm/campaign-console/internal/usecases/pricing"
)

// ListSkus retorna o catálogo na ordem de exibição do formulário
func ListSkus(provider pricing.CatalogProvider) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ListSkus")

		writeJSON(w, http.StatusOK, provider.Catalog(r.Context()).Entries())
	})
}

func GetDraftDefaults(provider pricing.CatalogProvider) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetDraftDefaults")

		writeJSON(w, http.StatusOK, provider.Defaults(r.Context()))
	})
}
