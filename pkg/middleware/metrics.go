package middleware

import (
	"net/http"
	"time"

	"github.com/deepcalm/campaign-console/pkg/metrics"
)

// Metrics registra contagem e latência com o padrão de rota (ex.: /v1/campaigns/:id),
// evitando um label por ID de recurso
func Metrics(m *metrics.Metrics, route string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			startTime := time.Now()
			lrw := newLoggingResponseWriter(w)

			next.ServeHTTP(lrw, r)

			m.ObserveHTTP(r.Method, route, lrw.Status(), time.Since(startTime))
		})
	}
}
