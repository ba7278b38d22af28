package middleware

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/deepcalm/campaign-console/pkg/apiErrors"
	"github.com/deepcalm/campaign-console/pkg/log"
)

// CorrelationIDHeader permite ao frontend propagar o próprio ID de correlação
const CorrelationIDHeader = "X-Correlation-ID"

const slowRequestThreshold = 500 * time.Millisecond

type requestRecordKey struct{}

// requestRecord é preenchido ao longo da requisição; o router grava o padrão da rota
type requestRecord struct {
	route string
}

// Route grava o padrão da rota atendida (ex.: /v1/campaigns/:id) no registro da requisição
func Route(route string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if record, ok := r.Context().Value(requestRecordKey{}).(*requestRecord); ok {
				record.route = route
			}
			next.ServeHTTP(w, r)
		})
	}
}

// LoggingMiddleware escreve uma linha por requisição, ao final, com rota, status e duração
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, correlationID := log.WithGivenCorrelationID(r.Context(), r.Header.Get(CorrelationIDHeader))
			record := &requestRecord{}
			ctx = context.WithValue(ctx, requestRecordKey{}, record)
			r = r.WithContext(ctx)
			w.Header().Set(CorrelationIDHeader, correlationID)

			lrw := newLoggingResponseWriter(w)
			startTime := time.Now()

			next.ServeHTTP(lrw, r)

			elapsed := time.Since(startTime)
			status := lrw.Status()

			route := record.route
			if route == "" {
				route = "unmatched"
			}

			fields := log.Fields{
				"correlation_id": correlationID,
				"method":         r.Method,
				"path":           r.URL.Path,
				"route":          route,
				"status_code":    status,
				"duration_ms":    elapsed.Milliseconds(),
			}
			if !log.IsDevelopment() {
				fields["remote_addr"] = r.RemoteAddr
				fields["query"] = r.URL.RawQuery
				fields["user_agent"] = r.UserAgent()
				fields["content_length"] = r.ContentLength
			}
			if elapsed > slowRequestThreshold {
				fields["slow"] = true
			}

			logger := log.L.WithFields(fields)
			msg := fmt.Sprintf("%s %s -> %d (%s)", r.Method, route, status, formatDuration(elapsed))

			switch {
			case status >= http.StatusInternalServerError:
				logger.Error(msg)
			case status >= http.StatusBadRequest || elapsed > slowRequestThreshold:
				logger.Warn(msg)
			default:
				logger.Info(msg)
			}
		})
	}
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%d µs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%d ms", d.Milliseconds())
	default:
		return fmt.Sprintf("%.2f s", d.Seconds())
	}
}

// loggingResponseWriter guarda o status escrito pelo handler
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newLoggingResponseWriter(w http.ResponseWriter) *loggingResponseWriter {
	return &loggingResponseWriter{w, http.StatusOK}
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

// Status retorna o status HTTP efetivamente escrito
func (lrw *loggingResponseWriter) Status() int {
	return lrw.statusCode
}

// LogPanicMiddleware converte um panic do handler em 500 e registra a pilha
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				recovered := recover()
				if recovered == nil {
					return
				}

				stack := make([]byte, 4096)
				stack = stack[:runtime.Stack(stack, false)]

				// roda por fora do LoggingMiddleware: o ID de correlação só está no cabeçalho da resposta
				logger := log.L.WithFields(log.Fields{
					"correlation_id": w.Header().Get(CorrelationIDHeader),
					"error":          fmt.Sprint(recovered),
					"method":         r.Method,
					"path":           r.URL.Path,
				})

				if log.IsDevelopment() {
					logger.Error("Panic no handler")
					fmt.Fprintf(os.Stderr, "\n--- pilha ---\n%s\n", stack)
				} else {
					logger.WithField("stack_trace", string(stack)).Error("Panic no handler")
				}

				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
