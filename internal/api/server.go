package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"

	"github.com/deepcalm/campaign-console/internal/api/handler"
	"github.com/deepcalm/campaign-console/internal/api/handler/router"
	"github.com/deepcalm/campaign-console/internal/config"
	"github.com/deepcalm/campaign-console/internal/usecases/advising"
	"github.com/deepcalm/campaign-console/internal/usecases/campaigning"
	"github.com/deepcalm/campaign-console/internal/usecases/insighting"
	"github.com/deepcalm/campaign-console/internal/usecases/integrating"
	"github.com/deepcalm/campaign-console/internal/usecases/pricing"
	"github.com/deepcalm/campaign-console/pkg/metrics"
	"github.com/deepcalm/campaign-console/pkg/middleware"
)

// Services agrupa as dependências expostas pela API
type Services struct {
	Catalog      pricing.CatalogProvider
	Campaigns    campaigning.CampaignService
	Insights     insighting.Insighter
	Integrations integrating.IntegrationService
	Advisor      advising.Advisor
	CronJobs     handler.CronJobServices
}

type Server struct {
	httpServer *http.Server
}

func New(config *config.Config, services Services, m *metrics.Metrics) (*Server, error) {
	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           NewHandler(config, services, m),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// NewHandler monta o router com a cadeia de middlewares globais
func NewHandler(config *config.Config, services Services, m *metrics.Metrics) http.Handler {
	rt := router.New(
		router.WithInstrumentation(m),
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(router.Route{Path: "/metrics", Method: http.MethodGet, Handler: m.Handler()}),
		router.WithRoutes(handler.Catalog(services.Catalog)...),
		router.WithRoutes(handler.Economics(services.Catalog)...),
		router.WithRoutes(handler.Campaigns(services.Campaigns)...),
		router.WithRoutes(handler.Analytics(services.Insights)...),
		router.WithRoutes(handler.Integrations(services.Integrations)...),
		router.WithRoutes(handler.Analyst(services.Advisor)...),
		router.WithRoutes(handler.CronJobs(services.CronJobs)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.AllowedOrigins),
	}

	return alice.New(middlewares...).Then(rt)
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	// Aguardar pelo sinal ou pelo cancelamento do contexto
	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	// Define timeout para desligamento
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Log de início do desligamento
	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	logrus.Info("Executando operações de limpeza antes do desligamento")

	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
