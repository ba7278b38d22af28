package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/deepcalm/campaign-console/infrastructure/database/postgres"
	"github.com/deepcalm/campaign-console/infrastructure/integrator/backend/backendclient"
	"github.com/deepcalm/campaign-console/infrastructure/repository"
	"github.com/deepcalm/campaign-console/internal/api"
	"github.com/deepcalm/campaign-console/internal/api/handler"
	"github.com/deepcalm/campaign-console/internal/config"
	"github.com/deepcalm/campaign-console/internal/querycache"
	"github.com/deepcalm/campaign-console/internal/scheduler"
	"github.com/deepcalm/campaign-console/internal/usecases/advising"
	"github.com/deepcalm/campaign-console/internal/usecases/campaigning"
	"github.com/deepcalm/campaign-console/internal/usecases/insighting"
	"github.com/deepcalm/campaign-console/internal/usecases/integrating"
	"github.com/deepcalm/campaign-console/internal/usecases/pricing"
	"github.com/deepcalm/campaign-console/pkg/metrics"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := metrics.New()
	cache := querycache.New(cfg.Cache.TTL(), querycache.WithMetrics(m))
	backend := backendclient.NewClient(cfg, m)

	// O banco só é necessário quando o catálogo vem da tabela settings
	var settingRepo repository.SettingRepository
	if cfg.Catalog.Source == config.CatalogSourceDatabase {
		pgConn := pgconn(ctx, cfg.Database)
		defer pgConn.Close()

		settingRepo = repository.NewSettingRepository(pgConn)
	}

	catalog := pricing.NewProvider(cfg, settingRepo)
	logrus.WithField("catalog_source", cfg.Catalog.Source).Info("Catálogo de SKUs configurado")

	campaignService := campaigning.NewService(backend, cache, catalog, m)
	insightService := insighting.NewService(backend, cache)
	integrationService := integrating.NewService(backend, cache)
	advisor := advising.NewService(backend)

	dashboardRefreshService := scheduler.NewDashboardRefreshService(insightService, cache, m, cfg)
	integrationsSyncService := scheduler.NewIntegrationsSyncService(integrationService, m, cfg)

	// Inicia os agendadores em background
	if err := dashboardRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de atualização do dashboard")
	} else {
		logrus.Info("Agendador de atualização do dashboard iniciado com sucesso")
	}

	if err := integrationsSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de integrações")
	} else {
		logrus.Info("Agendador de sincronização de integrações iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Catalog:      catalog,
		Campaigns:    campaignService,
		Insights:     insightService,
		Integrations: integrationService,
		Advisor:      advisor,
		CronJobs: handler.CronJobServices{
			DashboardRefreshService: dashboardRefreshService,
			IntegrationsSyncService: integrationsSyncService,
		},
	}, m)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
