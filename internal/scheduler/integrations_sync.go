package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/deepcalm/campaign-console/internal/config"
	"github.com/deepcalm/campaign-console/internal/domain"
	"github.com/deepcalm/campaign-console/internal/usecases/integrating"
	"github.com/deepcalm/campaign-console/pkg/metrics"
)

const JobIntegrationsSync = "integrations-sync"

// IntegrationsSyncService pede ao backend a sincronização de todas as integrações conectadas
type IntegrationsSyncService struct {
	scheduler    *gocron.Scheduler
	config       config.IntegrationsSync
	integrations integrating.IntegrationService
	metrics      *metrics.Metrics
	sleep        func(time.Duration)

	syncMutex           sync.Mutex
	syncRunning         bool
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncResults     map[domain.IntegrationType]string
}

func NewIntegrationsSyncService(
	integrations integrating.IntegrationService,
	m *metrics.Metrics,
	appConfig *config.Config,
) *IntegrationsSyncService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule":         appConfig.IntegrationsSync.CronSchedule,
		"request_delay_seconds": appConfig.IntegrationsSync.RequestDelaySeconds,
		"max_concurrent_jobs":   appConfig.IntegrationsSync.MaxConcurrentJobs,
		"sync_enabled":          appConfig.IntegrationsSync.Enabled,
	}).Info("Configuração do agendador de sincronização de integrações carregada")

	return &IntegrationsSyncService{
		scheduler:    gocron.NewScheduler(time.Local),
		config:       appConfig.IntegrationsSync,
		integrations: integrations,
		metrics:      m,
		sleep:        time.Sleep,
	}
}

// Start inicia o agendador
func (s *IntegrationsSyncService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Sincronização de integrações desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de integrações")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAll(context.Background())
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de integrações: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de integrações")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *IntegrationsSyncService) Stop() {
	s.scheduler.Stop()
}

func (s *IntegrationsSyncService) syncAll(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de integrações já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	var runErr error
	results := make(map[domain.IntegrationType]string)

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.lastSyncResults = results
		s.syncMutex.Unlock()
		s.metrics.SchedulerRun(JobIntegrationsSync, runErr)
	}()

	integrations, err := s.integrations.List(ctx)
	if err != nil {
		runErr = err
		logrus.WithError(err).Error("Erro ao buscar lista de integrações para sincronização")
		return
	}

	connected := make([]domain.IntegrationType, 0, len(integrations))
	for _, integration := range integrations {
		if integration.Status == domain.IntegrationConnected {
			connected = append(connected, integration.Type)
		}
	}

	if len(connected) == 0 {
		logrus.Info("Nenhuma integração conectada para sincronizar")
		return
	}

	startTime := time.Now()
	failures := s.syncIntegrations(ctx, connected, results)
	if failures > 0 {
		runErr = fmt.Errorf("%d de %d integrações falharam ao sincronizar", failures, len(connected))
	}

	logrus.WithFields(logrus.Fields{
		"duration":     time.Since(startTime).String(),
		"integrations": len(connected),
		"failures":     failures,
	}).Info("Sincronização de integrações concluída")
}

// syncIntegrations dispara as sincronizações limitando a concorrência e retorna o total de falhas
func (s *IntegrationsSyncService) syncIntegrations(ctx context.Context, types []domain.IntegrationType, results map[domain.IntegrationType]string) int {
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		failures int
	)

	for _, integrationType := range types {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(integrationType domain.IntegrationType) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			result, err := s.integrations.Sync(ctx, integrationType)

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				failures++
				results[integrationType] = err.Error()
				logrus.WithFields(logrus.Fields{
					"integration": integrationType,
					"error":       err.Error(),
				}).Error("Erro ao sincronizar integração")
			} else {
				results[integrationType] = "ok"
				entry := logrus.WithField("integration", integrationType)
				if result != nil && result.Message != "" {
					entry = entry.WithField("message", result.Message)
				}
				entry.Info("Integração sincronizada com sucesso")
			}

			// Aguardar antes da próxima requisição para evitar sobrecarga no backend
			s.sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
		}(integrationType)
	}

	wg.Wait()
	return failures
}

// TriggerManualSync inicia manualmente uma sincronização das integrações
func (s *IntegrationsSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de integrações já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de integrações")
	go s.syncAll(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *IntegrationsSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_request_delay_s":   s.config.RequestDelaySeconds,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_results":      s.lastSyncResults,
	}
}
