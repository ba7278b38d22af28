package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/deepcalm/campaign-console/internal/config"
	"github.com/deepcalm/campaign-console/internal/querycache"
	"github.com/deepcalm/campaign-console/internal/usecases/insighting"
	"github.com/deepcalm/campaign-console/pkg/metrics"
)

const JobDashboardRefresh = "dashboard-refresh"

// DashboardRefreshService descarta as leituras de analytics em cache e recarrega o
// overview do período padrão, no mesmo ritmo em que o dashboard atualiza a tela
type DashboardRefreshService struct {
	scheduler *gocron.Scheduler
	config    config.DashboardRefresh
	cache     *querycache.Cache
	insighter insighting.Insighter
	metrics   *metrics.Metrics
	now       func() time.Time

	runMutex        sync.Mutex
	running         bool
	lastStartedAt   time.Time
	lastCompletedAt time.Time
	lastError       string
}

func NewDashboardRefreshService(
	insighter insighting.Insighter,
	cache *querycache.Cache,
	m *metrics.Metrics,
	appConfig *config.Config,
) *DashboardRefreshService {
	logrus.WithFields(logrus.Fields{
		"interval_seconds": appConfig.DashboardRefresh.IntervalSeconds,
		"enabled":          appConfig.DashboardRefresh.Enabled,
	}).Info("Configuração do agendador de atualização do dashboard carregada")

	return &DashboardRefreshService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    appConfig.DashboardRefresh,
		cache:     cache,
		insighter: insighter,
		metrics:   m,
		now:       time.Now,
	}
}

// Start inicia o agendador
func (s *DashboardRefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled || s.config.IntervalSeconds <= 0 {
		logrus.Info("Atualização periódica do dashboard desabilitada por configuração")
		return nil
	}

	logrus.WithField("interval_seconds", s.config.IntervalSeconds).Info("Iniciando agendador de atualização do dashboard")

	_, err := s.scheduler.Every(s.config.IntervalSeconds).Seconds().WaitForSchedule().Do(func() {
		s.refresh(context.Background())
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização do dashboard: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de atualização do dashboard")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *DashboardRefreshService) Stop() {
	s.scheduler.Stop()
}

// refresh retorna false quando outra execução já estava em andamento
func (s *DashboardRefreshService) refresh(ctx context.Context) bool {
	s.runMutex.Lock()
	if s.running {
		s.runMutex.Unlock()
		logrus.Debug("Atualização do dashboard já em andamento, ignorando")
		return false
	}
	s.running = true
	s.lastStartedAt = s.now()
	s.runMutex.Unlock()

	var err error
	defer func() {
		s.runMutex.Lock()
		s.running = false
		s.lastCompletedAt = s.now()
		s.lastError = ""
		if err != nil {
			s.lastError = err.Error()
		}
		s.runMutex.Unlock()
		s.metrics.SchedulerRun(JobDashboardRefresh, err)
	}()

	evicted := s.cache.Invalidate(querycache.ScopeAnalytics)

	dateRange := insighting.ResolveRange(nil, nil, s.now())
	if _, err = s.insighter.Overview(ctx, dateRange); err != nil {
		logrus.WithError(err).Error("Erro ao recarregar overview do dashboard")
		return true
	}

	logrus.WithFields(logrus.Fields{
		"evicted":    evicted,
		"start_date": dateRange.StartDate.Format(time.DateOnly),
		"end_date":   dateRange.EndDate.Format(time.DateOnly),
	}).Debug("Dashboard atualizado")

	return true
}

// TriggerManualSync inicia manualmente uma atualização do dashboard
func (s *DashboardRefreshService) TriggerManualSync() {
	s.runMutex.Lock()
	if s.running {
		s.runMutex.Unlock()
		logrus.Info("Atualização do dashboard já em andamento, ignorando solicitação manual")
		return
	}
	s.runMutex.Unlock()

	logrus.Info("Iniciando atualização manual do dashboard")
	go s.refresh(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *DashboardRefreshService) GetStatus() map[string]any {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	return map[string]any{
		"enabled":           s.config.Enabled,
		"interval_seconds":  s.config.IntervalSeconds,
		"running":           s.running,
		"last_started_at":   s.lastStartedAt,
		"last_completed_at": s.lastCompletedAt,
		"last_error":        s.lastError,
	}
}
