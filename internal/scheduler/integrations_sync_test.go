package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/deepcalm/campaign-console/internal/config"
	"github.com/deepcalm/campaign-console/internal/domain"
	"github.com/deepcalm/campaign-console/internal/usecases/integrating/mocks"
	"github.com/deepcalm/campaign-console/pkg/log"
	"github.com/deepcalm/campaign-console/pkg/metrics"
)

func newIntegrationsSync(t *testing.T, maxConcurrent int) (*IntegrationsSyncService, *mocks.MockIntegrationService, *metrics.Metrics) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	integrations := mocks.NewMockIntegrationService(ctrl)
	m := metrics.New()

	cfg := &config.Config{IntegrationsSync: config.IntegrationsSync{
		CronSchedule:        "0 */6 * * *",
		RequestDelaySeconds: 1,
		MaxConcurrentJobs:   maxConcurrent,
		Enabled:             true,
	}}
	service := NewIntegrationsSyncService(integrations, m, cfg)
	service.sleep = func(time.Duration) {}

	return service, integrations, m
}

func TestIntegrationsSync_SyncsOnlyConnected(t *testing.T) {
	service, integrations, m := newIntegrationsSync(t, 2)

	integrations.EXPECT().List(gomock.Any()).Return([]domain.Integration{
		{Type: domain.IntegrationVK, Status: domain.IntegrationConnected},
		{Type: domain.IntegrationAvito, Status: domain.IntegrationDisconnected},
		{Type: domain.IntegrationDirect, Status: domain.IntegrationConnected},
		{Type: domain.IntegrationMetrika, Status: domain.IntegrationError},
	}, nil)
	integrations.EXPECT().Sync(gomock.Any(), domain.IntegrationVK).Return(&domain.IntegrationActionResult{Type: domain.IntegrationVK}, nil)
	integrations.EXPECT().Sync(gomock.Any(), domain.IntegrationDirect).Return(nil, errors.New("token expirado"))

	service.syncAll(context.Background())

	status := service.GetStatus()
	assert.Equal(t, false, status["sync_running"])
	assert.Equal(t, map[domain.IntegrationType]string{
		domain.IntegrationVK:     "ok",
		domain.IntegrationDirect: "token expirado",
	}, status["last_sync_results"])
	assert.Contains(t, scrape(m), schedulerRunSample(JobIntegrationsSync, "error", 1))
}

func TestIntegrationsSync_RespectsConcurrencyLimit(t *testing.T) {
	service, integrations, _ := newIntegrationsSync(t, 1)

	var current, peak int32
	service.sleep = func(time.Duration) {
		time.Sleep(time.Millisecond)
	}

	list := []domain.Integration{
		{Type: domain.IntegrationVK, Status: domain.IntegrationConnected},
		{Type: domain.IntegrationDirect, Status: domain.IntegrationConnected},
		{Type: domain.IntegrationAvito, Status: domain.IntegrationConnected},
	}
	integrations.EXPECT().List(gomock.Any()).Return(list, nil)
	integrations.EXPECT().
		Sync(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, integrationType domain.IntegrationType) (*domain.IntegrationActionResult, error) {
			n := atomic.AddInt32(&current, 1)
			for {
				p := atomic.LoadInt32(&peak)
				if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			atomic.AddInt32(&current, -1)
			return &domain.IntegrationActionResult{Type: integrationType}, nil
		}).
		Times(3)

	service.syncAll(context.Background())

	assert.Equal(t, int32(1), atomic.LoadInt32(&peak))
}

func TestIntegrationsSync_ListFailure(t *testing.T) {
	service, integrations, m := newIntegrationsSync(t, 2)

	integrations.EXPECT().List(gomock.Any()).Return(nil, errors.New("backend indisponível"))

	service.syncAll(context.Background())

	assert.Contains(t, scrape(m), schedulerRunSample(JobIntegrationsSync, "error", 1))
}

func TestIntegrationsSync_NothingConnected(t *testing.T) {
	service, integrations, m := newIntegrationsSync(t, 2)

	integrations.EXPECT().List(gomock.Any()).Return([]domain.Integration{
		{Type: domain.IntegrationVK, Status: domain.IntegrationDisconnected},
	}, nil)

	service.syncAll(context.Background())

	assert.Contains(t, scrape(m), schedulerRunSample(JobIntegrationsSync, "ok", 1))
}

func TestIntegrationsSync_StartRejectsInvalidCron(t *testing.T) {
	service, _, _ := newIntegrationsSync(t, 1)
	service.config.CronSchedule = "não é cron"

	err := service.Start(context.Background())
	require.Error(t, err)
}
