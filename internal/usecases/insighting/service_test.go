package insighting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/deepcalm/campaign-console/infrastructure/integrator/backend/mocks"
	"github.com/deepcalm/campaign-console/internal/domain"
	"github.com/deepcalm/campaign-console/internal/querycache"
)

func ptr(v float64) *float64 { return &v }

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTestService(t *testing.T) (*Service, *mocks.MockClient) {
	t.Helper()
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	return NewService(client, querycache.New(time.Minute)), client
}

func TestResolveRange(t *testing.T) {
	now := time.Date(2024, 3, 30, 15, 45, 0, 0, time.UTC)

	tests := []struct {
		name     string
		start    *time.Time
		end      *time.Time
		expected domain.DateRange
	}{
		{"padrão de 30 dias", nil, nil, domain.DateRange{StartDate: day(2024, 3, 1), EndDate: day(2024, 3, 30)}},
		{"só início", timePtr(day(2024, 3, 10)), nil, domain.DateRange{StartDate: day(2024, 3, 10), EndDate: day(2024, 3, 30)}},
		{"só fim", nil, timePtr(day(2024, 2, 29)), domain.DateRange{StartDate: day(2024, 1, 31), EndDate: day(2024, 2, 29)}},
		{"invertido", timePtr(day(2024, 3, 20)), timePtr(day(2024, 3, 5)), domain.DateRange{StartDate: day(2024, 3, 5), EndDate: day(2024, 3, 20)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolveRange(tt.start, tt.end, now))
		})
	}
}

func timePtr(t time.Time) *time.Time { return &t }

func TestChannelPerformance_EvaluatesAndSorts(t *testing.T) {
	service, client := newTestService(t)
	dateRange := domain.DateRange{StartDate: day(2024, 3, 1), EndDate: day(2024, 3, 30)}

	client.EXPECT().GetChannelPerformance(gomock.Any(), dateRange).Return([]domain.ChannelMetricSnapshot{
		{Channel: domain.ChannelAvito, Revenue: 1000, Cac: ptr(900), TargetCac: ptr(500), Roas: ptr(1.1), Leads: 10, Conversions: 1},
		{Channel: domain.ChannelVK, ChannelName: "VK", Revenue: 35000, Cac: ptr(480), TargetCac: ptr(500), Roas: ptr(6.2), Leads: 40, Conversions: 10},
		{Channel: domain.ChannelDirect, Revenue: 0},
	}, nil).Times(1)

	evaluations, err := service.ChannelPerformance(context.Background(), dateRange)
	require.NoError(t, err)
	require.Len(t, evaluations, 3)

	assert.Equal(t, domain.ChannelVK, evaluations[0].Channel)
	assert.Equal(t, domain.StatusSuccess, evaluations[0].CACStatus)
	assert.Equal(t, domain.StatusSuccess, *evaluations[0].ROASStatus)

	assert.Equal(t, domain.ChannelAvito, evaluations[1].Channel)
	assert.Equal(t, "Avito", evaluations[1].ChannelName)
	assert.Equal(t, domain.StatusDanger, evaluations[1].CACStatus)

	assert.Equal(t, domain.ChannelDirect, evaluations[2].Channel)
	assert.Equal(t, domain.StatusWarning, evaluations[2].CACStatus)
	assert.Nil(t, evaluations[2].ROASStatus)

	// segunda leitura vem do cache
	_, err = service.ChannelPerformance(context.Background(), dateRange)
	require.NoError(t, err)
}

func TestCampaignAnalytics(t *testing.T) {
	service, client := newTestService(t)
	dateRange := domain.DateRange{StartDate: day(2024, 3, 1), EndDate: day(2024, 3, 30)}

	client.EXPECT().GetCampaignAnalytics(gomock.Any(), "c-1", dateRange).Return(&domain.CampaignAnalytics{
		Metrics: domain.CampaignMetrics{
			CampaignID:       "c-1",
			TargetCacRub:     ptr(500),
			ActualCacRub:     ptr(550),
			ActualRoas:       ptr(3.5),
			LeadsCount:       8,
			ConversionsCount: 2,
		},
	}, nil)

	evaluation, err := service.CampaignAnalytics(context.Background(), "c-1", dateRange)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusWarning, evaluation.CACStatus)
	assert.Equal(t, domain.StatusWarning, *evaluation.ROASStatus)
	assert.Equal(t, 25.0, *evaluation.ConversionRate)
}

func TestOverview(t *testing.T) {
	service, client := newTestService(t)
	dateRange := domain.DateRange{StartDate: day(2024, 3, 1), EndDate: day(2024, 3, 30)}

	client.EXPECT().GetDashboardSummary(gomock.Any(), dateRange).Return(&domain.DashboardSummary{TotalCampaigns: 3}, nil)
	client.EXPECT().GetDashboardDaily(gomock.Any(), dateRange).Return([]domain.DailyMetricPoint{{Date: "2024-03-01"}}, nil)
	client.EXPECT().GetChannelPerformance(gomock.Any(), dateRange).Return([]domain.ChannelMetricSnapshot{{Channel: domain.ChannelVK}}, nil)

	overview, err := service.Overview(context.Background(), dateRange)

	require.NoError(t, err)
	assert.Equal(t, dateRange, overview.Range)
	assert.Equal(t, 3, overview.Summary.TotalCampaigns)
	assert.Len(t, overview.Daily, 1)
	assert.Len(t, overview.Channels, 1)
}

func TestOverview_FailsWhenAnyPartFails(t *testing.T) {
	service, client := newTestService(t)
	dateRange := domain.DateRange{StartDate: day(2024, 3, 1), EndDate: day(2024, 3, 30)}
	boom := errors.New("backend fora do ar")

	client.EXPECT().GetDashboardSummary(gomock.Any(), dateRange).Return(nil, boom)
	client.EXPECT().GetDashboardDaily(gomock.Any(), dateRange).Return([]domain.DailyMetricPoint{}, nil).AnyTimes()
	client.EXPECT().GetChannelPerformance(gomock.Any(), dateRange).Return([]domain.ChannelMetricSnapshot{}, nil).AnyTimes()

	_, err := service.Overview(context.Background(), dateRange)

	assert.ErrorIs(t, err, boom)
}
