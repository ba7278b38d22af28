package insighting

import (
	"context"
	"net/url"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/deepcalm/campaign-console/infrastructure/integrator/backend/backendclient"
	"github.com/deepcalm/campaign-console/internal/domain"
	"github.com/deepcalm/campaign-console/internal/economics"
	"github.com/deepcalm/campaign-console/internal/querycache"
	"github.com/deepcalm/campaign-console/pkg/utils"
)

// DefaultRangeDays é a janela padrão do dashboard (hoje e os 29 dias anteriores)
const DefaultRangeDays = 30

const (
	scopeSummary  = querycache.ScopeAnalytics + "/summary"
	scopeDaily    = querycache.ScopeAnalytics + "/daily"
	scopeChannels = querycache.ScopeAnalytics + "/channels"
	scopeCampaign = querycache.ScopeAnalytics + "/campaign"
)

type Service struct {
	client backendclient.Client
	cache  *querycache.Cache
}

func NewService(client backendclient.Client, cache *querycache.Cache) *Service {
	return &Service{
		client: client,
		cache:  cache,
	}
}

// ResolveRange completa datas ausentes (fim = hoje, início = fim - 29 dias)
// e troca início e fim quando invertidos
func ResolveRange(start, end *time.Time, now time.Time) domain.DateRange {
	endDate := truncateDay(now)
	if end != nil {
		endDate = truncateDay(*end)
	}

	startDate := endDate.AddDate(0, 0, -(DefaultRangeDays - 1))
	if start != nil {
		startDate = truncateDay(*start)
	}

	if startDate.After(endDate) {
		startDate, endDate = endDate, startDate
	}

	return domain.DateRange{StartDate: startDate, EndDate: endDate}
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func rangeParams(dateRange domain.DateRange) url.Values {
	return url.Values{
		"start_date": {utils.FormatDate(dateRange.StartDate)},
		"end_date":   {utils.FormatDate(dateRange.EndDate)},
	}
}

func (s *Service) DashboardSummary(ctx context.Context, dateRange domain.DateRange) (*domain.DashboardSummary, error) {
	key := querycache.NewKey(scopeSummary, rangeParams(dateRange))

	return querycache.Get(ctx, s.cache, key, func(ctx context.Context) (*domain.DashboardSummary, error) {
		return s.client.GetDashboardSummary(ctx, dateRange)
	})
}

func (s *Service) DashboardDaily(ctx context.Context, dateRange domain.DateRange) ([]domain.DailyMetricPoint, error) {
	key := querycache.NewKey(scopeDaily, rangeParams(dateRange))

	return querycache.Get(ctx, s.cache, key, func(ctx context.Context) ([]domain.DailyMetricPoint, error) {
		return s.client.GetDashboardDaily(ctx, dateRange)
	})
}

func (s *Service) ChannelPerformance(ctx context.Context, dateRange domain.DateRange) ([]domain.ChannelEvaluation, error) {
	key := querycache.NewKey(scopeChannels, rangeParams(dateRange))

	snapshots, err := querycache.Get(ctx, s.cache, key, func(ctx context.Context) ([]domain.ChannelMetricSnapshot, error) {
		return s.client.GetChannelPerformance(ctx, dateRange)
	})
	if err != nil {
		return nil, err
	}

	evaluations := make([]domain.ChannelEvaluation, 0, len(snapshots))
	for _, snapshot := range snapshots {
		evaluation := economics.EvaluateChannel(snapshot)
		if evaluation.ChannelName == "" {
			evaluation.ChannelName = domain.AllowedChannels[snapshot.Channel]
		}
		evaluations = append(evaluations, evaluation)
	}

	sort.SliceStable(evaluations, func(i, j int) bool {
		return evaluations[i].Revenue > evaluations[j].Revenue
	})

	return evaluations, nil
}

func (s *Service) CampaignAnalytics(ctx context.Context, campaignID string, dateRange domain.DateRange) (*domain.CampaignEvaluation, error) {
	params := rangeParams(dateRange)
	params.Set("campaign_id", campaignID)

	analytics, err := querycache.Get(ctx, s.cache, querycache.NewKey(scopeCampaign, params), func(ctx context.Context) (*domain.CampaignAnalytics, error) {
		return s.client.GetCampaignAnalytics(ctx, campaignID, dateRange)
	})
	if err != nil {
		return nil, err
	}

	return economics.EvaluateCampaign(analytics), nil
}

func (s *Service) Overview(ctx context.Context, dateRange domain.DateRange) (*domain.DashboardOverview, error) {
	overview := &domain.DashboardOverview{Range: dateRange}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		summary, err := s.DashboardSummary(gctx, dateRange)
		overview.Summary = summary
		return err
	})

	g.Go(func() error {
		daily, err := s.DashboardDaily(gctx, dateRange)
		overview.Daily = daily
		return err
	})

	g.Go(func() error {
		channels, err := s.ChannelPerformance(gctx, dateRange)
		overview.Channels = channels
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return overview, nil
}
