package backendclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/deepcalm/campaign-console/internal/domain"
)

func (c *BackendClient) GetDashboardSummary(ctx context.Context, dateRange domain.DateRange) (*domain.DashboardSummary, error) {
	var summary domain.DashboardSummary
	if err := c.do(ctx, http.MethodGet, "/analytics/dashboard", dateRangeQuery(dateRange), nil, &summary); err != nil {
		return nil, err
	}

	return &summary, nil
}

func (c *BackendClient) GetDashboardDaily(ctx context.Context, dateRange domain.DateRange) ([]domain.DailyMetricPoint, error) {
	points := make([]domain.DailyMetricPoint, 0)
	if err := c.do(ctx, http.MethodGet, "/analytics/dashboard/daily", dateRangeQuery(dateRange), nil, &points); err != nil {
		return nil, err
	}

	return points, nil
}

// GetChannelPerformance consulta a performance por canal. O backend publica o recurso
// em /analytics/dashboard/channels.
func (c *BackendClient) GetChannelPerformance(ctx context.Context, dateRange domain.DateRange) ([]domain.ChannelMetricSnapshot, error) {
	snapshots := make([]domain.ChannelMetricSnapshot, 0)
	if err := c.do(ctx, http.MethodGet, "/analytics/dashboard/channels", dateRangeQuery(dateRange), nil, &snapshots); err != nil {
		return nil, err
	}

	return snapshots, nil
}

func (c *BackendClient) GetCampaignAnalytics(ctx context.Context, id string, dateRange domain.DateRange) (*domain.CampaignAnalytics, error) {
	var analytics domain.CampaignAnalytics
	path := "/analytics/campaigns/" + url.PathEscape(id)
	if err := c.do(ctx, http.MethodGet, path, dateRangeQuery(dateRange), nil, &analytics); err != nil {
		return nil, err
	}

	return &analytics, nil
}
