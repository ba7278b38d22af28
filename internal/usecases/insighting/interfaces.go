package insighting

import (
	"context"

	"github.com/deepcalm/campaign-console/internal/domain"
)

// Insighter agrega as leituras de analytics usadas pelo dashboard
type Insighter interface {
	// DashboardSummary retorna os totais do período
	DashboardSummary(ctx context.Context, dateRange domain.DateRange) (*domain.DashboardSummary, error)

	// DashboardDaily retorna a série diária do período
	DashboardDaily(ctx context.Context, dateRange domain.DateRange) ([]domain.DailyMetricPoint, error)

	// ChannelPerformance retorna os canais classificados, do maior para o menor faturamento
	ChannelPerformance(ctx context.Context, dateRange domain.DateRange) ([]domain.ChannelEvaluation, error)

	// CampaignAnalytics retorna as métricas de uma campanha classificadas contra as metas dela
	CampaignAnalytics(ctx context.Context, campaignID string, dateRange domain.DateRange) (*domain.CampaignEvaluation, error)

	// Overview busca resumo, série diária e canais em paralelo
	Overview(ctx context.Context, dateRange domain.DateRange) (*domain.DashboardOverview, error)
}
