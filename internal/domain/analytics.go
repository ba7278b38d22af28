package domain

import "time"

// DateRange é o período (inclusivo) das consultas de analytics
type DateRange struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

type TopCampaign struct {
	CampaignID    string  `json:"campaign_id"`
	CampaignTitle string  `json:"campaign_title"`
	Roas          float64 `json:"roas"`
}

type DashboardSummary struct {
	TotalCampaigns        int          `json:"total_campaigns"`
	ActiveCampaigns       int          `json:"active_campaigns"`
	PausedCampaigns       int          `json:"paused_campaigns"`
	TotalBudgetRub        float64      `json:"total_budget_rub"`
	TotalSpentRub         float64      `json:"total_spent_rub"`
	BudgetUtilization     float64      `json:"budget_utilization"`
	TotalLeads            int          `json:"total_leads"`
	TotalConversions      int          `json:"total_conversions"`
	TotalRevenueRub       float64      `json:"total_revenue_rub"`
	AvgCacRub             *float64     `json:"avg_cac_rub"`
	AvgRoas               *float64     `json:"avg_roas"`
	TopPerformingCampaign *TopCampaign `json:"top_performing_campaign"`
}

type DailyMetricPoint struct {
	Date        string   `json:"date"`
	Conversions int      `json:"conversions"`
	Leads       int      `json:"leads"`
	Revenue     float64  `json:"revenue"`
	Spend       float64  `json:"spend"`
	Cac         *float64 `json:"cac"`
	Roas        *float64 `json:"roas"`
}

type SparklinePoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// ChannelMetricSnapshot vem do serviço de analytics; campos nulos significam "sem dados"
type ChannelMetricSnapshot struct {
	Channel       Channel          `json:"channel"`
	ChannelName   string           `json:"channelName"`
	Spend         float64          `json:"spend"`
	Leads         int              `json:"leads"`
	Conversions   int              `json:"conversions"`
	Revenue       float64          `json:"revenue"`
	Cac           *float64         `json:"cac"`
	Roas          *float64         `json:"roas"`
	TargetCac     *float64         `json:"targetCac"`
	SparklineData []SparklinePoint `json:"sparklineData,omitempty"`
}

type CampaignMetrics struct {
	CampaignID       string   `json:"campaign_id"`
	CampaignTitle    string   `json:"campaign_title"`
	SKU              SKU      `json:"sku"`
	BudgetRub        float64  `json:"budget_rub"`
	SpentRub         float64  `json:"spent_rub"`
	TargetCacRub     *float64 `json:"target_cac_rub"`
	TargetRoas       *float64 `json:"target_roas"`
	Impressions      int      `json:"impressions"`
	Clicks           int      `json:"clicks"`
	Ctr              float64  `json:"ctr"`
	LeadsCount       int      `json:"leads_count"`
	ConversionsCount int      `json:"conversions_count"`
	ConversionRate   float64  `json:"conversion_rate"`
	RevenueRub       float64  `json:"revenue_rub"`
	ActualCacRub     *float64 `json:"actual_cac_rub"`
	ActualRoas       *float64 `json:"actual_roas"`
}

type ChannelBreakdown struct {
	ChannelCode      string   `json:"channel_code"`
	ChannelName      string   `json:"channel_name"`
	PlacementsCount  int      `json:"placements_count"`
	ActivePlacements int      `json:"active_placements"`
	SpentRub         float64  `json:"spent_rub"`
	LeadsCount       int      `json:"leads_count"`
	ConversionsCount int      `json:"conversions_count"`
	RevenueRub       float64  `json:"revenue_rub"`
	CacRub           *float64 `json:"cac_rub"`
	Roas             *float64 `json:"roas"`
}

type CampaignAnalytics struct {
	Metrics  CampaignMetrics    `json:"metrics"`
	Channels []ChannelBreakdown `json:"channels"`
}

// DashboardOverview agrega tudo o que a tela inicial do dashboard consome
type DashboardOverview struct {
	Range    DateRange           `json:"range"`
	Summary  *DashboardSummary   `json:"summary"`
	Daily    []DailyMetricPoint  `json:"daily"`
	Channels []ChannelEvaluation `json:"channels"`
}
