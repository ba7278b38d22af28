package domain

// ForecastResult é derivado de CampaignDraft + catálogo e nunca é armazenado
type ForecastResult struct {
	EstimatedConversions int64   `json:"estimated_conversions"`
	EstimatedRevenueRub  float64 `json:"estimated_revenue_rub"`
	EstimatedRoas        float64 `json:"estimated_roas"`
	EstimatedProfitRub   float64 `json:"estimated_profit_rub"`
}

type StatusLevel string

const (
	StatusSuccess StatusLevel = "success"
	StatusWarning StatusLevel = "warning"
	StatusDanger  StatusLevel = "danger"
)

type MetricKind string

const (
	MetricCAC  MetricKind = "cac"
	MetricROAS MetricKind = "roas"
)

// ChannelEvaluation acompanha o snapshot de um canal com as classificações calculadas
type ChannelEvaluation struct {
	ChannelMetricSnapshot
	CACStatus      StatusLevel  `json:"cac_status"`
	ROASStatus     *StatusLevel `json:"roas_status"`
	ConversionRate *float64     `json:"conversion_rate"`
}

type CampaignEvaluation struct {
	*CampaignAnalytics
	CACStatus      StatusLevel  `json:"cac_status"`
	ROASStatus     *StatusLevel `json:"roas_status"`
	ConversionRate *float64     `json:"conversion_rate"`
}
