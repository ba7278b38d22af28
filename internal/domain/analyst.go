package domain

type AnalystHealth struct {
	Status    string         `json:"status"`
	AIService *string        `json:"ai_service,omitempty"`
	Message   *string        `json:"message,omitempty"`
	Settings  map[string]any `json:"settings,omitempty"`
}

type ChatRequest struct {
	Message    string `json:"message"`
	CampaignID *int   `json:"campaign_id,omitempty"`
}

type ChatResponse struct {
	Response   string `json:"response"`
	CampaignID *int   `json:"campaign_id,omitempty"`
}

type AnalysisRequest struct {
	Question *string `json:"question,omitempty"`
}

type AnalysisMetrics struct {
	TotalLeads       int     `json:"total_leads"`
	TotalConversions int     `json:"total_conversions"`
	ConversionRate   float64 `json:"conversion_rate"`
	TotalRevenue     float64 `json:"total_revenue"`
	TotalSpend       float64 `json:"total_spend"`
	Roas             float64 `json:"roas"`
	Cac              float64 `json:"cac"`
	PeriodDays       int     `json:"period_days"`
}

type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

type CampaignAnalysis struct {
	CampaignID      int             `json:"campaign_id"`
	Analysis        string          `json:"analysis"`
	Metrics         AnalysisMetrics `json:"metrics"`
	Recommendations []string        `json:"recommendations"`
	GeneratedAt     string          `json:"generated_at"`
	TokenUsage      TokenUsage      `json:"token_usage"`
}
