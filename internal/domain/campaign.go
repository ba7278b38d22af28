package domain

import "time"

type CampaignStatus string

const (
	CampaignStatusDraft    CampaignStatus = "draft"
	CampaignStatusActive   CampaignStatus = "active"
	CampaignStatusPaused   CampaignStatus = "paused"
	CampaignStatusStopped  CampaignStatus = "stopped"
	CampaignStatusArchived CampaignStatus = "archived"
)

// CampaignDraft são os campos editáveis do formulário de campanha
type CampaignDraft struct {
	Title         string    `json:"title"`
	SKU           SKU       `json:"sku"`
	BudgetRub     float64   `json:"budget_rub"`
	TargetCacRub  float64   `json:"target_cac_rub"`
	TargetRoas    float64   `json:"target_roas"`
	Channels      []Channel `json:"channels"`
	AbTestEnabled bool      `json:"ab_test_enabled"`
}

// CampaignPatch representa uma atualização parcial; campos nulos não são alterados
type CampaignPatch struct {
	Title         *string         `json:"title,omitempty"`
	BudgetRub     *float64        `json:"budget_rub,omitempty"`
	TargetCacRub  *float64        `json:"target_cac_rub,omitempty"`
	TargetRoas    *float64        `json:"target_roas,omitempty"`
	Status        *CampaignStatus `json:"status,omitempty"`
	AbTestEnabled *bool           `json:"ab_test_enabled,omitempty"`
}

func (p CampaignPatch) IsEmpty() bool {
	return p.Title == nil && p.BudgetRub == nil && p.TargetCacRub == nil &&
		p.TargetRoas == nil && p.Status == nil && p.AbTestEnabled == nil
}

type Campaign struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	SKU           SKU            `json:"sku"`
	BudgetRub     float64        `json:"budget_rub"`
	TargetCacRub  float64        `json:"target_cac_rub"`
	TargetRoas    float64        `json:"target_roas"`
	Channels      []Channel      `json:"channels"`
	Status        CampaignStatus `json:"status"`
	AbTestEnabled bool           `json:"ab_test_enabled"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// Draft extrai os campos de formulário de uma campanha existente
func (c *Campaign) Draft() CampaignDraft {
	return CampaignDraft{
		Title:         c.Title,
		SKU:           c.SKU,
		BudgetRub:     c.BudgetRub,
		TargetCacRub:  c.TargetCacRub,
		TargetRoas:    c.TargetRoas,
		Channels:      c.Channels,
		AbTestEnabled: c.AbTestEnabled,
	}
}

// CampaignListParams são os filtros da listagem; Status vazio lista todos
type CampaignListParams struct {
	Page     int
	PageSize int
	Status   CampaignStatus
}

type CampaignPage struct {
	Items    []*Campaign `json:"items"`
	Total    int         `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
}

// CampaignView é a campanha acompanhada da previsão calculada para exibição
type CampaignView struct {
	*Campaign
	Forecast      *ForecastResult `json:"forecast,omitempty"`
	ForecastError string          `json:"forecast_error,omitempty"`
}

type CampaignViewPage struct {
	Items    []*CampaignView `json:"items"`
	Total    int             `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}
