package domain

import "time"

// Setting é uma linha da tabela de configurações chave-valor
type Setting struct {
	Key         string    `json:"key"`
	Value       string    `json:"value"`
	ValueType   string    `json:"value_type"`
	Category    string    `json:"category"`
	Description *string   `json:"description"`
	UpdatedAt   time.Time `json:"updated_at"`
}

const (
	SettingCategoryPricing   = "pricing"
	SettingCategoryFinancial = "financial"

	SettingSKUPricePrefix    = "sku_price_"
	SettingDefaultTargetCac  = "default_target_cac"
	SettingDefaultTargetRoas = "default_target_roas"
	SettingDefaultBudget     = "default_budget"
)
