package domain

import "sort"

// SKU identifica uma oferta de serviço vendável com preço de referência fixo
type SKU string

const (
	SKURelax60      SKU = "RELAX-60"
	SKUDeep90       SKU = "DEEP-90"
	SKUAntiStress45 SKU = "ANTI-STRESS-45"
	SKUTherapy120   SKU = "THERAPY-120"
)

// ExcludedSKUs não podem ser publicados por regras de moderação das plataformas
var ExcludedSKUs = map[SKU]struct{}{
	"TANTRA-120": {},
	"YONI-240":   {},
}

type SkuCatalogEntry struct {
	SKU      SKU     `json:"sku"`
	Label    string  `json:"label"`
	PriceRub float64 `json:"price_rub"`
}

// SkuCatalog é o mapeamento somente leitura sku -> preço
type SkuCatalog map[SKU]SkuCatalogEntry

// Entries retorna as entradas na ordem de exibição do formulário
func (c SkuCatalog) Entries() []SkuCatalogEntry {
	entries := make([]SkuCatalogEntry, 0, len(c))
	seen := make(map[SKU]struct{}, len(c))

	for _, sku := range defaultSKUOrder {
		if entry, ok := c[sku]; ok {
			entries = append(entries, entry)
			seen[sku] = struct{}{}
		}
	}

	extra := make([]SkuCatalogEntry, 0)
	for sku, entry := range c {
		if _, ok := seen[sku]; !ok {
			extra = append(extra, entry)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i].SKU < extra[j].SKU })

	return append(entries, extra...)
}

var defaultSKUOrder = []SKU{SKURelax60, SKUDeep90, SKUAntiStress45, SKUTherapy120}

// DefaultSkuCatalog retorna uma cópia nova do catálogo padrão
func DefaultSkuCatalog() SkuCatalog {
	return SkuCatalog{
		SKURelax60:      {SKU: SKURelax60, Label: "Релаксационный массаж (60 мин)", PriceRub: 3500},
		SKUDeep90:       {SKU: SKUDeep90, Label: "Глубокий массаж (90 мин)", PriceRub: 5000},
		SKUAntiStress45: {SKU: SKUAntiStress45, Label: "Антистресс (45 мин)", PriceRub: 2800},
		SKUTherapy120:   {SKU: SKUTherapy120, Label: "Лечебный массаж (120 мин)", PriceRub: 7000},
	}
}

// Channel é uma plataforma de anúncios de terceiros
type Channel string

const (
	ChannelVK     Channel = "vk"
	ChannelDirect Channel = "direct"
	ChannelAvito  Channel = "avito"
)

var AllowedChannels = map[Channel]string{
	ChannelVK:     "VK Реклама",
	ChannelDirect: "Яндекс.Директ",
	ChannelAvito:  "Avito",
}

// DraftDefaults são os valores iniciais do formulário de campanha
type DraftDefaults struct {
	SKU           SKU     `json:"sku"`
	BudgetRub     float64 `json:"budget_rub"`
	TargetCacRub  float64 `json:"target_cac_rub"`
	TargetRoas    float64 `json:"target_roas"`
	AbTestEnabled bool    `json:"ab_test_enabled"`
}

func DefaultDraftDefaults() DraftDefaults {
	return DraftDefaults{
		SKU:           SKURelax60,
		BudgetRub:     15000,
		TargetCacRub:  500,
		TargetRoas:    5.0,
		AbTestEnabled: true,
	}
}
