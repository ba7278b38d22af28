package campaigning

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepcalm/campaign-console/internal/domain"
)

func validDraft() domain.CampaignDraft {
	return domain.CampaignDraft{
		Title:         "Запуск сентябрь - Релакс",
		SKU:           domain.SKURelax60,
		BudgetRub:     15000,
		TargetCacRub:  450,
		TargetRoas:    5,
		Channels:      []domain.Channel{domain.ChannelVK, domain.ChannelDirect},
		AbTestEnabled: true,
	}
}

func TestValidateDraft(t *testing.T) {
	catalog := domain.DefaultSkuCatalog()

	tests := []struct {
		name   string
		mutate func(d *domain.CampaignDraft)
		field  string
	}{
		{"válido", func(d *domain.CampaignDraft) {}, ""},
		{"meta de CAC zero é permitida", func(d *domain.CampaignDraft) { d.TargetCacRub = 0 }, ""},
		{"título curto", func(d *domain.CampaignDraft) { d.Title = "ab" }, "title"},
		{"título só com espaços", func(d *domain.CampaignDraft) { d.Title = "     " }, "title"},
		{"título longo", func(d *domain.CampaignDraft) { d.Title = strings.Repeat("я", 256) }, "title"},
		{"sku fora do padrão", func(d *domain.CampaignDraft) { d.SKU = "relax-60" }, "sku"},
		{"sku excluído", func(d *domain.CampaignDraft) { d.SKU = "YONI-240" }, "sku"},
		{"sku fora do catálogo", func(d *domain.CampaignDraft) { d.SKU = "HOT-75" }, "sku"},
		{"orçamento zero", func(d *domain.CampaignDraft) { d.BudgetRub = 0 }, "budget_rub"},
		{"orçamento NaN", func(d *domain.CampaignDraft) { d.BudgetRub = math.NaN() }, "budget_rub"},
		{"meta de CAC negativa", func(d *domain.CampaignDraft) { d.TargetCacRub = -1 }, "target_cac_rub"},
		{"ROAS negativo", func(d *domain.CampaignDraft) { d.TargetRoas = -0.5 }, "target_roas"},
		{"sem canais", func(d *domain.CampaignDraft) { d.Channels = nil }, "channels"},
		{"canal desconhecido", func(d *domain.CampaignDraft) { d.Channels = []domain.Channel{"telegram"} }, "channels"},
		{"canal duplicado", func(d *domain.CampaignDraft) { d.Channels = []domain.Channel{"vk", "vk"} }, "channels"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := validDraft()
			tt.mutate(&draft)

			err := ValidateDraft(draft, catalog)
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, ErrValidation)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Fields, tt.field)
		})
	}
}

func TestValidateDraft_CollectsAllFields(t *testing.T) {
	err := ValidateDraft(domain.CampaignDraft{}, domain.DefaultSkuCatalog())

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 4)
	assert.Contains(t, err.Error(), "budget_rub")
}

func TestValidatePatch(t *testing.T) {
	title := "ok"
	budget := 0.0
	status := domain.CampaignStatusArchived
	stopped := domain.CampaignStatusStopped
	roas := 4.0

	var verr *ValidationError

	require.ErrorAs(t, ValidatePatch(domain.CampaignPatch{}), &verr)
	assert.Contains(t, verr.Fields, "patch")

	require.ErrorAs(t, ValidatePatch(domain.CampaignPatch{Title: &title, BudgetRub: &budget, Status: &status}), &verr)
	assert.Len(t, verr.Fields, 3)

	assert.NoError(t, ValidatePatch(domain.CampaignPatch{Status: &stopped, TargetRoas: &roas}))
}
