package campaigning

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/deepcalm/campaign-console/internal/domain"
)

const (
	titleMinLength = 3
	titleMaxLength = 255
)

var skuPattern = regexp.MustCompile(`^[A-Z]+-[0-9]+$`)

// Status que podem ser definidos via atualização parcial
var patchableStatuses = map[domain.CampaignStatus]struct{}{
	domain.CampaignStatusDraft:   {},
	domain.CampaignStatusActive:  {},
	domain.CampaignStatusPaused:  {},
	domain.CampaignStatusStopped: {},
}

var listableStatuses = map[domain.CampaignStatus]struct{}{
	domain.CampaignStatusDraft:    {},
	domain.CampaignStatusActive:   {},
	domain.CampaignStatusPaused:   {},
	domain.CampaignStatusStopped:  {},
	domain.CampaignStatusArchived: {},
}

// ValidateDraft aplica as regras do formulário de campanha antes de enviar ao backend
func ValidateDraft(draft domain.CampaignDraft, catalog domain.SkuCatalog) error {
	verr := &ValidationError{}

	validateTitle(verr, draft.Title)

	switch {
	case !skuPattern.MatchString(string(draft.SKU)):
		verr.add("sku", "formato inválido, esperado AAA-000")
	case isExcluded(draft.SKU):
		verr.add("sku", fmt.Sprintf("SKU %s não pode ser publicado", draft.SKU))
	default:
		if _, ok := catalog[draft.SKU]; !ok {
			verr.add("sku", fmt.Sprintf("SKU %s não existe no catálogo", draft.SKU))
		}
	}

	if !finite(draft.BudgetRub) || draft.BudgetRub <= 0 {
		verr.add("budget_rub", "deve ser maior que zero")
	}
	if !finite(draft.TargetCacRub) || draft.TargetCacRub < 0 {
		verr.add("target_cac_rub", "não pode ser negativo")
	}
	if !finite(draft.TargetRoas) || draft.TargetRoas < 0 {
		verr.add("target_roas", "não pode ser negativo")
	}

	validateChannels(verr, draft.Channels)

	return verr.orNil()
}

// ValidatePatch valida apenas os campos presentes; patch vazio é rejeitado
func ValidatePatch(patch domain.CampaignPatch) error {
	verr := &ValidationError{}

	if patch.IsEmpty() {
		verr.add("patch", "nenhum campo para atualizar")
		return verr
	}

	if patch.Title != nil {
		validateTitle(verr, *patch.Title)
	}
	if patch.BudgetRub != nil && (!finite(*patch.BudgetRub) || *patch.BudgetRub <= 0) {
		verr.add("budget_rub", "deve ser maior que zero")
	}
	if patch.TargetCacRub != nil && (!finite(*patch.TargetCacRub) || *patch.TargetCacRub < 0) {
		verr.add("target_cac_rub", "não pode ser negativo")
	}
	if patch.TargetRoas != nil && (!finite(*patch.TargetRoas) || *patch.TargetRoas < 0) {
		verr.add("target_roas", "não pode ser negativo")
	}
	if patch.Status != nil {
		if _, ok := patchableStatuses[*patch.Status]; !ok {
			verr.add("status", fmt.Sprintf("status inválido: %s", *patch.Status))
		}
	}

	return verr.orNil()
}

func validateTitle(verr *ValidationError, title string) {
	length := utf8.RuneCountInString(strings.TrimSpace(title))
	if length < titleMinLength || length > titleMaxLength {
		verr.add("title", fmt.Sprintf("deve ter entre %d e %d caracteres", titleMinLength, titleMaxLength))
	}
}

func validateChannels(verr *ValidationError, channels []domain.Channel) {
	if len(channels) == 0 {
		verr.add("channels", "selecione ao menos um canal")
		return
	}

	seen := make(map[domain.Channel]struct{}, len(channels))
	for _, channel := range channels {
		if _, ok := domain.AllowedChannels[channel]; !ok {
			verr.add("channels", fmt.Sprintf("canal inválido: %s", channel))
			return
		}
		if _, dup := seen[channel]; dup {
			verr.add("channels", fmt.Sprintf("canal duplicado: %s", channel))
			return
		}
		seen[channel] = struct{}{}
	}
}

func isExcluded(sku domain.SKU) bool {
	_, excluded := domain.ExcludedSKUs[sku]
	return excluded
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
