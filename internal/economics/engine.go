// Package economics contém as regras puras de economia de campanha: previsão de
// resultados de um rascunho e classificação de CAC/ROAS realizados. Nenhuma função
// aqui faz I/O, guarda estado ou registra logs.
package economics

import (
	"math"

	"github.com/deepcalm/campaign-console/internal/domain"
)

const (
	// CACWarningTolerance é a faixa acima da meta de CAC ainda tratada como aviso
	CACWarningTolerance = 1.2

	ROASSuccessThreshold = 5.0
	ROASWarningThreshold = 3.0
)

// EstimateForecast calcula a previsão de um rascunho de campanha.
//
// As conversões são arredondadas para baixo (floor) para não superestimar o alcance.
func EstimateForecast(draft domain.CampaignDraft, catalog domain.SkuCatalog) (domain.ForecastResult, error) {
	if !isPositive(draft.BudgetRub) {
		return domain.ForecastResult{}, invalid("budget_rub", draft.BudgetRub)
	}

	if !isPositive(draft.TargetCacRub) {
		return domain.ForecastResult{}, invalid("target_cac_rub", draft.TargetCacRub)
	}

	quotient := math.Floor(draft.BudgetRub / draft.TargetCacRub)
	if quotient >= math.MaxInt64 {
		return domain.ForecastResult{}, invalid("budget_rub", draft.BudgetRub)
	}
	conversions := int64(quotient)

	entry, ok := catalog[draft.SKU]
	if !ok {
		return domain.ForecastResult{}, &InputError{Err: ErrUnknownSku, Field: "sku", Value: draft.SKU}
	}

	if math.IsNaN(entry.PriceRub) || math.IsInf(entry.PriceRub, 0) || entry.PriceRub < 0 {
		return domain.ForecastResult{}, invalid("price_rub", entry.PriceRub)
	}

	revenue := float64(conversions) * entry.PriceRub

	return domain.ForecastResult{
		EstimatedConversions: conversions,
		EstimatedRevenueRub:  revenue,
		EstimatedRoas:        revenue / draft.BudgetRub,
		EstimatedProfitRub:   revenue - draft.BudgetRub,
	}, nil
}

// ClassifyMetric compara uma métrica realizada com a sua meta.
//
// CAC sem valor ou sem meta (nula, zero ou negativa) é sempre "warning".
// ROAS usa limites absolutos e ignora a meta; ROAS nulo retorna ErrNoData.
func ClassifyMetric(value, target *float64, kind domain.MetricKind) (domain.StatusLevel, error) {
	if value != nil && math.IsNaN(*value) {
		return "", invalid("value", *value)
	}

	switch kind {
	case domain.MetricCAC:
		if value == nil || target == nil || math.IsNaN(*target) || *target <= 0 {
			return domain.StatusWarning, nil
		}

		switch {
		case *value <= *target:
			return domain.StatusSuccess, nil
		case *value <= *target*CACWarningTolerance:
			return domain.StatusWarning, nil
		default:
			return domain.StatusDanger, nil
		}

	case domain.MetricROAS:
		if value == nil {
			return "", ErrNoData
		}

		switch {
		case *value >= ROASSuccessThreshold:
			return domain.StatusSuccess, nil
		case *value >= ROASWarningThreshold:
			return domain.StatusWarning, nil
		default:
			return domain.StatusDanger, nil
		}
	}

	return "", invalid("kind", kind)
}

func isPositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
