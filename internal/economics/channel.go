package economics

import (
	"github.com/deepcalm/campaign-console/internal/domain"
	"github.com/deepcalm/campaign-console/pkg/utils"
)

// ConversionRate retorna conversões/leads em porcentagem com duas casas, ou nil sem leads
func ConversionRate(leads, conversions int) *float64 {
	if leads <= 0 {
		return nil
	}

	rate := utils.RoundWithTwoDecimalPlace(float64(conversions) / float64(leads) * 100)
	return &rate
}

// EvaluateChannel classifica o CAC do canal contra a meta do próprio canal e o ROAS
// pelos limites absolutos. ROAS sem dados fica sem status.
func EvaluateChannel(snapshot domain.ChannelMetricSnapshot) domain.ChannelEvaluation {
	cacStatus, roasStatus := classifyPair(snapshot.Cac, snapshot.TargetCac, snapshot.Roas)

	return domain.ChannelEvaluation{
		ChannelMetricSnapshot: snapshot,
		CACStatus:             cacStatus,
		ROASStatus:            roasStatus,
		ConversionRate:        ConversionRate(snapshot.Leads, snapshot.Conversions),
	}
}

// EvaluateCampaign aplica as mesmas regras usando as metas da própria campanha
func EvaluateCampaign(analytics *domain.CampaignAnalytics) *domain.CampaignEvaluation {
	if analytics == nil {
		return nil
	}

	m := analytics.Metrics
	cacStatus, roasStatus := classifyPair(m.ActualCacRub, m.TargetCacRub, m.ActualRoas)

	return &domain.CampaignEvaluation{
		CampaignAnalytics: analytics,
		CACStatus:         cacStatus,
		ROASStatus:        roasStatus,
		ConversionRate:    ConversionRate(m.LeadsCount, m.ConversionsCount),
	}
}

func classifyPair(cac, targetCac, roas *float64) (domain.StatusLevel, *domain.StatusLevel) {
	cacStatus, err := ClassifyMetric(cac, targetCac, domain.MetricCAC)
	if err != nil {
		// CAC NaN vindo do backend é tratado como dado insuficiente
		cacStatus = domain.StatusWarning
	}

	var roasStatus *domain.StatusLevel
	if status, err := ClassifyMetric(roas, nil, domain.MetricROAS); err == nil {
		roasStatus = &status
	}

	return cacStatus, roasStatus
}
