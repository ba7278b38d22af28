package economics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepcalm/campaign-console/internal/domain"
)

func TestConversionRate(t *testing.T) {
	assert.Nil(t, ConversionRate(0, 5))

	rate := ConversionRate(3, 1)
	require.NotNil(t, rate)
	assert.Equal(t, 33.33, *rate)
}

func TestEvaluateChannel(t *testing.T) {
	evaluation := EvaluateChannel(domain.ChannelMetricSnapshot{
		Channel:     domain.ChannelVK,
		Spend:       6000,
		Leads:       40,
		Conversions: 10,
		Revenue:     35000,
		Cac:         ptr(600),
		Roas:        ptr(5.83),
		TargetCac:   ptr(500),
	})

	assert.Equal(t, domain.StatusWarning, evaluation.CACStatus)
	require.NotNil(t, evaluation.ROASStatus)
	assert.Equal(t, domain.StatusSuccess, *evaluation.ROASStatus)
	require.NotNil(t, evaluation.ConversionRate)
	assert.Equal(t, 25.0, *evaluation.ConversionRate)
	assert.Equal(t, domain.ChannelVK, evaluation.Channel)
}

func TestEvaluateChannel_NoData(t *testing.T) {
	evaluation := EvaluateChannel(domain.ChannelMetricSnapshot{Channel: domain.ChannelAvito})

	assert.Equal(t, domain.StatusWarning, evaluation.CACStatus)
	assert.Nil(t, evaluation.ROASStatus)
	assert.Nil(t, evaluation.ConversionRate)
}

func TestEvaluateCampaign(t *testing.T) {
	assert.Nil(t, EvaluateCampaign(nil))

	evaluation := EvaluateCampaign(&domain.CampaignAnalytics{
		Metrics: domain.CampaignMetrics{
			CampaignID:       "c-1",
			TargetCacRub:     ptr(450),
			ActualCacRub:     ptr(700),
			ActualRoas:       ptr(2.5),
			LeadsCount:       20,
			ConversionsCount: 4,
		},
	})

	require.NotNil(t, evaluation)
	assert.Equal(t, domain.StatusDanger, evaluation.CACStatus)
	require.NotNil(t, evaluation.ROASStatus)
	assert.Equal(t, domain.StatusDanger, *evaluation.ROASStatus)
	assert.Equal(t, 20.0, *evaluation.ConversionRate)
}
