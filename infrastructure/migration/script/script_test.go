package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepcalm/campaign-console/internal/domain"
)

func TestSeedRows(t *testing.T) {
	rows := seedRows()

	byKey := make(map[string]seedRow, len(rows))
	for _, row := range rows {
		_, duplicated := byKey[row.Key]
		require.False(t, duplicated, row.Key)
		byKey[row.Key] = row
	}

	assert.Len(t, rows, len(domain.DefaultSkuCatalog())+3)
	assert.Equal(t, "3500", byKey["sku_price_RELAX-60"].Value)
	assert.Equal(t, domain.SettingCategoryPricing, byKey["sku_price_THERAPY-120"].Category)
	assert.Equal(t, "500", byKey[domain.SettingDefaultTargetCac].Value)
	assert.Equal(t, "5", byKey[domain.SettingDefaultTargetRoas].Value)
	assert.Equal(t, "15000", byKey[domain.SettingDefaultBudget].Value)

	for _, excluded := range []string{"sku_price_TANTRA-120", "sku_price_YONI-240"} {
		_, ok := byKey[excluded]
		assert.False(t, ok, excluded)
	}
}
