package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2024-03-09")
	require.NoError(t, err)
	require.NotNil(t, date)
	assert.Equal(t, "2024-03-09", FormatDate(*date))

	date, err = ParseDate("")
	assert.NoError(t, err)
	assert.Nil(t, date)

	_, err = ParseDate("09/03/2024")
	assert.Error(t, err)
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 33.33, RoundWithTwoDecimalPlace(100.0/3))
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
	assert.Equal(t, 2.57, RoundWithTwoDecimalPlace(2.566))
}

func TestGenerateID(t *testing.T) {
	id, err := GenerateID()
	require.NoError(t, err)
	assert.Len(t, id, 6)

	other, err := GenerateID()
	require.NoError(t, err)
	assert.NotEqual(t, id, other)
}
