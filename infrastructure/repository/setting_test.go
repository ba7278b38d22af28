package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRow struct {
	values []any
	err    error
}

func (f fakeRow) Scan(dest ...any) error {
	if f.err != nil {
		return f.err
	}

	for i, d := range dest {
		switch target := d.(type) {
		case *string:
			*target = f.values[i].(string)
		case *time.Time:
			*target = f.values[i].(time.Time)
		default:
			if scanner, ok := d.(interface{ Scan(any) error }); ok {
				if err := scanner.Scan(f.values[i]); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func TestListByCategoriesQuery(t *testing.T) {
	query, args, err := listByCategoriesQuery([]string{"pricing", "financial"})

	require.NoError(t, err)
	assert.Equal(t,
		"SELECT s.key, s.value, s.value_type, s.category, s.description, s.updated_at FROM settings s WHERE s.category IN ($1,$2) ORDER BY s.key",
		query)
	assert.Equal(t, []any{"pricing", "financial"}, args)
}

func TestGetByKeyQuery(t *testing.T) {
	query, args, err := getByKeyQuery("sku_price_RELAX-60")

	require.NoError(t, err)
	assert.Contains(t, query, "WHERE s.key = $1")
	assert.Equal(t, []any{"sku_price_RELAX-60"}, args)
}

func TestDeserializeSetting(t *testing.T) {
	updatedAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	setting, err := deserializeSetting(fakeRow{values: []any{
		"sku_price_DEEP-90", "5200", "int", "pricing", nil, updatedAt,
	}})

	require.NoError(t, err)
	assert.Equal(t, "sku_price_DEEP-90", setting.Key)
	assert.Equal(t, "5200", setting.Value)
	assert.Nil(t, setting.Description)
	assert.Equal(t, updatedAt, setting.UpdatedAt)

	description := "Цена глубокого массажа"
	setting, err = deserializeSetting(fakeRow{values: []any{
		"sku_price_DEEP-90", "5200", "int", "pricing", description, updatedAt,
	}})
	require.NoError(t, err)
	require.NotNil(t, setting.Description)
	assert.Equal(t, description, *setting.Description)

	_, err = deserializeSetting(fakeRow{err: errors.New("scan")})
	assert.Error(t, err)
}
