package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"

	"github.com/deepcalm/campaign-console/infrastructure/database/postgres"
	"github.com/deepcalm/campaign-console/internal/domain"
)

const settingsTable = "settings s"

var settingColumns = []string{
	"s.key",
	"s.value",
	"s.value_type",
	"s.category",
	"s.description",
	"s.updated_at",
}

// SettingRepository lê a tabela settings (somente leitura)
type SettingRepository interface {
	ListByCategories(ctx context.Context, categories []string) ([]*domain.Setting, error)
	GetByKey(ctx context.Context, key string) (*domain.Setting, error)
}

type settingRepository struct {
	conn postgres.Queryer
}

func NewSettingRepository(conn postgres.Queryer) SettingRepository {
	return &settingRepository{
		conn: conn,
	}
}

func listByCategoriesQuery(categories []string) (string, []any, error) {
	return squirrel.
		Select(settingColumns...).
		From(settingsTable).
		Where(squirrel.Eq{"s.category": categories}).
		OrderBy("s.key").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func getByKeyQuery(key string) (string, []any, error) {
	return squirrel.
		Select(settingColumns...).
		From(settingsTable).
		Where(squirrel.Eq{"s.key": key}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (s *settingRepository) ListByCategories(ctx context.Context, categories []string) ([]*domain.Setting, error) {
	if len(categories) == 0 {
		return []*domain.Setting{}, nil
	}

	query, args, err := listByCategoriesQuery(categories)
	if err != nil {
		return nil, err
	}

	rows, err := s.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	settings := make([]*domain.Setting, 0)
	for rows.Next() {
		setting, err := deserializeSetting(rows)
		if err != nil {
			return nil, err
		}
		settings = append(settings, setting)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return settings, nil
}

// GetByKey retorna nil, nil quando a chave não existe
func (s *settingRepository) GetByKey(ctx context.Context, key string) (*domain.Setting, error) {
	query, args, err := getByKeyQuery(key)
	if err != nil {
		return nil, err
	}

	setting, err := deserializeSetting(s.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return setting, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func deserializeSetting(row scanner) (*domain.Setting, error) {
	setting := &domain.Setting{}
	var description sql.NullString

	if err := row.Scan(
		&setting.Key,
		&setting.Value,
		&setting.ValueType,
		&setting.Category,
		&description,
		&setting.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if description.Valid {
		setting.Description = &description.String
	}

	return setting, nil
}
