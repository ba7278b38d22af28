// Script de criação e carga inicial da tabela settings usada quando CATALOG_SOURCE=database.
// Linhas existentes não são sobrescritas, preservando preços ajustados manualmente.
package main

import (
	"database/sql"
	"strconv"
	"time"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/deepcalm/campaign-console/internal/config"
	"github.com/deepcalm/campaign-console/internal/domain"
)

const createSettingsTable = `
	CREATE TABLE IF NOT EXISTS settings (
		key         VARCHAR(100) PRIMARY KEY,
		value       TEXT         NOT NULL,
		value_type  VARCHAR(20)  NOT NULL DEFAULT 'string',
		category    VARCHAR(50)  NOT NULL,
		description TEXT,
		updated_at  TIMESTAMP    NOT NULL DEFAULT NOW()
	)`

type seedRow struct {
	Key         string
	Value       string
	ValueType   string
	Category    string
	Description string
}

func setupLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	logrus.Info("Iniciando script de migração da tabela settings...")
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// seedRows gera as linhas a partir do catálogo e dos padrões embutidos
func seedRows() []seedRow {
	rows := make([]seedRow, 0)

	for _, entry := range domain.DefaultSkuCatalog().Entries() {
		rows = append(rows, seedRow{
			Key:         domain.SettingSKUPricePrefix + string(entry.SKU),
			Value:       formatNumber(entry.PriceRub),
			ValueType:   "number",
			Category:    domain.SettingCategoryPricing,
			Description: entry.Label,
		})
	}

	defaults := domain.DefaultDraftDefaults()
	rows = append(rows,
		seedRow{
			Key:         domain.SettingDefaultTargetCac,
			Value:       formatNumber(defaults.TargetCacRub),
			ValueType:   "number",
			Category:    domain.SettingCategoryPricing,
			Description: "Целевой CAC по умолчанию (₽)",
		},
		seedRow{
			Key:         domain.SettingDefaultTargetRoas,
			Value:       formatNumber(defaults.TargetRoas),
			ValueType:   "number",
			Category:    domain.SettingCategoryPricing,
			Description: "Целевой ROAS по умолчанию",
		},
		seedRow{
			Key:         domain.SettingDefaultBudget,
			Value:       formatNumber(defaults.BudgetRub),
			ValueType:   "number",
			Category:    domain.SettingCategoryFinancial,
			Description: "Бюджет кампании по умолчанию (₽)",
		},
	)

	return rows
}

func insertSettings(tx *sql.Tx, rows []seedRow) error {
	logrus.Infof("Iniciando inserção de %d configurações...", len(rows))
	startTime := time.Now()

	stmt, err := tx.Prepare(`
		INSERT INTO settings (key, value, value_type, category, description)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (key) DO NOTHING`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	insertedCount := 0
	for i, row := range rows {
		result, err := stmt.Exec(row.Key, row.Value, row.ValueType, row.Category, row.Description)
		if err != nil {
			logrus.Errorf("ERRO ao inserir configuração [%d/%d] %s: %v", i+1, len(rows), row.Key, err)
			return err
		}

		if affected, _ := result.RowsAffected(); affected > 0 {
			insertedCount++
		}
	}

	logrus.Infof("Inserção concluída em %v. Inseridas: %d, Já existentes: %d",
		time.Since(startTime), insertedCount, len(rows)-insertedCount)

	return nil
}

func main() {
	setupLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("ERRO ao carregar configuração: %v", err)
	}

	logrus.Info("Conectando ao banco de dados...")
	db, err := sql.Open(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		logrus.Fatalf("ERRO ao conectar ao banco de dados: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logrus.Fatalf("ERRO ao verificar conexão com o banco: %v", err)
	}

	if _, err := db.Exec(createSettingsTable); err != nil {
		logrus.Fatalf("ERRO ao criar tabela settings: %v", err)
	}

	tx, err := db.Begin()
	if err != nil {
		logrus.Fatalf("ERRO ao iniciar transação: %v", err)
	}

	if err := insertSettings(tx, seedRows()); err != nil {
		_ = tx.Rollback()
		logrus.Fatalf("ERRO ao inserir configurações, transação revertida: %v", err)
	}

	if err := tx.Commit(); err != nil {
		logrus.Fatalf("ERRO ao confirmar transação: %v", err)
	}

	logrus.Info("Migração da tabela settings concluída com sucesso")
}
