// Package pricing fornece o catálogo de SKUs e os valores iniciais do formulário de campanha.
package pricing

import (
	"context"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/deepcalm/campaign-console/infrastructure/repository"
	"github.com/deepcalm/campaign-console/internal/config"
	"github.com/deepcalm/campaign-console/internal/domain"
	"github.com/deepcalm/campaign-console/pkg/log"
)

// CatalogProvider entrega sempre uma cópia; o chamador pode alterá-la livremente
type CatalogProvider interface {
	Catalog(ctx context.Context) domain.SkuCatalog
	Defaults(ctx context.Context) domain.DraftDefaults
}

// NewProvider escolhe a fonte conforme CATALOG_SOURCE
func NewProvider(cfg *config.Config, settings repository.SettingRepository) CatalogProvider {
	if cfg.Catalog.Source == config.CatalogSourceDatabase && settings != nil {
		return NewSettingsProvider(settings, cfg.Catalog.RefreshInterval())
	}

	return StaticProvider{}
}

// StaticProvider usa o catálogo embutido
type StaticProvider struct{}

func (StaticProvider) Catalog(context.Context) domain.SkuCatalog {
	return domain.DefaultSkuCatalog()
}

func (StaticProvider) Defaults(context.Context) domain.DraftDefaults {
	return domain.DefaultDraftDefaults()
}

// SettingsProvider lê preços e valores padrão da tabela settings e os mantém em memória
// por refreshInterval. Em erro de leitura continua servindo o último valor carregado
// (ou o embutido, se nunca carregou).
type SettingsProvider struct {
	repo            repository.SettingRepository
	refreshInterval time.Duration
	now             func() time.Time

	mu       sync.Mutex
	catalog  domain.SkuCatalog
	defaults domain.DraftDefaults
	loadedAt time.Time
}

func NewSettingsProvider(repo repository.SettingRepository, refreshInterval time.Duration) *SettingsProvider {
	return &SettingsProvider{
		repo:            repo,
		refreshInterval: refreshInterval,
		now:             time.Now,
		catalog:         domain.DefaultSkuCatalog(),
		defaults:        domain.DefaultDraftDefaults(),
	}
}

func (p *SettingsProvider) Catalog(ctx context.Context) domain.SkuCatalog {
	p.ensureFresh(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()
	return copyCatalog(p.catalog)
}

func (p *SettingsProvider) Defaults(ctx context.Context) domain.DraftDefaults {
	p.ensureFresh(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.defaults
}

func (p *SettingsProvider) ensureFresh(ctx context.Context) {
	p.mu.Lock()
	stale := p.loadedAt.IsZero() || p.now().Sub(p.loadedAt) >= p.refreshInterval
	p.mu.Unlock()

	if !stale {
		return
	}

	if err := p.Refresh(ctx); err != nil {
		log.ForContext(ctx).WithError(err).Warn("Erro ao carregar catálogo do banco, usando valores em memória")
	}
}

// Refresh recarrega o catálogo do banco imediatamente
func (p *SettingsProvider) Refresh(ctx context.Context) error {
	settings, err := p.repo.ListByCategories(ctx, []string{domain.SettingCategoryPricing, domain.SettingCategoryFinancial})

	p.mu.Lock()
	defer p.mu.Unlock()

	// marca a tentativa para não martelar o banco quando ele está fora
	p.loadedAt = p.now()

	if err != nil {
		return err
	}

	p.catalog, p.defaults = buildFromSettings(ctx, settings)
	return nil
}

func buildFromSettings(ctx context.Context, settings []*domain.Setting) (domain.SkuCatalog, domain.DraftDefaults) {
	catalog := domain.DefaultSkuCatalog()
	defaults := domain.DefaultDraftDefaults()
	logger := log.ForContext(ctx)

	for _, setting := range settings {
		if setting == nil {
			continue
		}

		value, err := strconv.ParseFloat(strings.TrimSpace(setting.Value), 64)
		if err != nil || math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
			logger.WithField("setting", setting.Key).Warnf("Valor inválido ignorado: %q", setting.Value)
			continue
		}

		switch {
		case strings.HasPrefix(setting.Key, domain.SettingSKUPricePrefix):
			sku := domain.SKU(strings.TrimPrefix(setting.Key, domain.SettingSKUPricePrefix))
			if _, excluded := domain.ExcludedSKUs[sku]; excluded || sku == "" {
				continue
			}

			entry, ok := catalog[sku]
			if !ok {
				entry = domain.SkuCatalogEntry{SKU: sku, Label: string(sku)}
				if setting.Description != nil && *setting.Description != "" {
					entry.Label = *setting.Description
				}
			}
			entry.PriceRub = value
			catalog[sku] = entry

		case setting.Key == domain.SettingDefaultTargetCac:
			defaults.TargetCacRub = value
		case setting.Key == domain.SettingDefaultTargetRoas:
			defaults.TargetRoas = value
		case setting.Key == domain.SettingDefaultBudget && value > 0:
			defaults.BudgetRub = value
		}
	}

	return catalog, defaults
}

func copyCatalog(catalog domain.SkuCatalog) domain.SkuCatalog {
	out := make(domain.SkuCatalog, len(catalog))
	for sku, entry := range catalog {
		out[sku] = entry
	}
	return out
}
