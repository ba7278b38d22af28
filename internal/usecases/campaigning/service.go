// Package campaigning lista e altera campanhas no backend, anexando a previsão
// calculada pelo motor de economia a cada campanha exibida.
package campaigning

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/deepcalm/campaign-console/infrastructure/integrator/backend/backendclient"
	"github.com/deepcalm/campaign-console/internal/domain"
	"github.com/deepcalm/campaign-console/internal/economics"
	"github.com/deepcalm/campaign-console/internal/querycache"
	"github.com/deepcalm/campaign-console/internal/usecases/pricing"
	"github.com/deepcalm/campaign-console/pkg/metrics"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	scopeList   = querycache.ScopeCampaigns + "/list"
	scopeDetail = querycache.ScopeCampaigns + "/detail"
)

type CampaignService interface {
	List(ctx context.Context, params domain.CampaignListParams) (*domain.CampaignViewPage, error)
	Get(ctx context.Context, id string) (*domain.CampaignView, error)
	Execute(ctx context.Context, cmd Command) (*CommandResult, error)
}

type Service struct {
	client  backendclient.Client
	cache   *querycache.Cache
	catalog pricing.CatalogProvider
	metrics *metrics.Metrics
	now     func() time.Time
}

func NewService(
	client backendclient.Client,
	cache *querycache.Cache,
	catalog pricing.CatalogProvider,
	m *metrics.Metrics,
) *Service {
	return &Service{
		client:  client,
		cache:   cache,
		catalog: catalog,
		metrics: m,
		now:     time.Now,
	}
}

// NormalizeListParams aplica paginação padrão e limita o tamanho da página
func NormalizeListParams(params domain.CampaignListParams) (domain.CampaignListParams, error) {
	if params.Page < 1 {
		params.Page = DefaultPage
	}
	if params.PageSize < 1 {
		params.PageSize = DefaultPageSize
	}
	if params.PageSize > MaxPageSize {
		params.PageSize = MaxPageSize
	}

	if params.Status != "" {
		if _, ok := listableStatuses[params.Status]; !ok {
			return params, &ValidationError{Fields: map[string]string{"status": "status inválido: " + string(params.Status)}}
		}
	}

	return params, nil
}

func (s *Service) List(ctx context.Context, params domain.CampaignListParams) (*domain.CampaignViewPage, error) {
	params, err := NormalizeListParams(params)
	if err != nil {
		return nil, err
	}

	page, err := s.fetchPage(ctx, params)
	if err != nil {
		return nil, err
	}

	catalog := s.catalog.Catalog(ctx)
	views := make([]*domain.CampaignView, 0, len(page.Items))
	for _, campaign := range page.Items {
		views = append(views, withForecast(campaign, catalog))
	}

	return &domain.CampaignViewPage{
		Items:    views,
		Total:    page.Total,
		Page:     page.Page,
		PageSize: page.PageSize,
	}, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.CampaignView, error) {
	if id == "" {
		return nil, ErrCampaignIDRequired
	}

	campaign, err := s.fetchCampaign(ctx, id)
	if err != nil {
		return nil, err
	}

	return withForecast(campaign, s.catalog.Catalog(ctx)), nil
}

func (s *Service) fetchPage(ctx context.Context, params domain.CampaignListParams) (*domain.CampaignPage, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(params.Page))
	query.Set("page_size", strconv.Itoa(params.PageSize))
	if params.Status != "" {
		query.Set("status", string(params.Status))
	}

	return querycache.Get(ctx, s.cache, querycache.NewKey(scopeList, query), func(ctx context.Context) (*domain.CampaignPage, error) {
		return s.client.ListCampaigns(ctx, params)
	})
}

func (s *Service) fetchCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	key := querycache.NewKey(scopeDetail, url.Values{"id": {id}})

	return querycache.Get(ctx, s.cache, key, func(ctx context.Context) (*domain.Campaign, error) {
		return s.client.GetCampaign(ctx, id)
	})
}

// withForecast calcula a previsão sobre os campos do formulário; falhas (ex.: meta de CAC zero)
// viram ForecastError para a campanha ainda ser exibida
func withForecast(campaign *domain.Campaign, catalog domain.SkuCatalog) *domain.CampaignView {
	view := &domain.CampaignView{Campaign: campaign}
	if campaign == nil {
		return view
	}

	forecast, err := economics.EstimateForecast(campaign.Draft(), catalog)
	if err != nil {
		view.ForecastError = err.Error()
		return view
	}

	view.Forecast = &forecast
	return view
}
