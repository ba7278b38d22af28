// Package integrating consulta e altera as integrações com plataformas externas via backend.
package integrating

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/deepcalm/campaign-console/infrastructure/integrator/backend/backendclient"
	"github.com/deepcalm/campaign-console/internal/domain"
	"github.com/deepcalm/campaign-console/internal/querycache"
	"github.com/deepcalm/campaign-console/pkg/log"
)

const (
	scopeList   = querycache.ScopeIntegrations + "/list"
	scopeStatus = querycache.ScopeIntegrations + "/status"
)

type IntegrationService interface {
	List(ctx context.Context) ([]domain.Integration, error)
	Status(ctx context.Context, integrationType domain.IntegrationType) (*domain.Integration, error)
	Connect(ctx context.Context, integrationType domain.IntegrationType, token string) (*domain.IntegrationActionResult, error)
	Disconnect(ctx context.Context, integrationType domain.IntegrationType) (*domain.IntegrationActionResult, error)
	Sync(ctx context.Context, integrationType domain.IntegrationType) (*domain.IntegrationActionResult, error)
}

type Service struct {
	client backendclient.Client
	cache  *querycache.Cache
}

func NewService(client backendclient.Client, cache *querycache.Cache) *Service {
	return &Service{
		client: client,
		cache:  cache,
	}
}

// ParseType normaliza e valida o tipo vindo da URL
func ParseType(raw string) (domain.IntegrationType, error) {
	integrationType := domain.IntegrationType(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := domain.AllowedIntegrations[integrationType]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownIntegration, raw)
	}
	return integrationType, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Integration, error) {
	return querycache.Get(ctx, s.cache, querycache.NewKey(scopeList, nil), func(ctx context.Context) ([]domain.Integration, error) {
		return s.client.ListIntegrations(ctx)
	})
}

func (s *Service) Status(ctx context.Context, integrationType domain.IntegrationType) (*domain.Integration, error) {
	if _, ok := domain.AllowedIntegrations[integrationType]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownIntegration, integrationType)
	}

	key := querycache.NewKey(scopeStatus, url.Values{"type": {string(integrationType)}})
	return querycache.Get(ctx, s.cache, key, func(ctx context.Context) (*domain.Integration, error) {
		return s.client.GetIntegrationStatus(ctx, integrationType)
	})
}

func (s *Service) Connect(ctx context.Context, integrationType domain.IntegrationType, token string) (*domain.IntegrationActionResult, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ErrTokenRequired
	}

	return s.mutate(ctx, integrationType, "connect", func() (*domain.IntegrationActionResult, error) {
		return s.client.ConnectIntegration(ctx, integrationType, strings.TrimSpace(token))
	}, querycache.ScopeIntegrations)
}

func (s *Service) Disconnect(ctx context.Context, integrationType domain.IntegrationType) (*domain.IntegrationActionResult, error) {
	return s.mutate(ctx, integrationType, "disconnect", func() (*domain.IntegrationActionResult, error) {
		return s.client.DisconnectIntegration(ctx, integrationType)
	}, querycache.ScopeIntegrations)
}

// Sync também invalida analytics, já que a sincronização traz métricas novas
func (s *Service) Sync(ctx context.Context, integrationType domain.IntegrationType) (*domain.IntegrationActionResult, error) {
	return s.mutate(ctx, integrationType, "sync", func() (*domain.IntegrationActionResult, error) {
		return s.client.SyncIntegration(ctx, integrationType)
	}, querycache.ScopeIntegrations, querycache.ScopeAnalytics)
}

func (s *Service) mutate(
	ctx context.Context,
	integrationType domain.IntegrationType,
	action string,
	call func() (*domain.IntegrationActionResult, error),
	scopes ...string,
) (*domain.IntegrationActionResult, error) {
	if _, ok := domain.AllowedIntegrations[integrationType]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownIntegration, integrationType)
	}

	logger := log.ForContext(ctx).WithField("integration", string(integrationType))

	result, err := call()
	if err != nil {
		logger.WithError(err).Errorf("Erro ao executar %s da integração", action)
		return nil, err
	}

	s.cache.Invalidate(scopes...)
	logger.Infof("Integração: %s concluído", action)

	return result, nil
}
