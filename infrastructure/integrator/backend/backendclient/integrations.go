package backendclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/deepcalm/campaign-console/internal/domain"
)

type connectRequest struct {
	Token string `json:"token"`
}

func integrationPath(integrationType domain.IntegrationType, action string) string {
	return "/integrations/" + url.PathEscape(string(integrationType)) + "/" + action
}

func (c *BackendClient) ListIntegrations(ctx context.Context) ([]domain.Integration, error) {
	integrations := make([]domain.Integration, 0)
	if err := c.do(ctx, http.MethodGet, "/integrations", nil, nil, &integrations); err != nil {
		return nil, err
	}

	return integrations, nil
}

func (c *BackendClient) GetIntegrationStatus(ctx context.Context, integrationType domain.IntegrationType) (*domain.Integration, error) {
	var integration domain.Integration
	if err := c.do(ctx, http.MethodGet, integrationPath(integrationType, "status"), nil, nil, &integration); err != nil {
		return nil, err
	}

	return &integration, nil
}

func (c *BackendClient) ConnectIntegration(ctx context.Context, integrationType domain.IntegrationType, token string) (*domain.IntegrationActionResult, error) {
	return c.integrationAction(ctx, integrationType, "connect", connectRequest{Token: token})
}

func (c *BackendClient) DisconnectIntegration(ctx context.Context, integrationType domain.IntegrationType) (*domain.IntegrationActionResult, error) {
	return c.integrationAction(ctx, integrationType, "disconnect", nil)
}

func (c *BackendClient) SyncIntegration(ctx context.Context, integrationType domain.IntegrationType) (*domain.IntegrationActionResult, error) {
	return c.integrationAction(ctx, integrationType, "sync", nil)
}

func (c *BackendClient) integrationAction(ctx context.Context, integrationType domain.IntegrationType, action string, body any) (*domain.IntegrationActionResult, error) {
	result := domain.IntegrationActionResult{Type: integrationType}
	if err := c.do(ctx, http.MethodPost, integrationPath(integrationType, action), nil, body, &result); err != nil {
		return nil, err
	}

	if result.Type == "" {
		result.Type = integrationType
	}

	return &result, nil
}
