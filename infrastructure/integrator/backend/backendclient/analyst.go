package backendclient

import (
	"context"
	"net/http"
	"strconv"

	"github.com/deepcalm/campaign-console/internal/domain"
)

func (c *BackendClient) AnalystHealth(ctx context.Context) (*domain.AnalystHealth, error) {
	var health domain.AnalystHealth
	if err := c.do(ctx, http.MethodGet, "/analyst/health", nil, nil, &health); err != nil {
		return nil, err
	}

	return &health, nil
}

func (c *BackendClient) Chat(ctx context.Context, request domain.ChatRequest) (*domain.ChatResponse, error) {
	var response domain.ChatResponse
	if err := c.do(ctx, http.MethodPost, "/analyst/chat", nil, request, &response); err != nil {
		return nil, err
	}

	return &response, nil
}

func (c *BackendClient) AnalyzeCampaign(ctx context.Context, campaignID int, request domain.AnalysisRequest) (*domain.CampaignAnalysis, error) {
	var analysis domain.CampaignAnalysis
	path := "/analyst/analyze/" + strconv.Itoa(campaignID)
	if err := c.do(ctx, http.MethodPost, path, nil, request, &analysis); err != nil {
		return nil, err
	}

	return &analysis, nil
}
