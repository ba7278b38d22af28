package backendclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/deepcalm/campaign-console/internal/domain"
)

func campaignPath(id string, suffix ...string) string {
	path := "/campaigns/" + url.PathEscape(id)
	for _, s := range suffix {
		path += "/" + s
	}
	return path
}

func (c *BackendClient) ListCampaigns(ctx context.Context, params domain.CampaignListParams) (*domain.CampaignPage, error) {
	query := url.Values{}
	if params.Page > 0 {
		query.Set("page", strconv.Itoa(params.Page))
	}
	if params.PageSize > 0 {
		query.Set("page_size", strconv.Itoa(params.PageSize))
	}
	if params.Status != "" {
		query.Set("status", string(params.Status))
	}

	var page domain.CampaignPage
	if err := c.do(ctx, http.MethodGet, "/campaigns", query, nil, &page); err != nil {
		return nil, err
	}

	return &page, nil
}

func (c *BackendClient) GetCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	var campaign domain.Campaign
	if err := c.do(ctx, http.MethodGet, campaignPath(id), nil, nil, &campaign); err != nil {
		return nil, err
	}

	return &campaign, nil
}

func (c *BackendClient) CreateCampaign(ctx context.Context, draft domain.CampaignDraft) (*domain.Campaign, error) {
	var campaign domain.Campaign
	if err := c.do(ctx, http.MethodPost, "/campaigns", nil, draft, &campaign); err != nil {
		return nil, err
	}

	return &campaign, nil
}

func (c *BackendClient) UpdateCampaign(ctx context.Context, id string, patch domain.CampaignPatch) (*domain.Campaign, error) {
	var campaign domain.Campaign
	if err := c.do(ctx, http.MethodPatch, campaignPath(id), nil, patch, &campaign); err != nil {
		return nil, err
	}

	return &campaign, nil
}

func (c *BackendClient) ActivateCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	var campaign domain.Campaign
	if err := c.do(ctx, http.MethodPost, campaignPath(id, "activate"), nil, nil, &campaign); err != nil {
		return nil, err
	}

	return &campaign, nil
}

func (c *BackendClient) PauseCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	var campaign domain.Campaign
	if err := c.do(ctx, http.MethodPost, campaignPath(id, "pause"), nil, nil, &campaign); err != nil {
		return nil, err
	}

	return &campaign, nil
}

func (c *BackendClient) DeleteCampaign(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, campaignPath(id), nil, nil, nil)
}
