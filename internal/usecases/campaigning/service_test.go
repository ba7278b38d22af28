package campaigning

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/deepcalm/campaign-console/infrastructure/integrator/backend/backendclient"
	"github.com/deepcalm/campaign-console/infrastructure/integrator/backend/mocks"
	"github.com/deepcalm/campaign-console/internal/domain"
	"github.com/deepcalm/campaign-console/internal/economics"
	"github.com/deepcalm/campaign-console/internal/querycache"
	"github.com/deepcalm/campaign-console/internal/usecases/pricing"
	"github.com/deepcalm/campaign-console/pkg/log"
)

func newTestService(t *testing.T) (*Service, *mocks.MockClient, *querycache.Cache) {
	t.Helper()
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	cache := querycache.New(time.Minute)

	service := NewService(client, cache, pricing.StaticProvider{}, nil)
	service.now = func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) }

	return service, client, cache
}

func campaign(id string, budget, targetCac float64) *domain.Campaign {
	return &domain.Campaign{
		ID:           id,
		Title:        "Кампания " + id,
		SKU:          domain.SKURelax60,
		BudgetRub:    budget,
		TargetCacRub: targetCac,
		Channels:     []domain.Channel{domain.ChannelVK},
		Status:       domain.CampaignStatusDraft,
	}
}

func TestList_AttachesForecastAndCaches(t *testing.T) {
	service, client, _ := newTestService(t)

	client.EXPECT().
		ListCampaigns(gomock.Any(), domain.CampaignListParams{Page: 1, PageSize: 20}).
		Return(&domain.CampaignPage{
			Items:    []*domain.Campaign{campaign("c-1", 15000, 500), campaign("c-2", 15000, 0)},
			Total:    2,
			Page:     1,
			PageSize: 20,
		}, nil).
		Times(1)

	for i := 0; i < 2; i++ {
		page, err := service.List(context.Background(), domain.CampaignListParams{})
		require.NoError(t, err)
		require.Len(t, page.Items, 2)

		require.NotNil(t, page.Items[0].Forecast)
		assert.Equal(t, int64(30), page.Items[0].Forecast.EstimatedConversions)
		assert.Equal(t, 90000.0, page.Items[0].Forecast.EstimatedProfitRub)

		assert.Nil(t, page.Items[1].Forecast)
		assert.Contains(t, page.Items[1].ForecastError, economics.ErrInvalidInput.Error())
	}
}

func TestList_InvalidStatus(t *testing.T) {
	service, _, _ := newTestService(t)

	_, err := service.List(context.Background(), domain.CampaignListParams{Status: "deleted"})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestNormalizeListParams(t *testing.T) {
	params, err := NormalizeListParams(domain.CampaignListParams{Page: -1, PageSize: 500})

	require.NoError(t, err)
	assert.Equal(t, 1, params.Page)
	assert.Equal(t, MaxPageSize, params.PageSize)
}

func TestExecute_InvalidCommandNeverReachesBackend(t *testing.T) {
	service, _, _ := newTestService(t)

	draft := validDraft()
	draft.SKU = "TANTRA-120"

	commands := []Command{
		{Kind: CommandCreate, Draft: &draft},
		{Kind: CommandCreate},
		{Kind: CommandUpdate, CampaignID: "c-1", Patch: &domain.CampaignPatch{}},
		{Kind: CommandActivate},
		{Kind: CommandDelete},
	}

	for _, cmd := range commands {
		result, err := service.Execute(context.Background(), cmd)
		assert.Error(t, err)
		assert.Nil(t, result)
	}

	_, err := service.Execute(context.Background(), Command{Kind: "archive", CampaignID: "c-1"})
	assert.ErrorIs(t, err, ErrUnknownCommand)
}

func TestExecute_CreateInvalidatesAndRefetches(t *testing.T) {
	service, client, cache := newTestService(t)
	ctx := context.Background()

	draft := validDraft()
	created := campaign("c-9", draft.BudgetRub, draft.TargetCacRub)

	gomock.InOrder(
		client.EXPECT().ListCampaigns(gomock.Any(), gomock.Any()).Return(&domain.CampaignPage{}, nil),
		client.EXPECT().CreateCampaign(gomock.Any(), draft).Return(created, nil),
		client.EXPECT().GetCampaign(gomock.Any(), "c-9").Return(created, nil),
		client.EXPECT().ListCampaigns(gomock.Any(), gomock.Any()).Return(&domain.CampaignPage{Items: []*domain.Campaign{created}, Total: 1}, nil),
	)

	_, err := service.List(ctx, domain.CampaignListParams{})
	require.NoError(t, err)
	require.Equal(t, 1, cache.Len())

	result, err := service.Execute(ctx, Command{Kind: CommandCreate, Draft: &draft})

	require.NoError(t, err)
	assert.NotEmpty(t, result.CommandID)
	assert.Equal(t, CommandCreate, result.Kind)
	assert.Equal(t, 1, result.Invalidated)
	require.NotNil(t, result.Campaign)
	assert.Equal(t, "c-9", result.Campaign.ID)
	require.NotNil(t, result.Campaign.Forecast)
	assert.False(t, result.RefetchedAt.IsZero())

	// a listagem seguinte não vem do cache antigo
	page, err := service.List(ctx, domain.CampaignListParams{})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)
}

func TestExecute_KeepsGivenCommandID(t *testing.T) {
	service, client, _ := newTestService(t)

	paused := campaign("c-1", 15000, 500)
	paused.Status = domain.CampaignStatusPaused

	client.EXPECT().PauseCampaign(gomock.Any(), "c-1").Return(paused, nil)
	client.EXPECT().GetCampaign(gomock.Any(), "c-1").Return(paused, nil)

	result, err := service.Execute(context.Background(), Command{ID: "cmd-1", Kind: CommandPause, CampaignID: "c-1"})

	require.NoError(t, err)
	assert.Equal(t, "cmd-1", result.CommandID)
	assert.Equal(t, domain.CampaignStatusPaused, result.Campaign.Status)
}

func TestExecute_DeleteRefetchesFirstPage(t *testing.T) {
	service, client, _ := newTestService(t)

	client.EXPECT().DeleteCampaign(gomock.Any(), "c-1").Return(nil)
	client.EXPECT().
		ListCampaigns(gomock.Any(), domain.CampaignListParams{Page: 1, PageSize: 20}).
		Return(&domain.CampaignPage{Items: []*domain.Campaign{}, Page: 1, PageSize: 20}, nil)

	result, err := service.Execute(context.Background(), Command{Kind: CommandDelete, CampaignID: "c-1"})

	require.NoError(t, err)
	assert.Nil(t, result.Campaign)
	require.NotNil(t, result.Page)
	assert.Empty(t, result.Page.Items)
}

func TestExecute_BackendRejectionKeepsCache(t *testing.T) {
	service, client, cache := newTestService(t)
	ctx := context.Background()

	client.EXPECT().ListCampaigns(gomock.Any(), gomock.Any()).Return(&domain.CampaignPage{}, nil)
	_, err := service.List(ctx, domain.CampaignListParams{})
	require.NoError(t, err)

	budget := 20000.0
	client.EXPECT().
		UpdateCampaign(gomock.Any(), "c-1", domain.CampaignPatch{BudgetRub: &budget}).
		Return(nil, &backendclient.APIError{Err: backendclient.ErrRejected, StatusCode: 409})

	_, err = service.Execute(ctx, Command{Kind: CommandUpdate, CampaignID: "c-1", Patch: &domain.CampaignPatch{BudgetRub: &budget}})

	assert.ErrorIs(t, err, backendclient.ErrRejected)
	assert.Equal(t, 1, cache.Len())
}

func TestExecute_RefetchFailureFallsBackToBackendResponse(t *testing.T) {
	service, client, _ := newTestService(t)

	active := campaign("c-1", 15000, 500)
	active.Status = domain.CampaignStatusActive

	client.EXPECT().ActivateCampaign(gomock.Any(), "c-1").Return(active, nil)
	client.EXPECT().GetCampaign(gomock.Any(), "c-1").Return(nil, errors.New("timeout"))

	result, err := service.Execute(context.Background(), Command{Kind: CommandActivate, CampaignID: "c-1"})

	require.NoError(t, err)
	require.NotNil(t, result.Campaign)
	assert.Equal(t, domain.CampaignStatusActive, result.Campaign.Status)
}
