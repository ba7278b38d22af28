package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/deepcalm/campaign-console/infrastructure/integrator/backend/backendclient"
	backenddomain "github.com/deepcalm/campaign-console/infrastructure/integrator/backend/domain"
	"github.com/deepcalm/campaign-console/internal/api/handler/router"
	"github.com/deepcalm/campaign-console/internal/domain"
	"github.com/deepcalm/campaign-console/internal/usecases/advising"
	advisingmocks "github.com/deepcalm/campaign-console/internal/usecases/advising/mocks"
	"github.com/deepcalm/campaign-console/internal/usecases/campaigning"
	campaigningmocks "github.com/deepcalm/campaign-console/internal/usecases/campaigning/mocks"
	pricingmocks "github.com/deepcalm/campaign-console/internal/usecases/pricing/mocks"
	"github.com/deepcalm/campaign-console/pkg/log"
)

func serve(routes []router.Route, method, path, body string) *httptest.ResponseRecorder {
	rt := router.New(router.WithRoutes(routes...))

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)
	return rec
}

func TestEstimateForecast(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	provider := pricingmocks.NewMockCatalogProvider(ctrl)
	provider.EXPECT().Catalog(gomock.Any()).Return(domain.DefaultSkuCatalog()).AnyTimes()

	tests := []struct {
		name         string
		body         string
		expectedCode int
		expectedBody string
	}{
		{
			name:         "previsão do cenário padrão",
			body:         `{"sku":"RELAX-60","budget_rub":15000,"target_cac_rub":500}`,
			expectedCode: http.StatusOK,
			expectedBody: `{"estimated_conversions":30,"estimated_revenue_rub":105000,"estimated_roas":7,"estimated_profit_rub":90000}`,
		},
		{
			name:         "orçamento zerado",
			body:         `{"sku":"RELAX-60","budget_rub":0,"target_cac_rub":500}`,
			expectedCode: http.StatusUnprocessableEntity,
			expectedBody: `{"code":"ECO_001","message":"invalid input: budget_rub=0","details":{"field":"budget_rub"}}`,
		},
		{
			name:         "SKU fora do catálogo",
			body:         `{"sku":"HOT-30","budget_rub":1000,"target_cac_rub":500}`,
			expectedCode: http.StatusUnprocessableEntity,
			expectedBody: `{"code":"ECO_002","message":"unknown sku: sku=HOT-30","details":{"field":"sku"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(Economics(provider), http.MethodPost, "/v1/forecast", tt.body)

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.JSONEq(t, tt.expectedBody, rec.Body.String())
		})
	}

	t.Run("corpo inválido", func(t *testing.T) {
		rec := serve(Economics(provider), http.MethodPost, "/v1/forecast", `{"sku":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), `"VAL_003"`)
	})
}

func TestClassifyMetric(t *testing.T) {
	log.SetupTestLogger()

	tests := []struct {
		name         string
		body         string
		expectedCode int
		expectedBody string
	}{
		{
			name:         "CAC dentro da meta",
			body:         `{"value":450,"target":500,"kind":"cac"}`,
			expectedCode: http.StatusOK,
			expectedBody: `{"kind":"cac","status":"success"}`,
		},
		{
			name:         "CAC sem meta",
			body:         `{"value":450,"kind":"cac"}`,
			expectedCode: http.StatusOK,
			expectedBody: `{"kind":"cac","status":"warning"}`,
		},
		{
			name:         "ROAS abaixo do limite",
			body:         `{"value":2.5,"kind":"roas"}`,
			expectedCode: http.StatusOK,
			expectedBody: `{"kind":"roas","status":"danger"}`,
		},
		{
			name:         "ROAS sem dados",
			body:         `{"kind":"roas"}`,
			expectedCode: http.StatusUnprocessableEntity,
			expectedBody: `{"code":"ECO_003","message":"Sem dados suficientes para classificar a métrica"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(Economics(nil), http.MethodPost, "/v1/metrics/classify", tt.body)

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.JSONEq(t, tt.expectedBody, rec.Body.String())
		})
	}
}

func TestListCampaigns_ParsesQuery(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	service := campaigningmocks.NewMockCampaignService(ctrl)

	service.EXPECT().
		List(gomock.Any(), domain.CampaignListParams{Page: 2, PageSize: 50, Status: domain.CampaignStatusActive}).
		Return(&domain.CampaignViewPage{Items: []*domain.CampaignView{}, Total: 0, Page: 2, PageSize: 50}, nil)

	rec := serve(Campaigns(service), http.MethodGet, "/v1/campaigns?page=2&page_size=50&status=active", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"items":[],"total":0,"page":2,"page_size":50}`, rec.Body.String())

	rec = serve(Campaigns(service), http.MethodGet, "/v1/campaigns?page=dois", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCampaignCommands_ErrorMapping(t *testing.T) {
	log.SetupTestLogger()

	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedBody string
	}{
		{
			name:         "validação local",
			err:          &campaigning.ValidationError{Fields: map[string]string{"title": "título deve ter entre 3 e 255 caracteres"}},
			expectedCode: http.StatusUnprocessableEntity,
			expectedBody: `{"code":"VAL_004","message":"Dados da campanha inválidos","details":{"title":"título deve ter entre 3 e 255 caracteres"}}`,
		},
		{
			name: "campanha inexistente no backend",
			err: &backendclient.APIError{
				Err: backendclient.ErrNotFound, Method: http.MethodPost, Path: "/campaigns/9/activate", StatusCode: 404,
				Response: &backenddomain.ErrorResponse{Detail: "Campaign not found"},
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"code":"RES_001","message":"Campaign not found"}`,
		},
		{
			name: "conflito de estado no backend",
			err: &backendclient.APIError{
				Err: backendclient.ErrRejected, Method: http.MethodPost, Path: "/campaigns/9/activate", StatusCode: 409,
				Response: &backenddomain.ErrorResponse{Detail: "Campaign already active"},
			},
			expectedCode: http.StatusConflict,
			expectedBody: `{"code":"CON_001","message":"Campaign already active"}`,
		},
		{
			name: "backend fora do ar",
			err: &backendclient.APIError{
				Err: backendclient.ErrUnavailable, Method: http.MethodPost, Path: "/campaigns/9/activate",
				Cause: errors.New("connection refused"),
			},
			expectedCode: http.StatusServiceUnavailable,
			expectedBody: `{"code":"SRV_004","message":"Backend indisponível"}`,
		},
		{
			name: "erro 500 do backend",
			err: &backendclient.APIError{
				Err: backendclient.ErrUnavailable, Method: http.MethodPost, Path: "/campaigns/9/activate", StatusCode: 500,
			},
			expectedCode: http.StatusBadGateway,
			expectedBody: `{"code":"SRV_003","message":"Erro no backend"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := campaigningmocks.NewMockCampaignService(ctrl)

			service.EXPECT().
				Execute(gomock.Any(), campaigning.Command{Kind: campaigning.CommandActivate, CampaignID: "9"}).
				Return(nil, tt.err)

			rec := serve(Campaigns(service), http.MethodPost, "/v1/campaigns/9/activate", "")

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.JSONEq(t, tt.expectedBody, rec.Body.String())
		})
	}
}

func TestCreateCampaign(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	service := campaigningmocks.NewMockCampaignService(ctrl)

	service.EXPECT().
		Execute(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, cmd campaigning.Command) (*campaigning.CommandResult, error) {
			require.NotNil(t, cmd.Draft)
			assert.Equal(t, campaigning.CommandCreate, cmd.Kind)
			assert.Equal(t, "Весна", cmd.Draft.Title)
			assert.Equal(t, []domain.Channel{domain.ChannelVK}, cmd.Draft.Channels)
			return &campaigning.CommandResult{CommandID: "abc123", Kind: cmd.Kind, Invalidated: 2}, nil
		})

	body := `{"title":"Весна","sku":"RELAX-60","budget_rub":15000,"target_cac_rub":500,"target_roas":5,"channels":["vk"]}`
	rec := serve(Campaigns(service), http.MethodPost, "/v1/campaigns", body)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"command_id":"abc123"`)
}

func TestAnalystChat_UsesSessionHeader(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	advisor := advisingmocks.NewMockAdvisor(ctrl)

	advisor.EXPECT().
		Chat(gomock.Any(), "sessao-1", domain.ChatRequest{Message: "Como está o ROAS?"}).
		Return(nil, advising.ErrRequestInFlight)

	rt := router.New(router.WithRoutes(Analyst(advisor)...))
	req := httptest.NewRequest(http.MethodPost, "/v1/analyst/chat", strings.NewReader(`{"message":"Como está o ROAS?"}`))
	req.Header.Set(ChatSessionHeader, "sessao-1")
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), `"CON_001"`)
}

func TestAnalystChat_AnonymousRequestsGetDistinctSessions(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	advisor := advisingmocks.NewMockAdvisor(ctrl)

	var sessions []string
	advisor.EXPECT().
		Chat(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, session string, _ domain.ChatRequest) (*domain.ChatResponse, error) {
			sessions = append(sessions, session)
			return &domain.ChatResponse{}, nil
		}).
		Times(3)

	rt := router.New(router.WithRoutes(Analyst(advisor)...))

	// dois clientes sem cabeçalho, cada um com seu correlation ID
	for _, correlationID := range []string{"req-a", "req-b"} {
		req := httptest.NewRequest(http.MethodPost, "/v1/analyst/chat", strings.NewReader(`{"message":"Oi"}`))
		ctx, _ := log.WithGivenCorrelationID(req.Context(), correlationID)
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, req.WithContext(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	// sem correlation ID cai no endereço remoto
	req := httptest.NewRequest(http.MethodPost, "/v1/analyst/chat", strings.NewReader(`{"message":"Oi"}`))
	req.RemoteAddr = "10.0.0.7:5123"
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	require.Len(t, sessions, 3)
	assert.NotEmpty(t, sessions[0])
	assert.NotEqual(t, sessions[0], sessions[1])
	assert.Equal(t, "addr:10.0.0.7:5123", sessions[2])
}

func TestAnalyzeCampaign_AcceptsEmptyBody(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	advisor := advisingmocks.NewMockAdvisor(ctrl)

	advisor.EXPECT().
		AnalyzeCampaign(gomock.Any(), 12, domain.AnalysisRequest{}).
		Return(&domain.CampaignAnalysis{CampaignID: 12, Analysis: "ok"}, nil)

	rec := serve(Analyst(advisor), http.MethodPost, "/v1/analyst/analyze/12", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(Analyst(advisor), http.MethodPost, "/v1/analyst/analyze/doze", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

type fakeCronJob struct {
	triggered int
}

func (f *fakeCronJob) TriggerManualSync() { f.triggered++ }

func (f *fakeCronJob) GetStatus() map[string]any {
	return map[string]any{"triggered": f.triggered}
}

func TestCronJobs(t *testing.T) {
	log.SetupTestLogger()
	dashboard := &fakeCronJob{}
	integrations := &fakeCronJob{}
	routes := CronJobs(CronJobServices{DashboardRefreshService: dashboard, IntegrationsSyncService: integrations})

	rec := serve(routes, http.MethodPost, "/v1/cron/run/dashboard-refresh", "")
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, 1, dashboard.triggered)
	assert.Equal(t, 0, integrations.triggered)

	rec = serve(routes, http.MethodPost, "/v1/cron/run/all", "")
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, 2, dashboard.triggered)
	assert.Equal(t, 1, integrations.triggered)

	rec = serve(routes, http.MethodPost, "/v1/cron/run/meta", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(routes, http.MethodGet, "/v1/cron/status", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"dashboard-refresh":{"triggered":2},"integrations-sync":{"triggered":1}}`, rec.Body.String())
}
