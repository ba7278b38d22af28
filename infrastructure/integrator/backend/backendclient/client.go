package backendclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	backenddomain "github.com/deepcalm/campaign-console/infrastructure/integrator/backend/domain"
	"github.com/deepcalm/campaign-console/internal/config"
	"github.com/deepcalm/campaign-console/internal/domain"
	"github.com/deepcalm/campaign-console/pkg/log"
	"github.com/deepcalm/campaign-console/pkg/metrics"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	// ErrNotFound indica 404 no backend
	ErrNotFound = errors.New("backend: recurso não encontrado")
	// ErrRejected indica que o backend recusou o comando (400, 409, 422)
	ErrRejected = errors.New("backend: requisição rejeitada")
	// ErrUnavailable cobre falhas de transporte, 5xx e respostas ilegíveis
	ErrUnavailable = errors.New("backend: serviço indisponível")
)

// APIError descreve uma resposta de erro do backend
type APIError struct {
	Err        error
	Method     string
	Path       string
	StatusCode int
	Response   *backenddomain.ErrorResponse
	Cause      error
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("%s %s %s", e.Err.Error(), e.Method, e.Path)
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(": status %d", e.StatusCode)
	}
	if detail := e.Detail(); detail != "" {
		msg += ": " + detail
	}
	return msg
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// Detail retorna a mensagem do backend ou a causa de transporte
func (e *APIError) Detail() string {
	if message := e.Response.Message(); message != "" {
		return message
	}
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return ""
}

type Client interface {
	ListCampaigns(ctx context.Context, params domain.CampaignListParams) (*domain.CampaignPage, error)
	GetCampaign(ctx context.Context, id string) (*domain.Campaign, error)
	CreateCampaign(ctx context.Context, draft domain.CampaignDraft) (*domain.Campaign, error)
	UpdateCampaign(ctx context.Context, id string, patch domain.CampaignPatch) (*domain.Campaign, error)
	ActivateCampaign(ctx context.Context, id string) (*domain.Campaign, error)
	PauseCampaign(ctx context.Context, id string) (*domain.Campaign, error)
	DeleteCampaign(ctx context.Context, id string) error

	GetDashboardSummary(ctx context.Context, dateRange domain.DateRange) (*domain.DashboardSummary, error)
	GetDashboardDaily(ctx context.Context, dateRange domain.DateRange) ([]domain.DailyMetricPoint, error)
	GetChannelPerformance(ctx context.Context, dateRange domain.DateRange) ([]domain.ChannelMetricSnapshot, error)
	GetCampaignAnalytics(ctx context.Context, id string, dateRange domain.DateRange) (*domain.CampaignAnalytics, error)

	ListIntegrations(ctx context.Context) ([]domain.Integration, error)
	GetIntegrationStatus(ctx context.Context, integrationType domain.IntegrationType) (*domain.Integration, error)
	ConnectIntegration(ctx context.Context, integrationType domain.IntegrationType, token string) (*domain.IntegrationActionResult, error)
	DisconnectIntegration(ctx context.Context, integrationType domain.IntegrationType) (*domain.IntegrationActionResult, error)
	SyncIntegration(ctx context.Context, integrationType domain.IntegrationType) (*domain.IntegrationActionResult, error)

	AnalystHealth(ctx context.Context) (*domain.AnalystHealth, error)
	Chat(ctx context.Context, request domain.ChatRequest) (*domain.ChatResponse, error)
	AnalyzeCampaign(ctx context.Context, campaignID int, request domain.AnalysisRequest) (*domain.CampaignAnalysis, error)
}

type BackendClient struct {
	httpClient *http.Client
	baseURL    string
	apiToken   string
	retryDelay time.Duration
	metrics    *metrics.Metrics
}

func NewClient(cfg *config.Config, m *metrics.Metrics) Client {
	return &BackendClient{
		httpClient: &http.Client{
			Timeout: cfg.Backend.Timeout(),
		},
		baseURL:    cfg.Backend.URL,
		apiToken:   cfg.Backend.APIToken,
		retryDelay: cfg.Backend.RetryDelay(),
		metrics:    m,
	}
}

// do executa a requisição e decodifica a resposta em out (quando não nulo).
// GETs são repetidos uma única vez em falha de transporte ou 5xx.
func (c *BackendClient) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var payload []byte
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return errors.Wrapf(err, "backend: erro ao codificar corpo de %s %s", method, path)
		}
		payload = encoded
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	attempts := 1
	if method == http.MethodGet {
		attempts = 2
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"backend_method": method,
		"backend_path":   path,
	})

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			logger.WithError(lastErr).Warn("Repetindo requisição ao backend")

			select {
			case <-ctx.Done():
				return errors.Wrap(ctx.Err(), "backend: contexto cancelado antes da nova tentativa")
			case <-time.After(c.retryDelay):
			}
		}

		retry, err := c.attempt(ctx, method, path, endpoint, payload, out)
		if err == nil {
			return nil
		}

		lastErr = err
		if !retry || ctx.Err() != nil {
			break
		}
	}

	logger.WithError(lastErr).Error("Erro na requisição ao backend")
	return lastErr
}

// attempt faz uma única chamada; retry indica se a falha admite nova tentativa
func (c *BackendClient) attempt(ctx context.Context, method, path, endpoint string, payload []byte, out any) (retry bool, err error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return false, errors.Wrap(err, "backend: erro ao criar a requisição")
	}

	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiToken)
	}
	if correlationID := log.GetCorrelationID(ctx); correlationID != "" {
		req.Header.Set("X-Correlation-ID", correlationID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.BackendRequest(method, 0)
		return true, &APIError{Err: ErrUnavailable, Method: method, Path: path, Cause: err}
	}
	defer resp.Body.Close()

	c.metrics.BackendRequest(method, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return true, &APIError{Err: ErrUnavailable, Method: method, Path: path, StatusCode: resp.StatusCode, Cause: err}
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil || resp.StatusCode == http.StatusNoContent || len(bytes.TrimSpace(raw)) == 0 {
			return false, nil
		}

		if err := json.Unmarshal(raw, out); err != nil {
			return false, &APIError{Err: ErrUnavailable, Method: method, Path: path, StatusCode: resp.StatusCode, Cause: errors.Wrap(err, "resposta inválida")}
		}
		return false, nil
	}

	apiErr := &APIError{
		Err:        classify(resp.StatusCode),
		Method:     method,
		Path:       path,
		StatusCode: resp.StatusCode,
	}

	var errorResponse backenddomain.ErrorResponse
	if len(raw) > 0 && json.Unmarshal(raw, &errorResponse) == nil && errorResponse.Detail != nil {
		apiErr.Response = &errorResponse
	} else if text := strings.TrimSpace(string(raw)); text != "" {
		apiErr.Response = &backenddomain.ErrorResponse{Detail: text}
	}

	return resp.StatusCode >= 500, apiErr
}

func classify(statusCode int) error {
	switch statusCode {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusBadRequest, http.StatusConflict, http.StatusUnprocessableEntity:
		return ErrRejected
	default:
		return ErrUnavailable
	}
}

func dateRangeQuery(dateRange domain.DateRange) url.Values {
	query := url.Values{}
	if !dateRange.StartDate.IsZero() {
		query.Set("start_date", dateRange.StartDate.Format("2006-01-02"))
	}
	if !dateRange.EndDate.IsZero() {
		query.Set("end_date", dateRange.EndDate.Format("2006-01-02"))
	}
	return query
}
