// Package advising encaminha perguntas ao analista do backend, uma por sessão de chat.
package advising

import (
	"context"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/deepcalm/campaign-console/infrastructure/integrator/backend/backendclient"
	"github.com/deepcalm/campaign-console/internal/domain"
	"github.com/deepcalm/campaign-console/pkg/log"
)

const MaxMessageLength = 1000

type Advisor interface {
	Health(ctx context.Context) (*domain.AnalystHealth, error)
	Chat(ctx context.Context, session string, request domain.ChatRequest) (*domain.ChatResponse, error)
	AnalyzeCampaign(ctx context.Context, campaignID int, request domain.AnalysisRequest) (*domain.CampaignAnalysis, error)
}

type Service struct {
	client backendclient.Client

	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewService(client backendclient.Client) *Service {
	return &Service{
		client:   client,
		inFlight: make(map[string]struct{}),
	}
}

func (s *Service) Health(ctx context.Context) (*domain.AnalystHealth, error) {
	return s.client.AnalystHealth(ctx)
}

// Chat envia a mensagem ao analista. Uma segunda pergunta na mesma sessão enquanto a
// primeira não respondeu falha com ErrRequestInFlight, preservando a ordem pergunta/resposta.
func (s *Service) Chat(ctx context.Context, session string, request domain.ChatRequest) (*domain.ChatResponse, error) {
	request.Message = strings.TrimSpace(request.Message)
	if length := utf8.RuneCountInString(request.Message); length == 0 || length > MaxMessageLength {
		return nil, ErrInvalidMessage
	}
	if request.CampaignID != nil && *request.CampaignID <= 0 {
		return nil, ErrInvalidCampaignID
	}

	if !s.acquire(session) {
		log.ForContext(ctx).WithField("chat_session", session).Warn("Pergunta ignorada: sessão já aguarda resposta")
		return nil, ErrRequestInFlight
	}
	defer s.release(session)

	return s.client.Chat(ctx, request)
}

func (s *Service) AnalyzeCampaign(ctx context.Context, campaignID int, request domain.AnalysisRequest) (*domain.CampaignAnalysis, error) {
	if campaignID <= 0 {
		return nil, ErrInvalidCampaignID
	}

	if request.Question != nil {
		question := strings.TrimSpace(*request.Question)
		if utf8.RuneCountInString(question) > MaxMessageLength {
			return nil, ErrInvalidMessage
		}
		if question == "" {
			request.Question = nil
		} else {
			request.Question = &question
		}
	}

	return s.client.AnalyzeCampaign(ctx, campaignID, request)
}

func (s *Service) acquire(session string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, busy := s.inFlight[session]; busy {
		return false
	}
	s.inFlight[session] = struct{}{}
	return true
}

func (s *Service) release(session string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, session)
}
