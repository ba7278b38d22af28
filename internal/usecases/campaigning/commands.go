package campaigning

import (
	"context"
	"fmt"
	"time"

	"github.com/deepcalm/campaign-console/internal/domain"
	"github.com/deepcalm/campaign-console/internal/querycache"
	"github.com/deepcalm/campaign-console/pkg/log"
	"github.com/deepcalm/campaign-console/pkg/utils"
)

type CommandKind string

const (
	CommandCreate   CommandKind = "create"
	CommandUpdate   CommandKind = "update"
	CommandActivate CommandKind = "activate"
	CommandPause    CommandKind = "pause"
	CommandDelete   CommandKind = "delete"
)

// Command é uma alteração de campanha enviada ao backend
type Command struct {
	ID         string
	Kind       CommandKind
	CampaignID string
	Draft      *domain.CampaignDraft
	Patch      *domain.CampaignPatch
}

// CommandResult é o estado da campanha depois da invalidação e da nova leitura
type CommandResult struct {
	CommandID   string                   `json:"command_id"`
	Kind        CommandKind              `json:"kind"`
	Campaign    *domain.CampaignView     `json:"campaign,omitempty"`
	Page        *domain.CampaignViewPage `json:"page,omitempty"`
	Invalidated int                      `json:"invalidated"`
	RefetchedAt time.Time                `json:"refetched_at"`
}

// Execute valida, envia ao backend, invalida campanhas e analytics e relê o estado afetado.
// Comandos inválidos nunca chegam ao backend.
func (s *Service) Execute(ctx context.Context, cmd Command) (result *CommandResult, err error) {
	if cmd.ID == "" {
		id, genErr := utils.GenerateID()
		if genErr != nil {
			return nil, fmt.Errorf("%w: %v", ErrGenerateID, genErr)
		}
		cmd.ID = id
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"command":     string(cmd.Kind),
		"command_id":  cmd.ID,
		"campaign_id": cmd.CampaignID,
	})

	defer func() {
		s.metrics.Command(string(cmd.Kind), err)
	}()

	if err := s.validate(ctx, cmd); err != nil {
		logger.WithError(err).Warn("Comando de campanha rejeitado na validação")
		return nil, err
	}

	campaign, err := s.send(ctx, cmd)
	if err != nil {
		logger.WithError(err).Error("Erro ao enviar comando de campanha ao backend")
		return nil, err
	}

	result = &CommandResult{
		CommandID:   cmd.ID,
		Kind:        cmd.Kind,
		Invalidated: s.cache.Invalidate(querycache.ScopeCampaigns, querycache.ScopeAnalytics),
	}

	s.refetch(ctx, cmd, campaign, result)
	result.RefetchedAt = s.now()

	logger.WithField("invalidated", result.Invalidated).Info("Comando de campanha executado")
	return result, nil
}

func (s *Service) validate(ctx context.Context, cmd Command) error {
	switch cmd.Kind {
	case CommandCreate:
		if cmd.Draft == nil {
			return &ValidationError{Fields: map[string]string{"draft": "obrigatório"}}
		}
		return ValidateDraft(*cmd.Draft, s.catalog.Catalog(ctx))

	case CommandUpdate:
		if cmd.CampaignID == "" {
			return ErrCampaignIDRequired
		}
		if cmd.Patch == nil {
			return ValidatePatch(domain.CampaignPatch{})
		}
		return ValidatePatch(*cmd.Patch)

	case CommandActivate, CommandPause, CommandDelete:
		if cmd.CampaignID == "" {
			return ErrCampaignIDRequired
		}
		return nil
	}

	return fmt.Errorf("%w: %q", ErrUnknownCommand, cmd.Kind)
}

func (s *Service) send(ctx context.Context, cmd Command) (*domain.Campaign, error) {
	switch cmd.Kind {
	case CommandCreate:
		return s.client.CreateCampaign(ctx, *cmd.Draft)
	case CommandUpdate:
		return s.client.UpdateCampaign(ctx, cmd.CampaignID, *cmd.Patch)
	case CommandActivate:
		return s.client.ActivateCampaign(ctx, cmd.CampaignID)
	case CommandPause:
		return s.client.PauseCampaign(ctx, cmd.CampaignID)
	case CommandDelete:
		return nil, s.client.DeleteCampaign(ctx, cmd.CampaignID)
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, cmd.Kind)
}

// refetch relê a campanha afetada (ou a primeira página, após exclusão). O comando já foi
// aplicado, então uma falha aqui só é registrada e a resposta do backend é usada.
func (s *Service) refetch(ctx context.Context, cmd Command, sent *domain.Campaign, result *CommandResult) {
	logger := log.ForContext(ctx).WithField("command_id", cmd.ID)

	if cmd.Kind == CommandDelete {
		page, err := s.List(ctx, domain.CampaignListParams{})
		if err != nil {
			logger.WithError(err).Warn("Erro ao reler campanhas após exclusão")
			return
		}
		result.Page = page
		return
	}

	id := cmd.CampaignID
	if id == "" && sent != nil {
		id = sent.ID
	}

	if id != "" {
		view, err := s.Get(ctx, id)
		if err == nil {
			result.Campaign = view
			return
		}
		logger.WithError(err).Warn("Erro ao reler campanha após comando")
	}

	if sent != nil {
		result.Campaign = withForecast(sent, s.catalog.Catalog(ctx))
	}
}
