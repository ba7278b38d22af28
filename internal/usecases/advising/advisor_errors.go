package advising

import "errors"

var (
	ErrInvalidMessage    = errors.New("chat message must have between 1 and 1000 characters")
	ErrInvalidCampaignID = errors.New("campaign ID must be positive")
	// ErrRequestInFlight indica que a sessão já tem uma pergunta aguardando resposta
	ErrRequestInFlight = errors.New("chat request already in flight for this session")
)
