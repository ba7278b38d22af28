package domain

type IntegrationType string

const (
	IntegrationVK       IntegrationType = "vk"
	IntegrationDirect   IntegrationType = "direct"
	IntegrationAvito    IntegrationType = "avito"
	IntegrationYclients IntegrationType = "yclients"
	IntegrationMetrika  IntegrationType = "metrika"
)

var AllowedIntegrations = map[IntegrationType]struct{}{
	IntegrationVK:       {},
	IntegrationDirect:   {},
	IntegrationAvito:    {},
	IntegrationYclients: {},
	IntegrationMetrika:  {},
}

type IntegrationStatus string

const (
	IntegrationConnected    IntegrationStatus = "connected"
	IntegrationDisconnected IntegrationStatus = "disconnected"
	IntegrationError        IntegrationStatus = "error"
	IntegrationPending      IntegrationStatus = "pending"
)

type Integration struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Type         IntegrationType   `json:"type"`
	Status       IntegrationStatus `json:"status"`
	Description  string            `json:"description,omitempty"`
	LastSync     *string           `json:"lastSync,omitempty"`
	ErrorMessage *string           `json:"errorMessage,omitempty"`
	Settings     map[string]any    `json:"settings,omitempty"`
}

type IntegrationActionResult struct {
	Type    IntegrationType   `json:"type"`
	Status  IntegrationStatus `json:"status,omitempty"`
	Message string            `json:"message,omitempty"`
	Synced  *int              `json:"synced,omitempty"`
}

type SyncReport struct {
	Type    IntegrationType `json:"type"`
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
}
