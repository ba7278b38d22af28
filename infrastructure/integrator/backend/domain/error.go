package backenddomain

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

// ErrorResponse é o corpo de erro do backend. Detail pode ser texto ou a lista de
// violações de validação (422).
type ErrorResponse struct {
	Detail any `json:"detail"`
}

// ValidationIssue é um item de Detail quando o backend rejeita o payload
type ValidationIssue struct {
	Loc  []any  `json:"loc"`
	Msg  string `json:"msg"`
	Type string `json:"type"`
}

// Message retorna Detail como texto legível
func (e *ErrorResponse) Message() string {
	if e == nil || e.Detail == nil {
		return ""
	}

	if text, ok := e.Detail.(string); ok {
		return text
	}

	raw, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalToString(e.Detail)
	if err != nil {
		return fmt.Sprint(e.Detail)
	}
	return raw
}

// Issues decodifica Detail como lista de violações; vazio quando Detail é texto
func (e *ErrorResponse) Issues() []ValidationIssue {
	if e == nil {
		return nil
	}

	if _, ok := e.Detail.([]any); !ok {
		return nil
	}

	json := jsoniter.ConfigCompatibleWithStandardLibrary
	raw, err := json.Marshal(e.Detail)
	if err != nil {
		return nil
	}

	var issues []ValidationIssue
	if err := json.Unmarshal(raw, &issues); err != nil {
		return nil
	}
	return issues
}
