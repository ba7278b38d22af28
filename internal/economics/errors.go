package economics

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput sinaliza violação de contrato: orçamento/meta não positivos, NaN ou tipo de métrica desconhecido
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnknownSku indica que o SKU do rascunho não existe no catálogo
	ErrUnknownSku = errors.New("unknown sku")
	// ErrNoData indica ROAS ausente; o chamador decide como exibir
	ErrNoData = errors.New("no data")
)

// InputError carrega o campo responsável pela falha
type InputError struct {
	Err   error
	Field string
	Value any
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %s=%v", e.Err.Error(), e.Field, e.Value)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

func invalid(field string, value any) error {
	return &InputError{Err: ErrInvalidInput, Field: field, Value: value}
}
