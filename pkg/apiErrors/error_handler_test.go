package apiErrors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		code   string
		status int
	}{
		{ErrInvalidRequest, http.StatusBadRequest},
		{ErrEconomicsUnknownSku, http.StatusUnprocessableEntity},
		{ErrResourceNotFound, http.StatusNotFound},
		{ErrConflict, http.StatusConflict},
		{ErrExternalService, http.StatusBadGateway},
		{"XXX_999", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, tt.code, "falhou", map[string]string{"campo": "budget_rub"})

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, "falhou", body.Message)
		})
	}
}

func TestFromError(t *testing.T) {
	assert.Equal(t, ErrInternalServer, FromError(nil, ErrConflict).Code)

	apiErr := FromError(errors.New("boom"), ErrCommunication)
	assert.Equal(t, ErrCommunication, apiErr.Code)
	assert.Equal(t, "boom", apiErr.Message)
}
