package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithGivenCorrelationID(t *testing.T) {
	ctx, id := WithGivenCorrelationID(context.Background(), "abc-123")

	assert.Equal(t, "abc-123", id)
	assert.Equal(t, "abc-123", GetCorrelationID(ctx))
}

func TestWithCorrelationID_GeneratesWhenEmpty(t *testing.T) {
	ctx, id := WithGivenCorrelationID(context.Background(), "")

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestKeepInDevelopment(t *testing.T) {
	assert.True(t, keepInDevelopment("campaign_id"))
	assert.True(t, keepInDevelopment("backend_status"))
	assert.False(t, keepInDevelopment("user_agent"))
}
