package internal

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_Prod(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "prod", "info")

	logger.Debug("hidden")
	logger.Info("payment failed",
		"payment_token", "tok_visa_4242",
		"payment_link", "AbCdEfGhJk",
		"amount", "400.00",
	)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "payment failed", entry["msg"])
	assert.Equal(t, "tenancy", entry["app"])
	assert.Equal(t, "[REDACTED]", entry["payment_token"])
	assert.Equal(t, "AbCd******", entry["payment_link"])
	assert.Equal(t, "400.00", entry["amount"])
	assert.NotContains(t, buf.String(), "tok_visa_4242")
	assert.NotContains(t, buf.String(), "hidden")
}

func TestNewLogger_Dev(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "dev", "debug")

	logger.Debug("token refreshed", "access_token", "eyJhbGciOi", "payment_link", "Ab")

	out := buf.String()
	assert.True(t, strings.Contains(out, "level=DEBUG"), out)
	assert.Contains(t, out, "access_token=[REDACTED]")
	assert.Contains(t, out, "payment_link=****")
	assert.NotContains(t, out, "eyJhbGciOi")
}
