package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithContext(t *testing.T) {
	var buf bytes.Buffer
	Setup("debug", &buf)
	defer Setup("info", &bytes.Buffer{})

	ctx := context.WithValue(context.Background(), UserEmailKey, "ana@example.org")
	ctx = context.WithValue(ctx, RequestIDKey, "req-1")

	WithContext(ctx).WithField("news_id", "n1").Info("viewed")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "ana@example.org", line["user"])
	assert.Equal(t, "req-1", line["request_id"])
	assert.Equal(t, "n1", line["news_id"])
	assert.Equal(t, "viewed", line["msg"])
}

func TestWithContextAnonymous(t *testing.T) {
	var buf bytes.Buffer
	Setup("info", &buf)

	WithContext(context.Background()).Info("hello")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "anonymous", line["user"])
	_, hasRequestID := line["request_id"]
	assert.False(t, hasRequestID)
}

func TestSetupFallsBackToInfo(t *testing.T) {
	Setup("verbose", &bytes.Buffer{})
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}
