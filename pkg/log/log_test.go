package log_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"flight-fulfillment/pkg/log"
)

func TestRequestIDIsAttached(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := log.NewWithZap(zap.New(core))

	ctx := log.WithRequestID(context.Background(), "req-123")
	l.Infof(ctx, "fulfilled %s", "GetFlightInfo")
	l.Info(context.Background(), "no id")

	entries := logs.All()
	require.Len(t, entries, 2)

	assert.Equal(t, "fulfilled GetFlightInfo", entries[0].Message)
	assert.Equal(t, "req-123", entries[0].ContextMap()[log.FieldRequestID])
	assert.NotContains(t, entries[1].ContextMap(), log.FieldRequestID)
}

func TestRequestID(t *testing.T) {
	assert.Equal(t, "", log.RequestID(context.Background()))
	assert.Equal(t, "abc", log.RequestID(log.WithRequestID(context.Background(), "abc")))
}

func TestInitDoesNotPanicOnUnknownLevel(t *testing.T) {
	l := log.Init(log.ZapConfig{Level: "verbose", Mode: log.ModeProduction, Encoding: log.EncodingJSON})
	l.Debug(context.Background(), "dropped")
}
