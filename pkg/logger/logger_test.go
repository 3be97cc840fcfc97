package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestErrorCapturesErrorAndFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	log := New(zap.New(core))

	log.Error("boom", errors.New("disk full"), zap.String("k", "v"))

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	assert.Equal(t, "boom", entries[0].Message)
	assert.Equal(t, "disk full", entries[0].ContextMap()["error"])
	assert.Equal(t, "v", entries[0].ContextMap()["k"])
}

func TestErrorWithoutCause(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	New(zap.New(core)).Error("boom", nil)

	require.Equal(t, 1, logs.Len())
	assert.NotContains(t, logs.All()[0].ContextMap(), "error")
}

func TestWithCarriesFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	log := New(zap.New(core)).With(zap.String("topic", "contact-events"))

	log.Debug("received")
	log.Warn("slow")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	for _, e := range entries {
		assert.Equal(t, "contact-events", e.ContextMap()["topic"])
	}
}

func TestNopAndSync(t *testing.T) {
	log := NewNop()
	assert.NotPanics(t, func() {
		log.Info("ignored")
		log.Error("ignored", errors.New("x"))
		Sync(log)
	})
}
