package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/portfolio/internal/config"
	"github.com/khoahotran/portfolio/pkg/logger"
)

func TestDisabledWithoutEndpoint(t *testing.T) {
	cfg := config.Config{}
	assert.False(t, Enabled(cfg))

	shutdown, err := NewTracerProvider(cfg, logger.NewNop(), "portfolio-web")
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}
