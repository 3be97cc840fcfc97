package media_storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/portfolio/internal/config"
	"github.com/khoahotran/portfolio/pkg/logger"
)

func TestLocalResolver(t *testing.T) {
	r, err := NewImageResolver(config.Config{}, logger.NewNop())
	require.NoError(t, err)

	assert.Equal(t, "", r.ResolveImage(""))
	assert.Equal(t, "/images/profile.jpg", r.ResolveImage("profile.jpg"))
	assert.Equal(t, "/static/me.png", r.ResolveImage("/static/me.png"))
	assert.Equal(t, "https://cdn.example.com/a.png", r.ResolveImage("https://cdn.example.com/a.png"))
}

func TestCloudinaryResolver(t *testing.T) {
	var cfg config.Config
	cfg.Cloudinary.CloudName = "demo"
	cfg.Cloudinary.ApiKey = "key"
	cfg.Cloudinary.ApiSecret = "secret"

	r, err := NewImageResolver(cfg, logger.NewNop())
	require.NoError(t, err)

	url := r.ResolveImage("portfolio/profile")
	assert.Contains(t, url, "https://res.cloudinary.com/demo/image/upload/")
	assert.Contains(t, url, "portfolio/profile")

	assert.Equal(t, "https://cdn.example.com/a.png", r.ResolveImage("https://cdn.example.com/a.png"))
}

func TestNewCloudinaryAdapterRequiresCloudName(t *testing.T) {
	_, err := NewCloudinaryAdapter(config.Config{}, logger.NewNop())
	assert.Error(t, err)
}
