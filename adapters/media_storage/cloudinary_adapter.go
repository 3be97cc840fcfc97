package media_storage

import (
	"fmt"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio/internal/application/service"
	"github.com/khoahotran/portfolio/internal/config"
	"github.com/khoahotran/portfolio/pkg/logger"
)

const LocalImagePrefix = "/images"

type cloudinaryAdapter struct {
	cld    *cloudinary.Cloudinary
	logger logger.Logger
}

// NewImageResolver serves images from Cloudinary when it is configured and
// from the local /images/ tree otherwise.
func NewImageResolver(cfg config.Config, log logger.Logger) (service.ImageResolver, error) {
	if cfg.Cloudinary.CloudName == "" {
		return localResolver{}, nil
	}
	adapter, err := NewCloudinaryAdapter(cfg, log)
	if err != nil {
		return nil, err
	}
	return adapter, nil
}

func NewCloudinaryAdapter(cfg config.Config, log logger.Logger) (*cloudinaryAdapter, error) {
	if cfg.Cloudinary.CloudName == "" {
		return nil, fmt.Errorf("cloudinary cloud_name has not config")
	}

	cld, err := cloudinary.NewFromParams(
		cfg.Cloudinary.CloudName,
		cfg.Cloudinary.ApiKey,
		cfg.Cloudinary.ApiSecret,
	)
	if err != nil {
		return nil, fmt.Errorf("cannot init cloudinary: %w", err)
	}
	cld.Config.URL.Secure = true

	log.Info("connect Cloudinary successfully.", zap.String("cloud_name", cfg.Cloudinary.CloudName))
	return &cloudinaryAdapter{cld: cld, logger: log}, nil
}

func (a *cloudinaryAdapter) ResolveImage(ref string) string {
	if url, ok := passthrough(ref); ok {
		return url
	}
	img, err := a.cld.Image(ref)
	if err != nil {
		a.logger.Warn("invalid cloudinary public id", zap.String("ref", ref), zap.Error(err))
		return localPath(ref)
	}
	url, err := img.String()
	if err != nil {
		a.logger.Warn("failed to build cloudinary url", zap.String("ref", ref), zap.Error(err))
		return localPath(ref)
	}
	return url
}

type localResolver struct{}

func (localResolver) ResolveImage(ref string) string {
	if url, ok := passthrough(ref); ok {
		return url
	}
	return localPath(ref)
}

// passthrough keeps empty refs, absolute URLs and rooted paths untouched.
func passthrough(ref string) (string, bool) {
	switch {
	case ref == "":
		return "", true
	case strings.HasPrefix(ref, "http://"), strings.HasPrefix(ref, "https://"), strings.HasPrefix(ref, "/"):
		return ref, true
	}
	return "", false
}

func localPath(ref string) string {
	return LocalImagePrefix + "/" + strings.TrimPrefix(ref, "/")
}
