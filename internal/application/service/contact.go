package service

import (
	"context"

	"github.com/khoahotran/portfolio/internal/domain/portfolio"
)

// ContactNotifier is told about every message the backend accepted.
type ContactNotifier interface {
	NotifyContact(ctx context.Context, msg portfolio.ContactMessage) error
}

// Limiter reports whether key may perform one more action in the current window.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}
