package service

import (
	"context"

	"github.com/khoahotran/portfolio/internal/domain/portfolio"
)

// PortfolioReader is the read side of the portfolio backend.
type PortfolioReader interface {
	GetSummary(ctx context.Context) (portfolio.Summary, error)
	GetActiveUser(ctx context.Context) (portfolio.User, error)
	GetExperience(ctx context.Context, userID int64) ([]portfolio.Experience, error)
	GetCurrentExperience(ctx context.Context, userID int64) ([]portfolio.Experience, error)
	GetProjects(ctx context.Context, userID int64) ([]portfolio.Project, error)
	GetSkills(ctx context.Context, userID int64) ([]portfolio.Skill, error)
	GetFeaturedSkills(ctx context.Context, userID int64) ([]portfolio.Skill, error)
	GetSkillCategories(ctx context.Context, userID int64) ([]string, error)
	GetEducation(ctx context.Context, userID int64) ([]portfolio.Education, error)
	GetUnreadMessageCount(ctx context.Context) (int64, error)
	HealthCheck(ctx context.Context) (string, error)
}

type ContactSubmitter interface {
	SubmitContactMessage(ctx context.Context, msg portfolio.ContactMessage) (portfolio.ContactMessage, error)
}

type PortfolioAPI interface {
	PortfolioReader
	ContactSubmitter
}
