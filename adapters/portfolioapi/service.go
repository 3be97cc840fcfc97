package portfolioapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/khoahotran/portfolio/internal/application/service"
	"github.com/khoahotran/portfolio/internal/domain/portfolio"
)

// Service exposes one typed call per backend endpoint.
type Service struct {
	client *Client
}

var _ service.PortfolioAPI = (*Service)(nil)

func NewService(client *Client) *Service {
	return &Service{client: client}
}

func (s *Service) GetSummary(ctx context.Context) (portfolio.Summary, error) {
	return Call[portfolio.Summary](ctx, s.client, http.MethodGet, "/portfolio/summary", nil)
}

func (s *Service) GetActiveUser(ctx context.Context) (portfolio.User, error) {
	return Call[portfolio.User](ctx, s.client, http.MethodGet, "/portfolio/user/active", nil)
}

func (s *Service) GetExperience(ctx context.Context, userID int64) ([]portfolio.Experience, error) {
	return Call[[]portfolio.Experience](ctx, s.client, http.MethodGet, fmt.Sprintf("/portfolio/experience/%d", userID), nil)
}

func (s *Service) GetCurrentExperience(ctx context.Context, userID int64) ([]portfolio.Experience, error) {
	return Call[[]portfolio.Experience](ctx, s.client, http.MethodGet, fmt.Sprintf("/portfolio/experience/%d/current", userID), nil)
}

func (s *Service) GetProjects(ctx context.Context, userID int64) ([]portfolio.Project, error) {
	return Call[[]portfolio.Project](ctx, s.client, http.MethodGet, fmt.Sprintf("/portfolio/projects/%d", userID), nil)
}

func (s *Service) GetSkills(ctx context.Context, userID int64) ([]portfolio.Skill, error) {
	return Call[[]portfolio.Skill](ctx, s.client, http.MethodGet, fmt.Sprintf("/portfolio/skills/%d", userID), nil)
}

func (s *Service) GetFeaturedSkills(ctx context.Context, userID int64) ([]portfolio.Skill, error) {
	return Call[[]portfolio.Skill](ctx, s.client, http.MethodGet, fmt.Sprintf("/portfolio/skills/%d/featured", userID), nil)
}

func (s *Service) GetSkillCategories(ctx context.Context, userID int64) ([]string, error) {
	return Call[[]string](ctx, s.client, http.MethodGet, fmt.Sprintf("/portfolio/skills/%d/categories", userID), nil)
}

func (s *Service) GetEducation(ctx context.Context, userID int64) ([]portfolio.Education, error) {
	return Call[[]portfolio.Education](ctx, s.client, http.MethodGet, fmt.Sprintf("/portfolio/education/%d", userID), nil)
}

func (s *Service) SubmitContactMessage(ctx context.Context, msg portfolio.ContactMessage) (portfolio.ContactMessage, error) {
	return Call[portfolio.ContactMessage](ctx, s.client, http.MethodPost, "/portfolio/contact", msg)
}

func (s *Service) GetUnreadMessageCount(ctx context.Context) (int64, error) {
	return Call[int64](ctx, s.client, http.MethodGet, "/portfolio/contact/unread-count", nil)
}

func (s *Service) HealthCheck(ctx context.Context) (string, error) {
	return Call[string](ctx, s.client, http.MethodGet, "/portfolio/health", nil)
}
