package section

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/khoahotran/portfolio/internal/application/service"
	"github.com/khoahotran/portfolio/internal/domain/portfolio"
	"github.com/khoahotran/portfolio/pkg/logger"
)

const (
	NameSummary    = "summary"
	NameExperience = "experience"
	NameProjects   = "projects"
	NameSkills     = "skills"
	NameEducation  = "education"
)

// Names lists the read sections in page order.
var Names = []string{NameSummary, NameExperience, NameProjects, NameSkills, NameEducation}

type Loaders struct {
	Summary    *Loader[portfolio.Summary]
	Experience *Loader[[]portfolio.Experience]
	Projects   *Loader[[]portfolio.Project]
	Skills     *Loader[portfolio.SkillBoard]
	Education  *Loader[[]portfolio.Education]
}

func NewLoaders(api service.PortfolioReader, userID int64, log logger.Logger) *Loaders {
	skills := NewLoader(NameSkills, func(ctx context.Context) ([]portfolio.Skill, error) {
		return api.GetSkills(ctx, userID)
	}, FallbackSkills, log)

	return &Loaders{
		Summary: NewLoader(NameSummary, api.GetSummary, FallbackSummary, log),
		Experience: NewLoader(NameExperience, func(ctx context.Context) ([]portfolio.Experience, error) {
			return api.GetExperience(ctx, userID)
		}, FallbackExperience, log),
		Projects: NewLoader(NameProjects, func(ctx context.Context) ([]portfolio.Project, error) {
			return api.GetProjects(ctx, userID)
		}, FallbackProjects, log),
		Skills: Map(skills, portfolio.GroupSkills),
		Education: NewLoader(NameEducation, func(ctx context.Context) ([]portfolio.Education, error) {
			return api.GetEducation(ctx, userID)
		}, FallbackEducation, log),
	}
}

type Page struct {
	Summary    Result[portfolio.Summary]
	Experience Result[[]portfolio.Experience]
	Projects   Result[[]portfolio.Project]
	Skills     Result[portfolio.SkillBoard]
	Education  Result[[]portfolio.Education]
}

// LoadPage runs every section loader concurrently. Loaders share nothing but
// the backend client, and none of them can fail the page.
func (l *Loaders) LoadPage(ctx context.Context) Page {
	var page Page
	var g errgroup.Group

	g.Go(func() error { page.Summary = l.Summary.Load(ctx); return nil })
	g.Go(func() error { page.Experience = l.Experience.Load(ctx); return nil })
	g.Go(func() error { page.Projects = l.Projects.Load(ctx); return nil })
	g.Go(func() error { page.Skills = l.Skills.Load(ctx); return nil })
	g.Go(func() error { page.Education = l.Education.Load(ctx); return nil })

	_ = g.Wait()
	return page
}

// LoadSection loads one section by name. The second result is false for an
// unknown name.
func (l *Loaders) LoadSection(ctx context.Context, name string) (any, bool) {
	switch name {
	case NameSummary:
		return l.Summary.Load(ctx), true
	case NameExperience:
		return l.Experience.Load(ctx), true
	case NameProjects:
		return l.Projects.Load(ctx), true
	case NameSkills:
		return l.Skills.Load(ctx), true
	case NameEducation:
		return l.Education.Load(ctx), true
	default:
		return nil, false
	}
}
