package portfolio

import "strings"

type Skill struct {
	SkillID          int64   `json:"skillId"`
	SkillName        string  `json:"skillName"`
	SkillCategory    *string `json:"skillCategory,omitempty"`
	ProficiencyLevel *string `json:"proficiencyLevel,omitempty"`
	YearsExperience  *int    `json:"yearsExperience,omitempty"`
	IsFeatured       bool    `json:"isFeatured"`
}

const OtherCategory = "Other"

// Category returns the grouping key, OtherCategory when unset.
func (s Skill) Category() string {
	if s.SkillCategory == nil || *s.SkillCategory == "" {
		return OtherCategory
	}
	return *s.SkillCategory
}

func (s Skill) Proficiency() Proficiency {
	if s.ProficiencyLevel == nil {
		return ProficiencyUnknown
	}
	return ParseProficiency(*s.ProficiencyLevel)
}

// Proficiency is ordinal: Beginner < Intermediate < Advanced < Expert.
type Proficiency int

const (
	ProficiencyUnknown Proficiency = iota
	ProficiencyBeginner
	ProficiencyIntermediate
	ProficiencyAdvanced
	ProficiencyExpert
)

func ParseProficiency(level string) Proficiency {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "beginner":
		return ProficiencyBeginner
	case "intermediate":
		return ProficiencyIntermediate
	case "advanced":
		return ProficiencyAdvanced
	case "expert":
		return ProficiencyExpert
	default:
		return ProficiencyUnknown
	}
}

func (p Proficiency) String() string {
	switch p {
	case ProficiencyBeginner:
		return "Beginner"
	case ProficiencyIntermediate:
		return "Intermediate"
	case ProficiencyAdvanced:
		return "Advanced"
	case ProficiencyExpert:
		return "Expert"
	default:
		return ""
	}
}

// SkillBoard is the grouped view the skills section renders.
type SkillBoard struct {
	Skills     []Skill            `json:"skills"`
	ByCategory map[string][]Skill `json:"byCategory"`
	Categories []string           `json:"categories"`
	Featured   []Skill            `json:"featured"`
}

// GroupSkills groups by category, keeping categories in first-seen order.
func GroupSkills(skills []Skill) SkillBoard {
	board := SkillBoard{
		Skills:     skills,
		ByCategory: make(map[string][]Skill),
	}
	for _, s := range skills {
		cat := s.Category()
		if _, seen := board.ByCategory[cat]; !seen {
			board.Categories = append(board.Categories, cat)
		}
		board.ByCategory[cat] = append(board.ByCategory[cat], s)
		if s.IsFeatured {
			board.Featured = append(board.Featured, s)
		}
	}
	return board
}
