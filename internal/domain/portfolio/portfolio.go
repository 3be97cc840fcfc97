package portfolio

import (
	"fmt"
	"strings"
	"time"
)

type User struct {
	UserID       int64   `json:"userId"`
	FullName     string  `json:"fullName"`
	Email        string  `json:"email"`
	Phone        *string `json:"phone,omitempty"`
	Bio          *string `json:"bio,omitempty"`
	ProfileImage *string `json:"profileImage,omitempty"`
	ResumeURL    *string `json:"resumeUrl,omitempty"`
	IsActive     bool    `json:"isActive"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

type Summary struct {
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Bio             *string `json:"bio,omitempty"`
	ProfileImage    *string `json:"profileImage,omitempty"`
	ExperienceCount int     `json:"experienceCount"`
	ProjectCount    int     `json:"projectCount"`
	SkillCount      int     `json:"skillCount"`
	EducationCount  int     `json:"educationCount"`
}

type Experience struct {
	ExperienceID int64   `json:"experienceId"`
	Company      string  `json:"company"`
	Position     string  `json:"position"`
	StartDate    string  `json:"startDate"`
	EndDate      *string `json:"endDate,omitempty"`
	Description  *string `json:"description,omitempty"`
	Technologies *string `json:"technologies,omitempty"`
	IsCurrent    bool    `json:"isCurrent"`
	CreatedAt    string  `json:"createdAt"`
}

// Ongoing reports whether the role has no end date.
func (e Experience) Ongoing() bool {
	return e.EndDate == nil || *e.EndDate == ""
}

func (e Experience) TechnologyList() []string {
	return SplitTechnologies(e.Technologies)
}

// Duration renders the span between start and end (or now for ongoing roles)
// as "N years M months".
func (e Experience) Duration(now time.Time) string {
	start, err := ParseDate(e.StartDate)
	if err != nil {
		return ""
	}
	end := now
	if !e.Ongoing() {
		if end, err = ParseDate(*e.EndDate); err != nil {
			return ""
		}
	}

	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	if months < 0 {
		months = 0
	}
	years, rest := months/12, months%12

	switch {
	case years == 0:
		return fmt.Sprintf("%d months", rest)
	case rest == 0:
		return plural(years, "year")
	default:
		return plural(years, "year") + " " + plural(rest, "month")
	}
}

type Project struct {
	ProjectID    int64   `json:"projectId"`
	ProjectName  string  `json:"projectName"`
	Description  *string `json:"description,omitempty"`
	Technologies *string `json:"technologies,omitempty"`
	GithubURL    *string `json:"githubUrl,omitempty"`
	LiveURL      *string `json:"liveUrl,omitempty"`
	ImageURL     *string `json:"imageUrl,omitempty"`
	StartDate    *string `json:"startDate,omitempty"`
	EndDate      *string `json:"endDate,omitempty"`
	CreatedAt    string  `json:"createdAt"`
}

func (p Project) TechnologyList() []string {
	return SplitTechnologies(p.Technologies)
}

type Education struct {
	EducationID  int64    `json:"educationId"`
	Institution  string   `json:"institution"`
	Degree       string   `json:"degree"`
	FieldOfStudy *string  `json:"fieldOfStudy,omitempty"`
	StartDate    *string  `json:"startDate,omitempty"`
	EndDate      *string  `json:"endDate,omitempty"`
	GPA          *float64 `json:"gpa,omitempty"`
	Description  *string  `json:"description,omitempty"`
}

// FormatScore picks the grading scale from the score's magnitude.
func (e Education) FormatScore() string {
	if e.GPA == nil || *e.GPA == 0 {
		return ""
	}
	gpa := *e.GPA
	switch {
	case gpa <= 4.0:
		return fmt.Sprintf("%.2f/4.0", gpa)
	case gpa <= 10.0:
		return fmt.Sprintf("%.2f/10.0", gpa)
	default:
		return fmt.Sprintf("%.1f%%", gpa)
	}
}

type ContactFormData struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Subject string `json:"subject" form:"subject"`
	Message string `json:"message" form:"message"`
}

type ContactMessage struct {
	MessageID *int64  `json:"messageId,omitempty"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Subject   *string `json:"subject,omitempty"`
	Message   string  `json:"message"`
	SentDate  *string `json:"sentDate,omitempty"`
	IsRead    *bool   `json:"isRead,omitempty"`
	Response  *string `json:"response,omitempty"`
}

// SplitTechnologies turns the backend's comma-joined list into trimmed items.
func SplitTechnologies(list *string) []string {
	if list == nil {
		return nil
	}
	var out []string
	for _, item := range strings.Split(*list, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

var dateLayouts = []string{time.DateOnly, time.RFC3339Nano, "2006-01-02T15:04:05"}

// ParseDate accepts the date shapes the backend emits.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// FormatMonth renders a wire date as "January 2006"; unparsable input is
// returned unchanged.
func FormatMonth(s string) string {
	t, err := ParseDate(s)
	if err != nil {
		return s
	}
	return t.Format("January 2006")
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
