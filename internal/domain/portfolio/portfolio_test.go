package portfolio

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestFormatScore(t *testing.T) {
	tests := []struct {
		name string
		gpa  *float64
		want string
	}{
		{"missing", nil, ""},
		{"four point", ptr(3.8), "3.80/4.0"},
		{"four point boundary", ptr(4.0), "4.00/4.0"},
		{"ten point", ptr(8.99), "8.99/10.0"},
		{"ten point boundary", ptr(10.0), "10.00/10.0"},
		{"percentage", ptr(94.6), "94.6%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Education{GPA: tt.gpa}.FormatScore())
		})
	}
}

func ptr(f float64) *float64 { return &f }

func TestExperienceDuration(t *testing.T) {
	now := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		exp  Experience
		want string
	}{
		{"ongoing", Experience{StartDate: "2024-04-01"}, "1 year 2 months"},
		{"whole years", Experience{StartDate: "2020-10-01", EndDate: strPtr("2022-10-31")}, "2 years"},
		{"months only", Experience{StartDate: "2021-01-01", EndDate: strPtr("2021-06-30")}, "5 months"},
		{"plural both", Experience{StartDate: "2018-09-01", EndDate: strPtr("2020-12-30")}, "2 years 3 months"},
		{"bad date", Experience{StartDate: "soon"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.exp.Duration(now))
		})
	}
}

func TestExperienceOngoing(t *testing.T) {
	assert.True(t, Experience{}.Ongoing())
	assert.True(t, Experience{EndDate: strPtr("")}.Ongoing())
	assert.False(t, Experience{EndDate: strPtr("2021-11-30")}.Ongoing())
}

func TestSplitTechnologies(t *testing.T) {
	assert.Nil(t, SplitTechnologies(nil))
	assert.Equal(t,
		[]string{"Java 21", "Spring Boot", "AWS"},
		SplitTechnologies(strPtr("Java 21, Spring Boot,AWS, ")),
	)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-04-01")
	require.NoError(t, err)
	assert.Equal(t, time.April, d.Month())

	_, err = ParseDate("2024-04-01T10:30:00")
	require.NoError(t, err)

	_, err = ParseDate("April 2024")
	assert.Error(t, err)

	assert.Equal(t, "April 2024", FormatMonth("2024-04-01"))
	assert.Equal(t, "whenever", FormatMonth("whenever"))
}
