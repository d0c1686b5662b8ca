package match_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careerpath-labs/career-compass/internal/domain"
	"github.com/careerpath-labs/career-compass/internal/match"
)

func career(title string, skills, interests []string) domain.Career {
	return domain.Career{ID: title, Title: title, RequiredSkills: skills, Interests: interests}
}

func TestRankCareers_WeightsAndOrder(t *testing.T) {
	t.Parallel()
	p := domain.Profile{
		Skills:    []string{"Python"},
		Interests: []string{"Data"},
	}
	catalog := []domain.Career{
		career("SkillsOnly", []string{"Python"}, []string{"Art"}),
		career("InterestsOnly", []string{"Figma"}, []string{"Data"}),
	}

	ranked := match.RankCareers(catalog, p)
	require.Len(t, ranked, 2)
	// Interests weigh 0.6 against 0.4 for skills, so the interest match
	// ranks first.
	assert.Equal(t, "InterestsOnly", ranked[0].Title)
	assert.InDelta(t, 60.0, ranked[0].Score, 1e-9)
	assert.Equal(t, "SkillsOnly", ranked[1].Title)
	assert.InDelta(t, 40.0, ranked[1].Score, 1e-9)
}

func TestRankCareers_TiesKeepCatalogOrder(t *testing.T) {
	t.Parallel()
	p := domain.Profile{Skills: []string{"Go"}, Interests: []string{"Tech"}}
	catalog := []domain.Career{
		career("First", []string{"Go"}, []string{"Tech"}),
		career("Second", []string{"Go"}, []string{"Tech"}),
	}
	ranked := match.RankCareers(catalog, p)
	require.Len(t, ranked, 2)
	assert.Equal(t, "First", ranked[0].Title)
	assert.Equal(t, "Second", ranked[1].Title)
}

func TestTopCareers_TruncateBeforeFilter(t *testing.T) {
	t.Parallel()
	// A positive fourth entry must not replace a zero-scored entry inside
	// the top three.
	scored := []domain.ScoredCareer{
		{Career: career("A", nil, nil), Score: 80},
		{Career: career("B", nil, nil), Score: 50},
		{Career: career("C", nil, nil), Score: 0},
		{Career: career("D", nil, nil), Score: 10},
	}
	top := match.TopCareers(scored)
	require.Len(t, top, 2)
	assert.Equal(t, "A", top[0].Title)
	assert.Equal(t, "B", top[1].Title)
}

func TestCareerAdvice_EmptyCatalog(t *testing.T) {
	t.Parallel()
	got := match.CareerAdvice(nil, domain.Profile{Skills: []string{"Go"}})
	assert.Equal(t, "Based on your profile, I recommend exploring different career paths. Take more assessments to get personalized recommendations.", got)
}

func TestCareerAdvice_NoPositiveMatches(t *testing.T) {
	t.Parallel()
	catalog := []domain.Career{career("Chef", []string{"Cooking"}, []string{"Food"})}
	p := domain.Profile{Skills: []string{"Go"}, Interests: []string{"Tech"}}
	got := match.CareerAdvice(catalog, p)
	assert.Equal(t, "Based on your interests in Tech and skills in Go, I recommend exploring careers that align with these strengths. Consider developing additional technical skills to broaden your opportunities.", got)
}

func TestCareerAdvice_NoPositiveMatches_EmptyProfileFillers(t *testing.T) {
	t.Parallel()
	catalog := []domain.Career{career("Chef", []string{"Cooking"}, []string{"Food"})}
	got := match.CareerAdvice(catalog, domain.Profile{})
	assert.Contains(t, got, "interests in various fields")
	assert.Contains(t, got, "skills in multiple areas")
}

func TestCareerAdvice_RendersTopMatches(t *testing.T) {
	t.Parallel()
	catalog := []domain.Career{
		{ID: "1", Title: "Software Engineer", Description: "Build software.", RequiredSkills: []string{"Go"}, Interests: []string{"Tech"}},
	}
	p := domain.Profile{Skills: []string{"Go"}, Interests: []string{"Tech"}}
	got := match.CareerAdvice(catalog, p)

	assert.True(t, strings.HasPrefix(got, "Based on your profile, here are the best career matches for you:\n\n"))
	assert.Contains(t, got, "1. **Software Engineer** (100% match)\n   Build software.\n\n")
	assert.Contains(t, got, "You have strong interests in Tech and good skills in Go. These align well with these roles.")
}

func TestCareerAdvice_DescriptionFallback(t *testing.T) {
	t.Parallel()
	catalog := []domain.Career{career("Engineer", []string{"Go"}, nil)}
	p := domain.Profile{Skills: []string{"Go"}}
	got := match.CareerAdvice(catalog, p)
	assert.Contains(t, got, "A promising career path for you.")
}

func TestCareerAdvice_RoundsScores(t *testing.T) {
	t.Parallel()
	// One of three skills matched: 100/3 * 0.4 = 13.33 -> rendered as 13%.
	catalog := []domain.Career{career("Engineer", []string{"Go", "SQL", "Linux"}, nil)}
	p := domain.Profile{Skills: []string{"Go"}}
	got := match.CareerAdvice(catalog, p)
	assert.Contains(t, got, "(13% match)")
}
