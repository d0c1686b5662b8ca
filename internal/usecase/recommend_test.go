package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careerpath-labs/career-compass/internal/domain"
	"github.com/careerpath-labs/career-compass/internal/usecase"
)

func TestRecommend_For(t *testing.T) {
	t.Parallel()
	careers := []domain.Career{
		{ID: "c1", Title: "Software Engineer", RequiredSkills: []string{"Go"}, Interests: []string{"Tech"}},
		{ID: "c2", Title: "Chef", RequiredSkills: []string{"Cooking"}, Interests: []string{"Food"}},
	}
	courses := []domain.Course{
		{ID: "k1", Title: "Go Basics", SkillsGained: []string{"Go"}},
		{ID: "k2", Title: "Painting", SkillsGained: []string{"Art"}},
	}
	svc := usecase.NewRecommendService(
		stubAssessments{assessment: domain.Assessment{
			UserID:  "u1",
			Profile: domain.Profile{Skills: []string{"Go"}, Interests: []string{"Tech"}},
		}},
		stubCareers{careers: careers},
		stubCourses{courses: courses},
	)

	recs, err := svc.For(context.Background(), "u1")
	require.NoError(t, err)

	require.Len(t, recs.Careers, 1)
	assert.Equal(t, "Software Engineer", recs.Careers[0].Title)
	assert.InDelta(t, 100.0, recs.Careers[0].Score, 1e-9)

	require.Len(t, recs.Courses, 1)
	assert.Equal(t, "Go Basics", recs.Courses[0].Title)

	assert.Contains(t, recs.Advice, "best career matches")
}

func TestRecommend_For_NoAssessment(t *testing.T) {
	t.Parallel()
	svc := usecase.NewRecommendService(
		stubAssessments{err: domain.ErrNotFound},
		stubCareers{},
		stubCourses{},
	)
	_, err := svc.For(context.Background(), "u1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecommend_For_CatalogFailure(t *testing.T) {
	t.Parallel()
	svc := usecase.NewRecommendService(
		stubAssessments{},
		stubCareers{err: errors.New("db down")},
		stubCourses{},
	)
	_, err := svc.For(context.Background(), "u1")
	assert.Error(t, err)
}
