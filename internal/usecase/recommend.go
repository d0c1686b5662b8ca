package usecase

import (
	"golang.org/x/sync/errgroup"

	"github.com/careerpath-labs/career-compass/internal/domain"
	"github.com/careerpath-labs/career-compass/internal/match"
)

// Recommendations is the structured result of one recommendation
// computation plus the rendered advice block.
type Recommendations struct {
	Careers []domain.ScoredCareer
	Courses []domain.ScoredCourse
	Advice  string
}

// RecommendService computes ranked careers and courses for a user.
type RecommendService struct {
	Assessments domain.AssessmentRepository
	Careers     domain.CareerRepository
	Courses     domain.CourseRepository
}

// NewRecommendService constructs a RecommendService.
func NewRecommendService(a domain.AssessmentRepository, careers domain.CareerRepository, courses domain.CourseRepository) RecommendService {
	return RecommendService{Assessments: a, Careers: careers, Courses: courses}
}

// For fetches the profile and catalogs in parallel and runs the matching
// engine. A missing assessment surfaces as domain.ErrNotFound so the
// handler can tell the user to take the assessment first.
func (s RecommendService) For(ctx domain.Context, userID string) (Recommendations, error) {
	var (
		assessment domain.Assessment
		careers    []domain.Career
		courses    []domain.Course
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a, err := s.Assessments.GetByUserID(gctx, userID)
		if err != nil {
			return err
		}
		assessment = a
		return nil
	})
	g.Go(func() error {
		cs, err := s.Careers.List(gctx)
		if err != nil {
			return err
		}
		careers = cs
		return nil
	})
	g.Go(func() error {
		cs, err := s.Courses.List(gctx)
		if err != nil {
			return err
		}
		courses = cs
		return nil
	})
	if err := g.Wait(); err != nil {
		return Recommendations{}, err
	}

	p := assessment.Profile
	return Recommendations{
		Careers: match.TopCareers(match.RankCareers(careers, p)),
		Courses: match.RankCourses(courses, careers),
		Advice:  match.CareerAdvice(careers, p),
	}, nil
}
