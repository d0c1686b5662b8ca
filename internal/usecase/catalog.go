package usecase

import (
	"fmt"

	"github.com/careerpath-labs/career-compass/internal/domain"
)

// CatalogService exposes catalog listings and per-user bookmarks.
type CatalogService struct {
	Careers domain.CareerRepository
	Courses domain.CourseRepository
	Saved   domain.SavedItemRepository
}

// NewCatalogService constructs a CatalogService.
func NewCatalogService(careers domain.CareerRepository, courses domain.CourseRepository, saved domain.SavedItemRepository) CatalogService {
	return CatalogService{Careers: careers, Courses: courses, Saved: saved}
}

// ListCareers returns the career catalog.
func (s CatalogService) ListCareers(ctx domain.Context) ([]domain.Career, error) {
	return s.Careers.List(ctx)
}

// ListCourses returns the course catalog.
func (s CatalogService) ListCourses(ctx domain.Context) ([]domain.Course, error) {
	return s.Courses.List(ctx)
}

// SaveCareer bookmarks a career for the user.
func (s CatalogService) SaveCareer(ctx domain.Context, userID, careerID string) error {
	if userID == "" || careerID == "" {
		return fmt.Errorf("%w: user id and career id required", domain.ErrInvalidArgument)
	}
	return s.Saved.SaveCareer(ctx, userID, careerID)
}

// UnsaveCareer removes a career bookmark.
func (s CatalogService) UnsaveCareer(ctx domain.Context, userID, careerID string) error {
	if userID == "" || careerID == "" {
		return fmt.Errorf("%w: user id and career id required", domain.ErrInvalidArgument)
	}
	return s.Saved.UnsaveCareer(ctx, userID, careerID)
}

// SaveCourse bookmarks a course for the user.
func (s CatalogService) SaveCourse(ctx domain.Context, userID, courseID string) error {
	if userID == "" || courseID == "" {
		return fmt.Errorf("%w: user id and course id required", domain.ErrInvalidArgument)
	}
	return s.Saved.SaveCourse(ctx, userID, courseID)
}

// UnsaveCourse removes a course bookmark.
func (s CatalogService) UnsaveCourse(ctx domain.Context, userID, courseID string) error {
	if userID == "" || courseID == "" {
		return fmt.Errorf("%w: user id and course id required", domain.ErrInvalidArgument)
	}
	return s.Saved.UnsaveCourse(ctx, userID, courseID)
}

// SavedCareerIDs lists career ids bookmarked by the user.
func (s CatalogService) SavedCareerIDs(ctx domain.Context, userID string) ([]string, error) {
	return s.Saved.SavedCareerIDs(ctx, userID)
}

// SavedCourseIDs lists course ids bookmarked by the user.
func (s CatalogService) SavedCourseIDs(ctx domain.Context, userID string) ([]string, error) {
	return s.Saved.SavedCourseIDs(ctx, userID)
}
