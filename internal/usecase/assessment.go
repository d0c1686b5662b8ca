// Package usecase contains application business logic services.
package usecase

import (
	"fmt"
	"time"

	"github.com/careerpath-labs/career-compass/internal/domain"
)

// AssessmentService manages the one-per-user assessment record.
type AssessmentService struct {
	Repo domain.AssessmentRepository
}

// NewAssessmentService constructs an AssessmentService.
func NewAssessmentService(r domain.AssessmentRepository) AssessmentService {
	return AssessmentService{Repo: r}
}

// Submit stores the assessment as a full overwrite of any previous one.
func (s AssessmentService) Submit(ctx domain.Context, userID string, p domain.Profile) error {
	if userID == "" {
		return fmt.Errorf("%w: user id required", domain.ErrInvalidArgument)
	}
	a := domain.Assessment{UserID: userID, Profile: p, UpdatedAt: time.Now().UTC()}
	return s.Repo.Upsert(ctx, a)
}

// Get returns the user's assessment.
func (s AssessmentService) Get(ctx domain.Context, userID string) (domain.Assessment, error) {
	if userID == "" {
		return domain.Assessment{}, fmt.Errorf("%w: user id required", domain.ErrInvalidArgument)
	}
	return s.Repo.GetByUserID(ctx, userID)
}

// Reset deletes the user's assessment.
func (s AssessmentService) Reset(ctx domain.Context, userID string) error {
	if userID == "" {
		return fmt.Errorf("%w: user id required", domain.ErrInvalidArgument)
	}
	return s.Repo.Delete(ctx, userID)
}
