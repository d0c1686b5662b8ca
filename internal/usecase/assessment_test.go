package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careerpath-labs/career-compass/internal/domain"
	"github.com/careerpath-labs/career-compass/internal/usecase"
)

type recordingAssessments struct {
	upserted *domain.Assessment
	deleted  string
	stored   domain.Assessment
	getErr   error
}

func (r *recordingAssessments) Upsert(_ domain.Context, a domain.Assessment) error {
	r.upserted = &a
	return nil
}

func (r *recordingAssessments) GetByUserID(domain.Context, string) (domain.Assessment, error) {
	return r.stored, r.getErr
}

func (r *recordingAssessments) Delete(_ domain.Context, userID string) error {
	r.deleted = userID
	return nil
}

func TestAssessment_Submit(t *testing.T) {
	t.Parallel()
	repo := &recordingAssessments{}
	svc := usecase.NewAssessmentService(repo)

	p := domain.Profile{Skills: []string{"Go"}, Interests: []string{"Tech"}}
	require.NoError(t, svc.Submit(context.Background(), "u1", p))

	require.NotNil(t, repo.upserted)
	assert.Equal(t, "u1", repo.upserted.UserID)
	assert.Equal(t, []string{"Go"}, repo.upserted.Skills)
	assert.WithinDuration(t, time.Now().UTC(), repo.upserted.UpdatedAt, time.Minute)
}

func TestAssessment_Submit_RequiresUserID(t *testing.T) {
	t.Parallel()
	svc := usecase.NewAssessmentService(&recordingAssessments{})
	err := svc.Submit(context.Background(), "", domain.Profile{})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestAssessment_Get(t *testing.T) {
	t.Parallel()
	repo := &recordingAssessments{stored: domain.Assessment{UserID: "u1"}}
	svc := usecase.NewAssessmentService(repo)

	a, err := svc.Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", a.UserID)

	_, err = svc.Get(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestAssessment_Get_NotFound(t *testing.T) {
	t.Parallel()
	repo := &recordingAssessments{getErr: domain.ErrNotFound}
	svc := usecase.NewAssessmentService(repo)
	_, err := svc.Get(context.Background(), "u1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAssessment_Reset(t *testing.T) {
	t.Parallel()
	repo := &recordingAssessments{}
	svc := usecase.NewAssessmentService(repo)
	require.NoError(t, svc.Reset(context.Background(), "u1"))
	assert.Equal(t, "u1", repo.deleted)

	assert.ErrorIs(t, svc.Reset(context.Background(), ""), domain.ErrInvalidArgument)
}
