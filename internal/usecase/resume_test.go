package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careerpath-labs/career-compass/internal/domain"
	"github.com/careerpath-labs/career-compass/internal/usecase"
)

type stubResumes struct {
	created   *domain.Resume
	createErr error
}

func (s *stubResumes) Create(_ domain.Context, r domain.Resume) (string, error) {
	if s.createErr != nil {
		return "", s.createErr
	}
	s.created = &r
	return "res-1", nil
}

func (s *stubResumes) GetByUserID(domain.Context, string) (domain.Resume, error) {
	return domain.Resume{}, domain.ErrNotFound
}

func TestResume_Ingest_Success(t *testing.T) {
	t.Parallel()
	repo := &stubResumes{}
	ai := &stubAI{available: true, reply: "Strong resume."}
	svc := usecase.NewResumeService(repo, ai)

	got, err := svc.Ingest(context.Background(), "u1", "resume.txt", "Experienced Go developer.")
	require.NoError(t, err)
	assert.Equal(t, "res-1", got.ResumeID)
	assert.Equal(t, "Strong resume.", got.Text)

	require.NotNil(t, repo.created)
	assert.Equal(t, "u1", repo.created.UserID)
	assert.Equal(t, "resume.txt", repo.created.Filename)
	// The review prompt wraps the stored text.
	assert.Contains(t, ai.gotMessage, "Experienced Go developer.")
	assert.True(t, strings.Contains(ai.gotMessage, "expert resume reviewer"))
}

func TestResume_Ingest_SanitizesText(t *testing.T) {
	t.Parallel()
	repo := &stubResumes{}
	svc := usecase.NewResumeService(repo, &stubAI{})

	_, err := svc.Ingest(context.Background(), "u1", "r.txt", "  hello\x00world  ")
	require.NoError(t, err)
	require.NotNil(t, repo.created)
	assert.NotContains(t, repo.created.Text, "\x00")
}

func TestResume_Ingest_BoundsStoredText(t *testing.T) {
	t.Parallel()
	repo := &stubResumes{}
	svc := usecase.NewResumeService(repo, &stubAI{available: false})

	long := strings.Repeat("a", 25000)
	_, err := svc.Ingest(context.Background(), "u1", "r.txt", long)
	require.NoError(t, err)
	require.NotNil(t, repo.created)
	assert.Equal(t, 20001, len([]rune(repo.created.Text)))
	assert.True(t, strings.HasSuffix(repo.created.Text, "…"))
}

func TestResume_Ingest_EmptyText(t *testing.T) {
	t.Parallel()
	svc := usecase.NewResumeService(&stubResumes{}, &stubAI{})
	_, err := svc.Ingest(context.Background(), "u1", "r.txt", "   \x00  ")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestResume_Ingest_RequiresUserID(t *testing.T) {
	t.Parallel()
	svc := usecase.NewResumeService(&stubResumes{}, &stubAI{})
	_, err := svc.Ingest(context.Background(), "", "r.txt", "text")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestResume_Ingest_AIUnavailable(t *testing.T) {
	t.Parallel()
	svc := usecase.NewResumeService(&stubResumes{}, &stubAI{available: false})
	got, err := svc.Ingest(context.Background(), "u1", "r.txt", "text")
	require.NoError(t, err)
	assert.Equal(t, "AI resume analysis is currently unavailable.", got.Text)
}

func TestResume_Ingest_AIFailureDegrades(t *testing.T) {
	t.Parallel()
	svc := usecase.NewResumeService(&stubResumes{}, &stubAI{available: true, err: errors.New("boom")})
	got, err := svc.Ingest(context.Background(), "u1", "r.txt", "text")
	require.NoError(t, err)
	assert.Equal(t, "res-1", got.ResumeID)
	assert.Equal(t, "Unable to analyze resume at this time. Please try again later.", got.Text)
}

func TestResume_Ingest_StorageFailure(t *testing.T) {
	t.Parallel()
	svc := usecase.NewResumeService(&stubResumes{createErr: errors.New("db down")}, &stubAI{available: true})
	_, err := svc.Ingest(context.Background(), "u1", "r.txt", "text")
	assert.Error(t, err)
}
