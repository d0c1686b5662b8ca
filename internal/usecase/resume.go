package usecase

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/careerpath-labs/career-compass/internal/domain"
	"github.com/careerpath-labs/career-compass/pkg/textx"
)

const msgResumeAnalysisUnavailable = "AI resume analysis is currently unavailable."

// maxResumeChars bounds the stored resume text and the LLM prompt size.
const maxResumeChars = 20000

// resumeAnalysisPrompt asks the LLM for a structured review of the resume.
const resumeAnalysisPrompt = `You are an expert resume reviewer. Analyze this resume content and provide:

1. Overall score (1-100)
2. Top 3 strengths
3. Top 3 areas for improvement
4. Specific actionable recommendations

Resume Content:
%s

Please format your response clearly with sections for each point.`

// ResumeService stores uploaded resume text and produces an AI analysis.
type ResumeService struct {
	Repo domain.ResumeRepository
	AI   domain.ChatClient
}

// NewResumeService constructs a ResumeService.
func NewResumeService(r domain.ResumeRepository, ai domain.ChatClient) ResumeService {
	return ResumeService{Repo: r, AI: ai}
}

// Analysis is the outcome of one resume ingestion.
type Analysis struct {
	ResumeID string
	Text     string
}

// Ingest sanitizes and stores the resume, then asks the LLM for a review.
// A failed or unavailable LLM degrades to a static message; storage errors
// are real errors.
func (s ResumeService) Ingest(ctx domain.Context, userID, filename, content string) (Analysis, error) {
	if userID == "" {
		return Analysis{}, fmt.Errorf("%w: user id required", domain.ErrInvalidArgument)
	}
	text := textx.SanitizeText(content)
	if text == "" {
		return Analysis{}, fmt.Errorf("%w: empty resume text", domain.ErrInvalidArgument)
	}
	text = textx.Truncate(text, maxResumeChars)

	id, err := s.Repo.Create(ctx, domain.Resume{
		UserID:    userID,
		Filename:  filename,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return Analysis{}, err
	}

	if s.AI == nil || !s.AI.Available() {
		return Analysis{ResumeID: id, Text: msgResumeAnalysisUnavailable}, nil
	}
	review, err := s.AI.Reply(ctx, fmt.Sprintf(resumeAnalysisPrompt, text), nil)
	if err != nil {
		slog.Warn("resume analysis failed", slog.String("user_id", userID), slog.Any("error", err))
		return Analysis{ResumeID: id, Text: "Unable to analyze resume at this time. Please try again later."}, nil
	}
	return Analysis{ResumeID: id, Text: review}, nil
}
