package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careerpath-labs/career-compass/internal/assistant"
	"github.com/careerpath-labs/career-compass/internal/domain"
	"github.com/careerpath-labs/career-compass/internal/usecase"
)

type stubAI struct {
	available bool
	reply     string
	err       error

	gotMessage string
	gotHistory []domain.Message
}

func (s *stubAI) Available() bool { return s.available }
func (s *stubAI) Reply(_ domain.Context, message string, history []domain.Message) (string, error) {
	s.gotMessage = message
	s.gotHistory = history
	return s.reply, s.err
}

type stubConversations struct {
	appended  []domain.Message
	appendErr error
	history   []domain.Message
	histErr   error
}

func (s *stubConversations) Append(_ domain.Context, m domain.Message) (string, error) {
	if s.appendErr != nil {
		return "", s.appendErr
	}
	s.appended = append(s.appended, m)
	return "id", nil
}

func (s *stubConversations) History(domain.Context, string, int) ([]domain.Message, error) {
	return s.history, s.histErr
}

type stubAssessments struct {
	assessment domain.Assessment
	err        error
}

func (s stubAssessments) Upsert(domain.Context, domain.Assessment) error { return nil }
func (s stubAssessments) GetByUserID(domain.Context, string) (domain.Assessment, error) {
	return s.assessment, s.err
}
func (s stubAssessments) Delete(domain.Context, string) error { return nil }

type stubCareers struct {
	careers []domain.Career
	err     error
}

func (s stubCareers) List(domain.Context) ([]domain.Career, error) { return s.careers, s.err }

type stubCourses struct {
	courses []domain.Course
	err     error
}

func (s stubCourses) List(domain.Context) ([]domain.Course, error) { return s.courses, s.err }

func fallbackResponder() assistant.Responder {
	return assistant.NewResponder(
		stubAssessments{err: domain.ErrNotFound},
		stubCareers{},
		stubCourses{},
	)
}

func TestChat_LLMReply(t *testing.T) {
	t.Parallel()
	ai := &stubAI{available: true, reply: "Consider backend roles."}
	conv := &stubConversations{history: []domain.Message{{Role: domain.RoleUser, Content: "hi"}}}
	svc := usecase.NewChatService(ai, fallbackResponder(), conv, 10)

	got := svc.Reply(context.Background(), "u1", "what career suits me?")
	assert.Equal(t, "Consider backend roles.", got)
	assert.Equal(t, "what career suits me?", ai.gotMessage)
	assert.Len(t, ai.gotHistory, 1)

	// Both sides of the exchange get persisted.
	require.Len(t, conv.appended, 2)
	assert.Equal(t, domain.RoleUser, conv.appended[0].Role)
	assert.Equal(t, domain.RoleAssistant, conv.appended[1].Role)
	assert.Equal(t, "Consider backend roles.", conv.appended[1].Content)
}

func TestChat_FallbackWhenUnavailable(t *testing.T) {
	t.Parallel()
	svc := usecase.NewChatService(&stubAI{available: false}, fallbackResponder(), &stubConversations{}, 10)
	got := svc.Reply(context.Background(), "u1", "Tell me about jobs")
	assert.Contains(t, got, "Visit the Assessment page to get started.")
}

func TestChat_FallbackWhenNilAI(t *testing.T) {
	t.Parallel()
	svc := usecase.NewChatService(nil, fallbackResponder(), &stubConversations{}, 10)
	got := svc.Reply(context.Background(), "u1", "hello")
	assert.NotEmpty(t, got)
}

func TestChat_ErrorMessages(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"unavailable", domain.ErrUnavailable, "I'm sorry, but the AI service is currently unavailable. Please check your API configuration."},
		{"rate limited", domain.ErrUpstreamRateLimit, "The AI service is currently experiencing high demand. Please try again in a few moments."},
		{"other", errors.New("boom"), "I'm experiencing technical difficulties. Please try again later."},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ai := &stubAI{available: true, err: tc.err}
			svc := usecase.NewChatService(ai, fallbackResponder(), &stubConversations{}, 10)
			got := svc.Reply(context.Background(), "u1", "hi")
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestChat_PersistFailureDoesNotAffectReply(t *testing.T) {
	t.Parallel()
	ai := &stubAI{available: true, reply: "ok"}
	conv := &stubConversations{appendErr: errors.New("db down")}
	svc := usecase.NewChatService(ai, fallbackResponder(), conv, 10)
	got := svc.Reply(context.Background(), "u1", "hi")
	assert.Equal(t, "ok", got)
}

func TestChat_HistoryFailureDegradesToNoHistory(t *testing.T) {
	t.Parallel()
	ai := &stubAI{available: true, reply: "ok"}
	conv := &stubConversations{histErr: errors.New("db down")}
	svc := usecase.NewChatService(ai, fallbackResponder(), conv, 10)
	got := svc.Reply(context.Background(), "u1", "hi")
	assert.Equal(t, "ok", got)
	assert.Nil(t, ai.gotHistory)
}
