// Package domain holds the core entities, sentinel errors, and ports
// (repository and client interfaces) of the career guidance service.
package domain

import (
	"context"
	"errors"
	"time"
)

// Error taxonomy (sentinels)
var (
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("conflict")
	ErrRateLimited       = errors.New("rate limited")
	ErrUnavailable       = errors.New("unavailable")
	ErrUpstreamTimeout   = errors.New("upstream timeout")
	ErrUpstreamRateLimit = errors.New("upstream rate limit")
	ErrInternal          = errors.New("internal error")
)

// Education captures the education section of an assessment.
type Education struct {
	Level string
	Field string
	GPA   string
}

// Preferences captures the work preference section of an assessment.
type Preferences struct {
	WorkEnvironment []string
	WorkStyle       []string
	Salary          string
	Location        string
}

// Profile is the structured view of a user's self-reported skills,
// interests, education, and preferences used by the matching engine.
type Profile struct {
	Skills      []string
	Interests   []string
	Education   Education
	Preferences Preferences
}

// Assessment is a stored profile owned by a single user. Re-submitting an
// assessment overwrites the whole record; there is no partial update.
type Assessment struct {
	UserID string
	Profile
	UpdatedAt time.Time
}

// Career is a read-only catalog entry.
type Career struct {
	ID             string
	Title          string
	Description    string
	RequiredSkills []string
	Interests      []string
	CreatedAt      time.Time
}

// Course is a read-only catalog entry.
type Course struct {
	ID           string
	Title        string
	Description  string
	Level        string
	SkillsGained []string
	CreatedAt    time.Time
}

// ScoredCareer is a catalog entry plus its match score. It exists only
// within a single recommendation computation and is never persisted.
// Scores are always in [0,100].
type ScoredCareer struct {
	Career
	Score float64
}

// ScoredCourse is a course plus its match score; same lifecycle as ScoredCareer.
type ScoredCourse struct {
	Course
	Score float64
}

// Message roles for stored conversations.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one stored chat exchange line.
type Message struct {
	ID        string
	UserID    string
	Role      string
	Content   string
	CreatedAt time.Time
}

// Resume stores extracted resume text for a user.
type Resume struct {
	ID        string
	UserID    string
	Filename  string
	Text      string
	CreatedAt time.Time
}

// Repositories (ports)

type AssessmentRepository interface {
	Upsert(ctx Context, a Assessment) error
	GetByUserID(ctx Context, userID string) (Assessment, error)
	Delete(ctx Context, userID string) error
}

type CareerRepository interface {
	List(ctx Context) ([]Career, error)
}

type CourseRepository interface {
	List(ctx Context) ([]Course, error)
}

// SavedItemRepository tracks careers and courses a user bookmarked.
type SavedItemRepository interface {
	SaveCareer(ctx Context, userID, careerID string) error
	UnsaveCareer(ctx Context, userID, careerID string) error
	SavedCareerIDs(ctx Context, userID string) ([]string, error)
	SaveCourse(ctx Context, userID, courseID string) error
	UnsaveCourse(ctx Context, userID, courseID string) error
	SavedCourseIDs(ctx Context, userID string) ([]string, error)
}

type ConversationRepository interface {
	Append(ctx Context, m Message) (string, error)
	History(ctx Context, userID string, limit int) ([]Message, error)
}

type ResumeRepository interface {
	Create(ctx Context, r Resume) (string, error)
	GetByUserID(ctx Context, userID string) (Resume, error)
}

// ChatClient (port) is the external LLM collaborator used by the chat page
// and resume analysis. The rule-based assistant never depends on it.
type ChatClient interface {
	// Available reports whether the client is configured and usable.
	Available() bool
	// Reply generates a free-form reply to message given prior history.
	Reply(ctx Context, message string, history []Message) (string, error)
}

// Context is an alias to context.Context so ports stay terse.
type Context = context.Context
