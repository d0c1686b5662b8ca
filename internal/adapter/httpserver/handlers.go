package httpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/careerpath-labs/career-compass/internal/assistant"
	"github.com/careerpath-labs/career-compass/internal/config"
	"github.com/careerpath-labs/career-compass/internal/domain"
	"github.com/careerpath-labs/career-compass/internal/usecase"
)

// Server aggregates handler dependencies.
type Server struct {
	Cfg         config.Config
	Assessments usecase.AssessmentService
	Recommend   usecase.RecommendService
	Catalog     usecase.CatalogService
	Chat        usecase.ChatService
	Assistant   assistant.Responder
	Resumes     usecase.ResumeService
	DBCheck     func(ctx context.Context) error
	RedisCheck  func(ctx context.Context) error
}

// NewServer constructs an HTTP server with all handlers and checks wired.
func NewServer(cfg config.Config, assessments usecase.AssessmentService, recommend usecase.RecommendService, catalog usecase.CatalogService, chat usecase.ChatService, asst assistant.Responder, resumes usecase.ResumeService, dbCheck, redisCheck func(context.Context) error) *Server {
	return &Server{
		Cfg:         cfg,
		Assessments: assessments,
		Recommend:   recommend,
		Catalog:     catalog,
		Chat:        chat,
		Assistant:   asst,
		Resumes:     resumes,
		DBCheck:     dbCheck,
		RedisCheck:  redisCheck,
	}
}

var (
	vldOnce sync.Once
	vld     *validator.Validate
)

func getValidator() *validator.Validate {
	vldOnce.Do(func() { vld = validator.New() })
	return vld
}

// userID extracts the gateway-injected user id. Authentication itself is
// an external collaborator; this service only trusts the header.
func userID(r *http.Request) (string, error) {
	id := strings.TrimSpace(r.Header.Get("X-User-Id"))
	if id == "" {
		return "", fmt.Errorf("%w: X-User-Id header required", domain.ErrInvalidArgument)
	}
	return id, nil
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid json", domain.ErrInvalidArgument)
	}
	if err := getValidator().Struct(dst); err != nil {
		verrs := map[string]string{}
		if ve, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range ve {
				verrs[strings.ToLower(fe.Field())] = fe.Tag()
			}
		}
		return fmt.Errorf("%w: validation failed: %v", domain.ErrInvalidArgument, verrs)
	}
	return nil
}

type educationDTO struct {
	Level string `json:"level" validate:"max=100"`
	Field string `json:"field" validate:"max=100"`
	GPA   string `json:"gpa" validate:"max=10"`
}

type preferencesDTO struct {
	WorkEnvironment []string `json:"work_environment" validate:"max=20,dive,max=100"`
	WorkStyle       []string `json:"work_style" validate:"max=20,dive,max=100"`
	Salary          string   `json:"salary" validate:"max=100"`
	Location        string   `json:"location" validate:"max=100"`
}

type assessmentRequest struct {
	Skills      []string       `json:"skills" validate:"max=50,dive,max=100"`
	Interests   []string       `json:"interests" validate:"max=50,dive,max=100"`
	Education   educationDTO   `json:"education"`
	Preferences preferencesDTO `json:"preferences"`
}

func (a assessmentRequest) profile() domain.Profile {
	return domain.Profile{
		Skills:    a.Skills,
		Interests: a.Interests,
		Education: domain.Education{Level: a.Education.Level, Field: a.Education.Field, GPA: a.Education.GPA},
		Preferences: domain.Preferences{
			WorkEnvironment: a.Preferences.WorkEnvironment,
			WorkStyle:       a.Preferences.WorkStyle,
			Salary:          a.Preferences.Salary,
			Location:        a.Preferences.Location,
		},
	}
}

func assessmentResponse(a domain.Assessment) map[string]any {
	return map[string]any{
		"user_id":   a.UserID,
		"skills":    emptyToSlice(a.Skills),
		"interests": emptyToSlice(a.Interests),
		"education": map[string]string{
			"level": a.Education.Level,
			"field": a.Education.Field,
			"gpa":   a.Education.GPA,
		},
		"preferences": map[string]any{
			"work_environment": emptyToSlice(a.Preferences.WorkEnvironment),
			"work_style":       emptyToSlice(a.Preferences.WorkStyle),
			"salary":           a.Preferences.Salary,
			"location":         a.Preferences.Location,
		},
		"updated_at": a.UpdatedAt,
	}
}

func emptyToSlice(ss []string) []string {
	if ss == nil {
		return []string{}
	}
	return ss
}

// SubmitAssessmentHandler stores (or fully replaces) the assessment.
func (s *Server) SubmitAssessmentHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, err := userID(r)
		if err != nil {
			writeError(w, r, err, nil)
			return
		}
		var req assessmentRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, r, err, nil)
			return
		}
		if err := s.Assessments.Submit(r.Context(), uid, req.profile()); err != nil {
			writeError(w, r, fmt.Errorf("assessment submit: %w", err), nil)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "saved"})
	}
}

// GetAssessmentHandler returns the stored assessment.
func (s *Server) GetAssessmentHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, err := userID(r)
		if err != nil {
			writeError(w, r, err, nil)
			return
		}
		a, err := s.Assessments.Get(r.Context(), uid)
		if err != nil {
			writeError(w, r, err, nil)
			return
		}
		writeJSON(w, http.StatusOK, assessmentResponse(a))
	}
}

// ResetAssessmentHandler deletes the stored assessment.
func (s *Server) ResetAssessmentHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, err := userID(r)
		if err != nil {
			writeError(w, r, err, nil)
			return
		}
		if err := s.Assessments.Reset(r.Context(), uid); err != nil {
			writeError(w, r, err, nil)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "reset"})
	}
}

func careerJSON(c domain.Career) map[string]any {
	return map[string]any{
		"id":              c.ID,
		"title":           c.Title,
		"description":     c.Description,
		"required_skills": emptyToSlice(c.RequiredSkills),
		"interests":       emptyToSlice(c.Interests),
	}
}

func courseJSON(c domain.Course) map[string]any {
	return map[string]any{
		"id":            c.ID,
		"title":         c.Title,
		"description":   c.Description,
		"level":         c.Level,
		"skills_gained": emptyToSlice(c.SkillsGained),
	}
}

// savedSet returns the user's saved ids as a set when the user header is
// present. Anonymous catalog browsing gets no saved markers.
func (s *Server) savedSet(r *http.Request, fetch func(ctx context.Context, userID string) ([]string, error)) map[string]bool {
	uid := strings.TrimSpace(r.Header.Get("X-User-Id"))
	if uid == "" {
		return nil
	}
	ids, err := fetch(r.Context(), uid)
	if err != nil {
		return nil
	}
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

// ListCareersHandler returns the career catalog, marking the caller's
// saved entries when a user id is supplied.
func (s *Server) ListCareersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		careers, err := s.Catalog.ListCareers(r.Context())
		if err != nil {
			writeError(w, r, fmt.Errorf("career list: %w", err), nil)
			return
		}
		saved := s.savedSet(r, s.Catalog.SavedCareerIDs)
		out := make([]map[string]any, 0, len(careers))
		for _, c := range careers {
			m := careerJSON(c)
			m["saved"] = saved[c.ID]
			out = append(out, m)
		}
		writeJSON(w, http.StatusOK, map[string]any{"careers": out})
	}
}

// ListCoursesHandler returns the course catalog, marking the caller's
// saved entries when a user id is supplied.
func (s *Server) ListCoursesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		courses, err := s.Catalog.ListCourses(r.Context())
		if err != nil {
			writeError(w, r, fmt.Errorf("course list: %w", err), nil)
			return
		}
		saved := s.savedSet(r, s.Catalog.SavedCourseIDs)
		out := make([]map[string]any, 0, len(courses))
		for _, c := range courses {
			m := courseJSON(c)
			m["saved"] = saved[c.ID]
			out = append(out, m)
		}
		writeJSON(w, http.StatusOK, map[string]any{"courses": out})
	}
}

// SaveItemHandler bookmarks a career or course for the user.
func (s *Server) SaveItemHandler(kind string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, err := userID(r)
		if err != nil {
			writeError(w, r, err, nil)
			return
		}
		id := chi.URLParam(r, "id")
		switch kind {
		case "career":
			err = s.Catalog.SaveCareer(r.Context(), uid, id)
		default:
			err = s.Catalog.SaveCourse(r.Context(), uid, id)
		}
		if err != nil {
			writeError(w, r, err, nil)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "saved"})
	}
}

// UnsaveItemHandler removes a career or course bookmark.
func (s *Server) UnsaveItemHandler(kind string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, err := userID(r)
		if err != nil {
			writeError(w, r, err, nil)
			return
		}
		id := chi.URLParam(r, "id")
		switch kind {
		case "career":
			err = s.Catalog.UnsaveCareer(r.Context(), uid, id)
		default:
			err = s.Catalog.UnsaveCourse(r.Context(), uid, id)
		}
		if err != nil {
			writeError(w, r, err, nil)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "removed"})
	}
}

// RecommendationsHandler returns the structured ranked careers and
// courses for the user plus the rendered advice block.
func (s *Server) RecommendationsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, err := userID(r)
		if err != nil {
			writeError(w, r, err, nil)
			return
		}
		recs, err := s.Recommend.For(r.Context(), uid)
		if err != nil {
			writeError(w, r, fmt.Errorf("recommendations: %w", err), nil)
			return
		}
		careers := make([]map[string]any, 0, len(recs.Careers))
		for _, c := range recs.Careers {
			m := careerJSON(c.Career)
			m["score"] = c.Score
			careers = append(careers, m)
		}
		courses := make([]map[string]any, 0, len(recs.Courses))
		for _, c := range recs.Courses {
			m := courseJSON(c.Course)
			m["score"] = c.Score
			courses = append(courses, m)
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"careers": careers,
			"courses": courses,
			"advice":  recs.Advice,
		})
	}
}

type messageRequest struct {
	Message string `json:"message" validate:"required,max=2000"`
}

// AssistantHandler answers through the deterministic rule-based engine.
func (s *Server) AssistantHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, err := userID(r)
		if err != nil {
			writeError(w, r, err, nil)
			return
		}
		var req messageRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, r, err, nil)
			return
		}
		reply := s.Assistant.Reply(r.Context(), uid, req.Message)
		writeJSON(w, http.StatusOK, map[string]string{"reply": reply})
	}
}

// ChatHandler answers through the LLM when available, with assistant fallback.
func (s *Server) ChatHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, err := userID(r)
		if err != nil {
			writeError(w, r, err, nil)
			return
		}
		var req messageRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, r, err, nil)
			return
		}
		reply := s.Chat.Reply(r.Context(), uid, req.Message)
		writeJSON(w, http.StatusOK, map[string]string{"reply": reply})
	}
}

// ResumeHandler accepts a multipart resume upload (.txt), stores the text
// and returns the AI analysis.
func (s *Server) ResumeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, err := userID(r)
		if err != nil {
			writeError(w, r, err, nil)
			return
		}
		if !strings.Contains(r.Header.Get("Content-Type"), "multipart/form-data") {
			writeError(w, r, fmt.Errorf("%w: content-type must be multipart/form-data", domain.ErrInvalidArgument), nil)
			return
		}
		maxBytes := s.Cfg.MaxUploadMB * 1024 * 1024
		r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
		if err := r.ParseMultipartForm(maxBytes); err != nil {
			if strings.Contains(strings.ToLower(err.Error()), "too large") {
				w.Header().Set("Content-Type", "application/json; charset=utf-8")
				w.WriteHeader(http.StatusRequestEntityTooLarge)
				_ = json.NewEncoder(w).Encode(errorEnvelope{Error: apiError{Code: "INVALID_ARGUMENT", Message: "payload too large", Details: map[string]any{"max_mb": s.Cfg.MaxUploadMB}}})
				return
			}
			writeError(w, r, fmt.Errorf("%w: %v", domain.ErrInvalidArgument, err), nil)
			return
		}
		file, header, err := r.FormFile("resume")
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: resume file required", domain.ErrInvalidArgument), map[string]string{"field": "resume"})
			return
		}
		defer func() { _ = file.Close() }()

		data, err := io.ReadAll(file)
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: resume read: %v", domain.ErrInvalidArgument, err), nil)
			return
		}
		if !strings.HasSuffix(strings.ToLower(header.Filename), ".txt") {
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(http.StatusUnsupportedMediaType)
			_ = json.NewEncoder(w).Encode(errorEnvelope{Error: apiError{Code: "INVALID_ARGUMENT", Message: "unsupported media type for resume (extension)", Details: map[string]any{"filename": header.Filename}}})
			return
		}
		mime := mimetype.Detect(data)
		if !strings.HasPrefix(mime.String(), "text/") {
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(http.StatusUnsupportedMediaType)
			_ = json.NewEncoder(w).Encode(errorEnvelope{Error: apiError{Code: "INVALID_ARGUMENT", Message: "unsupported media type for resume (content)", Details: map[string]any{"mime": mime.String()}}})
			return
		}

		analysis, err := s.Resumes.Ingest(r.Context(), uid, header.Filename, string(data))
		if err != nil {
			writeError(w, r, fmt.Errorf("resume ingest: %w", err), nil)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"id": analysis.ResumeID, "analysis": analysis.Text})
	}
}

// ReadyzHandler probes the database and Redis.
func (s *Server) ReadyzHandler() http.HandlerFunc {
	type check struct {
		Name    string `json:"name"`
		OK      bool   `json:"ok"`
		Details string `json:"details"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		checks := make([]check, 0, 2)
		if s.DBCheck != nil {
			if err := s.DBCheck(ctx); err != nil {
				checks = append(checks, check{Name: "db", OK: false, Details: err.Error()})
			} else {
				checks = append(checks, check{Name: "db", OK: true})
			}
		}
		if s.RedisCheck != nil {
			if err := s.RedisCheck(ctx); err != nil {
				checks = append(checks, check{Name: "redis", OK: false, Details: err.Error()})
			} else {
				checks = append(checks, check{Name: "redis", OK: true})
			}
		}
		ok := true
		for _, c := range checks {
			if !c.OK {
				ok = false
				break
			}
		}
		st := http.StatusOK
		if !ok {
			st = http.StatusServiceUnavailable
		}
		writeJSON(w, st, map[string]any{"checks": checks})
	}
}
