package assistant

import (
	"errors"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/careerpath-labs/career-compass/internal/adapter/observability"
	"github.com/careerpath-labs/career-compass/internal/domain"
)

// troubleReply is the single opaque failure string for record store
// problems. Fetch errors are logged but never surface to the caller.
const troubleReply = "I'm having trouble accessing your profile data. Please try again or check your connection."

// Responder fetches the profile and catalogs for a user and routes the
// message through the rule table. It holds no state between calls.
type Responder struct {
	Assessments domain.AssessmentRepository
	Careers     domain.CareerRepository
	Courses     domain.CourseRepository
}

// NewResponder constructs a Responder with its repositories.
func NewResponder(a domain.AssessmentRepository, careers domain.CareerRepository, courses domain.CourseRepository) Responder {
	return Responder{Assessments: a, Careers: careers, Courses: courses}
}

// Reply answers message for userID. The profile and both catalogs are
// independent reads, fetched in parallel before the synchronous scoring
// stage. A missing assessment is not an error: it selects the assessment
// nudge branch. Any other fetch failure collapses into troubleReply.
func (r Responder) Reply(ctx domain.Context, userID, message string) string {
	var (
		assessment  domain.Assessment
		haveProfile bool
		cat         Catalogs
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a, err := r.Assessments.GetByUserID(gctx, userID)
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		assessment = a
		haveProfile = true
		return nil
	})
	g.Go(func() error {
		careers, err := r.Careers.List(gctx)
		if err != nil {
			return err
		}
		cat.Careers = careers
		return nil
	})
	g.Go(func() error {
		courses, err := r.Courses.List(gctx)
		if err != nil {
			return err
		}
		cat.Courses = courses
		return nil
	})
	if err := g.Wait(); err != nil {
		slog.Error("assistant fetch failed", slog.String("user_id", userID), slog.Any("error", err))
		observability.AssistantRepliesTotal.WithLabelValues("error").Inc()
		return troubleReply
	}

	if !haveProfile {
		observability.AssistantRepliesTotal.WithLabelValues("no_profile").Inc()
		return RespondWithoutProfile(message)
	}

	intent, reply := Respond(message, assessment.Profile, cat)
	observability.AssistantRepliesTotal.WithLabelValues(string(intent)).Inc()
	slog.Debug("assistant reply generated", slog.String("user_id", userID), slog.String("intent", string(intent)))
	return reply
}
