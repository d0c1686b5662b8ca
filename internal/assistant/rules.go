// Package assistant implements the rule-based chat assistant: an ordered
// intent classifier over free-text messages and the responder that fetches
// the user's profile plus catalogs and delegates to the matching engine.
package assistant

import (
	"strings"

	"github.com/careerpath-labs/career-compass/internal/domain"
	"github.com/careerpath-labs/career-compass/internal/match"
)

// Intent names one classification outcome; used for metrics and logging.
type Intent string

const (
	IntentCareer    Intent = "career"
	IntentSkillPlan Intent = "skill_plan"
	IntentCourse    Intent = "course"
	IntentInterview Intent = "interview"
	IntentResume    Intent = "resume"
	IntentHelp      Intent = "help"
	IntentDefault   Intent = "default"
)

// Catalogs bundles the read-only inputs of a single response computation.
type Catalogs struct {
	Careers []domain.Career
	Courses []domain.Course
}

// rule pairs a message predicate with a response generator. Rules are
// evaluated in declaration order and the first match wins; there is no
// fallthrough. The classifier is deliberately plain keyword containment,
// not fuzzy matching: replies must stay deterministic.
type rule struct {
	intent  Intent
	match   func(msg string) bool
	respond func(p domain.Profile, cat Catalogs) string
}

func containsAny(msg string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(msg, w) {
			return true
		}
	}
	return false
}

// rules is the fixed dispatch table. "skill" outranks the rest of the
// course group, so a message mentioning both routes to the skill plan.
var rules = []rule{
	{
		intent: IntentCareer,
		match:  func(m string) bool { return containsAny(m, "career", "path", "job") },
		respond: func(p domain.Profile, cat Catalogs) string {
			return match.CareerAdvice(cat.Careers, p)
		},
	},
	{
		intent: IntentSkillPlan,
		match:  func(m string) bool { return strings.Contains(m, "skill") },
		respond: func(p domain.Profile, cat Catalogs) string {
			return match.SkillDevelopmentPlan(p, cat.Courses)
		},
	},
	{
		intent: IntentCourse,
		match:  func(m string) bool { return containsAny(m, "course", "learn") },
		respond: func(p domain.Profile, cat Catalogs) string {
			return match.CourseRecommendations(cat.Courses, p, cat.Careers)
		},
	},
	{
		intent: IntentInterview,
		match:  func(m string) bool { return containsAny(m, "interview", "prepare") },
		respond: func(p domain.Profile, _ Catalogs) string {
			return match.InterviewTips(p)
		},
	},
	{
		intent: IntentResume,
		match:  func(m string) bool { return containsAny(m, "resume", "cv") },
		respond: func(p domain.Profile, _ Catalogs) string {
			return match.ResumeAdvice(p)
		},
	},
	{
		intent: IntentHelp,
		match:  func(m string) bool { return containsAny(m, "help", "what can") },
		respond: func(domain.Profile, Catalogs) string { return capabilityMenu },
	},
}

const capabilityMenu = "I can help you with:\n\n" +
	"• **Career Guidance** - Based on your skills and interests\n" +
	"• **Course Recommendations** - Personalized learning paths\n" +
	"• **Interview Preparation** - Tips and strategies\n" +
	"• **Resume Review** - Optimization advice\n" +
	"• **Skill Development** - Building your strengths\n\n" +
	"What would you like help with?"

// Canonical prompts for users without a stored assessment.
const (
	promptAssessmentCareer = "I'd love to help you find the right career! Please complete your assessment first so I can understand your skills, interests, and preferences. Visit the Assessment page to get started."
	promptAssessmentCourse = "To recommend courses tailored to your goals, I need to know more about you. Complete your assessment to receive personalized learning recommendations."
	promptAssessmentOther  = "I can provide personalized career guidance once you complete your assessment. This helps me understand your unique background and goals."
)

// Respond classifies message and produces the reply for a known profile.
// Unmatched messages default to career advice.
func Respond(message string, p domain.Profile, cat Catalogs) (Intent, string) {
	msg := strings.ToLower(message)
	for _, r := range rules {
		if r.match(msg) {
			return r.intent, r.respond(p, cat)
		}
	}
	return IntentDefault, match.CareerAdvice(cat.Careers, p)
}

// RespondWithoutProfile produces the assessment nudge for users with no
// stored profile. The career check runs before the course check.
func RespondWithoutProfile(message string) string {
	msg := strings.ToLower(message)
	switch {
	case containsAny(msg, "career", "job"):
		return promptAssessmentCareer
	case containsAny(msg, "course", "learn"):
		return promptAssessmentCourse
	default:
		return promptAssessmentOther
	}
}
