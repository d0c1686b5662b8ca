package assistant_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/careerpath-labs/career-compass/internal/assistant"
	"github.com/careerpath-labs/career-compass/internal/domain"
)

func testCatalogs() assistant.Catalogs {
	return assistant.Catalogs{
		Careers: []domain.Career{
			{ID: "c1", Title: "Software Engineer", Description: "Build software.", RequiredSkills: []string{"Go"}, Interests: []string{"Tech"}},
		},
		Courses: []domain.Course{
			{ID: "k1", Title: "Go Basics", Description: "Learn Go.", Level: "Beginner", SkillsGained: []string{"Go"}},
		},
	}
}

func testProfile() domain.Profile {
	return domain.Profile{
		Skills:    []string{"Go"},
		Interests: []string{"Tech"},
		Education: domain.Education{Level: "Bachelor's", Field: "CS"},
	}
}

func TestRespond_IntentRouting(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name    string
		message string
		intent  assistant.Intent
	}{
		{"career keyword", "What career should I pursue?", assistant.IntentCareer},
		{"path keyword", "Which path fits me?", assistant.IntentCareer},
		{"job keyword", "Find me a job", assistant.IntentCareer},
		{"skill keyword", "How do I improve my skills?", assistant.IntentSkillPlan},
		{"course keyword", "Recommend a course", assistant.IntentCourse},
		{"learn keyword", "What should I study to learn more?", assistant.IntentCourse},
		{"interview outranks help", "Help me with my interview", assistant.IntentInterview},
		{"prepare keyword", "How do I prepare?", assistant.IntentInterview},
		{"resume keyword", "Review my resume", assistant.IntentResume},
		{"cv keyword", "Look at my cv", assistant.IntentResume},
		{"help keyword", "help", assistant.IntentHelp},
		{"what can keyword", "what can you do", assistant.IntentHelp},
		{"no keyword defaults", "Tell me something interesting", assistant.IntentDefault},
		{"case insensitive", "CAREER advice please", assistant.IntentCareer},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			intent, reply := assistant.Respond(tc.message, testProfile(), testCatalogs())
			assert.Equal(t, tc.intent, intent)
			assert.NotEmpty(t, reply)
		})
	}
}

func TestRespond_SkillOutranksCourse(t *testing.T) {
	t.Parallel()
	intent, reply := assistant.Respond("I need a course to learn a new skill", testProfile(), testCatalogs())
	assert.Equal(t, assistant.IntentSkillPlan, intent)
	assert.Contains(t, reply, "skill development plan")
}

func TestRespond_CareerOutranksEverything(t *testing.T) {
	t.Parallel()
	intent, _ := assistant.Respond("career courses for my resume interview", testProfile(), testCatalogs())
	assert.Equal(t, assistant.IntentCareer, intent)
}

func TestRespond_DefaultGivesCareerAdvice(t *testing.T) {
	t.Parallel()
	_, reply := assistant.Respond("hmm", testProfile(), testCatalogs())
	assert.Contains(t, reply, "best career matches")
}

func TestRespond_HelpMenu(t *testing.T) {
	t.Parallel()
	_, reply := assistant.Respond("what can you do?", testProfile(), testCatalogs())
	assert.Contains(t, reply, "I can help you with:")
	assert.Contains(t, reply, "**Career Guidance**")
	assert.Contains(t, reply, "What would you like help with?")
}

func TestRespondWithoutProfile(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name     string
		message  string
		contains string
	}{
		{"career prompt", "Tell me about jobs", "Visit the Assessment page to get started."},
		{"course prompt", "What can I learn?", "Complete your assessment to receive personalized learning recommendations."},
		{"generic prompt", "hello there", "once you complete your assessment"},
		{"career beats course", "what job should I learn for", "Visit the Assessment page to get started."},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Contains(t, assistant.RespondWithoutProfile(tc.message), tc.contains)
		})
	}
}
