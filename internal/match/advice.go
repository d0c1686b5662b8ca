package match

import (
	"fmt"
	"strings"

	"github.com/careerpath-labs/career-compass/internal/domain"
)

// referenceSoftSkills is the fixed list the skill development plan measures
// a profile against. Membership is exact and case-sensitive.
var referenceSoftSkills = []string{"Communication", "Leadership", "Problem Solving", "Time Management"}

// InterviewTips renders the first five tips from a fixed pool of eight.
// Pool order is construction order; there is no shuffling or re-ranking,
// so the later profile-parameterized tips never surface.
func InterviewTips(p domain.Profile) string {
	field := p.Education.Field
	if field == "" {
		field = "your field"
	}
	style := strings.Join(firstN(p.Preferences.WorkStyle, 2), ", ")
	if style == "" {
		style = "collaborative"
	}
	tips := []string{
		"Research the company thoroughly before your interview. Know their mission, culture, and recent news.",
		"Practice the STAR method (Situation, Task, Action, Result) to answer behavioral questions effectively.",
		fmt.Sprintf("Highlight your skills in %s - these are your strongest assets.", joinAnd(firstN(p.Skills, 2))),
		fmt.Sprintf("Be ready to discuss your interests in %s and how they align with the role.", joinAnd(firstN(p.Interests, 2))),
		"Prepare 2-3 thoughtful questions for the interviewer to show genuine interest.",
		fmt.Sprintf("Given your %s education in %s, emphasize relevant coursework and projects.", p.Education.Level, field),
		fmt.Sprintf("Focus on your preferred work style (%s) and why it makes you effective.", style),
		"Practice speaking clearly and calmly. Use pauses to think before answering complex questions.",
	}

	var b strings.Builder
	b.WriteString("Here are personalized interview tips for you:\n\n")
	for i, tip := range tips[:5] {
		fmt.Fprintf(&b, "%d. %s\n", i+1, tip)
	}
	return b.String()
}

// ResumeAdvice renders resume tailoring advice from the profile alone.
func ResumeAdvice(p domain.Profile) string {
	field := p.Education.Field
	if field == "" {
		field = "your field"
	}

	var b strings.Builder
	b.WriteString("Here's how to tailor your resume for maximum impact:\n\n")
	fmt.Fprintf(&b, "1. **Highlight Key Skills**: Feature these prominently: %s\n\n", joinOr(p.Skills, "Your technical and soft skills"))
	fmt.Fprintf(&b, "2. **Lead with Relevant Education**: Emphasize your %s in %s\n\n", p.Education.Level, field)
	b.WriteString("3. **Match Job Descriptions**: Tailor your resume for each application, using keywords from the job posting that match your skills.\n\n")
	fmt.Fprintf(&b, "4. **Show Impact**: Use quantifiable results and metrics in your accomplishments, especially related to your interests in %s.\n\n", joinAnd(firstN(p.Interests, 2)))
	b.WriteString("5. **Professional Summary**: Create a 2-3 line summary highlighting your strengths in your target area.\n\n")
	fmt.Fprintf(&b, "6. **Format & Length**: Keep to one page if early career, two if you have significant experience in %s.", field)
	return b.String()
}

// MissingSoftSkills returns the reference soft skills not already present
// in the profile, in reference order.
func MissingSoftSkills(p domain.Profile) []string {
	have := make(map[string]struct{}, len(p.Skills))
	for _, s := range p.Skills {
		have[s] = struct{}{}
	}
	var missing []string
	for _, s := range referenceSoftSkills {
		if _, ok := have[s]; !ok {
			missing = append(missing, s)
		}
	}
	return missing
}

// SkillDevelopmentPlan renders a development plan: current strengths, the
// first two missing reference skills, up to two courses that teach them,
// and a fixed action plan. The course block is omitted entirely when no
// course matches.
func SkillDevelopmentPlan(p domain.Profile, courses []domain.Course) string {
	missing := firstN(MissingSoftSkills(p), 2)

	var b strings.Builder
	b.WriteString("Here's your personalized skill development plan:\n\n")
	fmt.Fprintf(&b, "**Your Current Strengths**: %s\n\n", joinOr(firstN(p.Skills, 3), "Various technical skills"))

	if len(missing) > 0 {
		fmt.Fprintf(&b, "**Skills to Develop**: %s\n\n", strings.Join(missing, ", "))
		relevant := coursesTeaching(courses, missing)
		if len(relevant) > 0 {
			b.WriteString("**Recommended Courses**:\n")
			for _, c := range relevant {
				fmt.Fprintf(&b, "- %s: Helps develop %s\n", c.Title, strings.Join(c.SkillsGained, ", "))
			}
			b.WriteString("\n")
		}
	}

	interest := "your field"
	if len(p.Interests) > 0 && p.Interests[0] != "" {
		interest = p.Interests[0]
	}
	fmt.Fprintf(&b, "**Action Plan**:\n1. Complete 1-2 online courses in your weak areas\n2. Seek hands-on projects to apply these skills\n3. Join professional groups related to your interests in %s\n4. Request mentorship opportunities to accelerate growth", interest)
	return b.String()
}

// coursesTeaching returns up to two courses whose gained skills mention
// (case-insensitive substring) any of the wanted skills, in catalog order.
func coursesTeaching(courses []domain.Course, wanted []string) []domain.Course {
	var out []domain.Course
	for _, c := range courses {
		if teachesAny(c, wanted) {
			out = append(out, c)
			if len(out) == 2 {
				break
			}
		}
	}
	return out
}

func teachesAny(c domain.Course, wanted []string) bool {
	for _, w := range wanted {
		lw := strings.ToLower(w)
		for _, g := range c.SkillsGained {
			if strings.Contains(strings.ToLower(g), lw) {
				return true
			}
		}
	}
	return false
}
