package match

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/careerpath-labs/career-compass/internal/domain"
)

// Weights for career scoring: interests count 1.5x skills.
const (
	skillWeight    = 0.4
	interestWeight = 0.6
)

const topN = 3

// RankCareers scores every career against the profile and returns all of
// them sorted by descending score. Ties keep catalog order (stable sort);
// the catalog's own ordering is whatever the record store returned.
func RankCareers(careers []domain.Career, p domain.Profile) []domain.ScoredCareer {
	scored := make([]domain.ScoredCareer, 0, len(careers))
	for _, c := range careers {
		s := Score(p.Skills, c.RequiredSkills)*skillWeight + Score(p.Interests, c.Interests)*interestWeight
		scored = append(scored, domain.ScoredCareer{Career: c, Score: s})
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })
	return scored
}

// TopCareers takes the top 3 ranked careers and drops any without a
// positive score. The order of operations matters: truncate first, then
// filter, so a fourth-ranked positive career never replaces a zero-scored
// one in the top three.
func TopCareers(scored []domain.ScoredCareer) []domain.ScoredCareer {
	if len(scored) > topN {
		scored = scored[:topN]
	}
	top := make([]domain.ScoredCareer, 0, len(scored))
	for _, c := range scored {
		if c.Score > 0 {
			top = append(top, c)
		}
	}
	return top
}

// CareerAdvice renders the career recommendation text for a profile.
func CareerAdvice(careers []domain.Career, p domain.Profile) string {
	if len(careers) == 0 {
		return "Based on your profile, I recommend exploring different career paths. Take more assessments to get personalized recommendations."
	}

	top := TopCareers(RankCareers(careers, p))
	if len(top) == 0 {
		return fmt.Sprintf(
			"Based on your interests in %s and skills in %s, I recommend exploring careers that align with these strengths. Consider developing additional technical skills to broaden your opportunities.",
			joinOr(p.Interests, "various fields"),
			joinOr(p.Skills, "multiple areas"),
		)
	}

	var b strings.Builder
	b.WriteString("Based on your profile, here are the best career matches for you:\n\n")
	for i, c := range top {
		desc := c.Description
		if desc == "" {
			desc = "A promising career path for you."
		}
		fmt.Fprintf(&b, "%d. **%s** (%d%% match)\n   %s\n\n", i+1, c.Title, int(math.Round(c.Score)), desc)
	}
	fmt.Fprintf(&b, "You have strong interests in %s and good skills in %s. These align well with these roles.",
		joinAnd(firstN(p.Interests, 2)), joinAnd(firstN(p.Skills, 2)))
	return b.String()
}

func firstN(ss []string, n int) []string {
	if len(ss) > n {
		return ss[:n]
	}
	return ss
}

func joinAnd(ss []string) string { return strings.Join(ss, " and ") }

// joinOr joins with commas, falling back to def when the list is empty.
func joinOr(ss []string, def string) string {
	if len(ss) == 0 {
		return def
	}
	return strings.Join(ss, ", ")
}
