package match

import (
	"fmt"
	"sort"
	"strings"

	"github.com/careerpath-labs/career-compass/internal/domain"
)

// RequiredSkillsUnion flattens the required skills of every career in the
// catalog into one list, deduplicated with the first occurrence winning.
func RequiredSkillsUnion(careers []domain.Career) []string {
	seen := make(map[string]struct{})
	var union []string
	for _, c := range careers {
		for _, s := range c.RequiredSkills {
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			union = append(union, s)
		}
	}
	return union
}

// RankCourses scores each course by how well its gained skills cover the
// skills required across the whole career catalog (not just top matches),
// keeps positives only, sorts descending, and truncates to the top 3.
func RankCourses(courses []domain.Course, careers []domain.Career) []domain.ScoredCourse {
	needed := RequiredSkillsUnion(careers)
	scored := make([]domain.ScoredCourse, 0, len(courses))
	for _, c := range courses {
		if s := Score(needed, c.SkillsGained); s > 0 {
			scored = append(scored, domain.ScoredCourse{Course: c, Score: s})
		}
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })
	if len(scored) > topN {
		scored = scored[:topN]
	}
	return scored
}

// CourseRecommendations renders the course recommendation text.
func CourseRecommendations(courses []domain.Course, p domain.Profile, careers []domain.Career) string {
	if len(courses) == 0 {
		return "I recommend exploring our course catalog. Courses can help develop skills for your desired career path."
	}

	top := RankCourses(courses, careers)
	if len(top) == 0 {
		level := p.Education.Level
		if level == "" {
			level = "not specified"
		}
		return fmt.Sprintf("Based on your education level (%s), I recommend starting with foundational courses to build core competencies in your areas of interest.", level)
	}

	var b strings.Builder
	b.WriteString("Here are the top courses to help you advance your career:\n\n")
	for i, c := range top {
		level := c.Level
		if level == "" {
			level = "Intermediate"
		}
		desc := c.Description
		if desc == "" {
			desc = "A valuable learning opportunity."
		}
		fmt.Fprintf(&b, "%d. **%s** (%s Level)\n   %s\n   Skills: %s\n\n", i+1, c.Title, level, desc, strings.Join(c.SkillsGained, ", "))
	}
	return b.String()
}
