package domain

import (
	"fmt"
	"math"
	"strings"
)

// ExplainMatch 生成给前端展示的匹配解释文案。
// 这里只看技能名的覆盖率，不复用打分公式，文案保持英文
func ExplainMatch(reqs []Requirement, c Candidate) string {
	matched := make([]string, 0, len(reqs))
	has := make(map[string]bool, len(c.Skills))
	for _, sk := range c.Skills {
		has[sk.Name] = true
	}
	for _, r := range reqs {
		if has[r.Skill] {
			matched = append(matched, r.Skill)
		}
	}
	var pct float64
	if len(reqs) > 0 {
		pct = math.Round(float64(len(matched)) / float64(len(reqs)) * 100)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s is a %.0f%% match for this project. ", c.Name, pct)
	if len(matched) > 0 {
		fmt.Fprintf(&b, "They have the required skills: %s. ", strings.Join(matched, ", "))
	}
	if c.Availability == "available" {
		b.WriteString("They are currently available for new projects. ")
	}
	fmt.Fprintf(&b, "With %d total skills and a performance score of %d, they would be a valuable addition to this project.",
		len(c.Skills), c.PerformanceScore)
	return b.String()
}
