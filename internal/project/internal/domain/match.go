package domain

import (
	"math"
	"sort"
)

// availabilityBonus 状态为 available 的候选人固定加 20 个百分点
const availabilityBonus = 0.2

// Candidate 参与匹配的候选人快照，由上游从员工档案转换而来
type Candidate struct {
	ID               int64
	Name             string
	Email            string
	Position         string
	Availability     string
	PerformanceScore int
	Skills           []CandidateSkill
	ActiveProjects   int
}

type CandidateSkill struct {
	Name  string
	Level int
}

type PresentSkill struct {
	Name          string
	EmployeeLevel int
	RequiredLevel int
}

type MissingSkill struct {
	Name          string
	RequiredLevel int
}

type MatchResult struct {
	Candidate           Candidate
	MatchScore          int
	MatchedSkills       int
	TotalRequiredSkills int
	PresentSkills       []PresentSkill
	MissingSkills       []MissingSkill
}

// MatchEmployees 对整个候选池打分，按整数分从高到低排序。
// 纯函数：不修改入参，同样的输入永远给出同样的输出。
// 排序是稳定的，同分保持候选池顺序；上游按员工 id 升序供给候选池，
// 所以平局的最终顺序就是员工 id 升序
func MatchEmployees(reqs []Requirement, pool []Candidate) []MatchResult {
	// 要求里技能名重复时，后出现的等级覆盖先出现的
	required := make(map[string]int, len(reqs))
	for _, r := range reqs {
		required[r.Skill] = r.Level
	}
	res := make([]MatchResult, 0, len(pool))
	for _, c := range pool {
		res = append(res, matchOne(reqs, required, c))
	}
	sort.SliceStable(res, func(i, j int) bool {
		return res[i].MatchScore > res[j].MatchScore
	})
	return res
}

func matchOne(reqs []Requirement, required map[string]int, c Candidate) MatchResult {
	var (
		scoreSum float64
		matched  int
	)
	present := make([]PresentSkill, 0, len(c.Skills))
	has := make(map[string]bool, len(c.Skills))
	for _, sk := range c.Skills {
		has[sk.Name] = true
		need, ok := required[sk.Name]
		if !ok {
			continue
		}
		if need <= 0 {
			need = 1
		}
		scoreSum += math.Min(float64(sk.Level)/float64(need), 1.0)
		matched++
		present = append(present, PresentSkill{
			Name:          sk.Name,
			EmployeeLevel: sk.Level,
			RequiredLevel: need,
		})
	}
	missing := make([]MissingSkill, 0, len(reqs))
	for _, r := range reqs {
		if has[r.Skill] {
			continue
		}
		need := required[r.Skill]
		if need <= 0 {
			need = 1
		}
		missing = append(missing, MissingSkill{
			Name:          r.Skill,
			RequiredLevel: need,
		})
	}
	var avg float64
	if matched > 0 {
		avg = scoreSum / float64(matched)
	}
	var bonus float64
	if c.Availability == "available" {
		bonus = availabilityBonus
	}
	final := math.Min(avg+bonus, 1.0)
	return MatchResult{
		Candidate:           c,
		MatchScore:          int(math.Round(final * 100)),
		MatchedSkills:       matched,
		TotalRequiredSkills: len(reqs),
		PresentSkills:       present,
		MissingSkills:       missing,
	}
}
