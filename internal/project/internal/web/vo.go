package web

import (
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/talent/internal/project/internal/domain"
)

type SaveReq struct {
	Project Project `json:"project"`
}

type IDReq struct {
	ID int64 `json:"id"`
}

type ListReq struct {
	Status   string `json:"status,omitempty"`
	Priority string `json:"priority,omitempty"`
	Category string `json:"category,omitempty"`
	Keyword  string `json:"keyword,omitempty"`
	Offset   int    `json:"offset,omitempty"`
	Limit    int    `json:"limit,omitempty"`
}

type AssignReq struct {
	ID         int64  `json:"id"`
	EmployeeID int64  `json:"employeeId"`
	Role       string `json:"role,omitempty"`
}

type UnassignReq struct {
	ID         int64 `json:"id"`
	EmployeeID int64 `json:"employeeId"`
}

type ExplanationReq struct {
	ID         int64 `json:"id"`
	EmployeeID int64 `json:"employeeId"`
}

type CommentReq struct {
	ID   int64  `json:"id"`
	Text string `json:"text"`
}

type Project struct {
	ID           int64         `json:"id,omitempty"`
	Title        string        `json:"title,omitempty"`
	Desc         string        `json:"desc,omitempty"`
	Company      string        `json:"company,omitempty"`
	Requirements []Requirement `json:"requirements,omitempty"`
	Budget       float64       `json:"budget,omitempty"`
	Duration     int           `json:"duration,omitempty"`
	StartDate    string        `json:"startDate,omitempty"`
	EndDate      string        `json:"endDate,omitempty"`
	Status       string        `json:"status,omitempty"`
	Assignees    []Assignment  `json:"assignees,omitempty"`
	Priority     string        `json:"priority,omitempty"`
	Category     string        `json:"category,omitempty"`
	Comments     []Comment     `json:"comments,omitempty"`
	Utime        string        `json:"utime,omitempty"`
}

type Requirement struct {
	Skill    string `json:"skill"`
	Level    int    `json:"level"`
	Priority string `json:"priority,omitempty"`
}

type Assignment struct {
	EmployeeID   int64  `json:"employeeId"`
	Role         string `json:"role,omitempty"`
	AssignedDate string `json:"assignedDate,omitempty"`
}

type Comment struct {
	Text   string `json:"text"`
	Author string `json:"author,omitempty"`
	Ctime  string `json:"ctime,omitempty"`
}

type ProjectList struct {
	Projects []Project `json:"projects,omitempty"`
	Total    int64     `json:"total,omitempty"`
}

type Match struct {
	Employee            MatchEmployee  `json:"employee"`
	MatchScore          int            `json:"matchScore"`
	MatchedSkills       int            `json:"matchedSkills"`
	TotalRequiredSkills int            `json:"totalRequiredSkills"`
	PresentSkills       []PresentSkill `json:"presentSkills,omitempty"`
	MissingSkills       []MissingSkill `json:"missingSkills,omitempty"`
}

type MatchEmployee struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	Email            string `json:"email,omitempty"`
	Position         string `json:"position,omitempty"`
	Availability     string `json:"availability,omitempty"`
	PerformanceScore int    `json:"performanceScore"`
	SkillCount       int    `json:"skillCount"`
	ActiveProjects   int    `json:"activeProjects"`
}

type PresentSkill struct {
	Name          string `json:"name"`
	EmployeeLevel int    `json:"employeeLevel"`
	RequiredLevel int    `json:"requiredLevel"`
}

type MissingSkill struct {
	Name          string `json:"name"`
	RequiredLevel int    `json:"requiredLevel"`
}

type Explanation struct {
	Explanation string `json:"explanation"`
}

type Stats struct {
	Total      int64           `json:"total"`
	Open       int64           `json:"open"`
	InProgress int64           `json:"inProgress"`
	Completed  int64           `json:"completed"`
	AvgBudget  float64         `json:"avgBudget"`
	Categories []CategoryCount `json:"categories,omitempty"`
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

func (p Project) toDomain() domain.Project {
	res := domain.Project{
		ID:      p.ID,
		Title:   p.Title,
		Desc:    p.Desc,
		Company: p.Company,
		Requirements: slice.Map(p.Requirements, func(idx int, src Requirement) domain.Requirement {
			return domain.Requirement(src)
		}),
		Budget:   p.Budget,
		Duration: p.Duration,
		Status:   domain.Status(p.Status),
		Priority: p.Priority,
		Category: p.Category,
	}
	if t, err := time.Parse(time.DateOnly, p.StartDate); err == nil {
		res.StartDate = t.UnixMilli()
	}
	if t, err := time.Parse(time.DateOnly, p.EndDate); err == nil {
		res.EndDate = t.UnixMilli()
	}
	return res
}

func newProject(p domain.Project) Project {
	res := Project{
		ID:      p.ID,
		Title:   p.Title,
		Desc:    p.Desc,
		Company: p.Company,
		Requirements: slice.Map(p.Requirements, func(idx int, src domain.Requirement) Requirement {
			return Requirement(src)
		}),
		Budget:   p.Budget,
		Duration: p.Duration,
		Status:   p.Status.String(),
		Assignees: slice.Map(p.Assignees, func(idx int, src domain.Assignment) Assignment {
			return newAssignment(src)
		}),
		Priority: p.Priority,
		Category: p.Category,
		Comments: slice.Map(p.Comments, func(idx int, src domain.Comment) Comment {
			return newComment(src)
		}),
		Utime: time.UnixMilli(p.Utime).Format(time.DateTime),
	}
	if p.StartDate > 0 {
		res.StartDate = time.UnixMilli(p.StartDate).Format(time.DateOnly)
	}
	if p.EndDate > 0 {
		res.EndDate = time.UnixMilli(p.EndDate).Format(time.DateOnly)
	}
	return res
}

func newAssignment(a domain.Assignment) Assignment {
	res := Assignment{
		EmployeeID: a.EmployeeID,
		Role:       a.Role,
	}
	if a.AssignedDate > 0 {
		res.AssignedDate = time.UnixMilli(a.AssignedDate).Format(time.DateTime)
	}
	return res
}

func newComment(c domain.Comment) Comment {
	res := Comment{
		Text:   c.Text,
		Author: c.Author,
	}
	if c.Ctime > 0 {
		res.Ctime = time.UnixMilli(c.Ctime).Format(time.DateTime)
	}
	return res
}

func newMatch(m domain.MatchResult) Match {
	return Match{
		Employee: MatchEmployee{
			ID:               m.Candidate.ID,
			Name:             m.Candidate.Name,
			Email:            m.Candidate.Email,
			Position:         m.Candidate.Position,
			Availability:     m.Candidate.Availability,
			PerformanceScore: m.Candidate.PerformanceScore,
			SkillCount:       len(m.Candidate.Skills),
			ActiveProjects:   m.Candidate.ActiveProjects,
		},
		MatchScore:          m.MatchScore,
		MatchedSkills:       m.MatchedSkills,
		TotalRequiredSkills: m.TotalRequiredSkills,
		PresentSkills: slice.Map(m.PresentSkills, func(idx int, src domain.PresentSkill) PresentSkill {
			return PresentSkill(src)
		}),
		MissingSkills: slice.Map(m.MissingSkills, func(idx int, src domain.MissingSkill) MissingSkill {
			return MissingSkill(src)
		}),
	}
}
