package web

import (
	"encoding/json"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/talent/internal/employee/internal/domain"
)

type SaveReq struct {
	Employee Employee `json:"employee"`
}

type IDReq struct {
	ID int64 `json:"id"`
}

type ListReq struct {
	Department   string `json:"department,omitempty"`
	Position     string `json:"position,omitempty"`
	Availability string `json:"availability,omitempty"`
	Keyword      string `json:"keyword,omitempty"`
	Offset       int    `json:"offset,omitempty"`
	Limit        int    `json:"limit,omitempty"`
}

type SkillsSaveReq struct {
	ID     int64   `json:"id"`
	Skills []Skill `json:"skills"`
}

type Employee struct {
	ID         int64  `json:"id,omitempty"`
	FirstName  string `json:"firstName,omitempty"`
	LastName   string `json:"lastName,omitempty"`
	FullName   string `json:"fullName,omitempty"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Position   string `json:"position,omitempty"`
	Department string `json:"department,omitempty"`
	HireDate   string `json:"hireDate,omitempty"`
	// Password 只入不出
	Password         string          `json:"password,omitempty"`
	Skills           []Skill         `json:"skills,omitempty"`
	PerformanceScore int             `json:"performanceScore,omitempty"`
	Projects         []ProjectRecord `json:"projects,omitempty"`
	Availability     string          `json:"availability,omitempty"`
	Avatar           string          `json:"avatar,omitempty"`
	Bio              string          `json:"bio,omitempty"`
	Strengths        []string        `json:"strengths,omitempty"`
	Weaknesses       []string        `json:"weaknesses,omitempty"`
	ActiveProjects   int             `json:"activeProjects,omitempty"`
	Utime            string          `json:"utime,omitempty"`
}

// Skill 兼容两种入参形态：裸技能名或者完整对象。
// 反序列化时统一成带等级的规范形态，裸名字取默认等级
type Skill struct {
	Name     string `json:"name"`
	Level    int    `json:"level"`
	Category string `json:"category,omitempty"`
}

func (s *Skill) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		*s = Skill{
			Name:     name,
			Level:    domain.DefaultSkillLevel,
			Category: "general",
		}
		return nil
	}
	type skillAlias Skill
	var alias skillAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}
	*s = Skill(alias)
	return nil
}

type ProjectRecord struct {
	ProjectID   int64  `json:"projectId"`
	Role        string `json:"role"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	Performance int    `json:"performance,omitempty"`
	Active      bool   `json:"active"`
}

type EmployeeList struct {
	Employees []Employee `json:"employees,omitempty"`
	Total     int64      `json:"total,omitempty"`
}

type Stats struct {
	Total          int64             `json:"total"`
	Available      int64             `json:"available"`
	Busy           int64             `json:"busy"`
	AvgPerformance float64           `json:"avgPerformance"`
	Departments    []DepartmentCount `json:"departments,omitempty"`
}

type DepartmentCount struct {
	Department string `json:"department"`
	Count      int64  `json:"count"`
}

func (e Employee) toDomain() domain.Employee {
	res := domain.Employee{
		ID:         e.ID,
		FirstName:  e.FirstName,
		LastName:   e.LastName,
		Email:      e.Email,
		Phone:      e.Phone,
		Position:   e.Position,
		Department: e.Department,
		Password:   e.Password,
		Skills: slice.Map(e.Skills, func(idx int, src Skill) domain.Skill {
			return domain.Skill(src)
		}),
		Availability: domain.Availability(e.Availability),
		Avatar:       e.Avatar,
		Bio:          e.Bio,
		Strengths:    e.Strengths,
		Weaknesses:   e.Weaknesses,
	}
	if e.HireDate != "" {
		if t, err := time.Parse(time.DateOnly, e.HireDate); err == nil {
			res.HireDate = t.UnixMilli()
		}
	}
	return res
}

func newEmployee(e domain.Employee) Employee {
	res := Employee{
		ID:         e.ID,
		FirstName:  e.FirstName,
		LastName:   e.LastName,
		FullName:   e.FullName(),
		Email:      e.Email,
		Phone:      e.Phone,
		Position:   e.Position,
		Department: e.Department,
		Skills: slice.Map(e.Skills, func(idx int, src domain.Skill) Skill {
			return Skill(src)
		}),
		PerformanceScore: e.PerformanceScore,
		Projects: slice.Map(e.Projects, func(idx int, src domain.ProjectRecord) ProjectRecord {
			return newProjectRecord(src)
		}),
		Availability:   e.Availability.String(),
		Avatar:         e.Avatar,
		Bio:            e.Bio,
		Strengths:      e.Strengths,
		Weaknesses:     e.Weaknesses,
		ActiveProjects: e.ActiveProjects(),
		Utime:          time.UnixMilli(e.Utime).Format(time.DateTime),
	}
	if e.HireDate > 0 {
		res.HireDate = time.UnixMilli(e.HireDate).Format(time.DateOnly)
	}
	return res
}

func newProjectRecord(p domain.ProjectRecord) ProjectRecord {
	res := ProjectRecord{
		ProjectID:   p.ProjectID,
		Role:        p.Role,
		Performance: p.Performance,
		Active:      p.Active,
	}
	if p.StartDate > 0 {
		res.StartDate = time.UnixMilli(p.StartDate).Format(time.DateOnly)
	}
	if p.EndDate > 0 {
		res.EndDate = time.UnixMilli(p.EndDate).Format(time.DateOnly)
	}
	return res
}
