package domain

import "errors"

var ErrAlreadyAssigned = errors.New("员工已被分配到该项目")

type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// Requirement 项目的技能要求。
// Priority 只是陈述性的，匹配算法刻意不使用它，
// 在确认产品意图之前不要把它折进打分里
type Requirement struct {
	Skill    string
	Level    int
	Priority string
}

type Assignment struct {
	EmployeeID   int64
	Role         string
	AssignedDate int64
}

type Comment struct {
	Text   string
	Author string
	Ctime  int64
}

type Project struct {
	ID           int64
	Title        string
	Desc         string
	Company      string
	Requirements []Requirement
	Budget       float64
	// Duration 以周为单位
	Duration  int
	StartDate int64
	EndDate   int64
	Status    Status
	Assignees []Assignment
	Priority  string
	Category  string
	Comments  []Comment
	Active    bool
	Ctime     int64
	Utime     int64
}

// Assign 把员工加进项目。重复分配直接拒绝，不产生任何修改。
// 第一次分配会把 open 推进到 in-progress
func (p *Project) Assign(employeeID int64, role string, now int64) error {
	if p.IsAssigned(employeeID) {
		return ErrAlreadyAssigned
	}
	p.Assignees = append(p.Assignees, Assignment{
		EmployeeID:   employeeID,
		Role:         role,
		AssignedDate: now,
	})
	if p.Status == StatusOpen {
		p.Status = StatusInProgress
	}
	return nil
}

// Unassign 把员工移出项目，移空之后回退到 open。
// 返回值表示员工原本是否在项目里
func (p *Project) Unassign(employeeID int64) bool {
	idx := -1
	for i, a := range p.Assignees {
		if a.EmployeeID == employeeID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	p.Assignees = append(p.Assignees[:idx], p.Assignees[idx+1:]...)
	if len(p.Assignees) == 0 && p.Status == StatusInProgress {
		p.Status = StatusOpen
	}
	return true
}

func (p Project) IsAssigned(employeeID int64) bool {
	for _, a := range p.Assignees {
		if a.EmployeeID == employeeID {
			return true
		}
	}
	return false
}
