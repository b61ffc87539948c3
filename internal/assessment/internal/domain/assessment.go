package domain

import (
	"errors"
	"fmt"
)

// ErrStateConflict 考核进入 reviewed/approved 之后就不可再改
var ErrStateConflict = errors.New("考核状态不允许该操作")

type Status string

const (
	StatusDraft     Status = "draft"
	StatusSubmitted Status = "submitted"
	StatusReviewed  Status = "reviewed"
	StatusApproved  Status = "approved"
)

func (s Status) String() string {
	return string(s)
}

// next 状态机是单向的，每个状态只有一条出边
func (s Status) next() (Status, bool) {
	switch s {
	case StatusDraft:
		return StatusSubmitted, true
	case StatusSubmitted:
		return StatusReviewed, true
	case StatusReviewed:
		return StatusApproved, true
	default:
		return "", false
	}
}

type Assessment struct {
	ID         int64
	SN         string
	EmployeeID int64
	AssessorID int64
	// ProjectID 可选，考核可以挂在某个项目下
	ProjectID       int64
	Date            int64
	Scores          Scores
	Recommendations []string
	Comments        string
	Status          Status
	Active          bool
	Ctime           int64
	Utime           int64
}

// Mutable 草稿和已提交的考核还能改，之后全部冻结。
// 软删除不走这个检查
func (a Assessment) Mutable() bool {
	return a.Status == StatusDraft || a.Status == StatusSubmitted
}

// Advance 把状态推进到 to。只接受沿 draft→submitted→reviewed→approved
// 方向的单步推进，其余一律拒绝
func (a *Assessment) Advance(to Status) error {
	next, ok := a.Status.next()
	if !ok || next != to {
		return fmt.Errorf("%w: %s 不能推进到 %s", ErrStateConflict, a.Status, to)
	}
	a.Status = to
	return nil
}

// Update 覆盖可编辑字段，冻结状态下直接拒绝
func (a *Assessment) Update(scores Scores, recommendations []string, comments string) error {
	if !a.Mutable() {
		return fmt.Errorf("%w: %s 状态下不能修改", ErrStateConflict, a.Status)
	}
	a.Scores = scores
	a.Recommendations = recommendations
	a.Comments = comments
	return nil
}
