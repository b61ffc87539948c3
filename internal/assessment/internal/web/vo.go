package web

import (
	"time"

	"github.com/ecodeclub/talent/internal/assessment/internal/domain"
)

type SaveReq struct {
	ID         int64  `json:"id,omitempty"`
	EmployeeID int64  `json:"employeeId,omitempty"`
	ProjectID  int64  `json:"projectId,omitempty"`
	Date       string `json:"date,omitempty"`
	// Scores 必须恰好给全八个维度，总分由服务端推导
	Scores          map[string]float64 `json:"scores"`
	Recommendations []string           `json:"recommendations,omitempty"`
	Comments        string             `json:"comments,omitempty"`
}

type IDReq struct {
	ID int64 `json:"id"`
}

type ListReq struct {
	EmployeeID int64  `json:"employeeId,omitempty"`
	ProjectID  int64  `json:"projectId,omitempty"`
	Status     string `json:"status,omitempty"`
	Offset     int    `json:"offset,omitempty"`
	Limit      int    `json:"limit,omitempty"`
}

type Assessment struct {
	ID              int64              `json:"id"`
	SN              string             `json:"sn"`
	EmployeeID      int64              `json:"employeeId"`
	AssessorID      int64              `json:"assessorId,omitempty"`
	ProjectID       int64              `json:"projectId,omitempty"`
	Date            string             `json:"date,omitempty"`
	Scores          map[string]float64 `json:"scores"`
	OverallScore    int                `json:"overallScore"`
	ScoreLevel      string             `json:"scoreLevel"`
	Strengths       []string           `json:"strengths,omitempty"`
	Weaknesses      []string           `json:"weaknesses,omitempty"`
	Recommendations []string           `json:"recommendations,omitempty"`
	Comments        string             `json:"comments,omitempty"`
	Status          string             `json:"status"`
	Utime           string             `json:"utime,omitempty"`
}

type AssessmentList struct {
	Assessments []Assessment `json:"assessments,omitempty"`
	Total       int64        `json:"total,omitempty"`
}

type Stats struct {
	Total         int64              `json:"total"`
	ByStatus      map[string]int64   `json:"byStatus,omitempty"`
	AvgOverall    float64            `json:"avgOverall"`
	AvgByCategory map[string]float64 `json:"avgByCategory,omitempty"`
}

// topN 强弱项各取前三，和原有前端展示保持一致
const topN = 3

func newAssessment(a domain.Assessment) Assessment {
	res := Assessment{
		ID:              a.ID,
		SN:              a.SN,
		EmployeeID:      a.EmployeeID,
		AssessorID:      a.AssessorID,
		ProjectID:       a.ProjectID,
		Scores:          a.Scores.Map(),
		OverallScore:    a.Scores.Overall(),
		ScoreLevel:      a.Scores.Level(),
		Strengths:       a.Scores.Strengths(topN),
		Weaknesses:      a.Scores.Weaknesses(topN),
		Recommendations: a.Recommendations,
		Comments:        a.Comments,
		Status:          a.Status.String(),
		Utime:           time.UnixMilli(a.Utime).Format(time.DateTime),
	}
	if a.Date > 0 {
		// Date 按 UTC 解析，展示也按 UTC，避免跨时区日期漂移
		res.Date = time.UnixMilli(a.Date).UTC().Format(time.DateOnly)
	}
	return res
}
