package dao

import "github.com/ecodeclub/ekit/sqlx"

// Assessment 八个维度拆成独立列，统计直接用 SQL 聚合
type Assessment struct {
	ID              int64  `gorm:"primaryKey,autoIncrement"`
	SN              string `gorm:"type:varchar(64);uniqueIndex:unq_assessment_sn"`
	EmployeeID      int64  `gorm:"index"`
	AssessorID      int64  `gorm:"index"`
	ProjectID       int64  `gorm:"index"`
	Date            int64
	TechnicalSkills float64
	Communication   float64
	Leadership      float64
	ProblemSolving  float64
	Teamwork        float64
	Adaptability    float64
	TimeManagement  float64
	Creativity      float64
	// OverallScore 永远由八个子项算出来再落库
	OverallScore    int
	Recommendations sqlx.JsonColumn[[]string] `gorm:"type:text"`
	Comments        string                    `gorm:"type:varchar(1024)"`
	Status          string                    `gorm:"type:varchar(16);index;comment:draft/submitted/reviewed/approved"`
	IsActive        bool                      `gorm:"index"`
	Ctime           int64
	Utime           int64
}
