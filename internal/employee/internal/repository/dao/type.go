package dao

import "github.com/ecodeclub/ekit/sqlx"

type Employee struct {
	ID         int64  `gorm:"primaryKey,autoIncrement"`
	FirstName  string `gorm:"type:varchar(128)"`
	LastName   string `gorm:"type:varchar(128)"`
	Email      string `gorm:"type:varchar(256);uniqueIndex"`
	Phone      string `gorm:"type:varchar(32)"`
	Position   string `gorm:"type:varchar(128);index"`
	Department string `gorm:"type:varchar(128);index"`
	HireDate   int64
	// Password 存 bcrypt 之后的值
	Password         string                            `gorm:"type:varchar(128)"`
	Skills           sqlx.JsonColumn[[]Skill]          `gorm:"type:text"`
	PerformanceScore int                               `gorm:"type:tinyint unsigned;default:75;comment:0-100"`
	Projects         sqlx.JsonColumn[[]ProjectRecord]  `gorm:"type:text"`
	Availability     string                            `gorm:"type:varchar(16);index"`
	Avatar           string                            `gorm:"type:varchar(512)"`
	Bio              string                            `gorm:"type:varchar(512)"`
	Strengths        sqlx.JsonColumn[[]string]         `gorm:"type:varchar(1024)"`
	Weaknesses       sqlx.JsonColumn[[]string]         `gorm:"type:varchar(1024)"`
	IsActive         bool                              `gorm:"index"`
	Ctime            int64
	Utime            int64
}

type Skill struct {
	Name     string `json:"name"`
	Level    int    `json:"level"`
	Category string `json:"category"`
}

type ProjectRecord struct {
	ProjectID   int64  `json:"projectId"`
	Role        string `json:"role"`
	StartDate   int64  `json:"startDate"`
	EndDate     int64  `json:"endDate"`
	Performance int    `json:"performance"`
	Active      bool   `json:"active"`
}

func skillColumn(skills []Skill) sqlx.JsonColumn[[]Skill] {
	return sqlx.JsonColumn[[]Skill]{Val: skills, Valid: true}
}

func recordColumn(records []ProjectRecord) sqlx.JsonColumn[[]ProjectRecord] {
	return sqlx.JsonColumn[[]ProjectRecord]{Val: records, Valid: true}
}
