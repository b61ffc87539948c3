package dao

import "github.com/ecodeclub/ekit/sqlx"

type Project struct {
	ID           int64                          `gorm:"primaryKey,autoIncrement"`
	Title        string                         `gorm:"type:varchar(512)"`
	Desc         string                         `gorm:"type:varchar(1024)"`
	Company      string                         `gorm:"type:varchar(256)"`
	Requirements sqlx.JsonColumn[[]Requirement] `gorm:"type:text"`
	Budget       float64
	// Duration 以周为单位
	Duration          int
	StartDate         int64
	EndDate           int64
	Status            string                        `gorm:"type:varchar(16);index;comment:open/in-progress/completed/cancelled"`
	AssignedEmployees sqlx.JsonColumn[[]Assignment] `gorm:"type:text"`
	Priority          string                        `gorm:"type:varchar(16);index"`
	Category          string                        `gorm:"type:varchar(128);index"`
	Comments          sqlx.JsonColumn[[]Comment]    `gorm:"type:text"`
	IsActive          bool                          `gorm:"index"`
	Ctime             int64
	Utime             int64
}

type Requirement struct {
	Skill    string `json:"skill"`
	Level    int    `json:"level"`
	Priority string `json:"priority"`
}

type Assignment struct {
	EmployeeID   int64  `json:"employeeId"`
	Role         string `json:"role"`
	AssignedDate int64  `json:"assignedDate"`
}

type Comment struct {
	Text   string `json:"text"`
	Author string `json:"author"`
	Ctime  int64  `json:"ctime"`
}
