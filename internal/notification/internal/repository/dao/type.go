package dao

type Notification struct {
	ID       int64  `gorm:"primaryKey,autoIncrement"`
	UID      int64  `gorm:"column:uid;index:idx_uid_read"`
	UserType string `gorm:"type:varchar(16)"`
	Biz      string `gorm:"type:varchar(64)"`
	Title    string `gorm:"type:varchar(256)"`
	Message  string `gorm:"type:varchar(1024)"`
	Read     bool   `gorm:"index:idx_uid_read"`
	Ctime    int64
	Utime    int64
}
