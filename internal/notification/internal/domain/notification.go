package domain

// Notification 站内通知，由人事动态事件落库而来，拉模式消费
type Notification struct {
	ID  int64
	UID int64
	// UserType 收件人类型 admin/employee
	UserType string
	Biz      string
	Title    string
	Message  string
	Read     bool
	Ctime    int64
	Utime    int64
}
