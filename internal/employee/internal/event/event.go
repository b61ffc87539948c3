package event

const StaffingTopic = "staffing_events"

// StaffingEvent 人事动态事件，由 notification 模块消费后落库成站内通知
type StaffingEvent struct {
	UID      int64  `json:"uid"`
	UserType string `json:"userType"`
	Biz      string `json:"biz"`
	Title    string `json:"title"`
	Message  string `json:"message"`
}

const BizEmployeeUpdate = "employee_update"
