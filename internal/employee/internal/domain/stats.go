package domain

type EmployeeStats struct {
	Total          int64
	Available      int64
	Busy           int64
	AvgPerformance float64
	Departments    []DepartmentCount
}

type DepartmentCount struct {
	Department string
	Count      int64
}
