package domain

type ProjectStats struct {
	Total      int64
	Open       int64
	InProgress int64
	Completed  int64
	AvgBudget  float64
	Categories []CategoryCount
}

type CategoryCount struct {
	Category string
	Count    int64
}
