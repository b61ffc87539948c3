package domain

type AssessmentStats struct {
	Total      int64
	ByStatus   map[string]int64
	AvgOverall float64
	// AvgByCategory 每个维度的平均分，key 是规范维度名
	AvgByCategory map[string]float64
}
