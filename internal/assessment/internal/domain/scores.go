package domain

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

var ErrInvalidScores = errors.New("非法评分")

// Categories 八个考核维度，顺序即对外契约的规范顺序，
// 也是强弱项排序的平局顺序
var Categories = []string{
	"technicalSkills",
	"communication",
	"leadership",
	"problemSolving",
	"teamwork",
	"adaptability",
	"timeManagement",
	"creativity",
}

const (
	ScoreMin = 0
	ScoreMax = 10
)

// Scores 八维评分值对象。只能通过 NewScores 构造，
// 所以拿到手的实例一定是完整且在值域内的
type Scores struct {
	vals map[string]float64
}

// NewScores 校验并构造评分。八个维度缺一不可，
// 每个值都要落在 [0, 10] 里，错误信息里带上出问题的维度名
func NewScores(raw map[string]float64) (Scores, error) {
	vals := make(map[string]float64, len(Categories))
	for _, cat := range Categories {
		v, ok := raw[cat]
		if !ok {
			return Scores{}, fmt.Errorf("%w: 缺少评分项 %s", ErrInvalidScores, cat)
		}
		// NaN 和任何比较都是 false，得用否定写法兜住
		if !(v >= ScoreMin && v <= ScoreMax) {
			return Scores{}, fmt.Errorf("%w: %s 的评分必须在 %d-%d 之间",
				ErrInvalidScores, cat, ScoreMin, ScoreMax)
		}
		vals[cat] = v
	}
	return Scores{vals: vals}, nil
}

// Overall 总分永远由八个子项推导，绝不接受外部直接赋值
func (s Scores) Overall() int {
	var sum float64
	for _, cat := range Categories {
		sum += s.vals[cat]
	}
	return int(math.Round(sum / float64(len(Categories)) * 10))
}

func (s Scores) Level() string {
	return ScoreLevel(s.Overall())
}

func (s Scores) Get(category string) float64 {
	return s.vals[category]
}

func (s Scores) Map() map[string]float64 {
	res := make(map[string]float64, len(s.vals))
	for k, v := range s.vals {
		res[k] = v
	}
	return res
}

// Strengths 得分最高的 n 个维度，同分按规范顺序排
func (s Scores) Strengths(n int) []string {
	return s.rank(n, func(a, b float64) bool { return a > b })
}

// Weaknesses 得分最低的 n 个维度，同分按规范顺序排
func (s Scores) Weaknesses(n int) []string {
	return s.rank(n, func(a, b float64) bool { return a < b })
}

func (s Scores) rank(n int, better func(a, b float64) bool) []string {
	cats := make([]string, len(Categories))
	copy(cats, Categories)
	sort.SliceStable(cats, func(i, j int) bool {
		return better(s.vals[cats[i]], s.vals[cats[j]])
	})
	if n > len(cats) {
		n = len(cats)
	}
	return cats[:n]
}

// ScoreLevel 总分到评价档位的纯函数，阈值是对外契约的一部分
func ScoreLevel(overall int) string {
	switch {
	case overall >= 90:
		return "Excellent"
	case overall >= 80:
		return "Very Good"
	case overall >= 70:
		return "Good"
	case overall >= 60:
		return "Average"
	default:
		return "Needs Improvement"
	}
}
