package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullScores(v float64) map[string]float64 {
	raw := make(map[string]float64, len(Categories))
	for _, cat := range Categories {
		raw[cat] = v
	}
	return raw
}

func TestNewScores(t *testing.T) {
	testCases := []struct {
		name string
		raw  func() map[string]float64

		wantErr     string
		wantOverall int
	}{
		{
			name:        "满分",
			raw:         func() map[string]float64 { return fullScores(10) },
			wantOverall: 100,
		},
		{
			name:        "零分",
			raw:         func() map[string]float64 { return fullScores(0) },
			wantOverall: 0,
		},
		{
			name: "缺少维度",
			raw: func() map[string]float64 {
				raw := fullScores(5)
				delete(raw, "teamwork")
				return raw
			},
			wantErr: "非法评分: 缺少评分项 teamwork",
		},
		{
			name: "超出上限",
			raw: func() map[string]float64 {
				raw := fullScores(5)
				raw["creativity"] = 10.1
				return raw
			},
			wantErr: "非法评分: creativity 的评分必须在 0-10 之间",
		},
		{
			name: "低于下限",
			raw: func() map[string]float64 {
				raw := fullScores(5)
				raw["leadership"] = -1
				return raw
			},
			wantErr: "非法评分: leadership 的评分必须在 0-10 之间",
		},
		{
			name: "NaN 被拒绝",
			raw: func() map[string]float64 {
				raw := fullScores(5)
				raw["creativity"] = math.NaN()
				return raw
			},
			wantErr: "非法评分: creativity 的评分必须在 0-10 之间",
		},
		{
			name: "无穷大被拒绝",
			raw: func() map[string]float64 {
				raw := fullScores(5)
				raw["teamwork"] = math.Inf(1)
				return raw
			},
			wantErr: "非法评分: teamwork 的评分必须在 0-10 之间",
		},
		{
			name: "多余的键被忽略",
			raw: func() map[string]float64 {
				raw := fullScores(6)
				raw["unknown"] = 100
				return raw
			},
			wantOverall: 60,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := NewScores(tc.raw())
			if tc.wantErr != "" {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidScores)
				assert.Equal(t, tc.wantErr, err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantOverall, s.Overall())
		})
	}
}

func TestScores_Overall(t *testing.T) {
	raw := map[string]float64{
		"technicalSkills": 8,
		"communication":   7,
		"leadership":      6,
		"problemSolving":  9,
		"teamwork":        8,
		"adaptability":    7,
		"timeManagement":  6,
		"creativity":      8,
	}
	s, err := NewScores(raw)
	require.NoError(t, err)
	// (8+7+6+9+8+7+6+8)/8*10 = 73.75 -> 74
	assert.Equal(t, 74, s.Overall())
	assert.Equal(t, "Good", s.Level())
}

func TestScoreLevel(t *testing.T) {
	testCases := []struct {
		overall int
		want    string
	}{
		{overall: 100, want: "Excellent"},
		{overall: 90, want: "Excellent"},
		{overall: 89, want: "Very Good"},
		{overall: 80, want: "Very Good"},
		{overall: 79, want: "Good"},
		{overall: 70, want: "Good"},
		{overall: 69, want: "Average"},
		{overall: 60, want: "Average"},
		{overall: 59, want: "Needs Improvement"},
		{overall: 0, want: "Needs Improvement"},
	}
	for _, tc := range testCases {
		t.Run(tc.want, func(t *testing.T) {
			assert.Equal(t, tc.want, ScoreLevel(tc.overall))
		})
	}
}

func TestScores_StrengthsWeaknesses(t *testing.T) {
	raw := map[string]float64{
		"technicalSkills": 9,
		"communication":   5,
		"leadership":      5,
		"problemSolving":  9,
		"teamwork":        3,
		"adaptability":    7,
		"timeManagement":  3,
		"creativity":      8,
	}
	s, err := NewScores(raw)
	require.NoError(t, err)
	// 同分按 Categories 的规范顺序排
	assert.Equal(t, []string{"technicalSkills", "problemSolving", "creativity"}, s.Strengths(3))
	assert.Equal(t, []string{"teamwork", "timeManagement", "communication"}, s.Weaknesses(3))
	assert.Len(t, s.Strengths(100), len(Categories))
}

func TestScores_Map(t *testing.T) {
	s, err := NewScores(fullScores(5))
	require.NoError(t, err)
	m := s.Map()
	m["teamwork"] = 0
	assert.Equal(t, 5.0, s.Get("teamwork"))
}
