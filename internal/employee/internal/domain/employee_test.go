package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSkills(t *testing.T) {
	testCases := []struct {
		name   string
		skills []Skill

		want []Skill
	}{
		{
			name:   "空列表",
			skills: []Skill{},
			want:   []Skill{},
		},
		{
			name: "没有重复",
			skills: []Skill{
				{Name: "Python", Level: 8},
				{Name: "Go", Level: 6},
			},
			want: []Skill{
				{Name: "Python", Level: 8},
				{Name: "Go", Level: 6},
			},
		},
		{
			name: "重复时后写的覆盖先写的且保留原位置",
			skills: []Skill{
				{Name: "Python", Level: 3},
				{Name: "Go", Level: 6},
				{Name: "Python", Level: 9, Category: "backend"},
			},
			want: []Skill{
				{Name: "Python", Level: 9, Category: "backend"},
				{Name: "Go", Level: 6},
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeSkills(tc.skills))
		})
	}
}

func TestEmployee_ActiveProjects(t *testing.T) {
	e := Employee{
		Projects: []ProjectRecord{
			{ProjectID: 1, Active: true},
			{ProjectID: 2, Active: false},
			{ProjectID: 3, Active: true},
		},
	}
	assert.Equal(t, 2, e.ActiveProjects())
	assert.Equal(t, 0, Employee{}.ActiveProjects())
}

func TestAvailability_Valid(t *testing.T) {
	assert.True(t, AvailabilityAvailable.Valid())
	assert.True(t, AvailabilityBusy.Valid())
	assert.True(t, AvailabilityUnavailable.Valid())
	assert.False(t, Availability("vacation").Valid())
	assert.False(t, Availability("").Valid())
}
