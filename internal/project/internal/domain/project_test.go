package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProject_Assign(t *testing.T) {
	testCases := []struct {
		name       string
		project    Project
		employeeID int64

		wantErr    error
		wantStatus Status
		wantCount  int
	}{
		{
			name: "首次分配推进到 in-progress",
			project: Project{
				Status: StatusOpen,
			},
			employeeID: 1,
			wantStatus: StatusInProgress,
			wantCount:  1,
		},
		{
			name: "非 open 状态不变",
			project: Project{
				Status: StatusCompleted,
			},
			employeeID: 1,
			wantStatus: StatusCompleted,
			wantCount:  1,
		},
		{
			name: "重复分配直接拒绝",
			project: Project{
				Status: StatusInProgress,
				Assignees: []Assignment{
					{EmployeeID: 1, Role: "Developer"},
				},
			},
			employeeID: 1,
			wantErr:    ErrAlreadyAssigned,
			wantStatus: StatusInProgress,
			wantCount:  1,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.project.Assign(tc.employeeID, "Developer", 1000)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantStatus, tc.project.Status)
			assert.Len(t, tc.project.Assignees, tc.wantCount)
		})
	}
}

func TestProject_Unassign(t *testing.T) {
	testCases := []struct {
		name       string
		project    Project
		employeeID int64

		wantOK     bool
		wantStatus Status
		wantCount  int
	}{
		{
			name: "移出最后一人回退到 open",
			project: Project{
				Status: StatusInProgress,
				Assignees: []Assignment{
					{EmployeeID: 1},
				},
			},
			employeeID: 1,
			wantOK:     true,
			wantStatus: StatusOpen,
			wantCount:  0,
		},
		{
			name: "还有其他人时状态不变",
			project: Project{
				Status: StatusInProgress,
				Assignees: []Assignment{
					{EmployeeID: 1},
					{EmployeeID: 2},
				},
			},
			employeeID: 1,
			wantOK:     true,
			wantStatus: StatusInProgress,
			wantCount:  1,
		},
		{
			name: "不在项目里",
			project: Project{
				Status: StatusInProgress,
				Assignees: []Assignment{
					{EmployeeID: 2},
				},
			},
			employeeID: 1,
			wantOK:     false,
			wantStatus: StatusInProgress,
			wantCount:  1,
		},
		{
			name: "completed 项目移空不回退",
			project: Project{
				Status: StatusCompleted,
				Assignees: []Assignment{
					{EmployeeID: 1},
				},
			},
			employeeID: 1,
			wantOK:     true,
			wantStatus: StatusCompleted,
			wantCount:  0,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ok := tc.project.Unassign(tc.employeeID)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.wantStatus, tc.project.Status)
			assert.Len(t, tc.project.Assignees, tc.wantCount)
		})
	}
}
