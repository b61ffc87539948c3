package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssessment_Advance(t *testing.T) {
	testCases := []struct {
		name string
		from Status
		to   Status

		wantErr    error
		wantStatus Status
	}{
		{
			name:       "draft 提交",
			from:       StatusDraft,
			to:         StatusSubmitted,
			wantStatus: StatusSubmitted,
		},
		{
			name:       "submitted 复核",
			from:       StatusSubmitted,
			to:         StatusReviewed,
			wantStatus: StatusReviewed,
		},
		{
			name:       "reviewed 批准",
			from:       StatusReviewed,
			to:         StatusApproved,
			wantStatus: StatusApproved,
		},
		{
			name:       "不能跳步",
			from:       StatusDraft,
			to:         StatusReviewed,
			wantErr:    ErrStateConflict,
			wantStatus: StatusDraft,
		},
		{
			name:       "不能回退",
			from:       StatusReviewed,
			to:         StatusSubmitted,
			wantErr:    ErrStateConflict,
			wantStatus: StatusReviewed,
		},
		{
			name:       "approved 是终态",
			from:       StatusApproved,
			to:         StatusApproved,
			wantErr:    ErrStateConflict,
			wantStatus: StatusApproved,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a := Assessment{Status: tc.from}
			err := a.Advance(tc.to)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantStatus, a.Status)
		})
	}
}

func TestAssessment_Update(t *testing.T) {
	scores, err := NewScores(fullScores(8))
	require.NoError(t, err)
	newScores, err := NewScores(fullScores(6))
	require.NoError(t, err)

	testCases := []struct {
		name   string
		status Status

		wantErr error
	}{
		{
			name:   "draft 可以改",
			status: StatusDraft,
		},
		{
			name:   "submitted 可以改",
			status: StatusSubmitted,
		},
		{
			name:    "reviewed 冻结",
			status:  StatusReviewed,
			wantErr: ErrStateConflict,
		},
		{
			name:    "approved 冻结",
			status:  StatusApproved,
			wantErr: ErrStateConflict,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a := Assessment{
				Status:   tc.status,
				Scores:   scores,
				Comments: "旧评语",
			}
			err := a.Update(newScores, []string{"多承担跨组协作"}, "新评语")
			assert.ErrorIs(t, err, tc.wantErr)
			if tc.wantErr != nil {
				assert.Equal(t, scores, a.Scores)
				assert.Equal(t, "旧评语", a.Comments)
				return
			}
			assert.Equal(t, newScores, a.Scores)
			assert.Equal(t, "新评语", a.Comments)
			assert.Equal(t, []string{"多承担跨组协作"}, a.Recommendations)
		})
	}
}

func TestAssessment_Mutable(t *testing.T) {
	assert.True(t, Assessment{Status: StatusDraft}.Mutable())
	assert.True(t, Assessment{Status: StatusSubmitted}.Mutable())
	assert.False(t, Assessment{Status: StatusReviewed}.Mutable())
	assert.False(t, Assessment{Status: StatusApproved}.Mutable())
}
