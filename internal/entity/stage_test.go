package entity_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/dealsync/internal/entity"
)

func TestResolveStage(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		status string
		want   string
	}{
		{status: "Completed", want: entity.StageClosedWon},
		{status: "completed", want: entity.StageClosedWon},
		{status: " In Progress ", want: entity.StagePresentationScheduled},
		{status: "New", want: entity.DefaultStage},
		{status: "Cancelled", want: entity.StageClosedLost},
		{status: "unknown-label", want: entity.DefaultStage},
		{status: "", want: entity.DefaultStage},
		{status: "closedwon", want: entity.StageClosedWon},
		{status: "123456789", want: "123456789"},
		{status: "12ab", want: entity.DefaultStage},
	} {
		t.Run(tt.status, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.want, entity.ResolveStage(tt.status))
		})
	}
}

func TestJob_Stage(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name string
		job  entity.Job
		want string
	}{
		{
			name: "explicit stage id wins",
			job:  entity.Job{StageID: "987654", Status: "Completed"},
			want: "987654",
		},
		{
			name: "stage id is not looked up",
			job:  entity.Job{StageID: "Completed"},
			want: "Completed",
		},
		{
			name: "status label",
			job:  entity.Job{Status: "Completed"},
			want: entity.StageClosedWon,
		},
		{
			name: "nothing set",
			job:  entity.Job{},
			want: "",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.want, tt.job.Stage())
		})
	}
}
