package entity_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/dealsync/internal/entity"
)

func TestClean(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name string
		in   entity.Properties
		want entity.Properties
	}{
		{
			name: "trims values",
			in:   entity.Properties{"name": "  Acme Co \n", "domain": "\tacme.com"},
			want: entity.Properties{"name": "Acme Co", "domain": "acme.com"},
		},
		{
			name: "drops empty and blank values",
			in:   entity.Properties{"name": "Acme Co", "domain": "", "address": "   "},
			want: entity.Properties{"name": "Acme Co"},
		},
		{
			name: "empty input",
			in:   entity.Properties{},
			want: entity.Properties{},
		},
		{
			name: "nil input",
			in:   nil,
			want: entity.Properties{},
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := entity.Clean(tt.in)
			require.Equal(t, tt.want, got)
			require.Equal(t, got, entity.Clean(got), "clean must be idempotent")

			for _, v := range got {
				require.NotEmpty(t, v)
			}
		})
	}
}

func TestClean_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	in := entity.Properties{"name": " Acme ", "domain": ""}

	_ = entity.Clean(in)

	require.Equal(t, entity.Properties{"name": " Acme ", "domain": ""}, in)
}
