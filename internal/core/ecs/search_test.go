package ecs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/l1jgo/tickworld/internal/core/ecs"
)

func searchWorld(t *testing.T) *ecs.World {
	t.Helper()
	w := newWorld(t)
	for i, hp := range []int{100, 40, 10} {
		e := w.NewEntity()
		w.AddComponent(e, &health{Value: hp})
		w.AddComponent(e, &position{X: float64(i), Y: -float64(i)})
	}
	return w
}

func TestSearch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		where   string
		kinds   []ecs.Kind
		want    []ecs.Entity
		wantErr bool
	}{
		{name: "empty where", where: "", kinds: []ecs.Kind{"Health"}, want: []ecs.Entity{1, 2, 3}},
		{name: "field filter", where: "Health.Value < 50", kinds: []ecs.Kind{"Health"}, want: []ecs.Entity{2, 3}},
		{
			name:  "two kinds",
			where: "Health.Value > 20 && Position.X >= 1",
			kinds: []ecs.Kind{"Health", "Position"},
			want:  []ecs.Entity{2},
		},
		{name: "entity variable", where: "entity != 2", kinds: []ecs.Kind{"Position"}, want: []ecs.Entity{1, 3}},
		{name: "nothing matches", where: "Health.Value > 1000", kinds: []ecs.Kind{"Health"}, want: []ecs.Entity{}},
		{name: "syntax error", where: "Health.Value >", kinds: []ecs.Kind{"Health"}, wantErr: true},
		{name: "not a bool", where: "Health.Value + 1", kinds: []ecs.Kind{"Health"}, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			w := searchWorld(t)
			got, err := ecs.Search(w, tc.where, tc.kinds...)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSearch_Uninitialized(t *testing.T) {
	t.Parallel()
	_, err := ecs.Search(ecs.NewWorld(nil), "true", "Health")
	assert.ErrorIs(t, err, ecs.ErrUninitialized)
}
