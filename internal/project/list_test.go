package project

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/archduke/archduke/internal/models"
)

func requireDense(t *testing.T, l *List[*models.Member]) {
	t.Helper()
	for i, m := range l.All() {
		require.Equal(t, i+1, m.Index, "member %s", m.Name)
	}
}

func TestList_AddAssignsNextIndex(t *testing.T) {
	l := NewList[*models.Member]("member")
	for _, name := range []string{"a", "b", "c"} {
		l.Add(&models.Member{Name: name})
	}

	require.Equal(t, 3, l.Len())
	requireDense(t, l)

	m, err := l.Get(2)
	require.NoError(t, err)
	require.Equal(t, "b", m.Name)
}

func TestList_GetOutOfRange(t *testing.T) {
	l := NewList[*models.Member]("member")
	l.Add(&models.Member{Name: "a"})

	for _, idx := range []int{-1, 0, 2} {
		_, err := l.Get(idx)
		require.Error(t, err)
		require.True(t, errors.Is(err, ErrIndexOutOfRange), "index %d", idx)
	}
}

func TestList_RemoveRenumbers(t *testing.T) {
	tests := []struct {
		name    string
		removes []int
		want    []string
	}{
		{name: "first", removes: []int{1}, want: []string{"b", "c", "d", "e"}},
		{name: "middle", removes: []int{3}, want: []string{"a", "b", "d", "e"}},
		{name: "last", removes: []int{5}, want: []string{"a", "b", "c", "d"}},
		{name: "repeated front", removes: []int{1, 1, 1}, want: []string{"d", "e"}},
		{name: "mixed", removes: []int{2, 3, 1}, want: []string{"c", "e"}},
		{name: "all", removes: []int{5, 4, 3, 2, 1}, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewList[*models.Member]("member")
			for _, name := range []string{"a", "b", "c", "d", "e"} {
				l.Add(&models.Member{Name: name})
			}
			for _, idx := range tt.removes {
				_, err := l.Remove(idx)
				require.NoError(t, err)
				requireDense(t, l)
			}

			var got []string
			for _, m := range l.All() {
				got = append(got, m.Name)
			}
			require.Equal(t, tt.want, got)
		})
	}
}

func TestList_AddAfterRemoveKeepsIndicesUnique(t *testing.T) {
	l := NewList[*models.Member]("member")
	l.Add(&models.Member{Name: "a"})
	l.Add(&models.Member{Name: "b"})
	_, err := l.Remove(1)
	require.NoError(t, err)
	l.Add(&models.Member{Name: "c"})

	requireDense(t, l)
	require.Equal(t, 2, l.Len())
}

func TestList_UpdateOutOfRange(t *testing.T) {
	l := NewList[*models.Member]("member")
	called := false
	err := l.Update(1, func(*models.Member) error {
		called = true
		return nil
	})
	require.ErrorIs(t, err, ErrIndexOutOfRange)
	require.False(t, called)
}
