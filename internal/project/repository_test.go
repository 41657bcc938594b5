package project

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/archduke/archduke/internal/models"
)

func TestRepository_Create(t *testing.T) {
	repo := NewRepository()

	p, err := repo.Create("  Demo ")
	require.NoError(t, err)
	require.Equal(t, "Demo", p.Name())
	require.Equal(t, 1, p.DisplayIndex())

	_, err = repo.Create("   ")
	require.ErrorIs(t, err, ErrInvalidFormat)
	require.Equal(t, "Creation of Project failed. Please give the project a name!", err.Error())
	require.Equal(t, 1, repo.Len())
}

func TestRepository_DeleteRenumbers(t *testing.T) {
	repo := NewRepository()
	for _, name := range []string{"a", "b", "c"} {
		_, err := repo.Create(name)
		require.NoError(t, err)
	}

	deleted, err := repo.Delete(1)
	require.NoError(t, err)
	require.Equal(t, "a", deleted.Name())

	all := repo.All()
	require.Len(t, all, 2)
	for i, p := range all {
		require.Equal(t, i+1, p.DisplayIndex())
	}
	require.Equal(t, "b", all[0].Name())

	_, err = repo.Delete(3)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestRepository_DeletePurgesAssignments(t *testing.T) {
	repo := NewRepository()
	p, err := repo.Create("Demo")
	require.NoError(t, err)
	_, err = p.AddMember(models.Member{Name: "Alice"})
	require.NoError(t, err)
	_, err = p.AddTask(models.Task{Name: "Write spec"})
	require.NoError(t, err)
	_, err = p.CreateAssignment(1, 1)
	require.NoError(t, err)

	deleted, err := repo.Delete(1)
	require.NoError(t, err)
	require.Empty(t, deleted.Snapshot().Assignments)
	require.Zero(t, repo.Len())
}

func TestRepository_ByIDAndRestore(t *testing.T) {
	repo := NewRepository()
	repo.Restore([]models.ProjectRecord{
		{ID: "p1", Name: "first"},
		{ID: "p2", Name: "second"},
	})

	p, err := repo.ByID("p2")
	require.NoError(t, err)
	require.Equal(t, "second", p.Name())
	require.Equal(t, 2, p.DisplayIndex())

	_, err = repo.ByID("nope")
	require.ErrorIs(t, err, ErrNotFound)

	got, err := repo.Get(1)
	require.NoError(t, err)
	require.Equal(t, "first", got.Name())
}
