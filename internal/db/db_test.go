package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/archduke/archduke/internal/models"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func sampleProject(id string, index int) models.ProjectRecord {
	due := time.Date(2026, time.October, 20, 0, 0, 0, 0, time.UTC)
	return models.ProjectRecord{
		ID:    id,
		Index: index,
		Name:  "Demo " + id,
		Members: []models.Member{
			{ID: id + "-m1", Index: 1, Name: "Alice", Role: "member"},
			{ID: id + "-m2", Index: 2, Name: "Bob", Phone: "555", Email: "bob@example.com", Role: "lead"},
		},
		Tasks: []models.Task{
			{ID: id + "-t1", Index: 1, Name: "Write spec", Priority: 1, Credit: 10, State: models.StateOpen,
				Requirements: []string{"outline", "draft"}},
			{ID: id + "-t2", Index: 2, Name: "Review", Priority: 2, Credit: 4, State: models.StateDone, DueDate: &due},
		},
		Reminders: []models.Reminder{
			{ID: id + "-r1", Index: 1, Name: "standup", Category: "MEETING", Done: true, DueDate: &due},
			{ID: id + "-r2", Index: 2, Name: "lunch", Remark: "noon", Category: "DEFAULT"},
		},
		Assignments: []models.Assignment{
			{TaskID: id + "-t1", MemberID: id + "-m1"},
			{TaskID: id + "-t1", MemberID: id + "-m2"},
			{TaskID: id + "-t2", MemberID: id + "-m2"},
		},
	}
}

func TestSaveAndLoadProject(t *testing.T) {
	db := openTestDB(t)
	rec := sampleProject("a", 1)

	require.NoError(t, db.SaveProject(rec))

	loaded, err := db.LoadProjects()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	require.Equal(t, rec, loaded[0])
}

func TestSaveProjectReplacesChildren(t *testing.T) {
	db := openTestDB(t)
	rec := sampleProject("a", 1)
	require.NoError(t, db.SaveProject(rec))

	rec.Name = "Renamed"
	rec.Members = rec.Members[1:]
	rec.Members[0].Index = 1
	rec.Assignments = []models.Assignment{{TaskID: "a-t2", MemberID: "a-m2"}}
	rec.Tasks[0].Requirements = []string{"final"}
	require.NoError(t, db.SaveProject(rec))

	loaded, err := db.LoadProjects()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	require.Equal(t, rec, loaded[0])
}

func TestDeleteProjectCascades(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.SaveProject(sampleProject("a", 1)))
	require.NoError(t, db.SaveProject(sampleProject("b", 2)))

	require.NoError(t, db.DeleteProject("a"))

	count, err := db.ProjectCount()
	require.NoError(t, err)
	require.Equal(t, 1, count)

	var orphans int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM assignments WHERE task_id LIKE 'a-%'`).Scan(&orphans))
	require.Zero(t, orphans)
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM task_requirements WHERE task_id LIKE 'a-%'`).Scan(&orphans))
	require.Zero(t, orphans)
}

func TestReorderProjects(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.SaveProject(sampleProject("a", 1)))
	require.NoError(t, db.SaveProject(sampleProject("b", 2)))

	require.NoError(t, db.ReorderProjects([]string{"b", "a"}))

	loaded, err := db.LoadProjects()
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	require.Equal(t, "b", loaded[0].ID)
	require.Equal(t, 1, loaded[0].Index)
	require.Equal(t, "a", loaded[1].ID)
}

func TestSettings(t *testing.T) {
	db := openTestDB(t)

	v, err := db.GetSetting("last_project_id")
	require.NoError(t, err)
	require.Empty(t, v)

	require.NoError(t, db.SetSetting("last_project_id", "a"))
	require.NoError(t, db.SetSetting("last_project_id", "b"))

	v, err = db.GetSetting("last_project_id")
	require.NoError(t, err)
	require.Equal(t, "b", v)
}

func TestNewCreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "archduke")
	db, err := New(dir, "archduke.db")
	require.NoError(t, err)
	require.NoError(t, db.Close())
	require.FileExists(t, filepath.Join(dir, "archduke.db"))
}
