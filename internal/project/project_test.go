package project

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/archduke/archduke/internal/models"
)

func ptr[T any](v T) *T { return &v }

func setupProject(t *testing.T, members []string, tasks map[string]int) *Project {
	t.Helper()
	p := New("Demo")
	for _, name := range members {
		_, err := p.AddMember(models.Member{Name: name})
		require.NoError(t, err)
	}
	// Insert in a stable order so tests can address tasks by index.
	for _, name := range []string{"Write spec", "Review", "Ship", "Party"} {
		credit, ok := tasks[name]
		if !ok {
			continue
		}
		_, err := p.AddTask(models.Task{Name: name, Priority: 1, Credit: credit})
		require.NoError(t, err)
	}
	return p
}

func TestAddMember(t *testing.T) {
	p := New("Demo")

	m, err := p.AddMember(models.Member{Name: "  Alice  ", Email: "alice@example.com"})
	require.NoError(t, err)
	require.Equal(t, "Alice", m.Name)
	require.Equal(t, DefaultRole, m.Role)
	require.Equal(t, 1, m.Index)
	require.NotEmpty(t, m.ID)

	_, err = p.AddMember(models.Member{Name: ""})
	require.ErrorIs(t, err, ErrInvalidFormat)

	_, err = p.AddMember(models.Member{Name: "Bob", Email: "not-an-email"})
	require.ErrorIs(t, err, ErrInvalidFormat)
	require.Equal(t, 1, p.NumMembers())
}

func TestEditMember_LeavesNilFieldsUnchanged(t *testing.T) {
	p := New("Demo")
	_, err := p.AddMember(models.Member{Name: "Alice", Phone: "123", Email: "a@b.com", Role: "lead"})
	require.NoError(t, err)

	m, err := p.EditMember(1, MemberUpdate{Phone: ptr("999")})
	require.NoError(t, err)
	require.Equal(t, "Alice", m.Name)
	require.Equal(t, "999", m.Phone)
	require.Equal(t, "a@b.com", m.Email)
	require.Equal(t, "lead", m.Role)

	_, err = p.EditMember(1, MemberUpdate{Email: ptr("nope")})
	require.ErrorIs(t, err, ErrInvalidFormat)

	m, err = p.Member(1)
	require.NoError(t, err)
	require.Equal(t, "a@b.com", m.Email)

	m, err = p.EditMember(1, MemberUpdate{Email: ptr("  c@d.org ")})
	require.NoError(t, err)
	require.Equal(t, "c@d.org", m.Email)

	_, err = p.EditMember(2, MemberUpdate{Name: ptr("x")})
	require.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestAddTask(t *testing.T) {
	p := New("Demo")

	task, err := p.AddTask(models.Task{Name: "Write spec", Priority: 2})
	require.NoError(t, err)
	require.Equal(t, models.StateOpen, task.State)
	require.Equal(t, 1, task.Index)
	require.Zero(t, task.Credit)

	_, err = p.AddTask(models.Task{Name: " "})
	require.ErrorIs(t, err, ErrInvalidFormat)

	_, err = p.AddTask(models.Task{Name: "x", Credit: -1})
	require.ErrorIs(t, err, ErrInvalidFormat)

	task, err = p.AddTask(models.Task{Name: "Review", Requirements: []string{"", " tests ", "  "}})
	require.NoError(t, err)
	require.Equal(t, []string{"tests"}, task.Requirements)
}

func TestEditTask(t *testing.T) {
	p := New("Demo")
	due := time.Date(2021, 3, 4, 0, 0, 0, 0, time.UTC)
	_, err := p.AddTask(models.Task{Name: "a", Priority: 1, Credit: 10, DueDate: &due})
	require.NoError(t, err)

	done := models.StateDone
	task, err := p.EditTask(1, TaskUpdate{State: &done, Priority: ptr(5)})
	require.NoError(t, err)
	require.Equal(t, models.StateDone, task.State)
	require.Equal(t, 5, task.Priority)
	require.Equal(t, 10, task.Credit)
	require.Equal(t, due, *task.DueDate)

	_, err = p.EditTask(1, TaskUpdate{Credit: ptr(-3)})
	require.ErrorIs(t, err, ErrInvalidFormat)
	task, err = p.Task(1)
	require.NoError(t, err)
	require.Equal(t, 10, task.Credit)
}

func TestTaskCopiesAreIndependent(t *testing.T) {
	p := New("Demo")
	_, err := p.AddTask(models.Task{Name: "a", Requirements: []string{"r1"}})
	require.NoError(t, err)

	task, err := p.Task(1)
	require.NoError(t, err)
	task.Requirements[0] = "changed"

	again, err := p.Task(1)
	require.NoError(t, err)
	require.Equal(t, []string{"r1"}, again.Requirements)
}

func TestEditTaskRequirements(t *testing.T) {
	p := New("Demo")
	_, err := p.AddTask(models.Task{Name: "a", Requirements: []string{"r1", "r2", "r3"}})
	require.NoError(t, err)

	problems, err := p.EditTaskRequirements(1, RequirementsUpdate{
		Remove: []int{1, 3, 7},
		Add:    []string{"r4", "  "},
	})
	require.NoError(t, err)
	require.Len(t, problems, 1)

	task, err := p.Task(1)
	require.NoError(t, err)
	require.Equal(t, []string{"r2", "r4"}, task.Requirements)

	_, err = p.EditTaskRequirements(2, RequirementsUpdate{})
	require.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestRemoveMemberCascades(t *testing.T) {
	p := setupProject(t, []string{"Alice", "Bob"}, map[string]int{"Write spec": 10, "Review": 4})
	_, err := p.CreateAssignment(1, 1)
	require.NoError(t, err)
	_, err = p.CreateAssignment(2, 1)
	require.NoError(t, err)
	_, err = p.CreateAssignment(1, 2)
	require.NoError(t, err)

	removed, err := p.RemoveMember(1)
	require.NoError(t, err)
	require.Equal(t, "Alice", removed.Name)

	for _, pair := range p.Snapshot().Assignments {
		require.NotEqual(t, removed.ID, pair.MemberID)
	}
	bob, err := p.Member(1)
	require.NoError(t, err)
	require.Equal(t, "Bob", bob.Name)

	tasks, err := p.TasksForMember(1)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.Equal(t, "Write spec", tasks[0].Name)

	members, err := p.MembersForTask(2)
	require.NoError(t, err)
	require.Empty(t, members)
}

func TestRemoveTaskCascades(t *testing.T) {
	p := setupProject(t, []string{"Alice"}, map[string]int{"Write spec": 10, "Review": 4})
	_, err := p.CreateAssignment(1, 1)
	require.NoError(t, err)

	removed, err := p.RemoveTask(1)
	require.NoError(t, err)
	require.Equal(t, "Write spec", removed.Name)

	tasks, err := p.TasksForMember(1)
	require.NoError(t, err)
	require.Empty(t, tasks)

	task, err := p.Task(1)
	require.NoError(t, err)
	require.Equal(t, "Review", task.Name)
	require.Equal(t, 1, task.Index)
}

func TestAssignmentOutcomes(t *testing.T) {
	p := setupProject(t, []string{"Alice"}, map[string]int{"Write spec": 10})

	out, err := p.CreateAssignment(1, 1)
	require.NoError(t, err)
	require.Equal(t, Assigned, out)

	out, err = p.CreateAssignment(1, 1)
	require.NoError(t, err)
	require.Equal(t, AlreadyAssigned, out)

	ok, err := p.ContainsAssignment(1, 1)
	require.NoError(t, err)
	require.True(t, ok)

	out, err = p.RemoveAssignment(1, 1)
	require.NoError(t, err)
	require.Equal(t, Unassigned, out)

	out, err = p.RemoveAssignment(1, 1)
	require.NoError(t, err)
	require.Equal(t, NotAssigned, out)

	_, err = p.CreateAssignment(2, 1)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = p.CreateAssignment(1, 5)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestApplyAssignments(t *testing.T) {
	p := setupProject(t, []string{"Alice", "Bob"}, map[string]int{"Write spec": 10, "Review": 4})
	_, err := p.CreateAssignment(2, 1)
	require.NoError(t, err)

	report := p.ApplyAssignments(AssignmentRequest{
		TaskIndexes: []int{1, 2, 9},
		Assign:      []int{1},
		Unassign:    []int{2},
	})

	require.Equal(t, []string{
		"For task 1 (Write spec):",
		"Assigned to member 1 (Alice).",
		"Task cannot be unassigned from member 2 (Bob) as it was not assigned in the first place!",
		"For task 2 (Review):",
		"Task has already been assigned to member 1 (Alice).",
		"Task cannot be unassigned from member 2 (Bob) as it was not assigned in the first place!",
	}, report.Lines)
	require.Len(t, report.Errors, 1)

	ok, err := p.ContainsAssignment(1, 1)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestApplyAssignments_Conflict(t *testing.T) {
	p := setupProject(t, []string{"Alice", "Bob"}, map[string]int{"Write spec": 10})

	report := p.ApplyAssignments(AssignmentRequest{
		TaskIndexes: []int{1},
		Assign:      []int{1, 2},
		Unassign:    []int{1},
	})

	require.Equal(t, []string{"Cannot assign and unassign task to member 1 (Alice) at the same time"}, report.Errors)
	require.Equal(t, []string{"For task 1 (Write spec):", "Assigned to member 2 (Bob)."}, report.Lines)

	ok, err := p.ContainsAssignment(1, 1)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestCredits(t *testing.T) {
	tests := []struct {
		name      string
		members   []string
		tasks     map[string]int
		assign    [][2]int
		done      []int
		wantTotal []float64
		wantDone  []float64
		wantPct   []int
	}{
		{
			name:      "no assignments",
			members:   []string{"Alice"},
			tasks:     map[string]int{"Write spec": 10},
			wantTotal: []float64{0},
			wantDone:  []float64{0},
			wantPct:   []int{0},
		},
		{
			name:      "shared task splits credit",
			members:   []string{"Alice", "Bob"},
			tasks:     map[string]int{"Write spec": 100},
			assign:    [][2]int{{1, 1}, {1, 2}},
			wantTotal: []float64{50, 50},
			wantDone:  []float64{0, 0},
			wantPct:   []int{0, 0},
		},
		{
			name:      "done counts toward progress",
			members:   []string{"Alice", "Bob"},
			tasks:     map[string]int{"Write spec": 100, "Review": 100},
			assign:    [][2]int{{1, 1}, {1, 2}, {2, 1}},
			done:      []int{1},
			wantTotal: []float64{150, 50},
			wantDone:  []float64{50, 50},
			wantPct:   []int{30, 100},
		},
		{
			name:      "zero credit tasks",
			members:   []string{"Alice"},
			tasks:     map[string]int{"Write spec": 0},
			assign:    [][2]int{{1, 1}},
			done:      []int{1},
			wantTotal: []float64{0},
			wantDone:  []float64{0},
			wantPct:   []int{0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := setupProject(t, tt.members, tt.tasks)
			for _, a := range tt.assign {
				_, err := p.CreateAssignment(a[0], a[1])
				require.NoError(t, err)
			}
			done := models.StateDone
			for _, i := range tt.done {
				_, err := p.EditTask(i, TaskUpdate{State: &done})
				require.NoError(t, err)
			}

			credits := p.Credits()
			require.Len(t, credits, len(tt.members))
			for i, c := range credits {
				require.InDelta(t, tt.wantTotal[i], c.Total, 1e-9, c.Member.Name)
				require.InDelta(t, tt.wantDone[i], c.Done, 1e-9, c.Member.Name)
				require.Equal(t, tt.wantPct[i], c.Percent, c.Member.Name)
				require.Equal(t, c.Percent, c.Units*5)
				require.LessOrEqual(t, c.Units, ProgressScale)
			}
		})
	}
}

func TestCredits_FollowCurrentAssignees(t *testing.T) {
	p := setupProject(t, []string{"Alice", "Bob"}, map[string]int{"Write spec": 100})
	_, err := p.CreateAssignment(1, 1)
	require.NoError(t, err)
	_, err = p.CreateAssignment(1, 2)
	require.NoError(t, err)

	_, err = p.RemoveMember(2)
	require.NoError(t, err)

	credits := p.Credits()
	require.Len(t, credits, 1)
	require.InDelta(t, 100.0, credits[0].Total, 1e-9)
}

func TestEndToEnd(t *testing.T) {
	repo := NewRepository()
	p, err := repo.Create("Demo")
	require.NoError(t, err)

	_, err = p.AddMember(models.Member{Name: "Alice"})
	require.NoError(t, err)
	_, err = p.AddTask(models.Task{Name: "Write spec", Priority: 1, Credit: 100})
	require.NoError(t, err)

	out, err := p.CreateAssignment(1, 1)
	require.NoError(t, err)
	require.Equal(t, Assigned, out)

	ok, err := p.ContainsAssignment(1, 1)
	require.NoError(t, err)
	require.True(t, ok)

	credits := p.Credits()
	require.Len(t, credits, 1)
	require.InDelta(t, 100.0, credits[0].Total, 1e-9)
	require.Zero(t, credits[0].Percent)

	done := models.StateDone
	_, err = p.EditTask(1, TaskUpdate{State: &done})
	require.NoError(t, err)

	credits = p.Credits()
	require.InDelta(t, 100.0, credits[0].Done, 1e-9)
	require.Equal(t, 100, credits[0].Percent)
	require.Equal(t, ProgressScale, credits[0].Units)
}

func TestReminders(t *testing.T) {
	p := New("Demo")

	r, err := p.AddReminder(models.Reminder{Name: "standup", Category: "meeting"})
	require.NoError(t, err)
	require.Equal(t, "MEETING", r.Category)
	require.False(t, r.Done)

	r, err = p.AddReminder(models.Reminder{Name: "lunch"})
	require.NoError(t, err)
	require.Equal(t, DefaultCategory, r.Category)

	_, err = p.AddReminder(models.Reminder{Name: ""})
	require.ErrorIs(t, err, ErrInvalidFormat)

	r, err = p.MarkReminder(1, true)
	require.NoError(t, err)
	require.True(t, r.Done)
	r, err = p.MarkReminder(1, false)
	require.NoError(t, err)
	require.False(t, r.Done)

	r, err = p.EditReminder(2, ReminderUpdate{Remark: ptr("at noon"), Category: ptr("")})
	require.NoError(t, err)
	require.Equal(t, "lunch", r.Name)
	require.Equal(t, "at noon", r.Remark)
	require.Equal(t, DefaultCategory, r.Category)

	removed, err := p.RemoveReminder(1)
	require.NoError(t, err)
	require.Equal(t, "standup", removed.Name)

	remaining := p.Reminders()
	require.Len(t, remaining, 1)
	require.Equal(t, 1, remaining[0].Index)

	_, err = p.Reminder(2)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestSnapshotRestore(t *testing.T) {
	p := setupProject(t, []string{"Alice", "Bob"}, map[string]int{"Write spec": 10, "Review": 4})
	_, err := p.CreateAssignment(1, 2)
	require.NoError(t, err)
	_, err = p.AddReminder(models.Reminder{Name: "standup"})
	require.NoError(t, err)

	rec := p.Snapshot()
	restored := Restore(rec)

	require.Equal(t, p.ID(), restored.ID())
	require.Equal(t, rec, restored.Snapshot())
}

func TestRestore_DropsDanglingAssignments(t *testing.T) {
	rec := models.ProjectRecord{
		ID:      "p1",
		Name:    "Demo",
		Members: []models.Member{{ID: "m1", Name: "Alice"}},
		Tasks:   []models.Task{{ID: "t1", Name: "Write spec"}},
		Assignments: []models.Assignment{
			{TaskID: "t1", MemberID: "m1"},
			{TaskID: "t1", MemberID: "ghost"},
			{TaskID: "gone", MemberID: "m1"},
		},
	}

	p := Restore(rec)
	snap := p.Snapshot()

	require.Equal(t, []models.Assignment{{TaskID: "t1", MemberID: "m1"}}, snap.Assignments)
	require.Equal(t, DefaultRole, snap.Members[0].Role)
	require.Equal(t, models.StateOpen, snap.Tasks[0].State)
	require.Equal(t, 1, snap.Members[0].Index)
}
