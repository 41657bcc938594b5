// Package report turns project snapshots into ordered display lines.
// Nothing here mutates a project; every function works on a
// models.ProjectRecord copy.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/archduke/archduke/internal/models"
)

// CriterionKind selects how a task listing is ordered or filtered.
type CriterionKind int

const (
	ByIndex CriterionKind = iota
	ByName
	ByDueDate
	ByPriority
	ByCredit
	ByState
	ByAssignee
)

// Criterion is a parsed "view tasks" argument.
type Criterion struct {
	Kind  CriterionKind
	State models.TaskState
	Name  string
}

// ParseCriterion understands "", "-name", "-date", "-priority", "-credits",
// "-state STATE" and "-who NAME".
func ParseCriterion(s string) (Criterion, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Criterion{Kind: ByIndex}, nil
	}
	flag, arg, _ := strings.Cut(s, " ")
	arg = strings.TrimSpace(arg)
	switch flag {
	case "-name":
		return Criterion{Kind: ByName}, nil
	case "-date":
		return Criterion{Kind: ByDueDate}, nil
	case "-priority":
		return Criterion{Kind: ByPriority}, nil
	case "-credits":
		return Criterion{Kind: ByCredit}, nil
	case "-state":
		state, err := models.ParseTaskState(arg)
		if err != nil {
			return Criterion{}, fmt.Errorf("please give a valid state (open, todo, doing, done): %w", err)
		}
		return Criterion{Kind: ByState, State: state}, nil
	case "-who":
		if arg == "" {
			return Criterion{}, fmt.Errorf("please give the name of a member after -who")
		}
		return Criterion{Kind: ByAssignee, Name: arg}, nil
	}
	return Criterion{}, fmt.Errorf("unknown sort criterion %q", flag)
}

// SortByName orders tasks by name, ascending.
func SortByName(tasks []models.Task) []models.Task {
	out := append([]models.Task(nil), tasks...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// SortByDueDate orders dated tasks by due date, ascending. Tasks without a
// due date are left out.
func SortByDueDate(tasks []models.Task) []models.Task {
	var out []models.Task
	for _, t := range tasks {
		if t.DueDate != nil {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DueDate.Before(*out[j].DueDate) })
	return out
}

// SortByPriority orders tasks by priority, ascending.
func SortByPriority(tasks []models.Task) []models.Task {
	out := append([]models.Task(nil), tasks...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Priority < out[j].Priority })
	return out
}

// SortByCredit orders tasks by credit, descending.
func SortByCredit(tasks []models.Task) []models.Task {
	out := append([]models.Task(nil), tasks...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Credit > out[j].Credit })
	return out
}

// FilterByState keeps tasks in state, in their original order.
func FilterByState(tasks []models.Task, state models.TaskState) []models.Task {
	var out []models.Task
	for _, t := range tasks {
		if t.State == state {
			out = append(out, t)
		}
	}
	return out
}

// FilterByAssignee keeps the tasks that have a member called name among
// their assignees, sorted by task name.
func FilterByAssignee(rec models.ProjectRecord, name string) []models.Task {
	var out []models.Task
	for _, t := range rec.Tasks {
		for _, m := range assignees(rec, t.ID) {
			if m.Name == name {
				out = append(out, t)
				break
			}
		}
	}
	return SortByName(out)
}

// Entry is a task with the number it is listed under.
type Entry struct {
	Number int
	Task   models.Task
}

// Select applies c to the tasks of rec. Sorted listings are numbered by
// rank; the default and state listings keep display indices.
func Select(rec models.ProjectRecord, c Criterion) []Entry {
	var (
		tasks  []models.Task
		ranked = true
	)
	switch c.Kind {
	case ByName:
		tasks = SortByName(rec.Tasks)
	case ByDueDate:
		tasks = SortByDueDate(rec.Tasks)
	case ByPriority:
		tasks = SortByPriority(rec.Tasks)
	case ByCredit:
		tasks = SortByCredit(rec.Tasks)
	case ByState:
		tasks, ranked = FilterByState(rec.Tasks, c.State), false
	case ByAssignee:
		tasks = FilterByAssignee(rec, c.Name)
	default:
		tasks, ranked = rec.Tasks, false
	}

	entries := make([]Entry, 0, len(tasks))
	for i, t := range tasks {
		n := t.Index
		if ranked {
			n = i + 1
		}
		entries = append(entries, Entry{Number: n, Task: t})
	}
	return entries
}

// TaskDetails is the one-line summary of a task.
func TaskDetails(t models.Task) string {
	return fmt.Sprintf("%s | Priority: %d | Due: %s | Credit: %d | State: %s",
		t.Name, t.Priority, t.DueString(), t.Credit, t.State)
}

// TaskLines lists the tasks of rec selected by c. Each task is followed by
// its assignees when it has any.
func TaskLines(rec models.ProjectRecord, c Criterion) []string {
	entries := Select(rec, c)
	if len(entries) == 0 {
		if len(rec.Tasks) == 0 {
			return []string{"There are no tasks in this project."}
		}
		return []string{"Currently there are no tasks with the specified attribute."}
	}
	var lines []string
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("%d. %s", e.Number, TaskDetails(e.Task)))
		if names := memberNames(assignees(rec, e.Task.ID)); len(names) > 0 {
			lines = append(lines, "   - Assigned to: "+strings.Join(names, ", "))
		}
	}
	return lines
}

// assignees returns the members assigned to taskID in display order.
func assignees(rec models.ProjectRecord, taskID string) []models.Member {
	ids := make(map[string]bool)
	for _, a := range rec.Assignments {
		if a.TaskID == taskID {
			ids[a.MemberID] = true
		}
	}
	var out []models.Member
	for _, m := range rec.Members {
		if ids[m.ID] {
			out = append(out, m)
		}
	}
	return out
}

// assigned returns the tasks assigned to memberID in display order.
func assigned(rec models.ProjectRecord, memberID string) []models.Task {
	ids := make(map[string]bool)
	for _, a := range rec.Assignments {
		if a.MemberID == memberID {
			ids[a.TaskID] = true
		}
	}
	var out []models.Task
	for _, t := range rec.Tasks {
		if ids[t.ID] {
			out = append(out, t)
		}
	}
	return out
}

func memberNames(members []models.Member) []string {
	names := make([]string, 0, len(members))
	for _, m := range members {
		names = append(names, m.Name)
	}
	return names
}
