package models

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the layout accepted for due dates on the command line
const DateLayout = "2/1/2006"

// DisplayDateLayout is the layout used when printing due dates
const DisplayDateLayout = "02 Jan 2006"

// TaskState is the workflow state of a task
type TaskState string

const (
	StateOpen  TaskState = "OPEN"
	StateTodo  TaskState = "TODO"
	StateDoing TaskState = "DOING"
	StateDone  TaskState = "DONE"
)

// ParseTaskState accepts open, todo, doing and done in any case
func ParseTaskState(s string) (TaskState, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "OPEN":
		return StateOpen, nil
	case "TODO":
		return StateTodo, nil
	case "DOING":
		return StateDoing, nil
	case "DONE":
		return StateDone, nil
	}
	return "", fmt.Errorf("unknown task state %q", s)
}

// Member represents a person working on a project
type Member struct {
	ID    string `json:"id"`
	Index int    `json:"index"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (m *Member) DisplayIndex() int     { return m.Index }
func (m *Member) SetDisplayIndex(i int) { m.Index = i }

// Task represents a unit of work inside a project
type Task struct {
	ID           string     `json:"id"`
	Index        int        `json:"index"`
	Name         string     `json:"name"`
	Priority     int        `json:"priority"`
	DueDate      *time.Time `json:"due_date,omitempty"`
	Credit       int        `json:"credit"`
	State        TaskState  `json:"state"`
	Requirements []string   `json:"requirements"`
}

func (t *Task) DisplayIndex() int     { return t.Index }
func (t *Task) SetDisplayIndex(i int) { t.Index = i }

// Clone returns a copy that shares no mutable state with t
func (t Task) Clone() Task {
	if t.DueDate != nil {
		d := *t.DueDate
		t.DueDate = &d
	}
	t.Requirements = append([]string(nil), t.Requirements...)
	return t
}

// DueString formats the due date, or "--" when there is none
func (t Task) DueString() string {
	if t.DueDate == nil {
		return "--"
	}
	return t.DueDate.Format(DisplayDateLayout)
}

// Reminder represents a dated note kept alongside a project's tasks
type Reminder struct {
	ID       string     `json:"id"`
	Index    int        `json:"index"`
	Name     string     `json:"name"`
	Remark   string     `json:"remark"`
	DueDate  *time.Time `json:"due_date,omitempty"`
	Category string     `json:"category"`
	Done     bool       `json:"done"`
}

func (r *Reminder) DisplayIndex() int     { return r.Index }
func (r *Reminder) SetDisplayIndex(i int) { r.Index = i }

// Clone returns a copy that shares no mutable state with r
func (r Reminder) Clone() Reminder {
	if r.DueDate != nil {
		d := *r.DueDate
		r.DueDate = &d
	}
	return r
}

// Assignment links a task to a member by their stable IDs
type Assignment struct {
	TaskID   string `json:"task_id"`
	MemberID string `json:"member_id"`
}

// ProjectRecord is a plain snapshot of a project and everything it owns
type ProjectRecord struct {
	ID          string       `json:"id"`
	Index       int          `json:"index"`
	Name        string       `json:"name"`
	Members     []Member     `json:"members"`
	Tasks       []Task       `json:"tasks"`
	Reminders   []Reminder   `json:"reminders"`
	Assignments []Assignment `json:"assignments"`
}
