package project

import (
	"regexp"
	"strings"
	"time"

	"github.com/archduke/archduke/internal/models"
)

// DefaultRole is given to members added without one.
const DefaultRole = "member"

// DefaultCategory is given to reminders added without one.
const DefaultCategory = "DEFAULT"

var emailRegex = regexp.MustCompile(`(?i)^[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,6}$`)

// MemberUpdate is a partial edit of a member. Nil fields are left unchanged.
type MemberUpdate struct {
	Name  *string
	Phone *string
	Email *string
	Role  *string
}

func (u MemberUpdate) validate() error {
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		return invalidf("Name cannot be empty!")
	}
	if u.Email != nil {
		email := strings.TrimSpace(*u.Email)
		if email != "" && !emailRegex.MatchString(email) {
			return invalidf("Email address %q is not a valid email address!", email)
		}
	}
	return nil
}

func (u MemberUpdate) apply(m *models.Member) error {
	if err := u.validate(); err != nil {
		return err
	}
	if u.Name != nil {
		m.Name = strings.TrimSpace(*u.Name)
	}
	if u.Phone != nil {
		m.Phone = strings.TrimSpace(*u.Phone)
	}
	if u.Email != nil {
		m.Email = strings.TrimSpace(*u.Email)
	}
	if u.Role != nil {
		role := strings.TrimSpace(*u.Role)
		if role == "" {
			role = DefaultRole
		}
		m.Role = role
	}
	return nil
}

// TaskUpdate is a partial edit of a task. Nil fields are left unchanged.
type TaskUpdate struct {
	Name     *string
	Priority *int
	DueDate  *time.Time
	Credit   *int
	State    *models.TaskState
}

func (u TaskUpdate) validate() error {
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		return invalidf("Task name cannot be empty!")
	}
	if u.Credit != nil && *u.Credit < 0 {
		return invalidf("Task credit cannot be negative, got %d.", *u.Credit)
	}
	return nil
}

func (u TaskUpdate) apply(t *models.Task) error {
	if err := u.validate(); err != nil {
		return err
	}
	if u.Name != nil {
		t.Name = strings.TrimSpace(*u.Name)
	}
	if u.Priority != nil {
		t.Priority = *u.Priority
	}
	if u.DueDate != nil {
		d := *u.DueDate
		t.DueDate = &d
	}
	if u.Credit != nil {
		t.Credit = *u.Credit
	}
	if u.State != nil {
		t.State = *u.State
	}
	return nil
}

// RequirementsUpdate removes requirements by 1-based index, then appends Add.
type RequirementsUpdate struct {
	Remove []int
	Add    []string
}

// ReminderUpdate is a partial edit of a reminder. Nil fields are left unchanged.
type ReminderUpdate struct {
	Name     *string
	Remark   *string
	DueDate  *time.Time
	Category *string
}

func (u ReminderUpdate) apply(r *models.Reminder) error {
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		return invalidf("Reminder name cannot be empty!")
	}
	if u.Name != nil {
		r.Name = strings.TrimSpace(*u.Name)
	}
	if u.Remark != nil {
		r.Remark = strings.TrimSpace(*u.Remark)
	}
	if u.DueDate != nil {
		d := *u.DueDate
		r.DueDate = &d
	}
	if u.Category != nil {
		r.Category = normalizeCategory(*u.Category)
	}
	return nil
}

func normalizeCategory(c string) string {
	c = strings.ToUpper(strings.TrimSpace(c))
	if c == "" {
		return DefaultCategory
	}
	return c
}
