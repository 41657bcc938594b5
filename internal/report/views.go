package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/archduke/archduke/internal/models"
	"github.com/archduke/archduke/internal/project"
)

// ViewByMember lists, for each member index, the names of the tasks
// assigned to that member. Indices must already be valid.
func ViewByMember(rec models.ProjectRecord, indexes []int) []string {
	var lines []string
	for _, i := range indexes {
		if i < 1 || i > len(rec.Members) {
			continue
		}
		m := rec.Members[i-1]
		lines = append(lines, fmt.Sprintf("%d. %s:", i, m.Name))
		tasks := assigned(rec, m.ID)
		if len(tasks) == 0 {
			lines = append(lines, "   No tasks assigned.")
			continue
		}
		for _, t := range tasks {
			lines = append(lines, fmt.Sprintf("   - %d. %s", t.Index, t.Name))
		}
	}
	return lines
}

// ViewByTask lists, for each task index, the names of its assignees.
func ViewByTask(rec models.ProjectRecord, indexes []int) []string {
	var lines []string
	for _, i := range indexes {
		if i < 1 || i > len(rec.Tasks) {
			continue
		}
		t := rec.Tasks[i-1]
		lines = append(lines, fmt.Sprintf("%d. %s:", i, t.Name))
		members := assignees(rec, t.ID)
		if len(members) == 0 {
			lines = append(lines, "   No members assigned.")
			continue
		}
		for _, m := range members {
			lines = append(lines, fmt.Sprintf("   - %d. %s", m.Index, m.Name))
		}
	}
	return lines
}

// MemberLines lists every member with their contact details.
func MemberLines(rec models.ProjectRecord) []string {
	if len(rec.Members) == 0 {
		return []string{"There are no members in this project."}
	}
	var lines []string
	for _, m := range rec.Members {
		lines = append(lines,
			fmt.Sprintf("%d. %s", m.Index, m.Name),
			"   - Role: "+m.Role,
			"   - Phone: "+orDash(m.Phone),
			"   - Email: "+orDash(m.Email),
		)
	}
	return lines
}

// CreditLines renders each member's done credit and a progress bar.
func CreditLines(credits []project.MemberCredit) []string {
	if len(credits) == 0 {
		return []string{"There are no members in this project."}
	}
	var lines []string
	for i, c := range credits {
		lines = append(lines,
			fmt.Sprintf("%d. %s: %.1f credits", i+1, c.Member.Name, c.Done),
			fmt.Sprintf("   Progress: %s (%d%%)", ProgressBar(c.Units), c.Percent),
		)
	}
	return lines
}

// ProgressBar draws units filled cells out of project.ProgressScale.
func ProgressBar(units int) string {
	units = max(0, min(units, project.ProgressScale))
	return strings.Repeat("#", units) + strings.Repeat(".", project.ProgressScale-units)
}

// RequirementLines numbers the requirements of t.
func RequirementLines(t models.Task) []string {
	if len(t.Requirements) == 0 {
		return []string{"This task has no specific requirements."}
	}
	lines := make([]string, 0, len(t.Requirements))
	for i, r := range t.Requirements {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, r))
	}
	return lines
}

// GroupReminders buckets reminders by category. Categories come out in
// alphabetical order and reminders keep their display order.
func GroupReminders(reminders []models.Reminder) ([]string, map[string][]models.Reminder) {
	groups := make(map[string][]models.Reminder)
	for _, r := range reminders {
		groups[r.Category] = append(groups[r.Category], r)
	}
	categories := make([]string, 0, len(groups))
	for c := range groups {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	return categories, groups
}

// ReminderLines renders reminders grouped by category.
func ReminderLines(reminders []models.Reminder) []string {
	if len(reminders) == 0 {
		return []string{"There are no reminders in this project."}
	}
	categories, groups := GroupReminders(reminders)
	var lines []string
	for _, c := range categories {
		lines = append(lines, c+":")
		for _, r := range groups[c] {
			mark := " "
			if r.Done {
				mark = "X"
			}
			due := "--"
			if r.DueDate != nil {
				due = r.DueDate.Format(models.DisplayDateLayout)
			}
			lines = append(lines, fmt.Sprintf("   %d. [%s] %s | Due: %s", r.Index, mark, r.Name, due))
			if r.Remark != "" {
				lines = append(lines, "      "+r.Remark)
			}
		}
	}
	return lines
}

func orDash(s string) string {
	if s == "" {
		return "--"
	}
	return s
}
