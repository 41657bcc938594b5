package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/archduke/archduke/internal/models"
)

// Calendar draws the month containing now, Monday first. Days with at
// least one task due are marked with X, and the tasks due that month are
// listed under the grid.
func Calendar(rec models.ProjectRecord, now time.Time) []string {
	year, month, _ := now.Date()
	first := time.Date(year, month, 1, 0, 0, 0, 0, now.Location())
	days := first.AddDate(0, 1, -1).Day()

	due := make(map[int][]models.Task)
	for _, t := range rec.Tasks {
		if t.DueDate == nil {
			continue
		}
		y, m, d := t.DueDate.Date()
		if y == year && m == month {
			due[d] = append(due[d], t)
		}
	}

	lines := []string{
		fmt.Sprintf("%s %d", month, year),
		"Mo  Tu  We  Th  Fr  Sa  Su",
	}
	// time.Weekday starts on Sunday.
	offset := (int(first.Weekday()) + 6) % 7
	var row strings.Builder
	row.WriteString(strings.Repeat("    ", offset))
	for d := 1; d <= days; d++ {
		mark := " "
		if len(due[d]) > 0 {
			mark = "X"
		}
		fmt.Fprintf(&row, "%2d%s ", d, mark)
		if (offset+d)%7 == 0 || d == days {
			lines = append(lines, strings.TrimRight(row.String(), " "))
			row.Reset()
		}
	}

	marked := make([]int, 0, len(due))
	for d := range due {
		marked = append(marked, d)
	}
	sort.Ints(marked)
	for _, d := range marked {
		for _, t := range due[d] {
			lines = append(lines, fmt.Sprintf("%s: %d. %s", t.DueString(), t.Index, t.Name))
		}
	}
	return lines
}
