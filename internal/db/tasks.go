package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/archduke/archduke/internal/models"
)

func insertTasks(q querier, projectID string, tasks []models.Task) error {
	for _, t := range tasks {
		_, err := q.Exec(`
			INSERT INTO tasks (id, project_id, position, name, priority, due_date, credit, state)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, t.ID, projectID, t.Index, t.Name, t.Priority, formatDate(t.DueDate), t.Credit, string(t.State))
		if err != nil {
			return fmt.Errorf("insert task %s: %w", t.ID, err)
		}
		if err := insertRequirements(q, t.ID, t.Requirements); err != nil {
			return err
		}
	}
	return nil
}

// listTasks returns the tasks of a project in position order, with their
// requirements
func listTasks(q querier, projectID string) ([]models.Task, error) {
	rows, err := q.Query(`
		SELECT id, position, name, priority, due_date, credit, state
		FROM tasks
		WHERE project_id = ?
		ORDER BY position
	`, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		var (
			t     models.Task
			due   sql.NullString
			state string
		)
		if err := rows.Scan(&t.ID, &t.Index, &t.Name, &t.Priority, &due, &t.Credit, &state); err != nil {
			return nil, err
		}
		if t.DueDate, err = parseDate(due); err != nil {
			return nil, fmt.Errorf("task %s: %w", t.ID, err)
		}
		t.State = models.TaskState(state)
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Load requirements for each task
	for i := range tasks {
		reqs, err := taskRequirements(q, tasks[i].ID)
		if err != nil {
			return nil, err
		}
		tasks[i].Requirements = reqs
	}
	return tasks, nil
}

func formatDate(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format(dateLayout)
}

func parseDate(s sql.NullString) (*time.Time, error) {
	if !s.Valid || s.String == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
