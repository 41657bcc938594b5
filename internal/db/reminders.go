package db

import (
	"database/sql"
	"fmt"

	"github.com/archduke/archduke/internal/models"
)

func insertReminders(q querier, projectID string, reminders []models.Reminder) error {
	for _, r := range reminders {
		_, err := q.Exec(`
			INSERT INTO reminders (id, project_id, position, name, remark, due_date, category, done)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, r.ID, projectID, r.Index, r.Name, r.Remark, formatDate(r.DueDate), r.Category, r.Done)
		if err != nil {
			return fmt.Errorf("insert reminder %s: %w", r.ID, err)
		}
	}
	return nil
}

func listReminders(q querier, projectID string) ([]models.Reminder, error) {
	rows, err := q.Query(`
		SELECT id, position, name, remark, due_date, category, done
		FROM reminders
		WHERE project_id = ?
		ORDER BY position
	`, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reminders []models.Reminder
	for rows.Next() {
		var (
			r   models.Reminder
			due sql.NullString
		)
		if err := rows.Scan(&r.ID, &r.Index, &r.Name, &r.Remark, &due, &r.Category, &r.Done); err != nil {
			return nil, err
		}
		if r.DueDate, err = parseDate(due); err != nil {
			return nil, fmt.Errorf("reminder %s: %w", r.ID, err)
		}
		reminders = append(reminders, r)
	}
	return reminders, rows.Err()
}
