package db

import (
	"fmt"

	"github.com/archduke/archduke/internal/models"
)

func insertAssignments(q querier, pairs []models.Assignment) error {
	for _, a := range pairs {
		_, err := q.Exec(`
			INSERT OR IGNORE INTO assignments (task_id, member_id) VALUES (?, ?)
		`, a.TaskID, a.MemberID)
		if err != nil {
			return fmt.Errorf("insert assignment %s/%s: %w", a.TaskID, a.MemberID, err)
		}
	}
	return nil
}

// listAssignments returns every task/member pair of a project
func listAssignments(q querier, projectID string) ([]models.Assignment, error) {
	rows, err := q.Query(`
		SELECT a.task_id, a.member_id
		FROM assignments a
		JOIN tasks t ON t.id = a.task_id
		WHERE t.project_id = ?
		ORDER BY a.task_id, a.member_id
	`, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pairs []models.Assignment
	for rows.Next() {
		var a models.Assignment
		if err := rows.Scan(&a.TaskID, &a.MemberID); err != nil {
			return nil, err
		}
		pairs = append(pairs, a)
	}
	return pairs, rows.Err()
}
