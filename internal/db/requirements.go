package db

import "fmt"

func insertRequirements(q querier, taskID string, reqs []string) error {
	for i, content := range reqs {
		_, err := q.Exec(`
			INSERT INTO task_requirements (task_id, position, content) VALUES (?, ?, ?)
		`, taskID, i+1, content)
		if err != nil {
			return fmt.Errorf("insert requirement %d of task %s: %w", i+1, taskID, err)
		}
	}
	return nil
}

// taskRequirements returns the requirements of a task in their stored order
func taskRequirements(q querier, taskID string) ([]string, error) {
	rows, err := q.Query(`
		SELECT content
		FROM task_requirements
		WHERE task_id = ?
		ORDER BY position ASC
	`, taskID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reqs []string
	for rows.Next() {
		var content string
		if err := rows.Scan(&content); err != nil {
			return nil, err
		}
		reqs = append(reqs, content)
	}
	return reqs, rows.Err()
}
