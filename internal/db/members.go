package db

import (
	"fmt"

	"github.com/archduke/archduke/internal/models"
)

func insertMembers(q querier, projectID string, members []models.Member) error {
	for _, m := range members {
		_, err := q.Exec(`
			INSERT INTO members (id, project_id, position, name, phone, email, role)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, m.ID, projectID, m.Index, m.Name, m.Phone, m.Email, m.Role)
		if err != nil {
			return fmt.Errorf("insert member %s: %w", m.ID, err)
		}
	}
	return nil
}

func listMembers(q querier, projectID string) ([]models.Member, error) {
	rows, err := q.Query(`
		SELECT id, position, name, phone, email, role
		FROM members
		WHERE project_id = ?
		ORDER BY position
	`, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []models.Member
	for rows.Next() {
		var m models.Member
		if err := rows.Scan(&m.ID, &m.Index, &m.Name, &m.Phone, &m.Email, &m.Role); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}
