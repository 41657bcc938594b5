package db

import (
	"fmt"

	"github.com/archduke/archduke/internal/models"
)

// SaveProject writes a full project snapshot. Rows owned by the project
// are replaced, so the stored state always matches rec.
func (db *DB) SaveProject(rec models.ProjectRecord) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO projects (id, position, name) VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			position = excluded.position,
			name = excluded.name,
			updated_at = CURRENT_TIMESTAMP
	`, rec.ID, rec.Index, rec.Name)
	if err != nil {
		return fmt.Errorf("save project %s: %w", rec.ID, err)
	}

	// Children cascade to requirements and assignments.
	for _, table := range []string{"members", "tasks", "reminders"} {
		if _, err := tx.Exec("DELETE FROM "+table+" WHERE project_id = ?", rec.ID); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	if err := insertMembers(tx, rec.ID, rec.Members); err != nil {
		return err
	}
	if err := insertTasks(tx, rec.ID, rec.Tasks); err != nil {
		return err
	}
	if err := insertReminders(tx, rec.ID, rec.Reminders); err != nil {
		return err
	}
	if err := insertAssignments(tx, rec.Assignments); err != nil {
		return err
	}
	return tx.Commit()
}

// LoadProjects returns every stored project in position order
func (db *DB) LoadProjects() ([]models.ProjectRecord, error) {
	rows, err := db.Query("SELECT id, position, name FROM projects ORDER BY position, created_at")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []models.ProjectRecord
	for rows.Next() {
		var p models.ProjectRecord
		if err := rows.Scan(&p.ID, &p.Index, &p.Name); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Load children for each project
	for i := range projects {
		if err := db.loadChildren(&projects[i]); err != nil {
			return nil, fmt.Errorf("load project %s: %w", projects[i].ID, err)
		}
	}
	return projects, nil
}

func (db *DB) loadChildren(p *models.ProjectRecord) error {
	var err error
	if p.Members, err = listMembers(db, p.ID); err != nil {
		return err
	}
	if p.Tasks, err = listTasks(db, p.ID); err != nil {
		return err
	}
	if p.Reminders, err = listReminders(db, p.ID); err != nil {
		return err
	}
	p.Assignments, err = listAssignments(db, p.ID)
	return err
}

// DeleteProject deletes a project and everything it owns
func (db *DB) DeleteProject(id string) error {
	_, err := db.Exec("DELETE FROM projects WHERE id = ?", id)
	return err
}

// ReorderProjects stores the position of each project ID, 1-based
func (db *DB) ReorderProjects(ids []string) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for i, id := range ids {
		if _, err := tx.Exec("UPDATE projects SET position = ? WHERE id = ?", i+1, id); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// ProjectCount returns the number of projects
func (db *DB) ProjectCount() (int, error) {
	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM projects").Scan(&count)
	return count, err
}
