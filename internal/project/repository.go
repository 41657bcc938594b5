package project

import (
	"strings"

	"github.com/archduke/archduke/internal/models"
)

// Repository owns the set of projects, addressed by display index.
type Repository struct {
	projects *List[*Project]
}

func NewRepository() *Repository {
	return &Repository{projects: NewList[*Project]("project")}
}

// Create adds a project named name. The name is trimmed and must not be empty.
func (r *Repository) Create(name string) (*Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalidf("Creation of Project failed. Please give the project a name!")
	}
	p := New(name)
	r.projects.Add(p)
	return p, nil
}

// Delete removes the project at index and purges its assignments. Later
// projects move up by one index.
func (r *Repository) Delete(index int) (*Project, error) {
	p, err := r.projects.Remove(index)
	if err != nil {
		return nil, err
	}
	p.purge()
	return p, nil
}

func (r *Repository) Get(index int) (*Project, error) {
	return r.projects.Get(index)
}

// ByID looks a project up by stable ID.
func (r *Repository) ByID(id string) (*Project, error) {
	p, ok := r.projects.Find(func(p *Project) bool { return p.ID() == id })
	if !ok {
		return nil, notFound("project", id)
	}
	return p, nil
}

func (r *Repository) All() []*Project { return r.projects.All() }

func (r *Repository) Len() int { return r.projects.Len() }

// Restore appends projects rebuilt from records, in record order.
func (r *Repository) Restore(records []models.ProjectRecord) {
	for _, rec := range records {
		r.projects.Add(Restore(rec))
	}
}
