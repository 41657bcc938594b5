package project

import (
	"strings"

	"github.com/google/uuid"

	"github.com/archduke/archduke/internal/models"
)

// AddReminder validates r, gives it a fresh ID and appends it.
func (p *Project) AddReminder(r models.Reminder) (models.Reminder, error) {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return models.Reminder{}, invalidf("Reminder name cannot be empty!")
	}
	r = r.Clone()
	r.ID = uuid.NewString()
	r.Remark = strings.TrimSpace(r.Remark)
	r.Category = normalizeCategory(r.Category)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.reminders.Add(&r)
	return r.Clone(), nil
}

func (p *Project) EditReminder(index int, u ReminderUpdate) (models.Reminder, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.reminders.Update(index, u.apply); err != nil {
		return models.Reminder{}, err
	}
	r, _ := p.reminders.Get(index)
	return r.Clone(), nil
}

// MarkReminder sets the done flag of the reminder at index.
func (p *Project) MarkReminder(index int, done bool) (models.Reminder, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	err := p.reminders.Update(index, func(r *models.Reminder) error {
		r.Done = done
		return nil
	})
	if err != nil {
		return models.Reminder{}, err
	}
	r, _ := p.reminders.Get(index)
	return r.Clone(), nil
}

func (p *Project) RemoveReminder(index int) (models.Reminder, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	r, err := p.reminders.Remove(index)
	if err != nil {
		return models.Reminder{}, err
	}
	return r.Clone(), nil
}

func (p *Project) Reminder(index int) (models.Reminder, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	r, err := p.reminders.Get(index)
	if err != nil {
		return models.Reminder{}, err
	}
	return r.Clone(), nil
}

func (p *Project) Reminders() []models.Reminder {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]models.Reminder, 0, p.reminders.Len())
	for _, r := range p.reminders.All() {
		out = append(out, r.Clone())
	}
	return out
}

func (p *Project) NumReminders() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.reminders.Len()
}
