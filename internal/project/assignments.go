package project

import (
	"fmt"

	"github.com/archduke/archduke/internal/models"
)

// CreateAssignment assigns the task at taskIndex to the member at memberIndex.
func (p *Project) CreateAssignment(taskIndex, memberIndex int) (Outcome, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	t, m, err := p.resolvePair(taskIndex, memberIndex)
	if err != nil {
		return 0, err
	}
	return p.ledger.Assign(t.ID, m.ID), nil
}

// RemoveAssignment unassigns the task at taskIndex from the member at memberIndex.
func (p *Project) RemoveAssignment(taskIndex, memberIndex int) (Outcome, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	t, m, err := p.resolvePair(taskIndex, memberIndex)
	if err != nil {
		return 0, err
	}
	return p.ledger.Unassign(t.ID, m.ID), nil
}

func (p *Project) ContainsAssignment(taskIndex, memberIndex int) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	t, m, err := p.resolvePair(taskIndex, memberIndex)
	if err != nil {
		return false, err
	}
	return p.ledger.Contains(t.ID, m.ID), nil
}

func (p *Project) resolvePair(taskIndex, memberIndex int) (*models.Task, *models.Member, error) {
	t, err := p.tasks.Get(taskIndex)
	if err != nil {
		return nil, nil, err
	}
	m, err := p.members.Get(memberIndex)
	if err != nil {
		return nil, nil, err
	}
	return t, m, nil
}

// TasksForMember lists the tasks assigned to the member at memberIndex in
// display order.
func (p *Project) TasksForMember(memberIndex int) ([]models.Task, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	m, err := p.members.Get(memberIndex)
	if err != nil {
		return nil, err
	}
	var tasks []models.Task
	for _, id := range p.ledger.TasksFor(m.ID) {
		t, err := p.taskByID(id)
		if err != nil {
			continue
		}
		tasks = append(tasks, t.Clone())
	}
	sortTasksByIndex(tasks)
	return tasks, nil
}

// MembersForTask lists the members assigned to the task at taskIndex in
// display order.
func (p *Project) MembersForTask(taskIndex int) ([]models.Member, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	t, err := p.tasks.Get(taskIndex)
	if err != nil {
		return nil, err
	}
	var members []models.Member
	for _, id := range p.ledger.MembersFor(t.ID) {
		m, err := p.memberByID(id)
		if err != nil {
			continue
		}
		members = append(members, *m)
	}
	sortMembersByIndex(members)
	return members, nil
}

// AssignmentRequest is a batch of assign and unassign operations applied to
// every listed task.
type AssignmentRequest struct {
	TaskIndexes []int
	Assign      []int
	Unassign    []int
}

// AssignmentReport collects the per-item outcome lines of a batch.
type AssignmentReport struct {
	Lines  []string
	Errors []string
}

// ApplyAssignments runs a batch. A failing item is reported and skipped;
// the rest of the batch still runs.
func (p *Project) ApplyAssignments(req AssignmentRequest) AssignmentReport {
	p.mu.Lock()
	defer p.mu.Unlock()

	var report AssignmentReport
	conflict := make(map[int]bool)
	unassign := make(map[int]bool, len(req.Unassign))
	for _, i := range req.Unassign {
		unassign[i] = true
	}
	for _, i := range req.Assign {
		if unassign[i] && !conflict[i] {
			conflict[i] = true
			name := "unknown"
			if m, err := p.members.Get(i); err == nil {
				name = m.Name
			}
			report.Errors = append(report.Errors, fmt.Sprintf(
				"Cannot assign and unassign task to member %d (%s) at the same time", i, name))
		}
	}

	for _, ti := range req.TaskIndexes {
		t, err := p.tasks.Get(ti)
		if err != nil {
			report.Errors = append(report.Errors, err.Error())
			continue
		}
		report.Lines = append(report.Lines, fmt.Sprintf("For task %d (%s):", ti, t.Name))

		for _, mi := range req.Assign {
			if conflict[mi] {
				continue
			}
			m, err := p.members.Get(mi)
			if err != nil {
				report.Errors = append(report.Errors, err.Error())
				continue
			}
			switch p.ledger.Assign(t.ID, m.ID) {
			case AlreadyAssigned:
				report.Lines = append(report.Lines, fmt.Sprintf(
					"Task has already been assigned to member %d (%s).", mi, m.Name))
			default:
				report.Lines = append(report.Lines, fmt.Sprintf("Assigned to member %d (%s).", mi, m.Name))
			}
		}

		for _, mi := range req.Unassign {
			if conflict[mi] {
				continue
			}
			m, err := p.members.Get(mi)
			if err != nil {
				report.Errors = append(report.Errors, err.Error())
				continue
			}
			switch p.ledger.Unassign(t.ID, m.ID) {
			case NotAssigned:
				report.Lines = append(report.Lines, fmt.Sprintf(
					"Task cannot be unassigned from member %d (%s) as it was not assigned in the first place!",
					mi, m.Name))
			default:
				report.Lines = append(report.Lines, fmt.Sprintf("Unassigned task from member %d (%s).", mi, m.Name))
			}
		}
	}
	return report
}
