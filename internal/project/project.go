// Package project holds the project domain model: indexed member, task and
// reminder collections plus the task/member assignment ledger.
//
// Users address entities by display index. Indices are resolved to stable
// IDs at the method boundary; nothing below that boundary stores an index.
package project

import (
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/archduke/archduke/internal/models"
)

// Project aggregates the members, tasks, reminders and assignments of one
// named project. All exported methods are safe for concurrent use.
type Project struct {
	mu        sync.Mutex
	id        string
	index     int
	name      string
	members   *List[*models.Member]
	tasks     *List[*models.Task]
	reminders *List[*models.Reminder]
	ledger    *Ledger
}

// New creates an empty project. Name validation is the repository's job.
func New(name string) *Project {
	return newProject(uuid.NewString(), name)
}

func newProject(id, name string) *Project {
	return &Project{
		id:        id,
		name:      name,
		members:   NewList[*models.Member]("member"),
		tasks:     NewList[*models.Task]("task"),
		reminders: NewList[*models.Reminder]("reminder"),
		ledger:    NewLedger(),
	}
}

func (p *Project) ID() string { return p.id }

func (p *Project) Name() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.name
}

func (p *Project) DisplayIndex() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.index
}

func (p *Project) SetDisplayIndex(i int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.index = i
}

// AddMember validates m, gives it a fresh ID and appends it.
func (p *Project) AddMember(m models.Member) (models.Member, error) {
	m.Name = strings.TrimSpace(m.Name)
	if m.Name == "" {
		return models.Member{}, invalidf("Name cannot be empty! \"add member -n NAME\" is the minimum requirement.")
	}
	m.Email = strings.TrimSpace(m.Email)
	if m.Email != "" && !emailRegex.MatchString(m.Email) {
		return models.Member{}, invalidf("Email address is not a valid email address! Please adhere to standard " +
			"email address formats, such as archduke@emailprovider.com")
	}
	m.Phone = strings.TrimSpace(m.Phone)
	m.Role = strings.TrimSpace(m.Role)
	if m.Role == "" {
		m.Role = DefaultRole
	}
	m.ID = uuid.NewString()

	p.mu.Lock()
	defer p.mu.Unlock()
	added := m
	p.members.Add(&added)
	return added, nil
}

// EditMember applies u to the member at index.
func (p *Project) EditMember(index int, u MemberUpdate) (models.Member, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.members.Update(index, u.apply); err != nil {
		return models.Member{}, err
	}
	m, _ := p.members.Get(index)
	return *m, nil
}

// RemoveMember drops every assignment of the member, then the member.
func (p *Project) RemoveMember(index int) (models.Member, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	m, err := p.members.Get(index)
	if err != nil {
		return models.Member{}, err
	}
	p.ledger.PurgeMember(m.ID)
	if _, err := p.members.Remove(index); err != nil {
		return models.Member{}, err
	}
	return *m, nil
}

func (p *Project) Member(index int) (models.Member, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	m, err := p.members.Get(index)
	if err != nil {
		return models.Member{}, err
	}
	return *m, nil
}

// MemberByID looks a member up by stable ID.
func (p *Project) MemberByID(id string) (models.Member, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	m, err := p.memberByID(id)
	if err != nil {
		return models.Member{}, err
	}
	return *m, nil
}

func (p *Project) memberByID(id string) (*models.Member, error) {
	m, ok := p.members.Find(func(m *models.Member) bool { return m.ID == id })
	if !ok {
		return nil, notFound("member", id)
	}
	return m, nil
}

func (p *Project) Members() []models.Member {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]models.Member, 0, p.members.Len())
	for _, m := range p.members.All() {
		out = append(out, *m)
	}
	return out
}

func (p *Project) NumMembers() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.members.Len()
}

// AddTask validates t, gives it a fresh ID and appends it.
func (p *Project) AddTask(t models.Task) (models.Task, error) {
	t.Name = strings.TrimSpace(t.Name)
	if t.Name == "" {
		return models.Task{}, invalidf("Task name cannot be empty!")
	}
	if t.Credit < 0 {
		return models.Task{}, invalidf("Task credit cannot be negative, got %d.", t.Credit)
	}
	if t.State == "" {
		t.State = models.StateOpen
	}
	t = t.Clone()
	t.ID = uuid.NewString()
	t.Requirements = cleanRequirements(t.Requirements)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.tasks.Add(&t)
	return t.Clone(), nil
}

// EditTask applies u to the task at index.
func (p *Project) EditTask(index int, u TaskUpdate) (models.Task, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.tasks.Update(index, u.apply); err != nil {
		return models.Task{}, err
	}
	t, _ := p.tasks.Get(index)
	return t.Clone(), nil
}

// EditTaskRequirements removes and then appends requirements of the task at
// index. Invalid removal indices are reported one message each and skipped.
func (p *Project) EditTaskRequirements(index int, u RequirementsUpdate) ([]string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	t, err := p.tasks.Get(index)
	if err != nil {
		return nil, err
	}

	var problems []string
	drop := make(map[int]bool)
	for _, i := range u.Remove {
		if i < 1 || i > len(t.Requirements) {
			problems = append(problems, outOfRange("requirement", i, len(t.Requirements)).Error())
			continue
		}
		drop[i] = true
	}
	kept := make([]string, 0, len(t.Requirements))
	for i, r := range t.Requirements {
		if !drop[i+1] {
			kept = append(kept, r)
		}
	}
	t.Requirements = append(kept, cleanRequirements(u.Add)...)
	return problems, nil
}

// RemoveTask drops every assignment of the task, then the task.
func (p *Project) RemoveTask(index int) (models.Task, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	t, err := p.tasks.Get(index)
	if err != nil {
		return models.Task{}, err
	}
	p.ledger.PurgeTask(t.ID)
	if _, err := p.tasks.Remove(index); err != nil {
		return models.Task{}, err
	}
	return *t, nil
}

func (p *Project) Task(index int) (models.Task, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	t, err := p.tasks.Get(index)
	if err != nil {
		return models.Task{}, err
	}
	return t.Clone(), nil
}

// TaskByID looks a task up by stable ID.
func (p *Project) TaskByID(id string) (models.Task, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	t, err := p.taskByID(id)
	if err != nil {
		return models.Task{}, err
	}
	return t.Clone(), nil
}

func (p *Project) taskByID(id string) (*models.Task, error) {
	t, ok := p.tasks.Find(func(t *models.Task) bool { return t.ID == id })
	if !ok {
		return nil, notFound("task", id)
	}
	return t, nil
}

func (p *Project) Tasks() []models.Task {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]models.Task, 0, p.tasks.Len())
	for _, t := range p.tasks.All() {
		out = append(out, t.Clone())
	}
	return out
}

func (p *Project) NumTasks() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.tasks.Len()
}

// Snapshot copies the full entity set into plain records.
func (p *Project) Snapshot() models.ProjectRecord {
	p.mu.Lock()
	defer p.mu.Unlock()
	rec := models.ProjectRecord{
		ID:          p.id,
		Index:       p.index,
		Name:        p.name,
		Members:     make([]models.Member, 0, p.members.Len()),
		Tasks:       make([]models.Task, 0, p.tasks.Len()),
		Reminders:   make([]models.Reminder, 0, p.reminders.Len()),
		Assignments: p.ledger.Pairs(),
	}
	for _, m := range p.members.All() {
		rec.Members = append(rec.Members, *m)
	}
	for _, t := range p.tasks.All() {
		rec.Tasks = append(rec.Tasks, t.Clone())
	}
	for _, r := range p.reminders.All() {
		rec.Reminders = append(rec.Reminders, r.Clone())
	}
	return rec
}

// Restore rebuilds a project from a snapshot without re-running creation
// validation. Display indices follow record order. Assignment pairs whose
// IDs do not resolve are dropped.
func Restore(rec models.ProjectRecord) *Project {
	id := rec.ID
	if id == "" {
		id = uuid.NewString()
	}
	p := newProject(id, rec.Name)

	members := make(map[string]bool, len(rec.Members))
	for _, m := range rec.Members {
		if m.ID == "" || members[m.ID] {
			m.ID = uuid.NewString()
		}
		if m.Role == "" {
			m.Role = DefaultRole
		}
		members[m.ID] = true
		p.members.Add(&m)
	}
	tasks := make(map[string]bool, len(rec.Tasks))
	for _, t := range rec.Tasks {
		t = t.Clone()
		if t.ID == "" || tasks[t.ID] {
			t.ID = uuid.NewString()
		}
		if t.State == "" {
			t.State = models.StateOpen
		}
		tasks[t.ID] = true
		p.tasks.Add(&t)
	}
	for _, r := range rec.Reminders {
		r = r.Clone()
		if r.ID == "" {
			r.ID = uuid.NewString()
		}
		r.Category = normalizeCategory(r.Category)
		p.reminders.Add(&r)
	}
	for _, a := range rec.Assignments {
		if tasks[a.TaskID] && members[a.MemberID] {
			p.ledger.Assign(a.TaskID, a.MemberID)
		}
	}
	return p
}

// purge drops every assignment. Called when the project is deleted.
func (p *Project) purge() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, t := range p.tasks.All() {
		p.ledger.PurgeTask(t.ID)
	}
	for _, m := range p.members.All() {
		p.ledger.PurgeMember(m.ID)
	}
}

func sortTasksByIndex(tasks []models.Task) {
	sort.SliceStable(tasks, func(i, j int) bool { return tasks[i].Index < tasks[j].Index })
}

func sortMembersByIndex(members []models.Member) {
	sort.SliceStable(members, func(i, j int) bool { return members[i].Index < members[j].Index })
}

// cleanRequirements trims each requirement and drops the blank ones.
func cleanRequirements(reqs []string) []string {
	var out []string
	for _, r := range reqs {
		if r = strings.TrimSpace(r); r != "" {
			out = append(out, r)
		}
	}
	return out
}
