package project

import (
	"sort"

	"github.com/archduke/archduke/internal/models"
)

// Outcome reports what an assign or unassign call actually did.
type Outcome int

const (
	Assigned Outcome = iota
	AlreadyAssigned
	Unassigned
	NotAssigned
)

func (o Outcome) String() string {
	switch o {
	case Assigned:
		return "assigned"
	case AlreadyAssigned:
		return "already assigned"
	case Unassigned:
		return "unassigned"
	case NotAssigned:
		return "not assigned"
	}
	return "unknown"
}

type idSet map[string]struct{}

// Ledger is the many-to-many relation between tasks and members, kept
// as two mirrored mappings. link and unlink are the only writers.
type Ledger struct {
	membersByTask map[string]idSet
	tasksByMember map[string]idSet
}

func NewLedger() *Ledger {
	return &Ledger{
		membersByTask: make(map[string]idSet),
		tasksByMember: make(map[string]idSet),
	}
}

func (l *Ledger) link(taskID, memberID string) {
	if l.membersByTask[taskID] == nil {
		l.membersByTask[taskID] = make(idSet)
	}
	if l.tasksByMember[memberID] == nil {
		l.tasksByMember[memberID] = make(idSet)
	}
	l.membersByTask[taskID][memberID] = struct{}{}
	l.tasksByMember[memberID][taskID] = struct{}{}
}

func (l *Ledger) unlink(taskID, memberID string) {
	if members, ok := l.membersByTask[taskID]; ok {
		delete(members, memberID)
		if len(members) == 0 {
			delete(l.membersByTask, taskID)
		}
	}
	if tasks, ok := l.tasksByMember[memberID]; ok {
		delete(tasks, taskID)
		if len(tasks) == 0 {
			delete(l.tasksByMember, memberID)
		}
	}
}

// Assign adds the pair. Assigning an existing pair changes nothing.
func (l *Ledger) Assign(taskID, memberID string) Outcome {
	if l.Contains(taskID, memberID) {
		return AlreadyAssigned
	}
	l.link(taskID, memberID)
	return Assigned
}

// Unassign removes the pair. Unassigning a missing pair changes nothing.
func (l *Ledger) Unassign(taskID, memberID string) Outcome {
	if !l.Contains(taskID, memberID) {
		return NotAssigned
	}
	l.unlink(taskID, memberID)
	return Unassigned
}

// Contains is true only when both mappings agree on the pair.
func (l *Ledger) Contains(taskID, memberID string) bool {
	_, byTask := l.membersByTask[taskID][memberID]
	_, byMember := l.tasksByMember[memberID][taskID]
	return byTask && byMember
}

// TasksFor returns the IDs of tasks assigned to memberID, sorted.
func (l *Ledger) TasksFor(memberID string) []string {
	return sortedIDs(l.tasksByMember[memberID])
}

// MembersFor returns the IDs of members assigned to taskID, sorted.
func (l *Ledger) MembersFor(taskID string) []string {
	return sortedIDs(l.membersByTask[taskID])
}

// CountFor returns the number of members assigned to taskID.
func (l *Ledger) CountFor(taskID string) int {
	return len(l.membersByTask[taskID])
}

// PurgeTask removes every pair that references taskID.
func (l *Ledger) PurgeTask(taskID string) {
	for _, memberID := range l.MembersFor(taskID) {
		l.unlink(taskID, memberID)
	}
	delete(l.membersByTask, taskID)
}

// PurgeMember removes every pair that references memberID.
func (l *Ledger) PurgeMember(memberID string) {
	for _, taskID := range l.TasksFor(memberID) {
		l.unlink(taskID, memberID)
	}
	delete(l.tasksByMember, memberID)
}

// Pairs lists every assignment ordered by task then member ID.
func (l *Ledger) Pairs() []models.Assignment {
	var pairs []models.Assignment
	for _, taskID := range sortedKeys(l.membersByTask) {
		for _, memberID := range sortedIDs(l.membersByTask[taskID]) {
			pairs = append(pairs, models.Assignment{TaskID: taskID, MemberID: memberID})
		}
	}
	return pairs
}

// Len returns the number of assignment pairs.
func (l *Ledger) Len() int {
	n := 0
	for _, members := range l.membersByTask {
		n += len(members)
	}
	return n
}

func sortedIDs(set idSet) []string {
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func sortedKeys(m map[string]idSet) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
