package project

import "github.com/archduke/archduke/internal/models"

// ProgressScale is the number of units in a progress bar.
const ProgressScale = 20

// MemberCredit is a member's share of task credit.
type MemberCredit struct {
	Member models.Member
	Total  float64
	Done   float64
	// Units is the filled part of the progress bar, 0..ProgressScale.
	Units   int
	Percent int
}

// Credits splits each task's credit equally between the members assigned to
// it at the time of the call, and sums the shares per member. Done only
// counts tasks in state DONE.
func (p *Project) Credits() []MemberCredit {
	p.mu.Lock()
	defer p.mu.Unlock()

	credits := make([]MemberCredit, 0, p.members.Len())
	for _, m := range p.members.All() {
		c := MemberCredit{Member: *m}
		for _, taskID := range p.ledger.TasksFor(m.ID) {
			t, err := p.taskByID(taskID)
			if err != nil {
				continue
			}
			n := p.ledger.CountFor(taskID)
			if n == 0 {
				continue
			}
			share := float64(t.Credit) / float64(n)
			c.Total += share
			if t.State == models.StateDone {
				c.Done += share
			}
		}
		if c.Total > 0 {
			c.Units = int(c.Done / c.Total * ProgressScale)
		}
		c.Percent = c.Units * (100 / ProgressScale)
		credits = append(credits, c)
	}
	return credits
}
