package command

import (
	"fmt"
	"strings"

	"github.com/archduke/archduke/internal/models"
	"github.com/archduke/archduke/internal/project"
	"github.com/archduke/archduke/internal/report"
)

type handler func(s *Shell, p *project.Project, rest []string) Response

type route struct {
	words []string
	fn    handler
}

// projectRoutes is matched in order, so longer prefixes come first.
var projectRoutes = []route{
	{[]string{"view", "task", "requirements"}, (*Shell).viewRequirements},
	{[]string{"edit", "task", "requirements"}, (*Shell).editRequirements},
	{[]string{"add", "member"}, (*Shell).addMember},
	{[]string{"edit", "member"}, (*Shell).editMember},
	{[]string{"delete", "member"}, (*Shell).deleteMember},
	{[]string{"view", "members"}, (*Shell).viewMembers},
	{[]string{"view", "credits"}, (*Shell).viewCredits},
	{[]string{"add", "task"}, (*Shell).addTask},
	{[]string{"edit", "task"}, (*Shell).editTask},
	{[]string{"delete", "task"}, (*Shell).deleteTask},
	{[]string{"view", "tasks"}, (*Shell).viewTasks},
	{[]string{"assign", "task"}, (*Shell).assignTask},
	{[]string{"view", "assignments"}, (*Shell).viewAssignments},
	{[]string{"add", "reminder"}, (*Shell).addReminder},
	{[]string{"edit", "reminder"}, (*Shell).editReminder},
	{[]string{"mark", "reminder"}, (*Shell).markReminder},
	{[]string{"unmark", "reminder"}, (*Shell).unmarkReminder},
	{[]string{"delete", "reminder"}, (*Shell).deleteReminder},
	{[]string{"view", "reminders"}, (*Shell).viewReminders},
	{[]string{"view", "calendar"}, (*Shell).viewCalendar},
	{[]string{"role"}, (*Shell).role},
	{[]string{"help"}, (*Shell).projectHelp},
	{[]string{"exit"}, (*Shell).exit},
	{[]string{"bye"}, (*Shell).bye},
}

func (s *Shell) executeProject(p *project.Project, tokens []string) Response {
	for _, r := range projectRoutes {
		if matchWords(tokens, r.words) {
			return r.fn(s, p, tokens[len(r.words):])
		}
	}
	return reply("Invalid command. Try again!")
}

func matchWords(tokens, words []string) bool {
	if len(tokens) < len(words) {
		return false
	}
	for i, w := range words {
		if strings.ToLower(tokens[i]) != w {
			return false
		}
	}
	return true
}

func (s *Shell) exit(p *project.Project, _ []string) Response {
	s.current = nil
	s.setLastProject("")
	return reply("Exited project: " + p.Name())
}

func (s *Shell) bye(_ *project.Project, _ []string) Response {
	return Response{Lines: []string{"Bye. Hope to see you again soon!"}, Quit: true}
}

func (s *Shell) projectHelp(_ *project.Project, _ []string) Response {
	return Response{Title: "Commands:", Lines: projectHelp}
}

// Members

func (s *Shell) addMember(p *project.Project, rest []string) Response {
	a, err := parseArgs(rest, "-n", "-i", "-e", "-r")
	if err != nil {
		return fail(err)
	}
	name, _ := a.value("-n")
	if strings.TrimSpace(name) == "" {
		return reply("Add member command minimum usage must be \"add member -n NAME\"!",
			"Please refer to user guide for additional details.")
	}
	m := models.Member{Name: name}
	m.Phone, _ = a.value("-i")
	m.Email, _ = a.value("-e")
	m.Role, _ = a.value("-r")

	added, err := p.AddMember(m)
	if err != nil {
		return fail(err)
	}
	return s.saved(p, reply("Added new member to: "+p.Name(), "Member details "+memberDetails(added)))
}

func memberDetails(m models.Member) string {
	return fmt.Sprintf("%d. %s (Phone: %s | Email: %s | Role: %s)",
		m.Index, m.Name, orDash(m.Phone), orDash(m.Email), m.Role)
}

func (s *Shell) editMember(p *project.Project, rest []string) Response {
	a, err := parseArgs(rest, "-n", "-i", "-e", "-r")
	if err != nil {
		return fail(err)
	}
	i, err := parseIndex(a.positional, "member")
	if err != nil {
		return fail(err)
	}
	u := project.MemberUpdate{
		Name:  a.optString("-n"),
		Phone: a.optString("-i"),
		Email: a.optString("-e"),
		Role:  a.optString("-r"),
	}
	if _, err := p.EditMember(i, u); err != nil {
		return fail(err)
	}
	return s.saved(p, reply(fmt.Sprintf("Updated member details with the index number %d", i)))
}

func (s *Shell) role(p *project.Project, rest []string) Response {
	a, err := parseArgs(rest, "-n")
	if err != nil || !a.has("-n") || len(a.positional) != 1 {
		return reply("Wrong command format! Please enter role INDEX -n ROLE_NAME")
	}
	i, err := parseIndex(a.positional, "member")
	if err != nil {
		return fail(err)
	}
	role, _ := a.value("-n")
	m, err := p.EditMember(i, project.MemberUpdate{Role: &role})
	if err != nil {
		return fail(err)
	}
	return s.saved(p, reply(fmt.Sprintf("Successfully changed the role of %s to %s.", m.Name, m.Role)))
}

func (s *Shell) deleteMember(p *project.Project, rest []string) Response {
	i, err := parseIndex(rest, "member")
	if err != nil {
		return fail(err)
	}
	if _, err := p.RemoveMember(i); err != nil {
		return fail(err)
	}
	return s.saved(p, reply(fmt.Sprintf("Removed member with the index number %d", i)))
}

func (s *Shell) viewMembers(p *project.Project, _ []string) Response {
	return Response{
		Title: "Members of " + p.Name() + ":",
		Lines: report.MemberLines(p.Snapshot()),
	}
}

func (s *Shell) viewCredits(p *project.Project, _ []string) Response {
	credits := p.Credits()
	if len(credits) == 0 {
		return reply("There are no members in this project.")
	}
	return Response{Title: "Here are all the member credits:", Lines: report.CreditLines(credits)}
}

// Tasks

var taskFlags = []string{"-n", "-p", "-d", "-c", "-s", "-r"}

func (s *Shell) addTask(p *project.Project, rest []string) Response {
	a, err := parseArgs(rest, taskFlags...)
	if err != nil {
		return fail(err)
	}
	name, _ := a.value("-n")
	if strings.TrimSpace(name) == "" || !a.has("-p") {
		return reply("Failed to create new task. Please ensure all necessary parameters are given.",
			"\"add task -n NAME -p PRIORITY\" is the minimum requirement.")
	}

	t := models.Task{Name: name, Requirements: a.values("-r")}
	priority, err := a.optInt("-p", "priority")
	if err != nil {
		return fail(err)
	}
	if priority != nil {
		t.Priority = *priority
	}
	if t.DueDate, err = a.optDate("-d"); err != nil {
		return fail(err)
	}
	credit, err := a.optInt("-c", "credit")
	if err != nil {
		return fail(err)
	}
	if credit != nil {
		t.Credit = *credit
	}
	state, err := a.optState("-s")
	if err != nil {
		return fail(err)
	}
	if state != nil {
		t.State = *state
	}

	if _, err := p.AddTask(t); err != nil {
		return fail(err)
	}
	return s.saved(p, reply("Added new task to the list."))
}

func (s *Shell) editTask(p *project.Project, rest []string) Response {
	a, err := parseArgs(rest, taskFlags[:5]...)
	if err != nil {
		return fail(err)
	}
	i, err := parseIndex(a.positional, "task")
	if err != nil {
		return fail(err)
	}
	u := project.TaskUpdate{Name: a.optString("-n")}
	if u.Priority, err = a.optInt("-p", "priority"); err != nil {
		return fail(err)
	}
	if u.DueDate, err = a.optDate("-d"); err != nil {
		return fail(err)
	}
	if u.Credit, err = a.optInt("-c", "credit"); err != nil {
		return fail(err)
	}
	if u.State, err = a.optState("-s"); err != nil {
		return fail(err)
	}
	if _, err := p.EditTask(i, u); err != nil {
		return fail(err)
	}
	return s.saved(p, reply("The task has been updated!"))
}

func (s *Shell) deleteTask(p *project.Project, rest []string) Response {
	i, err := parseIndex(rest, "task")
	if err != nil {
		return fail(err)
	}
	t, err := p.RemoveTask(i)
	if err != nil {
		return fail(err)
	}
	return s.saved(p, reply(fmt.Sprintf("Removed task %d: %s", i, report.TaskDetails(t))))
}

func (s *Shell) viewTasks(p *project.Project, rest []string) Response {
	c, err := report.ParseCriterion(strings.Join(rest, " "))
	if err != nil {
		return fail(err)
	}
	return Response{
		Title: "Tasks of " + p.Name() + ":",
		Lines: report.TaskLines(p.Snapshot(), c),
	}
}

func (s *Shell) viewRequirements(p *project.Project, rest []string) Response {
	i, err := parseIndex(rest, "task")
	if err != nil {
		return fail(err)
	}
	t, err := p.Task(i)
	if err != nil {
		return fail(err)
	}
	return Response{
		Title: fmt.Sprintf("Requirements of task %d (%s):", i, t.Name),
		Lines: report.RequirementLines(t),
	}
}

func (s *Shell) editRequirements(p *project.Project, rest []string) Response {
	a, err := parseArgs(rest, "-rm", "-r")
	if err != nil {
		return fail(err)
	}
	i, err := parseIndex(a.positional, "task")
	if err != nil {
		return fail(err)
	}
	t, err := p.Task(i)
	if err != nil {
		return fail(err)
	}

	var (
		remove   []int
		problems []string
	)
	for _, v := range a.values("-rm") {
		idx, msgs := report.ParseIndexes(v, len(t.Requirements), "requirement")
		remove = append(remove, idx...)
		problems = append(problems, msgs...)
	}
	more, err := p.EditTaskRequirements(i, project.RequirementsUpdate{Remove: remove, Add: a.values("-r")})
	if err != nil {
		return fail(err)
	}
	problems = append(problems, more...)
	return s.saved(p, reply(append(problems, "The requirements of your specified task has been updated!")...))
}

// Assignments

func (s *Shell) assignTask(p *project.Project, rest []string) Response {
	a, err := parseArgs(rest, "-i", "-to", "-rm")
	if err != nil {
		return fail(err)
	}
	tasks, ok := a.value("-i")
	if !ok || (!a.has("-to") && !a.has("-rm")) {
		return reply("Please input the parameters to assign tasks:",
			"assign task -i TASK_INDEXES [-to MEMBER_INDEXES] [-rm MEMBER_INDEXES]")
	}

	var (
		req  project.AssignmentRequest
		msgs []string
	)
	req.TaskIndexes, msgs = report.ParseIndexes(tasks, p.NumTasks(), "task")
	for _, v := range a.values("-to") {
		idx, m := report.ParseIndexes(v, p.NumMembers(), "member")
		req.Assign = append(req.Assign, idx...)
		msgs = append(msgs, m...)
	}
	for _, v := range a.values("-rm") {
		idx, m := report.ParseIndexes(v, p.NumMembers(), "member")
		req.Unassign = append(req.Unassign, idx...)
		msgs = append(msgs, m...)
	}

	out := p.ApplyAssignments(req)
	lines := append(msgs, out.Errors...)
	lines = append(lines, out.Lines...)
	if len(lines) == 0 {
		lines = []string{"No assignments were changed."}
	}
	return s.saved(p, reply(lines...))
}

func (s *Shell) viewAssignments(p *project.Project, rest []string) Response {
	a, err := parseArgs(rest, "-m", "-t")
	if err != nil || (!a.has("-m") && !a.has("-t")) {
		return reply("Please input the parameters to view assignments:",
			"-m for viewing by member, -t for viewing by task.",
			"You may refer to the user guide for the list of possible commands.")
	}
	rec := p.Snapshot()
	if v, ok := a.value("-m"); ok {
		idx, msgs := report.ParseIndexes(v, len(rec.Members), "member")
		return Response{Title: "Assignments by member:", Lines: append(msgs, report.ViewByMember(rec, idx)...)}
	}
	v, _ := a.value("-t")
	idx, msgs := report.ParseIndexes(v, len(rec.Tasks), "task")
	return Response{Title: "Assignments by task:", Lines: append(msgs, report.ViewByTask(rec, idx)...)}
}

// Reminders

var reminderFlags = []string{"-n", "-r", "-d", "-l"}

func (s *Shell) addReminder(p *project.Project, rest []string) Response {
	a, err := parseArgs(rest, reminderFlags...)
	if err != nil {
		return fail(err)
	}
	name, _ := a.value("-n")
	if strings.TrimSpace(name) == "" {
		return reply("Reminder name cannot be empty! \"add reminder -n NAME\" is the minimum requirement.")
	}
	r := models.Reminder{Name: name}
	r.Remark, _ = a.value("-r")
	r.Category, _ = a.value("-l")
	if r.DueDate, err = a.optDate("-d"); err != nil {
		return fail(err)
	}
	if _, err := p.AddReminder(r); err != nil {
		return fail(err)
	}
	return s.saved(p, reply("Added new reminder to the Reminder List in project."))
}

func (s *Shell) editReminder(p *project.Project, rest []string) Response {
	a, err := parseArgs(rest, reminderFlags...)
	if err != nil {
		return fail(err)
	}
	i, err := parseIndex(a.positional, "reminder")
	if err != nil {
		return fail(err)
	}
	u := project.ReminderUpdate{
		Name:     a.optString("-n"),
		Remark:   a.optString("-r"),
		Category: a.optString("-l"),
	}
	if u.DueDate, err = a.optDate("-d"); err != nil {
		return fail(err)
	}
	if _, err := p.EditReminder(i, u); err != nil {
		return fail(err)
	}
	return s.saved(p, reply("The reminder has been updated!"))
}

func (s *Shell) markReminder(p *project.Project, rest []string) Response {
	return s.setReminderDone(p, rest, true)
}

func (s *Shell) unmarkReminder(p *project.Project, rest []string) Response {
	return s.setReminderDone(p, rest, false)
}

func (s *Shell) setReminderDone(p *project.Project, rest []string, done bool) Response {
	i, err := parseIndex(rest, "reminder")
	if err != nil {
		return fail(err)
	}
	r, err := p.MarkReminder(i, done)
	if err != nil {
		return fail(err)
	}
	status := "done"
	if !done {
		status = "not done"
	}
	return s.saved(p, reply(fmt.Sprintf("Marked reminder %d (%s) as %s.", i, r.Name, status)))
}

func (s *Shell) deleteReminder(p *project.Project, rest []string) Response {
	i, err := parseIndex(rest, "reminder")
	if err != nil {
		return fail(err)
	}
	if _, err := p.RemoveReminder(i); err != nil {
		return fail(err)
	}
	return s.saved(p, reply(fmt.Sprintf("Removed reminder with the index number %d", i)))
}

func (s *Shell) viewReminders(p *project.Project, _ []string) Response {
	return Response{
		Title: "Reminders of " + p.Name() + ":",
		Lines: report.ReminderLines(p.Reminders()),
	}
}

func (s *Shell) viewCalendar(p *project.Project, _ []string) Response {
	return Response{
		Title: "Calendar of " + p.Name() + ":",
		Lines: report.Calendar(p.Snapshot(), s.now()),
	}
}

func orDash(v string) string {
	if v == "" {
		return "--"
	}
	return v
}
