// Package command interprets console input lines. It owns the currently
// managed project, drives the project repository, and writes every change
// through to the store.
package command

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/archduke/archduke/internal/models"
	"github.com/archduke/archduke/internal/project"
)

const lastProjectKey = "last_project_id"

// Store persists project snapshots and settings.
type Store interface {
	SaveProject(rec models.ProjectRecord) error
	DeleteProject(id string) error
	ReorderProjects(ids []string) error
	GetSetting(key string) (string, error)
	SetSetting(key, value string) error
}

// Response is the result of one input line.
type Response struct {
	Title string
	Lines []string
	Quit  bool
}

func reply(lines ...string) Response {
	return Response{Lines: lines}
}

func fail(err error) Response {
	return Response{Lines: []string{err.Error()}}
}

// Shell executes console commands one line at a time.
type Shell struct {
	repo    *project.Repository
	store   Store
	log     zerolog.Logger
	now     func() time.Time
	current *project.Project
}

// New creates a shell over repo. store may be nil, in which case nothing
// is persisted.
func New(repo *project.Repository, store Store, log zerolog.Logger) *Shell {
	return &Shell{
		repo:  repo,
		store: store,
		log:   log,
		now:   time.Now,
	}
}

// Current returns the managed project, or nil at the top level.
func (s *Shell) Current() *project.Project {
	return s.current
}

// Prompt names where the shell currently is.
func (s *Shell) Prompt() string {
	if s.current == nil {
		return "archduke"
	}
	return s.current.Name()
}

// Resume re-enters the project that was being managed when the last
// session ended.
func (s *Shell) Resume() {
	if s.store == nil {
		return
	}
	id, err := s.store.GetSetting(lastProjectKey)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to read last project")
		return
	}
	if id == "" {
		return
	}
	p, err := s.repo.ByID(id)
	if err != nil {
		s.log.Warn().Str("project_id", id).Msg("last project no longer exists")
		return
	}
	s.current = p
}

// Execute runs one input line.
func (s *Shell) Execute(line string) Response {
	line = strings.TrimSpace(line)
	ev := s.log.Debug().Str("command", line)
	if s.current != nil {
		ev = ev.Str("project_id", s.current.ID())
	}
	ev.Msg("input")

	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return reply("Please enter a command.")
	}
	if s.current != nil {
		return s.executeProject(s.current, tokens)
	}
	return s.executeTop(tokens)
}

func (s *Shell) executeTop(tokens []string) Response {
	rest := tokens[1:]
	switch strings.ToLower(tokens[0]) {
	case "bye":
		return Response{Lines: []string{"Bye. Hope to see you again soon!"}, Quit: true}
	case "create":
		return s.create(strings.Join(rest, " "))
	case "list":
		return s.list()
	case "manage":
		return s.manage(rest)
	case "delete":
		return s.delete(rest)
	case "help":
		return Response{Title: "Commands:", Lines: topHelp}
	}
	return reply("Invalid inputs. Please refer to User Guide or type help!")
}

func (s *Shell) create(name string) Response {
	p, err := s.repo.Create(name)
	if err != nil {
		return fail(err)
	}
	s.log.Info().Str("project_id", p.ID()).Str("name", p.Name()).Msg("project created")
	return s.saved(p, reply("Project created!"))
}

func (s *Shell) list() Response {
	projects := s.repo.All()
	if len(projects) == 0 {
		return reply("You currently have no projects!")
	}
	resp := Response{Title: "Here are all the Projects you are managing:"}
	for _, p := range projects {
		resp.Lines = append(resp.Lines, fmt.Sprintf("%d. %s (%d members, %d tasks)",
			p.DisplayIndex(), p.Name(), p.NumMembers(), p.NumTasks()))
	}
	return resp
}

func (s *Shell) manage(rest []string) Response {
	if len(rest) == 0 {
		return reply("Please enter a project number!")
	}
	i, err := parseIndex(rest, "project")
	if err != nil {
		return fail(err)
	}
	p, err := s.repo.Get(i)
	if err != nil {
		return reply("Please enter the correct index of an existing Project!")
	}
	s.current = p
	s.setLastProject(p.ID())
	s.log.Info().Str("project_id", p.ID()).Msg("managing project")
	return reply("Now managing " + p.Name())
}

func (s *Shell) delete(rest []string) Response {
	if len(rest) == 0 {
		return reply("Please enter a project number to delete")
	}
	i, err := parseIndex(rest, "project")
	if err != nil {
		return fail(err)
	}
	p, err := s.repo.Delete(i)
	if err != nil {
		return reply("Index out of bounds! Please check project index!")
	}
	s.log.Info().Str("project_id", p.ID()).Msg("project deleted")

	resp := reply(fmt.Sprintf("Project %d has been deleted", i))
	if s.store == nil {
		return resp
	}
	if err := s.store.DeleteProject(p.ID()); err != nil {
		return s.storageFailed(resp, p.ID(), err)
	}
	var ids []string
	for _, other := range s.repo.All() {
		ids = append(ids, other.ID())
	}
	if err := s.store.ReorderProjects(ids); err != nil {
		return s.storageFailed(resp, p.ID(), err)
	}
	return resp
}

// saved writes p through to the store and returns resp, with a warning line
// appended when the write failed. The in-memory state stays authoritative.
func (s *Shell) saved(p *project.Project, resp Response) Response {
	if s.store == nil {
		return resp
	}
	if err := s.store.SaveProject(p.Snapshot()); err != nil {
		return s.storageFailed(resp, p.ID(), err)
	}
	return resp
}

func (s *Shell) storageFailed(resp Response, projectID string, err error) Response {
	s.log.Error().Err(err).Str("project_id", projectID).Msg("failed to persist project")
	resp.Lines = append(resp.Lines, "Warning: changes could not be saved: "+err.Error())
	return resp
}

func (s *Shell) setLastProject(id string) {
	if s.store == nil {
		return
	}
	if err := s.store.SetSetting(lastProjectKey, id); err != nil {
		s.log.Error().Err(err).Msg("failed to save last project")
	}
}
