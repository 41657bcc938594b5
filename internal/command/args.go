package command

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/archduke/archduke/internal/models"
)

// Unchanged is the edit placeholder that leaves a field as it is.
const Unchanged = "--"

var flagLike = regexp.MustCompile(`^-[a-z]+$`)

// args is a tokenized command tail. Tokens before the first flag are
// positional; every flag collects the tokens up to the next known flag
// as one space-joined value.
type args struct {
	positional []string
	flags      map[string][]string
}

// parseArgs splits tokens against the flag names in known. Tokens that look
// like a flag but are not known are rejected so typos do not end up inside
// a value, as is a known flag with no value.
func parseArgs(tokens []string, known ...string) (args, error) {
	isKnown := make(map[string]bool, len(known))
	for _, k := range known {
		isKnown[k] = true
	}

	a := args{flags: make(map[string][]string)}
	var (
		current string
		value   []string
	)
	flush := func() error {
		if current == "" {
			return nil
		}
		if len(value) == 0 {
			return inputf("'%s' is an empty flag!", current)
		}
		a.flags[current] = append(a.flags[current], strings.Join(value, " "))
		value = nil
		return nil
	}
	for _, tok := range tokens {
		switch {
		case isKnown[tok]:
			if err := flush(); err != nil {
				return args{}, err
			}
			current = tok
		case flagLike.MatchString(tok):
			return args{}, inputf("Invalid flag is used in this entry: %s", tok)
		case current == "":
			a.positional = append(a.positional, tok)
		default:
			value = append(value, tok)
		}
	}
	if err := flush(); err != nil {
		return args{}, err
	}
	return a, nil
}

func (a args) has(flag string) bool {
	_, ok := a.flags[flag]
	return ok
}

// value returns the last occurrence of flag.
func (a args) value(flag string) (string, bool) {
	v := a.flags[flag]
	if len(v) == 0 {
		return "", false
	}
	return v[len(v)-1], true
}

func (a args) values(flag string) []string {
	return a.flags[flag]
}

// optString maps an absent flag or the placeholder to nil.
func (a args) optString(flag string) *string {
	v, ok := a.value(flag)
	if !ok || v == Unchanged {
		return nil
	}
	return &v
}

func (a args) optInt(flag, what string) (*int, error) {
	v := a.optString(flag)
	if v == nil {
		return nil, nil
	}
	n, err := strconv.Atoi(*v)
	if err != nil {
		return nil, inputf("The %s %q is not a number!", what, *v)
	}
	return &n, nil
}

func (a args) optDate(flag string) (*time.Time, error) {
	v := a.optString(flag)
	if v == nil {
		return nil, nil
	}
	d, err := parseDate(*v)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (a args) optState(flag string) (*models.TaskState, error) {
	v := a.optString(flag)
	if v == nil {
		return nil, nil
	}
	s, err := models.ParseTaskState(*v)
	if err != nil {
		return nil, inputf("Task state must be one of open, todo, doing or done, got %q.", *v)
	}
	return &s, nil
}

func parseDate(s string) (time.Time, error) {
	d, err := time.Parse(models.DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, inputf("Please enter dates in the format dd/MM/yyyy, e.g. 25/12/2026.")
	}
	return d, nil
}

// parseIndex reads a single 1-based index.
func parseIndex(positional []string, noun string) (int, error) {
	if len(positional) == 0 {
		return 0, inputf("Please enter the index number of the %s.", noun)
	}
	i, err := strconv.Atoi(positional[0])
	if err != nil {
		return 0, inputf("Input is not a number! Please input a proper %s index!", noun)
	}
	return i, nil
}

// inputError is a message about malformed input, shown to the user as is.
type inputError string

func (e inputError) Error() string { return string(e) }

func inputf(format string, a ...any) error {
	return inputError(fmt.Sprintf(format, a...))
}
