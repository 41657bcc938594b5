package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/archduke/archduke/internal/command"
	"github.com/archduke/archduke/internal/ui/keys"
	"github.com/archduke/archduke/internal/ui/styles"
)

// Welcome is shown when the console starts.
const Welcome = "Welcome to ArchDuke! Type help to see what you can do."

// Executor runs one console line.
type Executor interface {
	Execute(line string) command.Response
	Prompt() string
}

// ConsoleView is a command prompt above a scrolling transcript of
// responses.
type ConsoleView struct {
	shell      Executor
	input      textinput.Model
	viewport   viewport.Model
	styles     *styles.Styles
	keys       keys.KeyMap
	tableWidth int
	width      int
	height     int

	transcript []string
	history    []string
	// histIdx == len(history) means the prompt holds a fresh line
	histIdx int
}

func NewConsoleView(shell Executor, tableWidth int) *ConsoleView {
	s := styles.NewStyles()

	input := textinput.New()
	input.Placeholder = "type a command, or help"
	input.CharLimit = 500
	input.PromptStyle = s.Prompt
	input.Focus()

	v := &ConsoleView{
		shell:      shell,
		input:      input,
		viewport:   viewport.New(0, 0),
		styles:     s,
		keys:       keys.DefaultKeyMap(),
		tableWidth: tableWidth,
	}
	v.append(s.RenderTable("", []string{Welcome}, tableWidth))
	return v
}

func (v *ConsoleView) Init() tea.Cmd {
	return textinput.Blink
}

func (v *ConsoleView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		contentWidth := styles.ContentWidth(msg.Width)
		v.viewport.Width = contentWidth
		// Title, input box (3 rows) and help line.
		v.viewport.Height = max(msg.Height-5, 1)
		v.input.Width = max(contentWidth-len(v.promptText())-6, 10)
		v.refresh()
		return v, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, v.keys.Quit):
			return v, tea.Quit
		case key.Matches(msg, v.keys.Submit):
			return v, v.submit()
		case key.Matches(msg, v.keys.Prev):
			v.recall(-1)
			return v, nil
		case key.Matches(msg, v.keys.Next):
			v.recall(1)
			return v, nil
		case key.Matches(msg, v.keys.ScrollUp), key.Matches(msg, v.keys.ScrollDown):
			var cmd tea.Cmd
			v.viewport, cmd = v.viewport.Update(msg)
			return v, cmd
		case key.Matches(msg, v.keys.Clear):
			v.transcript = nil
			v.refresh()
			return v, nil
		}
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// submit runs the prompt line and appends the response to the transcript.
func (v *ConsoleView) submit() tea.Cmd {
	line := strings.TrimSpace(v.input.Value())
	v.input.Reset()
	if line == "" {
		return nil
	}
	v.history = append(v.history, line)
	v.histIdx = len(v.history)

	echo := v.styles.Echo.Render(v.promptText() + line)
	resp := v.shell.Execute(line)
	v.append(echo + "\n" + v.styles.RenderTable(resp.Title, resp.Lines, v.tableWidth))

	if resp.Quit {
		return tea.Quit
	}
	return nil
}

func (v *ConsoleView) recall(step int) {
	if len(v.history) == 0 {
		return
	}
	v.histIdx = min(max(v.histIdx+step, 0), len(v.history))
	if v.histIdx == len(v.history) {
		v.input.Reset()
		return
	}
	v.input.SetValue(v.history[v.histIdx])
	v.input.CursorEnd()
}

func (v *ConsoleView) append(block string) {
	v.transcript = append(v.transcript, block)
	v.refresh()
}

func (v *ConsoleView) refresh() {
	v.viewport.SetContent(strings.Join(v.transcript, "\n"))
	v.viewport.GotoBottom()
}

func (v *ConsoleView) promptText() string {
	return v.shell.Prompt() + " > "
}

// Transcript returns the rendered transcript blocks.
func (v *ConsoleView) Transcript() []string {
	return append([]string(nil), v.transcript...)
}

// View renders the view
func (v *ConsoleView) View() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)
	v.input.Prompt = v.promptText()

	content := lipgloss.JoinVertical(lipgloss.Left,
		s.TitleBar.Render(s.Title.Render("ArchDuke")+s.TitleMuted.Render(" · "+v.shell.Prompt())),
		v.viewport.View(),
		s.InputFocused.Width(max(contentWidth-2, 10)).Render(v.input.View()),
		v.renderHelp(),
	)
	return styles.CenterView(content, v.width, v.height)
}

func (v *ConsoleView) renderHelp() string {
	var parts []string
	for _, b := range v.keys.ShortHelp() {
		h := b.Help()
		parts = append(parts, fmt.Sprintf("%s %s", v.styles.HelpKey.Render(h.Key), v.styles.HelpDesc.Render(h.Desc)))
	}
	return v.styles.Help.Render(strings.Join(parts, " • "))
}
