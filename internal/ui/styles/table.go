package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// RenderTable draws lines as a single-column bordered table of the given
// total width. Long lines wrap at word boundaries. An empty title omits
// the header row.
func (s *Styles) RenderTable(title string, lines []string, width int) string {
	// Two border columns.
	inner := max(width-2, 10)
	header := s.TableHeader.Width(inner)
	cell := s.TableCell.Width(inner)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(s.TableBorder).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})
	if title != "" {
		t = t.Headers(title)
	}
	for _, line := range lines {
		t = t.Row(line)
	}
	return t.Render()
}
