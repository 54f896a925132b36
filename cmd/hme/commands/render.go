package commands

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"hme/internal/domain"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle     = lipgloss.NewStyle().Padding(0, 1)
	activeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	inactiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	dimStyle      = lipgloss.NewStyle().Faint(true)
	okMark        = activeStyle.Render("✓")
)

// aliasTable renders aliases for list (created column) or search (note
// column) output.
func aliasTable(aliases []domain.Alias, withNote bool) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(dimStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	if withNote {
		t.Headers("Email", "Label", "Note", "Status")
	} else {
		t.Headers("Email", "Label", "Status", "Created")
	}

	for _, a := range aliases {
		status := activeStyle.Render("active")
		if !a.Active {
			status = inactiveStyle.Render("inactive")
		}
		label := a.Label
		if label == "" {
			label = dimStyle.Render("(no label)")
		}
		if withNote {
			t.Row(a.Address, label, truncate(a.Note, 30), status)
		} else {
			t.Row(a.Address, label, status, a.Created().Format("2006-01-02"))
		}
	}
	return t.Render()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "…"
}
