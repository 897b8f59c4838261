package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"smart-pto/internal/model"
	"smart-pto/internal/suggestion"
)

const dateLayout = "2006-01-02"

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...)
}

func renderSuggestions(items []model.Suggestion) string {
	t := newTable("Start", "End", "Confidence", "Message", "Reason")
	for _, s := range items {
		t.Row(
			s.WindowStart.Format(dateLayout),
			s.WindowEnd.Format(dateLayout),
			fmt.Sprintf("%.2f", s.Confidence),
			s.SourceMessageID,
			truncateCell(s.Reason, 60),
		)
	}
	return t.Render()
}

func renderCandidates(items []suggestion.Candidate) string {
	t := newTable("Date", "From", "Subject")
	for _, c := range items {
		t.Row(c.Date, truncateCell(c.From, 40), truncateCell(c.Subject, 60))
	}
	return t.Render()
}

func truncateCell(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
