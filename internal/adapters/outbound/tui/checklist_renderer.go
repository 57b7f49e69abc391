package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tplkit/tplkit/internal/domain"
)

// RenderChecklistReport renders checklist results grouped by category with
// a summary box.
func RenderChecklistReport(report *domain.ChecklistReport) string {
	var b strings.Builder

	s := report.Summary
	color := success
	if s.Failed > 0 {
		color = danger
	}
	scoreStyled := lipgloss.NewStyle().Bold(true).Foreground(color).
		Render(fmt.Sprintf("%d/%d passed", s.Passed, s.Total))

	header := headerStyle.Render("tplkit") + "\n" + dimStyle.Render("Template Checklist") + "\n\n" + scoreStyled
	if report.Commit != "" {
		header += "\n" + faintStyle.Render(shortHash(report.Commit))
	}
	b.WriteString(boxStyle.Render(header))
	b.WriteString("\n")

	for _, group := range domain.GroupByCategory(report.Results) {
		passed := 0
		for _, r := range group.Results {
			if r.Passed {
				passed++
			}
		}
		b.WriteString("\n")
		fmt.Fprintf(&b, "  %s %s\n",
			sectionHeaderStyle.Render(group.Category),
			dimStyle.Render(fmt.Sprintf("(%d/%d)", passed, len(group.Results))),
		)
		for _, r := range group.Results {
			fmt.Fprintf(&b, "    %s %s\n", statusIcon(r.Passed), r.Name)
			if r.Message != "OK" && r.Message != "FAILED" {
				style := faintStyle
				if !r.Passed {
					style = failStyle
				}
				fmt.Fprintf(&b, "       → %s\n", style.Render(r.Message))
			}
		}
	}

	b.WriteString("\n  " + separatorLine + "\n")
	fmt.Fprintf(&b, "  Summary: %d/%d passed, %d failed\n", s.Passed, s.Total, s.Failed)
	if s.Failed > 0 {
		b.WriteString("  " + errorTagStyle.Render("Some checks failed!") + "\n")
	} else {
		b.WriteString("  " + passStyle.Render("All checks passed!") + "\n")
	}
	return b.String()
}

func shortHash(hash string) string {
	if len(hash) > 7 {
		return hash[:7]
	}
	return hash
}
