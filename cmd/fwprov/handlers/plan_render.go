package handlers

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/naccdata/fwprov/internal/provisioning"
)

var (
	planColorGreen = lipgloss.Color("#22c55e")
	planColorBlue  = lipgloss.Color("#3b82f6")
	planColorDim   = lipgloss.Color("#6b7280")
	planColorWhite = lipgloss.Color("#f9fafb")
)

var (
	planTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(planColorWhite)

	planSectionStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(planColorBlue)

	planDimStyle = lipgloss.NewStyle().
			Foreground(planColorDim)

	planGreenStyle = lipgloss.NewStyle().
			Foreground(planColorGreen)
)

// renderRunSummary produces a lipgloss-styled summary of one provisioning
// run, grouping resources by what happened to them.
func renderRunSummary(result *provisioning.Result, dryRun bool) string {
	var b strings.Builder

	title := "  fwprov: provisioning summary"
	if dryRun {
		title += " (dry-run)"
	}

	b.WriteString("\n")
	b.WriteString(planTitleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(planDimStyle.Render("  " + strings.Repeat("═", 34)))
	b.WriteString("\n")

	renderActionSection(&b, "Created", provisioning.ActionCreated, result, planGreenStyle)
	renderActionSection(&b, "Planned", provisioning.ActionPlanned, result, planGreenStyle)
	renderActionSection(&b, "Already present", provisioning.ActionExists, result, planDimStyle)

	b.WriteString("\n")
	b.WriteString(planSectionStyle.Render("  Totals"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("    created: %d  planned: %d  existing: %d\n",
		result.Count(provisioning.ActionCreated),
		result.Count(provisioning.ActionPlanned),
		result.Count(provisioning.ActionExists)))

	return b.String()
}

func renderActionSection(b *strings.Builder, heading string, action provisioning.Action, result *provisioning.Result, style lipgloss.Style) {
	var resources []provisioning.Resource
	for _, res := range result.Resources {
		if res.Action == action {
			resources = append(resources, res)
		}
	}
	if len(resources) == 0 {
		return
	}

	b.WriteString("\n")
	b.WriteString(planSectionStyle.Render("  " + heading))
	b.WriteString("\n")
	b.WriteString(planDimStyle.Render("  " + strings.Repeat("─", 34)))
	b.WriteString("\n")

	for _, res := range resources {
		line := fmt.Sprintf("    %-7s %s", res.Kind, res.Ref)
		if res.Label != "" {
			line += planDimStyle.Render(fmt.Sprintf("  (%s)", res.Label))
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
}
