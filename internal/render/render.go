// Package render formats pathways and adaptation reports for the terminal.
package render

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/pathwise/internal/adapt"
	"github.com/abhisek/pathwise/internal/curriculum"
	"github.com/abhisek/pathwise/internal/pathway"
	"github.com/abhisek/pathwise/internal/skillgraph"
)

// DefaultWidth is used when the terminal width is unknown.
const DefaultWidth = 80

const minWidth = 40

// Options controls pathway rendering.
type Options struct {
	Width int

	// Resources lists each topic's resources instead of only counting them.
	Resources bool
}

// Pathway renders p as a multi-section terminal view.
func Pathway(p *pathway.Pathway, opts Options) string {
	width := max(opts.Width, minWidth)
	if opts.Width == 0 {
		width = DefaultWidth
	}
	inner := width - 4

	var sections []string

	header := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(p.Title),
		dimStyle.Render(fmt.Sprintf("%s · %d weeks · %d modules", p.TargetRole, p.TotalDurationWeeks, len(p.Modules))),
		"",
		bodyStyle.Width(inner).Render(p.Description),
	)
	sections = append(sections, cardStyle.Width(width).Render(header))

	sections = append(sections, headingStyle.Render("Difficulty by week"))
	sections = append(sections, Progression(p.DifficultyProgression, inner))

	sections = append(sections, headingStyle.Render("Modules"))
	for _, m := range p.Modules {
		sections = append(sections, module(m, inner, opts.Resources))
	}

	if len(p.LearningObjectives) > 0 {
		sections = append(sections, headingStyle.Render("Objectives"))
		var lines []string
		for _, o := range p.LearningObjectives {
			lines = append(lines, bodyStyle.Render("• "+o))
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}

	if p.AdaptationMetadata.Degraded {
		sections = append(sections, dimStyle.Italic(true).Render(
			"No skills matched the request; showing a starter pathway."))
	}
	return strings.Join(sections, "\n\n") + "\n"
}

func module(m curriculum.Module, width int, withResources bool) string {
	name := bodyStyle.Bold(true).Render(m.Name)
	if m.IsProject() {
		name = projectBadge.Render("◆ ") + name
	}
	meta := fmt.Sprintf("%s · %s · %.0fh",
		difficultyStyle(m.Difficulty).Render(string(m.Difficulty)),
		weeks(m.EstimatedWeeks),
		m.TotalHours())

	lines := []string{name + "  " + dimStyle.Render(meta)}
	for _, t := range m.Topics {
		line := fmt.Sprintf("  %s %s", dimStyle.Render("–"), t.Name)
		if n := len(t.Resources); n > 0 {
			line += dimStyle.Render(fmt.Sprintf("  (%d resources)", n))
		}
		lines = append(lines, truncate(line, width))
		if withResources {
			for _, r := range t.Resources {
				lines = append(lines, truncate(
					fmt.Sprintf("      %s %s", r.Title, linkStyle.Render(r.URL)), width))
			}
		}
	}
	return strings.Join(lines, "\n")
}

// Progression renders one colored cell per week, wrapped to width.
func Progression(weeks []skillgraph.Difficulty, width int) string {
	if len(weeks) == 0 {
		return dimStyle.Render("(empty)")
	}
	var rows []string
	var row strings.Builder
	cells := 0
	for _, d := range weeks {
		if cells == width {
			rows = append(rows, row.String())
			row.Reset()
			cells = 0
		}
		row.WriteString(difficultyStyle(d).Render("█"))
		cells++
	}
	rows = append(rows, row.String())

	legend := dimStyle.Render(fmt.Sprintf("%s beginner  %s intermediate  %s advanced",
		difficultyStyle(skillgraph.Beginner).Render("█"),
		difficultyStyle(skillgraph.Intermediate).Render("█"),
		difficultyStyle(skillgraph.Advanced).Render("█")))
	return strings.Join(rows, "\n") + "\n" + legend
}

// Report renders an adaptation report.
func Report(r adapt.Report) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Adaptation report") + "\n")
	b.WriteString(dimStyle.Render("pathway "+r.PathwayID) + "\n\n")

	a := r.Analysis
	fmt.Fprintf(&b, "%s %3.0f%%\n", bodyStyle.Render("Progress:       "), a.OverallProgress*100)
	fmt.Fprintf(&b, "%s %.2f\n", bodyStyle.Render("Velocity:       "), a.LearningVelocity)
	fmt.Fprintf(&b, "%s %.1f\n", bodyStyle.Render("Engagement:     "), a.EngagementLevel)
	fmt.Fprintf(&b, "%s %.2f\n", bodyStyle.Render("Time efficiency:"), a.TimeEfficiency)
	if len(a.StruggleAreas) > 0 {
		fmt.Fprintf(&b, "%s %s\n", bodyStyle.Render("Struggling with:"), strings.Join(a.StruggleAreas, ", "))
	}

	b.WriteString("\n" + headingStyle.Render("Recommended changes") + "\n")
	if len(r.AdaptationsApplied) == 0 {
		b.WriteString(dimStyle.Render("None. Keep going at the current pace.") + "\n")
	}
	for _, s := range r.AdaptationsApplied {
		b.WriteString("• " + s + "\n")
	}
	b.WriteString("\n" + dimStyle.Render("Next review: "+r.NextReviewDate.Format("2006-01-02")) + "\n")
	return b.String()
}

func weeks(n int) string {
	if n == 1 {
		return "1 week"
	}
	return fmt.Sprintf("%d weeks", n)
}

// truncate shortens s to width display cells.
func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(s)
}
