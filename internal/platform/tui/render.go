// Package tui provides the Bubble Tea front ends for levelgen: the
// difficulty picker, the generation summary, the history browser and the
// SSH kiosk that serves them.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/levelgen/internal/generator"
	"github.com/vovakirdan/levelgen/internal/pipeline"
)

var (
	titleStyle        = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	itemStyle         = lipgloss.NewStyle()
	selectedItemStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	helpStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	labelStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	flagStyle         = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	errorStyle        = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	panelStyle        = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
)

// ambushStyles maps ambush kinds to their display colors.
var ambushStyles = map[generator.AmbushKind]lipgloss.Style{
	generator.AmbushSandstorm:    lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	generator.AmbushRaidingParty: lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	generator.AmbushBotSwarm:     lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	generator.AmbushSnowstorm:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
}

// RenderSummary formats a generation outcome for display. It is used both by
// the interactive session and by the generate command.
func RenderSummary(out *pipeline.Outcome) string {
	res := out.Result
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("%s level", res.Difficulty.Title())))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %d waves, %d flags (every %d)\n",
		labelStyle.Render("layout:"), res.Plan.WaveCount, res.Plan.FlagCount, res.Plan.FlagInterval)
	fmt.Fprintf(&b, "%s %d\n", labelStyle.Render("seed:  "), out.Seed)
	if out.Path != "" {
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("file:  "), out.Path)
	}

	names := make([]string, len(res.Roster))
	for i, e := range res.Roster {
		names[i] = fmt.Sprintf("%s(%d)", e.Name, e.Cost)
	}
	fmt.Fprintf(&b, "%s %s\n\n", labelStyle.Render("roster:"), strings.Join(names, " "))

	b.WriteString(panelStyle.Render(renderWaves(res)))
	return b.String()
}

// renderWaves renders one line per wave: budget, enemy count, plant food and
// ambush.
func renderWaves(res *generator.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-6s %-6s %-7s %-3s %s", "Wave", "Spent", "Enemies", "PF", "Ambush")

	for _, w := range res.Waves {
		b.WriteString("\n")

		label := fmt.Sprintf("%-6d", w.Index)
		if w.Flag {
			label = flagStyle.Render(fmt.Sprintf("%-6s", fmt.Sprintf("%dF", w.Index)))
		}

		pf := "-"
		if w.Plantfood {
			pf = "+1"
		}

		ambush := "-"
		if w.Ambush != nil {
			kind := w.Ambush.Kind()
			ambush = ambushStyles[kind].Render(kind.String())
		}

		fmt.Fprintf(&b, "%s %-6d %-7d %-3s %s", label, w.Budget, len(w.Enemies), pf, ambush)
	}

	return b.String()
}
