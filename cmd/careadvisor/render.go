package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cleitonmarx/symbiont-ai-careadvisor/internal/adapters/inbound/http/gen"
)

var (
	primary = lipgloss.Color("#00a7a0")
	danger  = lipgloss.Color("#e5484d")
	dim     = lipgloss.Color("#6e7681")

	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(primary)
	headingStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	dimStyle     = lipgloss.NewStyle().Foreground(dim)
	noteStyle    = lipgloss.NewStyle().Italic(true).Foreground(dim)
	boxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(primary).Padding(0, 1)
	errorBox     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(danger).Padding(0, 1)
	errorTitle   = lipgloss.NewStyle().Bold(true).Foreground(danger)
)

func renderAdvice(r gen.AdviceResp, verbose bool) string {
	header := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Care advice"),
		dimStyle.Render(fmt.Sprintf("topic: %s  sentiment: %s (%.2f)  request: %s",
			orDash(r.Topic), r.Sentiment.Label, r.Sentiment.Score, r.RequestId)),
	)

	if r.Error != nil {
		lines := []string{
			errorTitle.Render(fmt.Sprintf("No advice could be produced (%s)", r.Error.Kind)),
			r.Error.Message,
		}
		if verbose && r.Error.Raw != nil && *r.Error.Raw != "" {
			lines = append(lines, "", dimStyle.Render("raw model output:"), *r.Error.Raw)
		}
		return lipgloss.JoinVertical(lipgloss.Left, header, errorBox.Render(strings.Join(lines, "\n")))
	}
	if r.Advice == nil {
		return header
	}

	a := r.Advice
	var sections []string

	items := make([]string, 0, len(a.PossibleConditions))
	for _, c := range a.PossibleConditions {
		items = append(items, fmt.Sprintf("%s (%.0f%%): %s", c.Condition, c.Confidence*100, c.Explanation))
	}
	sections = append(sections, section("Possible conditions", items))

	items = items[:0:0]
	for _, m := range a.FirstAidMedications {
		items = append(items, fmt.Sprintf("%s: %s", m.Medication, m.Rationale))
	}
	sections = append(sections, section("First aid and medication", items))

	items = items[:0:0]
	for _, n := range a.NutritionalRecommendations {
		items = append(items, fmt.Sprintf("%s: %s", n.Recommendation, n.Rationale))
	}
	sections = append(sections, section("Nutrition", items))

	if len(a.AiClinicalInsights) > 0 {
		items = items[:0:0]
		for _, in := range a.AiClinicalInsights {
			items = append(items, fmt.Sprintf("%s: %s (%s)", in.Technology, in.Application, in.Evidence))
		}
		sections = append(sections, section("Clinical technology insights", items))
	}
	if strings.TrimSpace(a.AdditionalClinicalInsights) != "" {
		sections = append(sections, headingStyle.Render("Additional insights")+"\n"+a.AdditionalClinicalInsights)
	}

	body := boxStyle.Render(strings.Join(sections, "\n\n"))
	return lipgloss.JoinVertical(lipgloss.Left, header, body, noteStyle.Render(a.Disclaimer))
}

func section(title string, items []string) string {
	var sb strings.Builder
	sb.WriteString(headingStyle.Render(title))
	for _, it := range items {
		sb.WriteString("\n  • ")
		sb.WriteString(it)
	}
	return sb.String()
}

func renderRequestError(e gen.ErrorResp) string {
	return errorBox.Render(errorTitle.Render(string(e.Error.Code)) + "\n" + e.Error.Message)
}

func renderTopics(t gen.TopicsResp) string {
	lines := []string{titleStyle.Render("Knowledge base topics")}
	for _, topic := range t.Topics {
		lines = append(lines, fmt.Sprintf("  %s %s", topic.Topic, dimStyle.Render(fmt.Sprintf("(%d facts)", topic.FactCount))))
	}
	return strings.Join(lines, "\n")
}

func renderTopicDetail(t gen.TopicDetail) string {
	return section(t.Topic, t.Facts)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
