package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles controls terminal rendering of the text report
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Section  lipgloss.Style
	Label    lipgloss.Style
	Positive lipgloss.Style
	Negative lipgloss.Style
	Muted    lipgloss.Style
}

// DefaultStyles returns the standard color scheme
func DefaultStyles() *Styles {
	return &Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#04B575")),
		Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("#626262")),
		Section:  lipgloss.NewStyle().Bold(true),
		Label:    lipgloss.NewStyle().Foreground(lipgloss.Color("#626262")),
		Positive: lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true),
		Negative: lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F87")).Bold(true),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("#626262")).Italic(true),
	}
}

// WriteText writes a human-readable summary of the report. A nil
// styles uses DefaultStyles.
func (r *Report) WriteText(w io.Writer, styles *Styles) error {
	if styles == nil {
		styles = DefaultStyles()
	}

	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString(styles.Title.Render("Blackjack Strategy Simulation"))
	sb.WriteString("\n")
	sb.WriteString(styles.Subtitle.Render(fmt.Sprintf(
		"%d runs of %d hands, bankroll %.0f, seed %d",
		r.Config.Runs, r.Config.HandsPerRun, r.Config.StartingBankroll, r.Config.Seed)))
	sb.WriteString("\n")
	sb.WriteString(styles.Subtitle.Render(fmt.Sprintf(
		"%d decks, min bet %.0f, blackjack pays %.1fx, penetration %.2f",
		r.Config.Decks, r.Config.MinBet, r.Config.BlackjackPayout, r.Config.Penetration)))
	sb.WriteString("\n")
	if r.Config.HouseEdge > 0 {
		sb.WriteString(styles.Muted.Render(fmt.Sprintf(
			"house edge drain of %.2f%% applied to the flat bettor", r.Config.HouseEdge*100)))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	r.writeStrategy(&sb, styles, "Basic strategy", r.Results.Basic)
	r.writeStrategy(&sb, styles, "Card counting", r.Results.Counting)

	c := r.Results.Comparison
	sb.WriteString(styles.Section.Render("Comparison (counting - basic)"))
	sb.WriteString("\n")
	writeRow(&sb, styles, "Difference", fmt.Sprintf("%s  (95%% CI %.2f to %.2f)",
		signed(styles, c.MeanDifference), c.CI95Low, c.CI95High))
	writeRow(&sb, styles, "t statistic", fmt.Sprintf("%.3f on %.0f degrees of freedom",
		c.TStatistic, c.DegreesOfFreedom))
	writeRow(&sb, styles, "p-value", fmt.Sprintf("%.4f", c.PValue))
	writeRow(&sb, styles, "Effect size", fmt.Sprintf("%.2f (%s)", c.EffectSize, c.EffectLabel))
	sb.WriteString("\n")

	verdictStyle := styles.Muted
	if c.Significant {
		if c.MeanDifference > 0 {
			verdictStyle = styles.Positive
		} else {
			verdictStyle = styles.Negative
		}
	}
	sb.WriteString(verdictStyle.Render(fmt.Sprintf("Verdict: %s (p = %.4f)", c.Verdict, c.PValue)))
	sb.WriteString("\n")
	sb.WriteString(styles.Subtitle.Render(fmt.Sprintf(
		"%d hands in %.1fs (%.0f hands/sec)",
		r.Metadata.TotalHands, r.Metadata.DurationSeconds, r.Metadata.HandsPerSecond)))
	sb.WriteString("\n")

	_, err := fmt.Fprint(w, sb.String())
	return err
}

func (r *Report) writeStrategy(sb *strings.Builder, styles *Styles, title string, s StrategyStats) {
	sb.WriteString(styles.Section.Render(title))
	sb.WriteString("\n")
	writeRow(sb, styles, "Mean profit", fmt.Sprintf("%s  (95%% CI %.2f to %.2f)",
		signed(styles, s.MeanProfit), s.CI95Low, s.CI95High))
	writeRow(sb, styles, "Median", fmt.Sprintf("%.2f, std dev %.2f, std err %.2f",
		s.MedianProfit, s.StdDev, s.StdError))
	writeRow(sb, styles, "Percentiles", fmt.Sprintf("P5 %.0f, P25 %.0f, P75 %.0f, P95 %.0f",
		s.P05, s.P25, s.P75, s.P95))

	outcome := fmt.Sprintf("%.1f%% of runs profitable", s.WinRate*100)
	if s.BrokeRuns > 0 {
		outcome += fmt.Sprintf(", %d went broke", s.BrokeRuns)
	}
	writeRow(sb, styles, "Outcomes", outcome)
	writeRow(sb, styles, "Hands per run", fmt.Sprintf("%.1f", s.HandsPerRun))
	sb.WriteString("\n")
}

func writeRow(sb *strings.Builder, styles *Styles, label, value string) {
	sb.WriteString("  ")
	sb.WriteString(styles.Label.Render(fmt.Sprintf("%-14s", label)))
	sb.WriteString(" ")
	sb.WriteString(value)
	sb.WriteString("\n")
}

// signed renders a profit figure green when positive, red when
// negative.
func signed(styles *Styles, v float64) string {
	text := fmt.Sprintf("%+.2f", v)
	switch {
	case v > 0:
		return styles.Positive.Render(text)
	case v < 0:
		return styles.Negative.Render(text)
	default:
		return text
	}
}
