package output

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/rpgo/investment-projector/internal/domain"
)

// Theme colors (Flexoki Dark)
var (
	colorBorder    = lipgloss.Color("#282726")
	colorTextDim   = lipgloss.Color("#575653")
	colorTextMuted = lipgloss.Color("#6F6E69")
	colorText      = lipgloss.Color("#FFFCF0")
	colorAccent    = lipgloss.Color("#3AA99F")
	colorGreen     = lipgloss.Color("#879A39")
	colorOrange    = lipgloss.Color("#DA702C")
	colorRed       = lipgloss.Color("#D14D41")
	colorBlue      = lipgloss.Color("#4385BE")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorText).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	valueStyle = lipgloss.NewStyle().
			Foreground(colorText)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted).
			Italic(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)

	metricBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1).
			Width(24)
)

// riskColors tints the risk level metric
var riskColors = map[string]lipgloss.Color{
	"Low":         colorGreen,
	"Low-Medium":  colorBlue,
	"Medium":      colorBlue,
	"Medium-High": colorOrange,
	"High":        colorOrange,
	"Very High":   colorRed,
}

// ConsoleFormatter renders a bordered terminal dashboard per asset class:
// headline metrics, the yearly growth table and the Monte Carlo range.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }
func (c ConsoleFormatter) Extension() string { return "txt" }

func (c ConsoleFormatter) Format(report *domain.Report) ([]byte, error) {
	var b strings.Builder
	for i, ar := range report.Assets {
		if i > 0 {
			b.WriteString("\n")
		}
		renderAsset(&b, ar)
	}
	return []byte(b.String()), nil
}

func renderAsset(b *strings.Builder, ar domain.AssetReport) {
	b.WriteString(renderTitle(assetTitle(ar) + " Dashboard"))
	b.WriteString("\n")
	if ar.Asset.Description != "" {
		b.WriteString(mutedStyle.Render(ar.Asset.Description))
		b.WriteString("\n")
	}

	riskStyle := valueStyle
	if color, ok := riskColors[ar.Asset.RiskLevel]; ok {
		riskStyle = valueStyle.Foreground(color)
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		renderMetric("Risk Level", riskStyle.Render(orDash(ar.Asset.RiskLevel))),
		renderMetric("Expected Annual Return", valueStyle.Render(FormatPercentage(ar.Asset.ExpectedReturn))),
		renderMetric("Volatility (Std Dev)", valueStyle.Render(FormatPercentage(ar.Asset.Volatility))),
	))
	b.WriteString("\n")

	if len(ar.Growth) > 0 {
		b.WriteString(headerStyle.Render("Projected Returns"))
		b.WriteString("\n")
		b.WriteString(renderGrowthTable(ar.Growth))
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("Balance  " + sparkline(ar.Growth)))
		b.WriteString("\n")
	}

	if ar.Risk != nil {
		b.WriteString("\n")
		b.WriteString(headerStyle.Render("Risk Analysis & Range (Monte Carlo)"))
		b.WriteString("\n")
		b.WriteString(valueStyle.Render("Based on " + FormatPercentage(ar.Asset.Volatility) +
			" volatility, the outcome after " + strconv.Itoa(ar.Plan.HorizonYears) + " years ranges between:"))
		b.WriteString("\n")
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			renderMetric("Pessimistic (5%)", valueStyle.Foreground(colorRed).Render(FormatCurrency(ar.Risk.P5))),
			renderMetric("Median (50%)", valueStyle.Render(FormatCurrency(ar.Risk.P50))),
			renderMetric("Optimistic (95%)", valueStyle.Foreground(colorGreen).Render(FormatCurrency(ar.Risk.P95))),
		))
		b.WriteString("\n")
		if ar.RiskBasis > 0 {
			b.WriteString(mutedStyle.Render("Range treats " + FormatAmount(ar.RiskBasis) +
				" (principal plus all contributions) as a single lump sum over " +
				strconv.Itoa(ar.Simulations) + " simulations."))
			b.WriteString("\n")
		}
	}
}

// renderTitle renders a centered title bar in a bordered box.
func renderTitle(title string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Width(76).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

func renderMetric(label, value string) string {
	return metricBoxStyle.Render(dimStyle.Render(label) + "\n" + value)
}

func renderGrowthTable(series domain.GrowthSeries) string {
	rows := make([][]string, 0, len(series))
	for _, snap := range series {
		rows = append(rows, []string{
			strconv.Itoa(snap.Year),
			FormatCurrency(snap.Balance),
			FormatCurrency(snap.TotalPrincipal),
			FormatCurrency(snap.Interest),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(dimStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			if col == 0 {
				return valueStyle.Padding(0, 1)
			}
			return valueStyle.Padding(0, 1).Align(lipgloss.Right)
		}).
		Headers("Year", "Balance", "Total Principal", "Interest").
		Rows(rows...)

	return t.String()
}

// sparkline draws the balance path as unicode blocks, one per year.
func sparkline(series domain.GrowthSeries) string {
	if len(series) == 0 {
		return ""
	}

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	values := make([]float64, len(series))
	max := 0.0
	for i, snap := range series {
		values[i] = snap.Balance.InexactFloat64()
		if values[i] > max {
			max = values[i]
		}
	}
	if max == 0 {
		max = 1
	}

	var b strings.Builder
	for _, v := range values {
		idx := int(v / max * float64(len(blocks)-1))
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		if idx < 0 {
			idx = 0
		}
		b.WriteRune(blocks[idx])
	}
	return b.String()
}
