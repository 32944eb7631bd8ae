package utils

import (
	"fmt"
	"io"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
	"github.com/elC0mpa/aws-logclass-doctor/model"
)

const (
	ColorStandard = "#f46d43"
	ColorReduced  = "#66c2a5"
)

var defaultStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("#F4D060"))

// DrawCostChart draws one bar pair per log group: Standard cost next to
// Infrequent Access cost. Nothing is drawn when no group has ingested data.
func DrawCostChart(w io.Writer, costReport *model.CostReport, top int) {
	records := TopByStandardCost(costReport.Records, top)
	if len(records) == 0 || records[0].StandardCost == 0 {
		return
	}

	bc := barchart.New(130, 20)

	for _, record := range records {
		if record.StandardCost == 0 {
			continue
		}

		bc.Push(barchart.BarData{
			Label: getBarLabel(record.LogGroupName),
			Values: []barchart.BarValue{
				{
					Name:  "Standard",
					Value: record.StandardCost,
					Style: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorStandard)),
				},
				{
					Name:  "IA",
					Value: record.ReducedCost,
					Style: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorReduced)),
				},
			},
		})
	}

	bc.Draw()

	fmt.Fprintln(w)
	fmt.Fprintln(w, defaultStyle.Render(bc.View()))
}

// getBarLabel keeps the tail of long log group names, it is the part that differs
func getBarLabel(name string) string {
	const maxLabel = 12
	runes := []rune(name)
	if len(runes) <= maxLabel {
		return name
	}
	return "…" + string(runes[len(runes)-maxLabel+1:])
}
