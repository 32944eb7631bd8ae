package utils

import (
	"fmt"
	"io"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/elC0mpa/aws-logclass-doctor/model"
	"github.com/elC0mpa/aws-logclass-doctor/service/report"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// DrawLogClassTable prints the top log groups by Standard cost, followed by
// totals across every group. top <= 0 prints all of them.
func DrawLogClassTable(w io.Writer, summary *model.LogClassReport, top int) {
	fmt.Fprintf(w, "\n%s\n", text.FgHiWhite.Sprint(" 🏥  AWS LOG CLASS DOCTOR"))
	fmt.Fprintf(w, " Account ID: %s\n", text.FgBlue.Sprint(summary.AccountID))
	fmt.Fprintf(w, " Window: %s -> %s\n", summary.Window.Start.Format("2006-01-02"), summary.Window.End.Format("2006-01-02"))
	fmt.Fprintln(w, text.FgHiBlue.Sprint(" ------------------------------------------------"))

	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{
		"Log Group",
		"GetLogEvents",
		"FilterLogEvents",
		"Ingested",
		"Standard",
		"Infrequent Access",
		"Savings",
		"IA Eligible",
	})

	for _, record := range TopByStandardCost(summary.Cost.Records, top) {
		tw.AppendRow(populateLogGroupRow(record, summary.Usage))
	}

	tw.AppendFooter(table.Row{
		fmt.Sprintf("Total (%d groups)", len(summary.Cost.Records)),
		"",
		"",
		humanize.IBytes(toBytes(summary.Cost.TotalIncomingBytes())),
		formatUSD(summary.Cost.TotalStandardCost()),
		formatUSD(summary.Cost.TotalReducedCost()),
		text.FgHiGreen.Sprint(formatUSD(summary.Cost.TotalStandardCost() - summary.Cost.TotalReducedCost())),
		"",
	})

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
		{Number: 7, Align: text.AlignRight},
		{Number: 8, Align: text.AlignCenter},
	})
	tw.Render()

	if summary.ActualSpend != nil {
		fmt.Fprintf(w, " Actual CloudWatch spend in window: %s\n",
			text.FgHiYellow.Sprintf("%.2f %s", summary.ActualSpend.Amount, summary.ActualSpend.Unit))
	}
	fmt.Fprintf(w, " Cost analysis written to %s\n", summary.Cost.Path)
}

// TopByStandardCost returns the n most expensive records, most expensive
// first. Ties keep report order.
func TopByStandardCost(records []model.CostRecord, n int) []model.CostRecord {
	sorted := make([]model.CostRecord, len(records))
	copy(sorted, records)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StandardCost > sorted[j].StandardCost
	})

	if n > 0 && n < len(sorted) {
		sorted = sorted[:n]
	}

	return sorted
}

func populateLogGroupRow(record model.CostRecord, usage map[string]model.UsageRecord) table.Row {
	row := table.Row{
		record.LogGroupName,
		record.Value(report.ColumnGetLogEventsCount),
		record.Value(report.ColumnFilterLogEventsCnt),
		humanize.IBytes(toBytes(record.TotalIncomingBytes)),
		formatUSD(record.StandardCost),
		formatUSD(record.ReducedCost),
		formatUSD(record.Savings()),
		text.FgYellow.Sprint("?"),
	}

	if u, ok := usage[record.LogGroupName]; ok {
		if u.IAEligible() {
			row[7] = text.FgHiGreen.Sprint("yes")
		} else {
			row[7] = text.FgRed.Sprint("no")
		}
	}

	return row
}

func formatUSD(amount float64) string {
	return fmt.Sprintf("%.2f USD", amount)
}

func toBytes(v float64) uint64 {
	if v <= 0 {
		return 0
	}
	return uint64(v)
}
