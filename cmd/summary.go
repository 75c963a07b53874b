package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/startupcalc/internal/cli"
	"github.com/theirongolddev/startupcalc/internal/pipeline"
	"github.com/theirongolddev/startupcalc/internal/report"
)

var flagSummaryItems bool

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Category totals, runway, and cost breakdown",
	RunE:  runSummary,
}

func init() {
	summaryCmd.Flags().BoolVar(&flagSummaryItems, "items", false, "Also list every item with a non-zero amount")
	rootCmd.AddCommand(summaryCmd)
}

const emptyChartMessage = "Add some costs to see your expense breakdown"

func runSummary(_ *cobra.Command, _ []string) error {
	s, err := loadSession()
	if err != nil {
		return err
	}

	values := s.values.Snapshot()
	agg := pipeline.Aggregate(s.cat.Categories, values)
	runway := pipeline.Runway(s.cat.Categories, values)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("STARTUP COSTS  %s", report.DisplayName(s.business))))
	fmt.Println()

	rows := make([][]string, 0, len(agg.Categories)+2)
	for _, ct := range agg.Categories {
		rows = append(rows, []string{ct.Title, s.money.Format(ct.Total), cli.FormatPercent(ct.Percent)})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"Total", s.money.Format(agg.GrandTotal), "100%"})

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Cost Summary",
		Headers: []string{"Category", "Amount", "Share"},
		Rows:    rows,
	}))
	fmt.Println()

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Runway",
		Headers: []string{"", "Amount"},
		Rows: [][]string{
			{"One-time Costs", s.money.Format(runway.OneTime)},
			{"Monthly Costs", s.money.Format(runway.Monthly)},
			{fmt.Sprintf("%d-Month Runway", pipeline.RunwayMonths), s.money.Format(runway.SixMonthProjection)},
			{"---"},
			{"Total Startup Cost", s.money.Format(runway.Total)},
		},
	}))
	for _, title := range pipeline.UntaggedCategories(s.cat.Categories) {
		fmt.Println(cli.RenderWarning(fmt.Sprintf("%s is neither one-time nor recurring; left out of the runway", title)))
	}
	fmt.Println()

	if flagSummaryItems {
		printItems(s)
	}

	chart := pipeline.ChartSlices(agg)
	if len(chart) == 0 {
		fmt.Println("  " + cli.RenderMuted(emptyChartMessage))
		return nil
	}

	labelW := 0
	for _, sl := range chart {
		labelW = max(labelW, len(sl.Title))
	}
	var peak int64
	for _, sl := range chart {
		peak = max(peak, sl.Value)
	}
	for _, sl := range chart {
		suffix := fmt.Sprintf("%s  %s", s.money.Compact(sl.Value), cli.FormatPercent(sl.Percent))
		fmt.Println(cli.RenderHorizontalBar(sl.Title, labelW, sl.Value, peak, 30, suffix))
	}
	fmt.Println()
	return nil
}

func printItems(s *session) {
	rep := s.report()
	for _, sec := range rep.PaginatedSections() {
		rows := make([][]string, 0, len(sec.Items)+2)
		for _, it := range sec.Items {
			rows = append(rows, []string{it.Label, s.money.Format(it.Amount)})
		}
		rows = append(rows, []string{"---"})
		rows = append(rows, []string{"Subtotal", s.money.Format(sec.Subtotal)})

		fmt.Print(cli.RenderTable(cli.Table{
			Title:   sec.Title,
			Headers: []string{"Item", "Amount"},
			Rows:    rows,
		}))
		fmt.Println()
	}
}
