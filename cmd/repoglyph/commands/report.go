package commands

import (
	"fmt"
	"os"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/repoglyph/pkg/descriptor"
)

// maxContributorBars bounds the author bar chart.
const maxContributorBars = 20

// ReportCommand holds the configuration for the report command.
type ReportCommand struct {
	sources sourceFlags
	out     string
}

// NewReportCommand creates and configures the report command.
func NewReportCommand() *cobra.Command {
	rc := &ReportCommand{}

	cobraCmd := &cobra.Command{
		Use:   "report [descriptor.json]",
		Short: "Write an HTML statistics page for a repository",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return rc.run(cmd, args)
		},
	}

	rc.sources.register(cobraCmd)
	cobraCmd.Flags().StringVarP(&rc.out, "out", "o", "repoglyph-report.html", "output HTML file")

	return cobraCmd
}

func (rc *ReportCommand) run(cmd *cobra.Command, args []string) error {
	src, err := rc.sources.provider(args, 0)
	if err != nil {
		return err
	}

	repo, err := src.Describe(cmd.Context())
	if err != nil {
		return fmt.Errorf("describe repository: %w", err)
	}

	page := components.NewPage()
	page.PageTitle = "repoglyph - " + repo.Name

	if pie := languagePie(repo); pie != nil {
		page.AddCharts(pie)
	}

	if bar := contributorBar(repo); bar != nil {
		page.AddCharts(bar)
	}

	if line := activityLine(repo); line != nil {
		page.AddCharts(line)
	}

	f, err := os.Create(rc.out)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	defer f.Close()

	renderErr := page.Render(f)
	if renderErr != nil {
		return fmt.Errorf("render report: %w", renderErr)
	}

	fmt.Fprintf(os.Stdout, "report written to %s\n", rc.out)

	return nil
}

func languagePie(repo *descriptor.Repository) *charts.Pie {
	if len(repo.Languages) == 0 {
		return nil
	}

	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Languages"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item"}),
	)

	pieData := make([]opts.PieData, len(repo.Languages))
	for i, lang := range repo.Languages {
		pieData[i] = opts.PieData{Name: lang.Name, Value: lang.Bytes}
	}

	pie.AddSeries("Languages", pieData).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Formatter: "{b}: {d}%",
		}))

	return pie
}

func contributorBar(repo *descriptor.Repository) *charts.Bar {
	if len(repo.Contributors) == 0 {
		return nil
	}

	contributors := repo.Contributors
	if len(contributors) > maxContributorBars {
		contributors = contributors[:maxContributorBars]
	}

	labels := make([]string, len(contributors))
	values := make([]opts.BarData, len(contributors))

	for i, c := range contributors {
		labels[i] = c.Name
		values[i] = opts.BarData{Value: c.Contributions}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Contributors"}),
		charts.WithXAxisOpts(opts.XAxis{AxisLabel: &opts.AxisLabel{Rotate: 45}}),
	)
	bar.SetXAxis(labels)
	bar.AddSeries("Contributions", values)

	return bar
}

// activityLine plots commits per month in chronological order.
func activityLine(repo *descriptor.Repository) *charts.Line {
	if len(repo.Commits) == 0 {
		return nil
	}

	counts := map[string]int{}

	for i := range repo.Commits {
		ts := repo.Commits[i].Timestamp
		if ts.IsZero() {
			continue
		}

		counts[ts.Format("2006-01")]++
	}

	if len(counts) == 0 {
		return nil
	}

	months := make([]string, 0, len(counts))
	for month := range counts {
		months = append(months, month)
	}

	sort.Strings(months)

	values := make([]opts.LineData, len(months))
	for i, month := range months {
		values[i] = opts.LineData{Value: counts[month]}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Commit activity"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Month"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Commits"}),
	)
	line.SetXAxis(months)
	line.AddSeries("Commits", values,
		charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}),
	)

	return line
}
