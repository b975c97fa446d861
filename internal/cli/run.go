package cli

import (
	"fmt"
	"io"
	"log/slog"
	"sort"

	"github.com/spf13/cobra"

	"github.com/makerbooks/makerbooks/internal/harness"
)

// RunReport is the run command's payload: the full engine report stamped
// with a correlation ID.
type RunReport struct {
	ReportID string `json:"reportId"`
	harness.Report
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	return newRunCommand(rootOpts, UUIDv7Generator{})
}

// newRunCommand allows tests to inject a deterministic ID generator.
func newRunCommand(rootOpts *RootOptions, idGen ReportIDGenerator) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <state-file>",
		Short: "Compute the full financial model for a business state",
		Long: `Compute the full financial model for a business state file.

Produces per-product unit economics, aggregate monthly metrics, the
profit-and-loss waterfall with its tax reserve, and the strategy catalog.

Example:
  makerbooks run examples/workshop.json
  makerbooks run examples/workshop.yaml --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(rootOpts, idGen, args[0], cmd)
		},
	}
	return cmd
}

func runReport(opts *RootOptions, idGen ReportIDGenerator, path string, cmd *cobra.Command) error {
	loaded, err := LoadState(path)
	if err != nil {
		return err
	}

	report, err := harness.BuildReport(loaded.State)
	if err != nil {
		return WrapExitError(ExitCommandError, "build report", err)
	}

	run := RunReport{ReportID: idGen.Generate(), Report: report}
	slog.Debug("report computed",
		"report_id", run.ReportID,
		"state_hash", run.StateHash,
		"products", len(run.Metrics.Products),
	)

	if opts.Format == "json" {
		formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
		return formatter.Success(run)
	}
	renderReportText(cmd.OutOrStdout(), run)
	return nil
}

// renderReportText prints the report as a readable console summary: the
// per-product table, totals against the goal, the waterfall, and the
// strategy cards.
func renderReportText(w io.Writer, run RunReport) {
	fmt.Fprintf(w, "Report %s (state %.12s)\n\n", run.ReportID, run.StateHash)

	m := run.Metrics
	if len(m.Products) > 0 {
		fmt.Fprintln(w, "Products")
		for _, id := range sortedProductIDs(run) {
			p := m.Products[id]
			name := p.ProductName
			if name == "" {
				name = p.ProductID
			}
			fmt.Fprintf(w, "  %-24s %4d units/mo  revenue %10.2f  gross %10.2f  margin %6.1f%%  %.2f/hr\n",
				name, p.MonthlyUnits,
				p.Revenue.MonthlyRevenue, p.Revenue.MonthlyGrossProfit,
				p.Metrics.ProfitMargin*100, p.Metrics.HourlyRate)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "Monthly totals")
	fmt.Fprintf(w, "  units %d  hours %.1f  revenue %.2f  gross profit %.2f\n",
		m.TotalMonthlyUnits, m.TotalMonthlyHours, m.TotalMonthlyRevenue, m.TotalGrossProfit)
	fmt.Fprintf(w, "  average hourly rate %.2f\n", m.AverageHourlyRate)
	if m.MonthlyGoal > 0 {
		fmt.Fprintf(w, "  goal %.2f  achieved %.1f%%\n", m.MonthlyGoal, m.GoalAchievementPercentage)
	}
	if m.Marketing.TotalMonthlySpend > 0 {
		fmt.Fprintf(w, "  marketing spend %.2f  blended CAC %.2f\n",
			m.Marketing.TotalMonthlySpend, m.Marketing.BlendedCAC)
	}
	fmt.Fprintln(w)

	pl := run.PL
	fmt.Fprintln(w, "Profit & loss")
	fmt.Fprintf(w, "  revenue                 %12.2f\n", pl.Revenue)
	fmt.Fprintf(w, "  materials               %12.2f\n", pl.MaterialsCost)
	fmt.Fprintf(w, "  direct labor            %12.2f  (%s)\n", pl.DirectLaborCost, pl.DirectLaborSource)
	fmt.Fprintf(w, "  platform fees           %12.2f\n", pl.PlatformFeesCost)
	fmt.Fprintf(w, "  cogs                    %12.2f\n", pl.COGS)
	fmt.Fprintf(w, "  gross profit            %12.2f\n", pl.GrossProfit)
	fmt.Fprintf(w, "  indirect labor          %12.2f\n", pl.IndirectLaborCost)
	fmt.Fprintf(w, "  marketing               %12.2f\n", pl.MarketingCost)
	fmt.Fprintf(w, "  physical costs          %12.2f\n", pl.PhysicalCosts)
	fmt.Fprintf(w, "  software costs          %12.2f\n", pl.SoftwareCosts)
	fmt.Fprintf(w, "  savings                 %12.2f\n", pl.SavingsAmount)
	fmt.Fprintf(w, "  pre-tax profit          %12.2f\n", pl.PreTaxProfit)
	fmt.Fprintf(w, "  tax reserve (%.1f%%)     %12.2f\n", pl.TaxRate, pl.TaxAmount)
	fmt.Fprintf(w, "  net profit              %12.2f\n", pl.NetProfit)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Strategies")
	for _, s := range run.Strategies.Strategies {
		fmt.Fprintf(w, "  %-22s target %.0f/hr (now %.2f/hr)  risk %-6s  %d months\n",
			s.Name, s.TargetHourlyRate, s.CurrentHourlyRate, s.RiskLevel, s.TimeframeMonths)
	}
}

func sortedProductIDs(run RunReport) []string {
	ids := make([]string, 0, len(run.Metrics.Products))
	for id := range run.Metrics.Products {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
