package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/urfave/cli/v3"

	"github.com/audit-lab/imsaudit/pkg/cli/config"
	"github.com/audit-lab/imsaudit/pkg/domain/types"
	"github.com/audit-lab/imsaudit/pkg/service/metrics"
	"github.com/audit-lab/imsaudit/pkg/service/report"
	"github.com/audit-lab/imsaudit/pkg/usecase"
)

func cmdReport() *cli.Command {
	var repoCfg config.Repository
	var seedCfg config.Seed

	var flags []cli.Flag
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, seedCfg.Flags()...)

	return &cli.Command{
		Name:  "report",
		Usage: "Print an analytics summary to the terminal",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, closeRepo, err := buildUseCases(ctx, &repoCfg, &seedCfg)
			if err != nil {
				return err
			}
			defer closeRepo()

			printSummary(uc)
			return nil
		},
	}
}

func printSummary(uc *usecase.UseCases) {
	title := color.New(color.Bold, color.FgCyan)
	label := color.New(color.Bold)

	title.Println("IMS Audit Summary")
	fmt.Println()

	rs := uc.RiskStats()
	label.Println("Risks")
	fmt.Printf("  Total: %d\n", rs.Total)
	fmt.Printf("  %s: %d  %s: %d  %s: %d\n",
		color.RedString("High"), rs.High,
		color.YellowString("Medium"), rs.Medium,
		color.GreenString("Low"), rs.Low,
	)
	fmt.Printf("  By area: Quality %d, Environment %d, OH&S %d, IMS %d\n",
		rs.ByArea.Quality, rs.ByArea.Environment, rs.ByArea.OHS, rs.ByArea.IMS)
	fmt.Println()

	fs := uc.FindingStats()
	label.Println("Findings")
	fmt.Printf("  Total: %d (NC %d, OBS %d, OFI %d)\n", fs.Total, fs.NC, fs.OBS, fs.OFI)
	fmt.Printf("  Open: %d  In Progress: %d  Closed: %d\n", fs.Open, fs.InProgress, fs.Closed)
	fmt.Println()

	ks := uc.KPIStats()
	label.Println("KPIs")
	fmt.Printf("  On target: %d of %d\n", ks.OnTarget, ks.Total)
	fmt.Printf("  Average performance: %.1f%%\n", ks.AvgPerformance)
	for _, k := range uc.GetKPIs() {
		fmt.Printf("  %s: %.0f%s (target %.0f%s, %s)\n",
			k.Name, k.Value, k.Unit, k.Target, k.Unit, report.FormatPerformance(k))
	}
	fmt.Println()

	high := uc.HighPriorityRisks()
	if len(high) == 0 {
		return
	}

	label.Println("High priority risks")
	for _, r := range high {
		line := fmt.Sprintf("  [%s] %s (score %d, %s)", r.ID, r.Description, r.Score(), r.Owner)
		if metrics.Classify(r.Score()) == types.RiskLevelHigh {
			color.Red(line)
		} else {
			fmt.Println(line)
		}
	}
}
