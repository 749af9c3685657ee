package cli

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/audit-lab/imsaudit/pkg/cli/config"
	"github.com/audit-lab/imsaudit/pkg/service/report"
	"github.com/audit-lab/imsaudit/pkg/usecase"
	"github.com/audit-lab/imsaudit/pkg/utils/safe"
)

func cmdExport() *cli.Command {
	var format string
	var output string
	var repoCfg config.Repository
	var seedCfg config.Seed

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "format",
			Aliases:     []string{"f"},
			Usage:       "Export format (state, report, csv or text)",
			Value:       "state",
			Sources:     cli.EnvVars("IMSAUDIT_EXPORT_FORMAT"),
			Destination: &format,
		},
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "Output file (stdout when omitted)",
			Sources:     cli.EnvVars("IMSAUDIT_EXPORT_OUTPUT"),
			Destination: &output,
		},
	}

	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, seedCfg.Flags()...)

	return &cli.Command{
		Name:  "export",
		Usage: "Export state or reports to a file",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, closeRepo, err := buildUseCases(ctx, &repoCfg, &seedCfg)
			if err != nil {
				return err
			}
			defer closeRepo()

			var w io.Writer = os.Stdout
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return goerr.Wrap(err, "failed to create output file", goerr.V("path", output))
				}
				defer safe.Close(ctx, f)
				w = f
			}

			return writeExport(w, uc, format, time.Now())
		},
	}
}

func writeExport(w io.Writer, uc *usecase.UseCases, format string, now time.Time) error {
	snap := uc.Snapshot()

	switch format {
	case "state":
		return report.WriteJSON(w, snap)
	case "report":
		return report.WriteJSON(w, report.Build(snap, uc.AuditPlan(), now))
	case "csv":
		return report.WriteRisksCSV(w, snap.Risks)
	case "text":
		return report.WriteText(w, snap, uc.AuditPlan(), now)
	default:
		return goerr.New("unknown export format", goerr.V("format", format))
	}
}
