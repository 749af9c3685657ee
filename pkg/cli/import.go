package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/audit-lab/imsaudit/pkg/cli/config"
	"github.com/audit-lab/imsaudit/pkg/domain/types"
	"github.com/audit-lab/imsaudit/pkg/service/ingest"
	"github.com/audit-lab/imsaudit/pkg/utils/logging"
)

func cmdImport() *cli.Command {
	var kind string
	var showTemplate bool
	var repoCfg config.Repository
	var seedCfg config.Seed

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "kind",
			Usage:       "Import kind (risks or findings)",
			Value:       "risks",
			Sources:     cli.EnvVars("IMSAUDIT_IMPORT_KIND"),
			Destination: &kind,
		},
		&cli.BoolFlag{
			Name:        "template",
			Usage:       "Print a sample CSV for the selected kind and exit",
			Destination: &showTemplate,
		},
	}

	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, seedCfg.Flags()...)

	return &cli.Command{
		Name:      "import",
		Usage:     "Import risks or findings from a CSV file",
		ArgsUsage: "<file.csv>",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			importKind, err := types.ParseImportKind(kind)
			if err != nil {
				return err
			}

			if showTemplate {
				fmt.Print(ingest.Template(importKind))
				return nil
			}

			if c.Args().Len() != 1 {
				return goerr.New("import requires exactly one CSV file argument")
			}
			path := c.Args().First()

			data, err := os.ReadFile(path)
			if err != nil {
				return goerr.Wrap(err, "failed to read CSV file", goerr.V("path", path))
			}

			uc, closeRepo, err := buildUseCases(ctx, &repoCfg, &seedCfg)
			if err != nil {
				return err
			}
			defer closeRepo()

			result, err := uc.ImportCSV(ctx, importKind, string(data))
			if err != nil {
				return goerr.Wrap(err, "failed to import CSV", goerr.V("path", path))
			}

			logging.Default().Info("Import completed",
				"batch_id", result.BatchID,
				"kind", result.Kind,
				"imported", result.Imported,
			)
			return nil
		},
	}
}
