package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/audit-lab/imsaudit/pkg/cli/config"
	httpctrl "github.com/audit-lab/imsaudit/pkg/controller/http"
	"github.com/audit-lab/imsaudit/pkg/usecase"
	"github.com/audit-lab/imsaudit/pkg/utils/logging"
)

func cmdServe() *cli.Command {
	var addr string
	var repoCfg config.Repository
	var seedCfg config.Seed

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("IMSAUDIT_ADDR"),
			Destination: &addr,
		},
	}

	// Add shared config flags
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, seedCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, closeRepo, err := buildUseCases(ctx, &repoCfg, &seedCfg)
			if err != nil {
				return err
			}
			defer closeRepo()

			server := &http.Server{
				Addr:              addr,
				Handler:           httpctrl.New(uc),
				ReadHeaderTimeout: 30 * time.Second,
			}

			// Setup signal handling for graceful shutdown
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			errCh := make(chan error, 1)
			go func() {
				logging.Default().Info("Starting HTTP server", "addr", addr)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "failed to start server")
				}
			}()

			select {
			case err := <-errCh:
				return err
			case sig := <-sigCh:
				logging.Default().Info("Received shutdown signal", "signal", sig)

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}

				logging.Default().Info("Server shutdown completed")
				return nil
			}
		},
	}
}

// buildUseCases wires the repository, seed defaults and use cases shared by
// the serve, import, export and report commands. The returned closer must be
// called when the command finishes.
func buildUseCases(ctx context.Context, repoCfg *config.Repository, seedCfg *config.Seed) (*usecase.UseCases, func(), error) {
	repo, err := repoCfg.Configure(ctx)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to initialize repository")
	}
	closeRepo := func() {
		if err := repo.Close(); err != nil {
			logging.Default().Error("failed to close repository", "error", err.Error())
		}
	}

	defaults, auditPlan, err := seedCfg.Configure()
	if err != nil {
		closeRepo()
		return nil, nil, goerr.Wrap(err, "failed to load seed data")
	}

	uc := usecase.New(repo,
		usecase.WithDefaults(defaults),
		usecase.WithAuditPlan(auditPlan),
	)
	if err := uc.Init(ctx); err != nil {
		closeRepo()
		return nil, nil, goerr.Wrap(err, "failed to initialize state")
	}

	return uc, closeRepo, nil
}
