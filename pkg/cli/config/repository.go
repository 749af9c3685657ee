package config

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/audit-lab/imsaudit/pkg/domain/interfaces"
	"github.com/audit-lab/imsaudit/pkg/repository/badgerdb"
	"github.com/audit-lab/imsaudit/pkg/repository/memory"
	"github.com/audit-lab/imsaudit/pkg/utils/logging"
)

// Repository holds CLI flags for snapshot store configuration
type Repository struct {
	backend string
	dbPath  string
}

// Flags returns CLI flags for repository configuration
func (r *Repository) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "repository-backend",
			Usage:       "Repository backend type (badger or memory)",
			Value:       "badger",
			Sources:     cli.EnvVars("IMSAUDIT_REPOSITORY_BACKEND"),
			Destination: &r.backend,
		},
		&cli.StringFlag{
			Name:        "badger-path",
			Usage:       "Directory of the BadgerDB snapshot store",
			Value:       "./data",
			Sources:     cli.EnvVars("IMSAUDIT_BADGER_PATH"),
			Destination: &r.dbPath,
		},
	}
}

// Backend returns the configured backend type
func (r *Repository) Backend() string {
	return r.backend
}

// Configure initializes and returns a snapshot repository based on the
// configured backend. The caller is responsible for calling Close() on the
// returned repository.
func (r *Repository) Configure(ctx context.Context) (interfaces.SnapshotRepository, error) {
	switch r.backend {
	case "badger":
		repo, err := badgerdb.New(r.dbPath)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to initialize badger repository")
		}
		logging.Default().Info("Using BadgerDB repository", "path", r.dbPath)
		return repo, nil

	case "memory":
		logging.Default().Info("Using in-memory repository (development mode)")
		return memory.New(), nil

	default:
		return nil, goerr.New("invalid repository backend", goerr.V("backend", r.backend))
	}
}
