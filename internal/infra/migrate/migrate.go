package migrate

import (
	"context"
	"io/fs"
	"log/slog"
	"sort"
	"strings"

	"field-booking/internal/pkg/config"
	"field-booking/internal/pkg/errs"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const createVersionTable = `CREATE TABLE IF NOT EXISTS schema_migrations (
	version text PRIMARY KEY,
	applied_at timestamptz NOT NULL DEFAULT now()
)`

// Runner applies the embedded *.sql files in lexical order, once each.
type Runner struct {
	pool   *pgxpool.Pool
	files  fs.FS
	logger *slog.Logger
}

func NewRunner(pool *pgxpool.Pool, files fs.FS, logger *slog.Logger) *Runner {
	return &Runner{pool: pool, files: files, logger: logger}
}

func (r *Runner) Up(ctx context.Context) (int, error) {
	if _, err := r.pool.Exec(ctx, createVersionTable); err != nil {
		return 0, errs.Wrap(err, "failed to create schema_migrations")
	}

	names, err := fs.Glob(r.files, "*.sql")
	if err != nil {
		return 0, errs.Wrap(err, "failed to list migrations")
	}
	sort.Strings(names)

	applied := 0
	for _, name := range names {
		version := strings.TrimSuffix(name, ".sql")
		ok, err := r.apply(ctx, name, version)
		if err != nil {
			return applied, err
		}
		if ok {
			applied++
			r.logger.Info("migration applied", "version", version)
		}
	}
	return applied, nil
}

func (r *Runner) apply(ctx context.Context, name, version string) (bool, error) {
	body, err := fs.ReadFile(r.files, name)
	if err != nil {
		return false, errs.Wrapf(err, "failed to read %s", name)
	}

	applied := false
	err = pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `INSERT INTO schema_migrations (version) VALUES ($1) ON CONFLICT DO NOTHING`, version)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return nil
		}
		if _, err := tx.Exec(ctx, string(body)); err != nil {
			return err
		}
		applied = true
		return nil
	})
	if err != nil {
		return false, errs.Wrapf(err, "failed to apply %s", name)
	}
	return applied, nil
}

// AtlasApply delegates to the atlas CLI for environments that manage the
// schema with atlas revisions.
func AtlasApply(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	client, err := atlasexec.NewClient(".", cfg.Migrate.AtlasBin)
	if err != nil {
		return errs.Wrap(err, "failed to init atlas client")
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    cfg.DB.BuildDSN(),
		DirURL: cfg.Migrate.DirURL,
	})
	if err != nil {
		return errs.Wrap(err, "atlas migrate apply failed")
	}

	logger.Info("atlas migrate apply finished",
		"current", res.Current,
		"target", res.Target,
		"applied", len(res.Applied))
	return nil
}
