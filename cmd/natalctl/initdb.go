package main

import (
	"database/sql"
	"errors"
	"fmt"
	"natal-position-service/internal/adapters/cache"
	"natal-position-service/internal/platform/db"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func initDBCmd(st *cliState) *cobra.Command {
	var sqlitePath string

	c := &cobra.Command{
		Use:   "init-db",
		Short: "Create the cache tables in Postgres (DATABASE_URL) or a SQLite file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				conn   *sql.DB
				err    error
				target string
			)
			switch {
			case sqlitePath != "":
				conn, err = db.OpenSqlite(cmd.Context(), sqlitePath)
				target = sqlitePath
			case st.cfg.DatabaseURL != "":
				conn, err = db.OpenPostgres(cmd.Context(), st.cfg.DatabaseURL)
				target = "postgres"
			default:
				return errors.New("DATABASE_URL or --sqlite is required")
			}
			if err != nil {
				return err
			}
			defer conn.Close()

			zap.L().Info("initializing cache schema", zap.String("target", target))
			if err := cache.InitSchema(cmd.Context(), conn); err != nil {
				return fmt.Errorf("schema initialization failed: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "schema ready (%s)\n", target)
			return nil
		},
	}

	c.Flags().StringVar(&sqlitePath, "sqlite", "", "initialize this SQLite file instead of DATABASE_URL")
	return c
}
