package cli

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bagdasarian/time-worked-alert/internal/db"
	"github.com/bagdasarian/time-worked-alert/internal/repository/postgres"
	"github.com/bagdasarian/time-worked-alert/internal/roster"
)

func newRosterCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roster",
		Short: "Manage leader handles and excluded names",
	}
	cmd.AddCommand(newRosterImportCmd(e))
	cmd.AddCommand(newRosterShowCmd(e))
	return cmd
}

func newRosterImportCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "import",
		Short: "Write the built-in roster to Postgres, replacing existing rows",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			database, err := db.NewPostgres(ctx, e.cfg.Database)
			if err != nil {
				return err
			}
			defer database.Close()

			static := roster.Static()
			repo := postgres.NewRosterRepository(database)
			if err := repo.ImportRoster(ctx, static.Leaders(), static.ExcludedNames()); err != nil {
				return err
			}

			e.logger.Info("roster imported",
				zap.Int("leaders", len(static.Leaders())),
				zap.Int("excluded", len(static.ExcludedNames())),
			)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "imported %d leaders, %d excluded names\n",
				len(static.Leaders()), len(static.ExcludedNames()))
			return nil
		},
	}
}

func newRosterShowCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the roster from the configured source (ROSTER_SOURCE)",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := loadRoster(cmd.Context(), e.cfg, e.logger)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			leaders := r.Leaders()
			for _, name := range slices.Sorted(maps.Keys(leaders)) {
				_, _ = fmt.Fprintf(out, "%s\t%s\n", name, strings.Join(leaders[name], " "))
			}
			for _, name := range r.ExcludedNames() {
				_, _ = fmt.Fprintf(out, "excluded\t%s\n", name)
			}
			return nil
		},
	}
}
