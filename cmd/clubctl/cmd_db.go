package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"clubsite/internal/app"
	"clubsite/internal/graamys"
	"clubsite/internal/model"
)

func newMigrateCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the nominations table if it does not exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, _, err := app.OpenNominations(cmd.Context(), c.cfg.Database, c.log)
			if err != nil {
				return err
			}
			defer db.Close()
			fmt.Fprintln(cmd.OutOrStdout(), "schema ready")
			return nil
		},
	}
}

func newResultsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "results",
		Short: "Print the top nominees for every Graamys category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, repo, err := app.OpenNominations(cmd.Context(), c.cfg.Database, c.log)
			if err != nil {
				return err
			}
			defer db.Close()

			records, err := repo.List(cmd.Context())
			if err != nil {
				return fmt.Errorf("list nominations: %w", err)
			}
			return printResults(cmd, graamys.TallyAll(records))
		},
	}
}

func printResults(cmd *cobra.Command, res graamys.Results) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "total votes\t%d\n", res.TotalVotes)
	for _, cat := range model.Categories {
		entries := res.ByCategory(cat)
		if len(entries) == 0 {
			fmt.Fprintf(w, "%s\t-\n", cat)
			continue
		}
		for i, e := range entries {
			label := ""
			if i == 0 {
				label = string(cat)
			}
			fmt.Fprintf(w, "%s\t%d. %s\t%d\n", label, i+1, e.Name, e.Count)
		}
	}
	return w.Flush()
}
