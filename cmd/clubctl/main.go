// Command clubctl is the admin CLI for the club site: schema setup, Graamys
// results from the terminal and event calendar helpers.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"clubsite/internal/config"
	"clubsite/internal/logging"
)

// cli carries what every subcommand shares.
type cli struct {
	cfg *config.AppConfig
	log *zap.Logger
}

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:           "clubctl",
		Short:         "Admin tools for the club site",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&c.cfg.EventsFile, "events", c.cfg.EventsFile, "path to the events catalog")
	root.PersistentFlags().StringVar(&c.cfg.Database.Driver, "db-driver", c.cfg.Database.Driver, "postgres or sqlite")
	root.PersistentFlags().StringVar(&c.cfg.Database.SQLitePath, "sqlite-path", c.cfg.Database.SQLitePath, "SQLite database file")

	root.AddCommand(
		newMigrateCmd(c),
		newResultsCmd(c),
		newICSCmd(c),
		newCountdownCmd(c),
	)
	return root
}

func main() {
	cfg := config.Load()
	// Logs go to stderr so command output stays pipeable.
	c := &cli{cfg: cfg, log: logging.New(os.Stderr, cfg.Location())}
	defer c.log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(c).ExecuteContext(ctx); err != nil {
		c.log.Error("command_failed", zap.Error(err))
		os.Exit(1)
	}
}
