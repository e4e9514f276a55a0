package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rusenback/dockerdash/internal/docker"
	"github.com/rusenback/dockerdash/internal/logging"
	"github.com/rusenback/dockerdash/internal/tui/views"
	"github.com/spf13/cobra"
)

// listCmd prints every container once and exits
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print running and stopped containers",
	Long: `Print every container once, running containers first, without starting
the dashboard. Unhealthy containers show the output of their last failed
health check.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		log, closeLog, err := logging.New(cfg.LogFile, cfg.LogLevel)
		if err != nil {
			return err
		}
		defer closeLog()

		client, err := connect(cmd.Context(), cfg, log)
		if err != nil {
			return err
		}
		defer client.Close()

		return listContainers(cmd.Context(), cmd.OutOrStdout(), client, time.Now())
	},
}

func listContainers(ctx context.Context, w io.Writer, inspector docker.Inspector, now time.Time) error {
	containers, err := initialList(ctx, inspector)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, views.RenderList(containers, now))
	return err
}

func init() {
	rootCmd.AddCommand(listCmd)
}
