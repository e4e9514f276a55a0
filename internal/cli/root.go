// Package cli wires the dockerdash commands together.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rusenback/dockerdash/internal/config"
	"github.com/rusenback/dockerdash/internal/docker"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	cfgFile string
	v       = config.New()
)

// flagKeys maps persistent flag names to config keys.
var flagKeys = map[string]string{
	"host":           "host",
	"tls-verify":     "tls_verify",
	"cert-path":      "cert_path",
	"timeout":        "timeout",
	"list-interval":  "list_interval",
	"stats-interval": "stats_interval",
	"frame-interval": "frame_interval",
	"log-file":       "log_file",
	"log-level":      "log_level",
}

var rootCmd = &cobra.Command{
	Use:   "dockerdash",
	Short: "Terminal dashboard for Docker containers",
	Long: `dockerdash shows every container on a Docker engine as a card with its
status, health, ports and a live CPU, memory or GPU usage chart.

Keys:
  ←/h →/l  switch between CPU, memory and GPU
  g        show or hide the charts
  q        quit`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return dashboardCommand(cmd.Context(), cfg)
	},
}

func init() {
	d := config.Default()
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default ~/.config/dockerdash/config.yaml)")
	pf.String("host", d.Host, "Docker engine address")
	pf.Bool("tls-verify", d.TLSVerify, "use TLS with the certificates in --cert-path")
	pf.String("cert-path", d.CertPath, "directory holding ca.pem, cert.pem and key.pem")
	pf.Duration("timeout", d.Timeout, "timeout for each engine request")
	pf.Duration("list-interval", d.ListInterval, "container list poll interval (min 1s)")
	pf.Duration("stats-interval", d.StatsInterval, "stats poll interval (min 1s)")
	pf.Duration("frame-interval", d.FrameInterval, "redraw interval (max 1s)")
	pf.String("log-file", d.LogFile, "write logs to this file")
	pf.String("log-level", d.LogLevel, "log level: debug, info, warn or error")

	bindFlags(rootCmd, v)
}

func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	for name, key := range flagKeys {
		if err := v.BindPFlag(key, cmd.PersistentFlags().Lookup(name)); err != nil {
			panic(fmt.Sprintf("bind flag %s: %v", name, err))
		}
	}
}

func loadConfig() (*config.Config, error) {
	return config.Load(v, cfgFile)
}

// connect opens the engine client, adding a hint when the engine is not
// reachable.
func connect(ctx context.Context, cfg *config.Config, log *zap.Logger) (*docker.Client, error) {
	client, err := docker.NewClient(ctx, docker.Config{
		Host:      cfg.Host,
		TLSVerify: cfg.TLSVerify,
		CertPath:  cfg.CertPath,
		Timeout:   cfg.Timeout,
	}, log.Named("docker"))
	if err != nil {
		return nil, connectError(cfg.Host, err)
	}
	return client, nil
}

func connectError(host string, err error) error {
	return fmt.Errorf(`failed to connect to Docker at %s: %w

Make sure Docker is running:
  sudo systemctl start docker
  sudo usermod -aG docker $USER`, host, err)
}

// Execute runs the root command. SIGINT and SIGTERM cancel the command context.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		stop()
		os.Exit(1)
	}
}
