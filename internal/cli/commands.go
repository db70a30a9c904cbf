package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"StockChart/internal/config"
	"StockChart/internal/logger"
	"StockChart/internal/scheduler"
	"StockChart/internal/server"
)

// Version is set at build time with -ldflags.
var Version = "dev"

type globalFlags struct {
	configPath string
	debug      bool
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "stockchart",
		Short: "StockChart - daily stock chart renderer",
		Long: `StockChart turns a daily trade series into a price and volume chart.
It can render once, re-render on a schedule, or serve the chart over HTTP.`,
		SilenceUsage: true,
	}

	defaultConfig := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		defaultConfig = v
	}
	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", defaultConfig, "Configuration file path")
	rootCmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(newRenderCmd(flags))
	rootCmd.AddCommand(newWatchCmd(flags))
	rootCmd.AddCommand(newServeCmd(flags))
	rootCmd.AddCommand(newConfigCmd(flags))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// setup loads the config, applies command-line overrides and validates the
// result before building the app.
func setup(flags *globalFlags, overrides ...func(*config.Config)) (*app, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	for _, override := range overrides {
		override(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newApp(cfg, flags.debug)
}

// newRenderCmd creates the render command
func newRenderCmd(flags *globalFlags) *cobra.Command {
	var (
		out           string
		width, height int
		asJSON        bool
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the chart once",
		Long: `Render the chart once to a PNG file, or print its geometry as JSON.
Example: stockchart render --out chart.png --width 800 --height 500`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(flags, func(cfg *config.Config) {
				if out != "" {
					cfg.Output.Path = out
				}
				if width > 0 {
					cfg.Chart.Width = width
				}
				if height > 0 {
					cfg.Chart.Height = height
				}
			})
			if err != nil {
				return err
			}
			defer a.close()

			if asJSON {
				snap, err := a.view.Snapshot(a.size())
				if err != nil {
					return err
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(snap)
			}

			sched := scheduler.NewScheduler(a.view, a.cfg.Output.Path, a.size(), a.log)
			if err := sched.RunNow(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "chart written to %s\n", a.cfg.Output.Path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Output PNG path (overrides output.path)")
	cmd.Flags().IntVar(&width, "width", 0, "Surface width in pixels")
	cmd.Flags().IntVar(&height, "height", 0, "Surface height in pixels")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the computed geometry as JSON instead of drawing")
	return cmd
}

// newWatchCmd creates the watch command
func newWatchCmd(flags *globalFlags) *cobra.Command {
	var now bool
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-render the chart on the configured cron schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(flags)
			if err != nil {
				return err
			}
			defer a.close()
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			sched, err := startScheduler(a, now)
			if err != nil {
				return err
			}
			defer sched.Stop()

			a.log.Info("watching, press Ctrl+C to stop")
			<-ctx.Done()
			a.log.Info("shutdown signal received, stopping")
			return nil
		},
	}
	cmd.Flags().BoolVar(&now, "now", os.Getenv("RUN_ON_START") == "true", "Render once immediately on start")
	return cmd
}

// newServeCmd creates the serve command
func newServeCmd(flags *globalFlags) *cobra.Command {
	var watch bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the chart and its geometry over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(flags)
			if err != nil {
				return err
			}
			defer a.close()
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if watch {
				sched, err := startScheduler(a, true)
				if err != nil {
					return err
				}
				defer sched.Stop()
			}

			srvCfg := a.cfg.Server
			srv := server.NewServer(
				server.NewChartHandler(a.view, a.cfg.Chart.Width, a.cfg.Chart.Height, a.log),
				a.log,
				a.metrics,
				server.WithHost(srvCfg.Host),
				server.WithPort(srvCfg.Port),
				server.WithTimeouts(srvCfg.ReadTimeout, srvCfg.WriteTimeout, srvCfg.ShutdownTimeout),
			)
			srv.Start()

			<-ctx.Done()
			a.log.Info("shutdown signal received, stopping")
			return srv.Stop(context.Background())
		},
	}
	cmd.Flags().BoolVar(&watch, "watch", false, "Also re-render the output file on the cron schedule")
	return cmd
}

func startScheduler(a *app, runNow bool) (*scheduler.Scheduler, error) {
	sched := scheduler.NewScheduler(a.view, a.cfg.Output.Path, a.size(), a.log)
	if err := sched.Register(a.cfg.Schedule.RenderCron); err != nil {
		return nil, err
	}
	if runNow {
		if err := sched.RunNow(); err != nil {
			a.log.Warn("initial render failed", logger.Err(err))
		}
	}
	sched.Start()
	return sched, nil
}

// newConfigCmd creates the config command
func newConfigCmd(flags *globalFlags) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags.configPath)
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			defer enc.Close()
			return enc.Encode(cfg)
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadConfig(flags.configPath); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "config OK")
			return nil
		},
	})

	return configCmd
}

// newVersionCmd creates the version command
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "stockchart %s\n", Version)
		},
	}
}
