// Command grasp runs the gesture demo window and replays input scripts
// headlessly.
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/phanxgames/grasp"
	"github.com/phanxgames/grasp/driver"
)

var (
	configFile string
	logLevel   string
	overlay    bool
	plot       bool
	quiet      bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// newRootCmd builds the command tree.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "grasp",
		Short:         "pan, rotate and zoom gesture engine",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "open a window with draggable, rotatable, zoomable boxes",
		Args:  cobra.NoArgs,
		RunE:  runDemo,
	}
	demoCmd.Flags().BoolVar(&overlay, "overlay", true, "show fps, wheel mode and pose")

	replayCmd := &cobra.Command{
		Use:   "replay [script]",
		Short: "replay an input script against the demo scene without a window",
		Args:  cobra.ExactArgs(1),
		RunE:  runReplay,
	}
	replayCmd.Flags().BoolVar(&plot, "plot", false, "plot scale and rotation per frame")
	replayCmd.Flags().BoolVar(&quiet, "quiet", false, "only print the final poses")

	configCmd := &cobra.Command{
		Use:   "config [path]",
		Short: "write the effective config as yaml",
		Args:  cobra.ExactArgs(1),
		RunE:  writeConfig,
	}

	rootCmd.AddCommand(demoCmd, replayCmd, configCmd)
	return rootCmd
}

// setup loads the config and builds the logger. The --log-level flag wins
// over the config file.
func setup() (grasp.Config, *zap.Logger, error) {
	cfg := grasp.DefaultConfig()
	if configFile != "" {
		var err error
		cfg, err = grasp.LoadConfig(configFile)
		if err != nil {
			return cfg, nil, err
		}
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	logger, err := grasp.NewLogger(cfg.LogLevel)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, logger, nil
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	d := buildDemo()
	engine := grasp.NewEngine(d.scene, grasp.WithConfig(cfg), grasp.WithLogger(logger))
	if err := d.attach(engine, nil); err != nil {
		return err
	}

	logger.Info("demo start",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.Int("tps", cfg.TPS))

	return driver.Run(d.scene, engine, driver.RunConfig{
		Title:   cfg.Window.Title,
		Width:   cfg.Window.Width,
		Height:  cfg.Window.Height,
		TPS:     cfg.TPS,
		Overlay: overlay,
		Logger:  logger,
	})
}

func runReplay(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	script, err := grasp.LoadScript(data)
	if err != nil {
		return err
	}

	d := buildDemo()
	engine := grasp.NewEngine(d.scene, grasp.WithConfig(cfg), grasp.WithLogger(logger))

	out := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	if !quiet {
		fmt.Fprintln(out, "FRAME\tCONTROL\tTRANSFORM")
	}

	var (
		frame     int
		scales    []float64
		rotations []float64
	)
	err = d.attach(engine, func(name, transform string, p grasp.Pose) {
		if !quiet {
			fmt.Fprintf(out, "%d\t%s\t%s\n", frame, name, transform)
		}
		scales = append(scales, p.Scale)
		rotations = append(rotations, p.Rotation)
	})
	if err != nil {
		return err
	}

	runner := grasp.NewScriptRunner(script, engine, nil)
	frame = 1
	faults := runner.Run(func(f int) {
		d.scene.Update()
		frame = f + 1
	})
	_ = out.Flush()

	fmt.Fprintln(cmd.OutOrStdout())
	for _, n := range d.controls {
		p, ok := engine.Pose(n)
		if !ok {
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", n.Name, p)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "frames: %d  updates: %d  faults: %d\n", script.Len(), len(scales), faults)

	if plot && len(scales) > 1 {
		fmt.Fprintln(cmd.OutOrStdout())
		fmt.Fprintln(cmd.OutOrStdout(), asciigraph.Plot(scales,
			asciigraph.Height(8),
			asciigraph.Width(80),
			asciigraph.Caption("scale"),
		))
		fmt.Fprintln(cmd.OutOrStdout())
		fmt.Fprintln(cmd.OutOrStdout(), asciigraph.Plot(rotations,
			asciigraph.Height(8),
			asciigraph.Width(80),
			asciigraph.Caption("rotation (deg)"),
		))
	}
	return nil
}

func writeConfig(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	if err := cfg.Save(args[0]); err != nil {
		return err
	}
	logger.Info("config written", zap.String("path", args[0]))
	return nil
}
