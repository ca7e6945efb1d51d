package main

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// main runs the bytelens CLI. With no subcommand it opens the window viewer.
// Any command error is logged and exits with status 1.
func main() {
	opts := &options{}
	root := newRootCmd(opts)
	err := root.Execute()
	opts.close()
	if err != nil {
		log.Error().Err(err).Msg("bytelens failed")
		os.Exit(1)
	}
}

func newRootCmd(opts *options) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "bytelens [file]",
		Short:         "visual binary file explorer",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(opts, args)
		},
	}
	opts.registerPersistent(rootCmd.PersistentFlags())
	opts.registerView(rootCmd.PersistentFlags())

	guiCmd := &cobra.Command{
		Use:   "gui [file]",
		Short: "open the window viewer",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(opts, args)
		},
	}

	tuiCmd := &cobra.Command{
		Use:   "tui [file]",
		Short: "open the terminal viewer",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(opts, args)
		},
	}

	ro := &renderOptions{}
	renderCmd := &cobra.Command{
		Use:   "render [file]",
		Short: "render one frame to an image file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, opts, ro, args)
		},
	}
	renderCmd.Flags().StringVarP(&ro.output, "output", "o", "bytelens.png", "output image path")
	renderCmd.Flags().StringVar(&ro.format, "format", "", "image format (png, bmp, tiff, gif, jpeg); default from extension")
	renderCmd.Flags().IntVar(&ro.scale, "scale", 1, "nearest-neighbour upscaling factor")

	so := &statsOptions{}
	statsCmd := &cobra.Command{
		Use:   "stats [file]",
		Short: "print byte statistics, entropy and a suggested row width",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd, opts, so, args)
		},
	}
	statsCmd.Flags().IntVar(&so.blocks, "blocks", 80, "entropy profile points")
	statsCmd.Flags().IntVar(&so.maxPeriod, "max-period", 4096, "largest row width to test")

	batchCmd := &cobra.Command{
		Use:   "batch [plan.yaml] [file]",
		Short: "render every job of a YAML plan",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, opts, args)
		},
	}

	reportCmd := &cobra.Command{
		Use:   "report [dir]",
		Short: "print the manifest and results of a batch run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, args[0])
		},
	}

	bo := &benchOptions{}
	benchCmd := &cobra.Command{
		Use:   "bench [file]",
		Short: "measure frame render time across worker counts",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(cmd, opts, bo, args)
		},
	}
	benchCmd.Flags().IntVar(&bo.frames, "frames", 20, "frames per measurement")

	schemesCmd := &cobra.Command{
		Use:   "schemes",
		Short: "list color schemes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listSchemes(cmd)
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list view presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listPresets(cmd)
		},
	}

	rootCmd.AddCommand(guiCmd, tuiCmd, renderCmd, statsCmd, batchCmd, reportCmd, benchCmd, schemesCmd, presetsCmd)
	return rootCmd
}
