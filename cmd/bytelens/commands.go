package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/san-kum/bytelens/internal/analysis"
	"github.com/san-kum/bytelens/internal/batch"
	"github.com/san-kum/bytelens/internal/config"
	"github.com/san-kum/bytelens/internal/export"
	"github.com/san-kum/bytelens/internal/gui"
	"github.com/san-kum/bytelens/internal/scheme"
	"github.com/san-kum/bytelens/internal/session"
	"github.com/san-kum/bytelens/internal/source"
	"github.com/san-kum/bytelens/internal/view"
	"github.com/san-kum/bytelens/internal/viz"
)

func runGUI(opts *options, args []string) error {
	file, settings, err := opts.load(args)
	if err != nil {
		return err
	}
	cfg := opts.cfg
	sess, err := session.New(file, settings, cfg.Canvas.Width, cfg.Canvas.Height, cfg.Workers)
	if err != nil {
		return err
	}
	return gui.Run(sess)
}

func runTUI(opts *options, args []string) error {
	file, settings, err := opts.load(args)
	if err != nil {
		return err
	}
	cfg := opts.cfg
	// The model fits the canvas to the terminal on start.
	sess, err := session.New(file, settings, cfg.Canvas.Width, cfg.Canvas.Height, cfg.Workers)
	if err != nil {
		return err
	}
	return viz.Run(sess, viz.GetTheme(cfg.Theme))
}

type renderOptions struct {
	output string
	format string
	scale  int
}

func runRender(cmd *cobra.Command, opts *options, ro *renderOptions, args []string) error {
	file, settings, err := opts.load(args)
	if err != nil {
		return err
	}
	cfg := opts.cfg

	canvas, err := view.NewCanvas(cfg.Canvas.Width, cfg.Canvas.Height)
	if err != nil {
		return err
	}
	start := time.Now()
	canvas.Render(file.Data, settings, cfg.Workers)
	took := time.Since(start)

	var format export.Format
	if ro.format != "" {
		if format, err = export.ParseFormat(ro.format); err != nil {
			return err
		}
	}
	if err := export.SaveFile(ro.output, canvas.Image(), export.Options{Format: format, Scale: ro.scale}); err != nil {
		return err
	}

	log.Info().Str("output", ro.output).Dur("render", took).Msg("frame written")
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%dx%d, %s, offset %d)\n",
		ro.output, cfg.Canvas.Width*max(ro.scale, 1), cfg.Canvas.Height*max(ro.scale, 1), settings.Scheme, settings.BaseOffset())
	return nil
}

type statsOptions struct {
	blocks    int
	maxPeriod int
}

func runStats(cmd *cobra.Command, opts *options, so *statsOptions, args []string) error {
	file, _, err := opts.load(args)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	sum := analysis.Summarize(file.Data)

	fmt.Fprintf(out, "file:      %s\n", file.Path)
	fmt.Fprintf(out, "size:      %d bytes\n", sum.Size)
	fmt.Fprintf(out, "entropy:   %.4f bits/byte\n", sum.Entropy)
	fmt.Fprintf(out, "distinct:  %d\n", sum.Distinct)
	fmt.Fprintf(out, "common:    0x%02x\n\n", sum.MostCommon)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CLASS\tCOLOR\tBYTES\tSHARE")
	for c := scheme.Class(0); c < scheme.NumClasses; c++ {
		share := 0.0
		if sum.Size > 0 {
			share = float64(sum.Classes[c]) / float64(sum.Size) * 100
		}
		col := scheme.ClassColor(c)
		fmt.Fprintf(w, "%s\t#%02x%02x%02x\t%d\t%.1f%%\n", c, col[0], col[1], col[2], sum.Classes[c], share)
	}
	w.Flush()
	fmt.Fprintln(out)

	if sum.Size == 0 {
		return nil
	}

	hist := analysis.Histogram(file.Data)
	data := make([]float64, len(hist))
	for i, n := range hist {
		data[i] = float64(n)
	}
	fmt.Fprintln(out, asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("byte histogram (0x00 .. 0xff)"),
	))
	fmt.Fprintln(out)

	blocks := max(so.blocks, 1)
	profile := analysis.EntropyProfile(file.Data, max(file.Len()/blocks, 1))
	if len(profile) > 1 {
		fmt.Fprintln(out, asciigraph.Plot(profile,
			asciigraph.Height(8),
			asciigraph.Width(80),
			asciigraph.Caption("entropy profile (bits/byte)"),
		))
		fmt.Fprintln(out)
	}

	if p := analysis.DetectPeriod(file.Data, analysis.PeriodOptions{MaxPeriod: so.maxPeriod}); p > 0 {
		fmt.Fprintf(out, "suggested width: %d (try --width %d)\n", p, p)
	} else {
		fmt.Fprintln(out, "suggested width: none detected")
	}
	return nil
}

func runBatch(cmd *cobra.Command, opts *options, args []string) error {
	plan, err := batch.LoadPlan(args[0])
	if err != nil {
		return err
	}

	path := plan.Input
	if len(args) > 1 {
		path = args[1]
	}
	if path == "" {
		path = source.DefaultPath
	}
	file, err := source.Load(path)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := batch.Run(ctx, plan, file, opts.cfg.Workers)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "JOB\tOUTPUT\tSCHEME\tOFFSET\tENTROPY\tTIME")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.3f\t%s\n",
			r.Job, r.Output, r.Settings.Scheme, r.Settings.BaseOffset(), r.Entropy, r.Duration.Round(time.Millisecond))
	}
	w.Flush()
	if err != nil {
		return err
	}

	if plan.Manifest != "" {
		if err := batch.WriteManifest(plan.Manifest, plan, file, results); err != nil {
			return err
		}
		log.Info().Str("dir", plan.Manifest).Int("frames", len(results)).Msg("manifest written")
	}
	return nil
}

// runReport prints a manifest directory written by a previous batch run.
func runReport(cmd *cobra.Command, dir string) error {
	m, err := batch.LoadManifest(dir)
	if err != nil {
		return fmt.Errorf("read manifest: %w", err)
	}
	rows, err := batch.LoadResults(dir)
	if err != nil {
		return fmt.Errorf("read results: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "plan:    %s\n", m.Plan)
	fmt.Fprintf(out, "input:   %s (%d bytes)\n", m.Input, m.Size)
	fmt.Fprintf(out, "run at:  %s\n", m.Timestamp.Format(time.RFC3339))
	fmt.Fprintf(out, "frames:  %d in %s\n\n", m.Frames, m.Elapsed.Round(time.Millisecond))

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "JOB\tOUTPUT\tSCHEME\tZOOM\tWIDTH\tOFFSET\tSTRIDE\tENTROPY")
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r["job"], r["output"], r["scheme"], r["zoom"], r["width"], r["offset"], r["stride"], r["entropy"])
	}
	return w.Flush()
}

type benchOptions struct {
	frames int
}

var errBenchFrames = errors.New("bench: --frames must be at least 1")

func runBench(cmd *cobra.Command, opts *options, bo *benchOptions, args []string) error {
	if bo.frames < 1 {
		return errBenchFrames
	}
	file, settings, err := opts.load(args)
	if err != nil {
		return err
	}
	cfg := opts.cfg
	canvas, err := view.NewCanvas(cfg.Canvas.Width, cfg.Canvas.Height)
	if err != nil {
		return err
	}

	counts := []int{1, 2, 4, runtime.NumCPU()}
	if cfg.Workers > 0 {
		counts = append(counts, cfg.Workers)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "WORKERS\tFRAMES\tTIME\tFRAMES/SEC")
	seen := map[int]bool{}
	for _, n := range counts {
		if seen[n] {
			continue
		}
		seen[n] = true

		start := time.Now()
		for i := 0; i < bo.frames; i++ {
			canvas.Render(file.Data, settings, n)
		}
		elapsed := time.Since(start)
		fmt.Fprintf(w, "%d\t%d\t%s\t%.1f\n", n, bo.frames, elapsed.Round(time.Microsecond), float64(bo.frames)/elapsed.Seconds())
	}
	return w.Flush()
}

func listSchemes(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	for _, s := range scheme.All() {
		marker := " "
		if s == view.DefaultScheme {
			marker = "*"
		}
		fmt.Fprintf(out, "%s %s\n", marker, s)
	}
	return nil
}

func listPresets(cmd *cobra.Command) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tZOOM\tWIDTH\tSTRIDE\tSCHEME")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%s\n", name, p.Zoom, p.Width, p.Stride, p.Scheme)
	}
	return w.Flush()
}
