package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/san-kum/bytelens/internal/config"
	"github.com/san-kum/bytelens/internal/logging"
	"github.com/san-kum/bytelens/internal/source"
	"github.com/san-kum/bytelens/internal/view"
)

// options holds every flag value. Fields only override the resolved config
// when their flag was set on the command line.
type options struct {
	configFile string
	preset     string
	logLevel   string
	logFile    string
	workers    int

	zoom         int
	width        int
	offset       int
	offsetFine   int
	stride       int
	scheme       string
	canvasWidth  int
	canvasHeight int
	theme        string

	cfg      *config.Config
	closeLog func()
}

func (o *options) registerPersistent(fs *pflag.FlagSet) {
	fs.StringVar(&o.configFile, "config", "", "config file path (yaml)")
	fs.StringVar(&o.preset, "preset", "", "start from a named view preset")
	fs.StringVar(&o.logLevel, "log-level", config.DefaultLogLevel, "log level: none, trace, debug, info, warn, error")
	fs.StringVar(&o.logFile, "log-file", "", "append JSON logs to this file")
	fs.IntVar(&o.workers, "workers", 0, "render goroutines (0 uses one per CPU)")
}

func (o *options) registerView(fs *pflag.FlagSet) {
	fs.IntVar(&o.zoom, "zoom", view.DefaultZoom, "screen pixels per byte")
	fs.IntVar(&o.width, "width", view.DefaultRowWidth, "bytes per row")
	fs.IntVar(&o.offset, "offset", 0, "start offset in bytes")
	fs.IntVar(&o.offsetFine, "offset-fine", 0, "fine offset added to --offset")
	fs.IntVar(&o.stride, "stride", view.DefaultStride, "bytes advanced per column")
	fs.StringVar(&o.scheme, "scheme", view.DefaultScheme.String(), "color scheme")
	fs.IntVar(&o.canvasWidth, "canvas-width", config.DefaultCanvasWidth, "canvas width in pixels")
	fs.IntVar(&o.canvasHeight, "canvas-height", config.DefaultCanvasHeight, "canvas height in pixels")
	fs.StringVar(&o.theme, "theme", config.DefaultTheme, "terminal theme")
}

// resolve layers defaults, preset, config file and explicit flags, in that order.
func (o *options) resolve(fs *pflag.FlagSet) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if o.preset != "" {
		if err := cfg.ApplyPreset(o.preset); err != nil {
			return nil, err
		}
	}
	if o.configFile != "" {
		if err := config.Merge(o.configFile, cfg); err != nil {
			return nil, err
		}
	}

	set := func(name string, apply func()) {
		if f := fs.Lookup(name); f != nil && f.Changed {
			apply()
		}
	}
	set("zoom", func() { cfg.View.Zoom = o.zoom })
	set("width", func() { cfg.View.Width = o.width })
	set("offset", func() { cfg.View.Offset = o.offset })
	set("offset-fine", func() { cfg.View.OffsetFine = o.offsetFine })
	set("stride", func() { cfg.View.Stride = o.stride })
	set("scheme", func() { cfg.View.Scheme = o.scheme })
	set("canvas-width", func() { cfg.Canvas.Width = o.canvasWidth })
	set("canvas-height", func() { cfg.Canvas.Height = o.canvasHeight })
	set("theme", func() { cfg.Theme = o.theme })
	set("workers", func() { cfg.Workers = o.workers })
	set("log-level", func() { cfg.LogLevel = o.logLevel })
	set("log-file", func() { cfg.LogFile = o.logFile })

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setup resolves the config and configures logging. The terminal UI owns the
// screen, so console logging is discarded there unless a log file is set.
func (o *options) setup(cmd *cobra.Command) error {
	cfg, err := o.resolve(cmd.Flags())
	if err != nil {
		return err
	}
	o.cfg = cfg

	closeLog, err := logging.Setup(logging.Options{
		Level: cfg.LogLevel,
		File:  cfg.LogFile,
		Quiet: cmd.Name() == "tui",
	})
	if err != nil {
		return err
	}
	o.closeLog = closeLog
	return nil
}

func (o *options) close() {
	if o.closeLog != nil {
		o.closeLog()
	}
}

// load reads the input named by args and converts the view config for it.
func (o *options) load(args []string) (*source.File, view.Settings, error) {
	file, err := source.Load(source.ResolvePath(args))
	if err != nil {
		return nil, view.Settings{}, err
	}
	settings, err := o.cfg.Settings(file.Len())
	if err != nil {
		return nil, view.Settings{}, err
	}
	log.Info().Str("file", file.Path).Int("bytes", file.Len()).Msg("loaded")
	return file, settings, nil
}
