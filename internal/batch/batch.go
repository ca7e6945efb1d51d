package batch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/bytelens/internal/analysis"
	"github.com/san-kum/bytelens/internal/config"
	"github.com/san-kum/bytelens/internal/export"
	"github.com/san-kum/bytelens/internal/source"
	"github.com/san-kum/bytelens/internal/view"
)

var (
	ErrEmptyPlan    = errors.New("batch: plan has no jobs")
	ErrNoOutput     = errors.New("batch: job has no output path")
	ErrInvalidSweep = errors.New("batch: invalid sweep")
)

// ValuePlaceholder in an output path is replaced by the swept value.
const ValuePlaceholder = "{value}"

// Plan is a scripted list of renders of one input file.
type Plan struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Input       string `yaml:"input"`
	// Manifest, when set, is a directory that receives manifest.json and results.csv.
	Manifest string `yaml:"manifest"`
	Jobs     []Job  `yaml:"jobs"`
}

// Job renders one view, or one view per sweep step.
type Job struct {
	Name   string              `yaml:"name"`
	Preset string              `yaml:"preset"`
	View   config.ViewConfig   `yaml:"view"`
	Canvas config.CanvasConfig `yaml:"canvas"`
	Output string              `yaml:"output"`
	Format string              `yaml:"format"`
	Scale  int                 `yaml:"scale"`
	Sweep  *Sweep              `yaml:"sweep"`
}

// Sweep varies one view field across evenly spaced integer values.
type Sweep struct {
	Field string `yaml:"field"`
	From  int    `yaml:"from"`
	To    int    `yaml:"to"`
	Steps int    `yaml:"steps"`
}

// Result describes one written image.
type Result struct {
	Job      string
	Output   string
	Settings view.Settings
	Entropy  float64
	Duration time.Duration
}

func LoadPlan(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParsePlan(data)
}

func ParsePlan(data []byte) (*Plan, error) {
	var plan Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("batch: parse plan: %w", err)
	}
	if len(plan.Jobs) == 0 {
		return nil, ErrEmptyPlan
	}
	return &plan, nil
}

// Run executes every job in order. Cancellation is checked between frames,
// so a frame in progress always completes.
func Run(ctx context.Context, plan *Plan, file *source.File, workers int) ([]Result, error) {
	if len(plan.Jobs) == 0 {
		return nil, ErrEmptyPlan
	}

	results := make([]Result, 0, len(plan.Jobs))
	for i, job := range plan.Jobs {
		name := job.Name
		if name == "" {
			name = fmt.Sprintf("job-%d", i+1)
		}
		log.Info().Str("job", name).Int("step", i+1).Int("of", len(plan.Jobs)).Msg("running job")

		frames, err := job.expand()
		if err != nil {
			return results, fmt.Errorf("job %s: %w", name, err)
		}
		for _, fr := range frames {
			if err := ctx.Err(); err != nil {
				return results, err
			}
			res, err := render(job, fr, file, workers)
			if err != nil {
				return results, fmt.Errorf("job %s: %w", name, err)
			}
			res.Job = name
			results = append(results, res)
		}
	}
	return results, nil
}

// frame is one expanded render: a view and the file it goes to.
type frame struct {
	view   config.ViewConfig
	output string
}

func (j Job) base() (config.ViewConfig, error) {
	v := j.View
	if j.Preset != "" {
		p := config.GetPreset(j.Preset)
		if p == nil {
			return v, fmt.Errorf("%w: %s", config.ErrUnknownPreset, j.Preset)
		}
		v = overlay(*p, j.View)
	}
	def := config.DefaultConfig().View
	return overlay(def, v), nil
}

// overlay copies the non-zero fields of top onto base.
func overlay(base, top config.ViewConfig) config.ViewConfig {
	if top.Zoom != 0 {
		base.Zoom = top.Zoom
	}
	if top.Width != 0 {
		base.Width = top.Width
	}
	if top.Offset != 0 {
		base.Offset = top.Offset
	}
	if top.OffsetFine != 0 {
		base.OffsetFine = top.OffsetFine
	}
	if top.Stride != 0 {
		base.Stride = top.Stride
	}
	if top.Scheme != "" {
		base.Scheme = top.Scheme
	}
	return base
}

func (j Job) expand() ([]frame, error) {
	if j.Output == "" {
		return nil, ErrNoOutput
	}
	v, err := j.base()
	if err != nil {
		return nil, err
	}
	if j.Sweep == nil {
		return []frame{{view: v, output: j.Output}}, nil
	}

	sw := j.Sweep
	if sw.Steps < 1 {
		return nil, fmt.Errorf("%w: steps must be at least 1", ErrInvalidSweep)
	}
	if sw.Steps > 1 && !strings.Contains(j.Output, ValuePlaceholder) {
		return nil, fmt.Errorf("%w: output needs %s", ErrInvalidSweep, ValuePlaceholder)
	}

	frames := make([]frame, 0, sw.Steps)
	for i := 0; i < sw.Steps; i++ {
		value := sw.From
		if sw.Steps > 1 {
			value = sw.From + i*(sw.To-sw.From)/(sw.Steps-1)
		}
		fv, err := setField(v, sw.Field, value)
		if err != nil {
			return nil, err
		}
		out := strings.ReplaceAll(j.Output, ValuePlaceholder, strconv.Itoa(value))
		frames = append(frames, frame{view: fv, output: out})
	}
	return frames, nil
}

func setField(v config.ViewConfig, field string, value int) (config.ViewConfig, error) {
	switch strings.ToLower(field) {
	case "zoom":
		v.Zoom = value
	case "width":
		v.Width = value
	case "offset":
		v.Offset = value
	case "offset_fine":
		v.OffsetFine = value
	case "stride":
		v.Stride = value
	default:
		return v, fmt.Errorf("%w: unknown field %q", ErrInvalidSweep, field)
	}
	return v, nil
}

func render(j Job, fr frame, file *source.File, workers int) (Result, error) {
	start := time.Now()

	w, h := j.Canvas.Width, j.Canvas.Height
	if w == 0 {
		w = config.DefaultCanvasWidth
	}
	if h == 0 {
		h = config.DefaultCanvasHeight
	}

	settings, err := fr.view.Settings(file.Len(), w)
	if err != nil {
		return Result{}, err
	}
	canvas, err := view.NewCanvas(w, h)
	if err != nil {
		return Result{}, err
	}
	canvas.Render(file.Data, settings, workers)

	var format export.Format
	if j.Format != "" {
		if format, err = export.ParseFormat(j.Format); err != nil {
			return Result{}, err
		}
	}
	if err := export.SaveFile(fr.output, canvas.Image(), export.Options{Format: format, Scale: j.Scale}); err != nil {
		return Result{}, err
	}

	res := Result{
		Output:   fr.output,
		Settings: settings,
		Entropy:  analysis.Entropy(visible(file.Data, settings, w, h)),
		Duration: time.Since(start),
	}
	log.Debug().Str("output", res.Output).Dur("took", res.Duration).Float64("entropy", res.Entropy).Msg("frame written")
	return res, nil
}

func visible(data []byte, s view.Settings, w, h int) []byte {
	start := s.BaseOffset()
	if start >= len(data) {
		return nil
	}
	end := start + s.VisibleBytes(w, h)
	if end > len(data) || end < start {
		end = len(data)
	}
	return data[start:end]
}
