package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/splitpack/splitpack/pkg/cache"
	"github.com/splitpack/splitpack/pkg/graph"
	"github.com/splitpack/splitpack/pkg/layout"
	"github.com/splitpack/splitpack/pkg/layout/graphviz"
	"github.com/splitpack/splitpack/pkg/render"
)

// TTLLayout is how long cached layouts are kept. Layouts are
// deterministic in their inputs, so the TTL only bounds cache growth.
const TTLLayout = 30 * 24 * time.Hour

// Runner executes the pipeline with caching. It is stateless except
// for the cache and logger; multiple goroutines can share one Runner.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID identifies this execution in logs.
	RunID string

	// GraphHash is the content hash of the input file.
	GraphHash string

	// File is the laid-out drawing in serializable form.
	File graph.File

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheHit reports whether the layout came from cache.
	CacheHit bool
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount      int
	EdgeCount      int
	ComponentCount int
	LayoutTime     time.Duration
	RenderTime     time.Duration
}

// NewRunner creates a runner. A nil cache disables caching; a nil
// logger uses the default.
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Logger: logger}
}

// Execute runs the complete load → layout → render pipeline.
func (r *Runner) Execute(ctx context.Context, file graph.File, opts Options) (*Result, error) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{
		RunID:     uuid.NewString(),
		Artifacts: make(map[string][]byte),
	}
	logger := r.Logger.With("run", result.RunID)

	data, err := graph.MarshalFile(file)
	if err != nil {
		return nil, fmt.Errorf("serialize input: %w", err)
	}
	result.GraphHash = cache.Hash(data)

	g, d, err := file.Build()
	if err != nil {
		return nil, fmt.Errorf("build graph: %w", err)
	}
	result.Stats.NodeCount = g.NodeCount()
	result.Stats.EdgeCount = g.EdgeCount()

	// Stage 1: layout (cached)
	layoutStart := time.Now()
	laid, hit, err := r.computeLayout(ctx, d, result.GraphHash, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.File = laid
	result.CacheHit = hit
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.ComponentCount = graph.SplitComponents(g).Count()

	logger.Info("computed layout",
		"nodes", result.Stats.NodeCount,
		"edges", result.Stats.EdgeCount,
		"components", result.Stats.ComponentCount,
		"cached", hit,
		"duration", result.Stats.LayoutTime)

	// Stage 2: render
	renderStart := time.Now()
	_, laidDrawing, err := laid.Build()
	if err != nil {
		return nil, fmt.Errorf("build laid-out graph: %w", err)
	}
	for _, format := range opts.Formats {
		switch format {
		case FormatSVG:
			svgOpts := []render.SVGOption{render.WithMargin(opts.Margin)}
			if opts.Labels {
				svgOpts = append(svgOpts, render.WithLabels())
			}
			result.Artifacts[format] = render.SVG(laidDrawing, svgOpts...)
		case FormatJSON:
			out, err := graph.MarshalFile(laid)
			if err != nil {
				return nil, fmt.Errorf("render json: %w", err)
			}
			result.Artifacts[format] = out
		}
	}
	result.Stats.RenderTime = time.Since(renderStart)

	logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// computeLayout runs the splitter over the drawing, consulting the
// cache first. The cached value is the serialized laid-out file.
func (r *Runner) computeLayout(ctx context.Context, d *graph.Drawing, graphHash string, opts Options) (graph.File, bool, error) {
	cacheKey := cache.LayoutKey(graphHash, opts.keyOpts()...)

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			cached, err := graph.UnmarshalFile(data)
			if err == nil {
				return cached, true, nil
			}
			// Corrupt entry, fall through to recompute.
		}
	}

	splitter := layout.NewSplitter(r.secondary(opts),
		layout.WithTargetRatio(opts.TargetRatio),
		layout.WithBorder(int(opts.border())),
		layout.WithLogger(opts.Logger),
	)
	if err := splitter.Call(d); err != nil {
		return graph.File{}, false, err
	}

	laid := graph.FromDrawing(d)
	if data, err := graph.MarshalFile(laid); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, TTLLayout)
	}
	return laid, false, nil
}

// secondary builds the per-component layout algorithm for the
// configured engine.
func (r *Runner) secondary(opts Options) layout.Algorithm {
	if opts.Engine == EngineCircular {
		return layout.NewCircular()
	}
	return graphviz.New(graphviz.Engine(opts.Engine))
}

// Close releases resources held by the runner.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
