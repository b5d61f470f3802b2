// Package analysis wires the engine components into full capture reports:
// the scoring pipeline (extract, score) and the quality-gating pipeline
// (image metrics, face metrics, gate) over one frame and landmark set.
package analysis

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"facemetry/internal/capture"
	"facemetry/internal/facerr"
	"facemetry/internal/feature"
	"facemetry/internal/landmark"
	"facemetry/internal/quality"
	"facemetry/internal/scoring"
)

// Config carries the immutable engine configuration.
type Config struct {
	Baselines  scoring.Baselines
	Weights    scoring.Weights
	Thresholds quality.Thresholds
	Messages   quality.Messages
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		Baselines:  scoring.DefaultBaselines,
		Weights:    scoring.DefaultWeights,
		Thresholds: quality.DefaultThresholds,
		Messages:   quality.DefaultMessages,
	}
}

// Report is the combined output of both pipelines for one frame. Features,
// Scores and Face stay nil when the landmark set is empty.
type Report struct {
	ID        string                  `json:"id"`
	CreatedAt time.Time               `json:"created_at"`
	Features  *feature.FacialFeatures `json:"features,omitempty"`
	Scores    *scoring.Scores         `json:"scores,omitempty"`
	Image     *quality.ImageMetrics   `json:"image"`
	Face      *quality.FaceMetrics    `json:"face,omitempty"`
	Check     *quality.CheckResult    `json:"check"`
}

// Analyzer runs the two pipelines. Constructed once and safe for concurrent
// use: every call is a pure function of its arguments and the configuration
// fixed here.
type Analyzer struct {
	extractor *feature.Extractor
	engine    *scoring.Engine
	gate      *quality.Gate
}

// New validates the configuration and builds an analyzer.
func New(cfg Config) (*Analyzer, error) {
	engine, err := scoring.NewEngine(cfg.Baselines, cfg.Weights)
	if err != nil {
		return nil, err
	}
	gate, err := quality.NewGate(cfg.Thresholds, cfg.Messages)
	if err != nil {
		return nil, err
	}
	return &Analyzer{
		extractor: feature.NewExtractor(),
		engine:    engine,
		gate:      gate,
	}, nil
}

// Analyze runs both pipelines over one frame. They are independent of each
// other, so they run concurrently; the first failure aborts the call. An
// empty landmark set skips the scoring pipeline and yields a no-face
// verdict.
func (a *Analyzer) Analyze(ctx context.Context, frame capture.Frame, set landmark.Set) (*Report, error) {
	report := &Report{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
	}

	if len(set) == 0 {
		img, err := quality.AnalyzeImage(frame.Pix, frame.Width, frame.Height)
		if err != nil {
			return nil, err
		}
		check, err := a.gate.Validate(img, nil, set)
		if err != nil {
			return nil, err
		}
		report.Image = img
		report.Check = check
		return report, nil
	}

	// A partial set would fail both pipelines; reject it up front so the
	// caller always sees the landmark-count error.
	if len(set) < landmark.MeshSize {
		return nil, facerr.Newf(facerr.CodeInsufficientLandmarks,
			"landmark set has %d points, need %d", len(set), landmark.MeshSize)
	}

	// The goroutines write disjoint report fields; Wait is the sync point.
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		features, err := a.extractor.Extract(set)
		if err != nil {
			return err
		}
		scores := a.engine.Score(features)
		report.Features = features
		report.Scores = &scores
		return nil
	})

	g.Go(func() error {
		img, err := quality.AnalyzeImage(frame.Pix, frame.Width, frame.Height)
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		face, err := quality.AnalyzeFace(set, frame.Width, frame.Height)
		if err != nil {
			return err
		}
		check, err := a.gate.Validate(img, face, set)
		if err != nil {
			return err
		}
		report.Image = img
		report.Face = face
		report.Check = check
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return report, nil
}

// ExtractFeatures measures a landmark set without scoring it.
func (a *Analyzer) ExtractFeatures(set landmark.Set) (*feature.FacialFeatures, error) {
	return a.extractor.Extract(set)
}

// Score extracts and scores a landmark set.
func (a *Analyzer) Score(set landmark.Set) (*feature.FacialFeatures, *scoring.Scores, error) {
	features, err := a.extractor.Extract(set)
	if err != nil {
		return nil, nil, err
	}
	scores := a.engine.Score(features)
	return features, &scores, nil
}

// Validate runs only the quality-gating pipeline.
func (a *Analyzer) Validate(frame capture.Frame, set landmark.Set) (*quality.CheckResult, error) {
	img, err := quality.AnalyzeImage(frame.Pix, frame.Width, frame.Height)
	if err != nil {
		return nil, err
	}

	if len(set) == 0 {
		return a.gate.Validate(img, nil, set)
	}

	face, err := quality.AnalyzeFace(set, frame.Width, frame.Height)
	if err != nil {
		return nil, err
	}
	return a.gate.Validate(img, face, set)
}
