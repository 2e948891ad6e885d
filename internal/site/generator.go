// Package site orchestrates the full build: output preparation, static asset
// copying, content scanning, index derivation, page rendering and sitemap
// emission, as a linear fail-fast stage pipeline.
package site

import (
	"context"
	"path/filepath"

	"git.home.luguber.info/inful/sitegen/internal/config"
	"git.home.luguber.info/inful/sitegen/internal/metrics"
	"git.home.luguber.info/inful/sitegen/internal/templates"
)

// Generator drives one site build from a source tree into an output tree.
type Generator struct {
	cfg        *config.Config
	sourceRoot string
	outputRoot string
	engine     *templates.Engine
	recorder   metrics.Recorder
}

// NewGenerator constructs a Generator. Metrics default to the no-op recorder.
func NewGenerator(cfg *config.Config, sourceRoot, outputRoot string, engine *templates.Engine) *Generator {
	return &Generator{
		cfg:        cfg,
		sourceRoot: sourceRoot,
		outputRoot: outputRoot,
		engine:     engine,
		recorder:   metrics.NoopRecorder{},
	}
}

// WithRecorder injects a metrics recorder.
func (g *Generator) WithRecorder(r metrics.Recorder) *Generator {
	if r != nil {
		g.recorder = r
	}
	return g
}

func (g *Generator) contentRoot() string { return filepath.Join(g.sourceRoot, "content") }
func (g *Generator) staticRoot() string  { return filepath.Join(g.sourceRoot, "static") }

// Build runs the full pipeline. The returned report is always non-nil; err
// is the first fatal stage error, if any.
func (g *Generator) Build(ctx context.Context) (*BuildReport, error) {
	bs := newBuildState(g)

	stages := []StageDef{
		{StagePrepareOutput, stagePrepareOutput},
		{StageCopyStatic, stageCopyStatic},
		{StageScanPosts, stageScanPosts},
		{StageScanProjects, stageScanProjects},
		{StageScanDevlogs, stageScanDevlogs},
		{StageRenderItems, stageRenderItems},
		{StageRenderAggregates, stageRenderAggregates},
		{StageWriteSitemap, stageWriteSitemap},
		{StageVerifyLinks, stageVerifyLinks},
	}

	err := runStages(ctx, bs, stages)

	bs.Report.AssetsCopied = bs.Scanner.AssetsCopied()
	bs.Report.finish()
	g.recorder.ObserveBuildDuration(bs.Report.Duration)
	g.recorder.IncBuildOutcome(bs.Report.Outcome())
	g.recorder.AddPagesRendered(bs.Report.PagesRendered)
	g.recorder.AddAssetsCopied(bs.Report.AssetsCopied)
	bs.Report.log()

	return bs.Report, err
}
