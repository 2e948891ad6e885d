package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/sitegen/internal/config"
	"git.home.luguber.info/inful/sitegen/internal/logfields"
	"git.home.luguber.info/inful/sitegen/internal/metrics"
	"git.home.luguber.info/inful/sitegen/internal/site"
	"git.home.luguber.info/inful/sitegen/internal/templates"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	Output      string `short:"o" help:"Output directory (overrides config)"`
	Templates   string `short:"t" help:"Template directory (overrides config and <source>/templates)"`
	MetricsPush string `name:"metrics-push" help:"Pushgateway base URL to push build metrics to"`
}

func (b *BuildCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.LoadFile(root.Source, root.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	templateDir := templates.ResolveDir(b.templateOverride(cfg), root.Source)
	engine, err := templates.Load(cfg.Site.Title, templateDir)
	if err != nil {
		return err
	}

	outputDir := resolveOutputDir(b.Output, root.Source, cfg)
	gen := site.NewGenerator(cfg, root.Source, outputDir, engine)

	var reg *prom.Registry
	if b.MetricsPush != "" {
		reg = prom.NewRegistry()
		gen = gen.WithRecorder(metrics.NewPrometheusRecorder(reg))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := gen.Build(ctx)

	if reg != nil {
		if pushErr := metrics.PushToGateway(b.MetricsPush, "sitegen", reg); pushErr != nil {
			slog.Warn("Failed to push build metrics", logfields.Error(pushErr))
		}
	}

	if err != nil {
		return fmt.Errorf("build: %w", err)
	}

	fmt.Printf("Site built: %d pages, %d assets in %s (%s)\n",
		report.PagesRendered, report.AssetsCopied, outputDir, report.Duration.Round(time.Millisecond))
	return nil
}

// templateOverride picks the template directory override: the CLI flag wins
// over the configured directory.
func (b *BuildCmd) templateOverride(cfg *config.Config) string {
	if b.Templates != "" {
		return b.Templates
	}
	return cfg.Templates.Directory
}

// resolveOutputDir determines the final output directory.
// Priority: CLI flag > configured directory. Relative paths are anchored at
// the source root.
func resolveOutputDir(cliOutput, sourceRoot string, cfg *config.Config) string {
	dir := cfg.Output.Directory
	if cliOutput != "" {
		dir = cliOutput
	}
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(sourceRoot, dir)
	}
	return dir
}
