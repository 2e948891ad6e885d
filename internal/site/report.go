package site

import (
	"errors"
	"log/slog"
	"time"

	"git.home.luguber.info/inful/sitegen/internal/logfields"
	"github.com/google/uuid"
)

// StageCount tracks per-stage result tallies.
type StageCount struct {
	Success  int
	Warning  int
	Fatal    int
	Canceled int
}

// BuildReport aggregates the outcome of one build run. The report is logged,
// never written into the output tree, so its ID does not affect build
// idempotence.
type BuildReport struct {
	ID              string
	StartedAt       time.Time
	Duration        time.Duration
	StageDurations  map[StageName]time.Duration
	StageCounts     map[StageName]StageCount
	StageErrorKinds map[StageName]StageErrorKind
	Warnings        []error
	Errors          []error
	PagesRendered   int
	AssetsCopied    int
}

func newBuildReport() *BuildReport {
	return &BuildReport{
		ID:              uuid.NewString(),
		StartedAt:       time.Now(),
		StageDurations:  map[StageName]time.Duration{},
		StageCounts:     map[StageName]StageCount{},
		StageErrorKinds: map[StageName]StageErrorKind{},
	}
}

// Outcome reduces the report to a final label for logging and metrics:
// canceled, failed, warning or success.
func (r *BuildReport) Outcome() string {
	for _, err := range r.Errors {
		var se *StageError
		if errors.As(err, &se) && se.Kind == StageErrorCanceled {
			return "canceled"
		}
	}
	if len(r.Errors) > 0 {
		return "failed"
	}
	if len(r.Warnings) > 0 {
		return "warning"
	}
	return "success"
}

func (r *BuildReport) recordStageResult(stage StageName, kind StageErrorKind, ok bool) {
	sc := r.StageCounts[stage]
	switch {
	case ok:
		sc.Success++
	case kind == StageErrorWarning:
		sc.Warning++
	case kind == StageErrorCanceled:
		sc.Canceled++
	default:
		sc.Fatal++
	}
	r.StageCounts[stage] = sc
}

func (r *BuildReport) finish() {
	r.Duration = time.Since(r.StartedAt)
}

func (r *BuildReport) log() {
	slog.Info("Build finished",
		logfields.BuildID(r.ID),
		slog.String("outcome", r.Outcome()),
		slog.Duration("duration", r.Duration),
		slog.Int("pages", r.PagesRendered),
		slog.Int("assets", r.AssetsCopied),
		slog.Int("warnings", len(r.Warnings)))
}
