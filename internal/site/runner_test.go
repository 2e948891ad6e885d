package site

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestState(t *testing.T) *BuildState {
	t.Helper()
	gen := NewGenerator(testConfig(), t.TempDir(), t.TempDir(), testEngine(t))
	return newBuildState(gen)
}

func TestRunStages_WarningContinues(t *testing.T) {
	bs := newTestState(t)

	var ran []StageName
	record := func(name StageName) Stage {
		return func(_ context.Context, _ *BuildState) error {
			ran = append(ran, name)
			return nil
		}
	}

	stages := []StageDef{
		{"first", record("first")},
		{"warns", func(_ context.Context, _ *BuildState) error {
			return newWarnStageError("warns", errors.New("minor problem"))
		}},
		{"last", record("last")},
	}

	err := runStages(context.Background(), bs, stages)
	require.NoError(t, err)
	require.Equal(t, []StageName{"first", "last"}, ran)
	require.Len(t, bs.Report.Warnings, 1)
	require.Equal(t, StageErrorWarning, bs.Report.StageErrorKinds["warns"])
	require.Equal(t, 1, bs.Report.StageCounts["first"].Success)
	require.Equal(t, 1, bs.Report.StageCounts["warns"].Warning)
}

func TestRunStages_FatalAborts(t *testing.T) {
	bs := newTestState(t)

	boom := errors.New("boom")
	reached := false
	stages := []StageDef{
		{"fails", func(_ context.Context, _ *BuildState) error { return boom }},
		{"never", func(_ context.Context, _ *BuildState) error {
			reached = true
			return nil
		}},
	}

	err := runStages(context.Background(), bs, stages)
	require.Error(t, err)
	require.ErrorIs(t, err, boom)
	require.False(t, reached)

	// A bare error is promoted to a fatal stage error.
	var se *StageError
	require.ErrorAs(t, err, &se)
	require.Equal(t, StageErrorFatal, se.Kind)
	require.Equal(t, StageName("fails"), se.Stage)
	require.Equal(t, 1, bs.Report.StageCounts["fails"].Fatal)
	require.Len(t, bs.Report.Errors, 1)
}

func TestRunStages_RecordsDurations(t *testing.T) {
	bs := newTestState(t)

	stages := []StageDef{
		{"one", func(_ context.Context, _ *BuildState) error { return nil }},
		{"two", func(_ context.Context, _ *BuildState) error { return nil }},
	}

	require.NoError(t, runStages(context.Background(), bs, stages))
	require.Contains(t, bs.Report.StageDurations, StageName("one"))
	require.Contains(t, bs.Report.StageDurations, StageName("two"))
}
