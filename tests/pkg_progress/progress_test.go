package pkg_progress_test

import (
	"testing"

	"github.com/studynova/ingest/pkg/progress"
)

func TestWeights_SumToHundred(t *testing.T) {
	sum := 0
	for _, stage := range progress.Stages {
		sum += progress.Weight(stage)
	}

	if sum != 100 {
		t.Errorf("stage weights sum = %d, want 100", sum)
	}
}

func TestOverall(t *testing.T) {
	tests := []struct {
		name          string
		stage         progress.Stage
		stageProgress int
		want          int
	}{
		{"extraction start", progress.StageExtraction, 0, 0},
		{"extraction half", progress.StageExtraction, 50, 15},
		{"extraction done", progress.StageExtraction, 100, 30},
		{"cleaning start", progress.StageCleaning, 0, 30},
		{"cleaning done", progress.StageCleaning, 100, 40},
		{"ai half", progress.StageAIProcessing, 50, 65},
		{"ai done", progress.StageAIProcessing, 100, 90},
		{"formatting start", progress.StageFormatting, 0, 90},
		{"formatting done", progress.StageFormatting, 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := progress.Overall(tt.stage, tt.stageProgress)
			if got != tt.want {
				t.Errorf("Overall(%s, %d) = %d, want %d", tt.stage, tt.stageProgress, got, tt.want)
			}
		})
	}
}

func TestOverall_ClampsStageProgress(t *testing.T) {
	if got := progress.Overall(progress.StageExtraction, -20); got != 0 {
		t.Errorf("Overall(extraction, -20) = %d, want 0", got)
	}

	if got := progress.Overall(progress.StageExtraction, 150); got != 30 {
		t.Errorf("Overall(extraction, 150) = %d, want 30", got)
	}
}

func TestOverall_UnknownStage(t *testing.T) {
	if got := progress.Overall(progress.Stage("bogus"), 50); got != 0 {
		t.Errorf("Overall(bogus, 50) = %d, want 0", got)
	}

	if got := progress.Overall(progress.StageError, 50); got != 0 {
		t.Errorf("Overall(error, 50) = %d, want 0", got)
	}
}

// A pipeline moving forward through stages can never report a lower overall
// value than any earlier report.
func TestOverall_Monotonic(t *testing.T) {
	last := -1
	for _, stage := range progress.Stages {
		for pct := 0; pct <= 100; pct += 5 {
			got := progress.Overall(stage, pct)
			if got < last {
				t.Fatalf("Overall(%s, %d) = %d regressed below %d", stage, pct, got, last)
			}
			last = got
		}
	}

	if last != 100 {
		t.Errorf("final overall = %d, want 100", last)
	}
}

func TestValid(t *testing.T) {
	for _, stage := range progress.Stages {
		if !progress.Valid(stage) {
			t.Errorf("Valid(%s) = false, want true", stage)
		}
	}

	if progress.Valid(progress.Stage("bogus")) {
		t.Error("Valid(bogus) = true, want false")
	}
}
