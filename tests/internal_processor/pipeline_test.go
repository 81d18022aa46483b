package internal_processor_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/studynova/ingest/internal/ai"
	"github.com/studynova/ingest/internal/content"
	"github.com/studynova/ingest/internal/processor"
	"github.com/studynova/ingest/pkg/progress"
)

type fakeRunner struct {
	calls  int
	stdout string
	err    error
}

func (r *fakeRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	r.calls++
	return []byte(r.stdout), nil, r.err
}

type fakeGenerator struct {
	calls int
	pairs []ai.GeneratedPair
	err   error
}

func (g *fakeGenerator) Generate(ctx context.Context, text string, meta content.Metadata, maxQuestions int) ([]ai.GeneratedPair, error) {
	g.calls++
	return g.pairs, g.err
}

func TestProcess_RejectsInvalidPDF(t *testing.T) {
	runner := &fakeRunner{}
	generator := &fakeGenerator{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	pipe := processor.New(generator, runner, logger)

	var stages []progress.Stage
	input := processor.Input{
		Data:     []byte("this is not a pdf"),
		Filename: "chapter.pdf",
		Metadata: content.Metadata{Board: "cbse", Class: "10", Subject: "mathematics", Chapter: "Real Numbers"},
	}

	_, err := pipe.Process(context.Background(), input, func(stage progress.Stage, pct int, message string) {
		stages = append(stages, stage)
	})

	if err == nil {
		t.Fatal("Process() with invalid PDF = nil, want error")
	}
	if !strings.Contains(err.Error(), "invalid pdf") {
		t.Errorf("error = %v, want invalid pdf", err)
	}

	if runner.calls != 0 {
		t.Errorf("runner calls = %d, want 0 (validation precedes extraction)", runner.calls)
	}
	if generator.calls != 0 {
		t.Errorf("generator calls = %d, want 0", generator.calls)
	}

	if len(stages) == 0 || stages[0] != progress.StageExtraction {
		t.Errorf("first reported stage = %v, want extraction", stages)
	}
}

func TestProcess_NilProgressCallback(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	pipe := processor.New(&fakeGenerator{}, &fakeRunner{}, logger)

	input := processor.Input{Data: []byte("not a pdf"), Filename: "x.pdf"}

	// A nil callback must not panic.
	if _, err := pipe.Process(context.Background(), input, nil); err == nil {
		t.Error("Process() = nil, want error")
	}
}
