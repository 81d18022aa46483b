package processor

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/studynova/ingest/internal/ai"
	"github.com/studynova/ingest/internal/content"
	"github.com/studynova/ingest/pkg/progress"
)

type pipeline struct {
	generator ai.Generator
	runner    Runner
	pdftotext string
	logger    *slog.Logger
}

// New creates the reference pipeline: pdfcpu + pdftotext extraction, text
// cleaning, AI question-answer generation, and record formatting.
func New(generator ai.Generator, runner Runner, logger *slog.Logger) System {
	return &pipeline{
		generator: generator,
		runner:    runner,
		pdftotext: "pdftotext",
		logger:    logger.With("system", "processor"),
	}
}

func (p *pipeline) Process(ctx context.Context, input Input, onProgress ProgressFunc) (*Result, error) {
	report := func(stage progress.Stage, pct int, message string) {
		if onProgress != nil {
			onProgress(stage, pct, message)
		}
	}

	report(progress.StageExtraction, 0, "Validating PDF document...")

	pageCount, err := api.PageCount(bytes.NewReader(input.Data), model.NewDefaultConfiguration())
	if err != nil {
		return nil, fmt.Errorf("invalid pdf: %w", err)
	}

	report(progress.StageExtraction, 10, fmt.Sprintf("Extracting text from %d pages...", pageCount))

	rawText, err := p.extractText(ctx, input.Data)
	if err != nil {
		return nil, fmt.Errorf("extract text: %w", err)
	}
	if strings.TrimSpace(rawText) == "" {
		return nil, fmt.Errorf("no text extracted from %q", input.Filename)
	}

	report(progress.StageExtraction, 100, "Text extraction complete")
	report(progress.StageCleaning, 0, "Cleaning extracted text...")

	cleaned := CleanText(rawText)
	words := wordCount(cleaned)

	report(progress.StageCleaning, 100, "Text cleaned and formatted")
	report(progress.StageAIProcessing, 0, "Generating Q&A pairs...")

	pairs, err := p.generator.Generate(ctx, cleaned, input.Metadata, input.MaxQuestions)
	if err != nil {
		return nil, fmt.Errorf("generate qa pairs: %w", err)
	}
	if len(pairs) == 0 {
		return nil, fmt.Errorf("no qa pairs generated from %q", input.Filename)
	}

	report(progress.StageAIProcessing, 100, fmt.Sprintf("Generated %d Q&A pairs", len(pairs)))
	report(progress.StageFormatting, 0, "Formatting records...")

	now := time.Now().UTC()
	records := make([]content.Record, len(pairs))
	for i, pair := range pairs {
		records[i] = content.Record{
			Question:     strings.TrimSpace(pair.Question),
			Answer:       strings.TrimSpace(pair.Answer),
			RecordNumber: i + 1,
			Confidence:   pair.Confidence,
			ExtractedAt:  now,
		}
	}

	report(progress.StageFormatting, 100, "Formatting complete")

	p.logger.Info("document processed",
		"filename", input.Filename,
		"pages", pageCount,
		"words", words,
		"records", len(records),
	)

	return &Result{
		Records: records,
		Stats: Stats{
			TotalQuestions: len(records),
			PageCount:      pageCount,
			WordCount:      words,
		},
	}, nil
}

// extractText writes the document to a temp file and runs pdftotext over it.
// Form feeds separate pages in the output.
func (p *pipeline) extractText(ctx context.Context, data []byte) (string, error) {
	tmpDir, err := os.MkdirTemp("", "ingest-*")
	if err != nil {
		return "", err
	}
	defer func() {
		if err := os.RemoveAll(tmpDir); err != nil {
			p.logger.Warn("failed to remove temp dir", "dir", tmpDir, "error", err)
		}
	}()

	path := filepath.Join(tmpDir, "input.pdf")
	if err := os.WriteFile(path, data, 0600); err != nil {
		return "", fmt.Errorf("write temp pdf: %w", err)
	}

	out, errb, err := p.runner.Run(ctx, p.pdftotext, "-layout", "-enc", "UTF-8", "-eol", "unix", path, "-")
	if err != nil {
		return "", fmt.Errorf("pdftotext: %w: %s", err, truncate(string(errb), 512))
	}

	return string(out), nil
}
