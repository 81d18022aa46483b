package main

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/studynova/ingest/internal/content"
)

//go:embed seeds/*.json
var seedFiles embed.FS

func init() {
	registerSeeder(&SolutionSeeder{})
}

// SolutionSeedData represents the JSON structure for solution seed files.
type SolutionSeedData struct {
	Solutions []SolutionSeed `json:"solutions"`
}

// SolutionSeed is one published chapter solution to insert.
type SolutionSeed struct {
	Filename string           `json:"filename"`
	Metadata content.Metadata `json:"metadata"`
	Records  []content.Record `json:"qa_pairs"`
	Tier     string           `json:"tier"`
}

// SolutionSeeder seeds demo published solutions. It loads seed data from an
// embedded file or an external file path.
type SolutionSeeder struct {
	file string
}

// Name returns "solutions" as the seeder identifier.
func (s *SolutionSeeder) Name() string {
	return "solutions"
}

// Description returns a human-readable description of this seeder.
func (s *SolutionSeeder) Description() string {
	return "Seeds demo published chapter solutions"
}

// SetFile configures an external seed file path, overriding the embedded default.
func (s *SolutionSeeder) SetFile(path string) {
	s.file = path
}

// Seed inserts the solutions with save semantics so re-runs are idempotent.
func (s *SolutionSeeder) Seed(ctx context.Context, tx *sql.Tx) error {
	data, err := s.loadSeedData()
	if err != nil {
		return err
	}

	for _, sol := range data.Solutions {
		if err := s.saveSolution(ctx, tx, sol); err != nil {
			return fmt.Errorf("save solution %s: %w", sol.Metadata.Slug(), err)
		}
	}

	return nil
}

func (s *SolutionSeeder) loadSeedData() (*SolutionSeedData, error) {
	var raw []byte
	var err error

	if s.file != "" {
		raw, err = os.ReadFile(s.file)
		if err != nil {
			return nil, fmt.Errorf("read seed file: %w", err)
		}
	} else {
		raw, err = seedFiles.ReadFile("seeds/demo_solutions.json")
		if err != nil {
			return nil, fmt.Errorf("read embedded seed file: %w", err)
		}
	}

	var data SolutionSeedData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse seed data: %w", err)
	}

	return &data, nil
}

func (s *SolutionSeeder) saveSolution(ctx context.Context, tx *sql.Tx, sol SolutionSeed) error {
	const query = `
		INSERT INTO solutions (id, filename, board, class, subject, chapter, qa_pairs, total_questions, tier, storage_key)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET
			filename = EXCLUDED.filename,
			qa_pairs = EXCLUDED.qa_pairs,
			total_questions = EXCLUDED.total_questions,
			tier = EXCLUDED.tier,
			approved_at = NOW()`

	id := sol.Metadata.Slug()

	pairs, err := json.Marshal(sol.Records)
	if err != nil {
		return fmt.Errorf("encode qa_pairs: %w", err)
	}

	tier := sol.Tier
	if tier == "" {
		tier = "pro"
	}

	_, err = tx.ExecContext(ctx, query,
		id, sol.Filename,
		sol.Metadata.Board, sol.Metadata.Class, sol.Metadata.Subject, sol.Metadata.Chapter,
		pairs, len(sol.Records), tier, fmt.Sprintf("solutions/%s.jsonl", id),
	)
	return err
}
