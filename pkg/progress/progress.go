// Package progress computes overall ingestion progress from per-stage progress.
// Stages have fixed weights approximating their expected share of wall-clock
// time, so a progress bar driven by Overall moves at a believable rate even
// though AI generation dominates the pipeline.
package progress

// Stage identifies one phase of the document processing pipeline.
type Stage string

// Pipeline stages in execution order. StageError is a terminal marker
// carried on failed sessions and contributes no weight.
const (
	StageExtraction   Stage = "extraction"
	StageCleaning     Stage = "cleaning"
	StageAIProcessing Stage = "ai-processing"
	StageFormatting   Stage = "formatting"
	StageError        Stage = "error"
)

// Stages lists the pipeline stages in execution order.
var Stages = []Stage{StageExtraction, StageCleaning, StageAIProcessing, StageFormatting}

// weights sum to 100. AI generation dominates expected duration.
var weights = map[Stage]int{
	StageExtraction:   30,
	StageCleaning:     10,
	StageAIProcessing: 50,
	StageFormatting:   10,
}

// Weight returns the fixed weight for a stage. Unknown stages weigh 0.
func Weight(stage Stage) int {
	return weights[stage]
}

// Valid reports whether stage is one of the pipeline stages.
func Valid(stage Stage) bool {
	_, ok := weights[stage]
	return ok
}

// Overall derives the overall percentage for a (stage, stage-local) pair.
// It is pure: the result depends only on the arguments, never on prior
// calls, so any forward stage transition can only increase the prefix sum
// and monotonicity holds for free. Unknown stages contribute nothing and
// stage-local progress is clamped to [0, 100] before use.
func Overall(stage Stage, stageProgress int) int {
	stageProgress = clamp(stageProgress)

	overall := 0
	for _, s := range Stages {
		if s == stage {
			overall += weights[s] * stageProgress / 100
			return clamp(overall)
		}
		overall += weights[s]
	}

	// Unknown stage: no position in the pipeline, contributes nothing.
	return 0
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
