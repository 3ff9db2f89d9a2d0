// Package results runs and analyzes solver parameter sweeps. A sweep
// solves the same puzzle repeatedly across a grid of worker counts and
// parallelization depth gates, then ranks the configurations by mean
// solve time.
package results

// Metrics aggregates the repetitions of one configuration.
type Metrics struct {
	MeanDurationMS float64 `json:"meanDurationMs"`
	MinDurationMS  float64 `json:"minDurationMs"`
	MaxDurationMS  float64 `json:"maxDurationMs"`
	MeanCells      float64 `json:"meanCells"`
	MeanBranches   float64 `json:"meanBranches"`
	MeanTasks      float64 `json:"meanTasks"`
	Repetitions    int     `json:"repetitions"`
}

// Variant is one (workers, maxDepth) configuration of the sweep.
type Variant struct {
	ID       int     `json:"id"`
	Workers  int     `json:"workers"`
	MaxDepth int     `json:"maxDepth"`
	Metrics  Metrics `json:"metrics"`
	Score    float64 `json:"score"` // mean duration in ms; lower is better
	Rank     int     `json:"rank"`
	Error    string  `json:"error,omitempty"`
}

// Summary provides an overview of the sweep.
type Summary struct {
	TotalVariants int     `json:"totalVariants"`
	SuccessCount  int     `json:"successCount"`
	FailureCount  int     `json:"failureCount"`
	BestScore     float64 `json:"bestScore"`
	WorstScore    float64 `json:"worstScore"`
	ScoreRange    float64 `json:"scoreRange"`
}

// SweepResults contains everything measured by one sweep.
type SweepResults struct {
	Version     string    `json:"version"`
	Puzzle      string    `json:"puzzle"`
	Dimension   int       `json:"dimension"`
	FreeCells   int       `json:"freeCells"`
	Workers     []int     `json:"workers"`
	Depths      []int     `json:"depths"`
	Repetitions int       `json:"repetitions"`
	Variants    []Variant `json:"variants"`
	Best        *Variant  `json:"best,omitempty"`
	Worst       *Variant  `json:"worst,omitempty"`
	Summary     Summary   `json:"summary"`
}
