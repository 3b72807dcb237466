// Package pipeline runs the whole segmentation engine over one line corpus.
package pipeline

import (
	"fmt"
	"log/slog"

	"github.com/yludeuk/svoyak/models"
	"github.com/yludeuk/svoyak/pkg/assembler"
	"github.com/yludeuk/svoyak/pkg/detector"
	"github.com/yludeuk/svoyak/pkg/partition"
	"github.com/yludeuk/svoyak/pkg/rules"
	"github.com/yludeuk/svoyak/pkg/segment"
)

// Result holds every stage's output of a run.
type Result struct {
	Language  detector.LanguageResult
	Themes    []models.Theme
	Assembled []models.AssembledTheme
	Sizes     []int
	Blocks    []models.ThemeBlock
}

// Texts returns the formatted text of each block, in order.
func (r *Result) Texts() []string {
	texts := make([]string, len(r.Blocks))
	for i, b := range r.Blocks {
		texts[i] = b.Text()
	}
	return texts
}

// QuestionCount returns the number of records across all blocks.
func (r *Result) QuestionCount() int {
	n := 0
	for _, b := range r.Blocks {
		n += b.QuestionCount()
	}
	return n
}

// Runner executes the pipeline with a fixed configuration.
type Runner struct {
	Config   models.RunConfig
	Logger   *slog.Logger
	Language *detector.LanguageDetector
}

// NewRunner validates cfg and returns a runner. Invalid configuration is the
// only hard failure of the engine.
func NewRunner(cfg models.RunConfig, logger *slog.Logger) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	r := &Runner{Config: cfg, Logger: logger}
	if cfg.Language == "" || cfg.Language == models.LanguageAuto {
		r.Language = detector.NewLanguageDetector()
	}
	return r, nil
}

// Run segments lines into themes, assembles their records, and partitions the
// surviving themes into blocks. Unrecognized input yields an empty result.
func (r *Runner) Run(lines []string) *Result {
	res := &Result{Language: r.resolveLanguage(lines)}
	vocab := rules.For(res.Language.Language)
	r.Logger.Info("language resolved", "language", res.Language.Language,
		"detected", res.Language.Detected, "confidence", fmt.Sprintf("%.2f", res.Language.Confidence))

	res.Themes = segment.New(r.Config, vocab, r.Logger).Segment(lines)
	r.Logger.Info("themes segmented", "count", len(res.Themes), "strategy", models.ResolveSegmentStrategy(r.Config.Segment.Strategy))

	res.Assembled = assembler.New(vocab, r.Config.Selector.MaxCandidates, r.Logger).Assemble(lines, res.Themes)
	r.Logger.Info("themes assembled", "kept", len(res.Assembled), "dropped", len(res.Themes)-len(res.Assembled))

	res.Sizes = partition.Sizes(len(res.Assembled), r.Config.Partition)
	for i, group := range partition.Split(res.Assembled, res.Sizes) {
		res.Blocks = append(res.Blocks, models.ThemeBlock{Index: i + 1, Themes: group})
	}
	r.Logger.Info("themes partitioned", "blocks", len(res.Blocks), "sizes", res.Sizes)

	return res
}

func (r *Runner) resolveLanguage(lines []string) detector.LanguageResult {
	if r.Language == nil {
		return detector.LanguageResult{Language: r.Config.Language, Confidence: 1}
	}
	return r.Language.Resolve(r.Config.Language, lines)
}

// Run is a convenience wrapper building a Runner for a single corpus.
func Run(lines []string, cfg models.RunConfig, logger *slog.Logger) (*Result, error) {
	r, err := NewRunner(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to configure pipeline: %w", err)
	}
	return r.Run(lines), nil
}
