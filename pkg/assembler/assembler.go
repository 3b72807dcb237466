// Package assembler turns theme segments into numbered, normalized question records.
package assembler

import (
	"log/slog"
	"strings"

	"github.com/yludeuk/svoyak/models"
	"github.com/yludeuk/svoyak/pkg/extractor"
	"github.com/yludeuk/svoyak/pkg/rules"
	"github.com/yludeuk/svoyak/pkg/selector"
)

// Assembler runs extraction, selection, normalization and answer splitting per theme.
type Assembler struct {
	Extractor *extractor.Extractor
	Selector  *selector.Selector
	Vocab     rules.Vocabulary
	Logger    *slog.Logger
}

// New wires an assembler for a vocabulary.
func New(vocab rules.Vocabulary, maxCandidates int, logger *slog.Logger) *Assembler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Assembler{
		Extractor: extractor.New(vocab, logger),
		Selector:  selector.New(maxCandidates, logger),
		Vocab:     vocab,
		Logger:    logger,
	}
}

// Records builds the question records of one theme, in candidate order.
// Candidates with neither question nor answer text are dropped.
func (a *Assembler) Records(lines []string, theme models.Theme) []models.QuestionRecord {
	candidates := a.Extractor.Questions(lines, theme.BodyStart(), theme.End)
	candidates = a.Selector.Select(candidates)
	if len(candidates) == 0 {
		return nil
	}

	prices := make([]int, len(candidates))
	for i, c := range candidates {
		prices[i] = c.Price
	}
	mapping := selector.NormalizePrices(prices)

	var records []models.QuestionRecord
	for _, c := range candidates {
		q, ans := extractor.AnswerBlock(lines, c.Start, c.End, a.Vocab)
		q = strings.TrimSpace(rules.PricePrefix.ReplaceAllString(q, ""))
		if q == "" && ans == "" {
			a.Logger.Debug("question dropped: no answer marker", "theme", theme.Num, "line", c.Start, "price", c.Price)
			continue
		}
		records = append(records, models.QuestionRecord{
			Price:           c.Price,
			NormalizedPrice: mapping[c.Price],
			Question:        q,
			Answer:          ans,
		})
	}
	return records
}

// Assemble builds every theme and numbers the ones with surviving records
// sequentially from 1. Themes without records are left out.
func (a *Assembler) Assemble(lines []string, themes []models.Theme) []models.AssembledTheme {
	var out []models.AssembledTheme
	for _, t := range themes {
		records := a.Records(lines, t)
		if len(records) == 0 {
			a.Logger.Info("theme dropped: no usable questions", "theme", t.Num, "name", t.Name)
			continue
		}
		out = append(out, models.AssembledTheme{
			Number:  len(out) + 1,
			Theme:   t,
			Records: records,
		})
	}
	return out
}
