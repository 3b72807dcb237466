// Package segment carves a line corpus into theme segments.
package segment

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/yludeuk/svoyak/models"
	"github.com/yludeuk/svoyak/pkg/detector"
	"github.com/yludeuk/svoyak/pkg/rules"
)

// Strategy discovers themes in a line corpus.
type Strategy interface {
	Segment(lines []string) []models.Theme
}

// New returns the strategy named by the run configuration.
func New(cfg models.RunConfig, vocab rules.Vocabulary, logger *slog.Logger) Strategy {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	switch models.ResolveSegmentStrategy(cfg.Segment.Strategy) {
	case models.SegmentMarkers:
		return &MarkerStrategy{
			Vocab:     vocab,
			BlockSize: cfg.Detector.BlockSize,
			Logger:    logger,
		}
	default:
		return &BlockStrategy{
			Vocab:     vocab,
			BlockSize: cfg.Detector.BlockSize,
			MaxWindow: cfg.Detector.MaxWindow,
			Logger:    logger,
		}
	}
}

// BlockStrategy anchors themes on clusters of price-tagged lines found by the
// question-block detector, and reads the theme name from the nearest header above.
type BlockStrategy struct {
	Vocab     rules.Vocabulary
	BlockSize int
	MaxWindow int
	Logger    *slog.Logger
}

// Segment walks the corpus and returns themes in discovery order.
func (s *BlockStrategy) Segment(lines []string) []models.Theme {
	var themes []models.Theme
	num := 1

	for i := 0; i < len(lines); {
		block := detector.FindQuestionBlock(lines, i, s.BlockSize, s.MaxWindow)
		if len(block) == 0 {
			i++
			continue
		}

		header := s.findHeader(lines, block[0]-1)
		name := ""
		if header >= 0 {
			name = CleanThemeName(lines[header], s.Vocab.ThemeKeyword)
		}
		if name == "" {
			name = s.Vocab.FallbackThemeName(num)
		}

		themes = append(themes, models.Theme{
			Num:    num,
			Name:   name,
			Start:  header,
			QStart: block[0],
		})
		s.logger().Debug("theme detected", "num", num, "name", name, "header", header, "q_start", block[0])

		num++
		i = block[len(block)-1] + 1
	}

	closeThemes(themes, len(lines))
	return themes
}

// findHeader walks up from idx past blank and author lines.
func (s *BlockStrategy) findHeader(lines []string, idx int) int {
	for idx >= 0 {
		line := lines[idx]
		if strings.TrimSpace(line) != "" && !s.Vocab.IsAuthorLine(line) {
			break
		}
		idx--
	}
	return idx
}

func (s *BlockStrategy) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return s.Logger
}

// closeThemes sets each theme's End to the next theme's Start, or total for the last.
func closeThemes(themes []models.Theme, total int) {
	for i := range themes {
		if i+1 < len(themes) {
			themes[i].End = themes[i+1].Start
		} else {
			themes[i].End = total
		}
	}
}

// namePatterns holds the header patterns of the built-in vocabularies.
var namePatterns = map[string]*regexp.Regexp{
	rules.Russian().ThemeKeyword: compileNamePattern(rules.Russian().ThemeKeyword),
	rules.English().ThemeKeyword: compileNamePattern(rules.English().ThemeKeyword),
}

func compileNamePattern(keyword string) *regexp.Regexp {
	kw := ""
	if keyword != "" {
		kw = `(?:` + regexp.QuoteMeta(keyword) + `)?`
	}
	return regexp.MustCompile(`(?is)^(?:\d+\s*)?` + kw + `\s*(?:\d+)?[.:\s\-–—]*([\p{L}_].*)$`)
}

func namePattern(keyword string) *regexp.Regexp {
	if re, ok := namePatterns[keyword]; ok {
		return re
	}
	return compileNamePattern(keyword)
}

// CleanThemeName strips leading numbers, the theme keyword and separators from a
// header line. A header with no letter-led remainder is returned trimmed as is.
func CleanThemeName(line, keyword string) string {
	line = strings.TrimSpace(line)
	m := namePattern(keyword).FindStringSubmatch(line)
	if m == nil {
		return line
	}
	return strings.TrimSpace(m[1])
}
