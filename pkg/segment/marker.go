package segment

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/yludeuk/svoyak/models"
	"github.com/yludeuk/svoyak/pkg/detector"
	"github.com/yludeuk/svoyak/pkg/rules"
)

// MarkerStrategy opens a theme at every explicit header line of the form
// "Тема 3. Name" or "3 Тема: Name". Theme numbers come from the header itself.
type MarkerStrategy struct {
	Vocab     rules.Vocabulary
	BlockSize int
	Logger    *slog.Logger
}

func markerPatterns(keyword string) (numFirst, keywordFirst *regexp.Regexp) {
	kw := regexp.QuoteMeta(keyword)
	keywordFirst = regexp.MustCompile(`^` + kw + `\s*(\d+)\.?\s*(.+)`)
	numFirst = regexp.MustCompile(`^(\d+)\s*` + kw + `: (.+)`)
	return numFirst, keywordFirst
}

// Segment returns one theme per header line, in corpus order.
func (s *MarkerStrategy) Segment(lines []string) []models.Theme {
	numFirst, keywordFirst := markerPatterns(s.Vocab.ThemeKeyword)
	logger := s.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	var themes []models.Theme
	for i, line := range lines {
		m := keywordFirst.FindStringSubmatch(line)
		if m == nil {
			m = numFirst.FindStringSubmatch(line)
		}
		if m == nil {
			continue
		}
		num, err := strconv.Atoi(m[1])
		if err != nil {
			logger.Debug("skipping theme header with unreadable number", "line", i, "text", line)
			continue
		}
		themes = append(themes, models.Theme{
			Num:   num,
			Name:  strings.TrimSpace(m[2]),
			Start: i,
		})
	}

	closeThemes(themes, len(lines))
	for i := range themes {
		themes[i].QStart = s.firstQuestion(lines, themes[i])
		logger.Debug("theme header found", "num", themes[i].Num, "name", themes[i].Name, "start", themes[i].Start)
	}
	return themes
}

// firstQuestion locates the first question line of a theme using the wider window,
// falling back to any question line, then to the theme end.
func (s *MarkerStrategy) firstQuestion(lines []string, t models.Theme) int {
	blockSize := s.BlockSize
	if blockSize <= 0 {
		blockSize = models.DefaultBlockSize
	}
	if block := detector.FindQuestionBlock(lines, t.BodyStart(), blockSize, models.StrictMaxWindow); len(block) > 0 && block[0] < t.End {
		return block[0]
	}
	for i := t.BodyStart(); i < t.End; i++ {
		if detector.IsQuestionLine(lines[i]) {
			return i
		}
	}
	return t.End
}
