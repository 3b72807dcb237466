// Package extractor finds question spans inside a theme and splits them into
// question and answer text.
package extractor

import (
	"log/slog"
	"strings"

	"github.com/yludeuk/svoyak/models"
	"github.com/yludeuk/svoyak/pkg/rules"
)

// Extractor identifies question candidates using an ordered rule set.
type Extractor struct {
	Vocab  rules.Vocabulary
	Rules  rules.RuleSet
	Logger *slog.Logger
}

// New returns an extractor with the default rules of a vocabulary.
func New(vocab rules.Vocabulary, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Extractor{Vocab: vocab, Rules: rules.DefaultRules(vocab), Logger: logger}
}

// StartsQuestion reports whether lines[i] opens a new question.
// Price-prefixed lines rejected by a rule are logged with the rule name.
func (e *Extractor) StartsQuestion(lines []string, i int) (rules.Line, bool) {
	line, ok := rules.ParseLine(lines[i])
	if !ok {
		return rules.Line{}, false
	}
	v := e.Rules.Evaluate(line)
	if !v.Accepted {
		e.logger().Debug("price line skipped", "line", i, "reason", v.Reason, "text", line.Text)
		return line, false
	}
	return line, true
}

// Questions returns the question candidates of lines[start:end], in order.
// A candidate runs from its opening line up to the next line that opens a question;
// rejected price lines in between stay inside the current span.
func (e *Extractor) Questions(lines []string, start, end int) []models.QuestionCandidate {
	start = max(start, 0)
	end = min(end, len(lines))

	var out []models.QuestionCandidate
	for i := start; i < end; {
		line, ok := e.StartsQuestion(lines, i)
		if !ok {
			i++
			continue
		}
		j := i + 1
		for j < end {
			if _, next := e.StartsQuestion(lines, j); next {
				break
			}
			j++
		}
		out = append(out, models.QuestionCandidate{Price: line.Price, Start: i, End: j})
		i = j
	}
	return out
}

func (e *Extractor) logger() *slog.Logger {
	if e.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return e.Logger
}

// AnswerBlock splits lines[start:end] at the first answer marker line.
// The question is the preceding non-blank lines, trimmed and space-joined. The answer
// is the marker line plus the following lines up to a blank line, a price-prefixed
// line or the span end, line breaks kept. Without a marker both parts are empty.
func AnswerBlock(lines []string, start, end int, vocab rules.Vocabulary) (question, answer string) {
	start = max(start, 0)
	end = min(end, len(lines))

	answerIdx := -1
	for i := start; i < end; i++ {
		if vocab.IsAnswerLine(lines[i]) {
			answerIdx = i
			break
		}
	}
	if answerIdx < 0 {
		return "", ""
	}

	var q []string
	for _, l := range lines[start:answerIdx] {
		if t := strings.TrimSpace(l); t != "" {
			q = append(q, t)
		}
	}

	a := []string{lines[answerIdx]}
	for i := answerIdx + 1; i < end && !rules.PricePrefix.MatchString(lines[i]); i++ {
		if strings.TrimSpace(lines[i]) == "" {
			break
		}
		a = append(a, lines[i])
	}

	return strings.Join(q, " "), strings.Join(a, "\n")
}
