package models

import (
	"fmt"
	"strings"
)

// Theme is a named segment of the line corpus holding a cluster of priced questions.
// Start is the header line; it is -1 when the theme opens at corpus start without one.
// End is exclusive and equals the next theme's Start, or the corpus length.
type Theme struct {
	Num    int    `json:"num" yaml:"num"`
	Name   string `json:"name" yaml:"name"`
	Start  int    `json:"start" yaml:"start"`
	End    int    `json:"end" yaml:"end"`
	QStart int    `json:"q_start" yaml:"q_start"`
}

// BodyStart returns the first line index after the header.
func (t Theme) BodyStart() int {
	return t.Start + 1
}

// QuestionCandidate is a line span suspected of holding one priced question and its answer.
type QuestionCandidate struct {
	Price int `json:"price" yaml:"price"`
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"` // exclusive
}

// QuestionRecord is a selected, normalized question with its answer block.
type QuestionRecord struct {
	Price           int    `json:"price" yaml:"price"`
	NormalizedPrice int    `json:"normalized_price" yaml:"normalized_price"`
	Question        string `json:"question" yaml:"question"`
	Answer          string `json:"answer" yaml:"answer"`
}

// Text formats the record the way it appears in an exported round.
func (r QuestionRecord) Text() string {
	return fmt.Sprintf("%d. %s\n\n%s\n", r.NormalizedPrice, r.Question, r.Answer)
}

// AssembledTheme is a theme with at least one surviving record.
// Number is its sequential output number.
type AssembledTheme struct {
	Number  int              `json:"number" yaml:"number"`
	Theme   Theme            `json:"theme" yaml:"theme"`
	Records []QuestionRecord `json:"records" yaml:"records"`
}

// Text renders the theme header followed by its records.
func (a AssembledTheme) Text() string {
	parts := make([]string, 0, len(a.Records)+1)
	parts = append(parts, fmt.Sprintf("%d. %s\n", a.Number, a.Theme.Name))
	for _, r := range a.Records {
		parts = append(parts, r.Text())
	}
	return strings.TrimSpace(strings.Join(parts, "\n"))
}

// ThemeBlock is one export unit: a contiguous run of assembled themes.
type ThemeBlock struct {
	Index  int              `json:"index" yaml:"index"`
	Themes []AssembledTheme `json:"themes" yaml:"themes"`
}

// Text joins the block's themes with a blank line.
func (b ThemeBlock) Text() string {
	texts := make([]string, 0, len(b.Themes))
	for _, t := range b.Themes {
		texts = append(texts, t.Text())
	}
	return strings.TrimSpace(strings.Join(texts, "\n\n"))
}

// QuestionCount returns the number of records across the block.
func (b ThemeBlock) QuestionCount() int {
	n := 0
	for _, t := range b.Themes {
		n += len(t.Records)
	}
	return n
}
