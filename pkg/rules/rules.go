package rules

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// PricePrefix matches a line opening with a price: digits followed by a dot or whitespace.
var PricePrefix = regexp.MustCompile(`^(\d+)[.\s]`)

// Line is a price-prefixed line split into the parts the rules look at.
type Line struct {
	Text  string
	Price int
	Rest  string   // text after the price prefix, trimmed
	Words []string // whitespace-separated tokens of Rest
}

// First returns the first token of the remainder, or "".
func (l Line) First() string {
	if len(l.Words) > 0 {
		return l.Words[0]
	}
	return ""
}

// Second returns the second token of the remainder, or "".
func (l Line) Second() string {
	if len(l.Words) > 1 {
		return l.Words[1]
	}
	return ""
}

// ParseLine splits a raw line at its price prefix.
// The line is not trimmed first: an indented number does not open a question.
func ParseLine(text string) (Line, bool) {
	m := PricePrefix.FindStringSubmatchIndex(text)
	if m == nil {
		return Line{}, false
	}
	price, err := strconv.Atoi(text[m[2]:m[3]])
	if err != nil {
		return Line{}, false
	}
	rest := strings.TrimSpace(text[m[1]:])
	return Line{
		Text:  text,
		Price: price,
		Rest:  rest,
		Words: strings.Fields(rest),
	}, true
}

// Rule is a named predicate rejecting a price-prefixed line as filler.
type Rule struct {
	Name   string
	Reject func(Line) bool
}

// Verdict is the outcome of evaluating a RuleSet. Reason names the rejecting rule.
type Verdict struct {
	Accepted bool
	Reason   string
}

// RuleSet is an ordered list of rules; the first rejection wins.
type RuleSet []Rule

// Evaluate runs the rules in order against a line.
func (rs RuleSet) Evaluate(l Line) Verdict {
	for _, r := range rs {
		if r.Reject(l) {
			return Verdict{Accepted: false, Reason: r.Name}
		}
	}
	return Verdict{Accepted: true}
}

const (
	RulePriceStep      = "price-step"
	RuleServiceMarker  = "service-marker"
	RuleServiceKeyword = "service-keyword"
	RuleShortHeading   = "short-heading"
)

// DefaultRules returns the standard filler heuristics for a vocabulary.
func DefaultRules(v Vocabulary) RuleSet {
	return RuleSet{
		{Name: RulePriceStep, Reject: PriceStep},
		{Name: RuleServiceMarker, Reject: v.ServiceMarker},
		{Name: RuleServiceKeyword, Reject: v.ServiceKeyword},
		{Name: RuleShortHeading, Reject: ShortHeading},
	}
}

// PriceStep rejects prices that are not positive multiples of 10.
func PriceStep(l Line) bool {
	return l.Price <= 0 || l.Price%10 != 0
}

// ServiceMarker rejects lines whose first token starts with an administrative marker.
func (v Vocabulary) ServiceMarker(l Line) bool {
	first := l.First()
	for _, m := range v.ServiceMarkers {
		if strings.HasPrefix(first, m) {
			return true
		}
	}
	return false
}

// ServiceKeyword rejects lines whose first or second token is an extended keyword.
func (v Vocabulary) ServiceKeyword(l Line) bool {
	if first := l.First(); first != "" && v.IsServiceKeyword(first) {
		return true
	}
	second := l.Second()
	return second != "" && v.IsServiceKeyword(second)
}

// ShortHeading rejects short capitalized lines that are not questions.
func ShortHeading(l Line) bool {
	first := l.First()
	if first == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(first)
	return unicode.IsUpper(r) && len(l.Words) < 4 && !strings.HasSuffix(l.Rest, "?")
}
