// Package analyze turns extracted plain text into a ranked word-frequency
// table: normalize, tokenize, drop stopwords, count, sort, truncate.
package analyze

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/hyperifyio/wordbubble/internal/analyze/stopwords"
)

// DefaultTopN bounds how many ranked words are kept for display.
const DefaultTopN = 25

// WordCount is one row of the frequency table.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Counter computes ranked word frequencies against a fixed stopword set.
// The set is read-only after construction; a Counter is safe for
// concurrent use.
type Counter struct {
	stop stopwords.Set
	topN int
}

// NewCounter builds a Counter. A nil set means no filtering (the degraded
// mode when no stopword asset could be loaded). topN <= 0 selects
// DefaultTopN.
func NewCounter(set stopwords.Set, topN int) *Counter {
	if topN <= 0 {
		topN = DefaultTopN
	}
	return &Counter{stop: set, topN: topN}
}

// Rank returns the top-N words of text by occurrence count, descending,
// with ties broken by first appearance in the text. Empty or all-stopword
// input yields an empty slice.
func (c *Counter) Rank(text string) []WordCount {
	counts := make(map[string]int)
	var order []string

	for _, tok := range Tokenize(text) {
		if c.stop.Contains(tok) {
			continue
		}
		// Bare digits ("page 2 of 9") carry no signal worth charting.
		if len(tok) == 1 && tok[0] >= '0' && tok[0] <= '9' {
			continue
		}
		if _, seen := counts[tok]; !seen {
			order = append(order, tok)
		}
		counts[tok]++
	}

	entries := make([]WordCount, 0, len(order))
	for _, w := range order {
		entries = append(entries, WordCount{Word: w, Count: counts[w]})
	}
	// Stable sort over the first-occurrence ordering gives the tie-break
	// for free, including at the truncation boundary.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	if len(entries) > c.topN {
		entries = entries[:c.topN]
	}
	return entries
}

// Tokenize lowercases text and splits it into alphanumeric runs.
// Punctuation and whitespace are separators and never survive as tokens.
// Unicode compatibility normalization folds full-width and ligature forms
// before case folding.
func Tokenize(text string) []string {
	if text == "" {
		return nil
	}
	folded := cases.Fold().String(norm.NFKC.String(text))
	return strings.FieldsFunc(folded, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
