package match

import (
	"slices"
	"sort"

	"lion/internal/schema"
)

// DefaultVocabulary lists attribute names that usually carry display text.
var DefaultVocabulary = []string{
	"text", "title", "label", "caption", "desc", "description", "message",
	"tooltip", "hint", "name", "tip", "placeholder",
}

// referenceTokens end names that point at something instead of holding
// text, as in "textId" or "iconPath".
var referenceTokens = map[string]bool{
	"id": true, "ids": true, "key": true, "ref": true, "code": true,
	"url": true, "uri": true, "path": true, "file": true, "icon": true,
	"image": true, "img": true, "color": true, "type": true, "style": true,
}

// Score weights.
const (
	nameWeight       = 0.6
	valueWeight      = 0.4
	referencePenalty = 0.25
	// neutralValue is used when no values were observed.
	neutralValue = 0.5
)

// DefaultMinScore is the score a candidate needs to be selected.
const DefaultMinScore = 0.65

// Options tunes Suggest.
type Options struct {
	// Vocabulary replaces DefaultVocabulary when set.
	Vocabulary []string
}

// Candidate is one schema attribute scored as possibly translatable.
type Candidate struct {
	Field schema.Field
	// Keyword is the vocabulary word the name matched best.
	Keyword string
	// TokenHit is set when a name token equals Keyword.
	TokenHit bool
	// Reference is set when the name ends in a token like "id" or "path".
	Reference bool

	NameScore  float64
	ValueScore float64
	// Samples is the number of values behind ValueScore.
	Samples int

	// Score combines NameScore and ValueScore (higher is better).
	Score float64
}

// CandidateList is a list of candidates, ranked by Suggest.
type CandidateList []Candidate

// Suggest scores every attribute of s and returns the candidates ranked by
// score. samples may be nil.
func Suggest(s *schema.Schema, samples Samples, opts Options) CandidateList {
	vocab := opts.Vocabulary
	if len(vocab) == 0 {
		vocab = DefaultVocabulary
	}

	fields := s.Fields()
	candidates := make(CandidateList, 0, len(fields))

	for _, f := range fields {
		candidates = append(candidates, score(f, samples[f.Key()], vocab))
	}

	sort.Stable(candidates)

	return candidates
}

func score(f schema.Field, values []string, vocab []string) Candidate {
	c := Candidate{Field: f, Samples: len(values)}

	tokens := TokenizeIdent(f.Attribute)
	norm := NormalizeIdent(f.Attribute)

	for _, word := range vocab {
		if slices.Contains(tokens, word) {
			c.Keyword, c.TokenHit, c.NameScore = word, true, 1
			break
		}

		if sim := LevenshteinNormalized(norm, word); sim > c.NameScore {
			c.Keyword, c.NameScore = word, sim
		}
	}

	if n := len(tokens); n > 0 && referenceTokens[tokens[n-1]] {
		c.Reference = true
		c.NameScore *= referencePenalty
	}

	c.ValueScore = textShare(values)
	if c.ValueScore < 0 {
		c.ValueScore = neutralValue
	}

	c.Score = c.NameScore*nameWeight + c.ValueScore*valueWeight

	return c
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less orders by score descending, then by field key for determinism.
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].Field.Key() < c[j].Field.Key()
}

// Top returns the first n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
		return c
	}

	return c[:n]
}

// Best returns the best candidate, or nil if there are none.
func (c CandidateList) Best() *Candidate {
	if len(c) == 0 {
		return nil
	}

	return &c[0]
}

// AboveThreshold returns the candidates scoring at least minScore.
func (c CandidateList) AboveThreshold(minScore float64) CandidateList {
	var result CandidateList

	for _, cand := range c {
		if cand.Score >= minScore {
			result = append(result, cand)
		}
	}

	return result
}

// Selection turns the candidates scoring at least minScore into a Selection
// for schemaName, best first.
func (c CandidateList) Selection(schemaName string, minScore float64) *schema.Selection {
	sel := &schema.Selection{Schema: schemaName, Translatable: []string{}}
	for _, cand := range c.AboveThreshold(minScore) {
		sel.Translatable = append(sel.Translatable, cand.Field.Key())
	}

	return sel
}
