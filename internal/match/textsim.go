package match

import (
	"strings"

	"golang.org/x/text/cases"
)

// TextSimilarityFunc scores the similarity of two texts in [0, 1]. The DP
// matcher accepts any implementation through Options.TextSimilarity.
type TextSimilarityFunc func(a, b string) float64

var foldCaser = cases.Fold()

// TokenJaccard is the default text similarity: Jaccard overlap of the
// case-folded whitespace token sets. Either text having no tokens yields 0.
func TokenJaccard(a, b string) float64 {
	setA := tokenSet(a)
	setB := tokenSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	intersection := 0
	for token := range setA {
		if _, ok := setB[token]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	return float64(intersection) / float64(union)
}

func tokenSet(text string) map[string]struct{} {
	fields := strings.Fields(foldCaser.String(text))
	set := make(map[string]struct{}, len(fields))
	for _, field := range fields {
		set[field] = struct{}{}
	}
	return set
}
