package validate

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
)

// didYouMean returns " (did you mean 'X'?)" for the closest candidate to
// got, or "" when nothing is close.
func didYouMean(got string, candidates []string) string {
	if got == "" {
		return ""
	}
	lowered := make([]string, len(candidates))
	for i, c := range candidates {
		lowered[i] = strings.ToLower(c)
	}
	matches := fuzzy.Find(strings.ToLower(got), lowered)
	if len(matches) == 0 {
		return ""
	}
	return fmt.Sprintf(" (did you mean '%s'?)", candidates[matches[0].Index])
}
