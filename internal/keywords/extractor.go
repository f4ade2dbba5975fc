package keywords

import (
	"regexp"
	"sort"
	"strings"
)

// MaxKeywords caps the extracted keyword list.
const MaxKeywords = 15

var nonWord = regexp.MustCompile(`[^\w\s-]`)

// Extract ranks the most relevant keywords in resume text.
//
// Tokens are lowercased, stripped of punctuation, and dropped when shorter
// than three characters or present in the stop-word set. Each remaining token
// accumulates a weighted frequency: 3 per occurrence for job-title terms,
// 2 for technical skills, 1 otherwise. The top tokens by accumulated weight
// win; ties keep first-seen order. If no job-title term survives, one is
// synthesized from the best technical skill and prepended.
func Extract(text string) []string {
	cleaned := nonWord.ReplaceAllString(strings.ToLower(text), " ")

	weights := make(map[string]int)
	var order []string
	for _, word := range strings.Fields(cleaned) {
		if len(word) <= 2 {
			continue
		}
		if _, stop := stopWords[word]; stop {
			continue
		}
		weight := 1
		if _, ok := jobTerms[word]; ok {
			weight = 3
		}
		if _, ok := techSkills[word]; ok {
			weight = 2
		}
		if _, seen := weights[word]; !seen {
			order = append(order, word)
		}
		weights[word] += weight
	}

	// Nothing survived tokenization: an empty or unparsable document yields
	// an empty list rather than a synthesized title.
	if len(order) == 0 {
		return []string{}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return weights[order[i]] > weights[order[j]]
	})
	if len(order) > MaxKeywords {
		order = order[:MaxKeywords]
	}

	return ensureJobTitle(order)
}

// ensureJobTitle guarantees at least one job-title-associated keyword,
// synthesizing "<skill> developer" or "software developer" when absent.
func ensureJobTitle(kws []string) []string {
	for _, w := range kws {
		if _, ok := jobTerms[w]; ok {
			return kws
		}
	}

	title := "software developer"
	for _, w := range kws {
		if _, ok := techSkills[w]; ok {
			title = w + " developer"
			break
		}
	}

	out := append([]string{title}, kws...)
	if len(out) > MaxKeywords {
		out = out[:MaxKeywords]
	}
	return out
}
