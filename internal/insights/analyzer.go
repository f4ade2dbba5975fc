package insights

import (
	"fmt"
	"sort"
	"strings"
)

// FieldInsight describes one career field with its static guidance.
type FieldInsight struct {
	Category      string   `json:"category"`
	Strengths     []string `json:"strengths"`
	Opportunities []string `json:"opportunities"`
	MarketTrends  []string `json:"marketTrends"`
}

// Insights is the full analysis result returned to the client.
type Insights struct {
	PrimaryField            *FieldInsight `json:"primaryField"`
	SecondaryField          *FieldInsight `json:"secondaryField"`
	CrossFieldOpportunities []string      `json:"crossFieldOpportunities"`
}

// Analyze scores the fixed mock skill list against each domain and maps the
// two best-scoring domains to primary and secondary fields. Deterministic:
// equal scores rank in domain declaration order.
func Analyze() Insights {
	return analyze(mockSkills)
}

func analyze(skills []string) Insights {
	type ranked struct {
		name  string
		score int
	}

	scores := make([]ranked, 0, len(domains))
	for _, d := range domains {
		score := 0
		for _, skill := range skills {
			if matchesDomain(skill, d.keywords) {
				score++
			}
		}
		if score > 0 {
			scores = append(scores, ranked{name: d.name, score: score})
		}
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].score > scores[j].score
	})

	out := Insights{CrossFieldOpportunities: []string{}}
	if len(scores) > 0 {
		out.PrimaryField = fieldFor(scores[0].name)
	}
	if len(scores) > 1 {
		out.SecondaryField = fieldFor(scores[1].name)
	}

	if out.PrimaryField != nil && out.SecondaryField != nil {
		out.CrossFieldOpportunities = []string{
			fmt.Sprintf("Consider roles that combine %s and %s", out.PrimaryField.Category, out.SecondaryField.Category),
			"Your diverse skill set is valuable for modern tech companies",
			"Look for opportunities to bridge between different technical domains",
		}
	}

	return out
}

// matchesDomain reports whether a skill overlaps any domain keyword by
// case-insensitive substring containment, checked in both directions.
func matchesDomain(skill string, keywords []string) bool {
	s := strings.ToLower(skill)
	for _, kw := range keywords {
		k := strings.ToLower(kw)
		if strings.Contains(s, k) || strings.Contains(k, s) {
			return true
		}
	}
	return false
}

func fieldFor(name string) *FieldInsight {
	fi, ok := domainInsights[name]
	if !ok {
		return nil
	}
	return &fi
}
