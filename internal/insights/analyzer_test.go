package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeIsDeterministic(t *testing.T) {
	first := Analyze()
	second := Analyze()

	require.NotNil(t, first.PrimaryField)
	require.NotNil(t, second.PrimaryField)
	assert.Equal(t, first.PrimaryField.Category, second.PrimaryField.Category)
	assert.Equal(t, first.SecondaryField, second.SecondaryField)
	assert.Equal(t, first.CrossFieldOpportunities, second.CrossFieldOpportunities)
}

func TestAnalyzeRanksDevelopmentFirst(t *testing.T) {
	got := Analyze()

	require.NotNil(t, got.PrimaryField)
	assert.Equal(t, "Software Development", got.PrimaryField.Category)
	require.NotNil(t, got.SecondaryField)
	assert.Equal(t, "Data Science", got.SecondaryField.Category)
	assert.NotEmpty(t, got.PrimaryField.Strengths)
	assert.NotEmpty(t, got.PrimaryField.Opportunities)
	assert.NotEmpty(t, got.PrimaryField.MarketTrends)
}

func TestAnalyzeCrossFieldMentionsBothCategories(t *testing.T) {
	got := Analyze()

	require.Len(t, got.CrossFieldOpportunities, 3)
	assert.Contains(t, got.CrossFieldOpportunities[0], "Software Development")
	assert.Contains(t, got.CrossFieldOpportunities[0], "Data Science")
}

func TestAnalyzeSingleDomainHasNoCrossField(t *testing.T) {
	got := analyze([]string{"Kubernetes"})

	require.NotNil(t, got.PrimaryField)
	assert.Equal(t, "DevOps Engineering", got.PrimaryField.Category)
	assert.Nil(t, got.SecondaryField)
	assert.Empty(t, got.CrossFieldOpportunities)
}

func TestAnalyzeNoMatchesYieldsNullFields(t *testing.T) {
	got := analyze([]string{"Carpentry", "Welding"})

	assert.Nil(t, got.PrimaryField)
	assert.Nil(t, got.SecondaryField)
	assert.Empty(t, got.CrossFieldOpportunities)
}

func TestAnalyzeDomainWithoutProseYieldsNullField(t *testing.T) {
	// Design scores but carries no prose, so the ranked slot stays null and
	// cross-field text is suppressed.
	got := analyze([]string{"UI/UX", "Wireframes"})

	assert.Nil(t, got.PrimaryField)
	assert.Empty(t, got.CrossFieldOpportunities)
}

func TestMatchesDomainChecksBothDirections(t *testing.T) {
	assert.True(t, matchesDomain("API Development", []string{"API"}))
	assert.True(t, matchesDomain("API", []string{"API Development"}))
	assert.False(t, matchesDomain("Gardening", []string{"API"}))
}
