package keywords

// stopWords are common English words excluded from keyword counting.
var stopWords = newSet(
	"the", "and", "for", "that", "with", "this", "our", "your", "will", "have",
	"from", "they", "what", "about", "when", "make", "can", "all", "been", "were",
	"into", "some", "than", "its", "time", "only", "could", "other", "these",
)

// jobTerms are role and title words boosted above everything else.
var jobTerms = newSet(
	"developer", "engineer", "software", "web", "mobile", "frontend", "backend",
	"fullstack", "full-stack", "programmer", "architect", "lead", "senior", "junior",
	"development", "engineering", "application", "apps", "systems", "devops", "cloud",
)

// techSkills are technology words boosted above generic vocabulary.
var techSkills = newSet(
	"javascript", "typescript", "python", "java", "c++", "ruby", "php", "swift",
	"kotlin", "flutter", "react", "angular", "vue", "node", "express", "django",
	"spring", "aws", "azure", "gcp", "docker", "kubernetes", "sql", "nosql",
	"mongodb", "postgresql", "mysql", "redis", "graphql", "rest", "api",
)

func newSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
