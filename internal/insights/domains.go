package insights

// mockSkills stands in for skills parsed out of the resume. Domain scoring
// runs against this fixed list, not the uploaded document text; the upstream
// product behaves the same way, so the mismatch is preserved on purpose.
// See DESIGN.md before "fixing" this.
var mockSkills = []string{
	"JavaScript", "React", "Node.js", "Python",
	"API Development", "AWS", "Docker",
	"Data Analysis", "SQL", "Machine Learning",
	"Product Management", "Agile", "UI/UX",
}

type domain struct {
	name     string
	keywords []string
}

// domains are the five career fields scored against extracted skills,
// in ranking-stable declaration order.
var domains = []domain{
	{name: "development", keywords: []string{"JavaScript", "React", "Node.js", "Python", "API", "Frontend", "Backend"}},
	{name: "dataScience", keywords: []string{"Python", "Machine Learning", "Data Analysis", "Statistics", "SQL"}},
	{name: "devops", keywords: []string{"AWS", "Docker", "CI/CD", "Infrastructure", "Kubernetes"}},
	{name: "productManagement", keywords: []string{"Product Strategy", "Agile", "Roadmap", "Stakeholder", "User Experience"}},
	{name: "design", keywords: []string{"UI/UX", "User Interface", "Wireframes", "User Research", "Design Systems"}},
}

// domainInsights carries the static prose per field. Only three of the five
// domains have prose; a ranked domain without prose yields a null field.
var domainInsights = map[string]FieldInsight{
	"development": {
		Category: "Software Development",
		Strengths: []string{
			"Strong foundation in modern web technologies",
			"Full-stack development capabilities",
			"Experience with both frontend and backend development",
		},
		Opportunities: []string{
			"Consider cloud certification to enhance deployment skills",
			"Explore microservices architecture patterns",
			"Deepen expertise in specific JavaScript frameworks",
		},
		MarketTrends: []string{
			"High demand for full-stack developers with React expertise",
			"Growing emphasis on cloud-native development",
			"Increasing focus on performance optimization",
		},
	},
	"dataScience": {
		Category: "Data Science",
		Strengths: []string{
			"Strong analytical and problem-solving abilities",
			"Experience with data analysis tools",
			"Understanding of machine learning concepts",
		},
		Opportunities: []string{
			"Deepen expertise in specific ML frameworks",
			"Build a portfolio of data science projects",
			"Consider specializing in a specific industry domain",
		},
		MarketTrends: []string{
			"Rising demand for ML engineers",
			"Focus on explainable AI",
			"Integration of AI with traditional software systems",
		},
	},
	"devops": {
		Category: "DevOps Engineering",
		Strengths: []string{
			"Experience with containerization",
			"Understanding of cloud platforms",
			"Knowledge of automation tools",
		},
		Opportunities: []string{
			"Pursue cloud platform certifications",
			"Expand knowledge of security practices",
			"Learn infrastructure as code tools",
		},
		MarketTrends: []string{
			"Growing adoption of GitOps practices",
			"Emphasis on security in CI/CD pipelines",
			"Rise of platform engineering",
		},
	},
}
