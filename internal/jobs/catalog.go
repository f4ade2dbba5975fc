package jobs

// Job is a single recommended posting.
type Job struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	MatchScore  int      `json:"matchScore"`
	Description string   `json:"description"`
	Salary      string   `json:"salary"`
	Posted      string   `json:"posted"`
	Skills      []string `json:"skills"`
}

// Recommended returns the static job catalog, best match first. A real
// implementation would rank postings against the caller's resume analysis.
func Recommended() []Job {
	return []Job{
		{
			ID:          1,
			Title:       "Senior Frontend Developer",
			Company:     "TechCorp Inc.",
			Location:    "San Francisco, CA (Remote)",
			MatchScore:  95,
			Description: "Perfect match for your React and TypeScript experience. Looking for someone to lead our frontend team.",
			Salary:      "$130,000 - $160,000",
			Posted:      "1 day ago",
			Skills:      []string{"React", "TypeScript", "Redux", "Node.js"},
		},
		{
			ID:          2,
			Title:       "Full Stack Engineer",
			Company:     "Innovation Hub",
			Location:    "New York, NY (Hybrid)",
			MatchScore:  92,
			Description: "Your full stack experience matches our needs. Join us in building scalable web applications.",
			Salary:      "$120,000 - $150,000",
			Posted:      "3 days ago",
			Skills:      []string{"React", "Node.js", "PostgreSQL", "AWS"},
		},
		{
			ID:          3,
			Title:       "Software Engineer",
			Company:     "Tech Innovators",
			Location:    "Remote",
			MatchScore:  88,
			Description: "Your skills in JavaScript and Python align well with our tech stack.",
			Salary:      "$115,000 - $140,000",
			Posted:      "2 days ago",
			Skills:      []string{"JavaScript", "Python", "Django", "React"},
		},
	}
}
