package config

import "sort"

// Class is the viewport classification.
type Class int

const (
	Full Class = iota
	Compact
)

func (c Class) String() string {
	if c == Compact {
		return "compact"
	}
	return "full"
}

// Profiles are the built-in viewport profiles. Compact screens get fewer
// particles, shorter connections, half-size charts and no glow.
var Profiles = map[string]Profile{
	"compact": {ParticleCount: 40, ConnectionDistance: 80, ChartScale: 0.5, Glow: false},
	"full":    {ParticleCount: 100, ConnectionDistance: 120, ChartScale: 1.0, Glow: true},
}

func GetProfile(name string) (Profile, bool) {
	p, ok := Profiles[name]
	return p, ok
}

func ListProfiles() []string {
	names := make([]string, 0, len(Profiles))
	for name := range Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var defaultParagraphs = []string{
	"Hi, I'm <span class='highlight-name'>Muhammad Riyan</span>, a Data Analyst with a passion for turning data into actionable insights.",
	"Data-Driven Solutions for Business Growth.",
	"As a Bachelor's graduate in Data Science, I specialize in data analysis, visualization, and business intelligence. With expertise in Python, SQL, Power BI, and Excel, I help organizations make informed decisions.",
}

func defaultPage() PageConfig {
	return PageConfig{
		Title: "Muhammad Riyan",
		Sections: []SectionConfig{
			{ID: "home", Title: "Home"},
			{
				ID:    "about",
				Title: "About",
				Body: []string{
					"Data analyst focused on dashboards, reporting pipelines and clear visual stories.",
				},
				Highlights: []string{"Python & SQL", "Power BI", "Excel modelling"},
			},
			{
				ID:        "projects",
				Title:     "Projects",
				CardGroup: "project-card",
				Cards: []CardConfig{
					{Title: "Sales Dashboard", Body: "Power BI report tracking regional revenue and margin."},
					{Title: "Churn Analysis", Body: "Python notebook modelling subscriber churn drivers."},
					{Title: "Inventory SQL", Body: "Warehouse queries for stock turnover and reorder points."},
				},
			},
			{
				ID:        "education",
				Title:     "Education",
				CardGroup: "education-card",
				Cards: []CardConfig{
					{Title: "BSc Data Science", Body: "Statistics, machine learning and data engineering."},
				},
			},
			{
				ID:    "contact",
				Title: "Contact",
				Body:  []string{"Press d to download the resume."},
			},
		},
		Resume: ResumeConfig{Href: "assets/resume.pdf", Filename: "Muhammad_Riyan_Resume.pdf"},
	}
}
