package resume

// Profile is the fixed candidate material the synthesizer draws from
type Profile struct {
	Summary        string   `toml:"summary"`
	BilingualLine  string   `toml:"bilingual_line"`
	AILine         string   `toml:"ai_line"`
	DefaultTitle   string   `toml:"default_title"`
	DefaultCompany string   `toml:"default_company"`
	Skills         []string `toml:"skills"`
	AISkill        string   `toml:"ai_skill"`
	BilingualSkill string   `toml:"bilingual_skill"`
	Bullets        []string `toml:"bullets"`
}

// DefaultProfile returns the reference candidate profile
func DefaultProfile() Profile {
	return Profile{
		Summary: "Product leader with 10+ years in e-commerce/SaaS platforms, API products, and cross-functional delivery. " +
			"Owned roadmaps and PRDs, scaled high-transaction launches, and drove KPI-based iteration with Engineering/Design/Go-to-Market. ",
		BilingualLine:  "Fluent KR/EN. ",
		AILine:         "Applied AI for automation/workflows; comfortable partnering with data/ML teams. ",
		DefaultTitle:   "Product Manager",
		DefaultCompany: "the company",
		Skills: []string{
			"Product strategy & roadmaps",
			"API/platform products",
			"Agile (Scrum/Kanban)",
			"PRDs, user stories, acceptance criteria",
			"Experimentation & KPI tracking",
			"Stakeholder & cross-functional leadership",
			"JIRA, Confluence, Figma, Tableau, Google Analytics",
			"E-commerce & marketplace operations",
		},
		AISkill:        "LLM/automation use-cases (prompting, workflow integration)",
		BilingualSkill: "Bilingual: Korean/English",
		Bullets: []string{
			"Led API product strategy and platform roadmap; delivered features across Eng/QA/Design with clear PRDs and tight sprint cadences.",
			"Built an open API app store ecosystem, reducing customization costs by 90% and accelerating integrations for partners.",
			"Stabilized critical API servers (CPU 90% → 60%) and supported high-transaction launches for Nike, YG Entertainment, and SM Entertainment.",
			"Partnered with YouTube Shopping on global expansion initiatives.",
			"Scaled global e-commerce operations (Amazon/eBay integrations) and achieved 473% YoY revenue growth for Kmall24.",
		},
	}
}

// Merge fills empty fields of p from def
func (p Profile) Merge(def Profile) Profile {
	if p.Summary == "" {
		p.Summary = def.Summary
	}
	if p.BilingualLine == "" {
		p.BilingualLine = def.BilingualLine
	}
	if p.AILine == "" {
		p.AILine = def.AILine
	}
	if p.DefaultTitle == "" {
		p.DefaultTitle = def.DefaultTitle
	}
	if p.DefaultCompany == "" {
		p.DefaultCompany = def.DefaultCompany
	}
	if len(p.Skills) == 0 {
		p.Skills = def.Skills
	}
	if p.AISkill == "" {
		p.AISkill = def.AISkill
	}
	if p.BilingualSkill == "" {
		p.BilingualSkill = def.BilingualSkill
	}
	if len(p.Bullets) == 0 {
		p.Bullets = def.Bullets
	}
	return p
}
