package signals

import (
	"regexp"
	"strings"
)

// Category identifies a named set of patterns representing one concept
type Category string

const (
	CategoryPM              Category = "pm"
	CategoryAgile           Category = "agile"
	CategoryCrossFunctional Category = "cross_functional"
	CategoryDocs            Category = "docs"
	CategoryExperimentation Category = "experimentation"
	CategoryKPI             Category = "kpi"
	CategoryDomain          Category = "domain"
	CategoryAI              Category = "ai"
	CategoryTools           Category = "tools"
	CategoryBilingual       Category = "bilingual"
	CategoryFarLocality     Category = "far_locality"
)

// ResponsibilityCategories are combined into the responsibility coverage ratio
var ResponsibilityCategories = []Category{
	CategoryPM,
	CategoryAgile,
	CategoryCrossFunctional,
	CategoryDocs,
	CategoryExperimentation,
	CategoryKPI,
}

// DefaultFarLocalities are high cost-of-living localities that count as far on-site
var DefaultFarLocalities = []string{
	"palo alto",
	"mountain view",
	"san jose",
	"santa clara",
	"sunnyvale",
	"san francisco",
	"oakland",
	"sacramento",
	"san diego",
	"bay area",
}

// categoryWords holds the vocabulary for each word-bounded category.
// Entries are regular expression fragments.
var categoryWords = map[Category][]string{
	CategoryPM:              {"product manager", "product management", "roadmap", "backlog", "owner", "prioriti[sz]e?"},
	CategoryAgile:           {"agile", "scrum", "kanban", "sprint"},
	CategoryCrossFunctional: {"cross[- ]functional", "stakeholder", "exec", "leadership", "collaborat"},
	CategoryDocs:            {"prd", "product requirements", "user stories", "use cases", "functional spec"},
	CategoryExperimentation: {"a/b testing", "ab testing", "experimentation", "test.*learn"},
	CategoryKPI:             {"kpi", "metrics?", "conversion", "retention", "growth"},
	CategoryDomain: {
		"e[- ]?commerce", "saas", "platform", "api", "marketplace", "advertising",
		"ad[- ]?tech", "gaming", "rewards?", "loyalty", "martech", "crm",
	},
	CategoryAI: {"ai", "llm", "ml", "rag", "personalization"},
	CategoryTools: {
		"jira", "productboard", "tableau", "google analytics", "ga4", "sql", "braze",
		"iterable", "salesforce marketing cloud", "segment", "mparticle", "branch",
		"kochava", "appsflyer", "airtable",
	},
	CategoryBilingual: {"korean", "korean[- ]english", "korean/english", "bilingual"},
}

// Patterns is the compiled, read-only pattern configuration shared by the
// extractor, scorer and synthesizer. Build it once with NewPatterns.
type Patterns struct {
	categories map[Category][]*regexp.Regexp

	required   *regexp.Regexp
	remote     *regexp.Regexp
	internship *regexp.Regexp
	fullTime   *regexp.Regexp
	sql        *regexp.Regexp
	crm        *regexp.Regexp
	salary     *regexp.Regexp
}

// NewPatterns compiles the pattern configuration.
// An empty locality list falls back to DefaultFarLocalities.
func NewPatterns(farLocalities []string) *Patterns {
	if len(farLocalities) == 0 {
		farLocalities = DefaultFarLocalities
	}

	p := &Patterns{
		categories: make(map[Category][]*regexp.Regexp, len(categoryWords)+1),

		// The alternation is intentionally unparenthesized: it reads as
		// `\brequired` or `must` or `minimum\b`.
		required:   regexp.MustCompile(`(?i)\brequired|must|minimum\b`),
		remote:     regexp.MustCompile(`(?i)\bremote\b`),
		internship: regexp.MustCompile(`(?i)\bintern(ship)?\b`),
		fullTime:   regexp.MustCompile(`(?i)\bfull[- ]?time\b`),
		sql:        regexp.MustCompile(`(?i)\bsql\b`),
		crm:        regexp.MustCompile(`(?i)braze|iterable|salesforce marketing cloud`),
		salary:     regexp.MustCompile(`\$?\s*\b(\d{2,3})\s*[kK]\b`),
	}

	for cat, words := range categoryWords {
		p.categories[cat] = wordPatterns(words)
	}

	quoted := make([]string, 0, len(farLocalities))
	for _, loc := range farLocalities {
		loc = strings.TrimSpace(loc)
		if loc == "" {
			continue
		}
		quoted = append(quoted, regexp.QuoteMeta(loc))
	}
	p.categories[CategoryFarLocality] = wordPatterns(quoted)

	return p
}

// Default returns patterns built with the default locality list
func Default() *Patterns {
	return NewPatterns(nil)
}

// Category returns the compiled patterns of a category
func (p *Patterns) Category(c Category) []*regexp.Regexp {
	return p.categories[c]
}

// Count returns the number of distinct patterns of a category found in text
func (p *Patterns) Count(c Category, text string) int {
	return CountHits(text, p.categories[c])
}

// Any reports whether any pattern of a category is found in text
func (p *Patterns) Any(c Category, text string) bool {
	for _, re := range p.categories[c] {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

// wordPatterns compiles each fragment as a case-insensitive, word-bounded pattern
func wordPatterns(words []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(words))
	for _, w := range words {
		out = append(out, regexp.MustCompile(`(?i)\b`+w+`\b`))
	}
	return out
}
