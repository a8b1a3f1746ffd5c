package signals

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/vijay-prabhu/jobfit/internal/posting"
)

// Bundle holds the signals extracted from one posting
type Bundle struct {
	Hits           map[Category]int `json:"hits"`
	SalaryCeilingK *int             `json:"salary_ceiling_k,omitempty"` // Highest "NNk" figure, in thousands
	Remote         bool             `json:"remote"`
	FarOnSite      bool             `json:"far_on_site"`
	SQLRequired    bool             `json:"sql_required"`
	CRMRequired    bool             `json:"crm_required"`
	Internship     bool             `json:"internship"`
	FullTime       bool             `json:"full_time"`
}

// ResponsibilityHits returns the distinct hit count across all responsibility categories
func (b Bundle) ResponsibilityHits() int {
	total := 0
	for _, c := range ResponsibilityCategories {
		total += b.Hits[c]
	}
	return total
}

// Has reports whether a category matched at least once
func (b Bundle) Has(c Category) bool {
	return b.Hits[c] > 0
}

// Extractor scans postings for signals
type Extractor struct {
	patterns *Patterns
}

// NewExtractor creates an Extractor over the given patterns
func NewExtractor(p *Patterns) *Extractor {
	return &Extractor{patterns: p}
}

// Extract computes the signal bundle of a posting
func (e *Extractor) Extract(post posting.Posting) Bundle {
	p := e.patterns
	jd := post.Description

	b := Bundle{
		Hits: make(map[Category]int, len(p.categories)),
	}

	for cat, pats := range p.categories {
		if cat == CategoryFarLocality {
			continue
		}
		b.Hits[cat] = CountHits(jd, pats)
	}

	b.SQLRequired = p.InRequiredClause(jd, p.sql)
	b.CRMRequired = p.InRequiredClause(jd, p.crm)

	b.SalaryCeilingK = p.MaxSalaryK(jd + " " + post.Salary)

	b.Remote = p.remote.MatchString(jd) || p.remote.MatchString(post.Location)
	far := CountHits(jd+" "+post.Location, p.categories[CategoryFarLocality])
	b.Hits[CategoryFarLocality] = far
	b.FarOnSite = !b.Remote && far > 0

	b.Internship = p.internship.MatchString(jd)
	b.FullTime = p.fullTime.MatchString(jd)

	return b
}

// CountHits returns how many distinct patterns match anywhere in text.
// Repeated matches of one pattern count once.
func CountHits(text string, patterns []*regexp.Regexp) int {
	hits := 0
	for _, re := range patterns {
		if re.MatchString(text) {
			hits++
		}
	}
	return hits
}

// RatioCap normalizes a hit count into [0,1]: min(hits, limit) / limit
func RatioCap(hits, limit int) float64 {
	if limit <= 0 {
		return 0
	}
	return float64(min(hits, limit)) / float64(limit)
}

// InRequiredClause reports whether a single clause of text contains both a
// requirement keyword and the key pattern
func (p *Patterns) InRequiredClause(text string, key *regexp.Regexp) bool {
	if text == "" {
		return false
	}
	for _, clause := range SplitClauses(text) {
		if p.required.MatchString(clause) && key.MatchString(clause) {
			return true
		}
	}
	return false
}

// MaxSalaryK returns the highest "NNk" compensation figure in text, or nil
func (p *Patterns) MaxSalaryK(text string) *int {
	var best *int
	for _, m := range p.salary.FindAllStringSubmatch(text, -1) {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if best == nil || n > *best {
			v := n
			best = &v
		}
	}
	return best
}

// SplitClauses splits text on '.', '\n' and ';'
func SplitClauses(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '\n' || r == ';'
	})
}
