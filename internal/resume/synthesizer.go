package resume

import (
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/vijay-prabhu/jobfit/internal/posting"
	"github.com/vijay-prabhu/jobfit/internal/scoring"
	"github.com/vijay-prabhu/jobfit/internal/signals"
)

const (
	maxSkills        = 10
	maxBullets       = 6
	maxThemeBullets  = 2
	minSentenceRunes = 20
	maxSentenceRunes = 180
	aiSkillIndex     = 2
	bulletPrefix     = "• "
)

// themePattern selects description sentences worth echoing as bullets
var themePattern = regexp.MustCompile(`(?i)roadmap|launch|experimen|kpi|api|platform|e[- ]?commerce|saas|ad[- ]?tech|gaming|loyalty|crm|personalization`)

// Fragment is the resume content tailored to one posting
type Fragment struct {
	Summary string `json:"cv_summary"`
	Skills  string `json:"cv_skills"`
	Bullets string `json:"cv_experience_bullets"`
}

// IsEmpty reports whether nothing was synthesized
func (f Fragment) IsEmpty() bool {
	return f.Summary == "" && f.Skills == "" && f.Bullets == ""
}

// Synthesizer builds resume fragments for postings that clear the apply threshold
type Synthesizer struct {
	patterns *signals.Patterns
	profile  Profile
}

// NewSynthesizer creates a Synthesizer from the shared patterns and a candidate profile
func NewSynthesizer(p *signals.Patterns, profile Profile) *Synthesizer {
	return &Synthesizer{
		patterns: p,
		profile:  profile.Merge(DefaultProfile()),
	}
}

// Synthesize returns the summary, skills and bullets for a posting.
// Postings scoring below the apply threshold get an empty fragment.
func (s *Synthesizer) Synthesize(post posting.Posting, score int) Fragment {
	if score < scoring.ApplyThreshold {
		return Fragment{}
	}

	jd := post.Description
	wantsAI := s.patterns.Any(signals.CategoryAI, jd)
	wantsKR := s.patterns.Any(signals.CategoryBilingual, jd)

	return Fragment{
		Summary: s.summary(post, wantsAI, wantsKR),
		Skills:  s.skills(wantsAI, wantsKR),
		Bullets: s.bullets(jd),
	}
}

func (s *Synthesizer) summary(post posting.Posting, wantsAI, wantsKR bool) string {
	title := strings.TrimSpace(post.Title)
	if title == "" {
		title = s.profile.DefaultTitle
	}
	company := strings.TrimSpace(post.Company)
	if company == "" {
		company = s.profile.DefaultCompany
	}

	var b strings.Builder
	b.WriteString(s.profile.Summary)
	if wantsKR {
		b.WriteString(s.profile.BilingualLine)
	}
	if wantsAI {
		b.WriteString(s.profile.AILine)
	}
	b.WriteString("Ready to drive outcomes as ")
	b.WriteString(title)
	b.WriteString(" at ")
	b.WriteString(company)
	b.WriteString(".")
	return b.String()
}

func (s *Synthesizer) skills(wantsAI, wantsKR bool) string {
	skills := make([]string, 0, len(s.profile.Skills)+2)
	skills = append(skills, s.profile.Skills...)

	if wantsAI {
		skills = slices.Insert(skills, min(aiSkillIndex, len(skills)), s.profile.AISkill)
	}
	if wantsKR {
		skills = append(skills, s.profile.BilingualSkill)
	}
	if len(skills) > maxSkills {
		skills = skills[:maxSkills]
	}

	return strings.Join(skills, "; ")
}

func (s *Synthesizer) bullets(jd string) string {
	candidates := PickSentences(jd, themePattern, maxThemeBullets)
	candidates = append(candidates, s.profile.Bullets...)

	seen := make(map[string]bool, len(candidates))
	out := make([]string, 0, maxBullets)

	for _, c := range candidates {
		c = strings.Join(strings.Fields(c), " ")
		c = strings.TrimSpace(strings.Trim(c, "• "))
		key := strings.ToLower(c)
		if c != "" && !seen[key] {
			seen[key] = true
			out = append(out, bulletPrefix+c)
		}
		if len(out) >= maxBullets {
			break
		}
	}

	return strings.Join(out, "\n")
}

// PickSentences returns up to n distinct sentences of text matching pattern
// whose trimmed length is within the bullet bounds
func PickSentences(text string, pattern *regexp.Regexp, n int) []string {
	var hits []string

	for _, sentence := range SplitSentences(text) {
		if pattern.MatchString(sentence) {
			ss := strings.TrimSpace(sentence)
			length := utf8.RuneCountInString(ss)
			if length >= minSentenceRunes && length <= maxSentenceRunes && !slices.Contains(hits, ss) {
				hits = append(hits, ss)
			}
		}
		if len(hits) >= n {
			break
		}
	}

	return hits
}

// SplitSentences splits text after '.', '!' or '?' followed by whitespace,
// and on runs of newlines. Delimiting whitespace is dropped.
func SplitSentences(text string) []string {
	var out []string
	start, i := 0, 0

	for i < len(text) {
		c := text[i]
		switch {
		case isSpace(c) && i > 0 && isTerminal(text[i-1]):
			j := i
			for j < len(text) && isSpace(text[j]) {
				j++
			}
			out = append(out, text[start:i])
			start, i = j, j
		case c == '\n':
			j := i
			for j < len(text) && text[j] == '\n' {
				j++
			}
			out = append(out, text[start:i])
			start, i = j, j
		default:
			i++
		}
	}

	return append(out, text[start:])
}

func isTerminal(c byte) bool {
	return c == '.' || c == '!' || c == '?'
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
