package services

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/oliviagunda/Resume-Processor/internal/models"
)

const (
	maxCompanies  = 5
	maxSkills     = 20
	nameScanLines = 5
)

// Single-valued field patterns. Evaluated against the matching resume
// section first, whole document as fallback; first match in document
// order wins.
var (
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phonePattern = regexp.MustCompile(`(?:\+?1[-.\s]?)?\(?[2-9]\d{2}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	namePattern  = regexp.MustCompile(`^[A-Z][a-zA-Z]+\s+[A-Z][a-zA-Z]+(?:\s+[A-Z][a-zA-Z]+)?$`)
)

// Experience duration patterns, checked against lowercased text. The
// largest total found wins, so "3 years at X, 7 years overall" reads
// as 7.
var experiencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?P<years>\d+(?:\.\d+)?)\s*\+?\s*years?(?:\s+and\s+(?P<months>\d+)\s*months?)?`),
	regexp.MustCompile(`(?P<months>\d+)\s*months?\s+(?:of\s+)?experience`),
	regexp.MustCompile(`experience.*?(?P<years>\d+(?:\.\d+)?)\s*\+?\s*years?`),
	regexp.MustCompile(`(?P<years>\d+(?:\.\d+)?)\s*yrs?\s+exp`),
}

// Employer patterns: a corporate-suffix anchor first, then a looser
// capitalized-phrase-plus-year-range form.
var companyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`([A-Z][a-zA-Z &]+(?:Inc|LLC|Corp|Ltd|Company))[, \-]*(\d{4}\s*[–-]\s*(?:\d{4}|(?i:Present)))`),
	regexp.MustCompile(`([A-Z][a-zA-Z &]+?)[, \-]*(\d{4}\s*[–-]\s*(?:\d{4}|(?i:Present|Current)))`),
}

var skillsHeadingPattern = regexp.MustCompile(`(?i)^(?:technical\s+skills|programming\s+languages|skills|technologies|tools)\s*[:\-]?\s*`)

type FieldExtractorService interface {
	Parse(text string) *models.ParsedResume
}

type fieldExtractorService struct {
	vocabulary *SkillVocabulary
}

func NewFieldExtractorService(vocabulary *SkillVocabulary) FieldExtractorService {
	return &fieldExtractorService{vocabulary: vocabulary}
}

// Parse extracts all fields from resume text, best effort. A field that
// no rule matches stays zero-valued; Parse never fails.
func (e *fieldExtractorService) Parse(text string) *models.ParsedResume {
	sections := splitSections(text)

	return &models.ParsedResume{
		Name:            e.extractName(sections.Text(sectionName, text), text),
		Email:           e.extractEmail(sections.Text(sectionEmail, text)),
		Phone:           e.extractPhone(sections.Text(sectionPhone, text)),
		TotalExperience: e.extractExperienceYears(sections.Text(sectionExperience, text)),
		Companies:       e.extractCompanies(sections.Text(sectionExperience, text)),
		Skills:          e.extractSkills(sections.Text(sectionSkills, ""), text),
		RawText:         text,
	}
}

func (e *fieldExtractorService) extractEmail(text string) string {
	return emailPattern.FindString(text)
}

func (e *fieldExtractorService) extractPhone(text string) string {
	return phonePattern.FindString(text)
}

// extractName checks the first lines for a capitalized two-or-three
// word line. When nothing matches, a short all-uppercase line anywhere
// in the document is taken as a stylized header name.
func (e *fieldExtractorService) extractName(text, fullText string) string {
	lines := strings.Split(text, "\n")
	limit := nameScanLines
	if len(lines) < limit {
		limit = len(lines)
	}

	for _, line := range lines[:limit] {
		line = strings.TrimSpace(line)
		if len(line) > 3 && len(strings.Fields(line)) >= 2 && namePattern.MatchString(line) {
			return line
		}
	}

	for _, line := range strings.Split(fullText, "\n") {
		line = strings.TrimSpace(line)
		words := len(strings.Fields(line))
		if line != "" && line == strings.ToUpper(line) && line != strings.ToLower(line) && words > 1 && words < 5 {
			return line
		}
	}

	return ""
}

// extractExperienceYears totals years plus month fractions per match
// and keeps the maximum seen, rounded to two decimals.
func (e *fieldExtractorService) extractExperienceYears(text string) float64 {
	lowered := strings.ToLower(text)

	best := 0.0
	for _, pattern := range experiencePatterns {
		yearsIdx := pattern.SubexpIndex("years")
		monthsIdx := pattern.SubexpIndex("months")

		for _, match := range pattern.FindAllStringSubmatch(lowered, -1) {
			total := 0.0
			if yearsIdx >= 0 && match[yearsIdx] != "" {
				if years, err := strconv.ParseFloat(match[yearsIdx], 64); err == nil {
					total += years
				}
			}
			if monthsIdx >= 0 && match[monthsIdx] != "" {
				if months, err := strconv.ParseFloat(match[monthsIdx], 64); err == nil {
					total += months / 12
				}
			}
			if total > best {
				best = total
			}
		}
	}

	return math.Round(best*100) / 100
}

// extractCompanies collects (employer, tenure) pairs, deduplicated
// case-insensitively on the employer with first occurrence kept.
func (e *fieldExtractorService) extractCompanies(text string) []models.CompanyStint {
	seen := make(map[string]bool)
	var companies []models.CompanyStint

	for _, pattern := range companyPatterns {
		for _, match := range pattern.FindAllStringSubmatch(text, -1) {
			name := strings.TrimSpace(match[1])
			key := strings.ToLower(name)
			if name == "" || seen[key] {
				continue
			}
			seen[key] = true
			companies = append(companies, models.CompanyStint{
				CompanyName: name,
				Tenure:      strings.TrimSpace(match[2]),
			})
			if len(companies) == maxCompanies {
				return companies
			}
		}
	}

	return companies
}

type skillCandidate struct {
	value     string
	index     int
	fromVocab bool
}

// extractSkills merges vocabulary hits with free tokens from the skills
// section, ordered by first occurrence. Duplicates collapse
// case-insensitively; the vocabulary's canonical spelling wins. Without
// a skills section, only the vocabulary is scanned, over the whole
// document: splitting arbitrary resume lines into tokens would invent
// skills.
func (e *fieldExtractorService) extractSkills(sectionText, fullText string) []string {
	text := sectionText
	if text == "" {
		skills := make([]string, 0)
		for _, m := range e.vocabulary.FindAll(fullText) {
			skills = append(skills, m.skill)
			if len(skills) == maxSkills {
				break
			}
		}
		return skills
	}

	var candidates []skillCandidate

	for _, m := range e.vocabulary.FindAll(text) {
		candidates = append(candidates, skillCandidate{value: m.skill, index: m.index, fromVocab: true})
	}

	offset := 0
	for _, line := range strings.Split(text, "\n") {
		stripped := skillsHeadingPattern.ReplaceAllString(line, "")
		lineOffset := offset + (len(line) - len(stripped))
		for _, token := range splitSkillTokens(stripped) {
			idx := strings.Index(stripped, token)
			if idx < 0 {
				idx = 0
			}
			candidates = append(candidates, skillCandidate{value: token, index: lineOffset + idx})
		}
		offset += len(line) + 1
	}

	// Order by position; on ties the canonical vocabulary entry first.
	for i := 1; i < len(candidates); i++ {
		for j := i; j > 0 && candidates[j].before(candidates[j-1]); j-- {
			candidates[j], candidates[j-1] = candidates[j-1], candidates[j]
		}
	}

	seen := make(map[string]bool)
	var skills []string
	for _, c := range candidates {
		key := strings.ToLower(c.value)
		if seen[key] {
			continue
		}
		seen[key] = true
		skills = append(skills, c.value)
		if len(skills) == maxSkills {
			break
		}
	}
	return skills
}

func (a skillCandidate) before(b skillCandidate) bool {
	if a.index != b.index {
		return a.index < b.index
	}
	return a.fromVocab && !b.fromVocab
}

// splitSkillTokens breaks a skills line on list punctuation and keeps
// tokens that look like skill names.
func splitSkillTokens(line string) []string {
	var tokens []string
	for _, raw := range strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ';' || r == '|' || r == '•'
	}) {
		token := strings.TrimSpace(raw)
		if len(token) < 3 || len(token) > 24 {
			continue
		}
		if !strings.ContainsFunc(token, func(r rune) bool {
			return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'
		}) {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}
