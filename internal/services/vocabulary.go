package services

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// SkillVocabulary matches known skills against resume text. Entries
// keep their canonical display spelling ("SQL", "Node.js") so stored
// rows read well regardless of how the resume cased them.
type SkillVocabulary struct {
	skills []string
}

// Built-in vocabulary grouped by area: programming, web, data, cloud,
// databases.
var defaultSkills = []string{
	"Python", "Java", "JavaScript", "C++", "C#", "PHP", "Ruby", "Go",
	"Swift", "Kotlin", "TypeScript", "Scala", "MATLAB", "SQL",

	"HTML", "CSS", "React", "Angular", "Vue", "Node.js", "Express",
	"Django", "Flask", "Spring", "Laravel", "Rails",

	"Pandas", "NumPy", "Scikit-learn", "TensorFlow", "PyTorch",
	"Apache Spark", "Hadoop", "Tableau", "Power BI",

	"AWS", "Azure", "GCP", "Docker", "Kubernetes", "Terraform",

	"MySQL", "PostgreSQL", "MongoDB", "Redis", "Cassandra", "Oracle",
}

func NewSkillVocabulary() *SkillVocabulary {
	skills := make([]string, len(defaultSkills))
	copy(skills, defaultSkills)
	return &SkillVocabulary{skills: skills}
}

// LoadExtraSkills appends skills from a file, one per line. Blank lines
// and lines starting with '#' are ignored. Entries already known
// (case-insensitively) are not duplicated.
func (v *SkillVocabulary) LoadExtraSkills(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open skills file: %w", err)
	}
	defer f.Close()

	known := make(map[string]bool, len(v.skills))
	for _, s := range v.skills {
		known[strings.ToLower(s)] = true
	}

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		skill := strings.TrimSpace(scanner.Text())
		if skill == "" || strings.HasPrefix(skill, "#") {
			continue
		}
		if !known[strings.ToLower(skill)] {
			known[strings.ToLower(skill)] = true
			v.skills = append(v.skills, skill)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read skills file: %w", err)
	}
	return nil
}

// Size returns the number of known skills.
func (v *SkillVocabulary) Size() int {
	return len(v.skills)
}

type skillMatch struct {
	skill string
	index int
}

// FindAll returns the vocabulary skills present in text, ordered by
// their first occurrence. Matches respect token boundaries, so "Java"
// does not fire inside "JavaScript".
func (v *SkillVocabulary) FindAll(text string) []skillMatch {
	lowered := strings.ToLower(text)

	var matches []skillMatch
	for _, skill := range v.skills {
		if idx := boundedIndex(lowered, strings.ToLower(skill)); idx >= 0 {
			matches = append(matches, skillMatch{skill: skill, index: idx})
		}
	}

	// Insertion sort by position; vocabulary is small.
	for i := 1; i < len(matches); i++ {
		for j := i; j > 0 && matches[j].index < matches[j-1].index; j-- {
			matches[j], matches[j-1] = matches[j-1], matches[j]
		}
	}
	return matches
}

// boundedIndex finds needle in haystack where neither neighbor is a
// letter or digit. Returns -1 when absent.
func boundedIndex(haystack, needle string) int {
	if needle == "" {
		return -1
	}
	from := 0
	for {
		idx := strings.Index(haystack[from:], needle)
		if idx < 0 {
			return -1
		}
		idx += from

		beforeOK := idx == 0 || !isWordByte(haystack[idx-1])
		end := idx + len(needle)
		afterOK := end == len(haystack) || !isWordByte(haystack[end])
		if beforeOK && afterOK {
			return idx
		}
		from = idx + 1
	}
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}
