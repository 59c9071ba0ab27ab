package services

import "strings"

// Section names used to route extraction rules to the part of the
// resume they apply to.
const (
	sectionName       = "name"
	sectionEmail      = "email"
	sectionPhone      = "phone"
	sectionExperience = "experience"
	sectionSkills     = "skills"
	sectionOther      = "other"
)

// Heading clue words. A line containing one of these switches the
// scanner into that section until the next clue line.
var sectionClues = map[string][]string{
	sectionSkills:     {"skills", "technologies", "tools", "proficiencies", "languages", "technical proficiency"},
	sectionExperience: {"experience", "worked for", "internship", "employment", "project", "work"},
	sectionName:       {"name"},
	sectionEmail:      {"email"},
	sectionPhone:      {"phone", "mobile", "contact", "tel"},
}

// Clue lookup order is fixed so overlapping clues resolve the same way
// on every run (skills wins over experience, identity fields last).
var sectionOrder = []string{sectionSkills, sectionExperience, sectionName, sectionEmail, sectionPhone}

type resumeSections map[string][]string

// splitSections buckets resume lines by the heading they fall under.
// Lines before any recognized heading land in the "other" bucket.
func splitSections(text string) resumeSections {
	sections := resumeSections{}
	current := sectionOther

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		lowered := strings.ToLower(trimmed)

		for _, section := range sectionOrder {
			if containsAnyClue(lowered, sectionClues[section]) {
				current = section
				break
			}
		}

		sections[current] = append(sections[current], trimmed)
	}

	return sections
}

// Text returns the joined lines of one section, or fallback when the
// section never appeared. Extraction rules stay best-effort this way:
// a resume without headings is scanned whole.
func (s resumeSections) Text(section, fallback string) string {
	lines := s[section]
	if len(lines) == 0 {
		return fallback
	}
	joined := strings.TrimSpace(strings.Join(lines, "\n"))
	if joined == "" {
		return fallback
	}
	return joined
}

func containsAnyClue(line string, clues []string) bool {
	for _, clue := range clues {
		if strings.Contains(line, clue) {
			return true
		}
	}
	return false
}
