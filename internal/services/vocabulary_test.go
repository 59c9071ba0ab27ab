package services

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindAllRespectsTokenBoundaries(t *testing.T) {
	v := NewSkillVocabulary()

	matches := v.FindAll("Built services in Go and JavaScript")

	var skills []string
	for _, m := range matches {
		skills = append(skills, m.skill)
	}

	assertContains(t, skills, "Go")
	assertContains(t, skills, "JavaScript")
	for _, s := range skills {
		if s == "Java" {
			t.Error("Java matched inside JavaScript")
		}
	}
}

func TestFindAllOrderedByOccurrence(t *testing.T) {
	v := NewSkillVocabulary()

	matches := v.FindAll("PostgreSQL first, then Docker, then Python")

	if len(matches) < 3 {
		t.Fatalf("matches = %v, want at least 3", matches)
	}
	if matches[0].skill != "PostgreSQL" || matches[1].skill != "Docker" || matches[2].skill != "Python" {
		t.Errorf("unexpected order: %v", matches)
	}
}

func TestFindAllSymbolSkills(t *testing.T) {
	v := NewSkillVocabulary()

	matches := v.FindAll("Fluent in C++ and C# and Node.js")

	var skills []string
	for _, m := range matches {
		skills = append(skills, m.skill)
	}

	assertContains(t, skills, "C++")
	assertContains(t, skills, "C#")
	assertContains(t, skills, "Node.js")
}

func TestLoadExtraSkills(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skills.txt")
	content := "Rust\n# a comment\n\nsql\nElixir\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	v := NewSkillVocabulary()
	before := v.Size()

	if err := v.LoadExtraSkills(path); err != nil {
		t.Fatalf("LoadExtraSkills() error = %v", err)
	}

	// sql duplicates the built-in SQL; only Rust and Elixir are new.
	if got := v.Size(); got != before+2 {
		t.Errorf("Size() = %d, want %d", got, before+2)
	}

	matches := v.FindAll("Rust and Elixir services")
	var skills []string
	for _, m := range matches {
		skills = append(skills, m.skill)
	}
	assertContains(t, skills, "Rust")
	assertContains(t, skills, "Elixir")
}

func TestLoadExtraSkillsMissingFile(t *testing.T) {
	v := NewSkillVocabulary()
	if err := v.LoadExtraSkills(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Error("expected error for missing skills file")
	}
}

func assertContains(t *testing.T, skills []string, want string) {
	t.Helper()
	for _, s := range skills {
		if s == want {
			return
		}
	}
	t.Errorf("skills %v missing %q", skills, want)
}
