package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/oliviagunda/Resume-Processor/internal/config"
	"github.com/oliviagunda/Resume-Processor/internal/repositories"
)

// Standalone reporting tool over the stored candidates.
//
// Usage:
//
//	go run scripts/report.go                 # counts, recent candidates, top skills
//	go run scripts/report.go -email a@b.com  # single candidate lookup
func main() {
	email := flag.String("email", "", "look up one candidate by email")
	limit := flag.Int("limit", 10, "rows to show in listings")
	flag.Parse()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	defer config.CloseDatabase(db)

	repo := repositories.NewJobSeekerRepository(db)

	if *email != "" {
		printCandidate(repo, *email)
		return
	}

	printReport(repo, *limit)
}

func printCandidate(repo repositories.JobSeekerRepository, email string) {
	seeker, err := repo.FindByEmail(email)
	if err != nil {
		log.Fatalf("lookup failed: %v", err)
	}

	fmt.Printf("Name:             %s\n", seeker.Name)
	fmt.Printf("Email:            %s\n", seeker.Email)
	fmt.Printf("Phone:            %s\n", seeker.Phone)
	fmt.Printf("Total experience: %.2f years\n", seeker.TotalExperience)

	fmt.Println("Experience:")
	for _, exp := range seeker.Experiences {
		fmt.Printf("  - %s (%s)\n", exp.CompanyName, exp.Tenure)
	}

	var skills []string
	for _, s := range seeker.Skills {
		skills = append(skills, s.Skill)
	}
	fmt.Printf("Skills: %s\n", strings.Join(skills, ", "))
}

func printReport(repo repositories.JobSeekerRepository, limit int) {
	count, err := repo.CountCandidates()
	if err != nil {
		log.Fatalf("count failed: %v", err)
	}
	fmt.Printf("Stored candidates: %d\n\n", count)

	seekers, err := repo.List(limit, 0)
	if err != nil {
		log.Fatalf("listing failed: %v", err)
	}

	fmt.Println("Most recent candidates:")
	for _, s := range seekers {
		fmt.Printf("  %-30s %-30s %5.1f yrs  %d skills\n",
			s.Name, s.Email, s.TotalExperience, len(s.Skills))
	}

	top, err := repo.TopSkills(limit)
	if err != nil {
		log.Fatalf("skill report failed: %v", err)
	}

	fmt.Println("\nTop skills:")
	for _, sc := range top {
		fmt.Printf("  %-20s %d\n", sc.Skill, sc.Count)
	}
}
