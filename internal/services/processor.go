package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/oliviagunda/Resume-Processor/internal/models"
	"github.com/oliviagunda/Resume-Processor/internal/repositories"
)

// ErrEmptyResume marks a readable file that produced neither a name nor
// an email. Such files are skipped, not failed.
var ErrEmptyResume = errors.New("no name or email found in resume")

type ProcessorService interface {
	ProcessFolder(ctx context.Context) (*models.BatchSummary, error)
	ProcessFile(filePath string) (*models.JobSeeker, error)
}

type processorService struct {
	resumeDir        ResumeDirService
	pdfParser        PDFParserService
	extractor        FieldExtractorService
	seekerRepo       repositories.JobSeekerRepository
	log              *logrus.Logger
	archiveProcessed bool
}

func NewProcessorService(
	resumeDir ResumeDirService,
	pdfParser PDFParserService,
	extractor FieldExtractorService,
	seekerRepo repositories.JobSeekerRepository,
	log *logrus.Logger,
	archiveProcessed bool,
) ProcessorService {
	return &processorService{
		resumeDir:        resumeDir,
		pdfParser:        pdfParser,
		extractor:        extractor,
		seekerRepo:       seekerRepo,
		log:              log,
		archiveProcessed: archiveProcessed,
	}
}

// ProcessFolder runs the batch: every PDF in the folder is processed
// independently and sequentially. A failing file is logged and counted;
// it never aborts the rest of the batch. Context cancellation stops the
// batch between files.
func (p *processorService) ProcessFolder(ctx context.Context) (*models.BatchSummary, error) {
	if err := p.resumeDir.EnsureFolder(); err != nil {
		return nil, err
	}

	paths, err := p.resumeDir.ListResumes()
	if err != nil {
		return nil, err
	}

	summary := &models.BatchSummary{}
	if len(paths) == 0 {
		p.log.Warn("No PDF files found in resume folder")
		return summary, nil
	}

	p.log.WithField("count", len(paths)).Info("Starting resume batch")

	for _, path := range paths {
		select {
		case <-ctx.Done():
			p.log.Warn("Batch cancelled")
			return summary, ctx.Err()
		default:
		}

		file := filepath.Base(path)
		seeker, err := p.ProcessFile(path)

		switch {
		case errors.Is(err, ErrEmptyResume):
			summary.Record(file, models.FileSkipped, err)
			p.log.WithField("file", file).Warn("Skipping resume with no name or email")
		case err != nil:
			summary.Record(file, models.FileFailed, err)
			p.log.WithFields(logrus.Fields{"file": file, "error": err.Error()}).Error("Failed to process resume")
		default:
			summary.Record(file, models.FileSucceeded, nil)
			p.log.WithFields(logrus.Fields{"file": file, "candidate": seeker.Name}).Info("Resume processed")
			p.archive(path, file)
		}
	}

	p.log.WithFields(logrus.Fields{
		"total":     summary.Total,
		"succeeded": summary.Succeeded,
		"failed":    summary.Failed,
		"skipped":   summary.Skipped,
	}).Info("Resume batch finished")

	return summary, nil
}

// ProcessFile runs the pipeline for a single resume: extract text,
// parse fields, persist the candidate with its children.
func (p *processorService) ProcessFile(filePath string) (*models.JobSeeker, error) {
	raw, err := p.pdfParser.ExtractText(filePath)
	if err != nil {
		return nil, fmt.Errorf("text extraction failed: %w", err)
	}

	parsed := p.extractor.Parse(CleanText(raw))
	if parsed.Name == "" && parsed.Email == "" {
		return nil, ErrEmptyResume
	}

	seeker := buildJobSeeker(parsed)
	if err := p.seekerRepo.Create(seeker); err != nil {
		return nil, fmt.Errorf("database insert failed: %w", err)
	}

	return seeker, nil
}

func (p *processorService) archive(path, file string) {
	if !p.archiveProcessed {
		return
	}
	archived, err := p.resumeDir.Archive(path)
	if err != nil {
		p.log.WithFields(logrus.Fields{"file": file, "error": err.Error()}).Warn("Failed to archive processed resume")
		return
	}
	p.log.WithFields(logrus.Fields{"file": file, "archived": archived}).Debug("Resume archived")
}

func buildJobSeeker(parsed *models.ParsedResume) *models.JobSeeker {
	name := parsed.Name
	if name == "" {
		name = "Unknown"
	}

	seeker := &models.JobSeeker{
		Name:            name,
		Email:           parsed.Email,
		Phone:           parsed.Phone,
		TotalExperience: parsed.TotalExperience,
		ResumeText:      parsed.RawText,
	}

	for _, stint := range parsed.Companies {
		seeker.Experiences = append(seeker.Experiences, models.JobSeekerExperience{
			CompanyName: stint.CompanyName,
			Tenure:      stint.Tenure,
		})
	}
	for _, skill := range parsed.Skills {
		seeker.Skills = append(seeker.Skills, models.JobSeekerSkill{Skill: skill})
	}

	return seeker
}
