package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/oliviagunda/Resume-Processor/internal/models"
	"github.com/oliviagunda/Resume-Processor/internal/repositories"
)

type fakeResumeDir struct {
	resumes  []string
	archived []string
}

func (f *fakeResumeDir) EnsureFolder() error            { return nil }
func (f *fakeResumeDir) ListResumes() ([]string, error) { return f.resumes, nil }
func (f *fakeResumeDir) Archive(path string) (string, error) {
	f.archived = append(f.archived, path)
	return path + ".archived", nil
}

type fakePDFParser struct {
	texts map[string]string
}

func (f *fakePDFParser) ExtractText(path string) (string, error) {
	text, ok := f.texts[path]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnreadableFile, path)
	}
	return text, nil
}

type fakeSeekerRepo struct {
	created   []*models.JobSeeker
	createErr error
}

func (f *fakeSeekerRepo) Create(seeker *models.JobSeeker) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, seeker)
	return nil
}

func (f *fakeSeekerRepo) FindByEmail(string) (*models.JobSeeker, error) { return nil, nil }
func (f *fakeSeekerRepo) List(int, int) ([]models.JobSeeker, error)     { return nil, nil }
func (f *fakeSeekerRepo) DeleteByID(uuid.UUID) error                    { return nil }
func (f *fakeSeekerRepo) CountCandidates() (int64, error)               { return 0, nil }
func (f *fakeSeekerRepo) TopSkills(int) ([]repositories.SkillCount, error) {
	return nil, nil
}

func discardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

const goodResume = "John Smith\njohn@example.com\n555-234-5678\nSkills: Python, SQL"

func newTestProcessor(dir *fakeResumeDir, parser *fakePDFParser, repo *fakeSeekerRepo, archive bool) ProcessorService {
	return NewProcessorService(
		dir,
		parser,
		NewFieldExtractorService(NewSkillVocabulary()),
		repo,
		discardLogger(),
		archive,
	)
}

func TestProcessFolderContinuesPastCorruptFile(t *testing.T) {
	dir := &fakeResumeDir{resumes: []string{"a.pdf", "corrupt.pdf", "b.pdf"}}
	parser := &fakePDFParser{texts: map[string]string{
		"a.pdf": goodResume,
		"b.pdf": "Mary Watson\nmary@example.com\nSkills: Docker",
	}}
	repo := &fakeSeekerRepo{}

	summary, err := newTestProcessor(dir, parser, repo, false).ProcessFolder(context.Background())
	if err != nil {
		t.Fatalf("ProcessFolder() error = %v", err)
	}

	if summary.Total != 3 || summary.Succeeded != 2 || summary.Failed != 1 || summary.Skipped != 0 {
		t.Errorf("summary = %+v", summary)
	}
	if len(repo.created) != 2 {
		t.Fatalf("created %d candidates, want 2", len(repo.created))
	}
	// The file after the corrupt one was still processed.
	if repo.created[1].Name != "Mary Watson" {
		t.Errorf("second candidate = %q", repo.created[1].Name)
	}
}

func TestProcessFolderSkipsResumeWithoutIdentity(t *testing.T) {
	dir := &fakeResumeDir{resumes: []string{"blank.pdf"}}
	parser := &fakePDFParser{texts: map[string]string{
		"blank.pdf": "some text without any identity at all",
	}}
	repo := &fakeSeekerRepo{}

	summary, err := newTestProcessor(dir, parser, repo, false).ProcessFolder(context.Background())
	if err != nil {
		t.Fatalf("ProcessFolder() error = %v", err)
	}

	if summary.Skipped != 1 || summary.Failed != 0 || summary.Succeeded != 0 {
		t.Errorf("summary = %+v", summary)
	}
	if len(repo.created) != 0 {
		t.Errorf("created %d candidates, want 0", len(repo.created))
	}
}

func TestProcessFolderDatabaseFailureDoesNotAbortBatch(t *testing.T) {
	dir := &fakeResumeDir{resumes: []string{"a.pdf", "b.pdf"}}
	parser := &fakePDFParser{texts: map[string]string{
		"a.pdf": goodResume,
		"b.pdf": goodResume,
	}}
	repo := &fakeSeekerRepo{createErr: errors.New("constraint violation")}

	summary, err := newTestProcessor(dir, parser, repo, false).ProcessFolder(context.Background())
	if err != nil {
		t.Fatalf("ProcessFolder() error = %v", err)
	}

	if summary.Total != 2 || summary.Failed != 2 {
		t.Errorf("summary = %+v", summary)
	}
}

func TestProcessFolderStopsOnCancelledContext(t *testing.T) {
	dir := &fakeResumeDir{resumes: []string{"a.pdf"}}
	parser := &fakePDFParser{texts: map[string]string{"a.pdf": goodResume}}
	repo := &fakeSeekerRepo{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	summary, err := newTestProcessor(dir, parser, repo, false).ProcessFolder(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
	if summary.Total != 0 {
		t.Errorf("summary = %+v, want nothing processed", summary)
	}
}

func TestProcessFolderArchivesOnlySuccesses(t *testing.T) {
	dir := &fakeResumeDir{resumes: []string{"a.pdf", "corrupt.pdf"}}
	parser := &fakePDFParser{texts: map[string]string{"a.pdf": goodResume}}
	repo := &fakeSeekerRepo{}

	if _, err := newTestProcessor(dir, parser, repo, true).ProcessFolder(context.Background()); err != nil {
		t.Fatalf("ProcessFolder() error = %v", err)
	}

	if len(dir.archived) != 1 || dir.archived[0] != "a.pdf" {
		t.Errorf("archived = %v, want only a.pdf", dir.archived)
	}
}

func TestProcessFolderEmptyFolder(t *testing.T) {
	dir := &fakeResumeDir{}
	repo := &fakeSeekerRepo{}

	summary, err := newTestProcessor(dir, &fakePDFParser{}, repo, false).ProcessFolder(context.Background())
	if err != nil {
		t.Fatalf("ProcessFolder() error = %v", err)
	}
	if summary.Total != 0 {
		t.Errorf("summary = %+v", summary)
	}
}

func TestProcessFilePersistsParsedFields(t *testing.T) {
	parser := &fakePDFParser{texts: map[string]string{"a.pdf": goodResume}}
	repo := &fakeSeekerRepo{}

	seeker, err := newTestProcessor(&fakeResumeDir{}, parser, repo, false).ProcessFile("a.pdf")
	if err != nil {
		t.Fatalf("ProcessFile() error = %v", err)
	}

	if seeker.Name != "John Smith" || seeker.Email != "john@example.com" {
		t.Errorf("seeker = %+v", seeker)
	}
	if len(seeker.Skills) != 2 {
		t.Errorf("skills = %+v, want Python and SQL", seeker.Skills)
	}
	if seeker.ResumeText == "" {
		t.Error("resume text not stored")
	}
}
