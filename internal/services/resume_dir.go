package services

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
)

const processedSubdir = "processed"

// ResumeDirService owns the resume folder: creating it when missing,
// enumerating the PDFs inside it, and archiving files already handled.
type ResumeDirService interface {
	EnsureFolder() error
	ListResumes() ([]string, error)
	Archive(filePath string) (string, error)
}

type resumeDirService struct {
	folder string
}

func NewResumeDirService(folder string) ResumeDirService {
	return &resumeDirService{folder: folder}
}

func (s *resumeDirService) EnsureFolder() error {
	if err := os.MkdirAll(s.folder, 0755); err != nil {
		return fmt.Errorf("failed to create resume folder: %w", err)
	}
	return nil
}

// ListResumes returns the full paths of all PDF files in the folder,
// sorted by name so batches run in a stable order.
func (s *resumeDirService) ListResumes() ([]string, error) {
	entries, err := os.ReadDir(s.folder)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume folder: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.ToLower(filepath.Ext(entry.Name())) != ".pdf" {
			continue
		}
		paths = append(paths, filepath.Join(s.folder, entry.Name()))
	}

	sort.Strings(paths)
	return paths, nil
}

// Archive moves a processed file into the processed/ subfolder under a
// unique name, so re-running the batch does not re-insert it.
func (s *resumeDirService) Archive(filePath string) (string, error) {
	archiveDir := filepath.Join(s.folder, processedSubdir)
	if err := os.MkdirAll(archiveDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create archive folder: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
	uniqueName := fmt.Sprintf("%s_%s%s", base, uuid.New().String(), filepath.Ext(filePath))
	archivePath := filepath.Join(archiveDir, uniqueName)

	if err := os.Rename(filePath, archivePath); err != nil {
		return "", fmt.Errorf("failed to archive file: %w", err)
	}

	return archivePath, nil
}
