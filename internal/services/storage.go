package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// StorageService keeps uploaded resumes on local disk: a scratch area for
// files being processed and an archive keyed by session id. Archive failures
// are non-fatal to the pipeline; the caller just logs them.
type StorageService interface {
	SaveUpload(file *multipart.FileHeader) (string, string, error)
	Archive(sessionID uuid.UUID, sourcePath, originalName string) (string, error)
	DeleteUpload(filePath string) error
	DeleteSessionFiles(sessionID uuid.UUID) error
	EnsureDirs() error
}

type storageService struct {
	uploadPath  string
	archivePath string
}

func NewStorageService(uploadPath, archivePath string) StorageService {
	return &storageService{
		uploadPath:  uploadPath,
		archivePath: archivePath,
	}
}

func (s *storageService) EnsureDirs() error {
	for _, dir := range []string{s.uploadPath, s.archivePath} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

func (s *storageService) SaveUpload(file *multipart.FileHeader) (string, string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext != ".pdf" {
		return "", "", fmt.Errorf("invalid file extension: %s", ext)
	}

	uniqueFilename := fmt.Sprintf("resume_%s%s", uuid.New().String(), ext)
	filePath := filepath.Join(s.uploadPath, uniqueFilename)

	src, err := file.Open()
	if err != nil {
		return "", "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filePath)
	if err != nil {
		return "", "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", "", fmt.Errorf("failed to save file: %w", err)
	}

	return uniqueFilename, filePath, nil
}

// Archive copies a processed upload into the per-session archive and returns
// the public path it will be served from.
func (s *storageService) Archive(sessionID uuid.UUID, sourcePath, originalName string) (string, error) {
	sessionDir := filepath.Join(s.archivePath, sessionID.String())
	if err := os.MkdirAll(sessionDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create archive directory: %w", err)
	}

	src, err := os.Open(sourcePath)
	if err != nil {
		return "", fmt.Errorf("failed to open source file: %w", err)
	}
	defer src.Close()

	destPath := filepath.Join(sessionDir, originalName)
	dst, err := os.Create(destPath)
	if err != nil {
		return "", fmt.Errorf("failed to create archive file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to archive file: %w", err)
	}

	return fmt.Sprintf("/files/%s/%s", sessionID.String(), originalName), nil
}

func (s *storageService) DeleteUpload(filePath string) error {
	if err := os.Remove(filePath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete upload: %w", err)
	}
	return nil
}

func (s *storageService) DeleteSessionFiles(sessionID uuid.UUID) error {
	sessionDir := filepath.Join(s.archivePath, sessionID.String())
	if err := os.RemoveAll(sessionDir); err != nil {
		return fmt.Errorf("failed to delete session files: %w", err)
	}
	return nil
}
