package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyFile       = errors.New("uploaded file is empty")
	ErrUnsupportedType = errors.New("unsupported file type")
)

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// Store saves and removes photo attachments keyed by folder name.
type Store interface {
	Upload(folder string, header *multipart.FileHeader) (string, error)
	Delete(folder, storedName string) error
}

type DiskStore struct {
	baseDir string
}

func NewDiskStore(baseDir string) *DiskStore {
	return &DiskStore{baseDir: baseDir}
}

func (s *DiskStore) Upload(folder string, header *multipart.FileHeader) (string, error) {
	if header == nil || header.Size == 0 {
		return "", ErrEmptyFile
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedExtensions[ext] {
		return "", ErrUnsupportedType
	}

	src, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	dir := filepath.Join(s.baseDir, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	storedName := uuid.NewString() + ext
	dst, err := os.Create(filepath.Join(dir, storedName))
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("write file: %w", err)
	}

	return storedName, nil
}

func (s *DiskStore) Delete(folder, storedName string) error {
	if storedName == "" {
		return nil
	}

	// Stored names are generated server side; reject anything path-like.
	if storedName != filepath.Base(storedName) {
		return fmt.Errorf("invalid stored name %q", storedName)
	}

	err := os.Remove(filepath.Join(s.baseDir, folder, storedName))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
