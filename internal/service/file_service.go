package service

import (
	"context"
	"errors"
	"io"
	"path"
	"strings"

	apperrors "movieflix/internal/errors"
	"movieflix/internal/storage"
)

// Upload is a file received from a client.
type Upload struct {
	FileName    string
	ContentType string
	Content     io.Reader
}

// SanitizeFileName reduces a client supplied name to its base name.
func SanitizeFileName(name string) (string, error) {
	name = path.Base(strings.ReplaceAll(strings.TrimSpace(name), "\\", "/"))
	if name == "" || name == "." || name == ".." || name == "/" {
		return "", apperrors.ErrInvalidFileName
	}
	return name, nil
}

// FileService stores and serves poster files.
type FileService struct {
	storage storage.Storage
}

// NewFileService creates a new FileService.
func NewFileService(storage storage.Storage) *FileService {
	return &FileService{storage: storage}
}

// Upload stores a new file and returns its name. Existing files are never replaced.
func (s *FileService) Upload(ctx context.Context, upload *Upload) (string, error) {
	name, err := SanitizeFileName(upload.FileName)
	if err != nil {
		return "", err
	}

	exists, err := s.storage.Exists(ctx, name)
	if err != nil {
		return "", err
	}
	if exists {
		return "", apperrors.ErrFileAlreadyExists
	}

	if err := s.storage.Save(ctx, name, upload.Content, upload.ContentType); err != nil {
		return "", err
	}
	return name, nil
}

// Open returns a stored file. Callers must close its Body.
func (s *FileService) Open(ctx context.Context, name string) (*storage.Object, error) {
	name, err := SanitizeFileName(name)
	if err != nil {
		return nil, err
	}

	obj, err := s.storage.Open(ctx, name)
	if err != nil {
		if errors.Is(err, storage.ErrNotExist) {
			return nil, apperrors.ErrFileNotFound
		}
		return nil, err
	}
	return obj, nil
}
