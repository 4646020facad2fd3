package storage

import (
	"context"
	"errors"
	"io"
)

//go:generate mockgen -destination=mocks/mock_storage.go -package=mocks movieflix/internal/storage Storage

// ErrNotExist is returned by Open when the object does not exist.
var ErrNotExist = errors.New("storage: object does not exist")

// Object is an opened stored file. Callers must close Body.
type Object struct {
	Body        io.ReadCloser
	ContentType string
	Size        int64
}

// Storage defines the interface for poster file storage.
type Storage interface {
	// Exists reports whether an object with the given name is stored.
	Exists(ctx context.Context, name string) (bool, error)
	// Save stores body under name, replacing any existing object.
	Save(ctx context.Context, name string, body io.Reader, contentType string) error
	// Open returns the stored object or ErrNotExist.
	Open(ctx context.Context, name string) (*Object, error)
	// Delete removes the object. Deleting a missing object is not an error.
	Delete(ctx context.Context, name string) error
}

// Ensure implementations satisfy the Storage interface
var (
	_ Storage = (*S3Client)(nil)
	_ Storage = (*LocalStorage)(nil)
)
