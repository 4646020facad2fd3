package service

import (
	"context"
	"io"
	"strings"
	"testing"

	apperrors "movieflix/internal/errors"
	"movieflix/internal/storage"
	storagemocks "movieflix/internal/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "poster.png", want: "poster.png"},
		{input: "../../etc/passwd", want: "passwd"},
		{input: `C:\Users\alice\poster.png`, want: "poster.png"},
		{input: "  spaced.jpg ", want: "spaced.jpg"},
		{input: "", wantErr: true},
		{input: ".", wantErr: true},
		{input: "..", wantErr: true},
		{input: "dir/", want: "dir"},
		{input: "/", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := SanitizeFileName(tt.input)

			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrInvalidFileName)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFileService_Upload(t *testing.T) {
	t.Run("stores a new file", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := storagemocks.NewMockStorage(ctrl)
		svc := NewFileService(store)

		store.EXPECT().Exists(gomock.Any(), "poster.png").Return(false, nil)
		store.EXPECT().Save(gomock.Any(), "poster.png", gomock.Any(), "image/png").Return(nil)

		name, err := svc.Upload(context.Background(), &Upload{FileName: "poster.png", ContentType: "image/png", Content: strings.NewReader("x")})

		require.NoError(t, err)
		assert.Equal(t, "poster.png", name)
	})

	t.Run("never replaces an existing file", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := storagemocks.NewMockStorage(ctrl)
		svc := NewFileService(store)

		store.EXPECT().Exists(gomock.Any(), "poster.png").Return(true, nil)

		_, err := svc.Upload(context.Background(), &Upload{FileName: "poster.png", Content: strings.NewReader("x")})

		assert.ErrorIs(t, err, apperrors.ErrFileAlreadyExists)
	})
}

func TestFileService_Open(t *testing.T) {
	t.Run("returns the stored object", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := storagemocks.NewMockStorage(ctrl)
		svc := NewFileService(store)

		store.EXPECT().Open(gomock.Any(), "poster.png").Return(&storage.Object{
			Body:        io.NopCloser(strings.NewReader("png")),
			ContentType: "image/png",
			Size:        3,
		}, nil)

		obj, err := svc.Open(context.Background(), "poster.png")

		require.NoError(t, err)
		defer obj.Body.Close()
		assert.Equal(t, "image/png", obj.ContentType)
	})

	t.Run("missing file", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := storagemocks.NewMockStorage(ctrl)
		svc := NewFileService(store)

		store.EXPECT().Open(gomock.Any(), "missing.png").Return(nil, storage.ErrNotExist)

		_, err := svc.Open(context.Background(), "missing.png")

		assert.ErrorIs(t, err, apperrors.ErrFileNotFound)
	})

	t.Run("traversal attempts resolve to the base name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := storagemocks.NewMockStorage(ctrl)
		svc := NewFileService(store)

		store.EXPECT().Open(gomock.Any(), "passwd").Return(nil, storage.ErrNotExist)

		_, err := svc.Open(context.Background(), "../../etc/passwd")

		assert.ErrorIs(t, err, apperrors.ErrFileNotFound)
	})
}
