package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"truckservice/internal/domain/entities"
	"truckservice/internal/infrastructure/workspace"
	"truckservice/internal/usecase/interfaces"
)

// FilePhotoStore writes captured photos into the category's photo folder.

type FilePhotoStore struct {
	layout *workspace.Layout
}

var _ interfaces.IPhotoStore = (*FilePhotoStore)(nil)

func NewFilePhotoStore(layout *workspace.Layout) *FilePhotoStore {
	return &FilePhotoStore{layout: layout}
}

func (s *FilePhotoStore) SavePhoto(_ context.Context, cat entities.Category, filename string, content []byte) error {
	dir := s.layout.PhotosDirFor(cat)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create photos dir %s: %w", dir, err)
	}
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("save photo %s: %w", path, err)
	}
	return nil
}
