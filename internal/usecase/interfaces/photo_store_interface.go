package interfaces

import (
	"context"

	"truckservice/internal/domain/entities"
)

// IPhotoStore persists captured vehicle photos into the category's photo
// folder.
type IPhotoStore interface {
	SavePhoto(ctx context.Context, category entities.Category, filename string, content []byte) error
}
