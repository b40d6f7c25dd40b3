package interfaces

import (
	"context"
	"errors"

	"truckservice/internal/domain/entities"
)

// ErrCategoryNotFound distinguishes "unknown category" from "category known
// but list empty". Repositories return it, handlers map it to 404.
var ErrCategoryNotFound = errors.New("category not found")

// IWorksRepository supplies category-scoped work catalogs.
type IWorksRepository interface {
	// GetWorks returns the ordered catalog for the category, serving from
	// cache when fresh and falling back to built-in defaults when the source
	// file is absent or unreadable.
	GetWorks(ctx context.Context, categoryID string) ([]entities.WorkItem, error)

	// SaveWorks rewrites the category's source file with the given catalog
	// and invalidates its cache entry.
	SaveWorks(ctx context.Context, categoryID string, works []entities.WorkItem) error
}
