package interfaces

import (
	"context"

	"truckservice/internal/domain/entities"
)

// OrderDocuments is what a successful factory run produced.
type OrderDocuments struct {
	ExcelPath string
	DraftPath string
}

// IDocumentFactory materializes the spreadsheet and the plain-text draft for
// a finalized session into the category's orders folder.
type IDocumentFactory interface {
	CreateAll(ctx context.Context, session *entities.OrderSession, category entities.Category) (OrderDocuments, error)
}
