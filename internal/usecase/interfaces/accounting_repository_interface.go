package interfaces

import (
	"context"

	"truckservice/internal/domain/entities"
)

// IAccountingRepository appends finalized orders to the per-category and
// consolidated ledgers. Append-only; the implementation serializes writers
// per ledger.
type IAccountingRepository interface {
	SaveOrder(ctx context.Context, record entities.AccountingRecord) error
}
