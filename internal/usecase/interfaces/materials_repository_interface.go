package interfaces

import "context"

// IMaterialsRepository supplies the global material list and the fixed price
// table.
type IMaterialsRepository interface {
	GetMaterials(ctx context.Context) ([]string, error)

	// GetMaterialPrice returns 0 for names absent from the price table.
	GetMaterialPrice(name string) float64
}
