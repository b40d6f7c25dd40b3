package interfaces

import "truckservice/internal/domain/entities"

// IHeaderTemplateRepository manages the customer/contractor header blocks.
// The order engine only reads; Save/Delete serve the admin surface.
type IHeaderTemplateRepository interface {
	List() []entities.HeaderTemplate
	Get(id string) (entities.HeaderTemplate, bool)
	Reload() error
	Save(t entities.HeaderTemplate) error
	Delete(id string) error
}
