package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"truckservice/internal/domain/entities"
	"truckservice/internal/infrastructure/workspace"
	"truckservice/internal/usecase/interfaces"
)

var (
	ErrEmptyBatch      = errors.New("uploaded batch contains no valid rows")
	ErrCustomListName  = errors.New("custom list name is invalid")
	ErrTemplateUnknown = errors.New("header template not found")
)

// customListForbidden mirrors the workers-line character policy: the name
// becomes a folder and a file name, so markup characters are rejected.
const customListForbidden = `<>{}[]~/\:*?"|`

// MergeReport summarizes one catalog merge: how many uploaded rows were new,
// how many were already present, and the resulting catalog size.
type MergeReport struct {
	Added      int `json:"added"`
	Duplicates int `json:"duplicates"`
	Total      int `json:"total"`
}

// ICatalogAdminUseCase exposes the operator-facing maintenance operations.

type ICatalogAdminUseCase interface {
	Categories() []entities.Category
	MergeWorks(ctx context.Context, categoryID string, batch []entities.WorkItem) (MergeReport, error)
	CreateCustomList(ctx context.Context, name string, batch []entities.WorkItem) (entities.Category, error)
	HeaderTemplates() []entities.HeaderTemplate
	SaveHeaderTemplate(t entities.HeaderTemplate) error
	DeleteHeaderTemplate(id string) error
}

// CatalogAdminUseCase covers the operator-facing maintenance flows: merging
// uploaded work batches into category catalogs, creating custom lists and
// managing header templates.

type CatalogAdminUseCase struct {
	layout  *workspace.Layout
	works   interfaces.IWorksRepository
	headers interfaces.IHeaderTemplateRepository
}

var _ ICatalogAdminUseCase = (*CatalogAdminUseCase)(nil)

func NewCatalogAdminUseCase(layout *workspace.Layout, works interfaces.IWorksRepository, headers interfaces.IHeaderTemplateRepository) *CatalogAdminUseCase {
	return &CatalogAdminUseCase{layout: layout, works: works, headers: headers}
}

// Categories lists every registered category.
func (uc *CatalogAdminUseCase) Categories() []entities.Category {
	return uc.layout.Categories()
}

// MergeWorks folds an uploaded batch into the category's catalog. Existing
// entries win: a row whose name matches an existing one case-insensitively
// (after trimming) is counted as a duplicate and dropped, everything else is
// appended in upload order.
func (uc *CatalogAdminUseCase) MergeWorks(ctx context.Context, categoryID string, batch []entities.WorkItem) (MergeReport, error) {
	if len(batch) == 0 {
		return MergeReport{}, ErrEmptyBatch
	}

	existing, err := uc.works.GetWorks(ctx, categoryID)
	if err != nil {
		return MergeReport{}, err
	}

	seen := make(map[string]struct{}, len(existing))
	for _, w := range existing {
		seen[normalizeWorkName(w.Name)] = struct{}{}
	}

	merged := append([]entities.WorkItem(nil), existing...)
	report := MergeReport{}
	for _, w := range batch {
		key := normalizeWorkName(w.Name)
		if _, dup := seen[key]; dup {
			report.Duplicates++
			continue
		}
		seen[key] = struct{}{}
		merged = append(merged, w)
		report.Added++
	}
	report.Total = len(merged)

	if report.Added > 0 {
		if err := uc.works.SaveWorks(ctx, categoryID, merged); err != nil {
			return MergeReport{}, err
		}
	}

	log.Printf("[usecase][catalog] merged %d works into %s (%d duplicates skipped)", report.Added, categoryID, report.Duplicates)
	return report, nil
}

// CreateCustomList registers a user-defined category and seeds its catalog
// with the uploaded batch.
func (uc *CatalogAdminUseCase) CreateCustomList(ctx context.Context, name string, batch []entities.WorkItem) (entities.Category, error) {
	name = strings.TrimSpace(name)
	if n := len([]rune(name)); n < 2 || n > 100 {
		return entities.Category{}, fmt.Errorf("%w: length must be 2 to 100 characters", ErrCustomListName)
	}
	if strings.ContainsAny(name, customListForbidden) {
		return entities.Category{}, fmt.Errorf("%w: contains forbidden characters", ErrCustomListName)
	}
	if len(batch) == 0 {
		return entities.Category{}, ErrEmptyBatch
	}

	cat, err := uc.layout.RegisterCustom(name)
	if err != nil {
		return entities.Category{}, err
	}
	if err := uc.works.SaveWorks(ctx, cat.ID, dedupeWorks(batch)); err != nil {
		return entities.Category{}, err
	}

	log.Printf("[usecase][catalog] created custom list %q (%d works)", name, len(batch))
	return cat, nil
}

// HeaderTemplates lists the available header blocks.
func (uc *CatalogAdminUseCase) HeaderTemplates() []entities.HeaderTemplate {
	return uc.headers.List()
}

// SaveHeaderTemplate creates or replaces a header block.
func (uc *CatalogAdminUseCase) SaveHeaderTemplate(t entities.HeaderTemplate) error {
	if strings.TrimSpace(t.ID) == "" || strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("%w: id and name are required", ErrCustomListName)
	}
	return uc.headers.Save(t)
}

// DeleteHeaderTemplate removes a header block. The default block is
// protected: the order engine falls back to it.
func (uc *CatalogAdminUseCase) DeleteHeaderTemplate(id string) error {
	if id == entities.DefaultHeaderTemplateID {
		return fmt.Errorf("%w: default template cannot be deleted", ErrTemplateUnknown)
	}
	if _, ok := uc.headers.Get(id); !ok {
		return fmt.Errorf("%w: %s", ErrTemplateUnknown, id)
	}
	return uc.headers.Delete(id)
}

func normalizeWorkName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// dedupeWorks drops case-insensitive duplicates inside one batch, keeping
// first occurrence order.
func dedupeWorks(batch []entities.WorkItem) []entities.WorkItem {
	seen := make(map[string]struct{}, len(batch))
	out := make([]entities.WorkItem, 0, len(batch))
	for _, w := range batch {
		key := normalizeWorkName(w.Name)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, w)
	}
	return out
}
