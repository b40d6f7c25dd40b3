package documents

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"truckservice/internal/domain/entities"
	"truckservice/internal/infrastructure/workspace"
	"truckservice/internal/usecase/interfaces"
)

var (
	// ErrValidation is returned when the session is missing required fields.
	ErrValidation = errors.New("order data is incomplete")
	// ErrFileSave is returned when a generated document did not land on disk.
	ErrFileSave = errors.New("document file was not saved")
)

// Factory renders the workbook and the text draft for finalized orders.
type Factory struct {
	layout    *workspace.Layout
	headers   interfaces.IHeaderTemplateRepository
	materials interfaces.IMaterialsRepository
	rate      float64
}

var _ interfaces.IDocumentFactory = (*Factory)(nil)

func NewFactory(layout *workspace.Layout, headers interfaces.IHeaderTemplateRepository, materials interfaces.IMaterialsRepository, rate float64) *Factory {
	return &Factory{layout: layout, headers: headers, materials: materials, rate: rate}
}

// DocumentBaseName builds the shared stem of the order's files:
// "№{number} {DD.MM.YYYY} {plate}".
func DocumentBaseName(s *entities.OrderSession) string {
	return fmt.Sprintf("№%s %s %s", s.OrderNumber, s.Date.Format("02.01.2006"), s.LicensePlate)
}

// CreateAll renders both order documents into the category's orders folder
// and verifies each landed on disk before reporting success.
func (f *Factory) CreateAll(ctx context.Context, s *entities.OrderSession, category entities.Category) (interfaces.OrderDocuments, error) {
	var out interfaces.OrderDocuments

	if err := validateSession(s); err != nil {
		return out, err
	}

	tmpl, ok := f.headers.Get(s.HeaderTemplate)
	if !ok {
		tmpl, ok = f.headers.Get(entities.DefaultHeaderTemplateID)
		if !ok {
			return out, fmt.Errorf("%w: header template %q", ErrValidation, s.HeaderTemplate)
		}
	}

	materials := s.SelectedMaterials
	if len(materials) == 0 {
		all, err := f.materials.GetMaterials(ctx)
		if err != nil {
			return out, fmt.Errorf("%w: materials catalog: %v", ErrGeneration, err)
		}
		materials = all
	}

	dir := f.layout.OrdersDirFor(category)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return out, fmt.Errorf("%w: %v", ErrFileSave, err)
	}
	base := DocumentBaseName(s)

	wb, err := buildOrderWorkbook(s, tmpl, materials, f.rate, f.materials.GetMaterialPrice)
	if err != nil {
		return out, err
	}
	defer wb.Close()

	excelPath := filepath.Join(dir, base+".xlsx")
	if err := wb.SaveAs(excelPath); err != nil {
		return out, fmt.Errorf("%w: %v", ErrFileSave, err)
	}
	if err := verifySaved(excelPath); err != nil {
		return out, err
	}

	draftPath := filepath.Join(dir, base+".txt")
	draft := renderDraft(s)
	if err := os.WriteFile(draftPath, []byte(draft), 0o644); err != nil {
		return out, fmt.Errorf("%w: %v", ErrFileSave, err)
	}
	if err := verifySaved(draftPath); err != nil {
		return out, err
	}

	log.Printf("[documents][factory] created order documents: %s", base)
	out.ExcelPath = excelPath
	out.DraftPath = draftPath
	return out, nil
}

func validateSession(s *entities.OrderSession) error {
	switch {
	case s == nil:
		return fmt.Errorf("%w: no session", ErrValidation)
	case s.LicensePlate == "":
		return fmt.Errorf("%w: license plate", ErrValidation)
	case s.Date.IsZero():
		return fmt.Errorf("%w: order date", ErrValidation)
	case s.OrderNumber == "":
		return fmt.Errorf("%w: order number", ErrValidation)
	case s.Workers == "":
		return fmt.Errorf("%w: workers", ErrValidation)
	}
	return nil
}

// verifySaved guards against partially written files: missing or zero-byte
// output means the save failed even if no error surfaced.
func verifySaved(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrFileSave, filepath.Base(path), err)
	}
	if info.Size() == 0 {
		return fmt.Errorf("%w: %s is empty", ErrFileSave, filepath.Base(path))
	}
	return nil
}
