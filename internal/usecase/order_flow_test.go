package usecase

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"truckservice/internal/adapter/persistence/repository"
	"truckservice/internal/clock"
	"truckservice/internal/config"
	"truckservice/internal/domain/entities"
	"truckservice/internal/infrastructure/cache"
	"truckservice/internal/infrastructure/documents"
	"truckservice/internal/infrastructure/workspace"

	"github.com/xuri/excelize/v2"
)

// TestOrderFlow_EndToEnd drives one order through the real repositories and
// the real document factory on a temporary workspace: built-in work catalog,
// two selected works, no materials, no photos.
func TestOrderFlow_EndToEnd(t *testing.T) {
	cfg := config.Default()
	cfg.Root = t.TempDir()

	layout, err := workspace.New(cfg)
	if err != nil {
		t.Fatalf("workspace: %v", err)
	}

	clk := clock.NewFixed(testNow)
	store := cache.NewStore(cfg.CacheTTL(), clk)

	worksRepo := repository.NewWorksXLSXRepository(layout, store)
	materialsRepo := repository.NewMaterialsXLSXRepository(layout, store)
	accountingRepo := repository.NewAccountingXLSXRepository(layout)
	headersRepo, err := repository.NewHeaderTemplateJSONRepository(layout.HeaderTemplatesPath())
	if err != nil {
		t.Fatalf("header templates: %v", err)
	}
	photoStore := repository.NewFilePhotoStore(layout)

	factory := documents.NewFactory(layout, headersRepo, materialsRepo, cfg.HourlyRate)
	validator := NewValidator(clk, cfg.MaxPastDays, cfg.MaxFutureDays)
	uc := NewOrderSessionUseCase(
		layout, worksRepo, materialsRepo, accountingRepo, headersRepo,
		factory, photoStore, validator, cfg.HourlyRate, cfg.PageSize,
	)

	ctx := context.Background()
	if _, err := uc.StartOrder(ctx, testUserID, "base"); err != nil {
		t.Fatalf("StartOrder: %v", err)
	}
	if err := uc.SelectHeader(testUserID, entities.DefaultHeaderTemplateID); err != nil {
		t.Fatalf("SelectHeader: %v", err)
	}
	for _, input := range []string{"А123ВС77", "01.06.2025", "575", "Иванов, Петров"} {
		if _, err := uc.SubmitText(testUserID, input); err != nil {
			t.Fatalf("SubmitText(%q): %v", input, err)
		}
	}

	var wantHours float64
	s, _ := uc.Session(testUserID)
	for _, i := range []int{0, 1} {
		if _, err := uc.ToggleWork(testUserID, i); err != nil {
			t.Fatalf("ToggleWork(%d): %v", i, err)
		}
		wantHours += s.Works[i].NormHours
	}
	if err := uc.ProceedToMaterials(testUserID); err != nil {
		t.Fatalf("ProceedToMaterials: %v", err)
	}
	if err := uc.RequestPhotoDecision(testUserID); err != nil {
		t.Fatalf("RequestPhotoDecision: %v", err)
	}

	result, err := uc.DecidePhotos(ctx, testUserID, false)
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if result.WorkCount != 2 {
		t.Fatalf("work count = %d, want 2", result.WorkCount)
	}
	if result.TotalHours != wantHours {
		t.Fatalf("total hours = %v, want %v", result.TotalHours, wantHours)
	}

	// Both documents exist under the category's orders folder.
	for _, path := range []string{result.ExcelPath, result.DraftPath} {
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("document missing: %v", err)
		}
		if info.Size() == 0 {
			t.Fatalf("document %s is empty", path)
		}
	}
	if base := filepath.Base(result.ExcelPath); base != "№575 01.06.2025 А123ВС77.xlsx" {
		t.Fatalf("unexpected document name %q", base)
	}
	if !strings.HasPrefix(result.ExcelPath, layout.Root()) {
		t.Fatalf("document outside workspace: %s", result.ExcelPath)
	}

	// One data row in the section ledger and one in the consolidated one.
	cat, _ := layout.Category("base")
	for _, ledger := range []string{layout.SectionLedgerPath(cat), layout.CommonLedgerPath()} {
		f, err := excelize.OpenFile(ledger)
		if err != nil {
			t.Fatalf("open ledger %s: %v", ledger, err)
		}
		rows, err := f.GetRows(f.GetSheetName(0))
		f.Close()
		if err != nil {
			t.Fatalf("GetRows: %v", err)
		}
		if len(rows) != 2 {
			t.Fatalf("ledger %s: %d rows, want header + 1", ledger, len(rows))
		}
		if rows[1][0] != "1" {
			t.Fatalf("first ledger id = %q", rows[1][0])
		}
	}
}
