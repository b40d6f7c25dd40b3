package usecase

import (
	"context"
	"errors"
	"testing"

	"truckservice/internal/config"
	"truckservice/internal/domain/entities"
	"truckservice/internal/infrastructure/workspace"
	"truckservice/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newAdminTestEnv(t *testing.T) (*CatalogAdminUseCase, *mocks.MockIWorksRepository, *mocks.MockIHeaderTemplateRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)

	cfg := config.Default()
	cfg.Root = t.TempDir()
	layout, err := workspace.New(cfg)
	if err != nil {
		t.Fatalf("workspace: %v", err)
	}

	works := mocks.NewMockIWorksRepository(ctrl)
	headers := mocks.NewMockIHeaderTemplateRepository(ctrl)
	return NewCatalogAdminUseCase(layout, works, headers), works, headers
}

func TestCatalogAdminUseCase_MergeWorks(t *testing.T) {
	existing := []entities.WorkItem{
		{Name: "Осмотр ТС", NormHours: 0.4},
		{Name: "Замена правой подножки", NormHours: 1.4},
	}

	t.Run("dedupes case-insensitively and appends the rest", func(t *testing.T) {
		uc, works, _ := newAdminTestEnv(t)

		batch := []entities.WorkItem{
			{Name: "осмотр тс", NormHours: 0.5},
			{Name: "Замена лючка", NormHours: 0.4},
			{Name: "  Замена правой подножки  ", NormHours: 1.0},
		}

		works.EXPECT().GetWorks(gomock.Any(), "base").Return(existing, nil)
		works.EXPECT().SaveWorks(gomock.Any(), "base", gomock.Len(3)).
			DoAndReturn(func(_ context.Context, _ string, merged []entities.WorkItem) error {
				if merged[2].Name != "Замена лючка" {
					return errors.New("new entry must be appended after existing ones")
				}
				return nil
			})

		report, err := uc.MergeWorks(context.Background(), "base", batch)
		if err != nil {
			t.Fatalf("MergeWorks: %v", err)
		}
		if report.Added != 1 || report.Duplicates != 2 || report.Total != 3 {
			t.Fatalf("unexpected report: %+v", report)
		}
	})

	t.Run("all duplicates skips the save", func(t *testing.T) {
		uc, works, _ := newAdminTestEnv(t)

		works.EXPECT().GetWorks(gomock.Any(), "base").Return(existing, nil)

		report, err := uc.MergeWorks(context.Background(), "base", existing)
		if err != nil {
			t.Fatalf("MergeWorks: %v", err)
		}
		if report.Added != 0 || report.Duplicates != 2 || report.Total != 2 {
			t.Fatalf("unexpected report: %+v", report)
		}
	})

	t.Run("empty batch", func(t *testing.T) {
		uc, _, _ := newAdminTestEnv(t)
		if _, err := uc.MergeWorks(context.Background(), "base", nil); !errors.Is(err, ErrEmptyBatch) {
			t.Fatalf("expected ErrEmptyBatch, got %v", err)
		}
	})
}

func TestCatalogAdminUseCase_CreateCustomList(t *testing.T) {
	batch := []entities.WorkItem{
		{Name: "Мойка кабины", NormHours: 0.5},
		{Name: "мойка кабины", NormHours: 0.6},
		{Name: "Продувка радиатора", NormHours: 0.3},
	}

	t.Run("registers the category and saves a deduped catalog", func(t *testing.T) {
		uc, works, _ := newAdminTestEnv(t)

		works.EXPECT().SaveWorks(gomock.Any(), "custom_Спецработы", gomock.Len(2)).Return(nil)

		cat, err := uc.CreateCustomList(context.Background(), "Спецработы", batch)
		if err != nil {
			t.Fatalf("CreateCustomList: %v", err)
		}
		if !cat.Custom || cat.Name != "Спецработы" {
			t.Fatalf("unexpected category: %+v", cat)
		}

		found := false
		for _, c := range uc.Categories() {
			if c.ID == cat.ID {
				found = true
			}
		}
		if !found {
			t.Fatal("custom category must be listed after creation")
		}
	})

	t.Run("rejects bad names", func(t *testing.T) {
		uc, _, _ := newAdminTestEnv(t)
		for _, name := range []string{"", "x", "bad/name", "bad<name>"} {
			if _, err := uc.CreateCustomList(context.Background(), name, batch); !errors.Is(err, ErrCustomListName) {
				t.Fatalf("expected ErrCustomListName for %q, got %v", name, err)
			}
		}
	})
}

func TestCatalogAdminUseCase_DeleteHeaderTemplate(t *testing.T) {
	uc, _, headers := newAdminTestEnv(t)

	if err := uc.DeleteHeaderTemplate(entities.DefaultHeaderTemplateID); err == nil {
		t.Fatal("default template must be protected")
	}

	headers.EXPECT().Get("gone").Return(entities.HeaderTemplate{}, false)
	if err := uc.DeleteHeaderTemplate("gone"); !errors.Is(err, ErrTemplateUnknown) {
		t.Fatalf("expected ErrTemplateUnknown, got %v", err)
	}

	headers.EXPECT().Get("company_a").Return(entities.HeaderTemplate{ID: "company_a"}, true)
	headers.EXPECT().Delete("company_a").Return(nil)
	if err := uc.DeleteHeaderTemplate("company_a"); err != nil {
		t.Fatalf("DeleteHeaderTemplate: %v", err)
	}
}
