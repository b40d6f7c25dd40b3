package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"truckservice/internal/config"
	"truckservice/internal/domain/entities"
	"truckservice/internal/infrastructure/workspace"
	"truckservice/internal/usecase/interfaces"
	"truckservice/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

const testUserID int64 = 42

var testWorks = []entities.WorkItem{
	{Name: "Осмотр ТС", NormHours: 0.4},
	{Name: "Замена правой подножки", NormHours: 1.4},
	{Name: "Замена левой подножки", NormHours: 1.4},
}

var testMaterials = []string{"ВД-40", "Перчатки"}

var testPrices = map[string]float64{"ВД-40": 375, "Перчатки": 95}

type orderTestEnv struct {
	uc         *OrderSessionUseCase
	works      *mocks.MockIWorksRepository
	materials  *mocks.MockIMaterialsRepository
	accounting *mocks.MockIAccountingRepository
	headers    *mocks.MockIHeaderTemplateRepository
	documents  *mocks.MockIDocumentFactory
	photos     *mocks.MockIPhotoStore
}

func newOrderTestEnv(t *testing.T) *orderTestEnv {
	t.Helper()
	ctrl := gomock.NewController(t)

	cfg := config.Default()
	cfg.Root = t.TempDir()
	layout, err := workspace.New(cfg)
	if err != nil {
		t.Fatalf("workspace: %v", err)
	}

	env := &orderTestEnv{
		works:      mocks.NewMockIWorksRepository(ctrl),
		materials:  mocks.NewMockIMaterialsRepository(ctrl),
		accounting: mocks.NewMockIAccountingRepository(ctrl),
		headers:    mocks.NewMockIHeaderTemplateRepository(ctrl),
		documents:  mocks.NewMockIDocumentFactory(ctrl),
		photos:     mocks.NewMockIPhotoStore(ctrl),
	}

	env.works.EXPECT().GetWorks(gomock.Any(), "base").Return(testWorks, nil).AnyTimes()
	env.materials.EXPECT().GetMaterials(gomock.Any()).Return(testMaterials, nil).AnyTimes()
	env.materials.EXPECT().GetMaterialPrice(gomock.Any()).DoAndReturn(func(name string) float64 {
		return testPrices[name]
	}).AnyTimes()
	env.headers.EXPECT().Get(entities.DefaultHeaderTemplateID).Return(entities.HeaderTemplate{
		ID:   entities.DefaultHeaderTemplateID,
		Name: "Бриджтаун",
	}, true).AnyTimes()

	env.uc = NewOrderSessionUseCase(
		layout, env.works, env.materials, env.accounting, env.headers,
		env.documents, env.photos, newTestValidator(), 2500, 8,
	)
	return env
}

// driveToWorks walks a fresh session through header and text input up to
// work selection.
func driveToWorks(t *testing.T, env *orderTestEnv) {
	t.Helper()
	ctx := context.Background()

	if _, err := env.uc.StartOrder(ctx, testUserID, "base"); err != nil {
		t.Fatalf("StartOrder: %v", err)
	}
	if err := env.uc.SelectHeader(testUserID, entities.DefaultHeaderTemplateID); err != nil {
		t.Fatalf("SelectHeader: %v", err)
	}
	for _, input := range []string{"А123ВС77", "15.06.2025", "77", "Иванов, Петров"} {
		if _, err := env.uc.SubmitText(testUserID, input); err != nil {
			t.Fatalf("SubmitText(%q): %v", input, err)
		}
	}
	s, err := env.uc.Session(testUserID)
	if err != nil {
		t.Fatalf("Session: %v", err)
	}
	if s.Step != entities.StepSelectingWorks {
		t.Fatalf("expected selecting_works, got %s", s.Step)
	}
}

func driveToPhotoDecision(t *testing.T, env *orderTestEnv) {
	t.Helper()
	driveToWorks(t, env)
	if _, err := env.uc.ToggleWork(testUserID, 0); err != nil {
		t.Fatalf("ToggleWork: %v", err)
	}
	if err := env.uc.ProceedToMaterials(testUserID); err != nil {
		t.Fatalf("ProceedToMaterials: %v", err)
	}
	if err := env.uc.RequestPhotoDecision(testUserID); err != nil {
		t.Fatalf("RequestPhotoDecision: %v", err)
	}
}

func TestOrderSessionUseCase_StartOrder(t *testing.T) {
	t.Run("unknown category", func(t *testing.T) {
		env := newOrderTestEnv(t)
		if _, err := env.uc.StartOrder(context.Background(), testUserID, "nope"); !errors.Is(err, ErrCategoryUnknown) {
			t.Fatalf("expected ErrCategoryUnknown, got %v", err)
		}
	})

	t.Run("captures catalogs and replaces previous session", func(t *testing.T) {
		env := newOrderTestEnv(t)
		s, err := env.uc.StartOrder(context.Background(), testUserID, "base")
		if err != nil {
			t.Fatalf("StartOrder: %v", err)
		}
		if len(s.Works) != len(testWorks) || len(s.Materials) != len(testMaterials) {
			t.Fatalf("catalogs not captured: %d works, %d materials", len(s.Works), len(s.Materials))
		}
		if s.Step != entities.StepSelectingHeader {
			t.Fatalf("expected selecting_header, got %s", s.Step)
		}

		s.LicensePlate = "А123ВС77"
		s2, err := env.uc.StartOrder(context.Background(), testUserID, "base")
		if err != nil {
			t.Fatalf("restart: %v", err)
		}
		if s2.LicensePlate != "" {
			t.Fatal("restart must discard the previous session")
		}
	})
}

func TestOrderSessionUseCase_SubmitText(t *testing.T) {
	t.Run("validation failure keeps the step", func(t *testing.T) {
		env := newOrderTestEnv(t)
		ctx := context.Background()
		if _, err := env.uc.StartOrder(ctx, testUserID, "base"); err != nil {
			t.Fatalf("StartOrder: %v", err)
		}
		if err := env.uc.SelectHeader(testUserID, entities.DefaultHeaderTemplateID); err != nil {
			t.Fatalf("SelectHeader: %v", err)
		}

		step, err := env.uc.SubmitText(testUserID, "not a plate")
		if !errors.Is(err, ErrInvalidLicensePlate) {
			t.Fatalf("expected ErrInvalidLicensePlate, got %v", err)
		}
		if step != entities.StepLicensePlate {
			t.Fatalf("step must not advance on bad input, got %s", step)
		}
	})

	t.Run("no session", func(t *testing.T) {
		env := newOrderTestEnv(t)
		if _, err := env.uc.SubmitText(testUserID, "А123ВС77"); !errors.Is(err, ErrNoActiveSession) {
			t.Fatalf("expected ErrNoActiveSession, got %v", err)
		}
	})

	t.Run("text at selection step is rejected", func(t *testing.T) {
		env := newOrderTestEnv(t)
		driveToWorks(t, env)
		if _, err := env.uc.SubmitText(testUserID, "anything"); !errors.Is(err, ErrWrongStep) {
			t.Fatalf("expected ErrWrongStep, got %v", err)
		}
	})
}

func TestOrderSessionUseCase_ToggleWork(t *testing.T) {
	env := newOrderTestEnv(t)
	driveToWorks(t, env)

	selected, err := env.uc.ToggleWork(testUserID, 1)
	if err != nil || !selected {
		t.Fatalf("first toggle should select: %v %v", selected, err)
	}
	selected, err = env.uc.ToggleWork(testUserID, 1)
	if err != nil || selected {
		t.Fatalf("second toggle should deselect: %v %v", selected, err)
	}
	if _, err := env.uc.ToggleWork(testUserID, len(testWorks)); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
	if _, err := env.uc.ToggleWork(testUserID, -1); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange for negative, got %v", err)
	}
}

func TestOrderSessionUseCase_WorksPage(t *testing.T) {
	env := newOrderTestEnv(t)
	driveToWorks(t, env)

	if _, err := env.uc.ToggleWork(testUserID, 0); err != nil {
		t.Fatalf("ToggleWork: %v", err)
	}
	if _, err := env.uc.ToggleWork(testUserID, 1); err != nil {
		t.Fatalf("ToggleWork: %v", err)
	}

	view, err := env.uc.WorksPage(testUserID, 0)
	if err != nil {
		t.Fatalf("WorksPage: %v", err)
	}
	if view.TotalPages != 1 || view.Page != 0 {
		t.Fatalf("unexpected paging: %+v", view)
	}
	if len(view.Items) != len(testWorks) {
		t.Fatalf("expected %d items, got %d", len(testWorks), len(view.Items))
	}
	if !view.Items[0].Selected || !view.Items[1].Selected || view.Items[2].Selected {
		t.Fatalf("selection flags wrong: %+v", view.Items)
	}
	if view.Totals.Count != 2 {
		t.Fatalf("expected 2 selected, got %d", view.Totals.Count)
	}
	wantHours := 0.4 + 1.4
	if math.Abs(view.Totals.Hours-wantHours) > 1e-9 || math.Abs(view.Totals.Cost-wantHours*2500) > 1e-9 {
		t.Fatalf("totals wrong: %+v", view.Totals)
	}

	// Out-of-range page clamps instead of failing.
	view, err = env.uc.WorksPage(testUserID, 99)
	if err != nil {
		t.Fatalf("WorksPage(99): %v", err)
	}
	if view.Page != 0 {
		t.Fatalf("expected clamp to last page, got %d", view.Page)
	}
}

func TestOrderSessionUseCase_ResetWorks(t *testing.T) {
	env := newOrderTestEnv(t)
	driveToWorks(t, env)

	if _, err := env.uc.ToggleWork(testUserID, 0); err != nil {
		t.Fatalf("ToggleWork: %v", err)
	}
	if err := env.uc.ResetWorks(testUserID); err != nil {
		t.Fatalf("ResetWorks: %v", err)
	}
	s, _ := env.uc.Session(testUserID)
	if len(s.SelectedWorks) != 0 || s.WorksPage != 0 {
		t.Fatalf("reset did not clear selection: %+v", s)
	}
}

func TestOrderSessionUseCase_FinalizeWithoutPhotos(t *testing.T) {
	env := newOrderTestEnv(t)
	driveToPhotoDecision(t, env)

	env.documents.EXPECT().
		CreateAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(interfaces.OrderDocuments{ExcelPath: "/tmp/order.xlsx", DraftPath: "/tmp/order.txt"}, nil)
	env.accounting.EXPECT().
		SaveOrder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rec entities.AccountingRecord) error {
			if rec.OrderNumber != "77" || rec.LicensePlate != "А123ВС77" {
				return fmt.Errorf("unexpected record: %+v", rec)
			}
			if rec.HasPhotos {
				return fmt.Errorf("no photos were attached")
			}
			if rec.WorkCount != 1 || rec.TotalHours != 0.4 {
				return fmt.Errorf("work totals wrong: %+v", rec)
			}
			return nil
		})

	result, err := env.uc.DecidePhotos(context.Background(), testUserID, false)
	if err != nil {
		t.Fatalf("DecidePhotos: %v", err)
	}
	if result == nil {
		t.Fatal("declining photos must finalize")
	}
	if result.TotalCost != 0.4*2500+375+95 {
		t.Fatalf("total cost wrong: %v", result.TotalCost)
	}
	if result.ExcelPath != "/tmp/order.xlsx" {
		t.Fatalf("excel path not propagated: %s", result.ExcelPath)
	}

	// Session is gone after finalization.
	if _, err := env.uc.Session(testUserID); !errors.Is(err, ErrNoActiveSession) {
		t.Fatalf("expected session removed, got %v", err)
	}
	if _, err := env.uc.Finalize(context.Background(), testUserID); !errors.Is(err, ErrNoActiveSession) {
		t.Fatalf("second finalize must fail with ErrNoActiveSession, got %v", err)
	}
}

func TestOrderSessionUseCase_FinalizeDocumentFailureDropsSession(t *testing.T) {
	env := newOrderTestEnv(t)
	driveToPhotoDecision(t, env)

	env.documents.EXPECT().
		CreateAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(interfaces.OrderDocuments{}, errors.New("disk full"))

	if _, err := env.uc.DecidePhotos(context.Background(), testUserID, false); err == nil {
		t.Fatal("expected finalize error")
	}
	if _, err := env.uc.Session(testUserID); !errors.Is(err, ErrNoActiveSession) {
		t.Fatalf("session must be removed even on failure, got %v", err)
	}
}

func TestOrderSessionUseCase_FinalizeLedgerFailure(t *testing.T) {
	env := newOrderTestEnv(t)
	driveToPhotoDecision(t, env)

	env.documents.EXPECT().
		CreateAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(interfaces.OrderDocuments{ExcelPath: "a.xlsx", DraftPath: "a.txt"}, nil)
	env.accounting.EXPECT().
		SaveOrder(gomock.Any(), gomock.Any()).
		Return(errors.New("disk full"))

	result, err := env.uc.DecidePhotos(context.Background(), testUserID, false)
	if err == nil {
		t.Fatalf("ledger failure must fail finalization, got %+v", result)
	}
	if result != nil {
		t.Fatalf("no summary on failure, got %+v", result)
	}
	if _, err := env.uc.Session(testUserID); !errors.Is(err, ErrNoActiveSession) {
		t.Fatalf("session must be removed, got %v", err)
	}
}

func TestOrderSessionUseCase_FinalizeKeepsNewerSession(t *testing.T) {
	env := newOrderTestEnv(t)
	driveToPhotoDecision(t, env)

	// A new order for the same user starts while documents are being
	// written; the finalizing session's cleanup must not remove it.
	env.documents.EXPECT().
		CreateAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ *entities.OrderSession, _ entities.Category) (interfaces.OrderDocuments, error) {
			if _, err := env.uc.StartOrder(ctx, testUserID, "base"); err != nil {
				return interfaces.OrderDocuments{}, err
			}
			return interfaces.OrderDocuments{ExcelPath: "a.xlsx", DraftPath: "a.txt"}, nil
		})
	env.accounting.EXPECT().SaveOrder(gomock.Any(), gomock.Any()).Return(nil)

	if _, err := env.uc.DecidePhotos(context.Background(), testUserID, false); err != nil {
		t.Fatalf("finalize: %v", err)
	}

	s, err := env.uc.Session(testUserID)
	if err != nil {
		t.Fatalf("the newer session must survive finalization: %v", err)
	}
	if s.Step != entities.StepSelectingHeader {
		t.Fatalf("unexpected step on the new session: %s", s.Step)
	}
}

func TestOrderSessionUseCase_PhotoFlow(t *testing.T) {
	env := newOrderTestEnv(t)
	driveToPhotoDecision(t, env)

	result, err := env.uc.DecidePhotos(context.Background(), testUserID, true)
	if err != nil || result != nil {
		t.Fatalf("opting into photos must not finalize: %v %v", result, err)
	}

	var savedNames []string
	env.photos.EXPECT().
		SavePhoto(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ entities.Category, filename string, _ []byte) error {
			savedNames = append(savedNames, filename)
			return nil
		}).Times(3)
	env.documents.EXPECT().
		CreateAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(interfaces.OrderDocuments{ExcelPath: "a.xlsx", DraftPath: "a.txt"}, nil)
	env.accounting.EXPECT().
		SaveOrder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rec entities.AccountingRecord) error {
			if !rec.HasPhotos {
				return errors.New("photos flag must be set")
			}
			return nil
		})

	ctx := context.Background()
	for i, ref := range []string{"ref-front", "ref-right"} {
		res, err := env.uc.AttachPhoto(ctx, testUserID, ref, []byte("jpeg"))
		if err != nil {
			t.Fatalf("AttachPhoto %d: %v", i, err)
		}
		if res.Accepted != i+1 || res.Finalized != nil {
			t.Fatalf("unexpected progress after photo %d: %+v", i+1, res)
		}
	}

	// Same underlying image again is a no-op reporting unchanged progress:
	// SavePhoto is limited to three calls above.
	res, err := env.uc.AttachPhoto(ctx, testUserID, "ref-front", []byte("jpeg"))
	if err != nil {
		t.Fatalf("duplicate photo must not error: %v", err)
	}
	if res.Accepted != 2 || res.Remaining != 1 || res.Finalized != nil {
		t.Fatalf("duplicate photo changed progress: %+v", res)
	}

	res, err = env.uc.AttachPhoto(ctx, testUserID, "ref-left", []byte("jpeg"))
	if err != nil {
		t.Fatalf("third photo: %v", err)
	}
	if res.Finalized == nil {
		t.Fatal("third photo must finalize the order")
	}
	if res.Finalized.PhotoCount != 3 {
		t.Fatalf("expected 3 photos in summary, got %d", res.Finalized.PhotoCount)
	}

	for i, name := range savedNames {
		want := fmt.Sprintf("А123ВС77_77_%d.jpg", i+1)
		if name != want {
			t.Fatalf("photo %d name: got %q want %q", i+1, name, want)
		}
	}
	if !strings.HasSuffix(savedNames[2], "_3.jpg") {
		t.Fatalf("unexpected last photo name %q", savedNames[2])
	}
}

func TestOrderSessionUseCase_EmptyOrderRejected(t *testing.T) {
	env := newOrderTestEnv(t)
	driveToWorks(t, env)

	if err := env.uc.ProceedToMaterials(testUserID); err != nil {
		t.Fatalf("ProceedToMaterials: %v", err)
	}

	// Nothing selected at all: the flow cannot move past material selection.
	if err := env.uc.RequestPhotoDecision(testUserID); !errors.Is(err, ErrEmptyOrder) {
		t.Fatalf("expected ErrEmptyOrder, got %v", err)
	}
}
