package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"truckservice/internal/domain/entities"
	"truckservice/internal/infrastructure/workspace"
	"truckservice/internal/usecase/interfaces"
)

var (
	ErrNoActiveSession  = errors.New("no active order session")
	ErrWrongStep        = errors.New("operation not allowed at current step")
	ErrCategoryUnknown  = errors.New("unknown order category")
	ErrHeaderUnknown    = errors.New("unknown header template")
	ErrIndexOutOfRange  = errors.New("selection index out of range")
	ErrAlreadyFinalized = errors.New("order already finalized")
	ErrEmptyOrder       = errors.New("order total must be positive")
	ErrPhotoInProgress  = errors.New("previous photo still processing")
	ErrPhotosComplete   = errors.New("photo set already complete")
)

// requiredPhotos is the fixed shot list: front, right side, left side.
const requiredPhotos = 3

// PageItem is one catalog line as shown on a selection page.
type PageItem struct {
	Index     int     `json:"index"`
	Name      string  `json:"name"`
	NormHours float64 `json:"norm_hours,omitempty"`
	Price     float64 `json:"price,omitempty"`
	Selected  bool    `json:"selected"`
}

// PageView is one page of a catalog plus the running selection totals.
type PageView struct {
	Items      []PageItem `json:"items"`
	Page       int        `json:"page"`
	TotalPages int        `json:"total_pages"`
	Totals     Totals     `json:"totals"`
}

// Totals summarizes the current selection: count, norm hours and cost at the
// configured hourly rate (works) or price-table cost (materials).
type Totals struct {
	Count int     `json:"count"`
	Hours float64 `json:"hours,omitempty"`
	Cost  float64 `json:"cost"`
}

// FinalizeResult is the summary reported after a successful finalization.
type FinalizeResult struct {
	OrderNumber  string    `json:"order_number"`
	LicensePlate string    `json:"license_plate"`
	Date         time.Time `json:"date"`
	WorkCount    int       `json:"work_count"`
	TotalHours   float64   `json:"total_hours"`
	TotalCost    float64   `json:"total_cost"`
	ExcelPath    string    `json:"excel_path"`
	DraftPath    string    `json:"draft_path"`
	PhotoCount   int       `json:"photo_count"`
}

// PhotoResult reports the state of the photo set after one upload.
type PhotoResult struct {
	Accepted  int             `json:"accepted"`
	Remaining int             `json:"remaining"`
	Finalized *FinalizeResult `json:"finalized,omitempty"`
}

// IOrderSessionUseCase exposes the order flow operations the event surface
// drives, in step order.

type IOrderSessionUseCase interface {
	StartOrder(ctx context.Context, userID int64, categoryID string) (*entities.OrderSession, error)
	Session(userID int64) (*entities.OrderSession, error)
	Abort(userID int64) bool
	SelectHeader(userID int64, templateID string) error
	SubmitText(userID int64, text string) (entities.Step, error)
	ToggleWork(userID int64, index int) (bool, error)
	ToggleMaterial(userID int64, index int) (bool, error)
	ResetWorks(userID int64) error
	ResetMaterials(userID int64) error
	WorksPage(userID int64, page int) (PageView, error)
	MaterialsPage(userID int64, page int) (PageView, error)
	ProceedToMaterials(userID int64) error
	RequestPhotoDecision(userID int64) error
	DecidePhotos(ctx context.Context, userID int64, wantPhotos bool) (*FinalizeResult, error)
	AttachPhoto(ctx context.Context, userID int64, ref string, content []byte) (PhotoResult, error)
	Finalize(ctx context.Context, userID int64) (*FinalizeResult, error)
}

// OrderSessionUseCase owns the per-user order sessions and drives the fixed
// step flow from category selection to finalization.
//
// One session per user; StartOrder replaces whatever was in progress. The
// mutex guards the session map and all session mutation; document and ledger
// I/O during finalization runs outside it.

type OrderSessionUseCase struct {
	mu       sync.Mutex
	sessions map[int64]*entities.OrderSession

	layout     *workspace.Layout
	works      interfaces.IWorksRepository
	materials  interfaces.IMaterialsRepository
	accounting interfaces.IAccountingRepository
	headers    interfaces.IHeaderTemplateRepository
	documents  interfaces.IDocumentFactory
	photos     interfaces.IPhotoStore
	validator  *Validator

	rate     float64
	pageSize int
}

var _ IOrderSessionUseCase = (*OrderSessionUseCase)(nil)

func NewOrderSessionUseCase(
	layout *workspace.Layout,
	works interfaces.IWorksRepository,
	materials interfaces.IMaterialsRepository,
	accounting interfaces.IAccountingRepository,
	headers interfaces.IHeaderTemplateRepository,
	documents interfaces.IDocumentFactory,
	photos interfaces.IPhotoStore,
	validator *Validator,
	rate float64,
	pageSize int,
) *OrderSessionUseCase {
	return &OrderSessionUseCase{
		sessions:   make(map[int64]*entities.OrderSession),
		layout:     layout,
		works:      works,
		materials:  materials,
		accounting: accounting,
		headers:    headers,
		documents:  documents,
		photos:     photos,
		validator:  validator,
		rate:       rate,
		pageSize:   pageSize,
	}
}

// StartOrder opens a fresh session for the user in the given category,
// discarding any order in progress. Catalogs are captured into the session
// so selection indexes stay stable for its whole lifetime.
func (uc *OrderSessionUseCase) StartOrder(ctx context.Context, userID int64, categoryID string) (*entities.OrderSession, error) {
	cat, ok := uc.layout.Category(categoryID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCategoryUnknown, categoryID)
	}

	works, err := uc.works.GetWorks(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("load works for %s: %w", categoryID, err)
	}
	materials, err := uc.materials.GetMaterials(ctx)
	if err != nil {
		return nil, fmt.Errorf("load materials: %w", err)
	}

	s := &entities.OrderSession{
		UserID:     userID,
		CategoryID: categoryID,
		Step:       entities.StepSelectingHeader,
		Works:      works,
		Materials:  materials,
	}
	if cat.Custom {
		s.CustomListName = cat.Name
	}

	uc.mu.Lock()
	uc.sessions[userID] = s
	uc.mu.Unlock()

	log.Printf("[usecase][orders] user %d started order in category %s", userID, categoryID)
	return s, nil
}

// Session returns the user's active session.
func (uc *OrderSessionUseCase) Session(userID int64) (*entities.OrderSession, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.sessionLocked(userID)
}

func (uc *OrderSessionUseCase) sessionLocked(userID int64) (*entities.OrderSession, error) {
	s, ok := uc.sessions[userID]
	if !ok {
		return nil, ErrNoActiveSession
	}
	return s, nil
}

// Abort drops the user's session without finalizing. Reports whether a
// session existed.
func (uc *OrderSessionUseCase) Abort(userID int64) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if _, ok := uc.sessions[userID]; !ok {
		return false
	}
	delete(uc.sessions, userID)
	return true
}

// SelectHeader picks the customer/contractor header block and advances to
// plate entry.
func (uc *OrderSessionUseCase) SelectHeader(userID int64, templateID string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	s, err := uc.sessionLocked(userID)
	if err != nil {
		return err
	}
	if s.Step != entities.StepSelectingHeader {
		return fmt.Errorf("%w: %s", ErrWrongStep, s.Step)
	}
	if _, ok := uc.headers.Get(templateID); !ok {
		return fmt.Errorf("%w: %s", ErrHeaderUnknown, templateID)
	}

	s.HeaderTemplate = templateID
	s.Step = entities.StepLicensePlate
	return nil
}

// SubmitText routes one line of free-form input to whichever field the
// session is waiting on and advances the step. Returns the new step.
func (uc *OrderSessionUseCase) SubmitText(userID int64, text string) (entities.Step, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	s, err := uc.sessionLocked(userID)
	if err != nil {
		return "", err
	}

	switch s.Step {
	case entities.StepLicensePlate:
		plate, err := uc.validator.LicensePlate(text)
		if err != nil {
			return s.Step, err
		}
		s.LicensePlate = plate
		s.Step = entities.StepDate

	case entities.StepDate:
		date, err := uc.validator.Date(text)
		if err != nil {
			return s.Step, err
		}
		s.Date = date
		s.Step = entities.StepOrderNumber

	case entities.StepOrderNumber:
		number, err := uc.validator.OrderNumber(text)
		if err != nil {
			return s.Step, err
		}
		s.OrderNumber = number
		s.Step = entities.StepWorkers

	case entities.StepWorkers:
		workers, err := uc.validator.Workers(text)
		if err != nil {
			return s.Step, err
		}
		s.Workers = workers
		s.Step = entities.StepSelectingWorks

	default:
		return s.Step, fmt.Errorf("%w: %s does not take text input", ErrWrongStep, s.Step)
	}

	return s.Step, nil
}

// ToggleWork flips the selection state of the catalog item at index.
func (uc *OrderSessionUseCase) ToggleWork(userID int64, index int) (bool, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	s, err := uc.sessionLocked(userID)
	if err != nil {
		return false, err
	}
	if s.Step != entities.StepSelectingWorks {
		return false, fmt.Errorf("%w: %s", ErrWrongStep, s.Step)
	}
	if index < 0 || index >= len(s.Works) {
		return false, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	return s.ToggleWork(s.Works[index]), nil
}

// ToggleMaterial flips the selection state of the material at index.
func (uc *OrderSessionUseCase) ToggleMaterial(userID int64, index int) (bool, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	s, err := uc.sessionLocked(userID)
	if err != nil {
		return false, err
	}
	if s.Step != entities.StepSelectingMaterials {
		return false, fmt.Errorf("%w: %s", ErrWrongStep, s.Step)
	}
	if index < 0 || index >= len(s.Materials) {
		return false, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	return s.ToggleMaterial(s.Materials[index]), nil
}

// ResetWorks clears every work selection and returns to the first page.
func (uc *OrderSessionUseCase) ResetWorks(userID int64) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	s, err := uc.sessionLocked(userID)
	if err != nil {
		return err
	}
	s.SelectedWorks = nil
	s.WorksPage = 0
	return nil
}

// ResetMaterials clears every material selection and returns to the first
// page.
func (uc *OrderSessionUseCase) ResetMaterials(userID int64) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	s, err := uc.sessionLocked(userID)
	if err != nil {
		return err
	}
	s.SelectedMaterials = nil
	s.MaterialsPage = 0
	return nil
}

// WorksPage renders the requested catalog page. Page is clamped into range
// and remembered on the session.
func (uc *OrderSessionUseCase) WorksPage(userID int64, page int) (PageView, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	s, err := uc.sessionLocked(userID)
	if err != nil {
		return PageView{}, err
	}

	view := PageView{Totals: Totals{
		Count: len(s.SelectedWorks),
		Hours: s.TotalHours(),
		Cost:  s.TotalHours() * uc.rate,
	}}

	total := len(s.Works)
	view.TotalPages = pageCount(total, uc.pageSize)
	view.Page = clampPage(page, view.TotalPages)
	s.WorksPage = view.Page

	start := view.Page * uc.pageSize
	end := min(start+uc.pageSize, total)
	for i := start; i < end; i++ {
		w := s.Works[i]
		selected := false
		for _, chosen := range s.SelectedWorks {
			if chosen == w {
				selected = true
				break
			}
		}
		view.Items = append(view.Items, PageItem{
			Index: i, Name: w.Name, NormHours: w.NormHours, Selected: selected,
		})
	}
	return view, nil
}

// MaterialsPage renders the requested material page with price-table totals.
func (uc *OrderSessionUseCase) MaterialsPage(userID int64, page int) (PageView, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	s, err := uc.sessionLocked(userID)
	if err != nil {
		return PageView{}, err
	}

	cost := 0.0
	for _, name := range s.SelectedMaterials {
		cost += uc.materials.GetMaterialPrice(name)
	}
	view := PageView{Totals: Totals{Count: len(s.SelectedMaterials), Cost: cost}}

	total := len(s.Materials)
	view.TotalPages = pageCount(total, uc.pageSize)
	view.Page = clampPage(page, view.TotalPages)
	s.MaterialsPage = view.Page

	start := view.Page * uc.pageSize
	end := min(start+uc.pageSize, total)
	for i := start; i < end; i++ {
		name := s.Materials[i]
		selected := false
		for _, chosen := range s.SelectedMaterials {
			if chosen == name {
				selected = true
				break
			}
		}
		view.Items = append(view.Items, PageItem{
			Index: i, Name: name, Price: uc.materials.GetMaterialPrice(name), Selected: selected,
		})
	}
	return view, nil
}

// ProceedToMaterials closes work selection.
func (uc *OrderSessionUseCase) ProceedToMaterials(userID int64) error {
	return uc.advance(userID, entities.StepSelectingWorks, entities.StepSelectingMaterials)
}

// RequestPhotoDecision closes material selection and asks whether the three
// vehicle photos will be attached. At least one work must be selected.
func (uc *OrderSessionUseCase) RequestPhotoDecision(userID int64) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	s, err := uc.sessionLocked(userID)
	if err != nil {
		return err
	}
	if s.Step != entities.StepSelectingMaterials {
		return fmt.Errorf("%w: %s", ErrWrongStep, s.Step)
	}
	if len(s.SelectedWorks) == 0 {
		return fmt.Errorf("%w: no works selected", ErrEmptyOrder)
	}
	s.Step = entities.StepPhotoDecision
	return nil
}

func (uc *OrderSessionUseCase) advance(userID int64, from, to entities.Step) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	s, err := uc.sessionLocked(userID)
	if err != nil {
		return err
	}
	if s.Step != from {
		return fmt.Errorf("%w: %s", ErrWrongStep, s.Step)
	}
	s.Step = to
	return nil
}

// DecidePhotos either opens the photo upload phase or finalizes immediately.
func (uc *OrderSessionUseCase) DecidePhotos(ctx context.Context, userID int64, wantPhotos bool) (*FinalizeResult, error) {
	uc.mu.Lock()
	s, err := uc.sessionLocked(userID)
	if err != nil {
		uc.mu.Unlock()
		return nil, err
	}
	if s.Step != entities.StepPhotoDecision {
		uc.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", ErrWrongStep, s.Step)
	}
	if wantPhotos {
		s.Step = entities.StepWaitingPhotos
		uc.mu.Unlock()
		return nil, nil
	}
	uc.mu.Unlock()

	result, err := uc.Finalize(ctx, userID)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// AttachPhoto stores one vehicle photo. Uploads are strictly sequential: a
// second upload while one is processing is rejected, and re-sending the same
// underlying image (same file reference) is ignored. The third accepted
// photo finalizes the order.
func (uc *OrderSessionUseCase) AttachPhoto(ctx context.Context, userID int64, ref string, content []byte) (PhotoResult, error) {
	uc.mu.Lock()
	s, err := uc.sessionLocked(userID)
	if err != nil {
		uc.mu.Unlock()
		return PhotoResult{}, err
	}
	if s.Step != entities.StepWaitingPhotos {
		uc.mu.Unlock()
		return PhotoResult{}, fmt.Errorf("%w: %s", ErrWrongStep, s.Step)
	}
	if s.Processing {
		uc.mu.Unlock()
		return PhotoResult{}, ErrPhotoInProgress
	}
	if len(s.PhotoRefs) >= requiredPhotos {
		uc.mu.Unlock()
		return PhotoResult{}, ErrPhotosComplete
	}
	if s.HasPhotoRef(ref) {
		// Chat clients re-send the same image on retries; ignore it and
		// report the unchanged progress.
		accepted := len(s.PhotoRefs)
		uc.mu.Unlock()
		return PhotoResult{Accepted: accepted, Remaining: requiredPhotos - accepted}, nil
	}

	s.Processing = true
	cat, _ := uc.layout.Category(s.CategoryID)
	n := len(s.PhotoRefs) + 1
	filename := fmt.Sprintf("%s_%s_%d.jpg", s.LicensePlate, s.OrderNumber, n)
	uc.mu.Unlock()

	saveErr := uc.photos.SavePhoto(ctx, cat, filename, content)

	uc.mu.Lock()
	s.Processing = false
	if saveErr != nil {
		uc.mu.Unlock()
		return PhotoResult{}, fmt.Errorf("save photo %s: %w", filename, saveErr)
	}
	s.PhotoRefs = append(s.PhotoRefs, ref)
	accepted := len(s.PhotoRefs)
	uc.mu.Unlock()

	result := PhotoResult{Accepted: accepted, Remaining: requiredPhotos - accepted}
	if accepted < requiredPhotos {
		return result, nil
	}

	final, err := uc.Finalize(ctx, userID)
	if err != nil {
		return result, err
	}
	result.Finalized = final
	return result, nil
}

// Finalize runs the closing guard chain, generates both documents, appends
// the ledgers and drops the session. The session is removed whether or not
// document generation succeeds: a failed finalization is not resumable.
func (uc *OrderSessionUseCase) Finalize(ctx context.Context, userID int64) (*FinalizeResult, error) {
	uc.mu.Lock()
	s, err := uc.sessionLocked(userID)
	if err != nil {
		uc.mu.Unlock()
		return nil, err
	}
	if s.Finalized {
		uc.mu.Unlock()
		return nil, ErrAlreadyFinalized
	}
	if s.LicensePlate == "" || s.Date.IsZero() || s.OrderNumber == "" || s.Workers == "" {
		uc.mu.Unlock()
		return nil, fmt.Errorf("%w: required fields are missing", ErrWrongStep)
	}

	totalCost := s.TotalHours() * uc.rate
	for _, name := range uc.effectiveMaterials(s) {
		totalCost += uc.materials.GetMaterialPrice(name)
	}
	if totalCost <= 0 {
		uc.mu.Unlock()
		return nil, ErrEmptyOrder
	}

	// Mark before side effects so a concurrent call cannot finalize twice.
	s.Finalized = true
	s.Step = entities.StepFinalized
	cat, ok := uc.layout.Category(s.CategoryID)
	uc.mu.Unlock()

	// Remove only this session: a new order started while documents were
	// being written must survive.
	defer func() {
		uc.mu.Lock()
		if uc.sessions[userID] == s {
			delete(uc.sessions, userID)
		}
		uc.mu.Unlock()
	}()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCategoryUnknown, s.CategoryID)
	}

	docs, err := uc.documents.CreateAll(ctx, s, cat)
	if err != nil {
		return nil, fmt.Errorf("create order documents: %w", err)
	}

	record := entities.AccountingRecord{
		CategoryID:   s.CategoryID,
		CategoryName: cat.Name,
		CreatedAt:    uc.validator.clock.Now(),
		OrderDate:    s.Date,
		OrderNumber:  s.OrderNumber,
		LicensePlate: s.LicensePlate,
		Workers:      s.Workers,
		WorkCount:    len(s.SelectedWorks),
		TotalHours:   s.TotalHours(),
		ExcelFile:    docs.ExcelPath,
		DraftFile:    docs.DraftPath,
		HasPhotos:    len(s.PhotoRefs) > 0,
	}
	if err := uc.accounting.SaveOrder(ctx, record); err != nil {
		return nil, fmt.Errorf("append accounting ledger: %w", err)
	}

	log.Printf("[usecase][orders] user %d finalized order %s (%s)", userID, s.OrderNumber, s.LicensePlate)
	return &FinalizeResult{
		OrderNumber:  s.OrderNumber,
		LicensePlate: s.LicensePlate,
		Date:         s.Date,
		WorkCount:    len(s.SelectedWorks),
		TotalHours:   s.TotalHours(),
		TotalCost:    totalCost,
		ExcelPath:    docs.ExcelPath,
		DraftPath:    docs.DraftPath,
		PhotoCount:   len(s.PhotoRefs),
	}, nil
}

// effectiveMaterials is the material list the documents will carry: the
// explicit selection, or the whole catalog when nothing was picked.
func (uc *OrderSessionUseCase) effectiveMaterials(s *entities.OrderSession) []string {
	if len(s.SelectedMaterials) > 0 {
		return s.SelectedMaterials
	}
	return s.Materials
}

func pageCount(total, pageSize int) int {
	if total == 0 {
		return 1
	}
	return (total + pageSize - 1) / pageSize
}

func clampPage(page, totalPages int) int {
	if page < 0 {
		return 0
	}
	if page >= totalPages {
		return totalPages - 1
	}
	return page
}
