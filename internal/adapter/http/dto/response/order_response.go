package response

import (
	"time"

	"truckservice/internal/domain/entities"
	"truckservice/internal/usecase"
)

// SessionResponse is the externally visible state of an order in progress.
type SessionResponse struct {
	UserID         int64  `json:"user_id"`
	CategoryID     string `json:"category_id"`
	Step           string `json:"step"`
	HeaderTemplate string `json:"header_template,omitempty"`
	LicensePlate   string `json:"license_plate,omitempty"`
	Date           string `json:"date,omitempty"`
	OrderNumber    string `json:"order_number,omitempty"`
	Workers        string `json:"workers,omitempty"`
	WorkCount      int    `json:"work_count"`
	MaterialCount  int    `json:"material_count"`
	PhotoCount     int    `json:"photo_count"`
}

func FromSession(s *entities.OrderSession) SessionResponse {
	out := SessionResponse{
		UserID:         s.UserID,
		CategoryID:     s.CategoryID,
		Step:           string(s.Step),
		HeaderTemplate: s.HeaderTemplate,
		LicensePlate:   s.LicensePlate,
		OrderNumber:    s.OrderNumber,
		Workers:        s.Workers,
		WorkCount:      len(s.SelectedWorks),
		MaterialCount:  len(s.SelectedMaterials),
		PhotoCount:     len(s.PhotoRefs),
	}
	if !s.Date.IsZero() {
		out.Date = s.Date.Format("02.01.2006")
	}
	return out
}

// StepResponse reports the step a session moved to.
type StepResponse struct {
	Step string `json:"step"`
}

// ToggleResponse reports the new selection state of a toggled item.
type ToggleResponse struct {
	Selected bool `json:"selected"`
}

// PageResponse is one catalog page plus selection totals.
type PageResponse struct {
	Items      []usecase.PageItem `json:"items"`
	Page       int                `json:"page"`
	TotalPages int                `json:"total_pages"`
	Totals     usecase.Totals     `json:"totals"`
}

func FromPageView(v usecase.PageView) PageResponse {
	return PageResponse{Items: v.Items, Page: v.Page, TotalPages: v.TotalPages, Totals: v.Totals}
}

// FinalizeResponse is the closing summary of a finalized order.
type FinalizeResponse struct {
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

func FromFinalizeResult(r *usecase.FinalizeResult) FinalizeResponse {
	return FinalizeResponse{
		OrderNumber:  r.OrderNumber,
		LicensePlate: r.LicensePlate,
		Date:         r.Date,
		WorkCount:    r.WorkCount,
		TotalHours:   r.TotalHours,
		TotalCost:    r.TotalCost,
		ExcelPath:    r.ExcelPath,
		DraftPath:    r.DraftPath,
		PhotoCount:   r.PhotoCount,
	}
}

// PhotoResponse reports photo-set progress; Finalized is present only when
// the third photo closed the order.
type PhotoResponse struct {
	Accepted  int               `json:"accepted"`
	Remaining int               `json:"remaining"`
	Finalized *FinalizeResponse `json:"finalized,omitempty"`
}

func FromPhotoResult(r usecase.PhotoResult) PhotoResponse {
	out := PhotoResponse{Accepted: r.Accepted, Remaining: r.Remaining}
	if r.Finalized != nil {
		f := FromFinalizeResult(r.Finalized)
		out.Finalized = &f
	}
	return out
}
