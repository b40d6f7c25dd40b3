package entities

import "time"

// Step is the current position of a session in the fixed order flow.
//
// The order is fixed per order type; there is no generic workflow engine
// behind this, each transition is validated by the use case that owns it.

type Step string

const (
	StepSelectingCategory  Step = "selecting_category"
	StepSelectingHeader    Step = "selecting_header"
	StepLicensePlate       Step = "license_plate"
	StepDate               Step = "date"
	StepOrderNumber        Step = "order_number"
	StepWorkers            Step = "workers"
	StepSelectingWorks     Step = "selecting_works"
	StepSelectingMaterials Step = "selecting_materials"
	StepPhotoDecision      Step = "photo_decision"
	StepWaitingPhotos      Step = "waiting_photos"
	StepFinalized          Step = "finalized"
)

// OrderSession is the in-memory state of one user's order in progress.
//
// Exactly one session exists per user at a time; starting a new order
// overwrites the previous one. Sessions are never persisted: an abandoned
// session lives until the user replaces it.

type OrderSession struct {
	UserID     int64
	CategoryID string
	// CustomListName is set only for user-defined categories; it is the
	// display name recorded in the consolidated ledger.
	CustomListName string

	Step           Step
	HeaderTemplate string

	LicensePlate string
	Date         time.Time
	OrderNumber  string
	Workers      string

	// Catalogs captured at StartOrder so selection indexes stay stable even
	// if the source file changes mid-order.
	Works     []WorkItem
	Materials []string

	SelectedWorks     []WorkItem
	SelectedMaterials []string

	WorksPage     int
	MaterialsPage int

	PhotoRefs []string
	// Processing guards against two photo uploads being handled at once for
	// the same session.
	Processing bool

	Finalized bool
}

// ToggleWork removes the item when already selected, otherwise appends it.
// Selection order is preserved and duplicates are impossible: equality is the
// structural (name, hours) pair.
func (s *OrderSession) ToggleWork(item WorkItem) (selected bool) {
	for i, w := range s.SelectedWorks {
		if w == item {
			s.SelectedWorks = append(s.SelectedWorks[:i], s.SelectedWorks[i+1:]...)
			return false
		}
	}
	s.SelectedWorks = append(s.SelectedWorks, item)
	return true
}

// ToggleMaterial mirrors ToggleWork for material names.
func (s *OrderSession) ToggleMaterial(name string) (selected bool) {
	for i, m := range s.SelectedMaterials {
		if m == name {
			s.SelectedMaterials = append(s.SelectedMaterials[:i], s.SelectedMaterials[i+1:]...)
			return false
		}
	}
	s.SelectedMaterials = append(s.SelectedMaterials, name)
	return true
}

// TotalHours sums the norm-hours of the selected works.
func (s *OrderSession) TotalHours() float64 {
	total := 0.0
	for _, w := range s.SelectedWorks {
		total += w.NormHours
	}
	return total
}

// HasPhotoRef reports whether the underlying file reference was already
// captured; duplicate uploads of the same physical image are ignored.
func (s *OrderSession) HasPhotoRef(ref string) bool {
	for _, r := range s.PhotoRefs {
		if r == ref {
			return true
		}
	}
	return false
}
