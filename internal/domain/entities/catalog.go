package entities

// WorkItem is one selectable line of a category's work catalog.
// Immutable value loaded from the category's source table; equality is
// structural, which is what selection toggling relies on.

type WorkItem struct {
	Name      string  `json:"name"`
	NormHours float64 `json:"norm_hours"`
}

// Category describes a named grouping of works with its own folder tree.
//
// Custom (user-defined) categories are recorded in the per-category ledger
// under CatchAllCategoryID but keep their display name in the consolidated
// ledger.

type Category struct {
	ID        string
	Name      string
	Folder    string
	WorksFile string
	Custom    bool
}

// CatchAllCategoryID is the designated per-category ledger identifier for
// user-defined lists.
const CatchAllCategoryID = "custom"
